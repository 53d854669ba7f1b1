/*
NAME
  errors.go -

DESCRIPTION
  Base block and façade error helpers, mirroring the RangeError /
  ValueError taxonomy used throughout value and descriptor.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package edid

import "fmt"

// ValueError reports a base block or façade level semantic validation
// failure: an inconsistent flag combination, a missing required field,
// or a cross-section invariant violation.
type ValueError struct{ Msg string }

func (e *ValueError) Error() string { return "invalid value: " + e.Msg }

func newValue(format string, args ...interface{}) *ValueError {
	return &ValueError{Msg: fmt.Sprintf(format, args...)}
}
