/*
NAME
  errors.go -

DESCRIPTION
  Error helpers for the cta861 package, following the same RangeError /
  ValueError taxonomy as value and descriptor.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package cta861

import "fmt"

// RangeError reports a CTA-861 field value outside its allowed range.
type RangeError struct{ Value, Min, Max int64 }

func (e *RangeError) Error() string {
	return fmt.Sprintf("value out of range: %d (range: %d..=%d)", e.Value, e.Min, e.Max)
}

func newRange(value, min, max int64) *RangeError { return &RangeError{value, min, max} }

// ValueError reports a CTA-861 semantic validation failure.
type ValueError struct{ Msg string }

func (e *ValueError) Error() string { return "invalid value: " + e.Msg }

func newValue(format string, args ...interface{}) *ValueError {
	return &ValueError{Msg: fmt.Sprintf(format, args...)}
}
