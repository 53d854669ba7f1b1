/*
NAME
  errors.go -

DESCRIPTION
  Descriptor constructor error helpers, built on the same RangeError /
  ValueError taxonomy as the value package but scoped to this package
  so descriptor.go files don't need to import value just for error
  construction.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package descriptor

import "fmt"

// RangeError reports a descriptor field value outside its allowed
// range.
type RangeError struct {
	Value, Min, Max int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value out of range: %d (range: %d..=%d)", e.Value, e.Min, e.Max)
}

func newDescriptorRange(value, min, max int64) *RangeError {
	return &RangeError{Value: value, Min: min, Max: max}
}

// ValueError reports a descriptor-level semantic validation failure.
type ValueError struct{ Msg string }

func (e *ValueError) Error() string { return "invalid value: " + e.Msg }

func newDescriptorValue(format string, args ...interface{}) *ValueError {
	return &ValueError{Msg: fmt.Sprintf(format, args...)}
}
