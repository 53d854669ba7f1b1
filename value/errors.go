/*
NAME
  errors.go -

DESCRIPTION
  Error types returned by value constructors. Construction is the only
  place errors can occur in this module; once a value exists it encodes
  infallibly.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package value implements range-validated primitive types used to build
// an EDID/CTA-861 model: manufacturer and product identity, dates, video
// input definitions, image size, gamma, chromaticity, timing bitsets and
// the width-parametric integer types that back the detailed timing
// descriptor's bit-packed fields.
package value

import "fmt"

// RangeError reports that a value fell outside an allowed range. Min and
// Max are nil when the range is open on that side.
type RangeError struct {
	Value int64
	Min   *int64
	Max   *int64
}

func (e *RangeError) Error() string {
	switch {
	case e.Min != nil && e.Max != nil:
		return fmt.Sprintf("value out of range: %d (range: %d..=%d)", e.Value, *e.Min, *e.Max)
	case e.Min != nil:
		return fmt.Sprintf("value out of range: %d (min: %d)", e.Value, *e.Min)
	case e.Max != nil:
		return fmt.Sprintf("value out of range: %d (max: %d)", e.Value, *e.Max)
	default:
		return fmt.Sprintf("value out of range: %d", e.Value)
	}
}

// newRange builds a RangeError with both bounds set, the common case.
func newRange(value, min, max int64) *RangeError {
	return &RangeError{Value: value, Min: &min, Max: &max}
}

// newRangeMin builds a RangeError with only a lower bound.
func newRangeMin(value, min int64) *RangeError {
	return &RangeError{Value: value, Min: &min}
}

// ValueError reports a semantic validation failure that isn't a simple
// range check (wrong charset, wrong length, inconsistent combination of
// fields).
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string { return "invalid value: " + e.Msg }

func newValue(format string, args ...interface{}) *ValueError {
	return &ValueError{Msg: fmt.Sprintf(format, args...)}
}

// IntError reports that an integer conversion (narrowing, sign) failed.
type IntError struct {
	Msg string
}

func (e *IntError) Error() string { return "integer conversion error: " + e.Msg }

// SliceError reports that a byte slice had the wrong length or shape for
// the value being constructed from it.
type SliceError struct {
	Msg string
}

func (e *SliceError) Error() string { return "slice error: " + e.Msg }

func newSlice(format string, args ...interface{}) *SliceError {
	return &SliceError{Msg: fmt.Sprintf(format, args...)}
}
