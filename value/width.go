/*
NAME
  width.go -

DESCRIPTION
  Width-parametric unsigned integer newtypes used by detailed timing
  fields, which the EDID standard packs across a variety of bit widths
  (6, 8, 10 and 12 bits) split over adjacent bytes. One shared
  implementation computes the max value for a width once; named types
  are thin wrappers so callers get a distinct Go type per field without
  duplicating the range check.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

// maxForWidth returns the largest value representable in width
// unsigned bits, computed once per call site rather than duplicated
// per type.
func maxForWidth(width uint) int64 {
	return (int64(1) << width) - 1
}

// U6 is an unsigned value that fits in 6 bits (0..=63). Used for a
// detailed timing's vertical front porch and sync pulse.
type U6 uint8

// NewU6 validates raw against the 6-bit range.
func NewU6(raw int64) (U6, error) {
	if raw < 0 || raw > maxForWidth(6) {
		return 0, newRange(raw, 0, maxForWidth(6))
	}
	return U6(raw), nil
}

// ToRaw returns the underlying value.
func (v U6) ToRaw() uint8 { return uint8(v) }

// U8 is an unsigned value that fits in 8 bits (0..=255).
type U8 uint8

// NewU8 validates raw against the 8-bit range.
func NewU8(raw int64) (U8, error) {
	if raw < 0 || raw > maxForWidth(8) {
		return 0, newRange(raw, 0, maxForWidth(8))
	}
	return U8(raw), nil
}

// ToRaw returns the underlying value.
func (v U8) ToRaw() uint8 { return uint8(v) }

// U10 is an unsigned value that fits in 10 bits (0..=1023). Used for a
// detailed timing's horizontal front porch and sync pulse.
type U10 uint16

// NewU10 validates raw against the 10-bit range.
func NewU10(raw int64) (U10, error) {
	if raw < 0 || raw > maxForWidth(10) {
		return 0, newRange(raw, 0, maxForWidth(10))
	}
	return U10(raw), nil
}

// ToRaw returns the underlying value.
func (v U10) ToRaw() uint16 { return uint16(v) }

// U12 is an unsigned value that fits in 12 bits (0..=4095). Used where a
// detailed timing field's high nibble extends an 8-bit low byte: the
// active, back porch and image size fields.
type U12 uint16

// NewU12 validates raw against the 12-bit range.
func NewU12(raw int64) (U12, error) {
	if raw < 0 || raw > maxForWidth(12) {
		return 0, newRange(raw, 0, maxForWidth(12))
	}
	return U12(raw), nil
}

// ToRaw returns the underlying value.
func (v U12) ToRaw() uint16 { return uint16(v) }
