/*
NAME
  text.go -

DESCRIPTION
  Bounded text value types used by descriptor payloads (product name,
  data string, serial number string). EDID descriptor strings are at
  most 13 bytes, 7-bit ASCII by the letter of the spec but tolerated as
  ISO-8859-1 by most real-world EDIDs; a test-only bypass lets the
  round-trip oracle construct strings real displays emit but the spec
  would otherwise reject.

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

const descriptorStringMaxLen = 13

// DescriptorString is a descriptor payload string of at most 13
// characters, terminated with 0x0A and padded with 0x20 when shorter.
type DescriptorString struct {
	raw string
}

// NewDescriptorString validates s as 7-bit ASCII of at most 13
// characters.
func NewDescriptorString(s string) (DescriptorString, error) {
	return newDescriptorString(s, false)
}

// NewDescriptorStringLossy accepts ISO-8859-1 bytes outside the 7-bit
// ASCII range. Intended for the round-trip oracle rebuilding a model
// from a real-world EDID that violates the 7-bit-ASCII letter of the
// spec; ordinary callers should use NewDescriptorString.
func NewDescriptorStringLossy(s string) (DescriptorString, error) {
	return newDescriptorString(s, true)
}

func newDescriptorString(s string, allowLatin1 bool) (DescriptorString, error) {
	if len(s) > descriptorStringMaxLen {
		return DescriptorString{}, newValue("descriptor string must be at most %d bytes, got %d", descriptorStringMaxLen, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if allowLatin1 {
			continue // every byte value is valid ISO-8859-1
		}
		if c > 0x7F {
			return DescriptorString{}, newValue("descriptor string must be 7-bit ASCII, got byte 0x%02X at index %d", c, i)
		}
	}
	return DescriptorString{raw: s}, nil
}

// Bytes returns the 13-byte payload: the string, a 0x0A terminator, and
// 0x20 padding to fill the remaining bytes.
func (d DescriptorString) Bytes() [descriptorStringMaxLen]byte {
	var out [descriptorStringMaxLen]byte
	for i := range out {
		out[i] = 0x20
	}
	copy(out[:], d.raw)
	if len(d.raw) < descriptorStringMaxLen {
		out[len(d.raw)] = 0x0A
	}
	return out
}
