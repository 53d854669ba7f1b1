/*
NAME
  descriptor.go -

DESCRIPTION
  Descriptor header tags and the 18-byte descriptor list assembly rules
  shared by Release 3 and Release 4 base blocks.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package descriptor implements the 8 forms of the EDID base block's
// 18-byte descriptor entries: detailed timing, display range limits,
// established timings III, product name, data string, serial number,
// custom and dummy. Each descriptor's Bytes method returns exactly 18
// bytes; the detailed timing descriptor has no header, the other seven
// open with the 5-byte "00 00 00 TAG 00" header below, except that the
// Release 4 display range limits descriptor puts its flags byte in the
// header's last byte.
package descriptor

import "github.com/pkg/errors"

// DescriptorLen is the fixed size, in bytes, of every descriptor entry.
const DescriptorLen = 18

// PayloadLen is the size of a tagged descriptor's payload, after its
// 5-byte header.
const PayloadLen = 13

// MaxDescriptors is the maximum number of descriptor slots in a base
// block.
const MaxDescriptors = 4

// Tag values for the 5-byte descriptor header "00 00 00 TAG 00".
const (
	TagDummy               = 0x10
	TagEstablishedTimingsIII = 0xF7
	TagProductName         = 0xFC
	TagDisplayRangeLimits  = 0xFD
	TagDataString          = 0xFE
	TagSerialNumber        = 0xFF
)

// Descriptor is anything that encodes to exactly DescriptorLen bytes.
type Descriptor interface {
	Bytes() [DescriptorLen]byte
}

// header builds the 5-byte "00 00 00 TAG 00" descriptor header.
func header(tag byte) [5]byte {
	return [5]byte{0, 0, 0, tag, 0}
}

// withHeader concatenates a header and a 13-byte payload into a full
// 18-byte descriptor.
func withHeader(tag byte, payload [PayloadLen]byte) [DescriptorLen]byte {
	var out [DescriptorLen]byte
	h := header(tag)
	copy(out[:5], h[:])
	copy(out[5:], payload[:])
	return out
}

// Dummy is the filler descriptor used for unused slots and to pad the
// descriptor list to MaxDescriptors.
type Dummy struct{}

// Bytes returns the fixed Dummy descriptor encoding.
func (Dummy) Bytes() [DescriptorLen]byte {
	return [DescriptorLen]byte{0, 0, 0, TagDummy, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
}

// FillToMax appends Dummy descriptors to descs until it has
// MaxDescriptors entries, then concatenates all of their bytes. It
// errors if descs already has more than MaxDescriptors entries.
func FillToMax(descs []Descriptor) ([]byte, error) {
	if len(descs) > MaxDescriptors {
		return nil, errors.Errorf("too many descriptors: %d (max %d)", len(descs), MaxDescriptors)
	}
	out := make([]byte, 0, DescriptorLen*MaxDescriptors)
	for _, d := range descs {
		b := d.Bytes()
		out = append(out, b[:]...)
	}
	for i := len(descs); i < MaxDescriptors; i++ {
		b := Dummy{}.Bytes()
		out = append(out, b[:]...)
	}
	return out, nil
}
