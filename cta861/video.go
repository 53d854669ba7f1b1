/*
NAME
  video.go -

DESCRIPTION
  CTA-861 Video Data Block: a list of short video descriptors, each a
  CEA/CTA video identification code (VIC), optionally flagged native
  when the VIC is below 64.

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

const tagVideo = 2

// ShortVideoDescriptor is one video identification code entry. Native
// may only be set when VIC < 64.
type ShortVideoDescriptor struct {
	VIC    uint8
	Native bool
}

// NewShortVideoDescriptor validates that Native is only set for VIC < 64.
func NewShortVideoDescriptor(vic uint8, native bool) (ShortVideoDescriptor, error) {
	if native && vic >= 64 {
		return ShortVideoDescriptor{}, newValue("VICs >= 64 cannot be native, got %d", vic)
	}
	return ShortVideoDescriptor{VIC: vic, Native: native}, nil
}

// VideoDataBlock is the CTA-861 Video Data Block.
type VideoDataBlock struct {
	Descriptors []ShortVideoDescriptor
}

// Bytes returns the tag byte followed by 1 byte per descriptor.
func (v VideoDataBlock) Bytes() []byte {
	out := make([]byte, 0, 1+len(v.Descriptors))
	out = append(out, tagVideo<<5|byte(len(v.Descriptors)))
	for _, d := range v.Descriptors {
		b := d.VIC
		if d.Native {
			b |= 1 << 7
		}
		out = append(out, b)
	}
	return out
}
