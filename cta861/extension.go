/*
NAME
  extension.go -

DESCRIPTION
  CTA-861 Revision 3 extension block assembly: header, feature flags,
  data blocks, appended detailed timings, zero-padding and checksum.

  Byte layout:

  =====================================================================
  | offset | size | field                                              |
  =====================================================================
  | 0      | 1    | tag 0x02                                          |
  | 1      | 1    | revision 0x03                                     |
  | 2      | 1    | byte offset of first detailed timing (0 if none)  |
  | 3      | 1    | underscan<<7 | audio<<6 | ycbcr444<<5 | ycbcr422<<4 | native count |
  | 4      |      | data blocks, concatenated                         |
  |        |      | detailed timings, concatenated                    |
  |        |      | zero padding to byte 126                          |
  | 127    | 1    | checksum                                          |
  =====================================================================

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package cta861 encodes CTA-861 Revision 3 EDID extension blocks: short
// audio/video descriptors, speaker allocation, colorimetry, video
// capability and HDMI vendor-specific data blocks, plus any appended
// detailed timings.
package cta861

import (
	"github.com/ausocean/edid/descriptor"
	"github.com/ausocean/edid/value"
)

// DataBlock is anything that encodes to a CTA-861 data block, tag byte
// included.
type DataBlock interface {
	Bytes() []byte
}

// Revision3 is the CTA-861 Revision 3 extension block value model.
type Revision3 struct {
	YCbCr422Supported           bool
	YCbCr444Supported           bool
	AudioSupported              bool
	UnderscanITFormatsByDefault bool
	NativeFormats               uint8 // 0..=15
	DataBlocks                  []DataBlock
	Timings                     []descriptor.DetailedTiming
}

// Encode assembles the 128-byte extension block.
func (r Revision3) Encode() ([]byte, error) {
	if r.NativeFormats > 0x0F {
		return nil, newRange(int64(r.NativeFormats), 0, 0x0F)
	}

	var dataBlockBytes []byte
	for _, db := range r.DataBlocks {
		dataBlockBytes = append(dataBlockBytes, db.Bytes()...)
	}

	var dtdOffset byte
	if len(r.DataBlocks) > 0 || len(r.Timings) > 0 {
		offset := 4 + len(dataBlockBytes)
		if offset > 0xFF {
			return nil, newValue("data blocks are too large: offset %d overflows a byte", offset)
		}
		dtdOffset = byte(offset)
	}

	var flags byte
	if r.UnderscanITFormatsByDefault {
		flags |= 1 << 7
	}
	if r.AudioSupported {
		flags |= 1 << 6
	}
	if r.YCbCr444Supported {
		flags |= 1 << 5
	}
	if r.YCbCr422Supported {
		flags |= 1 << 4
	}
	flags |= r.NativeFormats

	block := make([]byte, 0, value.BlockLen)
	block = append(block, 0x02, 0x03, dtdOffset, flags)
	block = append(block, dataBlockBytes...)
	for _, t := range r.Timings {
		b := t.Bytes()
		block = append(block, b[:]...)
	}

	if len(block) > value.BlockLen-1 {
		return nil, newValue("extension block contents overflow 128 bytes: %d", len(block))
	}
	for len(block) < value.BlockLen-1 {
		block = append(block, 0)
	}
	block = append(block, 0x00) // checksum placeholder
	block[value.BlockLen-1] = value.Checksum(block)

	return block, nil
}
