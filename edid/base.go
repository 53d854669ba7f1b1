/*
NAME
  base.go -

DESCRIPTION
  The 128-byte EDID base block assembler, Release 3 and Release 4
  variants. Each variant concatenates its fixed-size sections in wire
  order, appends pre-encoded extension blocks, and closes the block out
  with the extension count and checksum bytes.

  Base block layout (offsets in decimal):

  =====================================================================
  | offset | size | field                                              |
  =====================================================================
  | 0      | 8    | header 00 FF FF FF FF FF FF 00                    |
  | 8      | 2    | manufacturer                                      |
  | 10     | 2    | product code                                      |
  | 12     | 4    | serial number                                     |
  | 16     | 2    | date (week, year-1990)                            |
  | 18     | 2    | version, revision                                 |
  | 20     | 1    | video input definition                            |
  | 21     | 2    | image size / aspect ratio                         |
  | 23     | 1    | gamma                                             |
  | 24     | 1    | feature support                                   |
  | 25     | 10   | chromaticity                                      |
  | 35     | 3    | established timings I/II                          |
  | 38     | 16   | standard timings                                   |
  | 54     | 72   | descriptors (4 x 18 bytes)                        |
  | 126    | 1    | extension count                                   |
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

// Package edid assembles the 128-byte EDID base block and, through its
// Release3, Release4 and Hdmi façades, combines the base block with
// zero or more CTA-861 extension blocks into the final byte stream.
package edid

import (
	"github.com/ausocean/edid/descriptor"
	"github.com/ausocean/edid/value"
)

var baseHeader = [8]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// R3BaseBlock is the Release 3 (EDID 1.3) base block value model.
type R3BaseBlock struct {
	Manufacturer value.Manufacturer
	Product      value.ProductCode
	Serial       value.SerialNumber
	Date         value.R3ManufactureDate

	VideoInput   value.VideoInputR3
	ImageSize    value.ImageSizeR3
	Gamma        value.Gamma
	Feature      value.FeatureSupportR3
	Chromaticity value.Chromaticity

	EstablishedTimings []value.EstablishedTiming
	StandardTimings    []value.StandardTiming
	Descriptors        []descriptor.R3Descriptor

	// Extensions holds already-encoded 128-byte CTA-861 extension
	// blocks, in the order they should be appended.
	Extensions [][]byte
}

// Encode assembles the base block and any extension blocks into the
// final byte stream. Release 3 implicitly carries the 640x480@60Hz
// established timing regardless of what EstablishedTimings lists.
func (b R3BaseBlock) Encode() ([]byte, error) {
	if len(b.Descriptors) > descriptor.MaxDescriptors {
		return nil, newValue("too many descriptors: %d (max %d)", len(b.Descriptors), descriptor.MaxDescriptors)
	}
	if len(b.Descriptors) == 0 {
		return nil, newValue("release 3 requires a preferred timing descriptor in slot 0")
	}

	descs := make([]descriptor.Descriptor, len(b.Descriptors))
	for i, d := range b.Descriptors {
		descs[i] = d
	}
	descBytes, err := descriptor.FillToMax(descs)
	if err != nil {
		return nil, err
	}

	timings := withImpliedVGA(b.EstablishedTimings)

	block := make([]byte, 0, value.BlockLen)
	block = append(block, baseHeader[:]...)
	mfg := b.Manufacturer.Bytes()
	block = append(block, mfg[:]...)
	prod := b.Product.Bytes()
	block = append(block, prod[:]...)
	ser := b.Serial.Bytes()
	block = append(block, ser[:]...)
	date := b.Date.Bytes()
	block = append(block, date[:]...)
	block = append(block, 1, 3) // version 1, revision 3
	block = append(block, b.VideoInput.Bytes())
	imgSize := b.ImageSize.Bytes()
	block = append(block, imgSize[:]...)
	block = append(block, b.Gamma.Bytes())
	block = append(block, b.Feature.Bytes())
	chroma := b.Chromaticity.Bytes()
	block = append(block, chroma[:]...)
	et := value.EstablishedTimingsBytes(timings)
	block = append(block, et[:]...)
	st := value.StandardTimingsBytes(b.StandardTimings)
	block = append(block, st[:]...)
	block = append(block, descBytes...)
	block = append(block, byte(len(b.Extensions)))
	block = append(block, 0x00) // checksum placeholder

	if len(block) != value.BlockLen {
		panic("edid: assembled R3 base block is not 128 bytes")
	}
	block[value.BlockLen-1] = value.Checksum(block)

	return appendExtensions(block, b.Extensions), nil
}

// R4BaseBlock is the Release 4 (EDID 1.4) base block value model.
type R4BaseBlock struct {
	Manufacturer value.Manufacturer
	Product      value.ProductCode
	Serial       value.SerialNumber
	Date         R4Date

	VideoInput   value.VideoInputR4
	ImageSize    value.ImageSizeR4
	Gamma        value.Gamma
	Feature      value.FeatureSupportR4
	Chromaticity value.Chromaticity

	EstablishedTimings []value.EstablishedTiming
	StandardTimings    []value.StandardTiming
	Descriptors        []descriptor.R4Descriptor

	Extensions [][]byte
}

// R4Date is the tagged union of a Release 4 base block's date field:
// either a manufacture date or a model-year-only date.
type R4Date struct {
	manufacture *value.R4ManufactureDate
	model       *value.R4ModelDate
}

// NewR4ManufactureDate builds the manufacture-date variant.
func NewR4ManufactureDate(d value.R4ManufactureDate) R4Date { return R4Date{manufacture: &d} }

// NewR4ModelDate builds the model-year-only variant.
func NewR4ModelDate(d value.R4ModelDate) R4Date { return R4Date{model: &d} }

func (d R4Date) bytes() [2]byte {
	if d.model != nil {
		return d.model.Bytes()
	}
	return d.manufacture.Bytes()
}

// Encode assembles the base block and any extension blocks into the
// final byte stream.
func (b R4BaseBlock) Encode() ([]byte, error) {
	if len(b.Descriptors) > descriptor.MaxDescriptors {
		return nil, newValue("too many descriptors: %d (max %d)", len(b.Descriptors), descriptor.MaxDescriptors)
	}
	if b.Feature.ContinuousFrequency && !hasDisplayRangeLimitsR4(b.Descriptors) {
		return nil, newValue("continuous-frequency feature support requires a display range limits descriptor")
	}

	descs := make([]descriptor.Descriptor, len(b.Descriptors))
	for i, d := range b.Descriptors {
		descs[i] = d
	}
	descBytes, err := descriptor.FillToMax(descs)
	if err != nil {
		return nil, err
	}

	block := make([]byte, 0, value.BlockLen)
	block = append(block, baseHeader[:]...)
	mfg := b.Manufacturer.Bytes()
	block = append(block, mfg[:]...)
	prod := b.Product.Bytes()
	block = append(block, prod[:]...)
	ser := b.Serial.Bytes()
	block = append(block, ser[:]...)
	date := b.Date.bytes()
	block = append(block, date[:]...)
	block = append(block, 1, 4) // version 1, revision 4
	block = append(block, b.VideoInput.Bytes())
	imgSize := b.ImageSize.Bytes()
	block = append(block, imgSize[:]...)
	block = append(block, b.Gamma.Bytes())
	block = append(block, b.Feature.Bytes())
	chroma := b.Chromaticity.Bytes()
	block = append(block, chroma[:]...)
	et := value.EstablishedTimingsBytes(b.EstablishedTimings)
	block = append(block, et[:]...)
	st := value.StandardTimingsBytes(b.StandardTimings)
	block = append(block, st[:]...)
	block = append(block, descBytes...)
	block = append(block, byte(len(b.Extensions)))
	block = append(block, 0x00)

	if len(block) != value.BlockLen {
		panic("edid: assembled R4 base block is not 128 bytes")
	}
	block[value.BlockLen-1] = value.Checksum(block)

	return appendExtensions(block, b.Extensions), nil
}

func appendExtensions(block []byte, extensions [][]byte) []byte {
	out := make([]byte, 0, len(block)+len(extensions)*value.BlockLen)
	out = append(out, block...)
	for _, ext := range extensions {
		out = append(out, ext...)
	}
	return out
}

func withImpliedVGA(timings []value.EstablishedTiming) []value.EstablishedTiming {
	for _, t := range timings {
		if t == value.ET640x480_60Hz {
			return timings
		}
	}
	out := make([]value.EstablishedTiming, 0, len(timings)+1)
	out = append(out, value.ET640x480_60Hz)
	return append(out, timings...)
}

func hasDisplayRangeLimitsR4(descs []descriptor.R4Descriptor) bool {
	for _, d := range descs {
		b := d.Bytes()
		if b[3] == descriptor.TagDisplayRangeLimits {
			return true
		}
	}
	return false
}
