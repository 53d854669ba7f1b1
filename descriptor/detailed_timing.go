/*
NAME
  detailed_timing.go -

DESCRIPTION
  Detailed Timing Descriptor, EDID 1.4 Specification Section 3.10.2: the
  only descriptor form with no 5-byte tag header, carrying a pixel
  clock, horizontal/vertical active/blanking/sync/border/size fields
  and a sync-type/stereo flags byte.

  Byte layout (18 bytes, no header):

  =====================================================================
  | byte | contents                                                   |
  =====================================================================
  | 0    | pixel clock, low byte                                      |
  | 1    | pixel clock, high byte                                     |
  | 2    | horizontal active, low 8 bits                              |
  | 3    | horizontal blanking, low 8 bits                             |
  | 4    | horizontal active high nibble | horizontal blanking hi nib |
  | 5    | vertical active, low 8 bits                                |
  | 6    | vertical blanking, low 8 bits                              |
  | 7    | vertical active high nibble | vertical blanking high nibble|
  | 8    | horizontal sync offset, low 8 bits                          |
  | 9    | horizontal sync pulse width, low 8 bits                     |
  | 10   | vert sync offset low nibble | vert sync pulse low nibble   |
  | 11   | hso hi(2) | hsync hi(2) | vso hi(2) | vsync hi(2)           |
  | 12   | horizontal image size, low 8 bits                          |
  | 13   | vertical image size, low 8 bits                            |
  | 14   | h image size hi nibble | v image size hi nibble            |
  | 15   | horizontal border                                          |
  | 16   | vertical border                                            |
  | 17   | flags: interlace, stereo, sync type                        |
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

package descriptor

import "github.com/ausocean/edid/value"

// PixelClock is a detailed timing's pixel clock in kHz, 10..=655350,
// stored on the wire in units of 10 kHz.
type PixelClock uint32

// NewPixelClock validates khz against 10..=655350.
func NewPixelClock(khz int64) (PixelClock, error) {
	if khz < 10 || khz > 655350 {
		return 0, newDescriptorRange(khz, 10, 655350)
	}
	return PixelClock(khz), nil
}

func (p PixelClock) raw() uint16 { return uint16(p / 10) }

// Stereo selects one of the 7 detailed timing stereo viewing modes.
type Stereo uint8

const (
	StereoNone Stereo = iota
	StereoFieldSequentialRightOnSync
	StereoFieldSequentialLeftOnSync
	StereoTwoWayInterleavedRightOnEven
	StereoTwoWayInterleavedLeftOnEven
	StereoFourWayInterleaved
	StereoSideBySideInterleaved
)

func (s Stereo) flagBits() byte {
	switch s {
	case StereoNone:
		return 0
	case StereoFieldSequentialRightOnSync:
		return 0b010_0000
	case StereoFieldSequentialLeftOnSync:
		return 0b100_0000
	case StereoTwoWayInterleavedRightOnEven:
		return 0b010_0001
	case StereoTwoWayInterleavedLeftOnEven:
		return 0b100_0001
	case StereoFourWayInterleaved:
		return 0b110_0000
	case StereoSideBySideInterleaved:
		return 0b110_0001
	default:
		return 0
	}
}

// AnalogSync is the analog variant of a detailed timing's sync type:
// either bipolar composite or plain composite, each with serration and
// sync-on-RGB flags.
type AnalogSync struct {
	Bipolar      bool
	Serrations   bool
	SyncOnGreen  bool
}

func (s AnalogSync) flagBits() byte {
	var b byte
	if s.Bipolar {
		b |= 0b01 << 3
	}
	if s.Serrations {
		b |= 1 << 2
	}
	if s.SyncOnGreen {
		b |= 1 << 1
	}
	return b
}

// DigitalCompositeSync is the digital composite variant of a detailed
// timing's sync type.
type DigitalCompositeSync struct {
	Serrations bool
}

// DigitalSeparateSync is the digital separate variant of a detailed
// timing's sync type.
type DigitalSeparateSync struct {
	VSyncPositive bool
}

// DigitalSync is the digital variant of a detailed timing's sync type:
// either composite or separate, plus an HSync polarity flag.
type DigitalSync struct {
	composite     *DigitalCompositeSync
	separate      *DigitalSeparateSync
	HSyncPositive bool
}

// NewDigitalCompositeSync builds the composite variant.
func NewDigitalCompositeSync(c DigitalCompositeSync, hsyncPositive bool) DigitalSync {
	return DigitalSync{composite: &c, HSyncPositive: hsyncPositive}
}

// NewDigitalSeparateSync builds the separate variant.
func NewDigitalSeparateSync(s DigitalSeparateSync, hsyncPositive bool) DigitalSync {
	return DigitalSync{separate: &s, HSyncPositive: hsyncPositive}
}

func (s DigitalSync) flagBits() byte {
	var b byte
	if s.separate != nil {
		b |= 0b11 << 3
		if s.separate.VSyncPositive {
			b |= 1 << 2
		}
	} else {
		b |= 0b10 << 3
		if s.composite.Serrations {
			b |= 1 << 2
		}
	}
	if s.HSyncPositive {
		b |= 1 << 1
	}
	return b
}

// Sync is the tagged union of analog/digital sync types.
type Sync struct {
	analog  *AnalogSync
	digital *DigitalSync
}

// NewAnalogSync builds the analog variant.
func NewAnalogSync(s AnalogSync) Sync { return Sync{analog: &s} }

// NewDigitalSync builds the digital variant.
func NewDigitalSync(s DigitalSync) Sync { return Sync{digital: &s} }

func (s Sync) flagBits() byte {
	if s.digital != nil {
		return s.digital.flagBits()
	}
	return s.analog.flagBits()
}

// Horizontal carries a detailed timing's horizontal active, blanking
// and border fields.
type Horizontal struct {
	Active     value.U12
	FrontPorch value.U10
	SyncPulse  value.U10
	BackPorch  value.U12
	Border     value.U8
	SizeMm     value.U12
}

// Vertical carries a detailed timing's vertical active, blanking and
// border fields.
type Vertical struct {
	Active     value.U12
	FrontPorch value.U6
	SyncPulse  value.U6
	BackPorch  value.U12
	Border     value.U8
	SizeMm     value.U12
}

// DetailedTiming is the Detailed Timing Descriptor value model.
type DetailedTiming struct {
	PixelClock PixelClock
	Horizontal Horizontal
	Vertical   Vertical
	Interlace  bool
	Sync       Sync
	Stereo     Stereo
}

// Bytes returns the 18-byte encoding. Panics if the horizontal or
// vertical front-porch/border/sync/back-porch combination doesn't fit
// the bit widths the standard allots them — a builder-time invariant
// violation, not a runtime data error, since every input field was
// already individually range-checked at construction.
func (d DetailedTiming) Bytes() [DescriptorLen]byte {
	freq := d.PixelClock.raw()

	hact := d.Horizontal.Active.ToRaw()
	hborder := d.Horizontal.Border.ToRaw()
	hfp := d.Horizontal.FrontPorch.ToRaw()
	hso := uint16(hborder) + hfp
	mustFit10(hso, "horizontal front porch and border")

	hsync := d.Horizontal.SyncPulse.ToRaw()
	hbp := d.Horizontal.BackPorch.ToRaw()
	hblank := hso + hsync + hbp + uint16(hborder)
	mustFit12(hblank, "horizontal front porch, back porch, sync pulse and border")

	vact := d.Vertical.Active.ToRaw()
	vborder := d.Vertical.Border.ToRaw()
	vfp := uint16(d.Vertical.FrontPorch.ToRaw())
	vso := uint16(vborder) + vfp
	mustFit6(vso, "vertical front porch and border")

	vsync := uint16(d.Vertical.SyncPulse.ToRaw())
	vbp := d.Vertical.BackPorch.ToRaw()
	vblank := vso + vsync + vbp + uint16(vborder)
	mustFit12(vblank, "vertical front porch, back porch, sync pulse and border")

	hsize := d.Horizontal.SizeMm.ToRaw()
	vsize := d.Vertical.SizeMm.ToRaw()

	var flags byte
	if d.Interlace {
		flags |= 1 << 7
	}
	flags |= d.Stereo.flagBits()
	flags |= d.Sync.flagBits()

	vsoLo, vsoHi := byte(vso&0xF), byte((vso>>4)&0x3)
	vsyncLo, vsyncHi := byte(vsync&0xF), byte((vsync>>4)&0x3)
	hsoHi, hsyncHi := byte((hso>>8)&0x3), byte((hsync>>8)&0x3)

	return [DescriptorLen]byte{
		byte(freq), byte(freq >> 8),
		byte(hact), byte(hblank),
		byte(hact>>8)<<4 | byte(hblank>>8),
		byte(vact), byte(vblank),
		byte(vact>>8)<<4 | byte(vblank>>8),
		byte(hso), byte(hsync),
		vsoLo<<4 | vsyncLo,
		hsoHi<<6 | hsyncHi<<4 | vsoHi<<2 | vsyncHi,
		byte(hsize), byte(vsize),
		byte(hsize>>8)<<4 | byte(vsize>>8),
		hborder, vborder,
		flags,
	}
}

func mustFit6(v uint16, what string) {
	if v > 0x3F {
		panic(what + " don't fit into 6 bits")
	}
}

func mustFit10(v uint16, what string) {
	if v > 0x3FF {
		panic(what + " don't fit into 10 bits")
	}
}

func mustFit12(v uint16, what string) {
	if v > 0xFFF {
		panic(what + " don't fit into 12 bits")
	}
}
