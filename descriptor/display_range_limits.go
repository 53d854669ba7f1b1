/*
NAME
  display_range_limits.go -

DESCRIPTION
  Display Range Limits Descriptor, covering all four video-timing
  support sub-types (default GTF, secondary GTF, range-limits-only, and
  CVT) and the shape differences between Release 3 and Release 4: a
  Release 4 descriptor carries one extra flag byte ahead of the
  frequency fields to let any of the four range bounds exceed 255 (up
  to 510) by storing it as an offset of 255, something a Release 3
  descriptor's plain 1-byte fields can't represent.

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

import "math"

// Frequency is a nonzero byte-sized Hz/kHz frequency bound used by
// Release 3 display range limits (1..=255).
type Frequency uint8

// NewFrequency validates raw against 1..=255.
func NewFrequency(raw int64) (Frequency, error) {
	if raw < 1 || raw > 255 {
		return 0, newDescriptorRange(raw, 1, 255)
	}
	return Frequency(raw), nil
}

// FrequencyRange is a [min, max) style bound pair of Frequency values;
// min must be strictly less than max.
type FrequencyRange struct {
	Min, Max Frequency
}

// NewFrequencyRange validates min < max.
func NewFrequencyRange(min, max Frequency) (FrequencyRange, error) {
	if min >= max {
		return FrequencyRange{}, newDescriptorValue("empty frequency range: (%d..%d)", min, max)
	}
	return FrequencyRange{Min: min, Max: max}, nil
}

// R4Frequency is a 9-bit-capable Hz/kHz frequency bound used by Release
// 4 display range limits (1..=510).
type R4Frequency uint16

// NewR4Frequency validates raw against 1..=510.
func NewR4Frequency(raw int64) (R4Frequency, error) {
	if raw < 1 || raw > 510 {
		return 0, newDescriptorRange(raw, 1, 510)
	}
	return R4Frequency(raw), nil
}

// R4FrequencyRange is a [min, max) style bound pair of R4Frequency
// values; min must be strictly less than max.
type R4FrequencyRange struct {
	Min, Max R4Frequency
}

// NewR4FrequencyRange validates min < max.
func NewR4FrequencyRange(min, max R4Frequency) (R4FrequencyRange, error) {
	if min >= max {
		return R4FrequencyRange{}, newDescriptorValue("empty frequency range: (%d..%d)", min, max)
	}
	return R4FrequencyRange{Min: min, Max: max}, nil
}

// RangeLimitsPixelClock is the maximum pixel clock a display range
// limits descriptor declares, in MHz, 1..=2550, rounded up to the
// nearest 10 MHz on the wire.
type RangeLimitsPixelClock uint16

// NewRangeLimitsPixelClock validates mhz against 1..=2550.
func NewRangeLimitsPixelClock(mhz int64) (RangeLimitsPixelClock, error) {
	if mhz < 1 || mhz > 2550 {
		return 0, newDescriptorRange(mhz, 1, 2550)
	}
	return RangeLimitsPixelClock(mhz), nil
}

func (p RangeLimitsPixelClock) roundedUp() uint16 {
	return uint16(math.Ceil(float64(p)/10.0) * 10.0)
}

func (p RangeLimitsPixelClock) raw() byte { return byte(p.roundedUp() / 10) }

// GTF describes the Secondary GTF timing formula parameters.
type GTF struct {
	// HorizontalStartFrequency is in kHz, 1..=510, must be even (stored
	// as value/2).
	HorizontalStartFrequency uint16
	BlankingOffset           uint8
	BlankingGradient         uint16
	BlankingScalingFactor    uint8
	BlankingScalingWeighting uint8
}

func (g GTF) bytes() [8]byte {
	lo, hi := byte(g.BlankingGradient), byte(g.BlankingGradient>>8)
	return [8]byte{
		0x02, 0x00,
		byte(g.HorizontalStartFrequency / 2),
		g.BlankingOffset * 2,
		lo, hi,
		g.BlankingScalingFactor,
		g.BlankingScalingWeighting * 2,
	}
}

var defaultGTFPayload = [8]byte{0x00, 0x0A, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20}
var rangeLimitsOnlyPayload = [8]byte{0x01, 0x0A, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20}

// CVTAspectRatio identifies one of the 5 aspect ratios a CVT display
// range limits block can advertise support for.
type CVTAspectRatio uint8

const (
	CVTRatio4x3  CVTAspectRatio = 0
	CVTRatio16x9 CVTAspectRatio = 1
	CVTRatio16x10 CVTAspectRatio = 2
	CVTRatio5x4  CVTAspectRatio = 3
	CVTRatio15x9 CVTAspectRatio = 4
)

// CVT describes the CVT (Coordinated Video Timings) version 1 support
// block.
type CVT struct {
	MaximumActivePixelsPerLine  uint16
	SupportedAspectRatios       []CVTAspectRatio
	PreferredAspectRatio        CVTAspectRatio
	StandardBlankingSupported   bool
	ReducedBlankingSupported    bool
	HorizontalShrinkSupported   bool
	HorizontalStretchSupported  bool
	VerticalShrinkSupported     bool
	VerticalStretchSupported    bool
	PreferredVerticalRefreshHz  Frequency
}

func (c CVT) bytes(maxPixelClock RangeLimitsPixelClock) ([8]byte, error) {
	diff := maxPixelClock.roundedUp() - uint16(maxPixelClock)
	if diff >= 10 {
		return [8]byte{}, newDescriptorValue("computed additional precision is too large: %d", diff)
	}
	pclkDiff := byte(diff) * 4 // additional precision, in units of 0.25 MHz
	rawMaxPix := (c.MaximumActivePixelsPerLine + 7) / 8
	maxPixHi := byte((rawMaxPix >> 8) & 0x3)
	maxPixLo := byte(rawMaxPix & 0xFF)

	var ratioByte byte
	for _, r := range c.SupportedAspectRatios {
		ratioByte |= 1 << (7 - byte(r))
	}

	prefByte := byte(c.PreferredAspectRatio) << 5
	if c.ReducedBlankingSupported {
		prefByte |= 1 << 4
	}
	if c.StandardBlankingSupported {
		prefByte |= 1 << 3
	}

	var shrinkStretch byte
	if c.HorizontalShrinkSupported {
		shrinkStretch |= 1 << 7
	}
	if c.HorizontalStretchSupported {
		shrinkStretch |= 1 << 6
	}
	if c.VerticalShrinkSupported {
		shrinkStretch |= 1 << 5
	}
	if c.VerticalStretchSupported {
		shrinkStretch |= 1 << 4
	}

	return [8]byte{
		0x04, 0x11,
		pclkDiff<<2 | maxPixHi,
		maxPixLo,
		ratioByte,
		prefByte,
		shrinkStretch,
		byte(c.PreferredVerticalRefreshHz),
	}, nil
}

// R3DisplayRangeLimits is the Release 3 Display Range Limits
// descriptor.
type R3DisplayRangeLimits struct {
	HorizontalKHz   FrequencyRange
	VerticalHz      FrequencyRange
	MaxPixelClock   RangeLimitsPixelClock
	DefaultGTF      bool
	SecondaryGTF    *GTF
}

// Bytes returns the 18-byte encoding.
func (d R3DisplayRangeLimits) Bytes() [DescriptorLen]byte {
	var payload [PayloadLen]byte
	payload[0] = byte(d.VerticalHz.Min)
	payload[1] = byte(d.VerticalHz.Max)
	payload[2] = byte(d.HorizontalKHz.Min)
	payload[3] = byte(d.HorizontalKHz.Max)
	payload[4] = d.MaxPixelClock.raw()
	var tail [8]byte
	if d.SecondaryGTF != nil {
		tail = d.SecondaryGTF.bytes()
	} else {
		tail = defaultGTFPayload
	}
	copy(payload[5:], tail[:])
	return withHeader(TagDisplayRangeLimits, payload)
}

// R4DisplayRangeLimits is the Release 4 Display Range Limits
// descriptor. Unlike Release 3 it has a 1-byte flag prefix ahead of the
// frequency bytes, carried in the last byte of the 5-byte header, which
// Release 3 leaves as 0x00. It supports default GTF, secondary GTF
// (deprecated since EDID 1.4), range-limits-only, and CVT sub-types.
type R4DisplayRangeLimits struct {
	HorizontalKHz R4FrequencyRange
	VerticalHz    R4FrequencyRange
	MaxPixelClock RangeLimitsPixelClock

	DefaultGTF       bool
	RangeLimitsOnly  bool
	SecondaryGTF     *GTF
	CVT              *CVT
}

// Bytes returns the 18-byte encoding. This descriptor's header is one
// byte shorter than the other tagged descriptors (4 bytes, no trailing
// 0x00) since its payload is correspondingly one byte longer (14
// bytes, carrying the extra flags byte below) to keep the total at 18.
func (d R4DisplayRangeLimits) Bytes() [DescriptorLen]byte {
	var payload [PayloadLen + 1]byte

	var flags byte
	if d.VerticalHz.Max > 255 {
		flags |= 1 << 1
		if d.VerticalHz.Min > 255 {
			flags |= 1 << 0
		}
	}
	if d.HorizontalKHz.Max > 255 {
		flags |= 1 << 3
		if d.HorizontalKHz.Min > 255 {
			flags |= 1 << 2
		}
	}

	// A bound flagged above is stored as its excess over 255.
	freqByte := func(f R4Frequency) byte {
		if f > 255 {
			return byte(f - 255)
		}
		return byte(f)
	}

	payload[0] = flags
	payload[1] = freqByte(d.VerticalHz.Min)
	payload[2] = freqByte(d.VerticalHz.Max)
	payload[3] = freqByte(d.HorizontalKHz.Min)
	payload[4] = freqByte(d.HorizontalKHz.Max)
	payload[5] = d.MaxPixelClock.raw()

	var tail [8]byte
	switch {
	case d.CVT != nil:
		b, err := d.CVT.bytes(d.MaxPixelClock)
		if err != nil {
			panic(err)
		}
		tail = b
	case d.SecondaryGTF != nil:
		tail = d.SecondaryGTF.bytes()
	case d.RangeLimitsOnly:
		tail = rangeLimitsOnlyPayload
	default:
		tail = defaultGTFPayload
	}
	copy(payload[6:], tail[:])

	var out [DescriptorLen]byte
	out[0], out[1], out[2], out[3] = 0, 0, 0, TagDisplayRangeLimits
	copy(out[4:], payload[:])
	return out
}
