/*
NAME
  display.go -

DESCRIPTION
  Basic display parameter value types covering EDID base block bytes
  0x14-0x35: video input definition, screen size, gamma, feature
  support, chromaticity and the established/standard timing bitsets.

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

import "math"

// AnalogSignalLevel is the video white-and-sync level standard, byte
// 0x14 bits 6-5 when the input is analog.
type AnalogSignalLevel uint8

const (
	SignalLevel_0_700_S_0_300_T_1_000 AnalogSignalLevel = 0
	SignalLevel_0_714_S_0_286_T_1_000 AnalogSignalLevel = 1
	SignalLevel_1_000_S_0_400_T_1_400 AnalogSignalLevel = 2
	SignalLevel_0_700_S_0_000_T_0_700 AnalogSignalLevel = 3
)

// AnalogVideoSetup is the blank-to-black setup/pedestal flag, byte 0x14
// bit 4 when the input is analog.
type AnalogVideoSetup uint8

const (
	SetupBlankLevelIsBlackLevel        AnalogVideoSetup = 0
	SetupBlankToBlackSetupOrPedestal   AnalogVideoSetup = 1
)

// AnalogVideoInput is the analog variant of the video input definition.
type AnalogVideoInput struct {
	SignalLevel          AnalogSignalLevel
	Setup                AnalogVideoSetup
	SeparateHVSync       bool
	CompositeSyncOnHSync bool
	CompositeSyncOnGreen bool
	SerrationsOnVSync    bool
}

// Bytes returns the single-byte encoding (bit 7 clear: analog).
func (a AnalogVideoInput) Bytes() byte {
	var b byte
	b |= byte(a.SignalLevel) << 5
	b |= byte(a.Setup) << 4
	if a.SeparateHVSync {
		b |= 1 << 3
	}
	if a.CompositeSyncOnHSync {
		b |= 1 << 2
	}
	if a.CompositeSyncOnGreen {
		b |= 1 << 1
	}
	if a.SerrationsOnVSync {
		b |= 1
	}
	return b
}

// R3DigitalVideoInput is the Release 3 digital variant: a single DFP 1.x
// compatibility flag.
type R3DigitalVideoInput struct {
	DFP1Compatible bool
}

// Bytes returns the single-byte encoding (bit 7 set: digital).
func (d R3DigitalVideoInput) Bytes() byte {
	b := byte(0x80)
	if d.DFP1Compatible {
		b |= 1
	}
	return b
}

// VideoInputR3 is the tagged union of analog/digital video input
// definitions for a Release 3 base block.
type VideoInputR3 struct {
	analog  *AnalogVideoInput
	digital *R3DigitalVideoInput
}

// NewVideoInputR3Analog builds an analog video input definition.
func NewVideoInputR3Analog(a AnalogVideoInput) VideoInputR3 { return VideoInputR3{analog: &a} }

// NewVideoInputR3Digital builds a digital video input definition.
func NewVideoInputR3Digital(d R3DigitalVideoInput) VideoInputR3 { return VideoInputR3{digital: &d} }

// IsDigital reports whether the union holds the digital variant.
func (v VideoInputR3) IsDigital() bool { return v.digital != nil }

// Bytes returns the single-byte encoding.
func (v VideoInputR3) Bytes() byte {
	if v.digital != nil {
		return v.digital.Bytes()
	}
	return v.analog.Bytes()
}

// DigitalColorDepth is the Release 4 digital color bit depth, byte 0x14
// bits 6-4 when the input is digital.
type DigitalColorDepth uint8

const (
	ColorDepthUndefined DigitalColorDepth = 0
	ColorDepth6Bpc       DigitalColorDepth = 1
	ColorDepth8Bpc       DigitalColorDepth = 2
	ColorDepth10Bpc      DigitalColorDepth = 3
	ColorDepth12Bpc      DigitalColorDepth = 4
	ColorDepth14Bpc      DigitalColorDepth = 5
	ColorDepth16Bpc      DigitalColorDepth = 6
)

// DigitalInterface is the Release 4 digital video interface standard,
// byte 0x14 bits 3-0 when the input is digital.
type DigitalInterface uint8

const (
	InterfaceUndefined    DigitalInterface = 0
	InterfaceDVI          DigitalInterface = 1
	InterfaceHDMIa        DigitalInterface = 2
	InterfaceHDMIb        DigitalInterface = 3
	InterfaceMDDI         DigitalInterface = 4
	InterfaceDisplayPort  DigitalInterface = 5
)

// R4DigitalVideoInput is the Release 4 digital variant of the video
// input definition.
type R4DigitalVideoInput struct {
	ColorDepth DigitalColorDepth
	Interface  DigitalInterface
}

// Bytes returns the single-byte encoding (bit 7 set: digital).
func (d R4DigitalVideoInput) Bytes() byte {
	b := byte(1 << 7)
	b |= byte(d.ColorDepth) << 4
	b |= byte(d.Interface)
	return b
}

// VideoInputR4 is the tagged union of analog/digital video input
// definitions for a Release 4 base block.
type VideoInputR4 struct {
	analog  *AnalogVideoInput
	digital *R4DigitalVideoInput
}

// NewVideoInputR4Analog builds an analog video input definition.
func NewVideoInputR4Analog(a AnalogVideoInput) VideoInputR4 { return VideoInputR4{analog: &a} }

// NewVideoInputR4Digital builds a digital video input definition.
func NewVideoInputR4Digital(d R4DigitalVideoInput) VideoInputR4 { return VideoInputR4{digital: &d} }

// IsDigital reports whether the union holds the digital variant.
func (v VideoInputR4) IsDigital() bool { return v.digital != nil }

// Bytes returns the single-byte encoding.
func (v VideoInputR4) Bytes() byte {
	if v.digital != nil {
		return v.digital.Bytes()
	}
	return v.analog.Bytes()
}

// ScreenSize is a physical screen size in whole centimetres, 1..=255 per
// dimension.
type ScreenSize struct {
	HorizontalCm uint8
	VerticalCm   uint8
}

// NewScreenSize validates both dimensions against 1..=255.
func NewScreenSize(horizontalCm, verticalCm int) (ScreenSize, error) {
	if horizontalCm < 1 || horizontalCm > 255 {
		return ScreenSize{}, newRange(int64(horizontalCm), 1, 255)
	}
	if verticalCm < 1 || verticalCm > 255 {
		return ScreenSize{}, newRange(int64(verticalCm), 1, 255)
	}
	return ScreenSize{HorizontalCm: uint8(horizontalCm), VerticalCm: uint8(verticalCm)}, nil
}

// ImageSizeR3 is the tagged union of Release 3 image size
// representations: either an explicit size, or undefined.
type ImageSizeR3 struct {
	size      *ScreenSize
}

// NewImageSizeR3Size builds an explicit-size variant.
func NewImageSizeR3Size(s ScreenSize) ImageSizeR3 { return ImageSizeR3{size: &s} }

// NewImageSizeR3Undefined builds the undefined variant.
func NewImageSizeR3Undefined() ImageSizeR3 { return ImageSizeR3{} }

// Bytes returns the 2-byte (h_cm, v_cm) encoding, or (0,0) if undefined.
func (i ImageSizeR3) Bytes() [2]byte {
	if i.size == nil {
		return [2]byte{0, 0}
	}
	return [2]byte{i.size.HorizontalCm, i.size.VerticalCm}
}

// LandscapeRatio is a landscape aspect ratio in 1.00..=3.54.
type LandscapeRatio float64

// NewLandscapeRatio validates width/height against 1.00..=3.54.
func NewLandscapeRatio(width, height float64) (LandscapeRatio, error) {
	r := width / height
	if r < 1.0 || r > 3.54 {
		return 0, newValue("landscape aspect ratio out of range: %g (range: 1.00..=3.54)", r)
	}
	return LandscapeRatio(r), nil
}

// PortraitRatio is a portrait aspect ratio in 0.28..=0.99.
type PortraitRatio float64

// NewPortraitRatio validates width/height against 0.28..=0.99.
func NewPortraitRatio(width, height float64) (PortraitRatio, error) {
	r := width / height
	if r < 0.28 || r > 0.99 {
		return 0, newValue("portrait aspect ratio out of range: %g (range: 0.28..=0.99)", r)
	}
	return PortraitRatio(r), nil
}

// ImageSizeR4 is the tagged union of Release 4 image size
// representations: explicit size, landscape ratio, portrait ratio, or
// undefined. Ratios are not available in Release 3.
type ImageSizeR4 struct {
	size      *ScreenSize
	landscape *LandscapeRatio
	portrait  *PortraitRatio
}

// NewImageSizeR4Size builds an explicit-size variant.
func NewImageSizeR4Size(s ScreenSize) ImageSizeR4 { return ImageSizeR4{size: &s} }

// NewImageSizeR4Undefined builds the undefined variant.
func NewImageSizeR4Undefined() ImageSizeR4 { return ImageSizeR4{} }

// NewImageSizeR4Landscape builds a landscape-ratio variant.
func NewImageSizeR4Landscape(r LandscapeRatio) ImageSizeR4 { return ImageSizeR4{landscape: &r} }

// NewImageSizeR4Portrait builds a portrait-ratio variant.
func NewImageSizeR4Portrait(r PortraitRatio) ImageSizeR4 { return ImageSizeR4{portrait: &r} }

// Bytes returns the 2-byte encoding for whichever variant is set.
func (i ImageSizeR4) Bytes() [2]byte {
	switch {
	case i.landscape != nil:
		stored := uint8(math.Round(float64(*i.landscape)*100.0) - 99)
		return [2]byte{stored, 0x00}
	case i.portrait != nil:
		stored := uint8(math.Round(100.0/float64(*i.portrait)) - 99)
		return [2]byte{0x00, stored}
	case i.size != nil:
		return [2]byte{i.size.HorizontalCm, i.size.VerticalCm}
	default:
		return [2]byte{0, 0}
	}
}

// Gamma is the display transfer characteristic, either an explicit
// gamma value in 1.00..=3.54 or a sentinel meaning the display
// information extension block carries it instead.
type Gamma struct {
	value             float64
	isExtensionMarker bool
}

// NewGamma validates gamma against 1.00..=3.54.
func NewGamma(gamma float64) (Gamma, error) {
	if gamma < 1.0 || gamma > 3.54 {
		return Gamma{}, newValue("gamma out of range: %g (range: 1.00..=3.54)", gamma)
	}
	return Gamma{value: gamma}, nil
}

// GammaDisplayInformationExtension builds the sentinel meaning gamma is
// defined in a Display Information Extension block instead.
func GammaDisplayInformationExtension() Gamma {
	return Gamma{isExtensionMarker: true}
}

// Bytes returns the single-byte encoding: round(100*gamma)-100, or 0xFF
// for the extension sentinel.
func (g Gamma) Bytes() byte {
	if g.isExtensionMarker {
		return 0xFF
	}
	return byte(math.Round(g.value*100.0 - 100.0))
}

// DisplayColorType is the analog display color type, byte 0x18 bits 4-3
// in a Release 3 block (also used for Release 4 analog inputs).
type DisplayColorType uint8

const (
	ColorTypeMonochromeGrayScale DisplayColorType = 0
	ColorTypeRGBColor            DisplayColorType = 1
	ColorTypeNonRGBColor         DisplayColorType = 2
	ColorTypeUndefined           DisplayColorType = 3
)

// DigitalColorEncoding is the Release 4 digital display color encoding,
// byte 0x18 bits 4-3 when the input is digital.
type DigitalColorEncoding uint8

const (
	ColorEncodingRGB444                    DigitalColorEncoding = 0
	ColorEncodingRGB444YCbCr444             DigitalColorEncoding = 1
	ColorEncodingRGB444YCbCr422             DigitalColorEncoding = 2
	ColorEncodingRGB444YCbCr444YCbCr422     DigitalColorEncoding = 3
)

// FeatureSupportR3 is the Release 3 feature support byte, 0x18.
type FeatureSupportR3 struct {
	Standby                bool
	Suspend                bool
	ActiveOffVeryLowPower  bool
	DisplayType            DisplayColorType
	SRGBDefault            bool
	PreferredTimingIsFirst bool
	DefaultGTFSupported    bool
}

// Bytes returns the single-byte encoding.
func (f FeatureSupportR3) Bytes() byte {
	var b byte
	if f.Standby {
		b |= 1 << 7
	}
	if f.Suspend {
		b |= 1 << 6
	}
	if f.ActiveOffVeryLowPower {
		b |= 1 << 5
	}
	b |= byte(f.DisplayType) << 3
	if f.SRGBDefault {
		b |= 1 << 2
	}
	if f.PreferredTimingIsFirst {
		b |= 1 << 1
	}
	if f.DefaultGTFSupported {
		b |= 1
	}
	return b
}

// DisplayColorR4 is the tagged union of analog/digital color
// descriptions for a Release 4 feature support byte.
type DisplayColorR4 struct {
	analog  *DisplayColorType
	digital *DigitalColorEncoding
}

// NewDisplayColorR4Analog builds the analog variant.
func NewDisplayColorR4Analog(c DisplayColorType) DisplayColorR4 { return DisplayColorR4{analog: &c} }

// NewDisplayColorR4Digital builds the digital variant.
func NewDisplayColorR4Digital(c DigitalColorEncoding) DisplayColorR4 {
	return DisplayColorR4{digital: &c}
}

func (c DisplayColorR4) raw() byte {
	if c.digital != nil {
		return byte(*c.digital)
	}
	return byte(*c.analog)
}

// FeatureSupportR4 is the Release 4 feature support byte, 0x18.
type FeatureSupportR4 struct {
	Standby               bool
	Suspend               bool
	ActiveOffVeryLowPower bool
	Color                 DisplayColorR4
	SRGBDefault           bool
	PreferredTimingNative bool
	ContinuousFrequency   bool
}

// Bytes returns the single-byte encoding.
func (f FeatureSupportR4) Bytes() byte {
	var b byte
	if f.Standby {
		b |= 1 << 7
	}
	if f.Suspend {
		b |= 1 << 6
	}
	if f.ActiveOffVeryLowPower {
		b |= 1 << 5
	}
	b |= f.Color.raw() << 3
	if f.SRGBDefault {
		b |= 1 << 2
	}
	if f.PreferredTimingNative {
		b |= 1 << 1
	}
	if f.ContinuousFrequency {
		b |= 1
	}
	return b
}

// ChromaticityCoordinate is a single chromaticity coordinate in
// 0.0..=1.0, stored as a 10-bit fixed-point value.
type ChromaticityCoordinate float64

// NewChromaticityCoordinate validates v against 0.0..=1.0.
func NewChromaticityCoordinate(v float64) (ChromaticityCoordinate, error) {
	if v < 0.0 || v > 1.0 {
		return 0, newValue("chromaticity coordinate out of range: %g (range: 0.0..=1.0)", v)
	}
	return ChromaticityCoordinate(v), nil
}

func (c ChromaticityCoordinate) raw10() uint16 {
	return uint16(math.Round(float64(c) * 1024.0))
}

// ChromaticityPoint is an (x, y) chromaticity coordinate pair.
type ChromaticityPoint struct {
	X, Y ChromaticityCoordinate
}

// NewChromaticityPoint validates and builds a coordinate pair.
func NewChromaticityPoint(x, y float64) (ChromaticityPoint, error) {
	cx, err := NewChromaticityCoordinate(x)
	if err != nil {
		return ChromaticityPoint{}, err
	}
	cy, err := NewChromaticityCoordinate(y)
	if err != nil {
		return ChromaticityPoint{}, err
	}
	return ChromaticityPoint{X: cx, Y: cy}, nil
}

// ChromaticityPoints holds all four chromaticity points a color display
// carries: white, red, green and blue.
type ChromaticityPoints struct {
	White, Red, Green, Blue ChromaticityPoint
}

// Chromaticity is the tagged union of monochrome (white point only) and
// color (all four points) chromaticity.
type Chromaticity struct {
	mono  *ChromaticityPoint
	color *ChromaticityPoints
}

// NewChromaticityMono builds the monochrome variant.
func NewChromaticityMono(white ChromaticityPoint) Chromaticity { return Chromaticity{mono: &white} }

// NewChromaticityColor builds the color variant.
func NewChromaticityColor(p ChromaticityPoints) Chromaticity { return Chromaticity{color: &p} }

// Bytes returns the 10-byte encoding (EDID base block bytes 0x19-0x22).
func (c Chromaticity) Bytes() [10]byte {
	split := func(p ChromaticityPoint) (xLo, xHi, yLo, yHi byte) {
		rx, ry := p.X.raw10(), p.Y.raw10()
		return byte(rx & 0b11), byte(rx >> 2), byte(ry & 0b11), byte(ry >> 2)
	}
	if c.mono != nil {
		wxLo, wxHi, wyLo, wyHi := split(*c.mono)
		return [10]byte{
			0x00,
			wxLo<<2 | wyLo,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			wxHi, wyHi,
		}
	}
	rxLo, rxHi, ryLo, ryHi := split(c.color.Red)
	gxLo, gxHi, gyLo, gyHi := split(c.color.Green)
	bxLo, bxHi, byLo, byHi := split(c.color.Blue)
	wxLo, wxHi, wyLo, wyHi := split(c.color.White)
	return [10]byte{
		rxLo<<6 | ryLo<<4 | gxLo<<2 | gyLo,
		bxLo<<6 | byLo<<4 | wxLo<<2 | wyLo,
		rxHi, ryHi,
		gxHi, gyHi,
		bxHi, byHi,
		wxHi, wyHi,
	}
}

// EstablishedTiming identifies one of the 24 predefined timing modes
// packed into the established timings I/II 3-byte bitset.
type EstablishedTiming uint8

const (
	ET800x600_60Hz EstablishedTiming = iota
	ET800x600_56Hz
	ET640x480_75Hz
	ET640x480_72Hz
	ET640x480_67Hz
	ET640x480_60Hz
	ET720x400_88Hz
	ET720x400_70Hz
	ET1280x1024_75Hz
	ET1024x768_75Hz
	ET1024x768_70Hz
	ET1024x768_60Hz
	ET1024x768_87HzInterlaced
	ET832x624_75Hz
	ET800x600_75Hz
	ET800x600_72Hz
	ET1152x870_75Hz
	ETManufacturer0
	ETManufacturer1
	ETManufacturer2
	ETManufacturer3
	ETManufacturer4
	ETManufacturer5
	ETManufacturer6
)

// EstablishedTimingsBytes packs a set of established timings into the
// 3-byte bitset at base block bytes 0x23-0x25.
func EstablishedTimingsBytes(timings []EstablishedTiming) [3]byte {
	var b [3]byte
	for _, et := range timings {
		switch et {
		case ET800x600_60Hz:
			b[0] |= 1 << 0
		case ET800x600_56Hz:
			b[0] |= 1 << 1
		case ET640x480_75Hz:
			b[0] |= 1 << 2
		case ET640x480_72Hz:
			b[0] |= 1 << 3
		case ET640x480_67Hz:
			b[0] |= 1 << 4
		case ET640x480_60Hz:
			b[0] |= 1 << 5
		case ET720x400_88Hz:
			b[0] |= 1 << 6
		case ET720x400_70Hz:
			b[0] |= 1 << 7
		case ET1280x1024_75Hz:
			b[1] |= 1 << 0
		case ET1024x768_75Hz:
			b[1] |= 1 << 1
		case ET1024x768_70Hz:
			b[1] |= 1 << 2
		case ET1024x768_60Hz:
			b[1] |= 1 << 3
		case ET1024x768_87HzInterlaced:
			b[1] |= 1 << 4
		case ET832x624_75Hz:
			b[1] |= 1 << 5
		case ET800x600_75Hz:
			b[1] |= 1 << 6
		case ET800x600_72Hz:
			b[1] |= 1 << 7
		case ET1152x870_75Hz:
			b[2] |= 1 << 7
		case ETManufacturer0:
			b[2] |= 1 << 0
		case ETManufacturer1:
			b[2] |= 1 << 1
		case ETManufacturer2:
			b[2] |= 1 << 2
		case ETManufacturer3:
			b[2] |= 1 << 3
		case ETManufacturer4:
			b[2] |= 1 << 4
		case ETManufacturer5:
			b[2] |= 1 << 5
		case ETManufacturer6:
			b[2] |= 1 << 6
		}
	}
	return b
}

// EstablishedTimingIII identifies one of the 44 predefined modes packed
// into the Established Timings III descriptor's 6-byte bitset (Release
// 4 only). Bit v%8 of byte v/8, numbered from the descriptor's own
// table rather than the I/II table above. Bits 40-43 are reserved by
// the table and have no named constant.
type EstablishedTimingIII uint8

const (
	ET3_1152x864_75Hz EstablishedTimingIII = iota
	ET3_1024x768_85Hz
	ET3_800x600_85Hz
	ET3_848x480_60Hz
	ET3_640x480_85Hz
	ET3_720x400_85Hz
	ET3_640x400_85Hz
	ET3_640x350_85Hz
	ET3_1280x1024_85Hz
	ET3_1280x1024_60Hz
	ET3_1280x960_85Hz
	ET3_1280x960_60Hz
	ET3_1280x768_85Hz
	ET3_1280x768_75Hz
	ET3_1280x768_60Hz
	ET3_1280x768_60Hz_RB
	ET3_1400x1050_75Hz
	ET3_1400x1050_60Hz
	ET3_1400x1050_60Hz_RB
	ET3_1440x900_85Hz
	ET3_1440x900_75Hz
	ET3_1440x900_60Hz
	ET3_1440x900_60Hz_RB
	ET3_1360x768_60Hz
	ET3_1600x1200_70Hz
	ET3_1600x1200_65Hz
	ET3_1600x1200_60Hz
	ET3_1680x1050_85Hz
	ET3_1680x1050_75Hz
	ET3_1680x1050_60Hz
	ET3_1680x1050_60Hz_RB
	ET3_1400x1050_85Hz
	ET3_1920x1200_60Hz
	ET3_1920x1200_60Hz_RB
	ET3_1856x1392_75Hz
	ET3_1856x1392_60Hz
	ET3_1792x1344_75Hz
	ET3_1792x1344_60Hz
	ET3_1600x1200_85Hz
	ET3_1600x1200_75Hz
)

const (
	ET3_1920x1440_75Hz EstablishedTimingIII = iota + 44
	ET3_1920x1440_60Hz
	ET3_1920x1200_85Hz
	ET3_1920x1200_75Hz
)

// EstablishedTimingsIIIBytes packs a set of bit indices (each < 48, per
// the Established Timings III descriptor's mode table; indices 40-43 are
// reserved) into the 6-byte bitset.
func EstablishedTimingsIIIBytes(bits []EstablishedTimingIII) [6]byte {
	var out [6]byte
	for _, v := range bits {
		out[v/8] |= 1 << (v % 8)
	}
	return out
}

// StandardTimingRatio is the aspect ratio field of a standard timing.
type StandardTimingRatio uint8

const (
	Ratio16x10 StandardTimingRatio = 0
	Ratio4x3   StandardTimingRatio = 1
	Ratio5x4   StandardTimingRatio = 2
	Ratio16x9  StandardTimingRatio = 3
)

// StandardTiming is one of up to 8 standard timing slots in the base
// block, bytes 0x26-0x35.
type StandardTiming struct {
	horizontal int
	ratio      StandardTimingRatio
	refreshHz  int
}

// NewStandardTiming validates horizontal (256..=2288, multiple of 8) and
// refreshHz (60..=123).
func NewStandardTiming(horizontal int, ratio StandardTimingRatio, refreshHz int) (StandardTiming, error) {
	if horizontal < 256 || horizontal > 2288 {
		return StandardTiming{}, newRange(int64(horizontal), 256, 2288)
	}
	if horizontal%8 != 0 {
		return StandardTiming{}, newValue("standard timing horizontal size must be a multiple of 8 pixels, got %d", horizontal)
	}
	if refreshHz < 60 || refreshHz > 123 {
		return StandardTiming{}, newRange(int64(refreshHz), 60, 123)
	}
	return StandardTiming{horizontal: horizontal, ratio: ratio, refreshHz: refreshHz}, nil
}

// Bytes returns the 2-byte encoding for this timing slot.
func (s StandardTiming) Bytes() [2]byte {
	b0 := byte(s.horizontal/8 - 31)
	b1 := byte(s.refreshHz-60) & 0x3F
	b1 |= byte(s.ratio) << 6
	return [2]byte{b0, b1}
}

// StandardTimingsBytes packs up to 8 standard timing slots into the
// 16-byte field, filling unused trailing slots with the unused-slot
// sentinel 0x01 0x01.
func StandardTimingsBytes(timings []StandardTiming) [16]byte {
	var out [16]byte
	for i := 0; i < 8; i++ {
		if i < len(timings) {
			b := timings[i].Bytes()
			out[i*2], out[i*2+1] = b[0], b[1]
			continue
		}
		out[i*2], out[i*2+1] = 0x01, 0x01
	}
	return out
}
