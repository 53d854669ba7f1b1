/*
NAME
  config.go -

DESCRIPTION
  YAML display description loading: maps a human-authored YAML document
  onto the core package's typed builders. This is the external
  collaborator that lets a caller describe a display without hand
  writing Go; the core packages never see YAML.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ausocean/edid/cta861"
	"github.com/ausocean/edid/descriptor"
	"github.com/ausocean/edid/edid"
	"github.com/ausocean/edid/value"
)

// Encoder is anything that produces a final EDID byte stream, the
// common capability of edid.Release3, edid.Release4 and edid.Hdmi.
type Encoder interface {
	Encode() ([]byte, error)
}

// Document is the top-level YAML document shape: a single "edid" key
// carrying a variant-tagged description, mirroring the "variant" tag
// the original Rust YAML-to-EDID tool used to distinguish Release 3,
// Release 4 and HDMI descriptions in one input format.
type Document struct {
	EDID EDIDInput `yaml:"edid"`
}

// EDIDInput is the YAML description of one EDID image. Variant selects
// which of Release3/Release4/Hdmi to build; fields not relevant to the
// selected variant are ignored.
type EDIDInput struct {
	Variant string `yaml:"variant"` // "1.3", "1.4" or "hdmi"

	Manufacturer string  `yaml:"manufacturer"`
	Product      int     `yaml:"product"`
	ProductName  string  `yaml:"product_name,omitempty"`
	Serial       *uint32 `yaml:"serial,omitempty"`

	DateWeek int `yaml:"date_week"`
	DateYear int `yaml:"date_year"`
	ModelYearOnly bool `yaml:"model_year_only,omitempty"` // Release 4 only

	VideoInput   VideoInputSpec   `yaml:"video_input"`
	ImageSize    ImageSizeSpec    `yaml:"image_size"`
	Gamma        *float64         `yaml:"gamma,omitempty"`
	Feature      FeatureSpec      `yaml:"feature"`
	Chromaticity ChromaticitySpec `yaml:"chromaticity"`

	EstablishedTimings []string            `yaml:"established_timings,omitempty"`
	StandardTimings    []StandardTimingSpec `yaml:"standard_timings,omitempty"`
	PreferredTiming    DetailedTimingSpec  `yaml:"preferred_timing"`
	Descriptors        []DescriptorSpec    `yaml:"descriptors,omitempty"`

	Hdmi *HdmiSpec `yaml:"hdmi,omitempty"`
}

// VideoInputSpec describes the video input definition byte.
type VideoInputSpec struct {
	Digital        bool   `yaml:"digital"`
	DFP1Compatible bool   `yaml:"dfp1_compatible,omitempty"`   // R3 digital
	ColorDepth     string `yaml:"color_depth,omitempty"`       // R4 digital
	Interface      string `yaml:"interface,omitempty"`         // R4 digital
	SignalLevel    int    `yaml:"signal_level,omitempty"`      // analog
	SeparateHVSync bool   `yaml:"separate_hv_sync,omitempty"`  // analog
}

// ImageSizeSpec describes the image size field. Exactly one of
// WidthCm/HeightCm, LandscapeRatio, or neither (undefined) applies.
type ImageSizeSpec struct {
	WidthCm        int     `yaml:"width_cm,omitempty"`
	HeightCm       int     `yaml:"height_cm,omitempty"`
	LandscapeRatio float64 `yaml:"landscape_ratio,omitempty"` // R4 only
}

// FeatureSpec describes the feature support byte.
type FeatureSpec struct {
	Standby             bool `yaml:"standby,omitempty"`
	Suspend             bool `yaml:"suspend,omitempty"`
	SRGBDefault         bool `yaml:"srgb_default,omitempty"`
	PreferredTimingFirst bool `yaml:"preferred_timing_first,omitempty"`
	ContinuousFrequency bool `yaml:"continuous_frequency,omitempty"` // R4 only
}

// ChromaticitySpec describes the chromaticity points. White is always
// required; Red/Green/Blue are omitted for a monochrome display.
type ChromaticitySpec struct {
	WhiteX, WhiteY float64
	RedX, RedY     float64
	GreenX, GreenY float64
	BlueX, BlueY   float64
	Monochrome     bool `yaml:"monochrome,omitempty"`
}

// StandardTimingSpec describes one standard timing slot.
type StandardTimingSpec struct {
	Horizontal int    `yaml:"horizontal"`
	Ratio      string `yaml:"ratio"` // "16:10", "4:3", "5:4", "16:9"
	RefreshHz  int    `yaml:"refresh_hz"`
}

// DetailedTimingSpec describes a detailed timing descriptor.
type DetailedTimingSpec struct {
	PixelClockKHz int64 `yaml:"pixel_clock_khz"`

	HActive, HFrontPorch, HSyncPulse, HBackPorch, HBorder, HSizeMm int
	VActive, VFrontPorch, VSyncPulse, VBackPorch, VBorder, VSizeMm int

	Interlace bool `yaml:"interlace,omitempty"`

	DigitalSeparateSync *bool `yaml:"digital_separate_sync,omitempty"` // nil: analog sync
	HSyncPositive       bool  `yaml:"hsync_positive,omitempty"`
	VSyncPositive       bool  `yaml:"vsync_positive,omitempty"`
}

// DescriptorSpec describes one additional descriptor slot beyond the
// preferred timing. Exactly one of ProductName/DataString/Serial/Custom
// should be set.
type DescriptorSpec struct {
	ProductName string `yaml:"product_name,omitempty"`
	DataString  string `yaml:"data_string,omitempty"`
	Serial      string `yaml:"serial,omitempty"`

	CustomTag     byte   `yaml:"custom_tag,omitempty"`
	CustomPayload []byte `yaml:"custom_payload,omitempty"`

	// EstablishedTimingsIII names additional predefined modes (Release
	// 4 only) from the Established Timings III descriptor's own mode
	// table, e.g. "1920x1200@60".
	EstablishedTimingsIII []string `yaml:"established_timings_iii,omitempty"`
}

// HdmiSpec describes the HDMI vendor-specific data block, present only
// when variant is "hdmi".
type HdmiSpec struct {
	PhysicalAddress [4]int `yaml:"physical_address"`
	MaxTMDSRateMHz  int    `yaml:"max_tmds_rate_mhz,omitempty"`
	DeepColor30Bits bool   `yaml:"deep_color_30_bits,omitempty"`
	DeepColor36Bits bool   `yaml:"deep_color_36_bits,omitempty"`
	DeepColor48Bits bool   `yaml:"deep_color_48_bits,omitempty"`
	VICs            []uint8 `yaml:"vics,omitempty"`

	HorizontalKHzMin, HorizontalKHzMax int
	VerticalHzMin, VerticalHzMax       int
	MaxPixelClockMHz                   int64
}

// loadDocument reads and parses a YAML display description from path.
func loadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, errors.Wrap(err, "could not open display description")
	}
	defer f.Close()

	var doc Document
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		return Document{}, errors.Wrap(err, "could not parse display description")
	}
	return doc, nil
}

// Build converts an EDIDInput into the matching core Encoder.
func (e EDIDInput) Build() (Encoder, error) {
	switch e.Variant {
	case "1.3":
		return e.buildRelease3()
	case "1.4":
		return e.buildRelease4()
	case "hdmi":
		return e.buildHdmi()
	default:
		return nil, errors.Errorf("unknown edid variant %q, want one of \"1.3\", \"1.4\", \"hdmi\"", e.Variant)
	}
}

func (e EDIDInput) manufacturer() (value.Manufacturer, error) {
	return value.NewManufacturer(e.Manufacturer)
}

func (e EDIDInput) product() (value.ProductCode, error) {
	return value.NewProductCode(int64(e.Product))
}

func (e EDIDInput) serial() value.SerialNumber {
	if e.Serial == nil {
		return value.NoSerialNumber()
	}
	return value.NewSerialNumber(*e.Serial)
}

func (e EDIDInput) imageSizeR3() (value.ImageSizeR3, error) {
	if e.ImageSize.WidthCm == 0 && e.ImageSize.HeightCm == 0 {
		return value.NewImageSizeR3Undefined(), nil
	}
	s, err := value.NewScreenSize(e.ImageSize.WidthCm, e.ImageSize.HeightCm)
	if err != nil {
		return value.ImageSizeR3{}, err
	}
	return value.NewImageSizeR3Size(s), nil
}

func (e EDIDInput) imageSizeR4() (value.ImageSizeR4, error) {
	switch {
	case e.ImageSize.LandscapeRatio != 0:
		r, err := value.NewLandscapeRatio(e.ImageSize.LandscapeRatio, 1.0)
		if err != nil {
			return value.ImageSizeR4{}, err
		}
		return value.NewImageSizeR4Landscape(r), nil
	case e.ImageSize.WidthCm != 0 || e.ImageSize.HeightCm != 0:
		s, err := value.NewScreenSize(e.ImageSize.WidthCm, e.ImageSize.HeightCm)
		if err != nil {
			return value.ImageSizeR4{}, err
		}
		return value.NewImageSizeR4Size(s), nil
	default:
		return value.NewImageSizeR4Undefined(), nil
	}
}

func (e EDIDInput) gamma() (value.Gamma, error) {
	if e.Gamma == nil {
		return value.GammaDisplayInformationExtension(), nil
	}
	return value.NewGamma(*e.Gamma)
}

func (e EDIDInput) chromaticity() (value.Chromaticity, error) {
	white, err := value.NewChromaticityPoint(e.Chromaticity.WhiteX, e.Chromaticity.WhiteY)
	if err != nil {
		return value.Chromaticity{}, err
	}
	if e.Chromaticity.Monochrome {
		return value.NewChromaticityMono(white), nil
	}
	red, err := value.NewChromaticityPoint(e.Chromaticity.RedX, e.Chromaticity.RedY)
	if err != nil {
		return value.Chromaticity{}, err
	}
	green, err := value.NewChromaticityPoint(e.Chromaticity.GreenX, e.Chromaticity.GreenY)
	if err != nil {
		return value.Chromaticity{}, err
	}
	blue, err := value.NewChromaticityPoint(e.Chromaticity.BlueX, e.Chromaticity.BlueY)
	if err != nil {
		return value.Chromaticity{}, err
	}
	return value.NewChromaticityColor(value.ChromaticityPoints{White: white, Red: red, Green: green, Blue: blue}), nil
}

var establishedTimingNames = map[string]value.EstablishedTiming{
	"800x600@60":  value.ET800x600_60Hz,
	"800x600@56":  value.ET800x600_56Hz,
	"640x480@75":  value.ET640x480_75Hz,
	"640x480@72":  value.ET640x480_72Hz,
	"640x480@67":  value.ET640x480_67Hz,
	"640x480@60":  value.ET640x480_60Hz,
	"720x400@88":  value.ET720x400_88Hz,
	"720x400@70":  value.ET720x400_70Hz,
	"1280x1024@75": value.ET1280x1024_75Hz,
	"1024x768@75": value.ET1024x768_75Hz,
	"1024x768@70": value.ET1024x768_70Hz,
	"1024x768@60": value.ET1024x768_60Hz,
	"832x624@75":  value.ET832x624_75Hz,
	"800x600@75":  value.ET800x600_75Hz,
	"800x600@72":  value.ET800x600_72Hz,
	"1152x870@75": value.ET1152x870_75Hz,
}

func (e EDIDInput) establishedTimings() ([]value.EstablishedTiming, error) {
	out := make([]value.EstablishedTiming, 0, len(e.EstablishedTimings))
	for _, name := range e.EstablishedTimings {
		t, ok := establishedTimingNames[name]
		if !ok {
			return nil, errors.Errorf("unknown established timing %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

var establishedTimingIIINames = map[string]value.EstablishedTimingIII{
	"1152x864@75":     value.ET3_1152x864_75Hz,
	"1024x768@85":     value.ET3_1024x768_85Hz,
	"800x600@85":      value.ET3_800x600_85Hz,
	"848x480@60":      value.ET3_848x480_60Hz,
	"640x480@85":      value.ET3_640x480_85Hz,
	"720x400@85":      value.ET3_720x400_85Hz,
	"640x400@85":      value.ET3_640x400_85Hz,
	"640x350@85":      value.ET3_640x350_85Hz,
	"1280x1024@85":    value.ET3_1280x1024_85Hz,
	"1280x1024@60":    value.ET3_1280x1024_60Hz,
	"1280x960@85":     value.ET3_1280x960_85Hz,
	"1280x960@60":     value.ET3_1280x960_60Hz,
	"1280x768@85":     value.ET3_1280x768_85Hz,
	"1280x768@75":     value.ET3_1280x768_75Hz,
	"1280x768@60":     value.ET3_1280x768_60Hz,
	"1280x768@60-rb":  value.ET3_1280x768_60Hz_RB,
	"1400x1050@75":    value.ET3_1400x1050_75Hz,
	"1400x1050@60":    value.ET3_1400x1050_60Hz,
	"1400x1050@60-rb": value.ET3_1400x1050_60Hz_RB,
	"1440x900@85":     value.ET3_1440x900_85Hz,
	"1440x900@75":     value.ET3_1440x900_75Hz,
	"1440x900@60":     value.ET3_1440x900_60Hz,
	"1440x900@60-rb":  value.ET3_1440x900_60Hz_RB,
	"1360x768@60":     value.ET3_1360x768_60Hz,
	"1600x1200@70":    value.ET3_1600x1200_70Hz,
	"1600x1200@65":    value.ET3_1600x1200_65Hz,
	"1600x1200@60":    value.ET3_1600x1200_60Hz,
	"1680x1050@85":    value.ET3_1680x1050_85Hz,
	"1680x1050@75":    value.ET3_1680x1050_75Hz,
	"1680x1050@60":    value.ET3_1680x1050_60Hz,
	"1680x1050@60-rb": value.ET3_1680x1050_60Hz_RB,
	"1400x1050@85":    value.ET3_1400x1050_85Hz,
	"1920x1200@60":    value.ET3_1920x1200_60Hz,
	"1920x1200@60-rb": value.ET3_1920x1200_60Hz_RB,
	"1856x1392@75":    value.ET3_1856x1392_75Hz,
	"1856x1392@60":    value.ET3_1856x1392_60Hz,
	"1792x1344@75":    value.ET3_1792x1344_75Hz,
	"1792x1344@60":    value.ET3_1792x1344_60Hz,
	"1600x1200@85":    value.ET3_1600x1200_85Hz,
	"1600x1200@75":    value.ET3_1600x1200_75Hz,
	"1920x1440@75":    value.ET3_1920x1440_75Hz,
	"1920x1440@60":    value.ET3_1920x1440_60Hz,
	"1920x1200@85":    value.ET3_1920x1200_85Hz,
	"1920x1200@75":    value.ET3_1920x1200_75Hz,
}

func (s DescriptorSpec) establishedTimingsIII() ([]value.EstablishedTimingIII, error) {
	out := make([]value.EstablishedTimingIII, 0, len(s.EstablishedTimingsIII))
	for _, name := range s.EstablishedTimingsIII {
		t, ok := establishedTimingIIINames[name]
		if !ok {
			return nil, errors.Errorf("unknown established timing III %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

func standardTimingRatio(s string) (value.StandardTimingRatio, error) {
	switch s {
	case "16:10":
		return value.Ratio16x10, nil
	case "4:3":
		return value.Ratio4x3, nil
	case "5:4":
		return value.Ratio5x4, nil
	case "16:9":
		return value.Ratio16x9, nil
	default:
		return 0, errors.Errorf("unknown standard timing ratio %q", s)
	}
}

func (e EDIDInput) standardTimings() ([]value.StandardTiming, error) {
	out := make([]value.StandardTiming, 0, len(e.StandardTimings))
	for _, s := range e.StandardTimings {
		ratio, err := standardTimingRatio(s.Ratio)
		if err != nil {
			return nil, err
		}
		t, err := value.NewStandardTiming(s.Horizontal, ratio, s.RefreshHz)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (d DetailedTimingSpec) build() (descriptor.DetailedTiming, error) {
	pc, err := descriptor.NewPixelClock(d.PixelClockKHz)
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}

	hact, err := value.NewU12(int64(d.HActive))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}
	hfp, err := value.NewU10(int64(d.HFrontPorch))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}
	hsp, err := value.NewU10(int64(d.HSyncPulse))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}
	hbp, err := value.NewU12(int64(d.HBackPorch))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}
	hborder, err := value.NewU8(int64(d.HBorder))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}
	hsize, err := value.NewU12(int64(d.HSizeMm))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}

	vact, err := value.NewU12(int64(d.VActive))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}
	vfp, err := value.NewU6(int64(d.VFrontPorch))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}
	vsp, err := value.NewU6(int64(d.VSyncPulse))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}
	vbp, err := value.NewU12(int64(d.VBackPorch))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}
	vborder, err := value.NewU8(int64(d.VBorder))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}
	vsize, err := value.NewU12(int64(d.VSizeMm))
	if err != nil {
		return descriptor.DetailedTiming{}, err
	}

	var sync descriptor.Sync
	if d.DigitalSeparateSync != nil {
		if *d.DigitalSeparateSync {
			sync = descriptor.NewDigitalSync(descriptor.NewDigitalSeparateSync(
				descriptor.DigitalSeparateSync{VSyncPositive: d.VSyncPositive}, d.HSyncPositive,
			))
		} else {
			sync = descriptor.NewDigitalSync(descriptor.NewDigitalCompositeSync(
				descriptor.DigitalCompositeSync{}, d.HSyncPositive,
			))
		}
	} else {
		sync = descriptor.NewAnalogSync(descriptor.AnalogSync{SyncOnGreen: true})
	}

	return descriptor.DetailedTiming{
		PixelClock: pc,
		Horizontal: descriptor.Horizontal{Active: hact, FrontPorch: hfp, SyncPulse: hsp, BackPorch: hbp, Border: hborder, SizeMm: hsize},
		Vertical:   descriptor.Vertical{Active: vact, FrontPorch: vfp, SyncPulse: vsp, BackPorch: vbp, Border: vborder, SizeMm: vsize},
		Interlace:  d.Interlace,
		Sync:       sync,
	}, nil
}

func (s DescriptorSpec) buildR3() (descriptor.R3Descriptor, error) {
	switch {
	case s.ProductName != "":
		str, err := value.NewDescriptorString(s.ProductName)
		if err != nil {
			return descriptor.R3Descriptor{}, err
		}
		return descriptor.NewR3ProductName(descriptor.ProductName{S: str}), nil
	case s.DataString != "":
		str, err := value.NewDescriptorString(s.DataString)
		if err != nil {
			return descriptor.R3Descriptor{}, err
		}
		return descriptor.NewR3DataString(descriptor.DataString{S: str}), nil
	case s.Serial != "":
		str, err := value.NewDescriptorString(s.Serial)
		if err != nil {
			return descriptor.R3Descriptor{}, err
		}
		return descriptor.NewR3SerialNumber(descriptor.SerialNumberString{S: str}), nil
	default:
		c, err := descriptor.NewCustom(s.CustomTag, s.CustomPayload)
		if err != nil {
			return descriptor.R3Descriptor{}, err
		}
		return descriptor.NewR3Custom(c), nil
	}
}

func (s DescriptorSpec) buildR4() (descriptor.R4Descriptor, error) {
	switch {
	case len(s.EstablishedTimingsIII) > 0:
		timings, err := s.establishedTimingsIII()
		if err != nil {
			return descriptor.R4Descriptor{}, err
		}
		return descriptor.NewR4EstablishedTimingsIII(descriptor.EstablishedTimingsIII{Timings: timings}), nil
	case s.ProductName != "":
		str, err := value.NewDescriptorString(s.ProductName)
		if err != nil {
			return descriptor.R4Descriptor{}, err
		}
		return descriptor.NewR4ProductName(descriptor.ProductName{S: str}), nil
	case s.DataString != "":
		str, err := value.NewDescriptorString(s.DataString)
		if err != nil {
			return descriptor.R4Descriptor{}, err
		}
		return descriptor.NewR4DataString(descriptor.DataString{S: str}), nil
	case s.Serial != "":
		str, err := value.NewDescriptorString(s.Serial)
		if err != nil {
			return descriptor.R4Descriptor{}, err
		}
		return descriptor.NewR4SerialNumber(descriptor.SerialNumberString{S: str}), nil
	default:
		c, err := descriptor.NewCustom(s.CustomTag, s.CustomPayload)
		if err != nil {
			return descriptor.R4Descriptor{}, err
		}
		return descriptor.NewR4Custom(c), nil
	}
}

func (e EDIDInput) buildRelease3() (Encoder, error) {
	mfg, err := e.manufacturer()
	if err != nil {
		return nil, err
	}
	prod, err := e.product()
	if err != nil {
		return nil, err
	}
	date, err := value.NewR3ManufactureDate(e.DateWeek, e.DateYear)
	if err != nil {
		return nil, err
	}
	videoInput, err := e.videoInputR3()
	if err != nil {
		return nil, err
	}
	imageSize, err := e.imageSizeR3()
	if err != nil {
		return nil, err
	}
	gamma, err := e.gamma()
	if err != nil {
		return nil, err
	}
	feature := value.FeatureSupportR3{
		Standby:                e.Feature.Standby,
		Suspend:                e.Feature.Suspend,
		DisplayType:            value.ColorTypeRGBColor,
		SRGBDefault:            e.Feature.SRGBDefault,
		PreferredTimingIsFirst: true,
	}
	chroma, err := e.chromaticity()
	if err != nil {
		return nil, err
	}
	preferred, err := e.PreferredTiming.build()
	if err != nil {
		return nil, err
	}
	standard, err := e.standardTimings()
	if err != nil {
		return nil, err
	}
	established, err := e.establishedTimings()
	if err != nil {
		return nil, err
	}

	opts := []edid.Release3Option{edid.WithR3Serial(e.serial())}
	for _, t := range standard {
		opts = append(opts, edid.WithR3StandardTiming(t))
	}
	for _, t := range established {
		opts = append(opts, edid.WithR3EstablishedTiming(t))
	}
	for _, d := range e.Descriptors {
		rd, err := d.buildR3()
		if err != nil {
			return nil, err
		}
		opts = append(opts, edid.WithR3Descriptor(rd))
	}

	return edid.NewRelease3(mfg, prod, date, videoInput, imageSize, gamma, feature, chroma, preferred, opts...)
}

func (e EDIDInput) buildRelease4() (Encoder, error) {
	mfg, err := e.manufacturer()
	if err != nil {
		return nil, err
	}
	prod, err := e.product()
	if err != nil {
		return nil, err
	}
	var date edid.R4Date
	if e.ModelYearOnly {
		d, err := value.NewR4ModelDate(e.DateYear)
		if err != nil {
			return nil, err
		}
		date = edid.NewR4ModelDate(d)
	} else {
		d, err := value.NewR4ManufactureDate(e.DateWeek, e.DateYear)
		if err != nil {
			return nil, err
		}
		date = edid.NewR4ManufactureDate(d)
	}
	videoInput, err := e.videoInputR4()
	if err != nil {
		return nil, err
	}
	imageSize, err := e.imageSizeR4()
	if err != nil {
		return nil, err
	}
	gamma, err := e.gamma()
	if err != nil {
		return nil, err
	}
	feature := value.FeatureSupportR4{
		Standby:               e.Feature.Standby,
		Suspend:               e.Feature.Suspend,
		Color:                 value.NewDisplayColorR4Digital(value.ColorEncodingRGB444),
		SRGBDefault:           e.Feature.SRGBDefault,
		PreferredTimingNative: true,
		ContinuousFrequency:   e.Feature.ContinuousFrequency,
	}
	chroma, err := e.chromaticity()
	if err != nil {
		return nil, err
	}
	preferred, err := e.PreferredTiming.build()
	if err != nil {
		return nil, err
	}
	standard, err := e.standardTimings()
	if err != nil {
		return nil, err
	}
	established, err := e.establishedTimings()
	if err != nil {
		return nil, err
	}

	opts := []edid.Release4Option{edid.WithR4Serial(e.serial())}
	for _, t := range standard {
		opts = append(opts, edid.WithR4StandardTiming(t))
	}
	for _, t := range established {
		opts = append(opts, edid.WithR4EstablishedTiming(t))
	}
	for _, d := range e.Descriptors {
		rd, err := d.buildR4()
		if err != nil {
			return nil, err
		}
		opts = append(opts, edid.WithR4Descriptor(rd))
	}

	return edid.NewRelease4(mfg, prod, date, videoInput, imageSize, gamma, feature, chroma, preferred, opts...)
}

func (e EDIDInput) videoInputR3() (value.VideoInputR3, error) {
	if !e.VideoInput.Digital {
		return value.NewVideoInputR3Analog(value.AnalogVideoInput{
			SignalLevel:    value.AnalogSignalLevel(e.VideoInput.SignalLevel),
			SeparateHVSync: e.VideoInput.SeparateHVSync,
		}), nil
	}
	return value.NewVideoInputR3Digital(value.R3DigitalVideoInput{DFP1Compatible: e.VideoInput.DFP1Compatible}), nil
}

func (e EDIDInput) videoInputR4() (value.VideoInputR4, error) {
	if !e.VideoInput.Digital {
		return value.NewVideoInputR4Analog(value.AnalogVideoInput{
			SignalLevel:    value.AnalogSignalLevel(e.VideoInput.SignalLevel),
			SeparateHVSync: e.VideoInput.SeparateHVSync,
		}), nil
	}
	depth, err := digitalColorDepth(e.VideoInput.ColorDepth)
	if err != nil {
		return value.VideoInputR4{}, err
	}
	iface, err := digitalInterface(e.VideoInput.Interface)
	if err != nil {
		return value.VideoInputR4{}, err
	}
	return value.NewVideoInputR4Digital(value.R4DigitalVideoInput{ColorDepth: depth, Interface: iface}), nil
}

func digitalColorDepth(s string) (value.DigitalColorDepth, error) {
	switch s {
	case "", "undefined":
		return value.ColorDepthUndefined, nil
	case "6":
		return value.ColorDepth6Bpc, nil
	case "8":
		return value.ColorDepth8Bpc, nil
	case "10":
		return value.ColorDepth10Bpc, nil
	case "12":
		return value.ColorDepth12Bpc, nil
	case "14":
		return value.ColorDepth14Bpc, nil
	case "16":
		return value.ColorDepth16Bpc, nil
	default:
		return 0, errors.Errorf("unknown digital color depth %q", s)
	}
}

func digitalInterface(s string) (value.DigitalInterface, error) {
	switch s {
	case "", "undefined":
		return value.InterfaceUndefined, nil
	case "dvi":
		return value.InterfaceDVI, nil
	case "hdmi-a":
		return value.InterfaceHDMIa, nil
	case "hdmi-b":
		return value.InterfaceHDMIb, nil
	case "mddi":
		return value.InterfaceMDDI, nil
	case "displayport":
		return value.InterfaceDisplayPort, nil
	default:
		return 0, errors.Errorf("unknown digital interface %q", s)
	}
}

func (e EDIDInput) buildHdmi() (Encoder, error) {
	if e.Hdmi == nil {
		return nil, errors.New(`variant "hdmi" requires the "hdmi" field`)
	}
	mfg, err := e.manufacturer()
	if err != nil {
		return nil, err
	}
	prod, err := e.product()
	if err != nil {
		return nil, err
	}
	date, err := value.NewR3ManufactureDate(e.DateWeek, e.DateYear)
	if err != nil {
		return nil, err
	}
	videoInput, err := e.videoInputR3()
	if err != nil {
		return nil, err
	}
	imageSize, err := e.imageSizeR3()
	if err != nil {
		return nil, err
	}
	gamma, err := e.gamma()
	if err != nil {
		return nil, err
	}
	chroma, err := e.chromaticity()
	if err != nil {
		return nil, err
	}
	preferred, err := e.PreferredTiming.build()
	if err != nil {
		return nil, err
	}
	productName, err := value.NewDescriptorString(e.ProductName)
	if err != nil {
		return nil, err
	}

	limits, err := e.Hdmi.limits()
	if err != nil {
		return nil, err
	}
	vendor, err := e.Hdmi.vendorBlock()
	if err != nil {
		return nil, err
	}

	var extras []descriptor.R3Descriptor
	for _, d := range e.Descriptors {
		rd, err := d.buildR3()
		if err != nil {
			return nil, err
		}
		extras = append(extras, rd)
	}

	return edid.NewHdmi(edid.HdmiConfig{
		Manufacturer:     mfg,
		Product:          prod,
		ProductName:      productName,
		Date:             date,
		VideoInput:       videoInput,
		ImageSize:        imageSize,
		Gamma:            gamma,
		Feature:          value.FeatureSupportR3{DisplayType: value.ColorTypeRGBColor, PreferredTimingIsFirst: true},
		Chromaticity:     chroma,
		Limits:           limits,
		PreferredTiming:  preferred,
		VendorBlock:      vendor,
		ExtraDescriptors: extras,
	})
}

func (h HdmiSpec) limits() (descriptor.R3DisplayRangeLimits, error) {
	hMin, err := descriptor.NewFrequency(int64(h.HorizontalKHzMin))
	if err != nil {
		return descriptor.R3DisplayRangeLimits{}, err
	}
	hMax, err := descriptor.NewFrequency(int64(h.HorizontalKHzMax))
	if err != nil {
		return descriptor.R3DisplayRangeLimits{}, err
	}
	hRange, err := descriptor.NewFrequencyRange(hMin, hMax)
	if err != nil {
		return descriptor.R3DisplayRangeLimits{}, err
	}

	vMin, err := descriptor.NewFrequency(int64(h.VerticalHzMin))
	if err != nil {
		return descriptor.R3DisplayRangeLimits{}, err
	}
	vMax, err := descriptor.NewFrequency(int64(h.VerticalHzMax))
	if err != nil {
		return descriptor.R3DisplayRangeLimits{}, err
	}
	vRange, err := descriptor.NewFrequencyRange(vMin, vMax)
	if err != nil {
		return descriptor.R3DisplayRangeLimits{}, err
	}

	pclk, err := descriptor.NewRangeLimitsPixelClock(h.MaxPixelClockMHz)
	if err != nil {
		return descriptor.R3DisplayRangeLimits{}, err
	}
	return descriptor.R3DisplayRangeLimits{HorizontalKHz: hRange, VerticalHz: vRange, MaxPixelClock: pclk, DefaultGTF: true}, nil
}

func (h HdmiSpec) vendorBlock() (cta861.HDMIVendorBlock, error) {
	addr, err := cta861.NewCecAddress(h.PhysicalAddress[0], h.PhysicalAddress[1], h.PhysicalAddress[2], h.PhysicalAddress[3])
	if err != nil {
		return cta861.HDMIVendorBlock{}, err
	}
	block := cta861.HDMIVendorBlock{
		SourcePhysicalAddress: addr,
		DeepColor30Bits:       h.DeepColor30Bits,
		DeepColor36Bits:       h.DeepColor36Bits,
		DeepColor48Bits:       h.DeepColor48Bits,
	}
	if h.MaxTMDSRateMHz != 0 {
		r, err := cta861.NewTMDSRate(h.MaxTMDSRateMHz)
		if err != nil {
			return cta861.HDMIVendorBlock{}, err
		}
		block.MaxTMDSRateMHz = &r
	}
	if len(h.VICs) > 0 {
		block.Video = &cta861.HDMIVideo{VICs: h.VICs}
	}
	return block, nil
}
