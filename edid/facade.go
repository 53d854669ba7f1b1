/*
NAME
  facade.go -

DESCRIPTION
  Release3, Release4 and Hdmi: the three composition façades. Each
  accepts the required top-level fields for its release positionally
  and takes a set of functional options for everything else.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package edid

import (
	"github.com/ausocean/edid/cta861"
	"github.com/ausocean/edid/descriptor"
	"github.com/ausocean/edid/value"
)

// Release3 is the EDID 1.3 composition façade.
type Release3 struct{ block R3BaseBlock }

// Release3Option configures a Release3 façade beyond its required
// fields.
type Release3Option func(*R3BaseBlock) error

// WithR3Serial sets the serial number. Defaults to absent.
func WithR3Serial(s value.SerialNumber) Release3Option {
	return func(b *R3BaseBlock) error { b.Serial = s; return nil }
}

// WithR3EstablishedTiming adds one established timing mode.
func WithR3EstablishedTiming(t value.EstablishedTiming) Release3Option {
	return func(b *R3BaseBlock) error {
		b.EstablishedTimings = append(b.EstablishedTimings, t)
		return nil
	}
}

// WithR3StandardTiming adds one standard timing slot. At most 8 total
// are meaningful; extras are silently accepted but only the first 8
// make it onto the wire (value.StandardTimingsBytes truncates).
func WithR3StandardTiming(t value.StandardTiming) Release3Option {
	return func(b *R3BaseBlock) error {
		b.StandardTimings = append(b.StandardTimings, t)
		return nil
	}
}

// WithR3Descriptor appends a descriptor after the preferred timing in
// slot 0.
func WithR3Descriptor(d descriptor.R3Descriptor) Release3Option {
	return func(b *R3BaseBlock) error {
		if len(b.Descriptors) >= descriptor.MaxDescriptors {
			return newValue("too many descriptors: already at the %d-descriptor limit", descriptor.MaxDescriptors)
		}
		b.Descriptors = append(b.Descriptors, d)
		return nil
	}
}

// WithR3Extension appends an already-encoded 128-byte CTA-861 extension
// block.
func WithR3Extension(ext []byte) Release3Option {
	return func(b *R3BaseBlock) error {
		if len(ext) != value.BlockLen {
			return newValue("extension block must be %d bytes, got %d", value.BlockLen, len(ext))
		}
		b.Extensions = append(b.Extensions, ext)
		return nil
	}
}

// NewRelease3 builds a Release3 façade from its required fields plus any
// number of options. The preferred timing always occupies descriptor
// slot 0.
func NewRelease3(
	manufacturer value.Manufacturer,
	product value.ProductCode,
	date value.R3ManufactureDate,
	videoInput value.VideoInputR3,
	imageSize value.ImageSizeR3,
	gamma value.Gamma,
	feature value.FeatureSupportR3,
	chromaticity value.Chromaticity,
	preferredTiming descriptor.DetailedTiming,
	opts ...Release3Option,
) (Release3, error) {
	block := R3BaseBlock{
		Manufacturer: manufacturer,
		Product:      product,
		Serial:       value.NoSerialNumber(),
		Date:         date,
		VideoInput:   videoInput,
		ImageSize:    imageSize,
		Gamma:        gamma,
		Feature:      feature,
		Chromaticity: chromaticity,
		Descriptors:  []descriptor.R3Descriptor{descriptor.NewR3DetailedTiming(preferredTiming)},
	}
	for _, opt := range opts {
		if err := opt(&block); err != nil {
			return Release3{}, err
		}
	}
	return Release3{block: block}, nil
}

// Encode produces the final byte stream.
func (r Release3) Encode() ([]byte, error) { return r.block.Encode() }

// Release4 is the EDID 1.4 composition façade.
type Release4 struct{ block R4BaseBlock }

// Release4Option configures a Release4 façade beyond its required
// fields.
type Release4Option func(*R4BaseBlock) error

// WithR4Serial sets the serial number. Defaults to absent.
func WithR4Serial(s value.SerialNumber) Release4Option {
	return func(b *R4BaseBlock) error { b.Serial = s; return nil }
}

// WithR4EstablishedTiming adds one established timing mode.
func WithR4EstablishedTiming(t value.EstablishedTiming) Release4Option {
	return func(b *R4BaseBlock) error {
		b.EstablishedTimings = append(b.EstablishedTimings, t)
		return nil
	}
}

// WithR4StandardTiming adds one standard timing slot.
func WithR4StandardTiming(t value.StandardTiming) Release4Option {
	return func(b *R4BaseBlock) error {
		b.StandardTimings = append(b.StandardTimings, t)
		return nil
	}
}

// WithR4Descriptor appends a descriptor after the preferred timing in
// slot 0.
func WithR4Descriptor(d descriptor.R4Descriptor) Release4Option {
	return func(b *R4BaseBlock) error {
		if len(b.Descriptors) >= descriptor.MaxDescriptors {
			return newValue("too many descriptors: already at the %d-descriptor limit", descriptor.MaxDescriptors)
		}
		b.Descriptors = append(b.Descriptors, d)
		return nil
	}
}

// WithR4Extension appends an already-encoded 128-byte CTA-861 extension
// block.
func WithR4Extension(ext []byte) Release4Option {
	return func(b *R4BaseBlock) error {
		if len(ext) != value.BlockLen {
			return newValue("extension block must be %d bytes, got %d", value.BlockLen, len(ext))
		}
		b.Extensions = append(b.Extensions, ext)
		return nil
	}
}

// NewRelease4 builds a Release4 façade from its required fields plus any
// number of options.
func NewRelease4(
	manufacturer value.Manufacturer,
	product value.ProductCode,
	date R4Date,
	videoInput value.VideoInputR4,
	imageSize value.ImageSizeR4,
	gamma value.Gamma,
	feature value.FeatureSupportR4,
	chromaticity value.Chromaticity,
	preferredTiming descriptor.DetailedTiming,
	opts ...Release4Option,
) (Release4, error) {
	block := R4BaseBlock{
		Manufacturer: manufacturer,
		Product:      product,
		Serial:       value.NoSerialNumber(),
		Date:         date,
		VideoInput:   videoInput,
		ImageSize:    imageSize,
		Gamma:        gamma,
		Feature:      feature,
		Chromaticity: chromaticity,
		Descriptors:  []descriptor.R4Descriptor{descriptor.NewR4DetailedTiming(preferredTiming)},
	}
	for _, opt := range opts {
		if err := opt(&block); err != nil {
			return Release4{}, err
		}
	}
	return Release4{block: block}, nil
}

// Encode produces the final byte stream.
func (r Release4) Encode() ([]byte, error) { return r.block.Encode() }

// Hdmi is a thin adapter over Release3: it injects the mandatory
// 640x480@60Hz established timing, a Product Name descriptor, a Display
// Range Limits descriptor and a single CTA-861 Revision 3 extension
// carrying the HDMI vendor-specific data block.
type Hdmi struct{ release3 Release3 }

// HdmiConfig carries the fields an Hdmi façade needs beyond what
// Release3 already requires.
type HdmiConfig struct {
	Manufacturer value.Manufacturer
	Product      value.ProductCode
	ProductName  value.DescriptorString
	Date         value.R3ManufactureDate

	VideoInput   value.VideoInputR3
	ImageSize    value.ImageSizeR3
	Gamma        value.Gamma
	Feature      value.FeatureSupportR3
	Chromaticity value.Chromaticity

	Limits          descriptor.R3DisplayRangeLimits
	PreferredTiming descriptor.DetailedTiming
	VendorBlock     cta861.HDMIVendorBlock

	ExtraDescriptors []descriptor.R3Descriptor
	ExtraDataBlocks  []cta861.DataBlock
	ExtraTimings     []descriptor.DetailedTiming
}

// NewHdmi builds an Hdmi façade from cfg.
func NewHdmi(cfg HdmiConfig) (Hdmi, error) {
	opts := []Release3Option{
		WithR3EstablishedTiming(value.ET640x480_60Hz),
		WithR3Descriptor(descriptor.NewR3ProductName(descriptor.ProductName{S: cfg.ProductName})),
		WithR3Descriptor(descriptor.NewR3DisplayRangeLimits(cfg.Limits)),
	}
	for _, d := range cfg.ExtraDescriptors {
		opts = append(opts, WithR3Descriptor(d))
	}

	ext := cta861.Revision3{
		DataBlocks: append([]cta861.DataBlock{cfg.VendorBlock}, cfg.ExtraDataBlocks...),
		Timings:    cfg.ExtraTimings,
	}
	extBytes, err := ext.Encode()
	if err != nil {
		return Hdmi{}, err
	}
	opts = append(opts, WithR3Extension(extBytes))

	r3, err := NewRelease3(
		cfg.Manufacturer, cfg.Product, cfg.Date,
		cfg.VideoInput, cfg.ImageSize, cfg.Gamma, cfg.Feature, cfg.Chromaticity,
		cfg.PreferredTiming, opts...,
	)
	if err != nil {
		return Hdmi{}, err
	}
	return Hdmi{release3: r3}, nil
}

// Encode produces the final byte stream.
func (h Hdmi) Encode() ([]byte, error) { return h.release3.Encode() }
