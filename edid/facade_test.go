/*
NAME
  facade_test.go -

DESCRIPTION
  Tests covering the Release3, Release4 and Hdmi façades' wiring:
  required fields land in slot 0, options apply, and the Hdmi façade
  produces a two-block image with a CTA-861 extension carrying the
  vendor-specific data block.

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
	"testing"

	"github.com/ausocean/edid/cta861"
	"github.com/ausocean/edid/descriptor"
	"github.com/ausocean/edid/value"
)

func mustPreferredTiming(t *testing.T) descriptor.DetailedTiming {
	t.Helper()
	pc, err := descriptor.NewPixelClock(148500)
	if err != nil {
		t.Fatalf("NewPixelClock: %v", err)
	}
	return descriptor.DetailedTiming{
		PixelClock: pc,
		Horizontal: descriptor.Horizontal{
			Active: mustU12(t, 1920), FrontPorch: mustU10(t, 88),
			SyncPulse: mustU10(t, 44), BackPorch: mustU12(t, 148),
		},
		Vertical: descriptor.Vertical{
			Active: mustU12(t, 1080), FrontPorch: mustU6(t, 4),
			SyncPulse: mustU6(t, 5), BackPorch: mustU12(t, 36),
		},
		Sync: descriptor.NewDigitalSync(descriptor.NewDigitalSeparateSync(
			descriptor.DigitalSeparateSync{VSyncPositive: true}, true)),
	}
}

func mustU6(t *testing.T, v int64) value.U6 {
	t.Helper()
	u, err := value.NewU6(v)
	if err != nil {
		t.Fatalf("NewU6(%d): %v", v, err)
	}
	return u
}

func mustU10(t *testing.T, v int64) value.U10 {
	t.Helper()
	u, err := value.NewU10(v)
	if err != nil {
		t.Fatalf("NewU10(%d): %v", v, err)
	}
	return u
}

func mustU12(t *testing.T, v int64) value.U12 {
	t.Helper()
	u, err := value.NewU12(v)
	if err != nil {
		t.Fatalf("NewU12(%d): %v", v, err)
	}
	return u
}

func TestNewRelease3PutsPreferredTimingInSlotZero(t *testing.T) {
	date, err := value.NewR3ManufactureDate(1, 2020)
	if err != nil {
		t.Fatalf("NewR3ManufactureDate: %v", err)
	}
	r3, err := NewRelease3(
		mustManufacturer(t, "ASO"), value.ProductCode(1), date,
		value.NewVideoInputR3Digital(value.R3DigitalVideoInput{}),
		value.NewImageSizeR3Undefined(), mustGamma(t, 2.2),
		value.FeatureSupportR3{}, value.NewChromaticityMono(value.ChromaticityPoint{}),
		mustPreferredTiming(t),
	)
	if err != nil {
		t.Fatalf("NewRelease3: %v", err)
	}
	b, err := r3.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(b) != value.BlockLen {
		t.Fatalf("len(b) = %d, want %d", len(b), value.BlockLen)
	}
	// Detailed timing descriptors never start with the "00 00 00" tag
	// header prefix the other seven descriptor forms share.
	if b[54] == 0 && b[55] == 0 && b[56] == 0 {
		t.Error("slot 0 looks like a tagged descriptor, want the detailed timing")
	}
}

func TestWithR3DescriptorRejectsOverflow(t *testing.T) {
	date, err := value.NewR3ManufactureDate(1, 2020)
	if err != nil {
		t.Fatalf("NewR3ManufactureDate: %v", err)
	}
	extra := make([]Release3Option, 0, descriptor.MaxDescriptors)
	for i := 0; i < descriptor.MaxDescriptors; i++ {
		extra = append(extra, WithR3Descriptor(descriptor.NewR3Dummy()))
	}
	_, err = NewRelease3(
		mustManufacturer(t, "ASO"), value.ProductCode(1), date,
		value.NewVideoInputR3Digital(value.R3DigitalVideoInput{}),
		value.NewImageSizeR3Undefined(), mustGamma(t, 2.2),
		value.FeatureSupportR3{}, value.NewChromaticityMono(value.ChromaticityPoint{}),
		mustPreferredTiming(t), extra...,
	)
	if err == nil {
		t.Error("expected error once the descriptor slots (already holding the preferred timing) overflow")
	}
}

func TestNewHdmiProducesTwoBlocksWithVendorData(t *testing.T) {
	date, err := value.NewR3ManufactureDate(1, 2020)
	if err != nil {
		t.Fatalf("NewR3ManufactureDate: %v", err)
	}
	name, err := value.NewDescriptorString("HDMI Display")
	if err != nil {
		t.Fatalf("NewDescriptorString: %v", err)
	}
	cec, err := cta861.NewCecAddress(1, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewCecAddress: %v", err)
	}
	hdmi, err := NewHdmi(HdmiConfig{
		Manufacturer: mustManufacturer(t, "ASO"),
		Product:      value.ProductCode(1),
		ProductName:  name,
		Date:         date,
		VideoInput:   value.NewVideoInputR3Digital(value.R3DigitalVideoInput{}),
		ImageSize:    value.NewImageSizeR3Undefined(),
		Gamma:        mustGamma(t, 2.2),
		Chromaticity: value.NewChromaticityMono(value.ChromaticityPoint{}),
		Limits: descriptor.R3DisplayRangeLimits{
			HorizontalKHz: mustFreqRange(t, 30, 90),
			VerticalHz:    mustFreqRange(t, 50, 75),
			MaxPixelClock: mustRangeLimitsPixelClock(t, 170),
			DefaultGTF:    true,
		},
		PreferredTiming: mustPreferredTiming(t),
		VendorBlock:     cta861.HDMIVendorBlock{SourcePhysicalAddress: cec},
	})
	if err != nil {
		t.Fatalf("NewHdmi: %v", err)
	}
	b, err := hdmi.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(b) != value.BlockLen*2 {
		t.Fatalf("len(b) = %d, want %d (base + one extension)", len(b), value.BlockLen*2)
	}
	if b[126] != 1 {
		t.Errorf("extension count byte = %d, want 1", b[126])
	}
	if b[value.BlockLen] != 0x02 {
		t.Errorf("extension tag = 0x%02X, want 0x02", b[value.BlockLen])
	}
	var extSum byte
	for _, v := range b[value.BlockLen:] {
		extSum += v
	}
	if extSum != 0 {
		t.Errorf("extension block sums to %d, want 0 (mod 256)", extSum)
	}
}

func mustFreqRange(t *testing.T, min, max int64) descriptor.FrequencyRange {
	t.Helper()
	lo, err := descriptor.NewFrequency(min)
	if err != nil {
		t.Fatalf("NewFrequency(%d): %v", min, err)
	}
	hi, err := descriptor.NewFrequency(max)
	if err != nil {
		t.Fatalf("NewFrequency(%d): %v", max, err)
	}
	r, err := descriptor.NewFrequencyRange(lo, hi)
	if err != nil {
		t.Fatalf("NewFrequencyRange: %v", err)
	}
	return r
}
