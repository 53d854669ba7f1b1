/*
NAME
  base_test.go -

DESCRIPTION
  Tests covering the base block invariants: fixed header bytes, exact
  128-byte-per-block length, checksum closure and extension-count byte.

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

	"github.com/ausocean/edid/descriptor"
	"github.com/ausocean/edid/value"
)

func mustManufacturer(t *testing.T, id string) value.Manufacturer {
	t.Helper()
	m, err := value.NewManufacturer(id)
	if err != nil {
		t.Fatalf("NewManufacturer(%q): %v", id, err)
	}
	return m
}

func minimalR3Block(t *testing.T) R3BaseBlock {
	t.Helper()
	name, err := value.NewDescriptorString("Test Monitor")
	if err != nil {
		t.Fatalf("NewDescriptorString: %v", err)
	}
	date, err := value.NewR3ManufactureDate(1, 2020)
	if err != nil {
		t.Fatalf("NewR3ManufactureDate: %v", err)
	}
	return R3BaseBlock{
		Manufacturer: mustManufacturer(t, "ASO"),
		Product:      value.ProductCode(1),
		Serial:       value.NoSerialNumber(),
		Date:         date,
		VideoInput:   value.NewVideoInputR3Digital(value.R3DigitalVideoInput{}),
		ImageSize:    value.NewImageSizeR3Undefined(),
		Gamma:        mustGamma(t, 2.2),
		Chromaticity: value.NewChromaticityMono(value.ChromaticityPoint{}),
		Descriptors: []descriptor.R3Descriptor{
			descriptor.NewR3ProductName(descriptor.ProductName{S: name}),
		},
	}
}

func mustGamma(t *testing.T, g float64) value.Gamma {
	t.Helper()
	v, err := value.NewGamma(g)
	if err != nil {
		t.Fatalf("NewGamma(%v): %v", g, err)
	}
	return v
}

func TestR3BaseBlockHeaderAndLength(t *testing.T) {
	b, err := minimalR3Block(t).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(b) != value.BlockLen {
		t.Fatalf("len(b) = %d, want %d", len(b), value.BlockLen)
	}
	want := []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}
	for i, w := range want {
		if b[i] != w {
			t.Errorf("byte %d = 0x%02X, want 0x%02X", i, b[i], w)
		}
	}
}

func TestR3BaseBlockChecksumsToZero(t *testing.T) {
	b, err := minimalR3Block(t).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var sum byte
	for _, v := range b {
		sum += v
	}
	if sum != 0 {
		t.Errorf("block sums to %d, want 0 (mod 256)", sum)
	}
}

func TestR3BaseBlockExtensionCountByte(t *testing.T) {
	block := minimalR3Block(t)
	var ext [value.BlockLen]byte
	ext[0] = 0x02 // CTA-861 extension tag, contents irrelevant here
	block.Extensions = [][]byte{ext[:]}

	b, err := block.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(b) != value.BlockLen*2 {
		t.Fatalf("len(b) = %d, want %d", len(b), value.BlockLen*2)
	}
	if b[126] != 1 {
		t.Errorf("byte 126 = %d, want 1", b[126])
	}
}

func TestR3BaseBlockRequiresAtLeastOneDescriptor(t *testing.T) {
	block := minimalR3Block(t)
	block.Descriptors = nil
	if _, err := block.Encode(); err == nil {
		t.Error("expected error for empty descriptor list")
	}
}

func TestR3BaseBlockRejectsTooManyDescriptors(t *testing.T) {
	block := minimalR3Block(t)
	for i := 0; i < descriptor.MaxDescriptors; i++ {
		block.Descriptors = append(block.Descriptors, descriptor.NewR3Dummy())
	}
	if _, err := block.Encode(); err == nil {
		t.Error("expected error for more than MaxDescriptors descriptors")
	}
}

func minimalR4Block(t *testing.T) R4BaseBlock {
	t.Helper()
	name, err := value.NewDescriptorString("Test Monitor")
	if err != nil {
		t.Fatalf("NewDescriptorString: %v", err)
	}
	date, err := value.NewR4ManufactureDate(1, 2020)
	if err != nil {
		t.Fatalf("NewR4ManufactureDate: %v", err)
	}
	return R4BaseBlock{
		Manufacturer: mustManufacturer(t, "ASO"),
		Product:      value.ProductCode(1),
		Serial:       value.NoSerialNumber(),
		Date:         NewR4ManufactureDate(date),
		VideoInput:   value.NewVideoInputR4Digital(value.R4DigitalVideoInput{}),
		ImageSize:    value.NewImageSizeR4Undefined(),
		Gamma:        mustGamma(t, 2.2),
		Chromaticity: value.NewChromaticityMono(value.ChromaticityPoint{}),
		Descriptors: []descriptor.R4Descriptor{
			descriptor.NewR4ProductName(descriptor.ProductName{S: name}),
		},
	}
}

func TestR4BaseBlockVersionRevision(t *testing.T) {
	b, err := minimalR4Block(t).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if b[18] != 1 || b[19] != 4 {
		t.Errorf("version/revision = %d/%d, want 1/4", b[18], b[19])
	}
}

func TestR4BaseBlockRejectsContinuousFrequencyWithoutRangeLimits(t *testing.T) {
	block := minimalR4Block(t)
	block.Feature.ContinuousFrequency = true
	if _, err := block.Encode(); err == nil {
		t.Error("expected error for continuous-frequency feature without a display range limits descriptor")
	}
}

func TestR4BaseBlockAllowsContinuousFrequencyWithRangeLimits(t *testing.T) {
	block := minimalR4Block(t)
	block.Feature.ContinuousFrequency = true
	limits := descriptor.R4DisplayRangeLimits{
		HorizontalKHz: mustR4FreqRange(t, 30, 90),
		VerticalHz:    mustR4FreqRange(t, 50, 75),
		MaxPixelClock: mustRangeLimitsPixelClock(t, 170),
		DefaultGTF:    true,
	}
	block.Descriptors = append(block.Descriptors, descriptor.NewR4DisplayRangeLimits(limits))
	if _, err := block.Encode(); err != nil {
		t.Errorf("Encode: unexpected error: %v", err)
	}
}

func mustR4FreqRange(t *testing.T, min, max int64) descriptor.R4FrequencyRange {
	t.Helper()
	lo, err := descriptor.NewR4Frequency(min)
	if err != nil {
		t.Fatalf("NewR4Frequency(%d): %v", min, err)
	}
	hi, err := descriptor.NewR4Frequency(max)
	if err != nil {
		t.Fatalf("NewR4Frequency(%d): %v", max, err)
	}
	r, err := descriptor.NewR4FrequencyRange(lo, hi)
	if err != nil {
		t.Fatalf("NewR4FrequencyRange: %v", err)
	}
	return r
}

func mustRangeLimitsPixelClock(t *testing.T, mhz int64) descriptor.RangeLimitsPixelClock {
	t.Helper()
	p, err := descriptor.NewRangeLimitsPixelClock(mhz)
	if err != nil {
		t.Fatalf("NewRangeLimitsPixelClock(%d): %v", mhz, err)
	}
	return p
}
