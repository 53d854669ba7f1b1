/*
NAME
  equivalence_test.go -

DESCRIPTION
  Tests covering Equivalent's two explicit tolerance rules: the
  detailed-timing stereo low bit (tolerated only with a compensating
  checksum adjustment) and standard-timing slot reordering (tolerated
  unconditionally, as an unordered multiset).

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

	"github.com/ausocean/edid/value"
)

func mustHdmiFreeRelease3(t *testing.T) []byte {
	t.Helper()
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
	return b
}

func TestEquivalentSameBytes(t *testing.T) {
	a := mustHdmiFreeRelease3(t)
	b := append([]byte(nil), a...)
	if !Equivalent(a, b) {
		t.Error("identical images should be equivalent")
	}
}

func TestEquivalentStereoLowBitWithCompensatedChecksum(t *testing.T) {
	a := mustHdmiFreeRelease3(t)
	b := append([]byte(nil), a...)

	flagsIdx := 54 + 17
	before := b[flagsIdx]
	b[flagsIdx] ^= 0x01
	delta := int(b[flagsIdx]) - int(before)
	b[value.BlockLen-1] = byte(int(b[value.BlockLen-1]) - delta)

	if !Equivalent(a, b) {
		t.Error("stereo low bit difference with a compensating checksum should be equivalent")
	}
}

func TestEquivalentStereoLowBitWithoutCompensatedChecksumIsNotEquivalent(t *testing.T) {
	a := mustHdmiFreeRelease3(t)
	b := append([]byte(nil), a...)

	b[54+17] ^= 0x01 // checksum left untouched

	if Equivalent(a, b) {
		t.Error("stereo low bit difference without a compensating checksum adjustment should not be equivalent")
	}
}

func TestEquivalentNonStereoFlagBitDifferenceIsNotEquivalent(t *testing.T) {
	a := mustHdmiFreeRelease3(t)
	b := append([]byte(nil), a...)

	flagsIdx := 54 + 17
	b[flagsIdx] ^= 0x02 // not the reserved low bit
	b[value.BlockLen-1] = byte(int(b[value.BlockLen-1]) - 2)

	if Equivalent(a, b) {
		t.Error("a non-stereo flag bit difference should never be tolerated")
	}
}

func TestEquivalentStandardTimingReorderingIsEquivalent(t *testing.T) {
	st1, err := value.NewStandardTiming(1920, value.Ratio16x9, 60)
	if err != nil {
		t.Fatalf("NewStandardTiming: %v", err)
	}
	st2, err := value.NewStandardTiming(1280, value.Ratio4x3, 75)
	if err != nil {
		t.Fatalf("NewStandardTiming: %v", err)
	}

	block := minimalR3Block(t)
	block.StandardTimings = []value.StandardTiming{st1, st2}
	a, err := block.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	block.StandardTimings = []value.StandardTiming{st2, st1}
	b, err := block.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	const off, l = standardTimingsOffset, standardTimingsLen
	if string(a[off:off+l]) == string(b[off:off+l]) {
		t.Fatal("test setup invalid: reordered standard timings produced identical bytes")
	}
	if !Equivalent(a, b) {
		t.Error("reordered standard timing slots should be equivalent")
	}
}

func TestEquivalentDifferingLengthsAreNotEquivalent(t *testing.T) {
	a := mustHdmiFreeRelease3(t)
	if Equivalent(a, a[:len(a)-1]) {
		t.Error("images of different lengths should never be equivalent")
	}
}

func TestEquivalentExtensionBytesMustMatchExactly(t *testing.T) {
	block := minimalR3Block(t)
	var ext [value.BlockLen]byte
	ext[0] = 0x02
	block.Extensions = [][]byte{ext[:]}
	a, err := block.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b := append([]byte(nil), a...)
	b[value.BlockLen+1] ^= 0xFF

	if Equivalent(a, b) {
		t.Error("an extension-block byte difference should never be tolerated")
	}
}
