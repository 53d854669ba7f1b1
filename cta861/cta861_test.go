/*
NAME
  cta861_test.go -

DESCRIPTION
  Tests covering CTA-861 data block tag/length byte packing and the
  Revision 3 extension block assembly invariants (checksum, DTD offset,
  128-byte length).

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package cta861

import (
	"testing"

	"github.com/ausocean/edid/value"
)

func TestVideoDataBlockBytes(t *testing.T) {
	native, err := NewShortVideoDescriptor(16, true)
	if err != nil {
		t.Fatalf("NewShortVideoDescriptor: %v", err)
	}
	db := VideoDataBlock{Descriptors: []ShortVideoDescriptor{native}}
	got := db.Bytes()
	want := []byte{tagVideo<<5 | 1, 0x90} // 16 | native bit
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
}

func TestShortVideoDescriptorRejectsNativeHighVIC(t *testing.T) {
	if _, err := NewShortVideoDescriptor(64, true); err == nil {
		t.Error("expected error for native VIC >= 64")
	}
}

func TestAudioDataBlockTagAndLength(t *testing.T) {
	ch, err := NewChannels(2)
	if err != nil {
		t.Fatalf("NewChannels: %v", err)
	}
	db := AudioDataBlock{Descriptors: []LPCMDescriptor{
		{Channels: ch, SamplingFrequencies: []SamplingFrequency{Freq48kHz}, SamplingRates: []SamplingRate{Rate16Bit}},
	}}
	got := db.Bytes()
	if len(got) != 4 {
		t.Fatalf("len(got) = %d, want 4", len(got))
	}
	if got[0] != tagAudio<<5|3 {
		t.Errorf("tag/length byte = 0x%02X, want 0x%02X", got[0], byte(tagAudio<<5|3))
	}
}

func TestSpeakerAllocationFixedLength(t *testing.T) {
	got := SpeakerAllocation{FrontLeftFrontRight: true}.Bytes()
	if len(got) != 4 {
		t.Fatalf("len(got) = %d, want 4", len(got))
	}
	if got[1] != 1 {
		t.Errorf("byte 1 = 0x%02X, want 0x01", got[1])
	}
}

func TestHDMIVendorBlockGrowsOnlyAsNeeded(t *testing.T) {
	cec, err := NewCecAddress(1, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewCecAddress: %v", err)
	}
	bare := HDMIVendorBlock{SourcePhysicalAddress: cec}
	if got, want := len(bare.Bytes()), 6; got != want {
		t.Errorf("bare block length = %d, want %d", got, want)
	}

	rate, err := NewTMDSRate(300)
	if err != nil {
		t.Fatalf("NewTMDSRate: %v", err)
	}
	withRate := HDMIVendorBlock{SourcePhysicalAddress: cec, MaxTMDSRateMHz: &rate}
	if got, want := len(withRate.Bytes()), 8; got != want {
		t.Errorf("with-rate block length = %d, want %d", got, want)
	}
}

func TestRevision3EncodeLengthAndChecksum(t *testing.T) {
	cec, err := NewCecAddress(1, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewCecAddress: %v", err)
	}
	ext := Revision3{
		AudioSupported: true,
		DataBlocks:     []DataBlock{HDMIVendorBlock{SourcePhysicalAddress: cec}},
	}
	b, err := ext.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(b) != value.BlockLen {
		t.Fatalf("len(b) = %d, want %d", len(b), value.BlockLen)
	}
	if b[0] != 0x02 || b[1] != 0x03 {
		t.Errorf("header = %02X %02X, want 02 03", b[0], b[1])
	}
	if b[2] != 4+6 {
		t.Errorf("DTD offset = %d, want %d", b[2], 4+6)
	}
	var sum byte
	for _, v := range b {
		sum += v
	}
	if sum != 0 {
		t.Errorf("extension block sums to %d, want 0 (mod 256)", sum)
	}
}

func TestRevision3EncodeRejectsOversizedNativeFormats(t *testing.T) {
	ext := Revision3{NativeFormats: 0x10}
	if _, err := ext.Encode(); err == nil {
		t.Error("expected error for NativeFormats above 0x0F")
	}
}

func TestRevision3EncodeNoDataBlocksLeavesDTDOffsetZero(t *testing.T) {
	ext := Revision3{}
	b, err := ext.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if b[2] != 0 {
		t.Errorf("DTD offset = %d, want 0 for an extension with no data blocks or timings", b[2])
	}
}
