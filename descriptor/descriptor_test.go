/*
NAME
  descriptor_test.go -

DESCRIPTION
  Tests covering the 18-byte encodings of each descriptor form and the
  descriptor-list padding rules.

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

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/edid/value"
)

func TestProductNameBytes(t *testing.T) {
	s, err := value.NewDescriptorString("XYZ Monitor")
	if err != nil {
		t.Fatalf("NewDescriptorString: %v", err)
	}
	got := ProductName{S: s}.Bytes()
	want := [DescriptorLen]byte{
		0x00, 0x00, 0x00, 0xFC, 0x00,
		0x58, 0x59, 0x5A, 0x20, 0x4D, 0x6F, 0x6E, 0x69, 0x74, 0x6F, 0x72, 0x0A, 0x20,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}
}

func TestDataStringBytes(t *testing.T) {
	s, err := value.NewDescriptorString("THISISATEST")
	if err != nil {
		t.Fatalf("NewDescriptorString: %v", err)
	}
	got := DataString{S: s}.Bytes()
	want := [DescriptorLen]byte{
		0x00, 0x00, 0x00, 0xFE, 0x00,
		0x54, 0x48, 0x49, 0x53, 0x49, 0x53, 0x41, 0x54, 0x45, 0x53, 0x54, 0x0A, 0x20,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialNumberStringBytes(t *testing.T) {
	s, err := value.NewDescriptorString("A0123456789")
	if err != nil {
		t.Fatalf("NewDescriptorString: %v", err)
	}
	got := SerialNumberString{S: s}.Bytes()
	want := [DescriptorLen]byte{
		0x00, 0x00, 0x00, 0xFF, 0x00,
		0x41, 0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x0A, 0x20,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomDescriptorBytes(t *testing.T) {
	c, err := NewCustom(0x00, []byte{0xED, 0xD1, 0xD0, 0x00})
	if err != nil {
		t.Fatalf("NewCustom: %v", err)
	}
	got := c.Bytes()
	want := [DescriptorLen]byte{
		0x00, 0x00, 0x00, 0x00, 0x00,
		0xED, 0xD1, 0xD0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomDescriptorRejectsBadTag(t *testing.T) {
	if _, err := NewCustom(0x10, nil); err == nil {
		t.Error("expected error for tag above 0x0F")
	}
}

func TestCustomDescriptorRejectsOverlongPayload(t *testing.T) {
	if _, err := NewCustom(0x00, make([]byte, PayloadLen+1)); err == nil {
		t.Error("expected error for overlong payload")
	}
}

func TestDetailedTimingPixelClockRaw(t *testing.T) {
	pc, err := NewPixelClock(135000)
	if err != nil {
		t.Fatalf("NewPixelClock: %v", err)
	}
	dt := DetailedTiming{
		PixelClock: pc,
		Horizontal: Horizontal{Active: mustU12(t, 640), SyncPulse: mustU10(t, 10)},
		Vertical:   Vertical{Active: mustU12(t, 480)},
		Sync:       NewDigitalSync(NewDigitalSeparateSync(DigitalSeparateSync{VSyncPositive: true}, true)),
	}
	got := dt.Bytes()
	if got[0] != 0xBC || got[1] != 0x34 {
		t.Errorf("pixel clock bytes = %02X %02X, want BC 34", got[0], got[1])
	}
}

func TestDisplayRangeLimitsPixelClockRounding(t *testing.T) {
	p130, err := NewRangeLimitsPixelClock(130)
	if err != nil {
		t.Fatalf("NewRangeLimitsPixelClock(130): %v", err)
	}
	if got, want := p130.raw(), byte(0x0D); got != want {
		t.Errorf("130 MHz raw() = 0x%02X, want 0x%02X", got, want)
	}

	p108, err := NewRangeLimitsPixelClock(108)
	if err != nil {
		t.Fatalf("NewRangeLimitsPixelClock(108): %v", err)
	}
	if got, want := p108.raw(), byte(0x0B); got != want {
		t.Errorf("108 MHz raw() = 0x%02X, want 0x%02X", got, want)
	}
}

func TestDummyDescriptorBytes(t *testing.T) {
	want := [DescriptorLen]byte{0, 0, 0, TagDummy, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if got := (Dummy{}).Bytes(); got != want {
		t.Errorf("Dummy{}.Bytes() = %v, want %v", got, want)
	}
}

func TestFillToMaxPadsWithDummy(t *testing.T) {
	s, err := value.NewDescriptorString("Example")
	if err != nil {
		t.Fatalf("NewDescriptorString: %v", err)
	}
	out, err := FillToMax([]Descriptor{ProductName{S: s}})
	if err != nil {
		t.Fatalf("FillToMax: %v", err)
	}
	if len(out) != DescriptorLen*MaxDescriptors {
		t.Fatalf("len(out) = %d, want %d", len(out), DescriptorLen*MaxDescriptors)
	}
	dummy := Dummy{}.Bytes()
	for i := 1; i < MaxDescriptors; i++ {
		got := out[i*DescriptorLen : (i+1)*DescriptorLen]
		if diff := cmp.Diff(dummy[:], got); diff != "" {
			t.Errorf("slot %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestFillToMaxRejectsTooMany(t *testing.T) {
	descs := make([]Descriptor, MaxDescriptors+1)
	for i := range descs {
		descs[i] = Dummy{}
	}
	if _, err := FillToMax(descs); err == nil {
		t.Error("expected error for more than MaxDescriptors descriptors")
	}
}

func mustU12(t *testing.T, v int64) value.U12 {
	t.Helper()
	u, err := value.NewU12(v)
	if err != nil {
		t.Fatalf("NewU12(%d): %v", v, err)
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
