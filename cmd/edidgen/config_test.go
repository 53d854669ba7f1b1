/*
NAME
  config_test.go -

DESCRIPTION
  Tests covering the YAML-to-core-model mapping helpers and the
  end-to-end build path exercised by the built-in example document.

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
	"testing"

	"github.com/ausocean/edid/value"
)

func TestStandardTimingRatio(t *testing.T) {
	cases := map[string]value.StandardTimingRatio{
		"16:10": value.Ratio16x10,
		"4:3":   value.Ratio4x3,
		"5:4":   value.Ratio5x4,
		"16:9":  value.Ratio16x9,
	}
	for s, want := range cases {
		got, err := standardTimingRatio(s)
		if err != nil {
			t.Errorf("standardTimingRatio(%q): unexpected error: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("standardTimingRatio(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestStandardTimingRatioRejectsUnknown(t *testing.T) {
	if _, err := standardTimingRatio("3:2"); err == nil {
		t.Error("expected error for unknown ratio")
	}
}

func TestDigitalColorDepth(t *testing.T) {
	cases := map[string]value.DigitalColorDepth{
		"":     value.ColorDepthUndefined,
		"6":    value.ColorDepth6Bpc,
		"8":    value.ColorDepth8Bpc,
		"10":   value.ColorDepth10Bpc,
		"12":   value.ColorDepth12Bpc,
		"14":   value.ColorDepth14Bpc,
		"16":   value.ColorDepth16Bpc,
	}
	for s, want := range cases {
		got, err := digitalColorDepth(s)
		if err != nil {
			t.Errorf("digitalColorDepth(%q): unexpected error: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("digitalColorDepth(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestDigitalColorDepthRejectsUnknown(t *testing.T) {
	if _, err := digitalColorDepth("24"); err == nil {
		t.Error("expected error for unknown color depth")
	}
}

func TestDigitalInterface(t *testing.T) {
	cases := map[string]value.DigitalInterface{
		"":            value.InterfaceUndefined,
		"dvi":         value.InterfaceDVI,
		"hdmi-a":      value.InterfaceHDMIa,
		"hdmi-b":      value.InterfaceHDMIb,
		"mddi":        value.InterfaceMDDI,
		"displayport": value.InterfaceDisplayPort,
	}
	for s, want := range cases {
		got, err := digitalInterface(s)
		if err != nil {
			t.Errorf("digitalInterface(%q): unexpected error: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("digitalInterface(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestDigitalInterfaceRejectsUnknown(t *testing.T) {
	if _, err := digitalInterface("vga"); err == nil {
		t.Error("expected error for unknown digital interface")
	}
}

func TestEstablishedTimingsRejectsUnknownName(t *testing.T) {
	e := EDIDInput{EstablishedTimings: []string{"not-a-real-timing"}}
	if _, err := e.establishedTimings(); err == nil {
		t.Error("expected error for unknown established timing name")
	}
}

func TestEstablishedTimingsMapsKnownNames(t *testing.T) {
	e := EDIDInput{EstablishedTimings: []string{"640x480@60", "800x600@60"}}
	got, err := e.establishedTimings()
	if err != nil {
		t.Fatalf("establishedTimings: %v", err)
	}
	want := []value.EstablishedTiming{value.ET640x480_60Hz, value.ET800x600_60Hz}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExampleDocumentBuildsAndEncodes(t *testing.T) {
	doc := exampleDocument()
	enc, err := doc.EDID.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	data, err := enc.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(data) != value.BlockLen {
		t.Fatalf("len(data) = %d, want %d (no extensions in the example)", len(data), value.BlockLen)
	}
	var sum byte
	for _, v := range data {
		sum += v
	}
	if sum != 0 {
		t.Errorf("example image sums to %d, want 0 (mod 256)", sum)
	}
}

func TestBuildRejectsUnknownVariant(t *testing.T) {
	e := EDIDInput{Variant: "2.0"}
	if _, err := e.Build(); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestBuildHdmiRequiresHdmiField(t *testing.T) {
	e := EDIDInput{Variant: "hdmi"}
	if _, err := e.Build(); err == nil {
		t.Error("expected error for hdmi variant missing the hdmi field")
	}
}
