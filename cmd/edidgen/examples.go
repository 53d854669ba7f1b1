/*
NAME
  examples.go -

DESCRIPTION
  The -example code path: a minimal, valid Release 4 EDID for a
  fictional manufacturer, built without reading a YAML file. Carried
  forward from the original `redid` project's `examples/simple.rs`,
  which built an EdidRelease4 default purely in code as a smoke test.

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

// exampleDocument builds a minimal, valid Release 4 EDID description
// for a fictional 1920x1080@60Hz digital display.
func exampleDocument() Document {
	return Document{
		EDID: EDIDInput{
			Variant:      "1.4",
			Manufacturer: "ASO",
			Product:      1,
			ProductName:  "EdidGen Example",
			DateWeek:     1,
			DateYear:     2024,
			VideoInput: VideoInputSpec{
				Digital:    true,
				ColorDepth: "8",
				Interface:  "hdmi-a",
			},
			ImageSize: ImageSizeSpec{WidthCm: 60, HeightCm: 34},
			Feature: FeatureSpec{
				SRGBDefault: true,
			},
			Chromaticity: ChromaticitySpec{
				WhiteX: 0.3127, WhiteY: 0.3290,
				RedX: 0.6400, RedY: 0.3300,
				GreenX: 0.3000, GreenY: 0.6000,
				BlueX: 0.1500, BlueY: 0.0600,
			},
			StandardTimings: []StandardTimingSpec{
				{Horizontal: 1920, Ratio: "16:9", RefreshHz: 60},
			},
			PreferredTiming: DetailedTimingSpec{
				PixelClockKHz: 148500,
				HActive:       1920, HFrontPorch: 88, HSyncPulse: 44, HBackPorch: 148, HSizeMm: 600,
				VActive: 1080, VFrontPorch: 4, VSyncPulse: 5, VBackPorch: 36, VSizeMm: 340,
				DigitalSeparateSync: boolPtr(true),
				HSyncPositive:       true,
				VSyncPositive:       true,
			},
			Descriptors: []DescriptorSpec{
				{ProductName: "EdidGen Example"},
			},
		},
	}
}

func boolPtr(b bool) *bool { return &b }
