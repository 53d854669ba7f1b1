/*
NAME
  video_capability.go -

DESCRIPTION
  CTA-861 Video Capability Data Block (Extended Tag 0): quantization
  range support and scan-behavior fields for each of PT/IT/CE formats.

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

const extendedTagVideoCapability = 0

// Quantization is a video capability quantization-range field: no data,
// or selectable.
type Quantization uint8

const (
	QuantizationNoData     Quantization = 0
	QuantizationSelectable Quantization = 1
)

// ScanBehavior is a video capability scan-behavior field for one of the
// PT (preferred timing), IT (IT video formats) or CE (CE video formats)
// categories.
type ScanBehavior uint8

const (
	ScanNotSupported ScanBehavior = 0
	ScanOverscanned  ScanBehavior = 1
	ScanUnderscanned ScanBehavior = 2
	ScanBoth         ScanBehavior = 3
)

// VideoCapability is the CTA-861 Video Capability Data Block.
type VideoCapability struct {
	QYQuantization Quantization
	QSQuantization Quantization
	PTScan         ScanBehavior
	ITScan         ScanBehavior
	CEScan         ScanBehavior
}

// Bytes returns the tag byte, extended tag byte and the packed
// quantization/scan-behavior byte.
func (v VideoCapability) Bytes() []byte {
	var b byte
	b |= byte(v.QYQuantization) << 7
	b |= byte(v.QSQuantization) << 6
	b |= byte(v.PTScan) << 4
	b |= byte(v.ITScan) << 2
	b |= byte(v.CEScan)
	return []byte{tagExtended<<5 | 2, extendedTagVideoCapability, b}
}
