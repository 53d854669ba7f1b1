/*
NAME
  hdmi.go -

DESCRIPTION
  HDMI Vendor-Specific Data Block (CTA-861 vendor-specific tag, OUI
  03 0C 00): CEC physical address, optional deep-color/DVI-dual/ACP-ISRC
  flags, optional max TMDS clock, optional supported-VIC sub-block. The
  block grows only as far as needed to carry the fields that are set;
  trailing absent bytes are omitted, not zeroed.

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

const tagVendorSpecific = 3

var hdmiOUI = [3]byte{0x03, 0x0C, 0x00}

// CecAddress is an HDMI CEC physical address A.B.C.D, each nibble
// 0..=15.
type CecAddress struct {
	A, B, C, D uint8
}

// NewCecAddress validates all four components against 0..=15.
func NewCecAddress(a, b, c, d int) (CecAddress, error) {
	for _, v := range []int{a, b, c, d} {
		if v < 0 || v > 15 {
			return CecAddress{}, newRange(int64(v), 0, 15)
		}
	}
	return CecAddress{uint8(a), uint8(b), uint8(c), uint8(d)}, nil
}

// TMDSRate is a maximum TMDS clock rate in MHz, 5..=340, stored on the
// wire as ceil(rate/5).
type TMDSRate uint16

// NewTMDSRate validates mhz against 5..=340.
func NewTMDSRate(mhz int) (TMDSRate, error) {
	if mhz < 5 || mhz > 340 {
		return 0, newRange(int64(mhz), 5, 340)
	}
	return TMDSRate(mhz), nil
}

func (r TMDSRate) raw() byte { return byte((uint16(r) + 4) / 5) }

// HDMIVideo is the optional VIC sub-block of an HDMI vendor-specific
// data block.
type HDMIVideo struct {
	VICs []uint8
}

// HDMIVendorBlock is the HDMI Vendor-Specific Data Block.
type HDMIVendorBlock struct {
	SourcePhysicalAddress CecAddress

	DeepColor30Bits   bool
	DeepColor36Bits   bool
	DeepColor48Bits   bool
	DeepColorYCbCr444 bool
	DVIDual           bool
	ACPISRC           bool

	MaxTMDSRateMHz *TMDSRate
	Video          *HDMIVideo
}

// Bytes returns the tag byte followed by the OUI, CEC physical address,
// and whichever optional trailing fields are set.
func (h HDMIVendorBlock) Bytes() []byte {
	payload := make([]byte, 5, 12)
	payload[0], payload[1], payload[2] = hdmiOUI[0], hdmiOUI[1], hdmiOUI[2]
	payload[3] = h.SourcePhysicalAddress.A<<4 | h.SourcePhysicalAddress.B
	payload[4] = h.SourcePhysicalAddress.C<<4 | h.SourcePhysicalAddress.D

	switch {
	case h.Video != nil:
		payload = append(payload, 0, 0, 0)
	case h.MaxTMDSRateMHz != nil:
		payload = append(payload, 0, 0)
	case h.ACPISRC || h.DeepColor30Bits || h.DeepColor36Bits || h.DeepColor48Bits || h.DeepColorYCbCr444 || h.DVIDual:
		payload = append(payload, 0)
	}

	if len(payload) > 5 {
		var b byte
		if h.ACPISRC {
			b |= 1 << 7
		}
		if h.DeepColor48Bits {
			b |= 1 << 6
		}
		if h.DeepColor36Bits {
			b |= 1 << 5
		}
		if h.DeepColor30Bits {
			b |= 1 << 4
		}
		if h.DeepColorYCbCr444 {
			b |= 1 << 3
		}
		if h.DVIDual {
			b |= 1
		}
		payload[5] = b
	}

	if len(payload) > 6 {
		var b byte
		if h.MaxTMDSRateMHz != nil {
			b = h.MaxTMDSRateMHz.raw()
		}
		payload[6] = b
	}

	if len(payload) > 7 {
		var b byte
		if h.Video != nil {
			b |= 1 << 5
		}
		payload[7] = b
	}

	if h.Video != nil {
		payload = append(payload, 0) // 3D / image size byte, unsupported
		payload = append(payload, byte(len(h.Video.VICs))<<5)
		payload = append(payload, h.Video.VICs...)
	}

	out := make([]byte, 0, 1+len(payload))
	out = append(out, tagVendorSpecific<<5|byte(len(payload)))
	return append(out, payload...)
}
