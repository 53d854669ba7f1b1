/*
NAME
  colorimetry.go -

DESCRIPTION
  CTA-861 Colorimetry Data Block (Extended Tag 5): a colorimetry-support
  bitmap plus the CTA-861.6 metadata-profile / DCI-P3 byte.

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

const (
	tagExtended            = 7
	extendedTagColorimetry = 5
)

// Colorimetry is the CTA-861 Colorimetry Data Block.
type Colorimetry struct {
	XvYCC601   bool
	XvYCC709   bool
	SYCC601    bool
	OPYCC601   bool
	OPRGB      bool
	BT2020CYCC bool
	BT2020YCC  bool
	BT2020RGB  bool
	DCIP3      bool
}

// Bytes returns the tag byte, extended tag byte, the support bitmap and
// the metadata-profile/DCI-P3 byte. Bit 5 of the latter is mandated by
// CTA-861.6 and always set.
func (c Colorimetry) Bytes() []byte {
	var b0 byte
	if c.BT2020RGB {
		b0 |= 1 << 7
	}
	if c.BT2020YCC {
		b0 |= 1 << 6
	}
	if c.BT2020CYCC {
		b0 |= 1 << 5
	}
	if c.OPRGB {
		b0 |= 1 << 4
	}
	if c.OPYCC601 {
		b0 |= 1 << 3
	}
	if c.SYCC601 {
		b0 |= 1 << 2
	}
	if c.XvYCC709 {
		b0 |= 1 << 1
	}
	if c.XvYCC601 {
		b0 |= 1
	}

	b1 := byte(1 << 5)
	if c.DCIP3 {
		b1 |= 1 << 7
	}

	return []byte{tagExtended<<5 | 3, extendedTagColorimetry, b0, b1}
}
