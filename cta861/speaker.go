/*
NAME
  speaker.go -

DESCRIPTION
  CTA-861 Speaker Allocation Data Block: a fixed 3-byte bitmap of 20
  named speaker positions.

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

const tagSpeakerAllocation = 4

// SpeakerAllocation is the CTA-861 Speaker Allocation Data Block, one
// boolean per named speaker position.
type SpeakerAllocation struct {
	FrontLeftFrontRight                 bool
	LowFrequencyEffects                 bool
	FrontCenter                         bool
	BackLeftBackRight                   bool
	BackCenter                          bool
	FrontLeftOfCenterFrontRightOfCenter bool
	RearLeftOfCenterRearRightOfCenter   bool
	FrontLeftWideFrontRightWide         bool
	TopFrontLeftTopFrontRight           bool
	TopCenter                           bool
	TopFrontCenter                      bool
	LeftSurroundRightSurround           bool
	LowFrequencyEffects2                bool
	TopBackCenter                       bool
	SideLeftSideRight                   bool
	TopSideLeftTopSideRight             bool
	TopBackLeftTopBackRight             bool
	BottomFrontCenter                   bool
	BottomFrontLeftBottomFrontRight     bool
	TopLeftSurroundTopRightSurround     bool
}

// Bytes returns the tag byte followed by the fixed 3-byte bitmap.
func (s SpeakerAllocation) Bytes() []byte {
	var b0 byte
	if s.FrontLeftWideFrontRightWide {
		b0 |= 1 << 7
	}
	if s.RearLeftOfCenterRearRightOfCenter {
		b0 |= 1 << 6
	}
	if s.FrontLeftOfCenterFrontRightOfCenter {
		b0 |= 1 << 5
	}
	if s.BackCenter {
		b0 |= 1 << 4
	}
	if s.BackLeftBackRight {
		b0 |= 1 << 3
	}
	if s.FrontCenter {
		b0 |= 1 << 2
	}
	if s.LowFrequencyEffects {
		b0 |= 1 << 1
	}
	if s.FrontLeftFrontRight {
		b0 |= 1
	}

	var b1 byte
	if s.TopSideLeftTopSideRight {
		b1 |= 1 << 7
	}
	if s.SideLeftSideRight {
		b1 |= 1 << 6
	}
	if s.TopBackCenter {
		b1 |= 1 << 5
	}
	if s.LowFrequencyEffects2 {
		b1 |= 1 << 4
	}
	if s.LeftSurroundRightSurround {
		b1 |= 1 << 3
	}
	if s.TopFrontCenter {
		b1 |= 1 << 2
	}
	if s.TopCenter {
		b1 |= 1 << 1
	}
	if s.TopFrontLeftTopFrontRight {
		b1 |= 1
	}

	var b2 byte
	if s.TopLeftSurroundTopRightSurround {
		b2 |= 1 << 3
	}
	if s.BottomFrontLeftBottomFrontRight {
		b2 |= 1 << 2
	}
	if s.BottomFrontCenter {
		b2 |= 1 << 1
	}
	if s.TopBackLeftTopBackRight {
		b2 |= 1
	}

	return []byte{tagSpeakerAllocation<<5 | 3, b0, b1, b2}
}
