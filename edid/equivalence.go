/*
NAME
  equivalence.go -

DESCRIPTION
  Equivalent compares two encoded EDID images under the handful of
  wire-level degrees of freedom that a byte-for-byte comparison gets
  wrong: the base block's detailed-timing descriptors carry a reserved
  stereo low bit that some encoders leave as 0 and others set, and the
  8 standard-timing slots have no defined ordering. A stereo low bit
  difference changes the base block's checksum (reordering slots does
  not), so the checksum comparison is adjusted by however much the
  tolerated stereo bit differences actually changed it rather than
  compared as-is.

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
	"bytes"

	"github.com/ausocean/edid/value"
)

const (
	standardTimingsOffset = 38
	standardTimingsLen    = 16
	descriptorBytesLen    = 18
)

var descriptorOffsets = [4]int{54, 72, 90, 108}

// Equivalent reports whether a and b encode the same EDID image, up to
// the reserved detailed-timing stereo low bit and standard-timing slot
// ordering. Bytes beyond the 128-byte base block (extension blocks)
// must match exactly.
func Equivalent(a, b []byte) bool {
	if len(a) != len(b) || len(a) < value.BlockLen {
		return false
	}
	if !baseBlockEquivalent(a[:value.BlockLen], b[:value.BlockLen]) {
		return false
	}
	return bytes.Equal(a[value.BlockLen:], b[value.BlockLen:])
}

func baseBlockEquivalent(a, b []byte) bool {
	skip := make(map[int]bool, standardTimingsLen+len(descriptorOffsets)+1)
	for i := standardTimingsOffset; i < standardTimingsOffset+standardTimingsLen; i++ {
		skip[i] = true
	}
	checksumIdx := value.BlockLen - 1
	skip[checksumIdx] = true

	var checksumAdjust int
	for _, off := range descriptorOffsets {
		da, db := a[off:off+descriptorBytesLen], b[off:off+descriptorBytesLen]
		if !isDetailedTimingSlot(da) || !isDetailedTimingSlot(db) {
			continue
		}
		if !bytes.Equal(da[:descriptorBytesLen-1], db[:descriptorBytesLen-1]) {
			return false
		}
		flagsIdx := off + descriptorBytesLen - 1
		switch a[flagsIdx] ^ b[flagsIdx] {
		case 0x00:
		case 0x01:
			checksumAdjust += int(b[flagsIdx]) - int(a[flagsIdx])
		default:
			return false
		}
		skip[flagsIdx] = true
	}

	for i := 0; i < value.BlockLen; i++ {
		if skip[i] {
			continue
		}
		if a[i] != b[i] {
			return false
		}
	}

	if !standardTimingsEquivalent(
		a[standardTimingsOffset:standardTimingsOffset+standardTimingsLen],
		b[standardTimingsOffset:standardTimingsOffset+standardTimingsLen],
	) {
		return false
	}

	want := byte(int(a[checksumIdx]) - checksumAdjust)
	return b[checksumIdx] == want
}

// isDetailedTimingSlot reports whether an 18-byte descriptor slot
// holds a detailed timing rather than a tagged descriptor: detailed
// timings never start with a zero pixel clock, and every tagged
// descriptor's first two bytes are the 00 00 that opens its 5-byte
// header.
func isDetailedTimingSlot(d []byte) bool {
	return d[0] != 0 || d[1] != 0
}

// standardTimingsEquivalent reports whether two 16-byte standard
// timing regions hold the same 2-byte slots, ignoring slot order.
func standardTimingsEquivalent(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b)/2)
outer:
	for i := 0; i+1 < len(a); i += 2 {
		for j := range used {
			if used[j] {
				continue
			}
			if b[2*j] == a[i] && b[2*j+1] == a[i+1] {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
