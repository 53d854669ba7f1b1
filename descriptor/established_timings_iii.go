/*
NAME
  established_timings_iii.go -

DESCRIPTION
  Established Timings III Descriptor, EDID 1.4 Specification Section
  3.10.3.11: a Release 4-only descriptor carrying a 6-byte bitset of 44
  additional established timing modes beyond the base block's own
  established-timings-I/II bytes.

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

import "github.com/ausocean/edid/value"

// EstablishedTimingsIII is the TagEstablishedTimingsIII descriptor. Its
// 13-byte payload is a fixed revision byte (0x0A), the 6-byte
// timing-support bitset, and 6 reserved 0x00 bytes.
type EstablishedTimingsIII struct {
	Timings []value.EstablishedTimingIII
}

// Bytes returns the 18-byte encoding.
func (e EstablishedTimingsIII) Bytes() [DescriptorLen]byte {
	var payload [PayloadLen]byte
	payload[0] = 0x0A
	bitset := value.EstablishedTimingsIIIBytes(e.Timings)
	copy(payload[1:], bitset[:])
	return withHeader(TagEstablishedTimingsIII, payload)
}
