/*
NAME
  custom.go -

DESCRIPTION
  Manufacturer-defined descriptor, EDID 1.4 Specification Section
  3.10.3.12: a tag in 0x00-0x0F plus up to 13 bytes of vendor-specific
  payload, zero-padded.

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

// Custom is a manufacturer-defined descriptor: a 4-bit tag and up to 13
// bytes of payload.
type Custom struct {
	tag     byte
	payload []byte
}

// NewCustom validates tag (0x00..=0x0F) and payload (at most 13 bytes).
func NewCustom(tag byte, payload []byte) (Custom, error) {
	if tag > 0x0F {
		return Custom{}, newDescriptorRange(int64(tag), 0, 0x0F)
	}
	if len(payload) > PayloadLen {
		return Custom{}, newDescriptorValue("custom descriptor payload must be at most %d bytes long, got %d", PayloadLen, len(payload))
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return Custom{tag: tag, payload: cp}, nil
}

// Bytes returns the 18-byte encoding: header with the custom tag,
// followed by the payload zero-padded to 13 bytes.
func (c Custom) Bytes() [DescriptorLen]byte {
	var payload [PayloadLen]byte
	copy(payload[:], c.payload)
	return withHeader(c.tag, payload)
}
