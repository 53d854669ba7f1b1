/*
NAME
  checksum.go -

DESCRIPTION
  The EDID block checksum shared by the base block and every CTA-861
  extension block: each is exactly 128 bytes and must sum to 0 mod 256.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package value

// BlockLen is the fixed size, in bytes, of the EDID base block and of
// every CTA-861 extension block.
const BlockLen = 128

// Checksum computes the trailing checksum byte for a BlockLen-byte EDID
// block: the first BlockLen-1 bytes of b, plus the returned byte, sum to
// 0 mod 256. Panics if b is not exactly BlockLen bytes long, since the
// caller is always an internal encoder assembling a fixed-size block.
func Checksum(b []byte) byte {
	if len(b) != BlockLen {
		panic("value: Checksum requires a 128-byte block")
	}
	var sum byte
	for _, v := range b[:BlockLen-1] {
		sum += v
	}
	return byte((256 - int(sum)) % 256)
}
