/*
NAME
  audio.go -

DESCRIPTION
  CTA-861 Audio Data Block: one or more LPCM short audio descriptors,
  each 3 bytes, preceded by the 1-byte data block tag.

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

const tagAudio = 1

// Channels is an LPCM descriptor's channel count, 1..=8.
type Channels uint8

// NewChannels validates n against 1..=8.
func NewChannels(n int) (Channels, error) {
	if n < 1 || n > 8 {
		return 0, newRange(int64(n), 1, 8)
	}
	return Channels(n), nil
}

// SamplingFrequency is one of the 7 LPCM sampling frequencies a short
// audio descriptor can advertise support for.
type SamplingFrequency uint8

const (
	Freq32kHz SamplingFrequency = iota
	Freq44_1kHz
	Freq48kHz
	Freq88_2kHz
	Freq96kHz
	Freq176_4kHz
	Freq192kHz
)

// SamplingRate is one of the 3 LPCM sample sizes a short audio
// descriptor can advertise support for.
type SamplingRate uint8

const (
	Rate16Bit SamplingRate = iota
	Rate20Bit
	Rate24Bit
)

// LPCMDescriptor is one 3-byte LPCM short audio descriptor.
type LPCMDescriptor struct {
	Channels            Channels
	SamplingFrequencies []SamplingFrequency
	SamplingRates       []SamplingRate
}

// AudioDataBlock is the CTA-861 Audio Data Block, carrying a list of
// short audio descriptors. Only the LPCM descriptor form is supported.
type AudioDataBlock struct {
	Descriptors []LPCMDescriptor
}

// Bytes returns the tag byte followed by 3 bytes per descriptor.
func (a AudioDataBlock) Bytes() []byte {
	size := len(a.Descriptors) * 3
	out := make([]byte, 0, 1+size)
	out = append(out, tagAudio<<5|byte(size))
	for _, d := range a.Descriptors {
		b0 := byte(1<<3) | byte(d.Channels-1)
		var b1, b2 byte
		for _, f := range d.SamplingFrequencies {
			b1 |= 1 << byte(f)
		}
		for _, r := range d.SamplingRates {
			b2 |= 1 << byte(r)
		}
		out = append(out, b0, b1, b2)
	}
	return out
}
