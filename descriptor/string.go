/*
NAME
  string.go -

DESCRIPTION
  The three string-payload descriptors: product name, data string and
  product serial number. All three share the same 13-byte payload
  encoding (value.DescriptorString) and differ only in header tag.

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

// ProductName is the TagProductName string descriptor.
type ProductName struct{ S value.DescriptorString }

// Bytes returns the 18-byte encoding.
func (p ProductName) Bytes() [DescriptorLen]byte { return withHeader(TagProductName, p.S.Bytes()) }

// DataString is the TagDataString string descriptor.
type DataString struct{ S value.DescriptorString }

// Bytes returns the 18-byte encoding.
func (d DataString) Bytes() [DescriptorLen]byte { return withHeader(TagDataString, d.S.Bytes()) }

// SerialNumberString is the TagSerialNumber string descriptor. Not to
// be confused with value.SerialNumber, the base block's binary serial
// number field; this descriptor carries a human-readable string.
type SerialNumberString struct{ S value.DescriptorString }

// Bytes returns the 18-byte encoding.
func (s SerialNumberString) Bytes() [DescriptorLen]byte {
	return withHeader(TagSerialNumber, s.S.Bytes())
}
