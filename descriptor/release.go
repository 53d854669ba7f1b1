/*
NAME
  release.go -

DESCRIPTION
  R3Descriptor and R4Descriptor, the tagged unions of every descriptor
  form legal in a Release 3 or Release 4 base block's 4-entry descriptor
  list. Release 3 excludes Established Timings III, which EDID 1.4
  (Release 4) introduced.

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

// R3Descriptor is the tagged union of descriptor forms a Release 3 base
// block may place in its descriptor list.
type R3Descriptor struct {
	detailedTiming *DetailedTiming
	displayRange   *R3DisplayRangeLimits
	productName    *ProductName
	dataString     *DataString
	serialNumber   *SerialNumberString
	custom         *Custom
	dummy          *Dummy
}

// NewR3DetailedTiming builds the detailed timing variant.
func NewR3DetailedTiming(d DetailedTiming) R3Descriptor { return R3Descriptor{detailedTiming: &d} }

// NewR3DisplayRangeLimits builds the display range limits variant.
func NewR3DisplayRangeLimits(d R3DisplayRangeLimits) R3Descriptor {
	return R3Descriptor{displayRange: &d}
}

// NewR3ProductName builds the product name variant.
func NewR3ProductName(p ProductName) R3Descriptor { return R3Descriptor{productName: &p} }

// NewR3DataString builds the data string variant.
func NewR3DataString(d DataString) R3Descriptor { return R3Descriptor{dataString: &d} }

// NewR3SerialNumber builds the serial number string variant.
func NewR3SerialNumber(s SerialNumberString) R3Descriptor { return R3Descriptor{serialNumber: &s} }

// NewR3Custom builds the manufacturer-defined variant.
func NewR3Custom(c Custom) R3Descriptor { return R3Descriptor{custom: &c} }

// NewR3Dummy builds the dummy variant.
func NewR3Dummy() R3Descriptor { d := Dummy{}; return R3Descriptor{dummy: &d} }

// Bytes returns the 18-byte encoding of whichever variant is set.
func (d R3Descriptor) Bytes() [DescriptorLen]byte {
	switch {
	case d.detailedTiming != nil:
		return d.detailedTiming.Bytes()
	case d.displayRange != nil:
		return d.displayRange.Bytes()
	case d.productName != nil:
		return d.productName.Bytes()
	case d.dataString != nil:
		return d.dataString.Bytes()
	case d.serialNumber != nil:
		return d.serialNumber.Bytes()
	case d.custom != nil:
		return d.custom.Bytes()
	default:
		return Dummy{}.Bytes()
	}
}

// R4Descriptor is the tagged union of descriptor forms a Release 4 base
// block may place in its descriptor list.
type R4Descriptor struct {
	detailedTiming   *DetailedTiming
	displayRange     *R4DisplayRangeLimits
	establishedTimingsIII *EstablishedTimingsIII
	productName      *ProductName
	dataString       *DataString
	serialNumber     *SerialNumberString
	custom           *Custom
	dummy            *Dummy
}

// NewR4DetailedTiming builds the detailed timing variant.
func NewR4DetailedTiming(d DetailedTiming) R4Descriptor { return R4Descriptor{detailedTiming: &d} }

// NewR4DisplayRangeLimits builds the display range limits variant.
func NewR4DisplayRangeLimits(d R4DisplayRangeLimits) R4Descriptor {
	return R4Descriptor{displayRange: &d}
}

// NewR4EstablishedTimingsIII builds the established timings III variant.
func NewR4EstablishedTimingsIII(e EstablishedTimingsIII) R4Descriptor {
	return R4Descriptor{establishedTimingsIII: &e}
}

// NewR4ProductName builds the product name variant.
func NewR4ProductName(p ProductName) R4Descriptor { return R4Descriptor{productName: &p} }

// NewR4DataString builds the data string variant.
func NewR4DataString(d DataString) R4Descriptor { return R4Descriptor{dataString: &d} }

// NewR4SerialNumber builds the serial number string variant.
func NewR4SerialNumber(s SerialNumberString) R4Descriptor { return R4Descriptor{serialNumber: &s} }

// NewR4Custom builds the manufacturer-defined variant.
func NewR4Custom(c Custom) R4Descriptor { return R4Descriptor{custom: &c} }

// NewR4Dummy builds the dummy variant.
func NewR4Dummy() R4Descriptor { d := Dummy{}; return R4Descriptor{dummy: &d} }

// Bytes returns the 18-byte encoding of whichever variant is set.
func (d R4Descriptor) Bytes() [DescriptorLen]byte {
	switch {
	case d.detailedTiming != nil:
		return d.detailedTiming.Bytes()
	case d.displayRange != nil:
		return d.displayRange.Bytes()
	case d.establishedTimingsIII != nil:
		return d.establishedTimingsIII.Bytes()
	case d.productName != nil:
		return d.productName.Bytes()
	case d.dataString != nil:
		return d.dataString.Bytes()
	case d.serialNumber != nil:
		return d.serialNumber.Bytes()
	case d.custom != nil:
		return d.custom.Bytes()
	default:
		return Dummy{}.Bytes()
	}
}
