// Package idsparse reads the PCI ID Repository text format (pci.ids).
//
// The format is line oriented. Indentation with tabs carries the nesting
// depth and the most recent depth-0 line selects the namespace:
//
//	8086  Intel Corporation
//		1000  82542 Gigabit Ethernet Controller (Fiber)
//			8086 1000  PRO/1000 Gigabit Server Adapter
//	C 02  Network controller
//		00  Ethernet controller
//
// Any line that fits none of the productions is an error. The parser never
// skips unknown input.
package idsparse

// Kind identifies the production a record was read from.
type Kind uint8

const (
	// KindVendor is a depth-0 line in the hardware namespace.
	KindVendor Kind = iota
	// KindDevice is a depth-1 line under a vendor.
	KindDevice
	// KindSubsystem is a depth-2 line under a device.
	KindSubsystem
	// KindClass is a depth-0 "C xx" line.
	KindClass
	// KindSubclass is a depth-1 line under a class.
	KindSubclass
	// KindProgIf is a depth-2 line under a subclass.
	KindProgIf
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindVendor:
		return "vendor"
	case KindDevice:
		return "device"
	case KindSubsystem:
		return "subsystem"
	case KindClass:
		return "class"
	case KindSubclass:
		return "subclass"
	case KindProgIf:
		return "prog-if"
	default:
		return "unknown"
	}
}

// Depth returns the indentation depth records of this kind appear at.
func (k Kind) Depth() int {
	switch k {
	case KindDevice, KindSubclass:
		return 1
	case KindSubsystem, KindProgIf:
		return 2
	default:
		return 0
	}
}

// Record is one parsed database line.
type Record struct {
	Kind  Kind
	Depth int
	Line  int // 1-based line number in the source

	// ID is the record's own ID. For subsystem records it is the subvendor.
	ID uint16

	// SubID is the subdevice of a subsystem record, zero otherwise.
	SubID uint16

	Name string
}

// Header holds metadata upstream keeps in the leading comment block.
type Header struct {
	Version string
	Date    string
}

// File is a fully parsed database.
type File struct {
	Header  Header
	Records []Record
}
