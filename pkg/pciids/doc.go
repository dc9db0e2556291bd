// Package pciids provides offline lookups into the PCI ID Repository.
//
// The PCI ID Repository (https://pci-ids.ucw.cz/) is the canonical source of
// PCI vendor, device and class names used by most Linux userspaces. This
// package carries a compiled copy of it, so callers can resolve IDs without
// reading pci.ids at runtime or talking to the network.
//
// # Vendors and devices
//
// Look up a vendor, then walk or search its devices:
//
//	if v, ok := pciids.LookupVendor(0x8086); ok {
//	    for d := range v.Devices() {
//	        fmt.Printf("%s %s\n", v.Name(), d.Name())
//	    }
//	}
//
//	d, ok := pciids.LookupDevice(0x8086, 0x100e)
//
// # Classes
//
// The class hierarchy (class, subclass, programming interface) is separate
// from the vendor hierarchy:
//
//	for c := range pciids.AllClasses() {
//	    for s := range c.Subclasses() {
//	        fmt.Printf("%s: %s\n", c.Name(), s.Name())
//	    }
//	}
//
// # Data
//
// All entities are immutable values laid out by the compiler; every lookup
// is lock-free and allocation-free and safe for concurrent use. Top-level
// lookups go through a minimal perfect hash. Children are searched linearly,
// in the order they appear in pci.ids.
//
// The table lives in pciids_gen.go and is rebuilt from data/pci.ids with
// go generate.
package pciids

//go:generate go run ../../cmd/pciids-gen generate --input ../../data/pci.ids --output pciids_gen.go
