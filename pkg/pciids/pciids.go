package pciids

import (
	"iter"

	"github.com/pci-ids/pciids-go/internal/phash"
)

// Vendor is a PCI device vendor.
type Vendor struct {
	id      uint16
	name    string
	devices []Device
}

// ID returns the vendor ID.
func (v *Vendor) ID() uint16 { return v.id }

// Name returns the vendor name.
func (v *Vendor) Name() string { return v.name }

// Devices returns the vendor's devices in database order.
func (v *Vendor) Devices() iter.Seq[*Device] { return each(v.devices) }

// NumDevices returns the number of devices of the vendor.
func (v *Vendor) NumDevices() int { return len(v.devices) }

// Device returns the vendor's device with the given ID.
func (v *Vendor) Device(id uint16) (*Device, bool) {
	for i := range v.devices {
		if v.devices[i].id == id {
			return &v.devices[i], true
		}
	}
	return nil, false
}

// Device is a single device of a vendor.
type Device struct {
	vendorID   uint16
	id         uint16
	name       string
	subsystems []Subsystem
}

// ID returns the device ID. It is unique only within the vendor.
func (d *Device) ID() uint16 { return d.id }

// Name returns the device name.
func (d *Device) Name() string { return d.name }

// VendorID returns the ID of the owning vendor.
func (d *Device) VendorID() uint16 { return d.vendorID }

// VIDPID returns the (vendor ID, device ID) pair identifying the device.
func (d *Device) VIDPID() (uint16, uint16) { return d.vendorID, d.id }

// Vendor returns the vendor the device belongs to.
func (d *Device) Vendor() *Vendor {
	v, _ := LookupVendor(d.vendorID)
	return v
}

// Subsystems returns the known subsystems of the device.
//
// pci.ids lists subsystems for few devices; the list is not authoritative.
func (d *Device) Subsystems() iter.Seq[*Subsystem] { return each(d.subsystems) }

// NumSubsystems returns the number of known subsystems.
func (d *Device) NumSubsystems() int { return len(d.subsystems) }

// Subsystem returns the subsystem with the given subvendor and subdevice.
func (d *Device) Subsystem(subvendor, subdevice uint16) (*Subsystem, bool) {
	for i := range d.subsystems {
		s := &d.subsystems[i]
		if s.subvendor == subvendor && s.subdevice == subdevice {
			return s, true
		}
	}
	return nil, false
}

// Subsystem is a board-level variant of a device.
type Subsystem struct {
	vendorID  uint16
	deviceID  uint16
	subvendor uint16
	subdevice uint16
	name      string
}

// Subvendor returns the subsystem vendor ID.
func (s *Subsystem) Subvendor() uint16 { return s.subvendor }

// Subdevice returns the subsystem device ID.
func (s *Subsystem) Subdevice() uint16 { return s.subdevice }

// Name returns the subsystem name.
func (s *Subsystem) Name() string { return s.name }

// Device returns the device the subsystem belongs to.
func (s *Subsystem) Device() *Device {
	d, _ := LookupDevice(s.vendorID, s.deviceID)
	return d
}

// Class is a PCI device class.
type Class struct {
	id         uint8
	name       string
	subclasses []Subclass
}

// ID returns the class ID.
func (c *Class) ID() uint8 { return c.id }

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Subclasses returns the subclasses in database order.
func (c *Class) Subclasses() iter.Seq[*Subclass] { return each(c.subclasses) }

// NumSubclasses returns the number of subclasses.
func (c *Class) NumSubclasses() int { return len(c.subclasses) }

// Subclass returns the subclass with the given ID.
func (c *Class) Subclass(id uint8) (*Subclass, bool) {
	for i := range c.subclasses {
		if c.subclasses[i].id == id {
			return &c.subclasses[i], true
		}
	}
	return nil, false
}

// Subclass is a PCI device subclass.
type Subclass struct {
	classID uint8
	id      uint8
	name    string
	progIfs []ProgIf
}

// ID returns the subclass ID. It is unique only within the class.
func (s *Subclass) ID() uint8 { return s.id }

// Name returns the subclass name.
func (s *Subclass) Name() string { return s.name }

// ClassID returns the ID of the owning class.
func (s *Subclass) ClassID() uint8 { return s.classID }

// CIDSID returns the (class ID, subclass ID) pair identifying the subclass.
func (s *Subclass) CIDSID() (uint8, uint8) { return s.classID, s.id }

// Class returns the class the subclass belongs to.
func (s *Subclass) Class() *Class {
	c, _ := LookupClass(s.classID)
	return c
}

// ProgIfs returns the programming interfaces of the subclass.
//
// pci.ids lists programming interfaces for few subclasses; the list is not
// authoritative.
func (s *Subclass) ProgIfs() iter.Seq[*ProgIf] { return each(s.progIfs) }

// NumProgIfs returns the number of programming interfaces.
func (s *Subclass) NumProgIfs() int { return len(s.progIfs) }

// ProgIf returns the programming interface with the given ID.
func (s *Subclass) ProgIf(id uint8) (*ProgIf, bool) {
	for i := range s.progIfs {
		if s.progIfs[i].id == id {
			return &s.progIfs[i], true
		}
	}
	return nil, false
}

// ProgIf is a programming interface of a subclass.
type ProgIf struct {
	classID    uint8
	subclassID uint8
	id         uint8
	name       string
}

// ID returns the programming interface ID.
func (p *ProgIf) ID() uint8 { return p.id }

// Name returns the programming interface name.
func (p *ProgIf) Name() string { return p.name }

// Subclass returns the subclass the programming interface belongs to.
func (p *ProgIf) Subclass() *Subclass {
	s, _ := LookupSubclass(p.classID, p.subclassID)
	return s
}

// Namespace is a top-level table of the database: vendors keyed by 16-bit
// ID or classes keyed by 8-bit ID.
type Namespace[K ~uint8 | ~uint16, E any] interface {
	// All returns every entry in table order, which is not numeric order.
	All() iter.Seq[*E]

	// Lookup returns the entry with the given ID.
	Lookup(id K) (*E, bool)

	// Len returns the number of entries.
	Len() int
}

type namespace[K ~uint8 | ~uint16, E any] struct {
	entries []E
	index   *phash.Table
	key     func(*E) K
}

func (n *namespace[K, E]) All() iter.Seq[*E] { return each(n.entries) }

func (n *namespace[K, E]) Lookup(id K) (*E, bool) {
	i := n.index.Index(uint32(id))
	if i < 0 || i >= len(n.entries) {
		return nil, false
	}
	e := &n.entries[i]
	if n.key(e) != id {
		return nil, false
	}
	return e, true
}

func (n *namespace[K, E]) Len() int { return len(n.entries) }

var (
	vendorNS = &namespace[uint16, Vendor]{entries: vendors[:], index: &vendorIndex, key: (*Vendor).ID}
	classNS  = &namespace[uint8, Class]{entries: classes[:], index: &classIndex, key: (*Class).ID}
)

// VendorNamespace returns the vendor table.
func VendorNamespace() Namespace[uint16, Vendor] { return vendorNS }

// ClassNamespace returns the class table.
func ClassNamespace() Namespace[uint8, Class] { return classNS }

// AllVendors returns every vendor in table order.
func AllVendors() iter.Seq[*Vendor] { return vendorNS.All() }

// LookupVendor returns the vendor with the given ID.
func LookupVendor(id uint16) (*Vendor, bool) { return vendorNS.Lookup(id) }

// LookupDevice returns the device identified by a vendor and device ID.
func LookupDevice(vendorID, deviceID uint16) (*Device, bool) {
	v, ok := LookupVendor(vendorID)
	if !ok {
		return nil, false
	}
	return v.Device(deviceID)
}

// LookupSubsystem returns the subsystem identified by its full key path.
func LookupSubsystem(vendorID, deviceID, subvendor, subdevice uint16) (*Subsystem, bool) {
	d, ok := LookupDevice(vendorID, deviceID)
	if !ok {
		return nil, false
	}
	return d.Subsystem(subvendor, subdevice)
}

// AllClasses returns every class in table order.
func AllClasses() iter.Seq[*Class] { return classNS.All() }

// LookupClass returns the class with the given ID.
func LookupClass(id uint8) (*Class, bool) { return classNS.Lookup(id) }

// LookupSubclass returns the subclass identified by a class and subclass ID.
func LookupSubclass(classID, subclassID uint8) (*Subclass, bool) {
	c, ok := LookupClass(classID)
	if !ok {
		return nil, false
	}
	return c.Subclass(subclassID)
}

// LookupProgIf returns the programming interface identified by its full key
// path.
func LookupProgIf(classID, subclassID, progIfID uint8) (*ProgIf, bool) {
	s, ok := LookupSubclass(classID, subclassID)
	if !ok {
		return nil, false
	}
	return s.ProgIf(progIfID)
}

// DatabaseVersion returns the Version header of the compiled pci.ids.
func DatabaseVersion() string { return databaseVersion }

// DatabaseDate returns the Date header of the compiled pci.ids.
func DatabaseDate() string { return databaseDate }

func each[E any](s []E) iter.Seq[*E] {
	return func(yield func(*E) bool) {
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}
}
