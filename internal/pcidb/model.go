// Package pcidb assembles parsed pci.ids records into the vendor and class
// hierarchies and provides a deterministic binary snapshot of the result.
//
// The types here are the generation-time model. They are mutable plain data;
// the runtime package pciids carries the immutable, generated form.
package pcidb

// Database is an assembled pci.ids database.
type Database struct {
	Version string    `cbor:"1,keyasint,omitempty" yaml:"version,omitempty"`
	Date    string    `cbor:"2,keyasint,omitempty" yaml:"date,omitempty"`
	Vendors []*Vendor `cbor:"3,keyasint,omitempty" yaml:"vendors,omitempty"`
	Classes []*Class  `cbor:"4,keyasint,omitempty" yaml:"classes,omitempty"`
}

// Vendor is a hardware vendor with its devices in source order.
type Vendor struct {
	ID      uint16    `cbor:"1,keyasint" yaml:"id"`
	Name    string    `cbor:"2,keyasint" yaml:"name"`
	Devices []*Device `cbor:"3,keyasint,omitempty" yaml:"devices,omitempty"`
}

// Device is a product of one vendor.
type Device struct {
	ID         uint16       `cbor:"1,keyasint" yaml:"id"`
	Name       string       `cbor:"2,keyasint" yaml:"name"`
	Subsystems []*Subsystem `cbor:"3,keyasint,omitempty" yaml:"subsystems,omitempty"`
}

// Subsystem is a board-level variant of a device, keyed by
// (Subvendor, Subdevice).
type Subsystem struct {
	Subvendor uint16 `cbor:"1,keyasint" yaml:"subvendor"`
	Subdevice uint16 `cbor:"2,keyasint" yaml:"subdevice"`
	Name      string `cbor:"3,keyasint" yaml:"name"`
}

// Class is a device class with its subclasses in source order.
type Class struct {
	ID         uint8       `cbor:"1,keyasint" yaml:"id"`
	Name       string      `cbor:"2,keyasint" yaml:"name"`
	Subclasses []*Subclass `cbor:"3,keyasint,omitempty" yaml:"subclasses,omitempty"`
}

// Subclass belongs to one class.
type Subclass struct {
	ID      uint8     `cbor:"1,keyasint" yaml:"id"`
	Name    string    `cbor:"2,keyasint" yaml:"name"`
	ProgIfs []*ProgIf `cbor:"3,keyasint,omitempty" yaml:"prog_ifs,omitempty"`
}

// ProgIf is a programming interface of a subclass.
type ProgIf struct {
	ID   uint8  `cbor:"1,keyasint" yaml:"id"`
	Name string `cbor:"2,keyasint" yaml:"name"`
}

// Stats counts entities at every level of both hierarchies.
type Stats struct {
	Vendors    int `yaml:"vendors"`
	Devices    int `yaml:"devices"`
	Subsystems int `yaml:"subsystems"`
	Classes    int `yaml:"classes"`
	Subclasses int `yaml:"subclasses"`
	ProgIfs    int `yaml:"prog_ifs"`
}

// Stats walks the database and counts its entities.
func (db *Database) Stats() Stats {
	var s Stats
	s.Vendors = len(db.Vendors)
	for _, v := range db.Vendors {
		s.Devices += len(v.Devices)
		for _, d := range v.Devices {
			s.Subsystems += len(d.Subsystems)
		}
	}
	s.Classes = len(db.Classes)
	for _, c := range db.Classes {
		s.Subclasses += len(c.Subclasses)
		for _, sc := range c.Subclasses {
			s.ProgIfs += len(sc.ProgIfs)
		}
	}
	return s
}
