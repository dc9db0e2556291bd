package pcidb

import (
	"errors"
	"fmt"
	"io"

	"github.com/pci-ids/pciids-go/internal/idsparse"
)

// Assembly failure reasons.
var (
	// ErrOrphan indicates a child record with no eligible parent.
	ErrOrphan = errors.New("orphaned record")

	// ErrDepth indicates a record whose depth does not match its kind.
	ErrDepth = errors.New("depth does not match record kind")
)

// AssemblyError locates a structural failure in the record stream.
type AssemblyError struct {
	Line int
	Kind idsparse.Kind
	Err  error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("pci.ids line %d: %s: %v", e.Line, e.Kind, e.Err)
}

func (e *AssemblyError) Unwrap() error { return e.Err }

// Load parses and assembles a database from r.
func Load(r io.Reader) (*Database, error) {
	f, err := idsparse.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	db, err := Assemble(f)
	if err != nil {
		return nil, fmt.Errorf("assembling: %w", err)
	}
	return db, nil
}

// Assemble rebuilds both hierarchies from the flat record sequence. Children
// attach to the most recent parent one level up in the same namespace.
func Assemble(f *idsparse.File) (*Database, error) {
	db := &Database{
		Version: f.Header.Version,
		Date:    f.Header.Date,
	}

	var (
		vendor   *Vendor
		device   *Device
		class    *Class
		subclass *Subclass
	)

	for _, rec := range f.Records {
		if rec.Depth != rec.Kind.Depth() {
			return nil, &AssemblyError{Line: rec.Line, Kind: rec.Kind, Err: ErrDepth}
		}

		switch rec.Kind {
		case idsparse.KindVendor:
			vendor = &Vendor{ID: rec.ID, Name: rec.Name}
			device = nil
			class, subclass = nil, nil
			db.Vendors = append(db.Vendors, vendor)

		case idsparse.KindDevice:
			if vendor == nil {
				return nil, &AssemblyError{Line: rec.Line, Kind: rec.Kind, Err: ErrOrphan}
			}
			device = &Device{ID: rec.ID, Name: rec.Name}
			vendor.Devices = append(vendor.Devices, device)

		case idsparse.KindSubsystem:
			if device == nil {
				return nil, &AssemblyError{Line: rec.Line, Kind: rec.Kind, Err: ErrOrphan}
			}
			device.Subsystems = append(device.Subsystems, &Subsystem{
				Subvendor: rec.ID,
				Subdevice: rec.SubID,
				Name:      rec.Name,
			})

		case idsparse.KindClass:
			class = &Class{ID: uint8(rec.ID), Name: rec.Name}
			subclass = nil
			vendor, device = nil, nil
			db.Classes = append(db.Classes, class)

		case idsparse.KindSubclass:
			if class == nil {
				return nil, &AssemblyError{Line: rec.Line, Kind: rec.Kind, Err: ErrOrphan}
			}
			subclass = &Subclass{ID: uint8(rec.ID), Name: rec.Name}
			class.Subclasses = append(class.Subclasses, subclass)

		case idsparse.KindProgIf:
			if subclass == nil {
				return nil, &AssemblyError{Line: rec.Line, Kind: rec.Kind, Err: ErrOrphan}
			}
			subclass.ProgIfs = append(subclass.ProgIfs, &ProgIf{ID: uint8(rec.ID), Name: rec.Name})

		default:
			return nil, &AssemblyError{Line: rec.Line, Kind: rec.Kind, Err: ErrDepth}
		}
	}

	return db, nil
}
