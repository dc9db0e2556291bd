package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/pci-ids/pciids-go/internal/pcidb"
	"github.com/pci-ids/pciids-go/internal/phash"
)

// ErrDuplicateKey indicates two top-level entries share an ID.
var ErrDuplicateKey = errors.New("duplicate top-level key")

// DuplicateKeyError names the colliding key.
type DuplicateKeyError struct {
	Namespace string // "vendor" or "class"
	Key       string // hex, as written in pci.ids
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrDuplicateKey, e.Namespace, e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// Options controls the generated source.
type Options struct {
	Package string
}

// tableData is the input of the "file" template.
type tableData struct {
	Package     string
	Version     string
	Date        string
	VendorIndex *phash.Table
	Vendors     []*pcidb.Vendor // slot order
	ClassIndex  *phash.Table
	Classes     []*pcidb.Class // slot order
}

// CheckKeys reports the first top-level ID that appears twice.
func CheckKeys(db *pcidb.Database) error {
	seenVendors := make(map[uint16]bool, len(db.Vendors))
	for _, v := range db.Vendors {
		if seenVendors[v.ID] {
			return &DuplicateKeyError{Namespace: "vendor", Key: fmt.Sprintf("%04x", v.ID)}
		}
		seenVendors[v.ID] = true
	}
	seenClasses := make(map[uint8]bool, len(db.Classes))
	for _, c := range db.Classes {
		if seenClasses[c.ID] {
			return &DuplicateKeyError{Namespace: "class", Key: fmt.Sprintf("%02x", c.ID)}
		}
		seenClasses[c.ID] = true
	}
	return nil
}

// Generate renders the static lookup tables for db as Go source.
func Generate(db *pcidb.Database, opts Options) (string, error) {
	if err := CheckKeys(db); err != nil {
		return "", err
	}
	if opts.Package == "" {
		opts.Package = defaultPackage
	}

	vendorKeys := make([]uint32, len(db.Vendors))
	for i, v := range db.Vendors {
		vendorKeys[i] = uint32(v.ID)
	}
	vendorIndex, vendorSlots, err := phash.Build(vendorKeys)
	if err != nil {
		return "", fmt.Errorf("building vendor index: %w", err)
	}

	classKeys := make([]uint32, len(db.Classes))
	for i, c := range db.Classes {
		classKeys[i] = uint32(c.ID)
	}
	classIndex, classSlots, err := phash.Build(classKeys)
	if err != nil {
		return "", fmt.Errorf("building class index: %w", err)
	}

	data := tableData{
		Package:     opts.Package,
		Version:     db.Version,
		Date:        db.Date,
		VendorIndex: vendorIndex,
		Vendors:     make([]*pcidb.Vendor, len(db.Vendors)),
		ClassIndex:  classIndex,
		Classes:     make([]*pcidb.Class, len(db.Classes)),
	}
	for i, v := range db.Vendors {
		data.Vendors[vendorSlots[i]] = v
	}
	for i, c := range db.Classes {
		data.Classes[classSlots[i]] = c
	}

	var b strings.Builder
	renderTemplate(&b, "file", data)
	return b.String(), nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
