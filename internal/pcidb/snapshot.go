package pcidb

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	snapshotEncMode cbor.EncMode
	snapshotDecMode cbor.DecMode
)

func init() {
	var err error

	// Canonical ordering and definite lengths make the encoding a pure
	// function of the database contents.
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	snapshotEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	snapshotDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// EncodeSnapshot encodes db to CBOR. Equal databases encode to equal bytes.
func EncodeSnapshot(db *Database) ([]byte, error) {
	data, err := snapshotEncMode.Marshal(db)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot decodes a snapshot produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (*Database, error) {
	var db Database
	if err := snapshotDecMode.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &db, nil
}
