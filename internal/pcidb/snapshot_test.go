package pcidb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	db := loadTestDB(t)

	data, err := EncodeSnapshot(db)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, db, decoded)
}

func TestSnapshotReproducible(t *testing.T) {
	first, err := EncodeSnapshot(loadTestDB(t))
	require.NoError(t, err)

	second, err := EncodeSnapshot(loadTestDB(t))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSnapshotDiffersOnContent(t *testing.T) {
	a, err := EncodeSnapshot(loadTestDB(t))
	require.NoError(t, err)

	other, err := Load(strings.NewReader(strings.Replace(testDB, "Intel Corporation", "Intel Corp.", 1)))
	require.NoError(t, err)
	b, err := EncodeSnapshot(other)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDecodeSnapshot_Invalid(t *testing.T) {
	_, err := DecodeSnapshot([]byte{0xff, 0x00})
	assert.Error(t, err)
}

func TestSnapshotEmptyDatabase(t *testing.T) {
	data, err := EncodeSnapshot(&Database{})
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, &Database{}, decoded)
}
