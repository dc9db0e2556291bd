package idsparse

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `#
#	List of PCI ID's
#
#	Version: 2025.06.01
#	Date:    2025-06-01 03:15:02
#

# Vendors, devices and subsystems. Please keep sorted.

8086  Intel Corporation
	1000  82542 Gigabit Ethernet Controller (Fiber)
		0e11 b0df  NC6132 Gigabit Ethernet Adapter (1000-SX)
		8086 1000  PRO/1000 Gigabit Server Adapter
	10D3  82574L Gigabit Network Connection
abcd  Lowercase Vendor

# List of known device classes, subclasses and programming interfaces

C 01  Mass storage controller
	06  SATA controller
		01  AHCI 1.0
	08  Non-Volatile memory controller
C 0c  Serial bus controller
`

func TestParse_Sample(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, Header{Version: "2025.06.01", Date: "2025-06-01 03:15:02"}, f.Header)

	want := []Record{
		{Kind: KindVendor, Depth: 0, Line: 10, ID: 0x8086, Name: "Intel Corporation"},
		{Kind: KindDevice, Depth: 1, Line: 11, ID: 0x1000, Name: "82542 Gigabit Ethernet Controller (Fiber)"},
		{Kind: KindSubsystem, Depth: 2, Line: 12, ID: 0x0e11, SubID: 0xb0df, Name: "NC6132 Gigabit Ethernet Adapter (1000-SX)"},
		{Kind: KindSubsystem, Depth: 2, Line: 13, ID: 0x8086, SubID: 0x1000, Name: "PRO/1000 Gigabit Server Adapter"},
		{Kind: KindDevice, Depth: 1, Line: 14, ID: 0x10d3, Name: "82574L Gigabit Network Connection"},
		{Kind: KindVendor, Depth: 0, Line: 15, ID: 0xabcd, Name: "Lowercase Vendor"},
		{Kind: KindClass, Depth: 0, Line: 19, ID: 0x01, Name: "Mass storage controller"},
		{Kind: KindSubclass, Depth: 1, Line: 20, ID: 0x06, Name: "SATA controller"},
		{Kind: KindProgIf, Depth: 2, Line: 21, ID: 0x01, Name: "AHCI 1.0"},
		{Kind: KindSubclass, Depth: 1, Line: 22, ID: 0x08, Name: "Non-Volatile memory controller"},
		{Kind: KindClass, Depth: 0, Line: 23, ID: 0x0c, Name: "Serial bus controller"},
	}
	assert.Equal(t, want, f.Records)
}

func TestParse_IntelScenario(t *testing.T) {
	f, err := Parse(strings.NewReader("8086  Intel Corporation\n\t1000  82542 Gigabit Ethernet Controller\n"))
	require.NoError(t, err)
	require.Len(t, f.Records, 2)

	assert.Equal(t, KindVendor, f.Records[0].Kind)
	assert.Equal(t, uint16(0x8086), f.Records[0].ID)
	assert.Equal(t, "Intel Corporation", f.Records[0].Name)
	assert.Equal(t, KindDevice, f.Records[1].Kind)
	assert.Equal(t, uint16(0x1000), f.Records[1].ID)
	assert.Equal(t, "82542 Gigabit Ethernet Controller", f.Records[1].Name)
}

func TestParse_NamePreservesInternalWhitespace(t *testing.T) {
	f, err := Parse(strings.NewReader("1234  Spaced   Out\tName  \r\n"))
	require.NoError(t, err)
	require.Len(t, f.Records, 1)
	assert.Equal(t, "Spaced   Out\tName  ", f.Records[0].Name)
}

func TestParse_CommentsAndBlankLines(t *testing.T) {
	input := "\n   \n# top\n1234  Vendor\n\t# indented comment\n\n\t5678  Device\n"
	f, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, f.Records, 2)
	assert.Equal(t, 4, f.Records[0].Line)
	assert.Equal(t, 7, f.Records[1].Line)
}

func TestParse_HeaderOnlyBeforeFirstRecord(t *testing.T) {
	input := "1234  Vendor\n# Version: 9999.99.99\n"
	f, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, f.Header.Version)
}

func TestParse_NoTrailingNewline(t *testing.T) {
	f, err := Parse(strings.NewReader("C 02  Network controller\n\t00  Ethernet controller"))
	require.NoError(t, err)
	require.Len(t, f.Records, 2)
	assert.Equal(t, "Ethernet controller", f.Records[1].Name)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Records)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		line    int
		wantErr error
	}{
		{"non-hex vendor", "1234  Good\nZZZZ  Bad Vendor\n", 2, ErrMalformedID},
		{"non-hex device", "1234  Vendor\n\tYYYY  Bad Device\n", 2, ErrMalformedID},
		{"vendor id too long", "12345  Vendor\n", 1, ErrMalformedID},
		{"class id too long", "C 123  Class\n", 1, ErrMalformedID},
		{"device id too short", "1234  Vendor\n\t12  Device\n", 2, ErrMalformedID},
		{"single space separator", "1234 Vendor\n", 1, ErrSeparator},
		{"subsystem missing inner space", "1234  V\n\t5678  D\n\t\t1111-2222  S\n", 3, ErrSeparator},
		{"three tabs", "1234  V\n\t5678  D\n\t\t\t9abc  X\n", 3, ErrIndent},
		{"space indentation", "1234  V\n    5678  D\n", 2, ErrIndent},
		{"device before vendor", "# header\n\t5678  Device\n", 2, ErrOrphan},
		{"subsystem before device", "1234  Vendor\n\t\t1111 2222  Sub\n", 2, ErrOrphan},
		{"prog-if before subclass", "C 01  Class\n\t\t01  ProgIf\n", 2, ErrOrphan},
		{"subsystem after new vendor", "1234  V\n\t5678  D\n9999  W\n\t\t1111 2222  S\n", 4, ErrOrphan},
		{"vendor without name", "1234\n", 1, ErrTruncated},
		{"vendor with empty name", "1234  \n", 1, ErrTruncated},
		{"short vendor id", "12\n", 1, ErrTruncated},
		{"class without id", "C \n", 1, ErrTruncated},
		{"subsystem without subdevice", "1234  V\n\t5678  D\n\t\t1111\n", 3, ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.line, perr.Line)
			assert.Contains(t, err.Error(), "line")
		})
	}
}

func TestParse_BadVendorScenario(t *testing.T) {
	_, err := Parse(strings.NewReader("# comment\nZZZZ  Bad Vendor\n"))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "ZZZZ  Bad Vendor", perr.Found)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse_ReadError(t *testing.T) {
	r := io.MultiReader(strings.NewReader("1234  Vendor\n"), iotest.ErrReader(errors.New("disk gone")))
	_, err := Parse(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRead)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestParse_LineTooLong(t *testing.T) {
	_, err := Parse(strings.NewReader("1234  " + strings.Repeat("x", maxLineSize+1) + "\n"))
	assert.ErrorIs(t, err, ErrRead)
}

func TestParser_Next(t *testing.T) {
	p := NewParser(strings.NewReader("#\tVersion: 1\n1234  V\n"))

	rec, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, KindVendor, rec.Kind)
	assert.Equal(t, "1", p.Header().Version)

	_, err = p.Next()
	assert.Equal(t, io.EOF, err)

	_, err = p.Next()
	assert.Equal(t, io.EOF, err)
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind  Kind
		want  string
		depth int
	}{
		{KindVendor, "vendor", 0},
		{KindDevice, "device", 1},
		{KindSubsystem, "subsystem", 2},
		{KindClass, "class", 0},
		{KindSubclass, "subclass", 1},
		{KindProgIf, "prog-if", 2},
		{Kind(99), "unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
			assert.Equal(t, tt.depth, tt.kind.Depth())
		})
	}
}
