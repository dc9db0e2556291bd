package idsparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineSize bounds a single line. Upstream lines are well under 256 bytes.
const maxLineSize = 64 * 1024

type section uint8

const (
	sectionNone section = iota
	sectionVendors
	sectionClasses
)

// Parser reads records one line at a time.
type Parser struct {
	sc     *bufio.Scanner
	line   int
	header Header

	section   section
	haveDepth [2]bool // a parent at depth 0 / depth 1 has been seen in the current section
	sawRecord bool
}

// NewParser creates a parser reading from r.
func NewParser(r io.Reader) *Parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Parser{sc: sc}
}

// Parse reads the complete database from r.
func Parse(r io.Reader) (*File, error) {
	p := NewParser(r)
	var recs []Record
	for {
		rec, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return &File{Header: p.Header(), Records: recs}, nil
}

// Header returns the metadata seen so far. It is complete once the first
// record has been returned.
func (p *Parser) Header() Header {
	return p.header
}

// Next returns the next record, or io.EOF when the input is exhausted.
// Comment and blank lines are consumed silently.
func (p *Parser) Next() (Record, error) {
	for p.sc.Scan() {
		p.line++
		raw := strings.TrimSuffix(p.sc.Text(), "\r")

		trimmed := strings.TrimLeft(raw, " \t")
		if trimmed == "" {
			continue
		}
		if trimmed[0] == '#' {
			if !p.sawRecord {
				p.readHeader(trimmed[1:])
			}
			continue
		}

		rec, err := p.parseLine(raw)
		if err != nil {
			return Record{}, err
		}
		p.sawRecord = true
		return rec, nil
	}
	if err := p.sc.Err(); err != nil {
		return Record{}, &ParseError{Line: p.line + 1, Expected: "line", Err: fmt.Errorf("%w: %w", ErrRead, err)}
	}
	return Record{}, io.EOF
}

// readHeader picks "Version:" and "Date:" out of the leading comment block.
func (p *Parser) readHeader(comment string) {
	key, value, ok := strings.Cut(strings.TrimSpace(comment), ":")
	if !ok {
		return
	}
	value = strings.TrimSpace(value)
	switch key {
	case "Version":
		if p.header.Version == "" {
			p.header.Version = value
		}
	case "Date":
		if p.header.Date == "" {
			p.header.Date = value
		}
	}
}

func (p *Parser) parseLine(raw string) (Record, error) {
	depth := 0
	for depth < len(raw) && raw[depth] == '\t' {
		depth++
	}
	body := raw[depth:]
	if depth > 2 || body[0] == ' ' {
		return Record{}, p.fail("zero to two tab indentation", raw, ErrIndent)
	}

	switch depth {
	case 0:
		return p.parseRoot(raw, body)
	case 1:
		return p.parseChild(raw, body)
	default:
		return p.parseGrandchild(raw, body)
	}
}

func (p *Parser) parseRoot(raw, body string) (Record, error) {
	if strings.HasPrefix(body, "C ") {
		id, name, err := p.entry(raw, body[2:], 2)
		if err != nil {
			return Record{}, err
		}
		p.enter(sectionClasses)
		return p.record(KindClass, id, 0, name), nil
	}

	id, name, err := p.entry(raw, body, 4)
	if err != nil {
		return Record{}, err
	}
	p.enter(sectionVendors)
	return p.record(KindVendor, id, 0, name), nil
}

func (p *Parser) parseChild(raw, body string) (Record, error) {
	if !p.haveDepth[0] {
		return Record{}, p.fail("vendor or class line before first child", raw, ErrOrphan)
	}
	kind, width := KindDevice, 4
	if p.section == sectionClasses {
		kind, width = KindSubclass, 2
	}
	id, name, err := p.entry(raw, body, width)
	if err != nil {
		return Record{}, err
	}
	p.haveDepth[1] = true
	return p.record(kind, id, 0, name), nil
}

func (p *Parser) parseGrandchild(raw, body string) (Record, error) {
	if !p.haveDepth[1] {
		return Record{}, p.fail("device or subclass line before first nested child", raw, ErrOrphan)
	}

	if p.section == sectionClasses {
		id, name, err := p.entry(raw, body, 2)
		if err != nil {
			return Record{}, err
		}
		return p.record(KindProgIf, id, 0, name), nil
	}

	subvendor, err := p.hexID(raw, body, 4)
	if err != nil {
		return Record{}, err
	}
	rest := body[4:]
	if rest == "" {
		return Record{}, p.fail("subdevice ID", raw, ErrTruncated)
	}
	if rest[0] != ' ' {
		return Record{}, p.fail("single space between subvendor and subdevice", raw, ErrSeparator)
	}
	subdevice, name, err := p.entry(raw, rest[1:], 4)
	if err != nil {
		return Record{}, err
	}
	return p.record(KindSubsystem, subvendor, subdevice, name), nil
}

// entry splits "<hex ID of width>  <name>".
func (p *Parser) entry(raw, s string, width int) (uint16, string, error) {
	id, err := p.hexID(raw, s, width)
	if err != nil {
		return 0, "", err
	}
	rest := s[width:]
	switch {
	case rest == "" || rest == " ":
		return 0, "", p.fail("name", raw, ErrTruncated)
	case !strings.HasPrefix(rest, "  "):
		if isHex(rest[0]) {
			return 0, "", p.fail(fmt.Sprintf("%d-digit hex ID", width), raw, ErrMalformedID)
		}
		return 0, "", p.fail("two spaces before name", raw, ErrSeparator)
	case len(rest) == 2:
		return 0, "", p.fail("name", raw, ErrTruncated)
	}
	return id, rest[2:], nil
}

func (p *Parser) hexID(raw, s string, width int) (uint16, error) {
	expected := fmt.Sprintf("%d-digit hex ID", width)
	if len(s) < width {
		for i := 0; i < len(s); i++ {
			if !isHex(s[i]) {
				return 0, p.fail(expected, raw, ErrMalformedID)
			}
		}
		return 0, p.fail(expected, raw, ErrTruncated)
	}
	tok := s[:width]
	for i := 0; i < width; i++ {
		if !isHex(tok[i]) {
			return 0, p.fail(expected, raw, ErrMalformedID)
		}
	}
	v, err := strconv.ParseUint(tok, 16, 16)
	if err != nil {
		return 0, p.fail(expected, raw, ErrMalformedID)
	}
	return uint16(v), nil
}

// enter starts a new depth-0 parent, switching namespace if needed.
func (p *Parser) enter(s section) {
	p.section = s
	p.haveDepth = [2]bool{true, false}
}

func (p *Parser) record(kind Kind, id, subID uint16, name string) Record {
	return Record{
		Kind:  kind,
		Depth: kind.Depth(),
		Line:  p.line,
		ID:    id,
		SubID: subID,
		Name:  name,
	}
}

func (p *Parser) fail(expected, found string, err error) error {
	return &ParseError{Line: p.line, Expected: expected, Found: found, Err: err}
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
