package main

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/pci-ids/pciids-go/internal/phash"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"hex2":  func(v uint8) string { return fmt.Sprintf("0x%02x", v) },
	"hex4":  func(v uint16) string { return fmt.Sprintf("0x%04x", v) },
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"table": tableLiteral,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	fileTmpl +
		vendorsTmpl +
		classesTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// tableLiteral renders a phash.Table as a Go composite literal.
func tableLiteral(t *phash.Table) string {
	if t.Size == 0 {
		return "phash.Table{}"
	}
	disps := make([]string, len(t.Disps))
	for i, d := range t.Disps {
		disps[i] = fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("phash.Table{\n\tSeed:  %d,\n\tSize:  %d,\n\tDisps: []uint32{%s},\n}",
		t.Seed, t.Size, strings.Join(disps, ", "))
}

// --- Template definitions ---

const fileTmpl = `{{define "file"}}// Code generated by pciids-gen. DO NOT EDIT.

package {{.Package}}

import "github.com/pci-ids/pciids-go/internal/phash"

const (
	databaseVersion = {{quote .Version}}
	databaseDate    = {{quote .Date}}
)
{{template "vendors" .}}{{template "classes" .}}{{end}}`

const vendorsTmpl = `{{define "vendors"}}
var vendorIndex = {{table .VendorIndex}}

var vendors = [{{len .Vendors}}]Vendor{
{{- range .Vendors}}
{{- $vid := .ID}}
	{id: {{hex4 .ID}}, name: {{quote .Name}}{{if .Devices}}, devices: []Device{
{{- range .Devices}}
{{- $did := .ID}}
		{vendorID: {{hex4 $vid}}, id: {{hex4 .ID}}, name: {{quote .Name}}{{if .Subsystems}}, subsystems: []Subsystem{
{{- range .Subsystems}}
			{vendorID: {{hex4 $vid}}, deviceID: {{hex4 $did}}, subvendor: {{hex4 .Subvendor}}, subdevice: {{hex4 .Subdevice}}, name: {{quote .Name}}},
{{- end}}
		}{{end}}},
{{- end}}
	}{{end}}},
{{- end}}
}
{{end}}`

const classesTmpl = `{{define "classes"}}
var classIndex = {{table .ClassIndex}}

var classes = [{{len .Classes}}]Class{
{{- range .Classes}}
{{- $cid := .ID}}
	{id: {{hex2 .ID}}, name: {{quote .Name}}{{if .Subclasses}}, subclasses: []Subclass{
{{- range .Subclasses}}
{{- $sid := .ID}}
		{classID: {{hex2 $cid}}, id: {{hex2 .ID}}, name: {{quote .Name}}{{if .ProgIfs}}, progIfs: []ProgIf{
{{- range .ProgIfs}}
			{classID: {{hex2 $cid}}, subclassID: {{hex2 $sid}}, id: {{hex2 .ID}}, name: {{quote .Name}}},
{{- end}}
		}{{end}}},
{{- end}}
	}{{end}}},
{{- end}}
}
{{end}}`
