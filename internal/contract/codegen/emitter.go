package codegen

import (
	"fmt"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/catalog"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/solidity"
)

const indent = "    "

// Emitter accumulates the output of one generation pass.
type Emitter struct {
	catalog *catalog.Catalog
	markers map[string]struct{}
	lines   []string
	events  []string
	diags   []Diagnostic
	first   map[model.BlockTag]Block
}

func newEmitter(cat *catalog.Catalog, blocks []Block) *Emitter {
	e := &Emitter{
		catalog: cat,
		markers: make(map[string]struct{}),
		first:   make(map[model.BlockTag]Block),
	}
	for _, b := range blocks {
		if _, ok := e.first[b.Tag()]; !ok {
			e.first[b.Tag()] = b
		}
	}
	return e
}

// Mark sets marker and reports whether it was newly set.
func (e *Emitter) Mark(marker string) bool {
	if _, ok := e.markers[marker]; ok {
		return false
	}
	e.markers[marker] = struct{}{}
	return true
}

// Has reports whether marker is set.
func (e *Emitter) Has(marker string) bool {
	_, ok := e.markers[marker]
	return ok
}

// Line appends source lines indented one level.
func (e *Emitter) Line(lines ...string) {
	for _, l := range lines {
		if l == "" {
			e.lines = append(e.lines, "")
			continue
		}
		e.lines = append(e.lines, indent+l)
	}
}

// Event declares a contract event once.
func (e *Emitter) Event(decl string) {
	if e.Mark("event:" + decl) {
		e.events = append(e.events, decl)
	}
}

// First returns the first block in the pass with the given tag.
func (e *Emitter) First(tag model.BlockTag) (Block, bool) {
	b, ok := e.first[tag]
	return b, ok
}

func (e *Emitter) report(b Block, field string, sev Severity, format string, args ...any) {
	d := Diagnostic{Field: field, Severity: sev, Message: fmt.Sprintf(format, args...)}
	if b != nil {
		d.BlockID = b.ID()
		d.Tag = b.Tag()
	}
	e.diags = append(e.diags, d)
}

// Warnf records a warning diagnostic for b.
func (e *Emitter) Warnf(b Block, field, format string, args ...any) {
	e.report(b, field, SeverityWarning, format, args...)
}

// Errorf records an error diagnostic for b.
func (e *Emitter) Errorf(b Block, field, format string, args ...any) {
	e.report(b, field, SeverityError, format, args...)
}

// Value returns v, or the catalog default for the field when v is absent or spans lines.
func (e *Emitter) Value(b Block, field, v string) string {
	if v != "" && solidity.SingleLine(v) {
		return v
	}
	def := e.catalog.Default(b.Tag(), field)
	if def == "" {
		def = "0"
	}
	if v == "" {
		e.report(b, field, SeverityInfo, "missing value, using default %s", def)
	} else {
		e.Warnf(b, field, "value spans multiple lines, using default %s", def)
	}
	return def
}

// Ident returns v when it is a valid identifier, otherwise the catalog default.
func (e *Emitter) Ident(b Block, field, v string) string {
	if v == "" {
		return e.Value(b, field, v)
	}
	if !solidity.IsIdentifier(v) {
		def := e.catalog.Default(b.Tag(), field)
		e.Errorf(b, field, "%q is not a valid identifier, using %s", v, def)
		return def
	}
	return v
}
