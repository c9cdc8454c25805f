package order

import (
	"strconv"
	"strings"

	"github.com/sgriffith3/orderedYAML/ir"
)

type stepKind int

const (
	fieldStep stepKind = iota
	indexStep
)

// Step is one hop in a structural path: either a map key or a list index.
type Step struct {
	kind  stepKind
	field string
	index int
}

func FieldStep(name string) Step {
	return Step{kind: fieldStep, field: name}
}

func IndexStep(i int) Step {
	return Step{kind: indexStep, index: i}
}

func (s Step) IsIndex() bool { return s.kind == indexStep }
func (s Step) Field() string { return s.field }
func (s Step) Index() int    { return s.index }

func (s Step) Equal(o Step) bool {
	return s == o
}

// Path is a structural path into a nested document: a sequence of map-key and
// list-index steps. The zero value (empty path) addresses the document root.
type Path []Step

// Field returns a new path extended by a map-key step. The receiver is not
// modified and no backing storage is shared, so sibling paths derived from
// the same parent never alias.
func (p Path) Field(name string) Path {
	return p.child(FieldStep(name))
}

// Elem returns a new path extended by a list-index step.
func (p Path) Elem(i int) Path {
	return p.child(IndexStep(i))
}

func (p Path) child(s Step) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = s
	return np
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders the path in dotted/bracketed form: literal keys dot-joined,
// indices as a bracketed suffix on the preceding segment, e.g. "a.b[0].c".
// The root path renders as the empty string. Keys containing path
// metacharacters are quoted.
func (p Path) String() string {
	return p.render(false)
}

// ruleKey renders the path with every index step normalized to 0. Exact rules
// derived from a template are recorded under element 0 of each list, and all
// sibling elements share that rule, so both recording and lookup go through
// this rendering.
func (p Path) ruleKey() string {
	return p.render(true)
}

func (p Path) render(zeroIndexes bool) string {
	var b strings.Builder
	for i, s := range p {
		if s.IsIndex() {
			idx := s.Index()
			if zeroIndexes {
				idx = 0
			}
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(idx))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		f := s.Field()
		if ir.FieldNeedsQuote(f) {
			f = ir.QuoteField(f)
		}
		b.WriteString(f)
	}
	return b.String()
}
