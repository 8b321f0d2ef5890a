// Package jpath implements a minimal JSONPath expression parser, covering the
// subset that selects a single value by names and indices.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/creachadair/rjson"
	"github.com/creachadair/rjson/cursor"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = "[" value "]"
  name = WORD
  name = "'" QTEXT "'"
 value = name
 value = INDEX

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`

Source:
  https://www.ietf.org/archive/id/draft-goessner-dispatch-jsonpath-00.html
*/

// An Expr is a parsed JSONPath expression.
type Expr []Step

// Parse parses s as a JSONPath expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var steps Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("at %q: %w", t, err)
		}
		steps = append(steps, step)
		t = rest
	}
	return steps, nil
}

// MustParse parses s as a JSONPath expression, and panics on error.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("jpath: %v", err))
	}
	return e
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		switch s.Op {
		case Member:
			buf.WriteString("." + s.Name)
		case QName:
			fmt.Fprintf(&buf, "['%s']", s.Name)
		case Index:
			fmt.Fprintf(&buf, "[%d]", s.Index)
		}
	}
	return buf.String()
}

// Path returns e as a path for the Down method of a cursor.
func (e Expr) Path() []any {
	path := make([]any, len(e))
	for i, s := range e {
		if s.Op == Index {
			path[i] = s.Index
		} else {
			path[i] = s.Name
		}
	}
	return path
}

// Eval resolves e against root, and returns a cursor positioned at the
// result. Check the Err method of the cursor for failure. It panics if root
// is not valid.
func (e Expr) Eval(root rjson.Object) *cursor.Cursor {
	return cursor.New(root).Down(e.Path()...)
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "."); ok {
		name, u, ok := parseName(t)
		if !ok {
			return Step{}, s, errors.New("invalid .name")
		}
		return Step{Op: Member, Name: name}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		var out Step
		if m := indexRE.FindStringSubmatch(t); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return Step{}, s, fmt.Errorf("invalid index: %w", err)
			}
			out, t = Step{Op: Index, Index: n}, t[len(m[0]):]
		} else if name, u, ok := parseName(t); ok {
			out, t = Step{Op: QName, Name: name}, u
		} else {
			return Step{}, s, errors.New("invalid value")
		}
		u, ok := strings.CutPrefix(t, "]")
		if !ok {
			return Step{}, s, errors.New("missing close bracket")
		}
		return out, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func parseName(s string) (name, rest string, ok bool) {
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return m[1], s[len(m[0]):], true
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return m[1], s[len(m[0]):], true
	}
	return "", s, false
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid Op = iota // invalid operator
	Member            // member lookup (.name)
	QName             // bracketed member lookup (['name'])
	Index             // index lookup ([n])
)

var opText = map[Op]string{
	Invalid: "invalid",
	Member:  ".",
	QName:   "qname",
	Index:   "index",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return opText[Invalid]
}

// A Step is a single step of a JSONPath expression.
type Step struct {
	Op    Op
	Name  string // for Member and QName
	Index int    // for Index
}
