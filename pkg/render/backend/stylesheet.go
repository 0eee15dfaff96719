package backend

import (
	"fmt"
	"math"
	"strings"

	"lvc/pkg/hsl"
	"lvc/pkg/names"
	"lvc/pkg/palette"
)

// axis identifies one HSL component in a formula table.
type axis int

const (
	axisHue axis = iota
	axisSaturation
	axisLightness
)

var axes = [...]axis{axisHue, axisSaturation, axisLightness}

// formulaKey addresses one (operator, axis) cell of a formula table.
type formulaKey struct {
	op hsl.Op
	ax axis
}

// formula renders an operand into a target-language expression,
// e.g. 10 → "calc(var(--lvc-h) + 10deg)".
type formula func(v float64) string

// styleSheet is the shared machinery behind the CSS and SCSS backends.
// Each instance supplies three shared base variables representing the
// hue/saturation/lightness "zero" defaults, a complete formula table,
// and the target language's variable-reference and line syntax.
type styleSheet struct {
	name     string
	baseVars [3]struct{ name, value string }
	defaults [3]string // per-axis expression when the operator is absent
	formulas map[formulaKey]formula
	varRef   func(target string) string
	line     func(key, value string) string
	wrap     func(body string) string
}

// newStyleSheet validates the formula table exhaustively: every
// (operator, axis) pair must be present, so a miss can never surface
// at compile time.
func newStyleSheet(s styleSheet) *styleSheet {
	for _, op := range []hsl.Op{hsl.OpSet, hsl.OpAdd, hsl.OpSub} {
		for _, ax := range axes {
			if _, ok := s.formulas[formulaKey{op, ax}]; !ok {
				panic(fmt.Sprintf("backend %s: missing formula for (%v, axis %d)", s.name, op, ax))
			}
		}
	}
	return &s
}

func (s *styleSheet) Name() string { return s.name }

// Compile renders the document as a variable block. Adjustments become
// hsl(...) constructors over the shared base variables; literals
// resolve eagerly to fixed hsl(...) colors; links become variable
// references, emitted after all other entries so they may target any
// entry kind. Entries using a relative base or luminance target are
// skipped with a warning: a flat variable sheet has no way to express
// them.
func (s *styleSheet) Compile(doc *palette.Document) (*Result, error) {
	var b strings.Builder
	for _, v := range s.baseVars {
		b.WriteString(s.line(v.name, v.value))
	}

	var links []palette.Entry
	var warnings []Warning

	for _, e := range doc.Entries() {
		switch spec := e.Spec.(type) {
		case palette.Link:
			links = append(links, e)

		case palette.Literal:
			value, err := s.fixedColor(spec.Token)
			if err != nil {
				return nil, fmt.Errorf("entry %q: %w", e.Name, err)
			}
			b.WriteString(s.line(e.Name, value))

		case palette.Adjustment:
			if spec.RelativeBase != "" {
				warnings = append(warnings, Warning{Entry: e.Name, Reason: fmt.Sprintf("%s cannot express a relative base", s.name)})
				continue
			}
			if spec.LuminanceTarget != nil {
				warnings = append(warnings, Warning{Entry: e.Name, Reason: fmt.Sprintf("%s cannot express a luminance target", s.name)})
				continue
			}
			b.WriteString(s.line(e.Name, s.constructor(spec)))
		}
	}

	for _, e := range links {
		b.WriteString(s.line(e.Name, s.varRef(e.Spec.(palette.Link).Target)))
	}

	return &Result{Output: s.wrap(b.String()), Warnings: warnings}, nil
}

// constructor joins the three axis expressions into an hsl(...) value.
func (s *styleSheet) constructor(a palette.Adjustment) string {
	return fmt.Sprintf("hsl(%s, %s, %s)",
		s.component(axisHue, a.Hue),
		s.component(axisSaturation, a.Saturation),
		s.component(axisLightness, a.Lightness))
}

// component renders one axis: the formula-table expression when an
// operator is present, the shared base variable otherwise.
func (s *styleSheet) component(ax axis, op *hsl.Operator) string {
	if op == nil {
		return s.defaults[ax]
	}
	return s.formulas[formulaKey{op.Op, ax}](op.Value)
}

// fixedColor resolves a literal token eagerly and renders it as a
// fixed hsl(...) color with integer-rounded components.
func (s *styleSheet) fixedColor(token string) (string, error) {
	hex, err := names.Resolve(token)
	if err != nil {
		return "", fmt.Errorf("%w: %q", palette.ErrUnknownColor, token)
	}
	c, err := hsl.FromHex(hex)
	if err != nil {
		return "", fmt.Errorf("%w: %q", palette.ErrUnknownColor, token)
	}
	return fmt.Sprintf("hsl(%ddeg, %d%%, %d%%)",
		int(math.Round(c.Hue)),
		int(math.Round(c.Saturation)),
		int(math.Round(c.Lightness))), nil
}

// newCSS builds the CSS custom-property backend: a :root block with
// --lvc-h/--lvc-s/--lvc-l shared variables and calc() formulas.
func newCSS() *styleSheet {
	return newStyleSheet(styleSheet{
		name: CSS,
		baseVars: [3]struct{ name, value string }{
			{"lvc-h", "0deg"},
			{"lvc-s", "0%"},
			{"lvc-l", "0%"},
		},
		defaults: [3]string{"var(--lvc-h)", "var(--lvc-s)", "var(--lvc-l)"},
		formulas: map[formulaKey]formula{
			{hsl.OpAdd, axisHue}:        func(v float64) string { return fmt.Sprintf("calc(var(--lvc-h) + %sdeg)", fmtNum(v)) },
			{hsl.OpSub, axisHue}:        func(v float64) string { return fmt.Sprintf("calc(var(--lvc-h) - %sdeg)", fmtNum(v)) },
			{hsl.OpSet, axisHue}:        func(v float64) string { return fmtNum(v) + "deg" },
			{hsl.OpAdd, axisSaturation}: func(v float64) string { return fmt.Sprintf("calc(var(--lvc-s) + %s%%)", fmtNum(v)) },
			{hsl.OpSub, axisSaturation}: func(v float64) string { return fmt.Sprintf("calc(var(--lvc-s) - %s%%)", fmtNum(v)) },
			{hsl.OpSet, axisSaturation}: func(v float64) string { return fmtNum(v) + "%" },
			{hsl.OpAdd, axisLightness}:  func(v float64) string { return fmt.Sprintf("calc(var(--lvc-l) + %s%%)", fmtNum(v)) },
			{hsl.OpSub, axisLightness}:  func(v float64) string { return fmt.Sprintf("calc(var(--lvc-l) - %s%%)", fmtNum(v)) },
			{hsl.OpSet, axisLightness}:  func(v float64) string { return fmtNum(v) + "%" },
		},
		varRef: func(target string) string { return fmt.Sprintf("var(--%s)", target) },
		line:   func(key, value string) string { return fmt.Sprintf("\n  --%s: %s;", key, value) },
		wrap:   func(body string) string { return ":root {" + body + "\n}\n" },
	})
}

// newSCSS builds the SCSS variable backend: $lvc-h/$lvc-s/$lvc-l
// shared variables with plain arithmetic formulas.
func newSCSS() *styleSheet {
	return newStyleSheet(styleSheet{
		name: SCSS,
		baseVars: [3]struct{ name, value string }{
			{"lvc-h", "0deg"},
			{"lvc-s", "0%"},
			{"lvc-l", "0%"},
		},
		defaults: [3]string{"$lvc-h", "$lvc-s", "$lvc-l"},
		formulas: map[formulaKey]formula{
			{hsl.OpAdd, axisHue}:        func(v float64) string { return fmt.Sprintf("$lvc-h + %sdeg", fmtNum(v)) },
			{hsl.OpSub, axisHue}:        func(v float64) string { return fmt.Sprintf("$lvc-h - %sdeg", fmtNum(v)) },
			{hsl.OpSet, axisHue}:        func(v float64) string { return fmtNum(v) + "deg" },
			{hsl.OpAdd, axisSaturation}: func(v float64) string { return fmt.Sprintf("$lvc-s + %s%%", fmtNum(v)) },
			{hsl.OpSub, axisSaturation}: func(v float64) string { return fmt.Sprintf("$lvc-s - %s%%", fmtNum(v)) },
			{hsl.OpSet, axisSaturation}: func(v float64) string { return fmtNum(v) + "%" },
			{hsl.OpAdd, axisLightness}:  func(v float64) string { return fmt.Sprintf("$lvc-l + %s%%", fmtNum(v)) },
			{hsl.OpSub, axisLightness}:  func(v float64) string { return fmt.Sprintf("$lvc-l - %s%%", fmtNum(v)) },
			{hsl.OpSet, axisLightness}:  func(v float64) string { return fmtNum(v) + "%" },
		},
		varRef: func(target string) string { return "$" + target },
		line:   func(key, value string) string { return fmt.Sprintf("$%s: %s;\n", key, value) },
		wrap:   func(body string) string { return body },
	})
}
