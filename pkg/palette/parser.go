package palette

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lvc/pkg/hsl"
)

// Source text splits into a statement region and a template region at
// ">>>". Statements are whitespace-insensitive and '//' comments are
// stripped; the template region is kept verbatim.
var (
	whitespaceRe = regexp.MustCompile(`[ \t\r\n]`)
	commentRe    = regexp.MustCompile(`//[^\n]*`)
	operatorRe   = regexp.MustCompile(`^([=+-])(\d+(\.\d+)?)$`)
	numberRe     = regexp.MustCompile(`^\d+(\.\d+)?$`)
	linkRe       = regexp.MustCompile(`^=>([A-Za-z0-9\-_$]+)$`)
	literalRe    = regexp.MustCompile(`^[#A-Za-z0-9]+$`)
	blockRe      = regexp.MustCompile(`^\{(.+)\}(?:=>([A-Za-z0-9\-_$]+))?$`)
)

// Parse turns lvc source text into a Document.
//
// The grammar is "statements >>> template": statements are ';'-separated
// "name:value" pairs, where value is an adjustment block, a link, or a
// literal color token. Simple top-level links are validated against the
// already-declared names; all other references are checked at
// resolution time.
func Parse(source string) (*Document, error) {
	head, tmpl, found := strings.Cut(source, ">>>")
	if !found {
		return nil, fmt.Errorf("%w: missing '>>>' template separator", ErrMalformedStatement)
	}

	code := commentRe.ReplaceAllString(head, "")
	code = whitespaceRe.ReplaceAllString(code, "")

	doc := &Document{template: strings.TrimSpace(strings.TrimLeft(tmpl, ">"))}

	for _, stmt := range strings.Split(code, ";") {
		if stmt == "" {
			continue
		}
		name, value, ok := strings.Cut(stmt, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q (expected 'name:value')", ErrMalformedStatement, stmt)
		}
		spec, err := parseValue(doc, value)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		if err := doc.add(name, spec); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// parseValue matches a statement value against the three spec forms,
// in priority order: adjustment block, link, literal.
func parseValue(doc *Document, value string) (Spec, error) {
	if strings.HasPrefix(value, "{") {
		return parseBlock(value)
	}

	if m := linkRe.FindStringSubmatch(value); m != nil {
		target := m[1]
		if _, ok := doc.Lookup(target); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLinkTarget, target)
		}
		return Link{Target: target}, nil
	}

	if !literalRe.MatchString(value) {
		return nil, fmt.Errorf("%w: %q is not a block, link, or color token", ErrMalformedStatement, value)
	}
	return Literal{Token: value}, nil
}

// parseBlock parses "{k:v,...}" with an optional "=>target" relative
// base suffix. Recognized keys are h, s, l (operator tokens), lum
// (operator token, magnitude kept), and no-adjust ("!1" enables).
func parseBlock(value string) (Spec, error) {
	if strings.Count(value, "{") != strings.Count(value, "}") {
		return nil, fmt.Errorf("%w: unbalanced braces in %q", ErrMalformedStatement, value)
	}
	m := blockRe.FindStringSubmatch(value)
	if m == nil {
		return nil, fmt.Errorf("%w: bad adjustment block %q", ErrMalformedStatement, value)
	}
	body, base := m[1], m[2]

	adj := Adjustment{RelativeBase: base}
	for _, part := range strings.Split(body, ",") {
		key, val, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q (expected 'key:value')", ErrMalformedStatement, part)
		}

		switch key {
		case "h", "s", "l":
			op, err := parseOperator(val)
			if err != nil {
				return nil, err
			}
			switch key {
			case "h":
				adj.Hue = op
			case "s":
				adj.Saturation = op
			case "l":
				adj.Lightness = op
			}
		case "lum":
			// The operator symbol is grammatically required but only
			// the magnitude is meaningful for a luminance target.
			op, err := parseOperator(val)
			if err != nil {
				return nil, err
			}
			adj.LuminanceTarget = &op.Value
		case "no-adjust":
			adj.NoAdjust = val == "!1"
		default:
			return nil, fmt.Errorf("%w: unknown key %q", ErrMalformedStatement, key)
		}
	}

	return adj, nil
}

// parseOperator parses an "=N", "+N", or "-N" token.
func parseOperator(tok string) (*hsl.Operator, error) {
	m := operatorRe.FindStringSubmatch(tok)
	if m == nil {
		if len(tok) > 0 && strings.ContainsRune("=+-", rune(tok[0])) && !numberRe.MatchString(tok[1:]) {
			return nil, fmt.Errorf("%w: %q must be a number", ErrInvalidNumber, tok[1:])
		}
		return nil, fmt.Errorf("%w: bad operator token %q", ErrMalformedStatement, tok)
	}

	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, m[2])
	}

	op := hsl.Operator{Value: v}
	switch m[1] {
	case "=":
		op.Op = hsl.OpSet
	case "+":
		op.Op = hsl.OpAdd
	case "-":
		op.Op = hsl.OpSub
	}
	return &op, nil
}
