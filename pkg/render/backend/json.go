package backend

import (
	"encoding/json"
	"fmt"

	"lvc/pkg/hsl"
	"lvc/pkg/palette"
)

// jsonBackend serializes the document's own spec shape losslessly:
// operators, relative bases, luminance targets, and flags survive
// as-is, with no color arithmetic performed. It is the only backend
// that never touches the color algebra.
type jsonBackend struct{}

func (jsonBackend) Name() string { return JSON }

type jsonOperator struct {
	Op    string  `json:"op"`
	Value float64 `json:"value"`
}

type jsonAdjust struct {
	Hue             *jsonOperator `json:"h,omitempty"`
	Saturation      *jsonOperator `json:"s,omitempty"`
	Lightness       *jsonOperator `json:"l,omitempty"`
	LuminanceTarget *float64      `json:"lum,omitempty"`
	RelativeBase    string        `json:"base,omitempty"`
	NoAdjust        bool          `json:"no_adjust,omitempty"`
}

type jsonEntry struct {
	Name   string      `json:"name"`
	Hex    string      `json:"hex,omitempty"`
	Link   string      `json:"link,omitempty"`
	Adjust *jsonAdjust `json:"adjust,omitempty"`
}

type jsonDocument struct {
	Entries  []jsonEntry `json:"entries"`
	Template string      `json:"template,omitempty"`
}

// Compile dumps the document as indented JSON. Internal entries are
// included: dropping them would lose link targets and break the
// round trip.
func (jsonBackend) Compile(doc *palette.Document) (*Result, error) {
	out := jsonDocument{
		Entries:  make([]jsonEntry, 0, doc.Len()),
		Template: doc.Template(),
	}

	for _, e := range doc.Entries() {
		entry := jsonEntry{Name: e.Name}
		switch spec := e.Spec.(type) {
		case palette.Literal:
			entry.Hex = spec.Token
		case palette.Link:
			entry.Link = spec.Target
		case palette.Adjustment:
			entry.Adjust = &jsonAdjust{
				Hue:             toJSONOperator(spec.Hue),
				Saturation:      toJSONOperator(spec.Saturation),
				Lightness:       toJSONOperator(spec.Lightness),
				LuminanceTarget: spec.LuminanceTarget,
				RelativeBase:    spec.RelativeBase,
				NoAdjust:        spec.NoAdjust,
			}
		}
		out.Entries = append(out.Entries, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return &Result{Output: string(data) + "\n"}, nil
}

func toJSONOperator(op *hsl.Operator) *jsonOperator {
	if op == nil {
		return nil
	}
	return &jsonOperator{Op: op.Op.String(), Value: op.Value}
}
