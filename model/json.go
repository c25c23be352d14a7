package model

import (
	"encoding/json"
	"fmt"
)

// elementJSON is the wire form of the element union. Exactly one variant
// field is set; Kind is the discriminator a consumer switches on.
type elementJSON struct {
	Kind     string    `json:"kind"`
	Line     *Line     `json:"line,omitempty"`
	Circle   *Circle   `json:"circle,omitempty"`
	Arc      *Arc      `json:"arc,omitempty"`
	Polyline *Polyline `json:"polyline,omitempty"`
	Text     *Text     `json:"text,omitempty"`
	BlockRef *BlockRef `json:"block_ref,omitempty"`
}

func encodeElement(e Element) (elementJSON, error) {
	out := elementJSON{Kind: e.Kind().String()}
	switch v := e.(type) {
	case *Line:
		out.Line = v
	case *Circle:
		out.Circle = v
	case *Arc:
		out.Arc = v
	case *Polyline:
		out.Polyline = v
	case *Text:
		out.Text = v
	case *BlockRef:
		out.BlockRef = v
	default:
		return elementJSON{}, fmt.Errorf("unsupported element type %T", e)
	}
	return out, nil
}

func (ej elementJSON) decode() (Element, error) {
	switch {
	case ej.Line != nil:
		return ej.Line, nil
	case ej.Circle != nil:
		return ej.Circle, nil
	case ej.Arc != nil:
		return ej.Arc, nil
	case ej.Polyline != nil:
		return ej.Polyline, nil
	case ej.Text != nil:
		return ej.Text, nil
	case ej.BlockRef != nil:
		return ej.BlockRef, nil
	default:
		return nil, fmt.Errorf("element %q carries no geometry", ej.Kind)
	}
}

func encodeElements(elements []Element) ([]elementJSON, error) {
	out := make([]elementJSON, 0, len(elements))
	for _, e := range elements {
		ej, err := encodeElement(e)
		if err != nil {
			return nil, err
		}
		out = append(out, ej)
	}
	return out, nil
}

func decodeElements(items []elementJSON) ([]Element, error) {
	out := make([]Element, 0, len(items))
	for i, ej := range items {
		e, err := ej.decode()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

type drawingJSON struct {
	Source   string        `json:"source"`
	Layers   []Layer       `json:"layers"`
	Elements []elementJSON `json:"elements"`
	Metadata Metadata      `json:"metadata"`
}

// MarshalJSON serializes the drawing with a tagged element union so a
// downstream tool can reconstruct it losslessly.
func (d *Drawing) MarshalJSON() ([]byte, error) {
	elements, err := encodeElements(d.Elements)
	if err != nil {
		return nil, err
	}
	return json.Marshal(drawingJSON{
		Source:   d.Source,
		Layers:   d.Layers,
		Elements: elements,
		Metadata: d.Metadata,
	})
}

// UnmarshalJSON reconstructs a drawing serialized by MarshalJSON.
func (d *Drawing) UnmarshalJSON(data []byte) error {
	var wire drawingJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	elements, err := decodeElements(wire.Elements)
	if err != nil {
		return fmt.Errorf("decode drawing %q: %w", wire.Source, err)
	}
	d.Source = wire.Source
	d.Layers = wire.Layers
	d.Elements = elements
	d.Metadata = wire.Metadata
	return nil
}

type differenceResultJSON struct {
	New        []elementJSON      `json:"new_elements"`
	Removed    []elementJSON      `json:"removed_elements"`
	Walls      []elementJSON      `json:"walls"`
	Openings   []elementJSON      `json:"openings"`
	Fixtures   []elementJSON      `json:"fixtures"`
	MatchCount int                `json:"match_count"`
	Confidence CategoryConfidence `json:"confidence"`
	Metadata   map[string]string  `json:"metadata,omitempty"`
}

// MarshalJSON serializes the result with the same tagged element union as
// Drawing. Category subsets are written out in full; element IDs preserve
// their identity with entries of new_elements.
func (r *DifferenceResult) MarshalJSON() ([]byte, error) {
	wire := differenceResultJSON{
		MatchCount: r.MatchCount,
		Confidence: r.Confidence,
		Metadata:   r.Metadata,
	}
	var err error
	if wire.New, err = encodeElements(r.New); err != nil {
		return nil, err
	}
	if wire.Removed, err = encodeElements(r.Removed); err != nil {
		return nil, err
	}
	if wire.Walls, err = encodeElements(r.Walls); err != nil {
		return nil, err
	}
	if wire.Openings, err = encodeElements(r.Openings); err != nil {
		return nil, err
	}
	if wire.Fixtures, err = encodeElements(r.Fixtures); err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// UnmarshalJSON reconstructs a result serialized by MarshalJSON.
func (r *DifferenceResult) UnmarshalJSON(data []byte) error {
	var wire differenceResultJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	var err error
	if r.New, err = decodeElements(wire.New); err != nil {
		return err
	}
	if r.Removed, err = decodeElements(wire.Removed); err != nil {
		return err
	}
	if r.Walls, err = decodeElements(wire.Walls); err != nil {
		return err
	}
	if r.Openings, err = decodeElements(wire.Openings); err != nil {
		return err
	}
	if r.Fixtures, err = decodeElements(wire.Fixtures); err != nil {
		return err
	}
	r.MatchCount = wire.MatchCount
	r.Confidence = wire.Confidence
	r.Metadata = wire.Metadata
	return nil
}
