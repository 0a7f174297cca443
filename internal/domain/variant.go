package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LabelKind records which wire field a variant label came from
type LabelKind string

const (
	LabelType       LabelKind = "type"
	LabelStyle      LabelKind = "style"
	LabelHook       LabelKind = "hook"
	LabelTitle      LabelKind = "title"
	LabelPositional LabelKind = "positional"
)

// BodyKind tells whether a variant body is a single text or a thread of posts
type BodyKind string

const (
	BodyFlat   BodyKind = "flat"
	BodyThread BodyKind = "thread"
	BodyEmpty  BodyKind = "empty"
)

// threadSeparator joins thread parts for display, copy and export
const threadSeparator = "\n\n"

// Label is the resolved heading of a variant
type Label struct {
	Kind LabelKind
	Text string
}

// Body is the resolved content of a variant
type Body struct {
	Kind  BodyKind
	Parts []string
	Text  string
}

// String returns the body as display text. Threads are joined with blank lines.
func (b Body) String() string {
	switch b.Kind {
	case BodyFlat:
		return b.Text
	case BodyThread:
		return strings.Join(b.Parts, threadSeparator)
	default:
		return ""
	}
}

// Variant is one generated candidate post for a platform.
// The remote service sends a loosely-typed object; it is resolved once into
// this shape when decoded.
type Variant struct {
	Body    Body
	Label   Label
	Subject string
}

// NewFlatVariant builds a variant with a single text body
func NewFlatVariant(kind LabelKind, label, content string) Variant {
	return Variant{
		Label: Label{Kind: kind, Text: label},
		Body:  Body{Kind: BodyFlat, Text: content},
	}
}

// NewThreadVariant builds a variant whose body is an ordered list of posts
func NewThreadVariant(kind LabelKind, label string, parts []string) Variant {
	return Variant{
		Label: Label{Kind: kind, Text: label},
		Body:  Body{Kind: BodyThread, Parts: parts},
	}
}

// DisplayLabel returns the label, falling back to "Variation N" (1-based)
func (v Variant) DisplayLabel(index int) string {
	if v.Label.Kind == LabelPositional || v.Label.Text == "" {
		return fmt.Sprintf("Variation %d", index+1)
	}
	return v.Label.Text
}

// Text returns the body as display text
func (v Variant) Text() string {
	return v.Body.String()
}

// variantWire is the shape exchanged with the webhook
type variantWire struct {
	Content string   `json:"content,omitempty" yaml:"content,omitempty"`
	Hook    string   `json:"hook,omitempty" yaml:"hook,omitempty"`
	Style   string   `json:"style,omitempty" yaml:"style,omitempty"`
	Subject string   `json:"subject,omitempty" yaml:"subject,omitempty"`
	Thread  []string `json:"thread,omitempty" yaml:"thread,omitempty"`
	Title   string   `json:"title,omitempty" yaml:"title,omitempty"`
	Type    string   `json:"type,omitempty" yaml:"type,omitempty"`
}

// UnmarshalJSON resolves the label (type, style, hook, title, in that order)
// and the body (content before thread).
func (v *Variant) UnmarshalJSON(data []byte) error {
	var wire variantWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	switch {
	case wire.Type != "":
		v.Label = Label{Kind: LabelType, Text: wire.Type}
	case wire.Style != "":
		v.Label = Label{Kind: LabelStyle, Text: wire.Style}
	case wire.Hook != "":
		v.Label = Label{Kind: LabelHook, Text: wire.Hook}
	case wire.Title != "":
		v.Label = Label{Kind: LabelTitle, Text: wire.Title}
	default:
		v.Label = Label{Kind: LabelPositional}
	}

	switch {
	case wire.Content != "":
		v.Body = Body{Kind: BodyFlat, Text: wire.Content}
	case len(wire.Thread) > 0:
		v.Body = Body{Kind: BodyThread, Parts: wire.Thread}
	default:
		v.Body = Body{Kind: BodyEmpty}
	}

	v.Subject = wire.Subject
	return nil
}

// MarshalJSON writes the variant back in the webhook's shape
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.wire())
}

// MarshalYAML writes the same shape as MarshalJSON
func (v Variant) MarshalYAML() (any, error) {
	return v.wire(), nil
}

func (v Variant) wire() variantWire {
	wire := variantWire{Subject: v.Subject}

	switch v.Label.Kind {
	case LabelType:
		wire.Type = v.Label.Text
	case LabelStyle:
		wire.Style = v.Label.Text
	case LabelHook:
		wire.Hook = v.Label.Text
	case LabelTitle:
		wire.Title = v.Label.Text
	}

	switch v.Body.Kind {
	case BodyFlat:
		wire.Content = v.Body.Text
	case BodyThread:
		wire.Thread = v.Body.Parts
	}

	return wire
}
