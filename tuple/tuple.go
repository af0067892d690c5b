// Package tuple provides small positional records.
//
// The types serialise to YAML as flow sequences, so a T3[int, string, bool]
// is written as [5, hi0, true].
package tuple

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Pair holds two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

func (p Pair[A, B]) Len() int { return 2 }

func (p Pair[A, B]) MarshalYAML() (any, error) {
	return flow(p.First, p.Second)
}

func (p *Pair[A, B]) UnmarshalYAML(node *yaml.Node) error {
	return decode(node, &p.First, &p.Second)
}

// T3 holds three values.
type T3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// New3 creates a T3.
func New3[A, B, C any](v0 A, v1 B, v2 C) T3[A, B, C] {
	return T3[A, B, C]{V0: v0, V1: v1, V2: v2}
}

func (t T3[A, B, C]) Len() int { return 3 }

func (t T3[A, B, C]) MarshalYAML() (any, error) {
	return flow(t.V0, t.V1, t.V2)
}

func (t *T3[A, B, C]) UnmarshalYAML(node *yaml.Node) error {
	return decode(node, &t.V0, &t.V1, &t.V2)
}

// T4 holds four values.
type T4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// New4 creates a T4.
func New4[A, B, C, D any](v0 A, v1 B, v2 C, v3 D) T4[A, B, C, D] {
	return T4[A, B, C, D]{V0: v0, V1: v1, V2: v2, V3: v3}
}

func (t T4[A, B, C, D]) Len() int { return 4 }

func (t T4[A, B, C, D]) MarshalYAML() (any, error) {
	return flow(t.V0, t.V1, t.V2, t.V3)
}

func (t *T4[A, B, C, D]) UnmarshalYAML(node *yaml.Node) error {
	return decode(node, &t.V0, &t.V1, &t.V2, &t.V3)
}

func flow(values ...any) (*yaml.Node, error) {
	node := &yaml.Node{
		Kind:  yaml.SequenceNode,
		Tag:   "!!seq",
		Style: yaml.FlowStyle,
	}

	for _, v := range values {
		var item yaml.Node
		if err := item.Encode(v); err != nil {
			return nil, fmt.Errorf("unable to encode field %d: %w", len(node.Content), err)
		}
		node.Content = append(node.Content, &item)
	}

	return node, nil
}

func decode(node *yaml.Node, fields ...any) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a sequence of %d values", node.Line, len(fields))
	}

	if len(node.Content) != len(fields) {
		return fmt.Errorf("line %d: expected %d values, got %d", node.Line, len(fields), len(node.Content))
	}

	for i, field := range fields {
		if err := node.Content[i].Decode(field); err != nil {
			return fmt.Errorf("unable to decode field %d: %w", i, err)
		}
	}

	return nil
}
