// Package models defines data structures for trace extraction.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SignalNode is one node of the signal tree recorded in a trace.
// Scopes carry Children, variables carry Data.
type SignalNode struct {
	// Name is the scope or variable reference name.
	Name string `json:"name" yaml:"name"`
	// Kind is the VCD scope or variable type (module, wire, reg, ...).
	Kind string `json:"type,omitempty" yaml:"type,omitempty"`
	// Width is the declared bit width of a variable.
	Width int `json:"width,omitempty" yaml:"width,omitempty"`
	// Children contains nested scopes and variables in declaration order.
	Children []*SignalNode `json:"children,omitempty" yaml:"children,omitempty"`
	// Data contains the recorded value changes of a variable.
	Data []Sample `json:"data,omitempty" yaml:"data,omitempty"`
}

// Child returns the first immediate child with the given name, or nil.
func (n *SignalNode) Child(name string) *SignalNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IsLeaf reports whether the node has no children.
func (n *SignalNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Sample is a single value change of a variable.
// It is serialized as a [time, value] pair.
type Sample struct {
	// Time is the simulation time of the change.
	Time uint64
	// Value is the VCD text of the value, format marker included (e.g. "b0101").
	Value string
}

// MarshalJSON implements json.Marshaler.
func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{s.Time, s.Value})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Sample) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("sample must be a [time, value] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &s.Time); err != nil {
		return fmt.Errorf("sample time: %w", err)
	}
	if err := json.Unmarshal(pair[1], &s.Value); err != nil {
		return fmt.Errorf("sample value: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Sample) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(s.Time, 10)},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Value},
		},
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sample) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: sample must be a [time, value] pair", node.Line)
	}
	t, err := strconv.ParseUint(node.Content[0].Value, 10, 64)
	if err != nil {
		return fmt.Errorf("line %d: sample time: %w", node.Line, err)
	}
	s.Time = t
	s.Value = node.Content[1].Value
	return nil
}
