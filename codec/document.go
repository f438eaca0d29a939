package codec

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"jsouthworth.net/go/mutable/arraylist"
)

type jsonDocument struct {
	Size     int               `json:"size"`
	Elements []json.RawMessage `json:"elements"`
}

type yamlDocument struct {
	Size     int          `yaml:"size"`
	Elements []*yaml.Node `yaml:"elements"`
}

type document[T any] struct {
	Size     int `json:"size" yaml:"size"`
	Elements []T `json:"elements" yaml:"elements"`
}

// EncodeJSON returns l as {"size":n,"elements":[...]}.
func EncodeJSON[T any](l *arraylist.List[T]) ([]byte, error) {
	doc := jsonDocument{
		Size:     l.Len(),
		Elements: make([]json.RawMessage, 0, l.Len()),
	}
	err := export(l, func(v T) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		doc.Elements = append(doc.Elements, raw)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// DecodeJSON rebuilds a list from a document written by EncodeJSON.
func DecodeJSON[T any](data []byte) (*arraylist.List[T], error) {
	var doc document[T]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrMalformed, err)
	}
	return restore(doc.Size, doc.Elements)
}

// EncodeYAML returns l as a YAML mapping with size and elements keys.
func EncodeYAML[T any](l *arraylist.List[T]) ([]byte, error) {
	doc := yamlDocument{
		Size:     l.Len(),
		Elements: make([]*yaml.Node, 0, l.Len()),
	}
	err := export(l, func(v T) error {
		node := new(yaml.Node)
		if err := node.Encode(v); err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		doc.Elements = append(doc.Elements, node)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// DecodeYAML rebuilds a list from a document written by EncodeYAML.
func DecodeYAML[T any](data []byte) (*arraylist.List[T], error) {
	var doc document[T]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: yaml unmarshal: %v", ErrMalformed, err)
	}
	return restore(doc.Size, doc.Elements)
}
