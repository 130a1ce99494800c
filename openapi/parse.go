package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseDocument turns raw text into a document tree. Format is chosen from
// the path's extension: .yaml/.yml (case-insensitive) parse as YAML,
// anything else as JSON. Failures come back as an ImportError wrapping the
// underlying decode error; no partial result is ever returned.
func ParseDocument(data []byte, path string) (*Value, error) {
	var (
		doc *Value
		err error
	)
	if isYAMLPath(path) {
		doc, err = parseYAML(data)
	} else {
		doc, err = parseJSON(data)
	}
	if err != nil {
		return nil, &ImportError{Source: path, Msg: "failed to parse document", Err: err}
	}
	return doc, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// parseJSON builds the tree with a token walk so object field order and
// number literals survive (encoding/json maps would lose both).
func parseJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			var items []*Value
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return Array(items...), nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// parseYAML walks the yaml.v3 node tree into the same tagged representation.
// Mapping keys keep their document order; scalar tags !!null/!!bool/!!int/
// !!float map to the corresponding kinds, everything else stays a string.
func parseYAML(data []byte) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Null(), nil
	}
	return decodeYAMLNode(root.Content[0])
}

func decodeYAMLNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return decodeYAMLNode(n.Content[0])
	case yaml.MappingNode:
		obj := Object()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			val, err := decodeYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		return obj, nil
	case yaml.SequenceNode:
		items := make([]*Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := decodeYAMLNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return Array(items...), nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return Null(), nil
		case "!!bool":
			return Bool(strings.EqualFold(n.Value, "true") || n.Value == "on" || n.Value == "yes"), nil
		case "!!int", "!!float":
			return Number(json.Number(n.Value)), nil
		default:
			return String(n.Value), nil
		}
	case yaml.AliasNode:
		return decodeYAMLNode(n.Alias)
	}
	return nil, fmt.Errorf("unexpected YAML node kind %d", n.Kind)
}
