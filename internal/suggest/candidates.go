package suggest

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCandidates is returned when a serialized candidate list is not an
// array of strings.
var ErrInvalidCandidates = errors.New("candidate list must be an array of strings")

// ParseCandidates decodes a serialized array of strings. JSON arrays are
// accepted, and so are YAML sequences since JSON is a subset of YAML.
func ParseCandidates(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCandidates, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidCandidates)
	}
	return CandidatesFromNode(doc.Content[0])
}

// CandidatesFromNode converts a decoded YAML sequence node into a candidate list.
func CandidatesFromNode(node *yaml.Node) ([]string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: got %s", ErrInvalidCandidates, node.Line, kindName(node))
	}

	candidates := make([]string, 0, len(node.Content))
	for i, item := range node.Content {
		if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
			return nil, fmt.Errorf("%w: element %d: got %s", ErrInvalidCandidates, i, kindName(item))
		}
		candidates = append(candidates, item.Value)
	}
	return candidates, nil
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "array"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!str":
			return "string"
		case "!!int", "!!float":
			return "number"
		case "!!bool":
			return "boolean"
		case "!!null":
			return "null"
		}
		return node.ShortTag()
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
