package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AnswerKey is an ordered list of tokens expected in a program's output.
// Duplicates are kept; each occurrence is checked on its own.
type AnswerKey struct {
	Name    string   `yaml:"name"`
	Answers []string `yaml:"answers"`
}

// DefaultAnswerKey is the key for the Lox interpreter's recursion, closure
// and class test scripts.
var DefaultAnswerKey = AnswerKey{
	Name: "lox",
	Answers: []string{
		"RECURSION_TEST",
		"1",
		"13",
		"55",
		"233",
		"CLOSURE_TESTS",
		"global",
		"global",
		"CLASS_TESTS",
		"Bagel",
		"instance",
		"DevonshireCream",
		"Crunch_crunch_crunch!",
		"Foo",
	},
}

// LoadAnswerKey reads a YAML answer key from path.
func LoadAnswerKey(path string) (*AnswerKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answer key: %w", err)
	}
	return ParseAnswerKey(data)
}

// ParseAnswerKey parses either a mapping with name/answers fields or a bare
// sequence of answers. Scalars are kept exactly as written, so 13 and "13"
// are the same answer.
func ParseAnswerKey(data []byte) (*AnswerKey, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse answer key YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("answer key is empty")
	}

	root := resolveAlias(doc.Content[0])
	key := &AnswerKey{}
	var list *yaml.Node
	switch root.Kind {
	case yaml.SequenceNode:
		list = root
	case yaml.MappingNode:
		seen := make(map[string]int)
		for i := 0; i+1 < len(root.Content); i += 2 {
			k, v := root.Content[i], resolveAlias(root.Content[i+1])
			if line, dup := seen[k.Value]; dup {
				return nil, fmt.Errorf("line %d: field %q already set on line %d", k.Line, k.Value, line)
			}
			seen[k.Value] = k.Line
			switch k.Value {
			case "name":
				if v.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("line %d: name must be a string", v.Line)
				}
				key.Name = v.Value
			case "answers":
				if v.Kind != yaml.SequenceNode {
					return nil, fmt.Errorf("line %d: answers must be a list", v.Line)
				}
				list = v
			default:
				return nil, fmt.Errorf("line %d: unknown field %q", k.Line, k.Value)
			}
		}
		if list == nil {
			return nil, fmt.Errorf("answer key has no answers field")
		}
	default:
		return nil, fmt.Errorf("line %d: answer key must be a list or a mapping", root.Line)
	}

	key.Answers = make([]string, 0, len(list.Content))
	for i, n := range list.Content {
		n = resolveAlias(n)
		if n.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("answer %d (line %d) is not a scalar", i, n.Line)
		}
		if n.Value == "" {
			return nil, fmt.Errorf("answer %d (line %d) is empty", i, n.Line)
		}
		if strings.IndexFunc(n.Value, isSeparator) >= 0 {
			return nil, fmt.Errorf("answer %d (line %d) %q contains whitespace and can never match a token", i, n.Line, n.Value)
		}
		key.Answers = append(key.Answers, n.Value)
	}
	return key, nil
}


// resolveAlias follows *anchor references to the node they name.
func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
