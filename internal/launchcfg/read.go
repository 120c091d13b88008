package launchcfg

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadParameter parses the document as real YAML and returns the value at
// the dotted parameter path, formatted as a string. Used standalone to
// inspect a config and after Patch to verify a rewrite took.
//
// Matching follows the same rules as Patch: segments match keys that contain
// them, in document order, at any nesting depth. That keeps "scene.asset_path"
// meaningful even when the document nests everything under a vendor root key.
func ReadParameter(path, param string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading launch config: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	segments := strings.Split(strings.ReplaceAll(param, ":", "."), ".")
	node := findParam(&root, segments)
	if node == nil {
		return "", &KeyNotFoundError{File: path, Param: param}
	}

	if node.Kind == yaml.ScalarNode {
		return node.Value, nil
	}
	raw, err := yaml.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("formatting value of %q: %w", param, err)
	}
	return strings.TrimRight(string(raw), "\n"), nil
}

// findParam walks mapping keys in document order, consuming one segment per
// matching key, and returns the value node reached by the final segment.
func findParam(node *yaml.Node, segments []string) *yaml.Node {
	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			if found := findParam(child, segments); found != nil {
				return found
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if strings.Contains(key.Value, segments[0]) {
				if len(segments) == 1 {
					return value
				}
				if found := findParam(value, segments[1:]); found != nil {
					return found
				}
			} else if found := findParam(value, segments); found != nil {
				return found
			}
		}
	}
	return nil
}
