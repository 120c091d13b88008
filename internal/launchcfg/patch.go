// Package launchcfg rewrites individual parameters in the YAML document that
// drives the simulation launch. The document is treated as lines of text, not
// re-marshalled YAML: round-tripping through a YAML encoder would strip the
// comments and whitespace the upstream tooling ships with, which makes diffs
// useless for version tracking.
package launchcfg

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Edit is one requested parameter rewrite. Param is a dotted path for nested
// parameters (e.g. "scene.asset_path"); ":" is accepted as a separator alias.
type Edit struct {
	Param string
	Value string
}

// KeyNotFoundError reports that a requested parameter does not occur in the
// document. Missing keys are a hard failure: a launch config without its
// patch targets is a broken template, and launching against it would fail
// much later and much less clearly.
type KeyNotFoundError struct {
	File  string
	Param string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("parameter %q not found in %s", e.Param, e.File)
}

// Patch rewrites the given parameters in place and overwrites the file.
// Only the value portion of each matched line changes; indentation, key
// casing, surrounding lines and trailing comments stay byte-identical.
// Edits are applied in order; the first failure aborts before writing.
func Patch(path string, edits []Edit) error {
	if len(edits) == 0 {
		return fmt.Errorf("no edits requested for %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading launch config: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	for _, edit := range edits {
		if err := applyEdit(path, lines, edit); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("writing launch config: %w", err)
	}
	return nil
}

// applyEdit locates the line for edit.Param and replaces its value in lines.
// Nested path segments must appear in document order; a segment matches a
// line whose key token contains the segment, so a shorthand like
// "asset_path" finds "scene.asset_path" as long as the order holds.
func applyEdit(path string, lines []string, edit Edit) error {
	segments := strings.Split(strings.ReplaceAll(edit.Param, ":", "."), ".")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		pattern := regexp.MustCompile(`^\s*\S*` + regexp.QuoteMeta(segments[0]) + `\S*:`)
		if !pattern.MatchString(line) {
			continue
		}
		if len(segments) > 1 {
			// Matched an intermediate section; keep walking the tree.
			segments = segments[1:]
			continue
		}
		lines[i] = rewriteValue(line, edit.Value)
		return nil
	}

	return &KeyNotFoundError{File: path, Param: edit.Param}
}

// rewriteValue replaces the value between the key's colon and any trailing
// comment, preserving both.
func rewriteValue(line, value string) string {
	colon := strings.Index(line, ":")
	if hash := strings.Index(line, "#"); hash > colon {
		return line[:colon+1] + " " + value + " " + line[hash:]
	}
	return line[:colon+1] + " " + value
}
