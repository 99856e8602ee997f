package openai

import "strings"

// SupportsVerbosity reports whether the given model id honors the text
// verbosity knob. Only the gpt-5 family does – gpt-5, gpt-5-mini, gpt-5-nano,
// gpt-5-codex and dated snapshots thereof. Every other id, including unknown
// or future ones, is treated as unsupported so quip never sends a parameter
// the API would reject.
//
// This predicate is the single point of truth for the gate; callers must not
// re-implement family detection.
func SupportsVerbosity(modelID string) bool {
	id := strings.ToLower(strings.TrimSpace(modelID))
	return strings.HasPrefix(id, "gpt-5")
}
