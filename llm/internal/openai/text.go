package openai

import "github.com/quipdev/quip/config"

// textOptions is the optional `text` block of a Responses API request. It is
// attached as a unit – never present with a missing verbosity – and omitted
// structurally (nil pointer) rather than serialized as null or {}.
type textOptions struct {
	Verbosity config.Verbosity `json:"verbosity"`
}

// applyTextOptions attaches the text block when the target model honors it.
// Models outside the gpt-5 family get the request back untouched, whatever
// the user configured. For supported models an unset verbosity is
// materialized as the default, so the serialized request always documents
// the effective behavior.
//
// No other field of the request is read or mutated.
func applyTextOptions(req request, modelID string, verbosity *config.Verbosity) request {
	if !SupportsVerbosity(modelID) {
		return req
	}
	v := config.DefaultVerbosity
	if verbosity != nil {
		v = *verbosity
	}
	req.Text = &textOptions{Verbosity: v}
	return req
}
