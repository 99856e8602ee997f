package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Verbosity is a user-selectable hint controlling how long and detailed
// model responses should be.
//
// The string values are the canonical wire tokens – they are written
// verbatim to .quip/config.yaml and to the outbound request payload, so
// keep them all-lowercase.
//
// The zero value is an empty string and therefore invalid. Always
// initialise the variable with one of the provided constants or via
// ParseVerbosity.
type Verbosity string

const (
	VerbosityLow    Verbosity = "low"
	VerbosityMedium Verbosity = "medium"
	VerbosityHigh   Verbosity = "high"
)

// DefaultVerbosity is applied when model_verbosity is absent from the
// configuration file. An explicitly-invalid value never falls back to it –
// the whole config load fails instead so the user corrects the file.
const DefaultVerbosity = VerbosityMedium

// verbosityTokens lists the accepted configuration tokens in the order they
// are reported back to the user on error.
var verbosityTokens = []string{
	string(VerbosityLow),
	string(VerbosityMedium),
	string(VerbosityHigh),
}

// InvalidConfigValueError reports a configuration value outside its accepted
// set. It surfaces at config-load time, before any request is built.
type InvalidConfigValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidConfigValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s, expected one of: %s",
		e.Value, e.Field, strings.Join(e.Allowed, ", "))
}

// ParseVerbosity converts a raw configuration token into a Verbosity.
// Matching is case-insensitive but otherwise exact – surrounding whitespace
// is not stripped.
func ParseVerbosity(token string) (Verbosity, error) {
	switch strings.ToLower(token) {
	case string(VerbosityLow):
		return VerbosityLow, nil
	case string(VerbosityMedium):
		return VerbosityMedium, nil
	case string(VerbosityHigh):
		return VerbosityHigh, nil
	default:
		return "", &InvalidConfigValueError{Field: "model_verbosity", Value: token, Allowed: verbosityTokens}
	}
}

// String returns the canonical lowercase token. ParseVerbosity(v.String())
// always yields v back.
func (v Verbosity) String() string { return string(v) }

// UnmarshalYAML validates the token while the config file is being read, so
// a typo fails the whole load instead of producing a bogus enum value.
func (v *Verbosity) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseVerbosity(node.Value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML writes the canonical lowercase token.
func (v Verbosity) MarshalYAML() (any, error) { return string(v), nil }
