package llm

import (
	"fmt"
	"strings"

	"github.com/quipdev/quip/config"
	"github.com/quipdev/quip/llm/internal/openai"
)

// provider captures the common operations expected from any LLM backend.
// It is intentionally unexported so that the public surface of the llm
// package stays minimal while allowing internal dispatch based on user
// configuration.
//
// Additional methods should be appended here whenever new high-level
// helpers are added to the llm façade.
type provider interface {
	Respond(modelID string, verbosity *config.Verbosity, systemMessage, userMessage string) (string, error)
}

type openAIProvider struct{}

func (*openAIProvider) Respond(modelID string, verbosity *config.Verbosity, systemMessage, userMessage string) (string, error) {
	return openai.Respond(modelID, verbosity, systemMessage, userMessage)
}

// unknownProvider is a throwing stub returned for unrecognised provider
// names.
type unknownProvider struct{}

func (*unknownProvider) Respond(string, *config.Verbosity, string, string) (string, error) {
	return "", fmt.Errorf("unknown provider")
}

// Respond resolves the configured provider and asks the configured model for
// a response. The model's verbosity setting travels alongside the model id
// so the provider can decide whether the target family honors it.
func Respond(cfg *config.Config, systemMessage, userMessage string) (string, error) {
	return resolveProvider(cfg).Respond(cfg.Model, cfg.ModelVerbosity, systemMessage, userMessage)
}

// resolveProvider resolves the value of cfg.Provider to one of the known
// providers. Returns a throwing stub if it can't map the value to any known
// provider.
func resolveProvider(cfg *config.Config) provider {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return &openAIProvider{}
	default:
		return &unknownProvider{}
	}
}

// SupportedProviders returns the list of LLM providers that can be chosen
// when initialising quip. The slice is a copy – callers may modify it
// without affecting the package-level data.
func SupportedProviders() []string {
	return append([]string(nil), supportedProviders...)
}

// supportedProviders holds the hard-coded list of providers until dynamic
// registration lands. Keep the strings in lowercase as they are written
// verbatim to .quip/config.yaml.
var supportedProviders = []string{"openai"}

// SuggestedModels returns the model ids offered by `quip init`. Free-form
// ids remain valid in the config file; this list only seeds the prompt.
func SuggestedModels() []string {
	return append([]string(nil), suggestedModels...)
}

var suggestedModels = []string{"gpt-5", "gpt-5-mini", "gpt-5-nano", "gpt-4.1", "gpt-4o", "o4-mini"}
