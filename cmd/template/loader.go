package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed embedded/*
var embedded embed.FS

// loadConfigs reads every *.yaml/*.yml command definition and every *.md
// prompt file in the given filesystem. Markdown files become prompt-only
// commands whose name is derived from their relative path:
//
//	review.md          -> review
//	review/security.md -> review__security
func loadConfigs(rootFS fs.FS) []*Definition {
	var defs []*Definition

	_ = fs.WalkDir(rootFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			// The prompts directory holds rendering templates, not commands.
			if p == "prompts" {
				return fs.SkipDir
			}
			return nil
		}

		switch strings.ToLower(filepath.Ext(d.Name())) {
		case ".yaml", ".yml":
			data, err := fs.ReadFile(rootFS, p)
			if err != nil {
				return nil
			}
			var def Definition
			if err := yaml.Unmarshal(data, &def); err != nil {
				// Skip malformed definitions rather than failing startup.
				return nil
			}
			defs = append(defs, &def)
		case ".md":
			data, err := fs.ReadFile(rootFS, p)
			if err != nil {
				return nil
			}
			defs = append(defs, &Definition{
				Name:             commandName(p),
				Prompt:           string(data),
				ShortDescription: fmt.Sprintf("Custom command defined in %s.", p),
			})
		}
		return nil
	})

	return defs
}

// commandName derives a command name from a prompt file's relative path.
func commandName(p string) string {
	p = strings.TrimSuffix(filepath.ToSlash(p), ".md")
	return strings.ReplaceAll(p, "/", "__")
}

// loadEmbeddedConfigs reads command definitions shipped with the binary.
func loadEmbeddedConfigs() []*Definition {
	subFS, err := fs.Sub(embedded, "embedded")
	if err != nil {
		return nil
	}
	return loadConfigs(subFS)
}

// loadUserConfigs reads command files from ~/.quip/commands, if present.
func loadUserConfigs() []*Definition {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".quip", "commands")
	if _, err := os.Stat(dir); err != nil {
		return nil
	}
	return loadConfigs(os.DirFS(dir))
}

// loadProjectConfigs reads command files from .quip/commands under the
// current working directory, if present.
func loadProjectConfigs() []*Definition {
	dir := filepath.Join(".quip", "commands")
	if _, err := os.Stat(dir); err != nil {
		return nil
	}
	return loadConfigs(os.DirFS(dir))
}

// toMap converts a slice of *Definition into a map keyed by Name.
func toMap(defs []*Definition) map[string]*Definition {
	result := make(map[string]*Definition)
	for _, def := range defs {
		if def != nil && def.Name != "" {
			result[def.Name] = def
		}
	}
	return result
}

// load combines embedded, user-level, and project-level definitions in
// order of precedence: embedded < ~/.quip/commands < .quip/commands.
func load() []*Definition {
	combined := toMap(loadEmbeddedConfigs())

	for name, def := range toMap(loadUserConfigs()) {
		combined[name] = def
	}
	for name, def := range toMap(loadProjectConfigs()) {
		combined[name] = def
	}

	finalDefs := make([]*Definition, 0, len(combined))
	for _, def := range combined {
		finalDefs = append(finalDefs, def)
	}
	return finalDefs
}
