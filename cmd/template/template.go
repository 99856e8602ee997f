package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbroglie/mustache"
	"github.com/spf13/cobra"

	"github.com/quipdev/quip/config"
	"github.com/quipdev/quip/llm"
	"github.com/quipdev/quip/llm/payload"
	"github.com/quipdev/quip/logging"
	"github.com/quipdev/quip/workspace/selector"
)

var systemExclusionPatterns = []string{
	".git/",
	".gitignore",
	".quip/",
	"go.sum",
	"LICENSE",
}

// Definition describes a single quip command. Definitions are loaded from
// yaml files (embedded defaults, ~/.quip/commands, .quip/commands) or
// derived from bare markdown prompt files in the same directories.
type Definition struct {
	Name string `yaml:"name"`

	// Prompt is the command-specific instruction block included in the
	// system message. Occurrences of $ARGUMENTS are replaced with the raw
	// argument string the user typed after the command name.
	Prompt string `yaml:"prompt"`

	// AttachFiles controls whether files under --path are included in the
	// request payload.
	AttachFiles bool `yaml:"attachFiles"`

	// RequestExclusionPatterns specifies patterns for files that should be excluded from the request payload.
	RequestExclusionPatterns []string `yaml:"requestExclusionPatterns"`
	// RequestInclusionPatterns specifies patterns for files that should be included in the request payload.
	RequestInclusionPatterns []string `yaml:"requestInclusionPatterns"`

	// ShortDescription is a developer-provided description for the command.
	ShortDescription string `yaml:"shortDescription"`
	// LongDescription is a developer-provided description for the command.
	LongDescription string `yaml:"longDescription"`
}

// Register wires every loaded Definition as a cobra sub-command.
func Register(root *cobra.Command) error {
	for _, def := range load() {
		def := def
		c := &cobra.Command{
			Use:   def.Name,
			Short: def.ShortDescription,
			Long:  def.LongDescription,
			RunE: func(cmd *cobra.Command, args []string) error {
				return execute(cmd, args, def)
			},
		}
		c.Flags().String("path", ".", "directory whose files are attached to the request")
		root.AddCommand(c)
	}
	return nil
}

func execute(cmd *cobra.Command, args []string, def *Definition) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	arguments := strings.Join(args, " ")
	rootFS := os.DirFS(".")

	var files []string
	if def.AttachFiles {
		dir, _ := cmd.Flags().GetString("path")
		dir = filepath.ToSlash(filepath.Clean(dir))
		files, err = selector.Select(rootFS, dir,
			append(systemExclusionPatterns, def.RequestExclusionPatterns...),
			def.RequestInclusionPatterns)
		if err != nil {
			return err
		}
		logging.Log.Debugf("attaching %d files from %s", len(files), dir)
	}

	systemMessage, err := buildSystemMessage(def, arguments)
	if err != nil {
		return err
	}

	userMessage, err := payload.BuildUserMessage(rootFS, arguments, files)
	if err != nil {
		return err
	}

	if count, err := payload.EstimateTokens(systemMessage + userMessage); err == nil {
		logging.Log.Infof("sending ~%d prompt tokens to %s", count, cfg.Model)
	}

	answer, err := llm.Respond(cfg, systemMessage, userMessage)
	if err != nil {
		return err
	}

	fmt.Println(answer)
	return nil
}

// buildSystemMessage renders the embedded instruction template with the
// command definition, after substituting $ARGUMENTS in the prompt.
func buildSystemMessage(def *Definition, arguments string) (string, error) {
	raw, err := embedded.ReadFile("embedded/prompts/instructions.md.mustache")
	if err != nil {
		return "", err
	}
	tmpl, err := mustache.ParseString(string(raw))
	if err != nil {
		return "", err
	}

	expanded := *def
	expanded.Prompt = strings.ReplaceAll(def.Prompt, "$ARGUMENTS", arguments)
	return tmpl.Render(&expanded)
}
