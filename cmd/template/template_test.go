package template

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestBuildSystemMessage(t *testing.T) {
	def := &Definition{
		Name:   "ask",
		Prompt: "Question: $ARGUMENTS",
	}

	msg, err := buildSystemMessage(def, "how does login work?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(msg, "Question: how does login work?") {
		t.Fatalf("system message does not substitute $ARGUMENTS:\n%s", msg)
	}
	if strings.Contains(msg, "$ARGUMENTS") {
		t.Fatalf("system message still contains the placeholder:\n%s", msg)
	}
	if strings.Contains(msg, "{{") {
		t.Fatalf("system message contains unrendered template tags:\n%s", msg)
	}
}

func TestBuildSystemMessageDoesNotMutateDefinition(t *testing.T) {
	def := &Definition{Name: "ask", Prompt: "Question: $ARGUMENTS"}

	if _, err := buildSystemMessage(def, "anything"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Prompt != "Question: $ARGUMENTS" {
		t.Fatalf("definition prompt was mutated: %q", def.Prompt)
	}
}

func TestRegisterAddsBuiltinCommands(t *testing.T) {
	root := &cobra.Command{Use: "quip"}
	if err := Register(root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"ask", "explain", "review", "summarize"} {
		if !names[want] {
			t.Fatalf("expected registered command %q, got %v", want, names)
		}
	}
}
