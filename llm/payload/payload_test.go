package payload

import (
	"testing"
	"testing/fstest"
)

func TestBuildUserMessage(t *testing.T) {
	mfs := fstest.MapFS{
		"main.go":        &fstest.MapFile{Data: []byte("package main\n")},
		"docs/readme.md": &fstest.MapFile{Data: []byte("Hello")},
	}

	got, err := BuildUserMessage(mfs, "what does this program do?", []string{"main.go", "docs/readme.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "# Question\n" +
		"what does this program do?\n\n" +
		"# Files\n" +
		"### main.go\n```go\npackage main\n```\n\n" +
		"### docs/readme.md\n```markdown\nHello\n```\n\n"

	if got != expected {
		t.Errorf("payload mismatch.\nGot:\n%s\nExpected:\n%s", got, expected)
	}
}

func TestBuildUserMessage_QuestionOnly(t *testing.T) {
	got, err := BuildUserMessage(fstest.MapFS{}, "just a question", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "# Question\njust a question\n\n"
	if got != expected {
		t.Errorf("payload mismatch.\nGot:\n%s\nExpected:\n%s", got, expected)
	}
}

func TestBuildUserMessage_FileNotFound(t *testing.T) {
	// Empty filesystem – any file access should fail.
	mfs := fstest.MapFS{}

	if _, err := BuildUserMessage(mfs, "q", []string{"does_not_exist.txt"}); err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}
}

func TestEstimateTokens(t *testing.T) {
	count, err := EstimateTokens("The quick brown fox jumps over the lazy dog.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count == 0 {
		t.Fatalf("expected a positive token count for non-empty text")
	}
}
