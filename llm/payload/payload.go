package payload

import (
	"io/fs"
	"strings"
)

// fileEntry represents a file with its relative path and content.
type fileEntry struct {
	Path    string
	Content string
}

// BuildUserMessage constructs the Markdown-formatted user message for a
// question, including the content of every file in scope. All file paths are
// relative to projectRoot. If any referenced file cannot be read this
// function returns an error.
func BuildUserMessage(projectRoot fs.FS, question string, filePaths []string) (string, error) {
	var files []fileEntry
	for _, path := range filePaths {
		data, err := fs.ReadFile(projectRoot, path)
		if err != nil {
			return "", err
		}
		files = append(files, fileEntry{
			Path:    path,
			Content: string(data),
		})
	}

	var sb strings.Builder
	if question != "" {
		sb.WriteString("# Question\n")
		sb.WriteString(question)
		sb.WriteString("\n\n")
	}
	if len(files) > 0 {
		sb.WriteString("# Files\n")
		for _, f := range files {
			writeFile(&sb, f.Path, f.Content)
		}
	}
	return sb.String(), nil
}

func writeFile(sb *strings.Builder, filepath, content string) {
	lang := getLanguageFromFilename(filepath)
	sb.WriteString("### " + filepath + "\n")
	sb.WriteString("```" + lang + "\n")
	sb.WriteString(content)
	// Ensure a trailing newline before closing the code block.
	if !strings.HasSuffix(content, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```\n\n")
}

// getLanguageFromFilename returns a language identifier based on file extension.
func getLanguageFromFilename(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".go"):
		return "go"
	case strings.HasSuffix(filename, ".md"):
		return "markdown"
	case strings.HasSuffix(filename, ".json"):
		return "json"
	case strings.HasSuffix(filename, ".yaml"), strings.HasSuffix(filename, ".yml"):
		return "yaml"
	case strings.HasSuffix(filename, ".txt"):
		return "text"
	}
	// Default: no language specified.
	return ""
}
