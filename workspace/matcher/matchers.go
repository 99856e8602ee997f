package matcher

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// IsIncluded reports whether filePath survives the `.gitignore` style
// exclusion patterns AND matches at least one inclusion pattern.
func IsIncluded(projectRoot fs.FS, filePath string, exclusionPatterns, inclusionPatterns []string) bool {
	fileInfo, err := fs.Stat(projectRoot, filePath)
	if err != nil {
		return false
	}
	if matchesExclusionPatterns(fileInfo, filePath, exclusionPatterns) {
		return false
	}
	return matchesInclusionPatterns(fileInfo, filePath, inclusionPatterns)
}

// IsExcluded reports whether filePath matches the exclusion patterns.
func IsExcluded(projectRoot fs.FS, filePath string, exclusionPatterns []string) bool {
	fileInfo, err := fs.Stat(projectRoot, filePath)
	if err != nil {
		return false
	}
	return matchesExclusionPatterns(fileInfo, filePath, exclusionPatterns)
}

// matchesExclusionPatterns processes patterns in order: a non-negated match
// marks the file excluded, a later negated ("!") match reverses it. A
// directory pattern match is terminal – nothing under an excluded directory
// can be re-included.
func matchesExclusionPatterns(fileInfo fs.FileInfo, filePath string, exclusionPatterns []string) bool {
	excluded := false
	for _, pattern := range exclusionPatterns {
		if pattern == "" {
			continue
		}
		if negated, ok := strings.CutPrefix(pattern, "!"); ok {
			if matchesPattern(fileInfo, filePath, negated, false) {
				excluded = false
			}
			continue
		}
		if matchesPattern(fileInfo, filePath, pattern, false) {
			if isDirMatcher(pattern) {
				return true
			}
			excluded = true
		}
	}
	return excluded
}

// matchesInclusionPatterns requires at least one non-negated pattern match;
// a negated pattern match rejects the file outright. With no patterns at all
// nothing is included.
func matchesInclusionPatterns(fileInfo fs.FileInfo, filePath string, inclusionPatterns []string) bool {
	for _, pattern := range inclusionPatterns {
		if pattern == "" {
			continue
		}
		if negated, ok := strings.CutPrefix(pattern, "!"); ok {
			if matchesPattern(fileInfo, filePath, negated, true) {
				return false
			}
			continue
		}
		if matchesPattern(fileInfo, filePath, pattern, true) {
			return true
		}
	}
	return false
}

// matchesPattern matches a relative file path against a single
// .gitignore-style pattern (see https://git-scm.com/docs/gitignore):
// a trailing "/" restricts the pattern to directories (and everything under
// them), a pattern without "/" matches the basename at any depth, "**"
// spans zero or more path segments, and "*" / "?" match within a single
// segment.
func matchesPattern(fileInfo fs.FileInfo, filePath string, pattern string, matchAll bool) bool {
	dirMatcher := isDirMatcher(pattern)
	// A directory pattern should only match directories.
	if fileInfo.IsDir() && !dirMatcher {
		return false
	}

	normalizedPath := filepath.ToSlash(filePath)

	// A directory pattern also covers everything underneath the directory.
	if dirMatcher && !matchAll {
		trimmed := strings.TrimSuffix(pattern, "/")
		return normalizedPath == trimmed || strings.HasPrefix(normalizedPath, trimmed+"/")
	}

	// A pattern without a separator matches against the basename only.
	if !strings.Contains(pattern, "/") {
		return matchSingleSegment(filepath.Base(normalizedPath), pattern)
	}

	// A leading "/" anchors the pattern at the root; strip it to align with
	// the (already relative) path tokens.
	pattern = strings.TrimPrefix(pattern, "/")

	return matchTokens(strings.Split(normalizedPath, "/"), strings.Split(pattern, "/"))
}

// isDirMatcher reports whether the pattern only matches directories.
func isDirMatcher(pattern string) bool {
	return strings.HasSuffix(pattern, "/")
}

// matchTokens checks path segments against pattern segments, handling "**"
// as a wildcard for zero or more segments.
func matchTokens(pathTokens, patternTokens []string) bool {
	if len(patternTokens) == 0 {
		return len(pathTokens) == 0
	}

	head := patternTokens[0]

	if head == "**" {
		// Either the "**" matches zero segments, or it consumes one and we
		// keep trying.
		if matchTokens(pathTokens, patternTokens[1:]) {
			return true
		}
		if len(pathTokens) > 0 {
			return matchTokens(pathTokens[1:], patternTokens)
		}
		return false
	}

	if len(pathTokens) == 0 {
		return false
	}

	if matchSingleSegment(pathTokens[0], head) {
		return matchTokens(pathTokens[1:], patternTokens[1:])
	}
	return false
}

// matchSingleSegment matches a single path segment (no slashes) against a
// pattern containing possible "*" or "?" characters.
func matchSingleSegment(segment, pattern string) bool {
	si, pi := 0, 0

	for si < len(segment) && pi < len(pattern) {
		switch pattern[pi] {
		case '*':
			pi++
			if pi == len(pattern) {
				return true
			}
			for start := si; start <= len(segment); start++ {
				if matchSingleSegment(segment[start:], pattern[pi:]) {
					return true
				}
			}
			return false
		case '?':
			si++
			pi++
		default:
			if segment[si] != pattern[pi] {
				return false
			}
			si++
			pi++
		}
	}

	for pi < len(pattern) {
		if pattern[pi] != '*' {
			return false
		}
		pi++
	}

	return si == len(segment) && pi == len(pattern)
}
