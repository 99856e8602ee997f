package selector

import (
	"bufio"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/quipdev/quip/workspace/matcher"
)

// Select returns the files (relative to projectRoot, no directories) that
// should be attached to a request:
//   - only files directly or indirectly under startDir are considered;
//   - a file is selected when matcher.IsIncluded returns true;
//   - an excluded directory is skipped wholesale, contents unseen;
//   - every non-excluded directory may carry a .gitignore whose patterns are
//     appended to the exclusions for that directory and its descendants.
//
// startDir and all patterns are relative to projectRoot.
func Select(projectRoot fs.FS, startDir string, exclusionPatterns, inclusionPatterns []string) ([]string, error) {
	startDir = path.Clean(startDir)

	var results []string

	// effectiveExclusions accumulates per-directory exclusion patterns as the
	// walk descends.
	effectiveExclusions := make(map[string][]string)

	err := fs.WalkDir(projectRoot, ".", func(currPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Directories are visited when they are ancestors of startDir or live
		// under it; files only when they live under it.
		if d.IsDir() {
			if !isRelated(currPath, startDir) {
				return fs.SkipDir
			}
		} else {
			rel, relErr := filepath.Rel(startDir, currPath)
			if relErr != nil || rel == ".." || strings.HasPrefix(rel, "../") {
				return nil
			}
		}

		parentExclusions, ok := effectiveExclusions[path.Dir(currPath)]
		if !ok {
			parentExclusions = exclusionPatterns
		}

		if d.IsDir() {
			if matcher.IsExcluded(projectRoot, currPath, parentExclusions) {
				return fs.SkipDir
			}
			effectiveExclusions[currPath] = withGitignore(projectRoot, currPath, parentExclusions)
			return nil
		}

		if matcher.IsIncluded(projectRoot, currPath, parentExclusions, inclusionPatterns) {
			results = append(results, currPath)
		}
		return nil
	})
	return results, err
}

// isRelated reports whether one path is an ancestor of the other. The root
// directory is related to everything.
func isRelated(curr, target string) bool {
	curr = path.Clean(curr)
	target = path.Clean(target)
	if curr == "." || target == "." {
		return true
	}
	// Append "/" to match whole directory segments.
	return strings.HasPrefix(target+"/", curr+"/") || strings.HasPrefix(curr+"/", target+"/")
}

// withGitignore returns baseExclusions extended with the patterns of the
// directory's .gitignore file, if present.
func withGitignore(projectRoot fs.FS, dir string, baseExclusions []string) []string {
	exclusions := append([]string{}, baseExclusions...)
	if data, err := fs.ReadFile(projectRoot, path.Join(dir, ".gitignore")); err == nil {
		exclusions = append(exclusions, parseGitignore(string(data))...)
	}
	return exclusions
}

// parseGitignore extracts the patterns from a .gitignore file, dropping
// blank lines and comments.
func parseGitignore(data string) []string {
	var patterns []string
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}
