package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// configPatterns are the filename shapes MCP configuration documents are
// commonly stored under.
var configPatterns = []string{
	"**/mcp*.json",
	"**/server_config.json",
	"**/.mcp/config.json",
}

// Discover searches root recursively for candidate MCP configuration files.
// Results are absolute-ish (root-joined), sorted, and deduplicated.
func Discover(root string) ([]string, error) {
	fsys := os.DirFS(root)

	seen := make(map[string]struct{})
	var found []string
	for _, pattern := range configPatterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			path := filepath.Join(root, filepath.FromSlash(m))
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			found = append(found, path)
		}
	}

	sort.Strings(found)
	return found, nil
}
