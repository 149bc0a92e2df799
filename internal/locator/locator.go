package locator

import (
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches iostat dump files in the working directory, named
// iostat-<host>-<timestamp>.output by the collection script.
const DefaultPattern = "iostat-*.output"

// File is one discovered input dump.
type File struct {
	Path string // absolute or as-matched path
	Name string // base name
	Host string // host identifier extracted from Name
}

// Discover resolves glob patterns to input files. Supports recursive
// patterns like dumps/**/iostat-*.output via doublestar. Patterns that fail
// to expand are logged and skipped; the result is deduplicated and sorted by
// path so downstream ordering is deterministic.
func Discover(patterns []string) []File {
	seen := make(map[string]bool)
	var files []File

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			log.Printf("warning: failed to expand pattern %q: %v", pattern, err)
			continue
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			name := filepath.Base(m)
			files = append(files, File{
				Path: m,
				Name: name,
				Host: HostFromName(name),
			})
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// HostFromName extracts the host token from an iostat-<host>-<timestamp>.output
// file name. A name outside the convention falls back to its extension-less
// stem so the record still groups under something stable.
func HostFromName(name string) string {
	parts := strings.Split(name, "-")
	if len(parts) >= 2 && parts[0] == "iostat" {
		return parts[1]
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
