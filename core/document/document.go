package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extension identifies HTML documents.
const Extension = ".html"

// ErrNotFound is returned when a directory holds no HTML document.
var ErrNotFound = errors.New("no html document found")

// Resolve picks the document to serve from dir and returns its file name.
//
// Precedence:
//  1. a file named exactly defaultName
//  2. the first HTML file whose name contains one of keywords, ignoring case
//  3. the first HTML file
//
// Entries are visited in lexical order.
func Resolve(dir, defaultName string, keywords []string) (string, error) {
	if defaultName != "" {
		info, err := os.Stat(filepath.Join(dir, defaultName))
		if err == nil && !info.IsDir() {
			return defaultName, nil
		}
	}

	candidates, err := List(dir)
	if err != nil {
		return "", err
	}

	for _, name := range candidates {
		if matchesKeyword(name, keywords) {
			return name, nil
		}
	}

	if len(candidates) > 0 {
		return candidates[0], nil
	}

	return "", ErrNotFound
}

// List returns the names of the HTML files directly inside dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), Extension) || !isFile(dir, entry) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// isFile follows symlinks the same way the default-name lookup does, so a
// link to a directory never counts and a dangling link is skipped.
func isFile(dir string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return !entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && !info.IsDir()
}

func matchesKeyword(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
