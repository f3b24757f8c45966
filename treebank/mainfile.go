package treebank

import (
	"bufio"
	"os"
	"strings"
)

// CollectionEntry names one member of a treebank collection: an
// identifying name (e.g. a language's ISO code) and the path to its
// treebank file.
type CollectionEntry struct {
	Name string
	Path string
}

// ReadMainFile parses a collection's main file: one tab-separated
// (name, path) pair per non-blank line.
func ReadMainFile(path string) ([]CollectionEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMainFileDoesNotExist
		}
		return nil, ErrMainFileCouldNotBeOpened
	}
	defer f.Close()

	var entries []CollectionEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			return nil, ErrMalformedMainFile
		}
		entries = append(entries, CollectionEntry{
			Name: strings.TrimSpace(parts[0]),
			Path: strings.TrimSpace(parts[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, ErrMainFileCouldNotBeOpened
	}
	return entries, nil
}
