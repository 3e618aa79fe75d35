// Package wordlist supplies the word lists the solver runs on: an embedded
// default plus loaders for user supplied files. Validation and
// de-duplication happen in words.NewDictionary; this package only normalizes
// case and strips blank lines.
package wordlist

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"
)

//go:embed words.txt
var embedded string

// Default returns the embedded word list.
func Default() []string {
	list, _ := Load(strings.NewReader(embedded))
	return list
}

// Load reads one word per line, lower casing entries and skipping blanks.
func Load(r io.Reader) ([]string, error) {
	list := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		list = append(list, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// FromFile loads a word list from path.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
