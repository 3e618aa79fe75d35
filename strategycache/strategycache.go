// Package strategycache persists the precomputed opening guess so the
// quadratic startup search runs once per word list, not once per process.
// Entries are keyed by a digest of the word list: change the list and the
// cached strategy no longer applies.
package strategycache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirName  = "wordlesolver"
	fileName = "strategies.json"
)

// Digest identifies a word list. Order matters: the solver's tie-break
// depends on dictionary order, so a reordered list is a different strategy.
func Digest(list []string) string {
	sum := sha256.Sum256([]byte(strings.Join(list, "\n")))
	return hex.EncodeToString(sum[:])
}

// Cache is a digest-to-opening-guess map stored as a JSON file.
type Cache struct {
	path string
}

// Open locates the cache under the user cache directory, creating the
// directory if needed.
func Open() (*Cache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(base, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{path: filepath.Join(dir, fileName)}, nil
}

// At returns a cache backed by an explicit file path, used in tests.
func At(path string) *Cache {
	return &Cache{path: path}
}

func (c *Cache) load() map[string]string {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return map[string]string{}
	}
	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		// Unreadable cache degrades to a recompute.
		return map[string]string{}
	}
	return entries
}

// Lookup returns the cached opening guess for the word list digest.
func (c *Cache) Lookup(digest string) (string, bool) {
	guess, ok := c.load()[digest]
	return guess, ok
}

// Store records the opening guess for the word list digest.
func (c *Cache) Store(digest, guess string) error {
	entries := c.load()
	entries[digest] = guess
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
