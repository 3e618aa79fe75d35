package wordlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/617a7a/wordlesolver/words"
)

func TestDefaultIsAValidDictionary(t *testing.T) {
	list := Default()
	assert.NotEmpty(t, list)
	d, err := words.NewDictionary(list)
	assert.NoError(t, err)
	assert.Equal(t, len(list), d.Len(), "embedded list has no duplicates")
}

func TestLoadNormalizes(t *testing.T) {
	in := "CRANE\n\n  slate  \nAbide\n"
	list, err := Load(strings.NewReader(in))
	assert.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "abide"}, list)
}
