package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSimilarity_Identical(t *testing.T) {
	assert.Equal(t, 1.0, StringSimilarity("golang", "golang"))
}

func TestStringSimilarity_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, StringSimilarity("", ""))
}

func TestStringSimilarity_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, StringSimilarity("go", ""))
	assert.Equal(t, 0.0, StringSimilarity("", "go"))
}

func TestStringSimilarity_EditDistance(t *testing.T) {
	// levenshtein("kitten", "sitting") = 3, longer = 7
	assert.InDelta(t, 4.0/7.0, StringSimilarity("kitten", "sitting"), 0.001)
}

func TestStringSimilarity_Symmetric(t *testing.T) {
	assert.Equal(t, StringSimilarity("react", "redux"), StringSimilarity("redux", "react"))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("same", "same"))
	assert.Equal(t, 1, levenshteinDistance("javascript", "javascrip"))
	assert.Equal(t, 2, levenshteinDistance("flaw", "lawn"))
	assert.Equal(t, 4, levenshteinDistance("", "four"))
}
