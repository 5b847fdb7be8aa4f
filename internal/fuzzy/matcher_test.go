package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		min     int
		max     int
	}{
		{name: "exact", pattern: "Buy milk", text: "buy milk", min: 100, max: 100},
		{name: "empty pattern", pattern: "", text: "buy milk", min: 0, max: 0},
		{name: "empty text", pattern: "milk", text: "", min: 0, max: 0},
		{name: "pattern longer than text", pattern: "buy milk today", text: "milk", min: 0, max: 0},
		{name: "no match", pattern: "xyz", text: "buy milk", min: 0, max: 0},
		{name: "prefix substring", pattern: "buy", text: "buy milk", min: 80, max: 99},
		{name: "word substring", pattern: "milk", text: "buy milk", min: 75, max: 99},
		{name: "scattered", pattern: "bmk", text: "buy milk", min: 1, max: 69},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Match(tt.pattern, tt.text)
			assert.GreaterOrEqual(t, score, tt.min)
			assert.LessOrEqual(t, score, tt.max)
		})
	}
}

func TestMatch_ContiguousBeatsScattered(t *testing.T) {
	contiguous := Match("milk", "buy milk")
	scattered := Match("milk", "make it look")
	assert.Greater(t, contiguous, scattered)
}

func TestMatch_PrefixBeatsMidWord(t *testing.T) {
	assert.Greater(t, Match("walk", "walk the dog"), Match("walk", "sidewalk chalk"))
}

func TestMatchMany(t *testing.T) {
	texts := []string{"Buy milk", "Walk dog", "Buy bread", "Call mom"}

	results := MatchMany("buy", texts, DefaultThreshold)
	if assert.Len(t, results, 2) {
		assert.Equal(t, 0, results[0].Index)
		assert.Equal(t, 2, results[1].Index)
	}

	assert.Empty(t, MatchMany("zzz", texts, DefaultThreshold))
}

func TestBest(t *testing.T) {
	texts := []string{"Buy milk", "Walk dog", "Buy bread"}

	r, ok := Best("dog", texts, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, 1, r.Index)

	_, ok = Best("nothing", texts, DefaultThreshold)
	assert.False(t, ok)

	// identical texts tie, so the reference is ambiguous
	_, ok = Best("same", []string{"same thing", "same thing"}, DefaultThreshold)
	assert.False(t, ok)
}
