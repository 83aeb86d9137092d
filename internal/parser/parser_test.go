package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineResults(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		whiteScore float64
		blackScore float64
	}{
		{"white wins colon", "Alice - Bob 1:0", 1, 0},
		{"white wins hyphen", "Alice - Bob 1-0", 1, 0},
		{"black wins colon", "Alice - Bob 0:1", 0, 1},
		{"black wins hyphen", "Alice - Bob 0-1", 0, 1},
		{"draw colon", "Alice - Bob 0.5:0.5", 0.5, 0.5},
		{"draw hyphen", "Alice - Bob 0.5-0.5", 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, ok := ParseLine(tt.line)
			require.True(t, ok)
			assert.Equal(t, "Alice", game.White)
			assert.Equal(t, "Bob", game.Black)
			assert.Equal(t, tt.whiteScore, game.WhiteScore)
			assert.Equal(t, tt.blackScore, game.BlackScore)
			assert.Empty(t, game.DateRaw)
			assert.Empty(t, game.Date)
		})
	}
}

func TestParseLineDate(t *testing.T) {
	game, ok := ParseLine("Alice - Bob 1-0 20250101")
	require.True(t, ok)
	assert.Equal(t, "20250101", game.DateRaw)
	assert.Equal(t, "Jan 1, 2025", game.Date)
	assert.Equal(t, "1-0", game.Result)
}

func TestParseLineNames(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		white string
		black string
	}{
		{"multi-word names", "Mary Ann - Bob Smith 0-1", "Mary Ann", "Bob Smith"},
		{"separator splits on first occurrence", "Alice - Bob - Jr 1-0", "Alice", "Bob - Jr"},
		{"surrounding whitespace trimmed", "   Alice - Bob 1-0   ", "Alice", "Bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, ok := ParseLine(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.white, game.White)
			assert.Equal(t, tt.black, game.Black)
		})
	}
}

func TestParseLineUnparsable(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too few tokens", "Alice Bob"},
		{"free text", "garbage text here"},
		{"missing separator", "Alice vs Bob 1-0"},
		{"unknown result", "Alice - Bob 2-0"},
		{"result without names", "1-0"},
		{"date but no result", "Alice - Bob 20250101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, ok := ParseLine(tt.line)
			assert.False(t, ok)
			assert.Nil(t, game)
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"new year", "20250101", "Jan 1, 2025"},
		{"end of year", "20251231", "Dec 31, 2025"},
		{"no leading zero in day", "19990907", "Sep 7, 1999"},
		{"month out of range", "20251301", ""},
		{"month zero", "20250001", ""},
		{"day out of range", "20250132", ""},
		{"day zero", "20250100", ""},
		{"too short", "2025011", ""},
		{"not numeric", "2025ab01", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.raw))
		})
	}
}
