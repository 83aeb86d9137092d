package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUSCFKFactor(t *testing.T) {
	tests := []struct {
		name      string
		games     int
		uscf      int
		expectedK int
	}{
		{"brand new player", 0, 1200, 40},
		{"last provisional game", 19, 1200, 40},
		{"first established game", 20, 1200, 32},
		{"provisional outranks rating tier", 5, 2300, 40},
		{"regular player", 50, 2099, 32},
		{"master floor", 20, 2100, 24},
		{"grandmaster", 200, 2600, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedK, USCFKFactor(tt.games, tt.uscf))
		})
	}
}

func TestUSCFDelta(t *testing.T) {
	tests := []struct {
		name     string
		ratingA  int
		ratingB  int
		score    float64
		kFactor  int
		expected int
	}{
		{"provisional win at even odds", 1200, 1200, 1, 40, 20},
		{"provisional loss at even odds", 1200, 1200, 0, 40, -20},
		{"established win at even odds", 1200, 1200, 1, 32, 16},
		{"master win at even odds", 2150, 2150, 1, 24, 12},
		{"draw moves nobody", 1200, 1200, 0.5, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, USCFDelta(tt.ratingA, tt.ratingB, tt.score, tt.kFactor))
		})
	}
}
