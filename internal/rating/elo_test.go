package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedScore(t *testing.T) {
	tests := []struct {
		name     string
		ratingA  float64
		ratingB  float64
		expected float64
	}{
		{"equal ratings", 1200, 1200, 0.5},
		{"400 points ahead", 1600, 1200, 10.0 / 11.0},
		{"400 points behind", 1200, 1600, 1.0 / 11.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ExpectedScore(tt.ratingA, tt.ratingB), 1e-9)
		})
	}
}

func TestEloDelta(t *testing.T) {
	tests := []struct {
		name     string
		ratingA  int
		ratingB  int
		score    float64
		expected int
	}{
		{"equal ratings win", 1200, 1200, 1, 16},
		{"equal ratings draw", 1200, 1200, 0.5, 0},
		{"equal ratings loss", 1200, 1200, 0, -16},
		{"favorite loses from 1216", 1216, 1184, 0, -17},
		{"underdog wins from 1184", 1184, 1216, 1, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EloDelta(tt.ratingA, tt.ratingB, tt.score))
		})
	}
}

func TestEloDeltaNearZeroSum(t *testing.T) {
	pairs := []struct {
		ratingA, ratingB int
		score            float64
	}{
		{1200, 1200, 1},
		{1184, 1216, 0},
		{1500, 1100, 1},
		{2100, 1300, 0},
		{1350, 1349, 0.5},
	}

	for _, p := range pairs {
		deltaA := EloDelta(p.ratingA, p.ratingB, p.score)
		deltaB := EloDelta(p.ratingB, p.ratingA, 1-p.score)

		sum := deltaA + deltaB
		assert.LessOrEqual(t, sum, 1, "ratings %d vs %d", p.ratingA, p.ratingB)
		assert.GreaterOrEqual(t, sum, -1, "ratings %d vs %d", p.ratingA, p.ratingB)

		if p.ratingA == p.ratingB {
			assert.Zero(t, sum)
		}
	}
}
