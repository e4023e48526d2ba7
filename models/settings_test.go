package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustAgeRange(t *testing.T) {
	tests := []struct {
		name  string
		start AgeRange
		field string
		value int
		want  AgeRange
	}{
		{"raise min below max", AgeRange{18, 35}, "min", 25, AgeRange{25, 35}},
		{"lower max above min", AgeRange{18, 35}, "max", 30, AgeRange{18, 30}},
		{"min crossing max pushes max up", AgeRange{18, 35}, "min", 35, AgeRange{35, 36}},
		{"min equal to max pushes max up", AgeRange{20, 25}, "min", 25, AgeRange{25, 26}},
		{"max crossing min pushes min down", AgeRange{30, 40}, "max", 30, AgeRange{29, 30}},
		{"min clamped to floor", AgeRange{20, 30}, "min", 10, AgeRange{18, 30}},
		{"min clamped below ceiling", AgeRange{20, 30}, "min", 99, AgeRange{59, 60}},
		{"max clamped to ceiling", AgeRange{20, 30}, "max", 99, AgeRange{20, 60}},
		{"max clamped above floor", AgeRange{20, 30}, "max", 10, AgeRange{18, 19}},
		{"unknown field is a no-op", AgeRange{18, 35}, "mid", 25, AgeRange{18, 35}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustAgeRange(tt.start, tt.field, tt.value)
			assert.Equal(t, tt.want, got)
			if tt.field == "min" || tt.field == "max" {
				assert.Less(t, got.Min, got.Max, "min must stay strictly below max")
			}
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "en", s.Language)
	assert.True(t, s.Notifications)
	assert.Equal(t, AgeRange{18, 35}, s.AgeRange)
	assert.Equal(t, 50, s.Distance)
}
