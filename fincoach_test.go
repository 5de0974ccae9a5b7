package fincoach_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"fincoach"
)

func TestMonthKey(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2024-03-14", "2024-03"},
		{"2024-12-01", "2024-12"},
		{"2024-03", "2024-03"},
		{"bad", "bad"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.expected, fincoach.MonthKey(tt.date))
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range fincoach.Categories {
		assert.True(t, fincoach.ValidCategory(string(c)))
	}
	assert.False(t, fincoach.ValidCategory("Pets"))
	assert.False(t, fincoach.ValidCategory("coffee")) // case-sensitive
}
