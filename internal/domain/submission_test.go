package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{"first and last", "Jean Dupont", "Jean", "Dupont"},
		{"single token", "Jean", "Jean", ""},
		{"compound family name", "Marie de la Fontaine", "Marie", "de la Fontaine"},
		{"surrounding whitespace", "  Jean   Dupont  ", "Jean", "Dupont"},
		{"empty", "", "", ""},
		{"whitespace only", "   ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.input)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
