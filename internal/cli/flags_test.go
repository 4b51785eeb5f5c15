package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tulikamejora/homework-help/internal/catalog"
)

func TestMatchCatalog(t *testing.T) {
	subjects := catalog.SubjectLabels()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"exact label", "🧬 Biology", "🧬 Biology", ""},
		{"case-insensitive fragment", "BIOLOGY", "🧬 Biology", ""},
		{"trimmed", "  calculus ", "📈 Calculus", ""},
		{"surprise me", "surprise", catalog.SurpriseMe, ""},
		{"ambiguous", "science", "", "ambiguous"},
		{"no match", "alchemy", "", "matches no option"},
		{"empty", "   ", "", "must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matchCatalog(tt.input, subjects)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogValue_ImplementsFlag(t *testing.T) {
	v := newCatalogValue("level", catalog.EducationLevels())
	assert.Equal(t, "level", v.Type())
	assert.Empty(t, v.String())

	require.NoError(t, v.Set("hero"))
	assert.Equal(t, "🔥 High School Hero", v.String())

	assert.Error(t, v.Set("school"))
	assert.Equal(t, "🔥 High School Hero", v.String(), "failed Set keeps previous value")
}
