package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tulikamejora/homework-help/internal/catalog"
)

func TestFormatSubjects_ListsEveryLabel(t *testing.T) {
	got := stripANSI(FormatSubjects())
	for _, label := range catalog.SubjectLabels() {
		assert.Contains(t, got, label)
	}
	for _, c := range catalog.Subjects() {
		assert.Contains(t, got, c.Name)
	}
}

func TestFormatLengthsAndLevels(t *testing.T) {
	lengths := stripANSI(FormatLengths())
	for _, l := range catalog.Lengths() {
		assert.Contains(t, lengths, l)
	}

	levels := stripANSI(FormatEducationLevels())
	for _, l := range catalog.EducationLevels() {
		assert.Contains(t, levels, l)
	}
}

func TestFormatGuide(t *testing.T) {
	got := stripANSI(FormatGuide())
	assert.Contains(t, got, "Step 1: Configure Your Assignment")
	assert.Contains(t, got, "Step 2: Generate Your Homework")
	assert.Contains(t, got, "Step 3: Use Your Assignment")
	assert.Contains(t, got, "Pro Tips")
	assert.Contains(t, got, "All generated assignments are automatically saved")
}
