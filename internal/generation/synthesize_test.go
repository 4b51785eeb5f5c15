package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tulikamejora/homework-help/internal/catalog"
	"github.com/tulikamejora/homework-help/internal/domain"
)

func bareConfig() domain.Configuration {
	return domain.Configuration{
		Subject:        "Biology",
		Length:         "Short (300-600 words)",
		EducationLevel: "Middle School",
	}
}

func TestSynthesize_ExampleScenario(t *testing.T) {
	doc, err := Synthesize(bareConfig())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "# Cell Structure and Function Research Project\n"))
	assert.Contains(t, doc, "assignment focusing on Biology.")
	assert.Contains(t, doc, "- Understand key concepts in Biology")
	assert.Contains(t, doc, "- Follow the short (300-600 words) format")
	assert.Contains(t, doc, "- Use appropriate middle school language level")
	assert.True(t, strings.HasSuffix(doc, "Good luck with your assignment!"))
}

func TestSynthesize_Deterministic(t *testing.T) {
	cfgs := []domain.Configuration{
		bareConfig(),
		{Subject: "🧬 Biology", Length: catalog.Lengths()[0], EducationLevel: catalog.EducationLevels()[3]},
		{Subject: catalog.SurpriseMe, Length: catalog.Lengths()[2], EducationLevel: catalog.EducationLevels()[1], CustomTopic: "ignored"},
	}
	for _, cfg := range cfgs {
		first, err := Synthesize(cfg)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := Synthesize(cfg)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestSynthesize_CatalogLabelsFallBack(t *testing.T) {
	cfg := domain.Configuration{
		Subject:        "🧬 Biology",
		Length:         "📝 Just Right Size (300 - 600 words)",
		EducationLevel: "🌟 Middle School Master",
	}
	doc, err := Synthesize(cfg)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "# Custom Assignment\n"))
	// Length and level descriptors miss and render empty.
	assert.Contains(t, doc, "This is a   assignment focusing on 🧬 Biology.")
	assert.Contains(t, doc, "- Follow the 📝 just right size (300 - 600 words) format")
	assert.Contains(t, doc, "- Use appropriate 🌟 middle school master language level")
}

func TestSynthesize_DescriptorsMatchBareKeys(t *testing.T) {
	cfg := domain.Configuration{
		Subject:        "Physics",
		Length:         "Long (900 - 1200 words)",
		EducationLevel: "College/University",
	}
	doc, err := Synthesize(cfg)
	require.NoError(t, err)
	assert.Contains(t, doc, "# Newton's Laws of Motion Problem Set")
	assert.Contains(t, doc, "This is a comprehensive college assignment focusing on Physics.")
}

func TestSynthesize_FixedSections(t *testing.T) {
	doc, err := Synthesize(bareConfig())
	require.NoError(t, err)

	sections := []string{
		"## Assignment Overview",
		"## Instructions",
		"## Learning Objectives",
		"## Submission Guidelines",
		"## Assessment Criteria",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(doc, s)
		require.GreaterOrEqual(t, idx, 0, "missing section %s", s)
		assert.Greater(t, idx, last, "section %s out of order", s)
		last = idx
	}
	assert.Contains(t, doc, "4. Include proper citations and references")
}

func TestSynthesize_Incomplete(t *testing.T) {
	_, err := Synthesize(domain.Configuration{Subject: "Biology"})
	assert.ErrorIs(t, err, domain.ErrIncomplete)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Literary Analysis Essay", Title("English"))
	assert.Equal(t, DefaultTitle, Title("📝 English"))
}
