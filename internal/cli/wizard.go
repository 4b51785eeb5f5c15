package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/tulikamejora/homework-help/internal/catalog"
	"github.com/tulikamejora/homework-help/internal/cli/formatter"
	"github.com/tulikamejora/homework-help/internal/domain"
)

// topicCharLimit caps the optional custom topic.
const topicCharLimit = 80

// homeworkHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func homeworkHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// subjectOptions lists SurpriseMe followed by every categorized subject.
// The category is shown next to each label; the value is the bare label.
func subjectOptions() []huh.Option[string] {
	options := []huh.Option[string]{huh.NewOption(catalog.SurpriseMe, catalog.SurpriseMe)}
	for _, c := range catalog.Subjects() {
		for _, item := range c.Items {
			options = append(options, huh.NewOption(item+"  "+formatter.Dim(c.Name), item))
		}
	}
	return options
}

func labelOptions(labels []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(labels))
	for _, l := range labels {
		options = append(options, huh.NewOption(l, l))
	}
	return options
}

// wizardSelectField creates a single-select form over the catalog backing
// a required field. result holds the current selection on entry.
func wizardSelectField(field domain.Field, result *string) *huh.Form {
	var (
		title   string
		options []huh.Option[string]
	)
	switch field {
	case domain.FieldSubject:
		title, options = "What Subject?", subjectOptions()
	case domain.FieldLength:
		title, options = "How Long?", labelOptions(catalog.Lengths())
	case domain.FieldEducationLevel:
		title, options = "Which Education Level?", labelOptions(catalog.EducationLevels())
	default:
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Height(12).
				Value(result),
		),
	).WithTheme(homeworkHuhTheme()).WithShowHelp(false)
}

// wizardTopicInput creates a form for the optional custom topic.
func wizardTopicInput(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Custom Topic (optional)").
				Placeholder("e.g. photosynthesis").
				CharLimit(topicCharLimit).
				Value(result),
		),
	).WithTheme(homeworkHuhTheme()).WithShowHelp(false)
}
