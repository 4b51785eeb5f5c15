// Package generation turns a complete Configuration into an assignment
// document. Synthesize is the pure template; Generator runs it behind an
// artificial delay as a cancellable task.
package generation

import (
	"fmt"
	"strings"

	"github.com/tulikamejora/homework-help/internal/domain"
)

// DefaultTitle is used when the subject has no entry in subjectTitles.
const DefaultTitle = "Custom Assignment"

// Descriptor tables are keyed by bare names, not by catalog labels, so
// picker selections usually miss: subjects fall back to DefaultTitle and
// lengths/levels render empty. This mirrors the established output and is
// kept until the catalogs and tables are reconciled.
var (
	subjectTitles = map[string]string{
		"Biology":          "Cell Structure and Function Research Project",
		"Chemistry":        "Chemical Reactions Laboratory Report",
		"Physics":          "Newton's Laws of Motion Problem Set",
		"Mathematics":      "Quadratic Equations Practice Problems",
		"History":          "World War II Timeline Analysis",
		"English":          "Literary Analysis Essay",
		"Computer Science": "Algorithm Design Challenge",
		"Art":              "Color Theory Portfolio Project",
	}

	levelDescriptors = map[string]string{
		"Elementary School":  "elementary",
		"Middle School":      "middle school",
		"High School":        "high school",
		"College/University": "college",
	}

	lengthDescriptors = map[string]string{
		"Very Short (150 - 300 words)": "brief",
		"Short (300 - 600 words)":      "short",
		"Medium (600 - 900 words)":     "medium-length",
		"Long (900 - 1200 words)":      "comprehensive",
	}
)

// Title returns the document heading for a subject.
func Title(subject string) string {
	if t, ok := subjectTitles[subject]; ok {
		return t
	}
	return DefaultTitle
}

// Synthesize renders the assignment document for cfg. It is deterministic:
// identical configurations always produce byte-identical output.
func Synthesize(cfg domain.Configuration) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return render(cfg), nil
}

func render(cfg domain.Configuration) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", Title(cfg.Subject))

	b.WriteString("## Assignment Overview\n")
	fmt.Fprintf(&b, "This is a %s %s assignment focusing on %s.\n\n",
		lengthDescriptors[cfg.Length], levelDescriptors[cfg.EducationLevel], cfg.Subject)

	b.WriteString("## Instructions\n")
	b.WriteString("1. Research the topic thoroughly using credible sources\n")
	b.WriteString("2. Organize your findings into a clear structure\n")
	b.WriteString("3. Present your work in the specified format\n")
	b.WriteString("4. Include proper citations and references\n\n")

	b.WriteString("## Learning Objectives\n")
	fmt.Fprintf(&b, "- Understand key concepts in %s\n", cfg.Subject)
	b.WriteString("- Develop critical thinking skills\n")
	b.WriteString("- Practice academic writing and research\n")
	b.WriteString("- Apply knowledge to real-world scenarios\n\n")

	b.WriteString("## Submission Guidelines\n")
	fmt.Fprintf(&b, "- Follow the %s format\n", strings.ToLower(cfg.Length))
	fmt.Fprintf(&b, "- Use appropriate %s language level\n", strings.ToLower(cfg.EducationLevel))
	b.WriteString("- Submit by the specified deadline\n")
	b.WriteString("- Include all required components\n\n")

	b.WriteString("## Assessment Criteria\n")
	b.WriteString("Your work will be evaluated based on:\n")
	b.WriteString("- Content accuracy and depth\n")
	b.WriteString("- Organization and clarity\n")
	b.WriteString("- Use of evidence and sources\n")
	b.WriteString("- Meeting length requirements\n")
	b.WriteString("- Appropriate academic level\n\n")

	b.WriteString("Good luck with your assignment!")
	return b.String()
}
