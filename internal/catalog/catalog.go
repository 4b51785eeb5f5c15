// Package catalog holds the fixed option lists offered by the assignment
// pickers. Labels double as selection values: choosing an option yields
// exactly its label string.
package catalog

// SurpriseMe is the catch-all subject shown above the categorized subjects.
const SurpriseMe = "🎲 Surprise Me!"

// Category groups related subject labels under a heading.
type Category struct {
	Name  string
	Items []string
}

var subjects = []Category{
	{Name: "🔬 Sciences", Items: []string{"🧬 Biology", "⚗️ Chemistry", "🚀 Physics", "🌍 Earth Science", "⭐ Astronomy"}},
	{Name: "🔢 Mathematics", Items: []string{"📊 Algebra", "📐 Geometry", "📈 Calculus", "📉 Statistics", "📏 Trigonometry"}},
	{Name: "📖 Humanities", Items: []string{"🏛️ History", "📝 English", "🤔 Philosophy", "👥 Sociology", "🗿 Anthropology"}},
	{Name: "🗣️ Languages", Items: []string{"🇪🇸 Spanish", "🇫🇷 French", "🇩🇪 German", "🇨🇳 Chinese", "🇯🇵 Japanese"}},
	{Name: "💻 Computer Science", Items: []string{"👨‍💻 Programming", "📊 Data Science", "🌐 Web Development", "🤖 Artificial Intelligence", "🔗 Networking"}},
	{Name: "🎨 Arts", Items: []string{"🎵 Music", "🖼️ Visual Arts", "🎭 Theater", "💃 Dance", "🎬 Film Studies"}},
}

var lengths = []string{
	"🚀 Lightning Quick! (150 - 300 words)",
	"📝 Just Right Size (300 - 600 words)",
	"📚 Getting Serious (600 - 900 words)",
	"📖 Epic Novel Mode! (900 - 1200 words)",
}

var educationLevels = []string{
	"🐣 Elementary Explorer",
	"🌟 Middle School Master",
	"🔥 High School Hero",
	"🎓 College Champion",
}

// Subjects returns the subject categories in display order.
// The returned slice is a copy; callers may modify it freely.
func Subjects() []Category {
	out := make([]Category, len(subjects))
	for i, c := range subjects {
		out[i] = Category{Name: c.Name, Items: append([]string(nil), c.Items...)}
	}
	return out
}

// SubjectLabels returns every selectable subject label, starting with
// SurpriseMe and followed by each category's items in order.
func SubjectLabels() []string {
	out := []string{SurpriseMe}
	for _, c := range subjects {
		out = append(out, c.Items...)
	}
	return out
}

// CategoryOf returns the category heading for a subject label.
func CategoryOf(subject string) (string, bool) {
	for _, c := range subjects {
		for _, item := range c.Items {
			if item == subject {
				return c.Name, true
			}
		}
	}
	return "", false
}

// Lengths returns the word-count bands in display order.
func Lengths() []string {
	return append([]string(nil), lengths...)
}

// EducationLevels returns the grade tiers in display order.
func EducationLevels() []string {
	return append([]string(nil), educationLevels...)
}

func contains(list []string, label string) bool {
	for _, v := range list {
		if v == label {
			return true
		}
	}
	return false
}

// HasSubject reports whether label is a selectable subject.
func HasSubject(label string) bool { return contains(SubjectLabels(), label) }

// HasLength reports whether label is a length band.
func HasLength(label string) bool { return contains(lengths, label) }

// HasEducationLevel reports whether label is an education level.
func HasEducationLevel(label string) bool { return contains(educationLevels, label) }
