package formatter

import "strings"

var guideTips = []string{
	"Use the Copy action to quickly share assignments",
	"Download assignments as text files for easy distribution",
	"Check your Homework History to reuse previous assignments",
	"All generated assignments are automatically saved",
}

// FormatGuide renders the three-step usage guide and tips.
func FormatGuide() string {
	var b strings.Builder
	b.WriteString(Header("How to Use the Homework Generator"))
	b.WriteString("\n\n")

	b.WriteString(StyleBold.Render("Step 1: Configure Your Assignment") + "\n")
	b.WriteString("  Fill in the required fields to customize your homework assignment:\n")
	b.WriteString("  " + StyleBlue.Render("Subject/Topic") + "  " + StyleBlue.Render("Length") + "  " + StyleBlue.Render("Education Level") + "\n\n")

	b.WriteString(StyleBold.Render("Step 2: Generate Your Homework") + "\n")
	b.WriteString("  Once all fields are completed, generate the homework. A complete\n")
	b.WriteString("  assignment is created from your selections.\n\n")

	b.WriteString(StyleBold.Render("Step 3: Use Your Assignment") + "\n")
	b.WriteString("  Your generated homework will include:\n")
	for _, s := range []string{
		"Clear assignment overview and instructions",
		"Learning objectives and goals",
		"Submission guidelines",
		"Assessment criteria",
	} {
		b.WriteString("  " + Dim("•") + " " + s + "\n")
	}
	b.WriteString("\n")

	b.WriteString(StyleHeader.Render("💡 Pro Tips") + "\n")
	for _, tip := range guideTips {
		b.WriteString("  " + Dim("•") + " " + tip + "\n")
	}
	return b.String()
}
