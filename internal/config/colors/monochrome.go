package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Border: "#FFFFFF",

		Pending: "#D0D0D0",
		Done:    "#585858",
		Overdue: "#FFFFFF",

		High:   "#FFFFFF",
		Medium: "#D0D0D0",
		Low:    "#585858",

		Success: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}
