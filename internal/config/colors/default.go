package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Border: "#5F87D7",

		// Status
		Pending: "#00AFFF",
		Done:    "#5FD75F",
		Overdue: "#FF5F5F",

		// Priority
		High:   "#F97316",
		Medium: "#EAB308",
		Low:    "#22C55E",

		// Messages
		Success: "#5FD75F",
		Error:   "#FF0000",
	}
}
