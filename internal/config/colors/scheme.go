package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for headers, IDs, card borders)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
	Border string `yaml:"border"`

	// Status colors
	Pending string `yaml:"pending"`
	Done    string `yaml:"done"`
	Overdue string `yaml:"overdue"`

	// Priority colors
	High   string `yaml:"high"`
	Medium string `yaml:"medium"`
	Low    string `yaml:"low"`

	// Message colors
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fill(preset)
}

// MergeFrom overrides fields with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	for _, f := range c.fields(&other) {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
}

func (c *ColorScheme) fill(base *ColorScheme) {
	for _, f := range c.fields(base) {
		if *f.dst == "" {
			*f.dst = *f.src
		}
	}
}

type fieldPair struct {
	dst, src *string
}

// fields pairs every color of c with the same color of other
func (c *ColorScheme) fields(other *ColorScheme) []fieldPair {
	return []fieldPair{
		{&c.Preset, &other.Preset},
		{&c.Accent, &other.Accent},
		{&c.Title, &other.Title},
		{&c.Subtle, &other.Subtle},
		{&c.Normal, &other.Normal},
		{&c.Border, &other.Border},
		{&c.Pending, &other.Pending},
		{&c.Done, &other.Done},
		{&c.Overdue, &other.Overdue},
		{&c.High, &other.High},
		{&c.Medium, &other.Medium},
		{&c.Low, &other.Low},
		{&c.Success, &other.Success},
		{&c.Error, &other.Error},
	}
}
