package config

// GetTheme returns a predefined theme palette by name. Colors are
// terminal color values understood by lipgloss (ANSI 256 codes or hex).
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"title":     "213", // Purple
			"border":    "213", // Purple
			"selected":  "114", // Green
			"muted":     "243", // Grey
			"date":      "245", // Light Grey
			"highlight": "220", // Yellow
			"status":    "39",  // Blue
		},
		"dark": {
			"title":     "105", // Dark Blue
			"border":    "105", // Dark Blue
			"selected":  "78",  // Dark Green
			"muted":     "241", // Medium Grey
			"date":      "243", // Grey
			"highlight": "214", // Dark Yellow
			"status":    "33",  // Dark Blue
		},
		"light": {
			"title":     "135", // Light Purple
			"border":    "135", // Light Purple
			"selected":  "150", // Light Green
			"muted":     "248", // Grey
			"date":      "250", // Lighter Grey
			"highlight": "222", // Light Yellow
			"status":    "117", // Light Blue
		},
		"monochrome": {
			"title":     "255", // Bright White
			"border":    "245", // Light Grey
			"selected":  "252", // White
			"muted":     "241", // Medium Grey
			"date":      "245", // Light Grey
			"highlight": "255", // Bright White
			"status":    "248", // Grey
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}
	return themes["default"]
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}

func validTheme(name string) bool {
	for _, n := range ThemeNames() {
		if n == name {
			return true
		}
	}
	return false
}
