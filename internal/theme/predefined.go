package theme

import "todo-list/internal/domain"

func GetPredefinedThemes() map[domain.ThemeMode]*Theme {
	return map[domain.ThemeMode]*Theme{
		domain.ThemeLight: LightTheme(),
		domain.ThemeDark:  DarkTheme(),
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name: "light",

		// semantic
		Primary:   "#5B3CC4",
		Secondary: "#2563EB",
		Success:   "#059669",
		Error:     "#DC2626",
		Warning:   "#D97706",

		// text
		TextPrimary:   "#1F2937",
		TextSecondary: "#6B7280",
		TextMuted:     "#9CA3AF",

		// background
		BgPrimary:   "#FFFFFF",
		BgSecondary: "#F3F4F6",

		// task state
		TaskCompleted: "#9CA3AF",
		TaskActive:    "#1F2937",
		TaskRemoving:  "#DC2626",

		// UI element
		BorderColor:  "#5B3CC4",
		SelectedBg:   "#5B3CC4",
		SelectedFg:   "#FFFFFF",
		HeaderBg:     "#5B3CC4",
		HeaderFg:     "#FFFFFF",
		TabActiveBg:  "#2563EB",
		TabActiveFg:  "#FFFFFF",
		Separator:    "#D1D5DB",
		HelpText:     "#6B7280",
		Announcement: "#059669",
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",

		// semantic
		Primary:   "#BB9AF7",
		Secondary: "#7AA2F7",
		Success:   "#9ECE6A",
		Error:     "#F7768E",
		Warning:   "#E0AF68",

		// text
		TextPrimary:   "#C0CAF5",
		TextSecondary: "#9AA5CE",
		TextMuted:     "#565F89",

		// background
		BgPrimary:   "#1A1B26",
		BgSecondary: "#24283B",

		// task state
		TaskCompleted: "#565F89",
		TaskActive:    "#C0CAF5",
		TaskRemoving:  "#F7768E",

		// UI element
		BorderColor:  "#BB9AF7",
		SelectedBg:   "#BB9AF7",
		SelectedFg:   "#1A1B26",
		HeaderBg:     "#BB9AF7",
		HeaderFg:     "#1A1B26",
		TabActiveBg:  "#7AA2F7",
		TabActiveFg:  "#1A1B26",
		Separator:    "#3B4261",
		HelpText:     "#565F89",
		Announcement: "#9ECE6A",
	}
}
