package theme

type Theme struct {
	Name string

	// semantic
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// background
	BgPrimary   string
	BgSecondary string

	// task state
	TaskCompleted string
	TaskActive    string
	TaskRemoving  string

	// UI element
	BorderColor  string
	SelectedBg   string
	SelectedFg   string
	HeaderBg     string
	HeaderFg     string
	TabActiveBg  string
	TabActiveFg  string
	Separator    string
	HelpText     string
	Announcement string
}
