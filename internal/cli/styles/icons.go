package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconFolder   = "\uf07b" // folder
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconLogs     = "\uf0f6" // file-text
	IconWindow   = "\uf2d2" // window
	IconPlug     = "\uf1e6" // plug
)
