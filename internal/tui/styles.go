package tui

import "jotter/internal/tui/theme"

var (
	TitleStyle     = theme.Title
	StatusBarStyle = theme.StatusBar
	HelpStyle      = theme.HelpHint
	StatusOkStyle  = theme.Ok
	StatusErrStyle = theme.Error
)
