package tui

import "jotter/internal/tui/messages"

// Re-exported so callers outside the tui packages can post into the program
type NotesChangedMsg = messages.NotesChangedMsg
type StatusMsg = messages.StatusMsg
