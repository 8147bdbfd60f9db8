package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jotter/internal/export"
	"jotter/internal/logs"
	"jotter/internal/tui/messages"
	"jotter/internal/workspace"
)

// opDoneMsg reports a finished write; the app reloads the view from the workspace
type opDoneMsg struct {
	status  messages.StatusMsg
	focusID string
}

func failed(action string, err error) opDoneMsg {
	logs.Logger.Printf("%s failed: %v", action, err)
	return opDoneMsg{status: messages.StatusMsg{Text: action + " failed: " + err.Error(), Error: true}}
}

func saveTagsCmd(ws *workspace.Workspace, msg messages.SaveTagsMsg) tea.Cmd {
	return func() tea.Msg {
		n, err := ws.SetTags(msg.NoteID, msg.Tags)
		if err != nil {
			return failed("Saving tags", err)
		}
		text := "Cleared tags on " + n.Title
		if len(msg.Tags) > 0 {
			text = fmt.Sprintf("Tagged %s: #%s", n.Title, strings.Join(msg.Tags, " #"))
		}
		return opDoneMsg{status: messages.StatusMsg{Text: text}, focusID: n.ID}
	}
}

func createNoteCmd(ws *workspace.Workspace, msg messages.CreateNoteMsg, now time.Time) tea.Cmd {
	return func() tea.Msg {
		n, err := ws.Create(msg.Note, now)
		if err != nil {
			return failed("Creating note", err)
		}
		return opDoneMsg{status: messages.StatusMsg{Text: "Created " + n.RelPath}, focusID: n.ID}
	}
}

func exportCmd(dir string, msg messages.ExportMsg, now time.Time) tea.Cmd {
	return func() tea.Msg {
		e, err := export.Format(msg.Notes, msg.Kind, now)
		if err != nil {
			return failed("Export", err)
		}

		if msg.Clipboard {
			if err := export.CopyToClipboard(e); err != nil {
				return failed("Copy", err)
			}
			return opDoneMsg{status: messages.StatusMsg{Text: fmt.Sprintf("Copied %d note(s) as %s", len(msg.Notes), msg.Kind)}}
		}

		path, err := export.Save(dir, e)
		if err != nil {
			return failed("Export", err)
		}
		return opDoneMsg{status: messages.StatusMsg{Text: fmt.Sprintf("Exported %d note(s) to %s", len(msg.Notes), path)}}
	}
}
