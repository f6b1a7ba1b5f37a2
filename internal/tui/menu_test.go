package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/worktime/pkg/domain"
)

func keyMsg(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Menu, keys ...string) Menu {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = updated.(Menu)
		if !ok {
			t.Fatalf("Update returned %T, want Menu", updated)
		}
	}
	return m
}

func TestMenuSelectsFirstEntry(t *testing.T) {
	m := press(t, NewMenu(false), "enter")
	if _, ok := m.Choice().(domain.Status); !ok {
		t.Errorf("Choice() = %#v, want Status", m.Choice())
	}
}

func TestMenuNavigatesToStart(t *testing.T) {
	m := press(t, NewMenu(false), "j", "enter")
	if _, ok := m.Choice().(domain.Start); !ok {
		t.Errorf("Choice() = %#v, want Start", m.Choice())
	}
}

func TestMenuCursorStopsAtEdges(t *testing.T) {
	m := press(t, NewMenu(false), "k", "k")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving up at the top, want 0", m.cursor)
	}
	for i := 0; i < 20; i++ {
		m = press(t, m, "j")
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d after moving down past the end, want %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		m := press(t, NewMenu(false), k)
		if _, ok := m.Choice().(domain.Quit); !ok {
			t.Errorf("Choice() after %q = %#v, want Quit", k, m.Choice())
		}
	}
}

func TestReportSubmenu(t *testing.T) {
	m := press(t, NewMenu(false), "j", "j", "j", "enter") // Report
	if m.stage != stageReport {
		t.Fatalf("stage = %v, want report submenu", m.stage)
	}
	m = press(t, m, "j", "enter") // Week
	rep, ok := m.Choice().(domain.Report)
	if !ok {
		t.Fatalf("Choice() = %#v, want Report", m.Choice())
	}
	if rep.Kind != domain.ReportWeek {
		t.Errorf("Kind = %v, want ReportWeek", rep.Kind)
	}
}

func TestReportSubmenuEscGoesBack(t *testing.T) {
	m := press(t, NewMenu(false), "j", "j", "j", "enter", "esc")
	if m.stage != stageMenu {
		t.Errorf("stage = %v after esc, want main menu", m.stage)
	}
	if m.choice != nil {
		t.Errorf("choice = %#v after esc, want none", m.choice)
	}
}

func TestCorrectFormCompletes(t *testing.T) {
	m := press(t, NewMenu(false), "j", "j", "j", "j", "enter") // Correct
	if m.stage != stageCorrect {
		t.Fatalf("stage = %v, want correct form", m.stage)
	}
	m = press(t, m,
		"1",         // position
		"tab", "space", // field -> end
		"tab", "9", // hour
		"tab", "3", "0", // minute
		"enter",
	)
	want := domain.Correct{Position: 1, Field: domain.FieldEnd, Hour: 9, Minute: 30}
	if m.Choice() != want {
		t.Errorf("Choice() = %#v, want %#v", m.Choice(), want)
	}
}

func TestCorrectFormDefaultsPositionToMostRecent(t *testing.T) {
	m := press(t, NewMenu(false), "j", "j", "j", "j", "enter",
		"tab", "tab", "8", "tab", "1", "5", "enter")
	want := domain.Correct{Position: 0, Field: domain.FieldStart, Hour: 8, Minute: 15}
	if m.Choice() != want {
		t.Errorf("Choice() = %#v, want %#v", m.Choice(), want)
	}
}

func TestCorrectFormRejectsMissingHour(t *testing.T) {
	m := press(t, NewMenu(false), "j", "j", "j", "j", "enter", "enter")
	if m.stage != stageCorrect {
		t.Fatalf("form submitted without an hour")
	}
	if m.choice != nil {
		t.Fatalf("choice = %#v, want none until the form validates", m.choice)
	}
	if !strings.Contains(m.View(), "hour is required") {
		t.Errorf("view does not show the validation error:\n%s", m.View())
	}
}

func TestCorrectFormRejectsOutOfRangeHour(t *testing.T) {
	m := press(t, NewMenu(false), "j", "j", "j", "j", "enter",
		"tab", "tab", "9", "9", "tab", "0", "0", "enter")
	if m.choice != nil {
		t.Fatalf("choice = %#v, want rejection of hour 99", m.choice)
	}
	if !strings.Contains(m.View(), "hour must be 0-23") {
		t.Errorf("view does not show the range error:\n%s", m.View())
	}
}

func TestCorrectFormIgnoresLetters(t *testing.T) {
	m := press(t, NewMenu(false), "j", "j", "j", "j", "enter", "x", "7")
	if m.form.position != "7" {
		t.Errorf("position = %q, want letters ignored", m.form.position)
	}
}

func TestHelpStage(t *testing.T) {
	m := NewMenu(false)
	helpIdx := len(m.items) - 2
	for i := 0; i < helpIdx; i++ {
		m = press(t, m, "j")
	}
	m = press(t, m, "enter")
	if m.stage != stageHelp {
		t.Fatalf("stage = %v, want help", m.stage)
	}
	if !strings.Contains(m.View(), "report day|week|month") {
		t.Errorf("help view missing command summary:\n%s", m.View())
	}
	m = press(t, m, "x")
	if m.stage != stageMenu {
		t.Errorf("stage = %v after keypress in help, want main menu", m.stage)
	}
}

func TestCopyEntryOnlyWithReport(t *testing.T) {
	without := NewMenu(false)
	if strings.Contains(without.View(), "Copy last report") {
		t.Error("menu shows the copy entry before any report ran")
	}

	with := NewMenu(true)
	if !strings.Contains(with.View(), "Copy last report") {
		t.Fatal("menu missing the copy entry after a report")
	}
	// Copy sits right after Sql.
	m := press(t, with, "j", "j", "j", "j", "j", "j", "enter")
	if _, ok := m.Choice().(domain.CopyLast); !ok {
		t.Errorf("Choice() = %#v, want CopyLast", m.Choice())
	}
}

func TestChoiceDefaultsToQuit(t *testing.T) {
	m := NewMenu(false)
	if _, ok := m.Choice().(domain.Quit); !ok {
		t.Errorf("Choice() with no selection = %#v, want Quit", m.Choice())
	}
}

func TestEditDigits(t *testing.T) {
	tests := []struct {
		text, key string
		maxLen    int
		want      string
	}{
		{"", "5", 2, "5"},
		{"5", "9", 2, "59"},
		{"59", "1", 2, "59"},
		{"59", "backspace", 2, "5"},
		{"", "backspace", 2, ""},
		{"1", "a", 2, "1"},
		{"1", "enter", 2, "1"},
	}
	for _, tt := range tests {
		if got := editDigits(tt.text, tt.key, tt.maxLen); got != tt.want {
			t.Errorf("editDigits(%q, %q, %d) = %q, want %q", tt.text, tt.key, tt.maxLen, got, tt.want)
		}
	}
}

func TestMenuViewListsCommands(t *testing.T) {
	view := NewMenu(false).View()
	for _, label := range []string{"WORKTIME", "Status", "Start", "Stop", "Report", "Correct", "Sql", "Quit"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing %q:\n%s", label, view)
		}
	}
}
