// Package tui is the interactive front end: a select menu that yields one
// command per run. It never touches the store.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/worktime/pkg/domain"
)

type stage int

const (
	stageMenu stage = iota
	stageReport
	stageCorrect
	stageHelp
)

type menuEntry int

const (
	entryStatus menuEntry = iota
	entryStart
	entryStop
	entryReport
	entryCorrect
	entrySQL
	entryCopy
	entryHelp
	entryQuit
)

func (e menuEntry) label() string {
	switch e {
	case entryStatus:
		return "Status"
	case entryStart:
		return "Start"
	case entryStop:
		return "Stop"
	case entryReport:
		return "Report"
	case entryCorrect:
		return "Correct"
	case entrySQL:
		return "Sql"
	case entryCopy:
		return "Copy last report"
	case entryHelp:
		return "Help"
	case entryQuit:
		return "Quit"
	default:
		panic("unknown menu entry")
	}
}

func (e menuEntry) desc() string {
	switch e {
	case entryStatus:
		return "is a session running?"
	case entryStart:
		return "start tracking time"
	case entryStop:
		return "stop tracking time"
	case entryReport:
		return "total hours for a period"
	case entryCorrect:
		return "fix a recorded timestamp"
	case entrySQL:
		return "inspect the database with sqlite3"
	case entryCopy:
		return "put the last report on the clipboard"
	case entryHelp:
		return "show help"
	case entryQuit:
		return "leave"
	default:
		panic("unknown menu entry")
	}
}

var reportKinds = []domain.ReportKind{domain.ReportDay, domain.ReportWeek, domain.ReportMonth}

// correctForm holds the in-progress correction input. Focus order: position,
// field, hour, minute.
type correctForm struct {
	focus    int
	position string
	field    domain.Field
	hour     string
	minute   string
	errMsg   string
}

// Menu is the root Bubbletea model. After Run it carries the chosen command
// in choice; nil means the user quit.
type Menu struct {
	stage        stage
	items        []menuEntry
	cursor       int
	reportCursor int
	form         correctForm
	choice       domain.Command
}

// NewMenu builds the menu. hasReport adds the clipboard entry, which only
// makes sense once a report has been produced in this run.
func NewMenu(hasReport bool) Menu {
	items := []menuEntry{entryStatus, entryStart, entryStop, entryReport, entryCorrect, entrySQL}
	if hasReport {
		items = append(items, entryCopy)
	}
	items = append(items, entryHelp, entryQuit)
	return Menu{items: items}
}

// Choice returns the selected command, or Quit if none was selected.
func (m Menu) Choice() domain.Command {
	if m.choice == nil {
		return domain.Quit{}
	}
	return m.choice
}

func (m Menu) Init() tea.Cmd {
	return nil
}

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		m.choice = domain.Quit{}
		return m, tea.Quit
	}
	switch m.stage {
	case stageMenu:
		return m.updateMenu(key.String())
	case stageReport:
		return m.updateReport(key.String())
	case stageCorrect:
		return m.updateCorrect(key.String())
	case stageHelp:
		m.stage = stageMenu
		return m, nil
	default:
		panic("unknown stage")
	}
}

func (m Menu) updateMenu(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "q", "esc":
		m.choice = domain.Quit{}
		return m, tea.Quit
	case "enter":
		switch m.items[m.cursor] {
		case entryStatus:
			m.choice = domain.Status{}
		case entryStart:
			m.choice = domain.Start{}
		case entryStop:
			m.choice = domain.Stop{}
		case entryReport:
			m.stage = stageReport
			m.reportCursor = 0
			return m, nil
		case entryCorrect:
			m.stage = stageCorrect
			m.form = correctForm{}
			return m, nil
		case entrySQL:
			m.choice = domain.SQL{}
		case entryCopy:
			m.choice = domain.CopyLast{}
		case entryHelp:
			m.stage = stageHelp
			return m, nil
		case entryQuit:
			m.choice = domain.Quit{}
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m Menu) updateReport(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if m.reportCursor < len(reportKinds)-1 {
			m.reportCursor++
		}
	case "k", "up":
		if m.reportCursor > 0 {
			m.reportCursor--
		}
	case "esc":
		m.stage = stageMenu
	case "enter":
		m.choice = domain.Report{Kind: reportKinds[m.reportCursor]}
		return m, tea.Quit
	}
	return m, nil
}

func (m Menu) updateCorrect(key string) (tea.Model, tea.Cmd) {
	f := &m.form
	switch key {
	case "esc":
		m.stage = stageMenu
		return m, nil
	case "tab", "down":
		f.focus = (f.focus + 1) % 4
		return m, nil
	case "shift+tab", "up":
		f.focus = (f.focus + 3) % 4
		return m, nil
	case "enter":
		cmd, err := f.command()
		if err != nil {
			f.errMsg = err.Error()
			return m, nil
		}
		m.choice = cmd
		return m, tea.Quit
	}
	if f.focus == 1 {
		// The field selector toggles rather than edits.
		switch key {
		case "left", "right", " ":
			if f.field == domain.FieldStart {
				f.field = domain.FieldEnd
			} else {
				f.field = domain.FieldStart
			}
		}
		return m, nil
	}
	switch f.focus {
	case 0:
		f.position = editDigits(f.position, key, 3)
	case 2:
		f.hour = editDigits(f.hour, key, 2)
	case 3:
		f.minute = editDigits(f.minute, key, 2)
	}
	return m, nil
}

// command validates the form. Range checks live here, not in the store: the
// store persists whatever correction it is given.
func (f *correctForm) command() (domain.Command, error) {
	pos := 0
	if f.position != "" {
		pos, _ = strconv.Atoi(f.position) //nolint:errcheck // digits-only input
	}
	if f.hour == "" {
		return nil, fmt.Errorf("hour is required")
	}
	hour, _ := strconv.Atoi(f.hour) //nolint:errcheck // digits-only input
	if hour > 23 {
		return nil, fmt.Errorf("hour must be 0-23")
	}
	if f.minute == "" {
		return nil, fmt.Errorf("minute is required")
	}
	minute, _ := strconv.Atoi(f.minute) //nolint:errcheck // digits-only input
	if minute > 59 {
		return nil, fmt.Errorf("minute must be 0-59")
	}
	return domain.Correct{Position: pos, Field: f.field, Hour: hour, Minute: minute}, nil
}

func (m Menu) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("WORKTIME"))
	b.WriteString("\n\n")

	switch m.stage {
	case stageMenu:
		for i, item := range m.items {
			cursor := "  "
			// Pad before styling so ANSI codes don't skew the column.
			label := fmt.Sprintf("%-18s", item.label())
			if i == m.cursor {
				cursor = accentStyle.Render("> ")
				label = selectedStyle.Render(label)
			}
			b.WriteString(cursor + label + " " + dimStyle.Render(item.desc()) + "\n")
		}
		b.WriteString(helpStyle.Render("j/k move · enter select · q quit"))
	case stageReport:
		b.WriteString("What report do you want?\n\n")
		for i, kind := range reportKinds {
			cursor := "  "
			label := kind.String()
			if i == m.reportCursor {
				cursor = accentStyle.Render("> ")
				label = selectedStyle.Render(label)
			}
			b.WriteString(cursor + label + "\n")
		}
		b.WriteString(helpStyle.Render("enter select · esc back"))
	case stageCorrect:
		b.WriteString(m.form.view())
	case stageHelp:
		b.WriteString(helpView)
	default:
		panic("unknown stage")
	}
	return b.String()
}

func (f *correctForm) view() string {
	var b strings.Builder
	b.WriteString("Correct a session timestamp\n\n")
	rows := []struct {
		label string
		value string
	}{
		{"position", f.position + dimStyle.Render("  (0 = most recent)")},
		{"field", f.field.String()},
		{"hour", f.hour},
		{"minute", f.minute},
	}
	for i, row := range rows {
		cursor := "  "
		label := fmt.Sprintf("%-10s", row.label)
		if i == f.focus {
			cursor = accentStyle.Render("> ")
			label = selectedStyle.Render(label)
		}
		b.WriteString(cursor + label + " " + row.value + "\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(f.errMsg) + "\n")
	}
	b.WriteString(helpStyle.Render("tab next · space toggle field · enter apply · esc back"))
	return b.String()
}

var helpView = strings.Join([]string{
	"worktime tracks your work sessions in a local SQLite file.",
	"",
	"  status              is a session running?",
	"  start               open a session now",
	"  stop                close the open session now",
	"  report day|week|month   total hours since the period start",
	"  correct             overwrite a session's start or end time",
	"  sql                 open the database in sqlite3",
	"",
	dimStyle.Render("press any key to go back"),
}, "\n")

// Prompt runs the menu to completion and returns the chosen command. A quit
// keypress or an aborted program yields Quit.
func Prompt(hasReport bool) (domain.Command, error) {
	out, err := tea.NewProgram(NewMenu(hasReport)).Run()
	if err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	final, ok := out.(Menu)
	if !ok {
		return domain.Quit{}, nil
	}
	return final.Choice(), nil
}
