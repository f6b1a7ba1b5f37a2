package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"

	"github.com/naveenspark/worktime/internal/cli"
	"github.com/naveenspark/worktime/internal/sqlshell"
	"github.com/naveenspark/worktime/internal/store"
	"github.com/naveenspark/worktime/internal/tracker"
	"github.com/naveenspark/worktime/internal/tui"
	"github.com/naveenspark/worktime/pkg/clock"
	"github.com/naveenspark/worktime/pkg/domain"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// dbPath returns the session database location: $WORKTIME_DB or worktime.db
// in the working directory. The file is created on first run.
func dbPath() string {
	if p := os.Getenv("WORKTIME_DB"); p != "" {
		return p
	}
	return "worktime.db"
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("WORKTIME_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("worktime " + version)
			return nil
		case "help", "--help", "-h":
			printUsage()
			return nil
		}
	}

	logger := newLogger()
	path := dbPath()

	st, err := store.Open(path, store.Options{Logger: logger})
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	ctrl := tracker.New(st, clock.System(), func() error {
		return sqlshell.Run(path)
	})
	sink := cli.NewConsole(os.Stdout, os.Stderr)

	if len(os.Args) > 1 {
		parsed, err := cli.Parse(os.Args[1:])
		if err != nil {
			printUsage()
			return err
		}
		msg, execErr := ctrl.Execute(parsed.Cmd)
		sink.Print(parsed.Cmd, msg, execErr)
		if parsed.Copy && execErr == nil {
			if err := clipboard.WriteAll(msg); err != nil {
				logger.Warn("clipboard unavailable", "err", err)
			}
		}
		return nil
	}

	return interact(ctrl, sink)
}

// interact loops the select menu until Quit, executing one command per pass.
// Errors from individual commands are rendered and the loop continues; only
// front-end failures end the session.
func interact(ctrl *tracker.Controller, sink cli.Sink) error {
	lastReport := ""
	for {
		cmd, err := tui.Prompt(lastReport != "")
		if err != nil {
			return err
		}
		switch cmd.(type) {
		case domain.Quit:
			return nil
		case domain.CopyLast:
			copyErr := clipboard.WriteAll(lastReport)
			sink.Print(cmd, "Copied last report to clipboard", copyErr)
		default:
			msg, execErr := ctrl.Execute(cmd)
			if _, isReport := cmd.(domain.Report); isReport && execErr == nil {
				lastReport = msg
			}
			sink.Print(cmd, msg, execErr)
		}
		fmt.Print("\n")
	}
}

func printUsage() {
	fmt.Println(`worktime - personal work-time tracker

usage:
  worktime                                  interactive menu
  worktime status                           current tracking state
  worktime start                            start a work session
  worktime stop                             stop the running session
  worktime report [day|week|month] [--copy] total hours since period start
  worktime correct <pos> <start|end> <HH:MM>  fix a recorded timestamp
  worktime sql                              open the database in sqlite3
  worktime version                          print version

environment:
  WORKTIME_DB      database file (default worktime.db)
  WORKTIME_DEBUG   enable debug logging`)
}
