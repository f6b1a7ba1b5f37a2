// Package sqlshell hands the session database to an external sqlite3 shell
// for ad-hoc inspection.
package sqlshell

import (
	"fmt"
	"os"
	"os/exec"
)

// Run launches an interactive sqlite3 process on the database file and waits
// for it to exit.
func Run(dbPath string) error {
	bin, err := exec.LookPath("sqlite3")
	if err != nil {
		return fmt.Errorf("sqlite3 not found in PATH: %w", err)
	}
	cmd := exec.Command(bin, dbPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
