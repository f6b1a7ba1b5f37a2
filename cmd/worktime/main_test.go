package main

import "testing"

func TestDBPathDefault(t *testing.T) {
	t.Setenv("WORKTIME_DB", "")
	if got := dbPath(); got != "worktime.db" {
		t.Errorf("dbPath() = %q, want %q", got, "worktime.db")
	}
}

func TestDBPathEnvOverride(t *testing.T) {
	t.Setenv("WORKTIME_DB", "/tmp/elsewhere.db")
	if got := dbPath(); got != "/tmp/elsewhere.db" {
		t.Errorf("dbPath() = %q, want the env override", got)
	}
}
