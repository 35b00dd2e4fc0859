package main

import "testing"

func TestCommandTree(t *testing.T) {
	serve := serveCmd()
	if serve.Use != "serve" {
		t.Errorf("serve command Use = %q", serve.Use)
	}

	migrate := migrateCmd()
	if migrate.Use != "migrate" {
		t.Errorf("migrate command Use = %q", migrate.Use)
	}

	subs := map[string]bool{}
	for _, c := range migrate.Commands() {
		subs[c.Name()] = true
	}
	for _, want := range []string{"up", "status"} {
		if !subs[want] {
			t.Errorf("migrate is missing %q subcommand", want)
		}
	}
}

func TestMigrateUpHasDirFlag(t *testing.T) {
	migrate := migrateCmd()
	for _, c := range migrate.Commands() {
		if f := c.Flags().Lookup("dir"); f == nil {
			t.Errorf("%s is missing --dir flag", c.Name())
		}
	}
}
