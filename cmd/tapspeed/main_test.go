package main

import (
	"os"
	"testing"
)

func TestRootCommandStructure(t *testing.T) {
	rootCmd := newRootCommand()

	if rootCmd.Use != "tapspeed" {
		t.Errorf("Use = %q, want %q", rootCmd.Use, "tapspeed")
	}

	want := map[string]bool{"update": false, "restore": false, "version": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	rootCmd := newRootCommand()

	for _, name := range []string{"quiet", "verbose", "config", "ext", "glob"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag %q", name)
		}
	}
}

func TestUpdateCommandFlags(t *testing.T) {
	rootCmd := newRootCommand()

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() != "update" {
			continue
		}
		for _, name := range []string{"dry-run", "backup"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("missing update flag %q", name)
			}
		}
		return
	}
	t.Fatal("update command not found")
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	rootCmd := newRootCommand()
	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(version) error = %v", err)
	}
}

func TestUpdateRunsOverTree(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile("part.tap", []byte("S500\n"), 0644); err != nil {
		t.Fatalf("Failed to write sample: %v", err)
	}

	rootCmd := newRootCommand()
	rootCmd.SetArgs([]string{"update", "1000", ".", "--quiet"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(update) error = %v", err)
	}

	data, err := os.ReadFile("part.tap")
	if err != nil {
		t.Fatalf("Failed to read back sample: %v", err)
	}
	if string(data) != "S1000 M3\n" {
		t.Errorf("part.tap = %q, want %q", data, "S1000 M3\n")
	}
}
