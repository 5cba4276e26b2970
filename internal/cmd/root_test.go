package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootRegistersCommands(t *testing.T) {
	expected := map[string]bool{"report": false, "check": false, "serve": false}

	for _, sub := range rootCmd.Commands() {
		if _, ok := expected[sub.Name()]; ok {
			expected[sub.Name()] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("rootCmd missing subcommand %s", name)
		}
	}
}

func TestReportSubcommands(t *testing.T) {
	expected := map[string]bool{"results": false, "appendices": false, "logic": false, "all": false}

	for _, sub := range reportCmd.Commands() {
		if _, ok := expected[sub.Name()]; ok {
			expected[sub.Name()] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("reportCmd missing subcommand %s", name)
		}
	}
}

func TestBuildCommandInfo(t *testing.T) {
	info := buildCommandInfo(rootCmd)

	if info.Name != "srpt" {
		t.Errorf("Name = %q, want srpt", info.Name)
	}

	var names []string
	for _, sub := range info.Subcommands {
		names = append(names, sub.Name)
		if sub.Name == "help" || sub.Name == "completion" {
			t.Errorf("buildCommandInfo() includes excluded command %s", sub.Name)
		}
	}
	joined := strings.Join(names, ",")
	for _, want := range []string{"report", "check", "serve"} {
		if !strings.Contains(joined, want) {
			t.Errorf("buildCommandInfo() subcommands = %v, missing %s", names, want)
		}
	}
}

func TestFlagRegistration(t *testing.T) {
	if f := rootCmd.PersistentFlags().Lookup("verbose"); f == nil || f.Shorthand != "v" {
		t.Error("rootCmd missing --verbose/-v")
	}
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("rootCmd missing --config")
	}
	if f := reportCmd.PersistentFlags().Lookup("survey"); f == nil || f.Shorthand != "s" {
		t.Error("reportCmd missing --survey/-s")
	}
	if reportAllCmd.Flags().Lookup("dir") == nil {
		t.Error("report all missing --dir")
	}
	if checkCmd.Flags().Lookup("format") == nil {
		t.Error("checkCmd missing --format")
	}
	if serveCmd.Flags().Lookup("timeout") == nil {
		t.Error("serveCmd missing --timeout")
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")

	if err := writeReport("<br>\ncontent", path); err != nil {
		t.Fatalf("writeReport() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<br>\ncontent" {
		t.Errorf("written content = %q, want %q", data, "<br>\ncontent")
	}
}
