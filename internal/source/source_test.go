package source

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/dotcommander/ccpulse/internal/usagelog"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestFileSourceJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "log.json",
		`{"2026-08-24": {"primaryHours": 2, "secondaryHours": 3}, "2026-08-23": 1.5}`)

	log, warnings, err := NewFileSource(path).Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if got := log["2026-08-24"]; got != (usagelog.DayRecord{PrimaryHours: 2, SecondaryHours: 3}) {
		t.Errorf("structured record = %+v", got)
	}
	if got := log["2026-08-23"]; got != (usagelog.DayRecord{SecondaryHours: 1.5}) {
		t.Errorf("legacy record = %+v", got)
	}
}

func TestFileSourceYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "log.yaml", "2026-08-24:\n  primaryHours: 1\n2026-08-23: 2\n")

	log, _, err := NewFileSource(path).Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if got := log["2026-08-24"]; got != (usagelog.DayRecord{PrimaryHours: 1}) {
		t.Errorf("yaml structured record = %+v", got)
	}
	if got := log["2026-08-23"]; got != (usagelog.DayRecord{SecondaryHours: 2}) {
		t.Errorf("yaml scalar record = %+v", got)
	}
}

func TestFileSourceGlobMerge(t *testing.T) {
	dir := t.TempDir()
	// Lexically later file wins on duplicate dates.
	writeFile(t, dir, "a.json", `{"2026-08-24": 1, "2026-08-20": 5}`)
	writeFile(t, dir, "b.json", `{"2026-08-24": {"primaryHours": 4}}`)

	log, _, err := NewFileSource(filepath.Join(dir, "*.json")).Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(log) != 2 {
		t.Fatalf("merged log has %d entries, want 2", len(log))
	}
	if got := log["2026-08-24"]; got != (usagelog.DayRecord{PrimaryHours: 4}) {
		t.Errorf("duplicate date = %+v, want later file's record", got)
	}
	if got := log["2026-08-20"]; got != (usagelog.DayRecord{SecondaryHours: 5}) {
		t.Errorf("merged record = %+v", got)
	}
}

func TestFileSourceWarningsOnBadRecords(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "log.json", `{"2026-08-24": "three", "2026-08-23": 2}`)

	log, warnings, err := NewFileSource(path).Fetch()
	if err != nil {
		t.Fatalf("a bad day record must not abort the run: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "2026-08-24") {
		t.Errorf("warnings = %v, want one mentioning 2026-08-24", warnings)
	}
	if got := log["2026-08-24"]; got != (usagelog.DayRecord{}) {
		t.Errorf("bad record = %+v, want zero record", got)
	}
	if got := log["2026-08-23"]; got != (usagelog.DayRecord{SecondaryHours: 2}) {
		t.Errorf("good record = %+v", got)
	}
}

func TestFileSourceErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `[1, 2]`)

	tests := []struct {
		name    string
		pattern string
	}{
		{"no matches", filepath.Join(dir, "nothing-*.json")},
		{"unusable document", filepath.Join(dir, "broken.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewFileSource(tt.pattern).Fetch()
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("Fetch error = %v, want ErrUnavailable", err)
			}
		})
	}
}

func TestCommandSourceMissingTool(t *testing.T) {
	src := NewCommandSource("ccpulse-no-such-tool")
	_, _, err := src.Fetch()
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Fetch error = %v, want ErrUnavailable", err)
	}
	if !strings.Contains(err.Error(), "npm install -g") {
		t.Errorf("error %q should recommend installing the data source", err)
	}
}

func TestCommandSourceRunsTool(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tool script requires a POSIX shell")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, DefaultCommand)
	payload := `{"2026-08-24": {"primaryHours": 1, "secondaryHours": 2}}`
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho '"+payload+"'\n"), 0755); err != nil {
		t.Fatalf("writing fake tool: %v", err)
	}
	t.Setenv("PATH", dir)

	log, warnings, err := NewCommandSource("").Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if got := log["2026-08-24"]; got != (usagelog.DayRecord{PrimaryHours: 1, SecondaryHours: 2}) {
		t.Errorf("record = %+v", got)
	}
}

func TestDefaultCommandName(t *testing.T) {
	if got := NewCommandSource("").Command; got != DefaultCommand {
		t.Errorf("empty name resolved to %q, want %q", got, DefaultCommand)
	}
	if got := NewCommandSource("custom").Command; got != "custom" {
		t.Errorf("explicit name resolved to %q", got)
	}
}
