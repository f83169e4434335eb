package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGuide(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCheckCommandCleanCorpus(t *testing.T) {
	root := t.TempDir()
	writeGuide(t, root, "cli.md", "## CLI-1: One\n**Strength**: MUST\n")

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{root, "--no-color"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected clean run, got error: %v", err)
	}
}

func TestCheckCommandFailsOnErrors(t *testing.T) {
	root := t.TempDir()
	writeGuide(t, root, "cli.md", "## CLI-1: One\n**Strength**: MUST\n\n**See also**: CLI-999\n")

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{root, "--no-color"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error exit for dangling reference")
	}
}

func TestCheckCommandStrictEscalatesWarnings(t *testing.T) {
	root := t.TempDir()
	// Numbering gap at 1: only a warning
	writeGuide(t, root, "cli.md", "## CLI-2: Two\n**Strength**: MUST\n")

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{root, "--no-color"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("warnings alone should not fail: %v", err)
	}

	cmd = NewCheckCommand()
	cmd.SetArgs([]string{root, "--no-color", "--strict"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected strict mode to fail on warnings")
	}
}

func TestCheckCommandMissingRoot(t *testing.T) {
	cmd := NewCheckCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent")})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestCheckCommandInvalidFormat(t *testing.T) {
	root := t.TempDir()
	writeGuide(t, root, "cli.md", "## CLI-1: One\n**Strength**: MUST\n")

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{root, "--format", "xml"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestCheckCommandJSONFormat(t *testing.T) {
	root := t.TempDir()
	writeGuide(t, root, "cli.md", "## CLI-1: One\n**Strength**: MUST\n")

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{root, "--format", "json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected clean run, got error: %v", err)
	}
}

func TestCheckCommandExcludeFlag(t *testing.T) {
	root := t.TempDir()
	writeGuide(t, root, "cli.md", "## CLI-1: One\n**Strength**: MUST\n")
	writeGuide(t, root, "drafts/bad.md", "## CLI-1: Duplicate\n**Strength**: MUST\n")

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{root, "--no-color"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected duplicate-id failure without exclude")
	}

	cmd = NewCheckCommand()
	cmd.SetArgs([]string{root, "--no-color", "--exclude", "drafts/**"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected clean run with drafts excluded: %v", err)
	}
}
