package commands

import (
	"testing"
)

func TestListCommand(t *testing.T) {
	root := t.TempDir()
	writeGuide(t, root, "cli.md", "## CLI-1: One\n**Strength**: MUST\n\n## CLI-2: Two\n**Strength**: AVOID\n")
	writeGuide(t, root, "cargo.md", "## CG-P-1: Cargo\n**Strength**: SHOULD\n")

	cmd := NewListCommand()
	cmd.SetArgs([]string{root, "--no-color"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}
}

func TestListCommandPrefixFilter(t *testing.T) {
	root := t.TempDir()
	writeGuide(t, root, "cli.md", "## CLI-1: One\n**Strength**: MUST\n")

	cmd := NewListCommand()
	cmd.SetArgs([]string{root, "--prefix", "CG-P", "--no-color"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}
}

func TestListCommandJSON(t *testing.T) {
	root := t.TempDir()
	writeGuide(t, root, "cli.md", "---\ntitle: CLI Guide\n---\n\n## CLI-1: One\n**Strength**: MUST\n")

	cmd := NewListCommand()
	cmd.SetArgs([]string{root, "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list --json failed: %v", err)
	}
}
