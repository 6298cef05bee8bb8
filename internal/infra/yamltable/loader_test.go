package yamltable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/probtable/internal/domain"
)

func writeTable(t *testing.T, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadTable_ByName(t *testing.T) {
	root := t.TempDir()
	writeTable(t, filepath.Join(root, "tables"), "dice.yaml", `
name: Fair die
values: [1, 2, 3, 4, 5, 6]
probabilities: [0.25, 0.15, 0.15, 0.15, 0.15, 0.15]
`)

	l := NewLoader(root)
	tbl, err := l.LoadTable("dice")
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if tbl.Name != "Fair die" {
		t.Fatalf("expected name=Fair die, got=%s", tbl.Name)
	}
	if len(tbl.Values) != 6 {
		t.Fatalf("expected 6 values, got=%d", len(tbl.Values))
	}
}

func TestLoadTable_FileNameUnderTablesDir(t *testing.T) {
	root := t.TempDir()
	writeTable(t, filepath.Join(root, "data"), "coin.yml", "values: [0, 1]\nprobabilities: [0.5, 0.5]\n")

	l := NewLoader(root, WithTablesDir("data"))
	tbl, err := l.LoadTable("coin.yml")
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if tbl.Name != "coin" {
		t.Fatalf("expected name from file, got=%s", tbl.Name)
	}
}

func TestLoadTable_AbsolutePath(t *testing.T) {
	p := writeTable(t, t.TempDir(), "x.yaml", "name: X\nvalues: [3]\nprobabilities: [1]\n")

	tbl, err := NewLoader("/does/not/matter").LoadTable(p)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if tbl.Name != "X" {
		t.Fatalf("expected X, got %s", tbl.Name)
	}
}

func TestLoadTable_NotFound(t *testing.T) {
	_, err := NewLoader(t.TempDir()).LoadTable("missing")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestListTables_SortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "tables")
	writeTable(t, dir, "b.yaml", "name: zeta\nvalues: [1]\nprobabilities: [1]\n")
	writeTable(t, dir, "a.yaml", "values: [1]\nprobabilities: [1]\n")
	writeTable(t, dir, "notes.txt", "ignore me")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	refs, err := NewLoader(root).ListTables(root)
	if err != nil {
		t.Fatalf("ListTables error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d (%v)", len(refs), refs)
	}
	if refs[0].Name != "a" || refs[1].Name != "zeta" {
		t.Fatalf("unexpected order/names: %v", refs)
	}
}

func TestListTables_MissingDir(t *testing.T) {
	root := t.TempDir()
	_, err := NewLoader(root).ListTables(root)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
