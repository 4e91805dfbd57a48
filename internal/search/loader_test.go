package search

import (
	"os"
	"path/filepath"
	"testing"
)

func writeChunkFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoadCorpus_ListShape(t *testing.T) {
	dir := t.TempDir()
	writeChunkFile(t, dir, "dlg.json", `[
		{"chunk_id": "dlg-1", "text": "DLG is capped at five percent."},
		{"chunk_id": "dlg-2", "text": "The cap applies portfolio-wide."}
	]`)

	docs, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("LoadCorpus() returned %d documents, want 2", len(docs))
	}
	if docs[0].ID != "dlg-1" || docs[1].ID != "dlg-2" {
		t.Errorf("LoadCorpus() ids = %q, %q, want dlg-1, dlg-2", docs[0].ID, docs[1].ID)
	}
	if docs[0].SourceFile != "dlg.json" {
		t.Errorf("SourceFile = %q, want dlg.json", docs[0].SourceFile)
	}
}

func TestLoadCorpus_WrapperShape(t *testing.T) {
	dir := t.TempDir()
	writeChunkFile(t, dir, "gold.json", `{"chunks": [
		{"chunk_id": "gold-1", "text": "LTV for gold loans is 75 percent."}
	]}`)

	docs, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "gold-1" {
		t.Fatalf("LoadCorpus() = %+v, want single gold-1 document", docs)
	}
}

func TestLoadCorpus_IDFallbackAndSkips(t *testing.T) {
	dir := t.TempDir()
	writeChunkFile(t, dir, "mixed.json", `[
		{"id": "legacy-1", "text": "legacy identifier only"},
		{"chunk_id": "new-1", "id": "ignored", "text": "chunk_id wins over id"},
		{"text": "no identifier at all"}
	]`)

	docs, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("LoadCorpus() returned %d documents, want 2", len(docs))
	}
	if docs[0].ID != "legacy-1" {
		t.Errorf("docs[0].ID = %q, want legacy-1", docs[0].ID)
	}
	if docs[1].ID != "new-1" {
		t.Errorf("docs[1].ID = %q, want new-1 (chunk_id preferred)", docs[1].ID)
	}
}

func TestLoadCorpus_DuplicateFirstWins(t *testing.T) {
	dir := t.TempDir()
	writeChunkFile(t, dir, "a.json", `[{"chunk_id": "c-1", "text": "first"}]`)
	writeChunkFile(t, dir, "b.json", `[{"chunk_id": "c-1", "text": "second"}]`)

	docs, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("LoadCorpus() returned %d documents, want 1", len(docs))
	}
	if docs[0].Text != "first" {
		t.Errorf("duplicate resolution kept %q, want first occurrence", docs[0].Text)
	}
}

func TestLoadCorpus_FileOrderIsLexicographic(t *testing.T) {
	dir := t.TempDir()
	writeChunkFile(t, dir, "b.json", `[{"chunk_id": "from-b", "text": "b"}]`)
	writeChunkFile(t, dir, "a.json", `[{"chunk_id": "from-a", "text": "a"}]`)
	writeChunkFile(t, dir, "notes.txt", "not json, ignored")

	docs, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("LoadCorpus() returned %d documents, want 2", len(docs))
	}
	if docs[0].ID != "from-a" || docs[1].ID != "from-b" {
		t.Errorf("LoadCorpus() order = %q, %q, want from-a then from-b", docs[0].ID, docs[1].ID)
	}
}

func TestLoadCorpus_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		if _, err := LoadCorpus(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("LoadCorpus() error = nil, want error for missing directory")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		dir := t.TempDir()
		writeChunkFile(t, dir, "bad.json", `{"chunks": [`)
		if _, err := LoadCorpus(dir); err == nil {
			t.Error("LoadCorpus() error = nil, want parse error")
		}
	})
}
