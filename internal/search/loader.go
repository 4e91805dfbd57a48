package search

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is one retrievable unit of source text loaded from the chunk
// directory.
type Document struct {
	ID         string
	Text       string
	SourceFile string
}

// fragmentRecord matches one chunk record inside a chunk JSON file. Newer
// files use chunk_id, older ones plain id.
type fragmentRecord struct {
	ChunkID string `json:"chunk_id"`
	ID      string `json:"id"`
	Text    string `json:"text"`
}

// LoadCorpus reads every .json file under dir. A file holds either a list of
// fragment records or an object wrapping such a list under a "chunks" key.
// Records without an identifier are skipped; on duplicate identifiers the
// first occurrence wins. Corpus order is filename order (lexicographic) then
// record order, and downstream tie-breaking depends on it staying stable.
func LoadCorpus(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read chunks directory: %w", err)
	}

	var docs []Document
	seen := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read chunk file %s: %w", entry.Name(), err)
		}

		records, err := parseChunkFile(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse chunk file %s: %w", entry.Name(), err)
		}

		for _, rec := range records {
			id := rec.ChunkID
			if id == "" {
				id = rec.ID
			}
			if id == "" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			docs = append(docs, Document{
				ID:         id,
				Text:       rec.Text,
				SourceFile: entry.Name(),
			})
		}
	}

	return docs, nil
}

func parseChunkFile(raw []byte) ([]fragmentRecord, error) {
	var records []fragmentRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var wrapper struct {
		Chunks []fragmentRecord `json:"chunks"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Chunks, nil
}
