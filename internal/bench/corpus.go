// Package bench provides evaluation utilities for sentence segmentation:
// an annotated corpus format, boundary-matching metrics, and per-language
// reports.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Header contains metadata parsed from a corpus file header.
type Header struct {
	Language string
	Source   string
	Title    string
}

// Doc is one annotated document: gold sentences plus the reconstructed
// running text and the gold boundary offsets into it.
type Doc struct {
	ID        string // filename without extension
	Language  string
	Source    string
	Title     string
	Sentences []string
	Text      string // sentences joined with single spaces
	// Boundaries holds the byte offset at which each sentence ends in
	// Text, including the joining space, matching the engine's
	// trailing-whitespace attachment.
	Boundaries []int
}

// ParseHeader extracts metadata from `# Key: value` header comments.
// Returns the header and the remaining text after it.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Language:"); ok {
			h.Language = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Language == "" {
		return Header{}, "", errors.New("missing Language in header")
	}

	body := text[bodyStart:]
	body = strings.TrimSpace(body)

	return h, body, nil
}

// ParseDoc builds a Doc from a corpus file's content: a metadata header
// followed by one gold sentence per line.
func ParseDoc(id, content string) (*Doc, error) {
	header, body, err := ParseHeader(content)
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	var sentences []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sentences = append(sentences, line)
		}
	}
	if len(sentences) == 0 {
		return nil, errors.New("no sentences in corpus file")
	}

	doc := &Doc{
		ID:        id,
		Language:  header.Language,
		Source:    header.Source,
		Title:     header.Title,
		Sentences: sentences,
	}

	var b strings.Builder
	for i, s := range sentences {
		b.WriteString(s)
		if i < len(sentences)-1 {
			b.WriteByte(' ')
		}
		doc.Boundaries = append(doc.Boundaries, b.Len())
	}
	doc.Text = b.String()

	return doc, nil
}

// LoadDoc loads and parses one corpus file.
func LoadDoc(path string) (*Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	doc, err := ParseDoc(id, string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", base, err)
	}
	return doc, nil
}

// LoadCorpus loads all .txt corpus files from a directory.
func LoadCorpus(dir string) ([]*Doc, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Doc
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		doc, err := LoadDoc(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
