//go:build ignore

// Process raw Leipzig Corpora sentence files into the annotated corpus
// format read by internal/bench (header comments + one sentence per line).
// Input files are named <lang>_raw.txt with one "<id>\t<sentence>" per line.
// Usage: go run ./scripts/process-leipzig.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxSentences = 200

func main() {
	inDir := "testdata/corpus"

	files, err := filepath.Glob(filepath.Join(inDir, "*_raw.txt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Println("No raw files found. Download Leipzig sentence files first.")
		os.Exit(1)
	}

	for _, rawFile := range files {
		lang := strings.TrimSuffix(filepath.Base(rawFile), "_raw.txt")
		outFile := filepath.Join(inDir, lang+".txt")

		fmt.Printf("Processing %s...\n", lang)
		if err := processFile(rawFile, outFile, lang); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", lang, err)
			continue
		}
		fmt.Printf("  -> %s\n", outFile)
	}
}

func processFile(inPath, outPath, lang string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# Language: %s\n", lang)
	fmt.Fprintf(w, "# Source: Leipzig Corpora Collection\n\n")

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	count := 0
	for scanner.Scan() && count < maxSentences {
		line := scanner.Text()
		// Leipzig lines are "<id>\t<sentence>".
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			line = line[i+1:]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintln(w, line)
		count++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return w.Flush()
}
