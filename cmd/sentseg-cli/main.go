// Command sentseg-cli splits text into sentences, one per output line.
//
// Text can come from the arguments, from a file (-f), or interactively
// from stdin. Output goes to stdout or to a file (-o).
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	sentseg "github.com/jamesainslie/go-sentseg"
)

// Injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

type options struct {
	language    string
	inputFile   string
	outputFile  string
	interactive bool
	spans       bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "sentseg-cli [flags] [text...]",
		Short:   "Split text into sentences",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "language", "l", "en", "Language code (falls back when undefined)")
	cmd.Flags().StringVarP(&opts.inputFile, "input-file", "f", "", "Input file (default stdin)")
	cmd.Flags().StringVarP(&opts.outputFile, "output-file", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Interactive mode (read a line, segment, repeat)")
	cmd.Flags().BoolVar(&opts.spans, "spans", false, "Print byte offsets alongside each sentence")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	if opts.interactive && (opts.inputFile != "" || opts.outputFile != "") {
		return fmt.Errorf("interactive mode is not available with --input-file or --output-file")
	}

	seg, err := sentseg.New()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.outputFile != "" {
		f, err := os.Create(opts.outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch {
	case len(args) > 0:
		return segmentText(seg, opts, strings.Join(args, " "), out)

	case opts.inputFile != "":
		data, err := os.ReadFile(opts.inputFile)
		if err != nil {
			return fmt.Errorf("reading input file: %w", err)
		}
		return segmentLines(seg, opts, strings.NewReader(string(data)), out)

	default:
		// No text and no file: behave interactively on stdin.
		return segmentLines(seg, opts, cmd.InOrStdin(), out)
	}
}

// segmentLines segments each input line independently, matching line-based
// corpus processing where one line is one document.
func segmentLines(seg *sentseg.Segmenter, opts options, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := segmentText(seg, opts, line, out); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func segmentText(seg *sentseg.Segmenter, opts options, text string, out io.Writer) error {
	it, err := seg.Segment(opts.language, text)
	if err != nil {
		return err
	}
	for {
		sp, ok := it.Next()
		if !ok {
			return nil
		}
		if opts.spans {
			if _, err := fmt.Fprintf(out, "%d\t%d\t%s\n", sp.Start, sp.End, strings.TrimSpace(it.Text(sp))); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(out, strings.TrimSpace(it.Text(sp))); err != nil {
			return err
		}
	}
}
