package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/legisclaro/legisclaro/internal/pipeline"
)

// documentProcessor is what analyzeOne needs from the pipeline; tests
// substitute a stub.
type documentProcessor interface {
	Process(ctx context.Context, text string) (*pipeline.Result, error)
}

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|glob ...]",
	Short: "Analyze legal documents from files or stdin",
	Long: `Runs the full analysis pipeline over one or more documents. Arguments
are file paths or globs (** supported); with no arguments the document
is read from stdin. Results are printed one per document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pipe, _, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			text, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			return analyzeOne(cmd.Context(), pipe, "stdin", string(text))
		}

		files, err := expandArgs(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no files match %v", args)
		}

		var bar *progressbar.ProgressBar
		if len(files) > 1 && !analyzeJSON {
			bar = progressbar.NewOptions(len(files),
				progressbar.OptionSetDescription("Analyzing documents"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		for _, path := range files {
			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			if err := analyzeOne(cmd.Context(), pipe, path, string(text)); err != nil {
				return err
			}
			if bar != nil {
				_ = bar.Add(1)
			}
		}
		if bar != nil {
			_ = bar.Finish()
		}
		return nil
	},
}

// expandArgs resolves each argument as a doublestar glob, falling back
// to a literal path, and deduplicates the result.
func expandArgs(args []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if matches == nil {
			matches = []string{arg}
		}
		for _, m := range matches {
			clean := filepath.Clean(m)
			if !seen[clean] {
				seen[clean] = true
				files = append(files, clean)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func analyzeOne(ctx context.Context, pipe documentProcessor, name, text string) error {
	result, err := pipe.Process(ctx, text)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", name, err)
	}

	if analyzeJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("== %s ==\n", name)
	fmt.Printf("Citações encontradas: %d\n", result.CitationCount)
	for _, law := range result.FoundLaws {
		fmt.Printf("  Lei: %s (%s) — %s\n", law.Name, law.Status, law.Link)
	}
	for _, d := range result.Discrepancies {
		fmt.Printf("  [%s/%s] %s: %s\n", d.Kind, d.Severity, d.ArticleRef, d.Suggestion)
	}
	fmt.Printf("\nTexto simplificado:\n%s\n\n", result.SimplifiedText)
	return nil
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print raw JSON results")
	rootCmd.AddCommand(analyzeCmd)
}
