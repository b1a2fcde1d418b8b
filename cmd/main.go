// Command spellagent scans .txt files for misspelled words and replaces
// them with the best-guess correction, preserving casing and layout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	pb "github.com/schollz/progressbar/v3"

	sc "spellagent/internal/corrector"
	"spellagent/internal/dictionary"
)

// wordList collects -add-words values; the flag is repeatable and each
// value may hold several comma-separated words.
type wordList []string

func (w *wordList) String() string { return strings.Join(*w, ",") }

func (w *wordList) Set(v string) error {
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			*w = append(*w, p)
		}
	}
	return nil
}

func main() {
	var addWords wordList
	dryRun := flag.Bool("dry-run", false, "report corrections without modifying files")
	noRecursive := flag.Bool("no-recursive", false, "do not search directories recursively")
	dictPath := flag.String("dict", "", "path to a word-frequency dictionary (built-in English list when empty)")
	configPath := flag.String("config", "", "path to a TOML config file")
	showDiff := flag.Bool("diff", false, "print a diff for each changed file")
	quiet := flag.Bool("quiet", false, "disable the progress bar")
	flag.Var(&addWords, "add-words", "additional words to add to the dictionary for this run")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: spellagent [flags] path ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := sc.DefaultConfig()
	if *configPath != "" {
		fc, err := sc.LoadFileConfig(*configPath)
		if err != nil {
			log.Fatalf("config error: %v", err)
		}
		if *dictPath == "" {
			*dictPath = fc.Dictionary
		}
		addWords = append(addWords, fc.Words...)
		if fc.MinWordLength > 0 {
			cfg.MinWordLength = fc.MinWordLength
		}
	}

	dict, err := dictionary.Load(*dictPath)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}
	if len(addWords) > 0 {
		dict.AddWords(addWords...)
	}

	agent := sc.New(cfg, dict)

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			fmt.Printf("Path not found: %s\n", p)
			continue
		}
		if !info.IsDir() {
			// Explicitly named files must still be .txt; everything else
			// is skipped with a notice.
			if !strings.EqualFold(filepath.Ext(p), ".txt") {
				fmt.Printf("Skipping non-.txt file: %s\n", p)
				continue
			}
			files = append(files, p)
			continue
		}
		found, err := sc.ListTextFiles(p, !*noRecursive)
		if err != nil {
			fmt.Printf("Cannot scan directory %s: %v\n", p, err)
			continue
		}
		if len(found) == 0 {
			fmt.Printf("No .txt files found in: %s\n", p)
			continue
		}
		files = append(files, found...)
	}

	var bar *pb.ProgressBar
	if !*quiet && len(files) > 1 {
		bar = pb.NewOptions(len(files),
			pb.OptionSetWriter(os.Stderr),
			pb.OptionSetDescription("scanning"),
			pb.OptionClearOnFinish(),
		)
	}

	results := make([]sc.FileResult, 0, len(files))
	for _, f := range files {
		results = append(results, agent.ProcessFile(f, *dryRun))
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	fmt.Println(sc.FormatReports(results))

	if *showDiff {
		for _, r := range results {
			if r.Err == nil && len(r.Corrections) > 0 {
				fmt.Printf("\n--- %s\n%s\n", r.Path, sc.FormatDiff(r.Original, r.Corrected))
			}
		}
	}

	hasCorrections := false
	for _, r := range results {
		if len(r.Corrections) > 0 {
			hasCorrections = true
			break
		}
	}
	if hasCorrections {
		mode := "APPLIED"
		if *dryRun {
			mode = "DRY RUN"
		}
		fmt.Printf("\nMode: %s\n", mode)
	}
}
