// Package corrector detects misspelled words in plain text and replaces
// them with the best-guess correction, preserving casing and layout.
package corrector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"spellagent/internal/tokenizer"
)

// Oracle is the dictionary service behind the corrector. Both methods are
// case-insensitive and consult the merged custom word set.
type Oracle interface {
	IsKnown(word string) bool
	Candidates(word string) []Candidate
}

// Correction records a single applied replacement.
type Correction struct {
	Token       tokenizer.Token `json:"token"`
	Original    string          `json:"original"`
	Replacement string          `json:"replacement"`
}

// FileResult is the outcome of scanning one file.
type FileResult struct {
	Path        string
	Scanned     bool
	Corrections []Correction
	// Unresolved are misspelled tokens the oracle had no suggestion for;
	// they are reported but never modified.
	Unresolved []tokenizer.Token
	// Original and Corrected hold the file text before and after the pass.
	// In dry-run mode Corrected is computed for the report only.
	Original  string
	Corrected string
	Err       error
}

// Corrector orchestrates tokenization, oracle lookups, selection and
// in-place text reconstruction.
type Corrector struct {
	config Config
	oracle Oracle
}

func New(cfg Config, oracle Oracle) *Corrector {
	return &Corrector{config: cfg, oracle: oracle}
}

// CorrectText runs a correction pass over text and returns the corrected
// text, the corrections made and the unresolved tokens. All separators and
// whitespace are preserved exactly; only corrected spans change.
func (c *Corrector) CorrectText(text string) (string, []Correction, []tokenizer.Token) {
	var corrections []Correction
	var unresolved []tokenizer.Token

	for _, tok := range tokenizer.Tokenize(text) {
		if utf8.RuneCountInString(tok.Text) < c.config.MinWordLength {
			continue
		}
		class := Classify(tok.Text)
		if c.config.SkipAllCaps && class == CaseAllCaps {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if c.oracle.IsKnown(lower) {
			continue
		}
		var candidates []Candidate
		for _, cand := range c.oracle.Candidates(lower) {
			if cand.Word != lower {
				candidates = append(candidates, cand)
			}
		}
		replacement, ok := selectCandidate(candidates)
		if !ok {
			unresolved = append(unresolved, tok)
			continue
		}
		corrections = append(corrections, Correction{
			Token:       tok,
			Original:    tok.Text,
			Replacement: ApplyCase(replacement, tok.Text, class),
		})
	}

	if len(corrections) == 0 {
		return text, nil, unresolved
	}
	return reassemble(text, corrections), corrections, unresolved
}

// reassemble splices the replacements into the original text. Splicing runs
// in reverse so earlier columns stay valid within a line.
func reassemble(text string, corrections []Correction) string {
	lines := strings.Split(text, "\n")
	for i := len(corrections) - 1; i >= 0; i-- {
		cr := corrections[i]
		idx := cr.Token.Line - 1
		rs := []rune(lines[idx])
		end := cr.Token.Col + utf8.RuneCountInString(cr.Original)
		lines[idx] = string(rs[:cr.Token.Col]) + cr.Replacement + string(rs[end:])
	}
	return strings.Join(lines, "\n")
}

// ProcessFile scans a single file. The file is fully read and closed before
// any write happens; the write itself is atomic and only occurs when the
// pass produced corrections and dryRun is false. Unchanged files are never
// rewritten. Read or decode failures populate FileResult.Err and leave the
// run free to continue with the next file.
func (c *Corrector) ProcessFile(path string, dryRun bool) FileResult {
	res := FileResult{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	if !utf8.Valid(data) {
		res.Err = fmt.Errorf("%s: not valid UTF-8 text", path)
		return res
	}
	res.Scanned = true
	res.Original = string(data)
	res.Corrected, res.Corrections, res.Unresolved = c.CorrectText(res.Original)

	if len(res.Corrections) > 0 && !dryRun && res.Corrected != res.Original {
		if err := writeFileAtomic(path, []byte(res.Corrected)); err != nil {
			res.Err = fmt.Errorf("write %s: %v", path, err)
		}
	}
	return res
}

// ProcessDirectory scans every .txt file under dir, in sorted path order.
func (c *Corrector) ProcessDirectory(dir string, recursive, dryRun bool) ([]FileResult, error) {
	files, err := ListTextFiles(dir, recursive)
	if err != nil {
		return nil, err
	}
	results := make([]FileResult, 0, len(files))
	for _, f := range files {
		results = append(results, c.ProcessFile(f, dryRun))
	}
	return results, nil
}

// ListTextFiles returns the sorted .txt files in dir, descending into
// subdirectories when recursive is set.
func ListTextFiles(dir string, recursive bool) ([]string, error) {
	var files []string
	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isTextFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && isTextFile(e.Name()) {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func isTextFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}

// writeFileAtomic writes data to a temp file in the target's directory and
// renames it over the target, keeping the original mode.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".spellagent-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
