// Package dictionary implements the spelling oracle on top of a
// word-frequency list and a fuzzy suggestion model.
package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/edsrzf/mmap-go"
	"github.com/sajari/fuzzy"

	"spellagent/internal/corrector"
	"spellagent/pkg/options"
)

// dict_en.txt holds "word count" lines so the checker works out of the box
// without external data files. A larger list can be supplied at run time.
//
//go:embed dict_en.txt
var embeddedDict []byte

// Dict is a frequency-weighted word dictionary. It implements
// corrector.Oracle: known-word tests and candidate suggestions, both
// case-insensitive, both consulting any words added for the current run.
// All methods are safe for concurrent use, so one Dict can back the HTTP
// handlers directly.
type Dict struct {
	opts        options.SpellOptions
	model       *fuzzy.Model
	mu          sync.RWMutex
	frequencies map[string]float64
	vocabSet    map[string]bool
	addedWords  map[string]bool
}

// New returns an empty dictionary configured by opts.
func New(opts ...options.Option) *Dict {
	o := options.DefaultOptions
	for _, opt := range opts {
		opt.Apply(&o)
	}
	model := fuzzy.NewModel()
	model.SetDepth(o.MaxEditDistance)
	model.SetThreshold(1)
	model.SetUseAutocomplete(false)
	return &Dict{
		opts:        o,
		model:       model,
		frequencies: make(map[string]float64),
		vocabSet:    make(map[string]bool),
		addedWords:  make(map[string]bool),
	}
}

// Load builds a dictionary from the frequency file at path, or from the
// embedded English list when path is empty. The file holds one "word count"
// pair per line; malformed lines are skipped, matching the loader the list
// format comes from.
func Load(path string, opts ...options.Option) (*Dict, error) {
	d := New(opts...)
	if path == "" {
		if err := d.parseFrequencies(embeddedDict); err != nil {
			return nil, fmt.Errorf("embedded dictionary: %v", err)
		}
		return d, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %v", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary %s: %v", path, err)
	}
	// zero-length files cannot be mapped
	if info.Size() == 0 {
		return d, nil
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("map dictionary %s: %v", path, err)
	}
	defer data.Unmap()
	if err := d.parseFrequencies(data); err != nil {
		return nil, fmt.Errorf("dictionary %s: %v", path, err)
	}
	return d, nil
}

func (d *Dict) parseFrequencies(data []byte) error {
	s := bufio.NewScanner(bytes.NewReader(data))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			if fv, err2 := strconv.ParseFloat(parts[1], 64); err2 == nil {
				count = int(fv)
			} else {
				continue
			}
		}
		if count < d.opts.FrequencyThreshold {
			continue
		}
		d.addEntry(strings.ToLower(parts[0]), float64(count))
	}
	return s.Err()
}

func (d *Dict) addEntry(word string, freq float64) {
	d.frequencies[word] = freq
	d.vocabSet[word] = true
	d.model.TrainWord(word)
}

// AddWords merges extra known words into the dictionary for the lifetime of
// this Dict. Added words carry a high frequency so they win frequency
// tie-breaks against regular vocabulary.
func (d *Dict) AddWords(words ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, w := range words {
		lw := strings.ToLower(strings.TrimSpace(w))
		if lw == "" {
			continue
		}
		d.addedWords[lw] = true
		d.addEntry(lw, d.opts.ExtraWordFrequency)
	}
}

// RemoveWord drops a word from the known vocabulary.
func (d *Dict) RemoveWord(word string) {
	lw := strings.ToLower(word)
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.addedWords, lw)
	delete(d.vocabSet, lw)
	delete(d.frequencies, lw)
}

// Size reports the number of known words.
func (d *Dict) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.vocabSet)
}

// IsKnown reports whether word is in the dictionary, case-insensitively.
func (d *Dict) IsKnown(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.vocabSet[strings.ToLower(word)]
}

// Candidates returns the correction candidates for a misspelled word. Each
// candidate is a known word together with its edit distance from the input
// and its corpus frequency. The order is unspecified; callers apply their
// own tie-break.
func (d *Dict) Candidates(word string) []corrector.Candidate {
	lw := strings.ToLower(word)
	suggestions := d.model.Suggestions(lw, d.opts.Exhaustive)
	seen := make(map[string]bool)
	var out []corrector.Candidate
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range suggestions {
		s = strings.ToLower(s)
		if s == lw || seen[s] || !d.vocabSet[s] {
			continue
		}
		seen[s] = true
		out = append(out, corrector.Candidate{
			Word:         s,
			EditDistance: editDistance(lw, s),
			Frequency:    d.frequencies[s],
		})
	}
	return out
}
