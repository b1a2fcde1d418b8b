package corrector

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config controls the corrector engine.
type Config struct {
	// MinWordLength is the minimum rune count a token must have to be
	// spellchecked. Shorter tokens are always left alone.
	MinWordLength int
	// SkipAllCaps leaves all-uppercase words of two or more letters
	// untouched, treating them as acronyms.
	SkipAllCaps bool
}

func DefaultConfig() Config {
	return Config{
		MinWordLength: 2,
		SkipAllCaps:   true,
	}
}

// FileConfig is the optional TOML configuration file read by the CLI.
type FileConfig struct {
	// Dictionary is a path to a word-frequency dictionary file.
	Dictionary string `toml:"dictionary"`
	// Words are extra words treated as known for the run.
	Words []string `toml:"words"`
	// MinWordLength overrides Config.MinWordLength when positive.
	MinWordLength int `toml:"min_word_length"`
}

func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %v", err)
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %v", path, err)
	}
	return fc, nil
}
