// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/czcorpus/cnc-gokit/logging"

	"github.com/czcorpus/depphrase/builder"
)

// Dispatcher selects which builder pipeline cmd/phrasex runs.
type Dispatcher string

const (
	DispatcherNounPhrases     Dispatcher = "noun_phrases"
	DispatcherVerbNounPhrases Dispatcher = "verb+noun_phrases"
)

// InflectionConf locates the resources the inflection engine loads at
// startup (§4.8).
type InflectionConf struct {
	// RussianRulesPath is accepted in the config file but not read:
	// cmd/phrasex always uses the Russian inflector's built-in rule table.
	RussianRulesPath string `json:"russianRulesPath"`
	// EnglishExceptionsPath points at a gzip-compressed JSON table of
	// irregular plural/participle forms; empty leaves the exception table
	// empty, so only the suffix rules apply.
	EnglishExceptionsPath string `json:"englishExceptionsPath"`
	// MorphCacheSize bounds the per-word morphological-parse LRU (§4.8,
	// redesigned from the original's clear-on-overflow behavior).
	MorphCacheSize int `json:"morphCacheSize"`
	// PhraseCacheSize bounds the per-phrase inflection-result LRU.
	PhraseCacheSize int `json:"phraseCacheSize"`
	// BadgerDir, if set, backs the phrase-inflection cache with an on-disk
	// badger store instead of the in-memory LRU (useful across repeated CLI
	// invocations over the same corpus). The morphological-parse cache
	// stays in memory.
	BadgerDir string `json:"badgerDir,omitempty"`
}

// Conf is cmd/phrasex's top-level configuration file.
type Conf struct {
	InputPath  string           `json:"inputPath"`
	InputLang  string           `json:"inputLang"`
	Dispatcher Dispatcher       `json:"dispatcher"`
	MaxN       int              `json:"maxPhraseSize"`
	Workers    int              `json:"workers"`
	// DropPunct, when set, filters PUNCT tokens out of every ingested
	// sentence before it reaches the builder, via phrase.Sentence.Filter
	// (I-S3 link repair). Punctuation/stop-word filtering is a separate
	// preprocessing concern the core pipeline itself never performs; this
	// is the CLI's opt-in front door to that preprocessor, not a change to
	// the core's own eligibility rules.
	DropPunct  bool             `json:"dropPunct,omitempty"`
	Inflection InflectionConf   `json:"inflection"`
	Logging    logging.LoggingConf `json:"logging"`
}

// BuilderOpts derives builder.Opts from the loaded configuration.
func (c Conf) BuilderOpts() builder.Opts {
	opts := builder.DefaultOpts()
	if c.MaxN > 0 {
		opts.MaxN = c.MaxN
	}
	return opts
}

// Validate checks the fields cmd/phrasex cannot sensibly default.
func (c Conf) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("missing inputPath")
	}
	switch c.Dispatcher {
	case DispatcherNounPhrases, DispatcherVerbNounPhrases:
	default:
		return fmt.Errorf("unknown dispatcher %q", c.Dispatcher)
	}
	return nil
}

// Load reads and validates a JSON configuration file, filling in defaults
// for unset fields (MaxN 4, Workers 1, cache sizes 20000/5000, log level
// "info").
func Load(path string) (Conf, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Conf{}, fmt.Errorf("failed to load config: %w", err)
	}
	var conf Conf
	if err := json.Unmarshal(raw, &conf); err != nil {
		return Conf{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if conf.MaxN == 0 {
		conf.MaxN = 4
	}
	if conf.Workers == 0 {
		conf.Workers = 1
	}
	if conf.Inflection.MorphCacheSize == 0 {
		conf.Inflection.MorphCacheSize = 20000
	}
	if conf.Inflection.PhraseCacheSize == 0 {
		conf.Inflection.PhraseCacheSize = 5000
	}
	if conf.Logging.Level == "" {
		conf.Logging.Level = logging.LogLevel("info")
	}
	if err := conf.Validate(); err != nil {
		return Conf{}, err
	}
	return conf, nil
}
