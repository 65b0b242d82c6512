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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/depphrase/builder"
	"github.com/czcorpus/depphrase/config"
	"github.com/czcorpus/depphrase/conllu"
	"github.com/czcorpus/depphrase/inflect"
	"github.com/czcorpus/depphrase/phrase"
)

// sentJob carries one ingested sentence plus its ordinal position through
// the worker pool, so results can be drained back into input order.
type sentJob struct {
	idx  int
	sent *phrase.Sentence
}

type sentResult struct {
	idx     int
	phrases []*phrase.Phrase
	err     error
}

func processSentence(
	sent *phrase.Sentence, cfg config.Conf, opts builder.Opts, engine *inflect.Engine,
) ([]*phrase.Phrase, error) {
	var phrases []*phrase.Phrase
	if cfg.Dispatcher == config.DispatcherVerbNounPhrases {
		nounPhrases, verbPhrases, err := builder.BuildVerbNounPhrases(sent, opts)
		if err != nil {
			return nil, err
		}
		phrases = append(phrases, nounPhrases...)
		phrases = append(phrases, verbPhrases...)

	} else {
		var err error
		phrases, err = builder.BuildNounPhrases(sent, opts)
		if err != nil {
			return nil, err
		}
	}
	for _, p := range phrases {
		if err := engine.Inflect(sent, p); err != nil {
			log.Debug().Err(err).Msg("skipping inflection for phrase")
		}
	}
	sent.Phrases = phrases
	return phrases, nil
}

// runPipeline ingests cfg.InputPath and fans sentences out across
// cfg.Workers goroutines. Each worker builds and inflects its own sentence
// independently — the extras-annotation pass mutates a sentence's own
// Word.Extra slots, so sentences are never shared across workers. The one
// Engine is shared; it serializes its Inflect calls with its own mutex.
func runPipeline(
	ctx context.Context, cfg config.Conf, engine *inflect.Engine,
) ([]*phrase.Phrase, error) {
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	reader := conllu.NewReader(f, phrase.LangFromString(cfg.InputLang))
	opts := cfg.BuilderOpts()

	jobs := make(chan sentJob, cfg.Workers)
	outs := make(chan sentResult, cfg.Workers)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					outs <- sentResult{idx: job.idx, err: ctx.Err()}
					continue
				default:
				}
				phrases, err := processSentence(job.sent, cfg, opts, engine)
				outs <- sentResult{idx: job.idx, phrases: phrases, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		idx := 0
		for {
			sent, err := reader.Next()
			if err != nil {
				return
			}
			if err := sent.ValidateTree(); err != nil {
				log.Warn().Err(err).Int("sentence", idx).Msg("skipping malformed sentence")
				idx++
				continue
			}
			if cfg.DropPunct {
				sent = sent.Filter(func(w *phrase.Word) bool { return w.Pos != phrase.PosPUNCT })
			}
			select {
			case jobs <- sentJob{idx: idx, sent: sent}:
			case <-ctx.Done():
				return
			}
			idx++
		}
	}()

	go func() {
		wg.Wait()
		close(outs)
	}()

	pending := make(map[int][]*phrase.Phrase)
	var all []*phrase.Phrase
	next := 0
	for res := range outs {
		if res.err != nil {
			log.Warn().Err(res.err).Int("sentence", res.idx).Msg("skipping sentence")
			continue
		}
		pending[res.idx] = res.phrases
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			all = append(all, p...)
			delete(pending, next)
			next++
		}
	}
	return all, nil
}

func printTable(phrases []*phrase.Phrase) {
	headerFmt := color.New(color.FgGreen).SprintfFunc()
	columnFmt := color.New(color.FgHiMagenta).SprintfFunc()

	tbl := table.New("head pos", "size", "type", "repr")
	tbl.
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt).
		WithHeaderSeparatorRow('═')
	for _, p := range phrases {
		typ := "default"
		if p.PhraseType == phrase.MWE {
			typ = "mwe"
		}
		tbl.AddRow(p.GetHeadPos(), p.Size(), typ, p.GetStrRepr())
	}
	tbl.Print()
}

func main() {
	confPath := flag.String("conf", "", "path to a JSON configuration file")
	logLevel := flag.String("log-level", "info", "set log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "phrasex - extract noun/verb phrases from a CoNLL-U dependency tree\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  %s -conf conf.json\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logging.SetupLogging(logging.LoggingConf{Level: logging.LogLevel(*logLevel)})

	if *confPath == "" {
		fmt.Fprintln(os.Stderr, "ERROR: -conf is required")
		os.Exit(1)
	}
	cfg, err := config.Load(*confPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: ", err)
		os.Exit(1)
	}

	var exceptions inflect.ExceptionTable
	if cfg.Inflection.EnglishExceptionsPath != "" {
		exceptions, err = inflect.LoadExceptionTable(cfg.Inflection.EnglishExceptionsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR: ", err)
			os.Exit(1)
		}
	}

	var phraseCache inflect.PhraseCache
	if cfg.Inflection.BadgerDir != "" {
		bc, err := inflect.OpenBadgerPhraseCache(cfg.Inflection.BadgerDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR: ", err)
			os.Exit(1)
		}
		defer bc.Close()
		phraseCache = bc

	} else {
		phraseCache = inflect.NewMemPhraseCache(cfg.Inflection.PhraseCacheSize)
	}
	engine := inflect.NewEngine(
		inflect.NewRussianInflector(nil, cfg.Inflection.MorphCacheSize),
		inflect.NewEnglishInflector(exceptions),
		phraseCache,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	phrases, err := runPipeline(ctx, cfg, engine)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: ", err)
		os.Exit(1)
	}
	printTable(phrases)
}
