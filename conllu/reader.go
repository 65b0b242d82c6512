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

// Package conllu ingests dependency-parsed text into the phrase package's
// Sentence/Word model. It reads the standard CoNLL-U plain-text format
// (https://universaldependencies.org/format.html): sentences separated by a
// blank line, ten tab-separated columns per token line, "# key = value"
// comment lines preceding each sentence, and multi-word-token/empty-node
// lines (an ID containing "-" or ".") skipped per the format's own rules.
package conllu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/czcorpus/depphrase/perr"
	"github.com/czcorpus/depphrase/phrase"
)

const (
	colID = iota
	colForm
	colLemma
	colUPos
	colXPos
	colFeats
	colHead
	colDeprel
	colDeps
	colMisc
	numCols
)

// featSetters maps a UD "Feats" key to the Word field it populates.
var featSetters = map[string]func(w *phrase.Word, v string){
	"Number":  func(w *phrase.Word, v string) { w.Number = phrase.NumberFromString(v) },
	"Gender":  func(w *phrase.Word, v string) { w.Gender = phrase.GenderFromString(v) },
	"Case":    func(w *phrase.Word, v string) { w.Case = phrase.CaseFromString(v) },
	"Tense":   func(w *phrase.Word, v string) { w.Tense = phrase.TenseFromString(v) },
	"Person":  func(w *phrase.Word, v string) { w.Person = phrase.PersonFromString(v) },
	"Degree":  func(w *phrase.Word, v string) { w.Degree = phrase.DegreeFromString(v) },
	"Voice":   func(w *phrase.Word, v string) { w.Voice = phrase.VoiceFromString(v) },
	"Mood":    func(w *phrase.Word, v string) { w.Mood = phrase.MoodFromString(v) },
	"NumType": func(w *phrase.Word, v string) { w.NumType = phrase.NumTypeFromString(v) },
	"Animacy": func(w *phrase.Word, v string) { w.Animacy = phrase.AnimacyFromString(v) },
	"Aspect":  func(w *phrase.Word, v string) { w.Aspect = phrase.AspectFromString(v) },
}

func applyFeats(w *phrase.Word, feats string) {
	if feats == "" || feats == "_" {
		return
	}
	for _, kv := range strings.Split(feats, "|") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		if setter, ok := featSetters[parts[0]]; ok {
			setter(w, parts[1])
		}
	}
}

// isSubTokenID reports whether a CoNLL-U ID column names a multi-word-token
// span ("4-5") or an empty node ("4.1") — both are skipped by the reader,
// since neither participates in the single-headed dependency tree the
// builder operates over.
func isSubTokenID(id string) bool {
	return strings.ContainsAny(id, "-.")
}

// Reader decodes a stream of CoNLL-U sentences into phrase.Sentence values.
// Lang is the language tag (RU/EN) assigned to every Word produced; a corpus
// mixing languages is expected to be split into per-language files upstream.
type Reader struct {
	scanner *bufio.Scanner
	lang    phrase.Lang
	lineNum int
}

// NewReader wraps r for CoNLL-U decoding in the given language.
func NewReader(r io.Reader, lang phrase.Lang) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &Reader{scanner: s, lang: lang}
}

// Next reads the following sentence block, returning io.EOF once the stream
// is exhausted. A token line that cannot be decoded yields
// perr.ErrMalformedInput wrapped with the offending line number.
func (r *Reader) Next() (*phrase.Sentence, error) {
	var words []*phrase.Word
	sawAny := false
	for r.scanner.Scan() {
		r.lineNum++
		line := r.scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if sawAny {
				return phrase.NewSentence(words), nil
			}
			continue
		}
		sawAny = true
		w, skip, err := r.decodeLine(line)
		if err != nil {
			return nil, fmt.Errorf("conllu line %d: %w", r.lineNum, err)
		}
		if skip {
			continue
		}
		words = append(words, w)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	if sawAny {
		return phrase.NewSentence(words), nil
	}
	return nil, io.EOF
}

func (r *Reader) decodeLine(line string) (w *phrase.Word, skip bool, err error) {
	cols := strings.Split(line, "\t")
	if len(cols) != numCols {
		return nil, false, perr.ErrMalformedInput
	}
	if isSubTokenID(cols[colID]) {
		return nil, true, nil
	}
	selfID, err := strconv.Atoi(cols[colID])
	if err != nil {
		return nil, false, perr.ErrMalformedInput
	}

	word := &phrase.Word{
		Lemma:    cols[colLemma],
		Form:     cols[colForm],
		Pos:      phrase.PosFromString(cols[colUPos]),
		SyntLink: phrase.SyntLinkFromString(cols[colDeprel]),
		Lang:     r.lang,
	}
	applyFeats(word, cols[colFeats])

	if cols[colHead] != "_" {
		headID, err := strconv.Atoi(cols[colHead])
		if err != nil {
			return nil, false, perr.ErrMalformedInput
		}
		if headID == 0 {
			word.ParentOffs = 0
			word.SyntLink = phrase.LinkROOT
		} else {
			word.ParentOffs = headID - selfID
		}
	}
	return word, false, nil
}

// ReadAll drains r fully, useful for small batch inputs and tests.
func ReadAll(r io.Reader, lang phrase.Lang) ([]*phrase.Sentence, error) {
	rd := NewReader(r, lang)
	var out []*phrase.Sentence
	for {
		sent, err := rd.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, sent)
	}
}
