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

package conllu

import (
	"context"
	"strconv"

	"github.com/tomachalek/vertigo/v6"

	"github.com/czcorpus/depphrase/phrase"
)

// VerticalColumns names the positional-attribute columns a vertical-format
// corpus carries its dependency annotation in, mirroring the column indices
// a teacher CNC vertical corpus uses for lemma/PoS/parent/deprel.
type VerticalColumns struct {
	LemmaIdx  int
	PosIdx    int
	ParentIdx int
	DeprelIdx int
}

// VerticalIngester streams a CNC-style vertical corpus (the positional-attr
// format `dataimport` was built around) through vertigo and emits completed
// sentences via OnSentence. It is an alternative front door to Reader for
// corpora that were never exported to CoNLL-U.
type VerticalIngester struct {
	cols      VerticalColumns
	lang      phrase.Lang
	OnSentence func(*phrase.Sentence)

	sentStartIdx int
	lastTokenIdx int
	inSent       bool
	pending      []*vertigo.Token
}

// NewVerticalIngester builds an ingester for the given positional-attribute
// layout and language.
func NewVerticalIngester(cols VerticalColumns, lang phrase.Lang) *VerticalIngester {
	return &VerticalIngester{cols: cols, lang: lang}
}

func (v *VerticalIngester) ProcToken(tk *vertigo.Token, line int, err error) error {
	if err != nil {
		return err
	}
	v.pending = append(v.pending, tk)
	v.lastTokenIdx = tk.Idx
	return nil
}

func (v *VerticalIngester) ProcStruct(st *vertigo.Structure, line int, err error) error {
	if err != nil {
		return err
	}
	if st.Name == "s" {
		v.sentStartIdx = v.lastTokenIdx + 1
		v.inSent = true
		v.pending = v.pending[:0]
	}
	return nil
}

func (v *VerticalIngester) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	if err != nil {
		return err
	}
	if !v.inSent {
		return nil
	}
	v.inSent = false
	if len(v.pending) == 0 {
		return nil
	}
	sent := v.buildSentence(v.pending)
	if v.OnSentence != nil {
		v.OnSentence(sent)
	}
	v.pending = nil
	return nil
}

// buildSentence converts a run of vertigo tokens into a Sentence. The parent
// column already stores a signed offset relative to each token's own
// position (the convention dataimport/tree.go's parent-offset column
// follows), so it maps directly onto Word.ParentOffs without any
// index translation.
func (v *VerticalIngester) buildSentence(tokens []*vertigo.Token) *phrase.Sentence {
	words := make([]*phrase.Word, len(tokens))
	for i, tk := range tokens {
		w := &phrase.Word{
			Lemma:    tk.PosAttrByIndex(v.cols.LemmaIdx),
			Form:     tk.Word,
			Pos:      phrase.PosFromString(tk.PosAttrByIndex(v.cols.PosIdx)),
			SyntLink: phrase.SyntLinkFromString(tk.PosAttrByIndex(v.cols.DeprelIdx)),
			Lang:     v.lang,
		}
		if rp, err := strconv.Atoi(tk.PosAttrByIndex(v.cols.ParentIdx)); err == nil && rp != 0 {
			w.ParentOffs = rp
		}
		if !w.HasParent() {
			w.SyntLink = phrase.LinkROOT
		}
		words[i] = w
	}
	return phrase.NewSentence(words)
}

// ParseFile runs vertigo over path, invoking OnSentence for every completed
// sentence structure.
func (v *VerticalIngester) ParseFile(ctx context.Context, path string) error {
	conf := vertigo.ParserConf{
		InputFilePath:         path,
		Encoding:              "utf-8",
		StructAttrAccumulator: "comb",
		LogProgressEachNth:    100000,
	}
	return vertigo.ParseVerticalFile(ctx, &conf, v)
}
