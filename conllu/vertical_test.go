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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tomachalek/vertigo/v6"

	"github.com/czcorpus/depphrase/phrase"
)

// tok builds a vertigo.Token whose positional attributes line up with the
// 1-based column indices buildSentence reads through PosAttrByIndex, the
// same convention dataimport/tree.go's parent/deprel columns follow.
func tok(idx int, word string, attrs ...string) *vertigo.Token {
	return &vertigo.Token{Idx: idx, Word: word, Attrs: attrs}
}

func TestVerticalIngester_BuildSentence(t *testing.T) {
	cols := VerticalColumns{LemmaIdx: 1, PosIdx: 2, ParentIdx: 3, DeprelIdx: 4}
	v := NewVerticalIngester(cols, phrase.LangEN)

	tokens := []*vertigo.Token{
		tok(1, "The", "the", "DET", "2", "det"),
		tok(2, "filter", "filter", "NOUN", "0", "root"),
	}
	sent := v.buildSentence(tokens)

	assert.Equal(t, 2, sent.Len())
	assert.Equal(t, "the", sent.Words[0].Lemma)
	assert.Equal(t, "The", sent.Words[0].Form)
	assert.Equal(t, phrase.PosDET, sent.Words[0].Pos)
	assert.Equal(t, 2, sent.Words[0].ParentOffs)
	assert.Equal(t, phrase.LinkDET, sent.Words[0].SyntLink)

	assert.Equal(t, phrase.LinkROOT, sent.Words[1].SyntLink, "zero parent offset forces ROOT regardless of the raw deprel column")
	assert.Equal(t, 0, sent.Words[1].ParentOffs)
}

func TestVerticalIngester_ProcStructClose_EmitsOnSentence(t *testing.T) {
	cols := VerticalColumns{LemmaIdx: 1, PosIdx: 2, ParentIdx: 3, DeprelIdx: 4}
	v := NewVerticalIngester(cols, phrase.LangEN)

	var got *phrase.Sentence
	v.OnSentence = func(s *phrase.Sentence) { got = s }

	require := func(cond bool, msg string) {
		if !cond {
			t.Fatal(msg)
		}
	}

	require(v.ProcStruct(&vertigo.Structure{Name: "s"}, 1, nil) == nil, "ProcStruct must not error")
	require(v.ProcToken(tok(1, "Foo", "foo", "NOUN", "0", "root"), 2, nil) == nil, "ProcToken must not error")
	require(v.ProcStructClose(&vertigo.StructureClose{Name: "s"}, 3, nil) == nil, "ProcStructClose must not error")

	assert.NotNil(t, got)
	assert.Equal(t, 1, got.Len())
	assert.Equal(t, "foo", got.Words[0].Lemma)
}

func TestVerticalIngester_ProcStructClose_IgnoresUnrelatedStruct(t *testing.T) {
	cols := VerticalColumns{LemmaIdx: 1, PosIdx: 2, ParentIdx: 3, DeprelIdx: 4}
	v := NewVerticalIngester(cols, phrase.LangEN)

	called := false
	v.OnSentence = func(*phrase.Sentence) { called = true }

	assert.NoError(t, v.ProcStructClose(&vertigo.StructureClose{Name: "doc"}, 1, nil))
	assert.False(t, called, "closing a structure that never opened a sentence must not emit")
}

func TestVerticalIngester_ProcToken_PropagatesError(t *testing.T) {
	cols := VerticalColumns{LemmaIdx: 1, PosIdx: 2, ParentIdx: 3, DeprelIdx: 4}
	v := NewVerticalIngester(cols, phrase.LangEN)
	assert.Error(t, v.ProcToken(nil, 1, assert.AnError))
}
