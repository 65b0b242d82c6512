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

package builder

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czcorpus/depphrase/phrase"
	"github.com/czcorpus/depphrase/profile"
)

func w(lemma string, offs int, pos phrase.Pos, link phrase.SyntLink) *phrase.Word {
	return &phrase.Word{Lemma: lemma, Form: lemma, Pos: pos, SyntLink: link, ParentOffs: offs, Lang: phrase.LangEN}
}

func reprs(phrases []*phrase.Phrase) []string {
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = p.GetStrRepr()
	}
	sort.Strings(out)
	return out
}

// TestBuildNounPhrases_WhitelistedPreposition mirrors scenario 1: a NOUN
// headed by h1, introducing a whitelisted preposition onto its NMOD
// dependent h2, which itself carries an AMOD adjective m1.
func TestBuildNounPhrases_WhitelistedPreposition(t *testing.T) {
	sent := phrase.NewSentence([]*phrase.Word{
		w("h1", 0, phrase.PosNOUN, phrase.LinkROOT),
		w("of", 2, phrase.PosADP, phrase.LinkCASE),
		w("m1", 1, phrase.PosADJ, phrase.LinkAMOD),
		w("h2", -3, phrase.PosNOUN, phrase.LinkNMOD),
	})

	phrases, err := BuildNounPhrases(sent, DefaultOpts())
	require.NoError(t, err)
	assert.Equal(t, []string{"h1 of h2", "h1 of m1 h2", "m1 h2"}, reprs(phrases))
}

func TestBuild_CardinalityBound(t *testing.T) {
	// a head with more good modifiers than MaxVariantsBound must never
	// exceed the bound at any single level (§8 cardinality bound).
	words := []*phrase.Word{w("root", 0, phrase.PosNOUN, phrase.LinkROOT)}
	for i := 0; i < 10; i++ {
		words = append(words, w("mod", -1-i, phrase.PosADJ, phrase.LinkAMOD))
	}
	sent := phrase.NewSentence(words)
	opts := Opts{MaxN: 2, MaxVariantsBound: 3}

	phrases, err := Build(sent, profile.NounPhrases(), opts, nil)
	require.NoError(t, err)

	byHeadLevel := make(map[int]int)
	for _, p := range phrases {
		byHeadLevel[p.GetHeadPos()*10+p.Size()]++
	}
	for k, count := range byHeadLevel {
		assert.LessOrEqualf(t, count, opts.MaxVariantsBound, "head/level key %d exceeded bound", k)
	}
}
