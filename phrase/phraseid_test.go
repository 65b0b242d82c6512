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

package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func wordFor(lemma string, pos Pos) *Word {
	return &Word{Lemma: lemma, Pos: pos, Lang: LangEN}
}

// TestPhraseId_OrderIndependence mirrors spec scenario 6: two sentences
// that attach the same two modifiers to the same head in opposite surface
// order must fold to the same final phrase id, since PhraseId is a
// commutative accumulator over the component word ids.
func TestPhraseId_OrderIndependence(t *testing.T) {
	m1 := wordFor("m1", PosADJ)
	m2 := wordFor("m2", PosADJ)
	r := wordFor("r", PosNOUN)

	idM1 := NewPhraseID(m1)
	idM2 := NewPhraseID(m2)
	idR := NewPhraseID(r)

	// sentence A: merge r with m1 first, then m2
	a := idR.MergeMod(idM1, true)
	a = a.MergeMod(idM2, true)

	// sentence B: merge r with m2 first, then m1
	b := idR.MergeMod(idM2, true)
	b = b.MergeMod(idM1, true)

	assert.Equal(t, a.GetID(false), b.GetID(false))
}

func TestPhraseId_PrepOnlyAffectsModifierFold(t *testing.T) {
	h2 := wordFor("h2", PosNOUN)
	h2.Extra.PrepWhiteList = &PrepInfo{Pos: 1, Surface: "of", WordID: WordIDForLemma("of", LangEN)}
	id := NewPhraseID(h2)

	assert.NotEqual(t, id.GetID(false), id.GetID(true), "with-prep id must differ once a prep is recorded")

	h1 := wordFor("h1", PosNOUN)
	withoutPrep := NewPhraseID(h1).MergeMod(id, false)
	plain := NewPhraseID(h1)
	assert.NotEqual(t, plain.GetID(false), withoutPrep.GetID(false))
}
