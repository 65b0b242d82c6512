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

package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/depphrase/phrase"
)

// TestEnglishInflector_Pluralization mirrors scenario 5: three PLUR NOUNs
// exercising each branch of the suffix cascade (consonant+y, plain +s,
// sibilant +es).
func TestEnglishInflector_Pluralization(t *testing.T) {
	e := NewEnglishInflector(ExceptionTable{})

	tests := []struct {
		lemma string
		want  string
	}{
		{"study", "studies"},
		{"course", "courses"},
		{"match", "matches"},
	}
	for _, tt := range tests {
		w := &phrase.Word{Lemma: tt.lemma, Pos: phrase.PosNOUN, Number: phrase.NumberPlur, Lang: phrase.LangEN}
		assert.Equal(t, tt.want, e.InflectHead(w, tt.lemma))
	}
}

func TestEnglishInflector_SingularNounUnchanged(t *testing.T) {
	e := NewEnglishInflector(ExceptionTable{})
	w := &phrase.Word{Lemma: "course", Pos: phrase.PosNOUN, Number: phrase.NumberSing, Lang: phrase.LangEN}
	assert.Equal(t, "course", e.InflectHead(w, "course"))
}

func TestEnglishInflector_ExceptionTableWins(t *testing.T) {
	e := NewEnglishInflector(ExceptionTable{NounPlural: map[string]string{"child": "children"}})
	w := &phrase.Word{Lemma: "child", Pos: phrase.PosNOUN, Number: phrase.NumberPlur, Lang: phrase.LangEN}
	assert.Equal(t, "children", e.InflectHead(w, "child"))
}

func TestEnglishInflector_PresentParticiple(t *testing.T) {
	e := NewEnglishInflector(ExceptionTable{})

	tests := []struct {
		lemma string
		want  string
	}{
		{"write", "writing"},
		{"lie", "lying"},
		{"jump", "jumping"},
	}
	for _, tt := range tests {
		w := &phrase.Word{Lemma: tt.lemma, Pos: phrase.PosGERUND, Lang: phrase.LangEN}
		assert.Equal(t, tt.want, e.InflectHead(w, tt.lemma))
	}
}

func TestEnglishInflector_PastParticiple(t *testing.T) {
	e := NewEnglishInflector(ExceptionTable{})
	w := &phrase.Word{Lemma: "walk", Pos: phrase.PosPARTICIPLE, Tense: phrase.TensePast, Lang: phrase.LangEN}
	assert.Equal(t, "walked", e.InflectHead(w, "walk"))

	w2 := &phrase.Word{Lemma: "bake", Pos: phrase.PosPARTICIPLE, Tense: phrase.TensePast, Lang: phrase.LangEN}
	assert.Equal(t, "baked", e.InflectHead(w2, "bake"))
}

func TestEnglishInflector_PropnPluralIsTitleCased(t *testing.T) {
	e := NewEnglishInflector(ExceptionTable{})
	w := &phrase.Word{Lemma: "valley", Pos: phrase.PosPROPN, Number: phrase.NumberPlur, Lang: phrase.LangEN}
	assert.Equal(t, "Valleys", e.InflectHead(w, "valley"))
}
