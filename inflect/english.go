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
	"strings"
	"unicode/utf8"

	"github.com/czcorpus/depphrase/phrase"
)

// alreadyPlural lists nouns whose singular and plural surface forms
// coincide, or whose plural is not decomposable by rule at all.
var alreadyPlural = map[string]bool{
	"people": true, "fish": true, "sheep": true, "series": true,
	"species": true, "deer": true, "moose": true, "aircraft": true,
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

// pluralizeNoun implements the rule cascade of §4.8: exception table, then
// `s/x/z`/`sh`/`ch` → "es", consonant+"y" → "ies", else "+s".
func pluralizeNoun(lemma string, exceptions map[string]string) string {
	if p, ok := exceptions[lemma]; ok {
		return p
	}
	if alreadyPlural[lemma] {
		return lemma
	}
	lower := strings.ToLower(lemma)
	switch {
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"), strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "sh"), strings.HasSuffix(lower, "ch"):
		return lemma + "es"
	case strings.HasSuffix(lower, "y") && len(lemma) >= 2 && !isVowel(rune(lower[len(lower)-2])):
		return lemma[:len(lemma)-1] + "ies"
	default:
		return lemma + "s"
	}
}

// presentParticiple implements the GERUND/PARTICIPLE_ADVERB ("-ing") rule
// cascade: exception table, else drop a trailing silent "e", else "ie"→"y"
// before "+ing", else plain "+ing".
func presentParticiple(lemma string, exceptions map[string]string) string {
	if p, ok := exceptions[lemma]; ok {
		return p
	}
	lower := strings.ToLower(lemma)
	switch {
	case strings.HasSuffix(lower, "ie"):
		return lemma[:len(lemma)-2] + "ying"
	case strings.HasSuffix(lower, "e") && !strings.HasSuffix(lower, "ee"):
		return lemma[:len(lemma)-1] + "ing"
	default:
		return lemma + "ing"
	}
}

// pastParticiple implements the PARTICIPLE past-tense rule cascade:
// exception table, else "+d" when the lemma already ends in "e", else
// "+ed".
func pastParticiple(lemma string, exceptions map[string]string) string {
	if p, ok := exceptions[lemma]; ok {
		return p
	}
	if strings.HasSuffix(strings.ToLower(lemma), "e") {
		return lemma + "d"
	}
	return lemma + "ed"
}

func titleCaseEN(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}

// EnglishInflector implements Inflector for lemma sequences annotated as
// English (§4.8).
type EnglishInflector struct {
	exceptions ExceptionTable
}

// NewEnglishInflector builds an English inflector over the given exception
// table (zero value is fine: every rule then falls back to its suffix
// cascade).
func NewEnglishInflector(exceptions ExceptionTable) *EnglishInflector {
	return &EnglishInflector{exceptions: exceptions}
}

func (e *EnglishInflector) InflectHead(w *phrase.Word, lemma string) string {
	return e.realize(w, lemma)
}

func (e *EnglishInflector) InflectPair(head, mod *phrase.Word, modLemma string) string {
	return e.realize(mod, modLemma)
}

func (e *EnglishInflector) realize(w *phrase.Word, lemma string) string {
	switch w.Pos {
	case phrase.PosNOUN:
		if w.Number == phrase.NumberPlur {
			return pluralizeNoun(lemma, e.exceptions.NounPlural)
		}
		return lemma
	case phrase.PosPROPN:
		out := lemma
		if w.Number == phrase.NumberPlur {
			out = pluralizeNoun(lemma, e.exceptions.NounPlural)
		}
		return titleCaseEN(out)
	case phrase.PosGERUND, phrase.PosPARTICIPLE_ADVERB:
		return presentParticiple(lemma, e.exceptions.VerbPresPart)
	case phrase.PosPARTICIPLE, phrase.PosPARTICIPLE_SHORT:
		if w.Tense == phrase.TensePres {
			return presentParticiple(lemma, e.exceptions.VerbPresPart)
		}
		return pastParticiple(lemma, e.exceptions.VerbPastPart)
	default:
		return lemma
	}
}
