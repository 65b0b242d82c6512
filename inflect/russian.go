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

// ruleAnalyzer derives morphological parses for a lemma from its own
// orthographic ending, the way a dictionary-free fallback analyzer would:
// no corpus of paradigms is available in this module's dependency surface,
// so nominal gender/stem-class is guessed from the lemma's last
// character(s), same as the declension tables below classify it for
// generation. This is deliberately coarse; it is a rule-based stand-in, not
// a full morphological analyzer.
type ruleAnalyzer struct{}

func (ruleAnalyzer) Analyze(lemma string) []MorphParse {
	gender := guessGender(lemma)
	return []MorphParse{{
		Pos:    phrase.PosNOUN,
		Gender: gender,
		Number: phrase.NumberSing,
		Case:   phrase.CaseNom,
	}}
}

func guessGender(lemma string) phrase.Gender {
	r, size := utf8.DecodeLastRuneInString(lemma)
	if size == 0 {
		return phrase.GenderMasc
	}
	switch r {
	case 'а', 'я':
		return phrase.GenderFem
	case 'о', 'е':
		return phrase.GenderNeut
	case 'ь':
		// ambiguous in Russian without a dictionary; default to feminine,
		// the more frequent class for abstract nouns ending in ь.
		return phrase.GenderFem
	default:
		return phrase.GenderMasc
	}
}

// nounEndings is a case x number ending table for one noun declension
// paradigm, keyed the way declineNoun looks it up: [number][case].
type nounEndings [2][8]string

const (
	numSing = 0
	numPlur = 1
)

var (
	// Masculine hard-stem, zero nominative ending ("стол").
	nounMasc = nounEndings{
		numSing: {"", "а", "е", "у", "ом", "е", "а", ""},
		numPlur: {"ы", "ов", "ам", "ы", "ами", "ах", "", "ы"},
	}
	// Feminine "-а" stem ("картина"); stem strips the final "а"/"я".
	nounFem = nounEndings{
		numSing: {"а", "ы", "е", "у", "ой", "е", "ы", "а"},
		numPlur: {"ы", "", "ам", "ы", "ами", "ах", "", "ы"},
	}
	// Neuter "-о" stem ("окно"); stem strips the final "о"/"е".
	nounNeut = nounEndings{
		numSing: {"о", "а", "у", "о", "ом", "е", "а", "о"},
		numPlur: {"а", "", "ам", "а", "ами", "ах", "", "а"},
	}
)

// caseIdx maps Case.Raw onto the ending-table column; cases the table
// doesn't model (Par, Voc) fall back to Nom.
func caseIdx(c phrase.Case) int {
	switch c {
	case phrase.CaseGen:
		return 1
	case phrase.CaseDat:
		return 2
	case phrase.CaseAcc:
		return 3
	case phrase.CaseIns:
		return 4
	case phrase.CaseLoc:
		return 5
	default:
		return 0
	}
}

func nounStem(lemma string, gender phrase.Gender) string {
	switch gender {
	case phrase.GenderFem, phrase.GenderNeut:
		if r, size := utf8.DecodeLastRuneInString(lemma); size > 0 {
			return lemma[:len(lemma)-size]
		}
	}
	return lemma
}

func declineNoun(lemma string, gender phrase.Gender, number phrase.Number, cs phrase.Case) string {
	table := nounMasc
	switch gender {
	case phrase.GenderFem:
		table = nounFem
	case phrase.GenderNeut:
		table = nounNeut
	}
	n := numSing
	if number == phrase.NumberPlur {
		n = numPlur
	}
	return nounStem(lemma, gender) + table[n][caseIdx(cs)]
}

// adjEndings is the hard-stem adjective paradigm ("красивый"), singular
// only: keyed by gender, indexed by case. Plural forms, which collapse
// gender, are in adjPlurEndings. Soft-stem adjectives (ending "-ий" with a
// preceding soft consonant) and animacy-sensitive accusative are not
// modeled.
var adjEndings = map[phrase.Gender][8]string{
	phrase.GenderMasc: {"ый", "ого", "ому", "ый", "ым", "ом", "ого", "ый"},
	phrase.GenderFem:  {"ая", "ой", "ой", "ую", "ой", "ой", "ой", "ая"},
	phrase.GenderNeut: {"ое", "ого", "ому", "ое", "ым", "ом", "ого", "ое"},
}

var adjPlurEndings = [8]string{"ые", "ых", "ым", "ые", "ыми", "ых", "ых", "ые"}

func adjStem(lemma string) string {
	if len(lemma) >= 4 && strings.HasSuffix(lemma, "ый") {
		return lemma[:len(lemma)-len("ый")]
	}
	if len(lemma) >= 4 && strings.HasSuffix(lemma, "ий") {
		return lemma[:len(lemma)-len("ий")]
	}
	if len(lemma) >= 4 && strings.HasSuffix(lemma, "ой") {
		return lemma[:len(lemma)-len("ой")]
	}
	return lemma
}

func declineAdjective(lemma string, gender phrase.Gender, number phrase.Number, cs phrase.Case) string {
	stem := adjStem(lemma)
	idx := caseIdx(cs)
	if number == phrase.NumberPlur {
		return stem + adjPlurEndings[idx]
	}
	endings, ok := adjEndings[gender]
	if !ok {
		endings = adjEndings[phrase.GenderMasc]
	}
	return stem + endings[idx]
}

// RussianInflector implements Inflector for lemma sequences annotated as
// Russian (§4.8). analyzer is memoized through a bounded LRU so repeated
// lemmas across phrases/sentences cost one analysis.
type RussianInflector struct {
	analyzer MorphAnalyzer
	cache    *lruCache[morphCacheKey, []MorphParse]
}

// NewRussianInflector builds a Russian inflector; cacheSize bounds the
// morphological-parse LRU (§9: must be a true LRU, not clear-on-overflow).
func NewRussianInflector(analyzer MorphAnalyzer, cacheSize int) *RussianInflector {
	if analyzer == nil {
		analyzer = ruleAnalyzer{}
	}
	return &RussianInflector{
		analyzer: analyzer,
		cache:    newLRUCache[morphCacheKey, []MorphParse](cacheSize),
	}
}

func (r *RussianInflector) analyze(lemma string) []MorphParse {
	key := morphCacheKey{lemma: lemma}
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}
	parses := r.analyzer.Analyze(lemma)
	r.cache.Put(key, parses)
	return parses
}

// bestParse picks the analysis variant matching gender when one is
// available, else the first parse.
func (r *RussianInflector) bestParse(lemma string, gender phrase.Gender) MorphParse {
	parses := r.analyze(lemma)
	if len(parses) == 0 {
		return MorphParse{Pos: phrase.PosNOUN, Gender: gender, Number: phrase.NumberSing, Case: phrase.CaseNom}
	}
	for _, p := range parses {
		if p.Gender == gender {
			return p
		}
	}
	return parses[0]
}

// InflectHead realizes w's lemma as the phrase head's own surface form:
// a NOUN head is declined in its own gender, number and case; a PROPN head
// is only Title-cased, not declined; other heads keep their lemma.
func (r *RussianInflector) InflectHead(w *phrase.Word, lemma string) string {
	switch w.Pos {
	case phrase.PosNOUN:
		gender := w.Gender
		if gender == phrase.GenderUndef {
			gender = r.bestParse(lemma, gender).Gender
		}
		return declineNoun(lemma, gender, w.Number, w.Case)
	case phrase.PosPROPN:
		return titleCase(lemma)
	default:
		return lemma
	}
}

// InflectPair realizes mod's lemma in agreement with head (§4.8): a NOUN
// modifier is declined as a noun in its own (number, case, gender); neither
// its link to the head nor the head's PoS is checked. A PROPN modifier is
// only Title-cased, not declined. An ADJ/PARTICIPLE modifier (or its short
// form) agrees with the head's gender/number/case; any other modifier keeps
// its lemma.
func (r *RussianInflector) InflectPair(head, mod *phrase.Word, modLemma string) string {
	switch mod.Pos {
	case phrase.PosNOUN:
		gender := mod.Gender
		if gender == phrase.GenderUndef {
			gender = r.bestParse(modLemma, gender).Gender
		}
		return declineNoun(modLemma, gender, mod.Number, mod.Case)
	case phrase.PosPROPN:
		return titleCase(modLemma)
	case phrase.PosADJ, phrase.PosPARTICIPLE, phrase.PosADJ_SHORT, phrase.PosPARTICIPLE_SHORT:
		gender := head.Gender
		number := head.Number
		cs := head.Case
		return declineAdjective(modLemma, gender, number, cs)
	default:
		return modLemma
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}
