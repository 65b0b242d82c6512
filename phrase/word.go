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

import "hash/fnv"

// PrepInfo records a reconstructed preposition string attached to a word
// via the extra-annotations pass (§4.2).
type PrepInfo struct {
	Pos     int
	Surface string
	WordID  uint64
}

// Extra carries the post-processing annotations added to a Word before
// phrase building: reconstructed whitelisted/non-whitelisted prepositions
// and a display suffix (e.g. English possessive "'s").
type Extra struct {
	PrepWhiteList   *PrepInfo
	PrepMod         []PrepInfo
	ReprModSuffix   string
}

// Word is a single dependency-tree token as consumed by the phrase builder.
// It is deliberately independent of any concrete corpus format: the CoNLL-U
// ingestion adapter is responsible for producing a stream of these.
type Word struct {
	Lemma      string
	Form       string
	ByteOffset int
	ByteLength int
	Pos        Pos
	SyntLink   SyntLink
	// ParentOffs is the signed offset, relative to this word's own index in
	// its Sentence, to its syntactic head. Zero means ROOT/no head.
	ParentOffs int
	Lang       Lang

	Number  Number
	Gender  Gender
	Case    Case
	Tense   Tense
	Person  Person
	Degree  Degree
	Voice   Voice
	Mood    Mood
	NumType NumType
	Animacy Animacy
	Aspect  Aspect

	Extra Extra

	// MWEHead can hold MWE phrases for which this word is the head (§4.4).
	// BuildMWE returns its phrases and does not fill this field.
	MWEHead []*Phrase

	wordID    uint64
	wordIDSet bool
}

// HasParent reports whether the word's ParentOffs names an actual head
// (false for ROOT or filtered-out words, per I-S1).
func (w *Word) HasParent() bool {
	return w.ParentOffs != 0
}

// WordID returns the word's lazily computed 64-bit fingerprint, folding
// lemma and language into a single commutative-friendly value via FNV-1a.
// Two words with the same (lemma, lang) always yield the same id; this is
// the "external 64-bit mixer" the phrase id fold builds on (§9).
func (w *Word) WordID() uint64 {
	if !w.wordIDSet {
		w.wordID = calcWordID(w.Lemma, w.Lang)
		w.wordIDSet = true
	}
	return w.wordID
}

// WordIDForLemma exposes the same lemma/lang fingerprint WordID uses, for
// callers (such as the extras-annotation pass) that need a word id for a
// reconstructed token that isn't itself a Word in the sentence.
func WordIDForLemma(lemma string, lang Lang) uint64 {
	return calcWordID(lemma, lang)
}

func calcWordID(lemma string, lang Lang) uint64 {
	h := fnv.New64a()
	h.Write([]byte(lemma))
	h.Write([]byte{0})
	h.Write([]byte(lang.Readable))
	return h.Sum64()
}

// IsStopWord reports whether the word's Pos belongs to the set of tags that
// upstream preprocessing typically filters out. It is provided for callers
// building a Sentence.Filter pass; the core builder does not call it.
func (w *Word) IsStopWord() bool {
	switch w.Pos {
	case PosUNDEF, PosPUNCT, PosDET, PosAUX, PosCCONJ, PosSCONJ, PosSYM, PosX,
		PosPART, PosADP, PosPRON:
		return true
	default:
		return false
	}
}
