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

import "strings"

// ReprEnhType tags the kind of cosmetic decoration a ReprEnhancer applies
// when rendering a phrase's string representation.
type ReprEnhType int

const (
	AddWord ReprEnhType = iota
	AddSuffix
)

// ReprEnhancer is a single display-only decoration attached to a phrase
// position: either an extra word rendered immediately before that
// position's word (e.g. a reconstructed preposition), or a suffix glued
// onto it (e.g. English possessive "'s"). RelPos is stored and serialized
// but GetStrRepr does not use it.
type ReprEnhancer struct {
	Type   ReprEnhType
	Value  string
	RelPos int
}

// PhraseType distinguishes phrases seeded by the MWE pre-pass from ones the
// full DP builder assembled from scratch.
type PhraseType int

const (
	Default PhraseType = iota
	MWE
)

// HeadModifier records cosmetic decorations anchored to the phrase head:
// the whitelisted preposition that introduces it (if any) and a display
// suffix.
type HeadModifier struct {
	PrepMod       *PrepInfo
	ReprModSuffix string
}

// Phrase is an immutable snapshot of a connected sub-tree of a Sentence's
// dependency tree. It never aliases the sentence: Words holds copies of
// lemmas, rewritten in place by the inflection engine without touching the
// originating Sentence.
type Phrase struct {
	SentPosList   []int
	HeadPos       int
	Words         []string
	Deps          []int
	IDHolder      PhraseId
	HeadModifier  *HeadModifier
	ReprModifiers [][]ReprEnhancer
	PhraseType    PhraseType
}

// FromWord builds the size-1 phrase rooted at sentence position pos.
func FromWord(sent *Sentence, pos int) *Phrase {
	w := sent.Words[pos]
	p := &Phrase{
		SentPosList: []int{pos},
		HeadPos:     0,
		Words:       []string{w.Lemma},
		Deps:        []int{0},
		IDHolder:    NewPhraseID(w),
		ReprModifiers: [][]ReprEnhancer{nil},
	}
	if w.Extra.PrepWhiteList != nil || w.Extra.ReprModSuffix != "" {
		hm := &HeadModifier{ReprModSuffix: w.Extra.ReprModSuffix}
		if w.Extra.PrepWhiteList != nil {
			pi := *w.Extra.PrepWhiteList
			hm.PrepMod = &pi
		}
		p.HeadModifier = hm
	}
	return p
}

// Size returns the number of tokens participating in the phrase.
func (p *Phrase) Size() int {
	return len(p.SentPosList)
}

// Copy returns a deep-enough copy safe to mutate (merge always builds a
// fresh Phrase rather than aliasing an existing one, but callers that want
// to tweak ReprModifiers in place should start from Copy).
func (p *Phrase) Copy() *Phrase {
	cp := &Phrase{
		SentPosList: append([]int(nil), p.SentPosList...),
		HeadPos:     p.HeadPos,
		Words:       append([]string(nil), p.Words...),
		Deps:        append([]int(nil), p.Deps...),
		IDHolder:    p.IDHolder,
		PhraseType:  p.PhraseType,
	}
	if p.HeadModifier != nil {
		hm := *p.HeadModifier
		cp.HeadModifier = &hm
	}
	if p.ReprModifiers != nil {
		cp.ReprModifiers = make([][]ReprEnhancer, len(p.ReprModifiers))
		for i, rs := range p.ReprModifiers {
			cp.ReprModifiers[i] = append([]ReprEnhancer(nil), rs...)
		}
	}
	return cp
}

// GetHeadModifier returns the phrase's head-anchored cosmetic decoration,
// or nil.
func (p *Phrase) GetHeadModifier() *HeadModifier {
	return p.HeadModifier
}

// GetHeadPos returns the sentence position of the phrase's head word.
func (p *Phrase) GetHeadPos() int {
	return p.SentPosList[p.HeadPos]
}

// GetSentPosList returns the sorted sentence positions participating in the
// phrase.
func (p *Phrase) GetSentPosList() []int {
	return p.SentPosList
}

// GetWords returns the phrase's lemma/surface-form vector, parallel to
// SentPosList.
func (p *Phrase) GetWords() []string {
	return p.Words
}

// GetDeps returns the phrase-local dependency offsets, parallel to
// SentPosList.
func (p *Phrase) GetDeps() []int {
	return p.Deps
}

// GetReprModifiers returns the per-position display decorations.
func (p *Phrase) GetReprModifiers() [][]ReprEnhancer {
	return p.ReprModifiers
}

// GetIDHolder returns the phrase's PhraseId.
func (p *Phrase) GetIDHolder() PhraseId {
	return p.IDHolder
}

// GetID returns the phrase's order-independent fingerprint. withPrep must
// be true only when this phrase is about to be folded as someone else's
// modifier.
func (p *Phrase) GetID(withPrep bool) uint64 {
	return p.IDHolder.GetID(withPrep)
}

// GetStrRepr renders the phrase as a single display string: words in
// SentPosList order, with ReprEnhancer decorations (added words / suffixes)
// applied.
//
// p.HeadModifier itself is never consulted here: it records what this
// phrase's own head would need (a governing preposition, a possessive
// suffix) were this phrase to be folded as someone else's modifier. merge
// turns that into a positioned ReprEnhancer on the *enclosing* phrase at
// the moment the fold happens (§4.6); a phrase printed at its own top level
// has no such governor in scope, so nothing here renders for it. This is
// why a 2-word phrase headed by a word with its own whitelisted
// preposition prints without that preposition, while the 3-word phrase one
// level up — where it now IS a modifier — prints with it.
func (p *Phrase) GetStrRepr() string {
	var toks []string
	for i, w := range p.Words {
		word := w
		if i < len(p.ReprModifiers) {
			for _, enh := range p.ReprModifiers[i] {
				switch enh.Type {
				case AddWord:
					toks = append(toks, enh.Value)
				case AddSuffix:
					word = word + enh.Value
				}
			}
		}
		toks = append(toks, word)
	}
	return strings.Join(toks, " ")
}

// Contains reports whether other's sentence positions are a subset of p's.
func (p *Phrase) Contains(other *Phrase) bool {
	set := make(map[int]struct{}, len(p.SentPosList))
	for _, pos := range p.SentPosList {
		set[pos] = struct{}{}
	}
	for _, pos := range other.SentPosList {
		if _, ok := set[pos]; !ok {
			return false
		}
	}
	return true
}

// Intersects reports whether p and other share at least one sentence
// position.
func (p *Phrase) Intersects(other *Phrase) bool {
	set := make(map[int]struct{}, len(p.SentPosList))
	for _, pos := range p.SentPosList {
		set[pos] = struct{}{}
	}
	for _, pos := range other.SentPosList {
		if _, ok := set[pos]; ok {
			return true
		}
	}
	return false
}

// Overlaps is an alias for Intersects kept for the teacher's naming
// convention in overlap-filtering callers (§4.7).
func (p *Phrase) Overlaps(other *Phrase) bool {
	return p.Intersects(other)
}
