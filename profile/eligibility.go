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

package profile

import "github.com/czcorpus/depphrase/phrase"

// IsGoodHead implements §4.1's head predicate: a word is a good head iff
// its PoS is in good_head_pos, its language is resolved, and its own link
// to its parent is not in bad_head_rels.
func (p *Profile) IsGoodHead(w *phrase.Word) bool {
	if !p.GoodHeadPos.Contains(w.Pos.Byte()) {
		return false
	}
	if w.Lang == phrase.LangUndef {
		return false
	}
	if w.HasParent() && p.BadHeadRels.Contains(w.SyntLink.Raw) {
		return false
	}
	return true
}

// IsBannedModifier reports whether (lemma, pos, prep) matches one of the
// profile's banned_modifiers entries. prepSurface is empty when the
// modifier carries no reconstructed preposition.
func (p *Profile) IsBannedModifier(lemma string, pos phrase.Pos, prepSurface string) bool {
	for _, b := range p.BannedModifiers {
		if b.Lemma == lemma && b.Pos == pos && b.PrepSurface == prepSurface {
			return true
		}
	}
	return false
}

// TestNmod implements the additional check §4.1 requires for NMOD
// modifiers: the modifier's own PoS must be NOUN/PROPN, and it must either
// carry no preposition at all or a whitelisted one.
func (p *Profile) TestNmod(w *phrase.Word) bool {
	if w.Pos != phrase.PosNOUN && w.Pos != phrase.PosPROPN {
		return false
	}
	if len(w.Extra.PrepMod) > 0 && w.Extra.PrepWhiteList == nil {
		return false
	}
	return true
}

// IsGoodModifier implements §4.1's modifier predicate, excluding the
// conjunct-set/positions-already-taken checks that are a property of the
// in-progress build rather than the word alone (§4.3; handled by the
// builder package).
func (p *Profile) IsGoodModifier(w *phrase.Word) bool {
	return p.IsGoodModifierEff(w, w.ParentOffs, w.SyntLink)
}

// IsGoodModifierEff is IsGoodModifier parameterised over an effective
// parent offset/syntactic link, so a conjunct (§4.3) can be tested against
// the relation its chain's real head holds to its own parent, instead of
// the conjunct's own (CONJ) relation.
func (p *Profile) IsGoodModifierEff(w *phrase.Word, effOffs int, effLink phrase.SyntLink) bool {
	if effOffs == 0 {
		return false
	}
	if abs(effOffs) > p.MaxSyntaxDist {
		return false
	}
	if !p.GoodModPos.Contains(w.Pos.Byte()) {
		return false
	}
	if !p.GoodSyntRels.Contains(effLink.Raw) {
		return false
	}
	prepSurface := ""
	if w.Extra.PrepWhiteList != nil {
		prepSurface = w.Extra.PrepWhiteList.Surface
	}
	if p.IsBannedModifier(w.Lemma, w.Pos, prepSurface) {
		return false
	}
	if effLink == phrase.LinkNMOD && !p.TestNmod(w) {
		return false
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
