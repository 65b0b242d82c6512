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

import "github.com/czcorpus/depphrase/phrase"

// AuxInfo is the per-word state the conjunct-resolution pass (§4.3)
// produces: the "real head" a conjunct effectively modifies, the effective
// parent offset/link used for eligibility tests in its place, the shared
// conjunct set guarding against co-membership, and whatever the conjunct
// inherits from its chain's real head when it has no modifiers of its own.
type AuxInfo struct {
	RealHead            int
	EffectiveParentOffs int
	EffectiveSyntLink   phrase.SyntLink
	ConjSet             []int
	InheritedMods       []int
	InheritedPrep       *phrase.PrepInfo
}

// buildAuxInfo walks every word's CONJ chain (§4.3). A word linked via CONJ
// effectively modifies whatever its chain's first non-CONJ ancestor (the
// "real head") modifies, under that ancestor's own relation; all members of
// one CONJ chain share a conjunct set so a later build step can refuse to
// let two coordinated conjuncts enter the same phrase together. Cycles
// (malformed input) are defended against with a step cap.
func buildAuxInfo(sent *phrase.Sentence, children [][]int) []AuxInfo {
	n := sent.Len()
	aux := make([]AuxInfo, n)
	for i, w := range sent.Words {
		aux[i].RealHead = i
		aux[i].EffectiveParentOffs = w.ParentOffs
		aux[i].EffectiveSyntLink = w.SyntLink
	}

	for i, w := range sent.Words {
		if w.SyntLink != phrase.LinkCONJ {
			continue
		}
		chain := []int{i}
		cur := i
		steps := 0
		for {
			cw := sent.Words[cur]
			if !cw.HasParent() {
				break
			}
			next := cur + cw.ParentOffs
			if next < 0 || next >= n || next == cur {
				break
			}
			steps++
			if steps > n {
				break
			}
			cur = next
			chain = append(chain, cur)
			if sent.Words[cur].SyntLink != phrase.LinkCONJ {
				break
			}
		}
		realHead := cur
		realHeadW := sent.Words[realHead]
		for _, pos := range chain {
			if pos == realHead {
				continue
			}
			aux[pos].RealHead = realHead
			aux[pos].EffectiveSyntLink = realHeadW.SyntLink
			if realHeadW.HasParent() {
				grandParent := realHead + realHeadW.ParentOffs
				aux[pos].EffectiveParentOffs = grandParent - pos
			} else {
				aux[pos].EffectiveParentOffs = 0
			}
		}
		for _, pos := range chain {
			var others []int
			for _, p2 := range chain {
				if p2 != pos {
					others = append(others, p2)
				}
			}
			aux[pos].ConjSet = others
		}
	}

	// Effect #3: a conjunct lacking modifiers of its own inherits modifiers
	// of the chain's real head positioned outside [real_head, conjunct].
	for pos := range aux {
		if aux[pos].RealHead == pos {
			continue
		}
		if len(children[pos]) > 0 {
			continue
		}
		realHead := aux[pos].RealHead
		lo, hi := realHead, pos
		if lo > hi {
			lo, hi = hi, lo
		}
		for _, modPos := range children[realHead] {
			if modPos >= lo && modPos <= hi {
				continue
			}
			aux[pos].InheritedMods = append(aux[pos].InheritedMods, modPos)
		}
		if sent.Words[pos].Extra.PrepWhiteList == nil &&
			sent.Words[realHead].Extra.PrepWhiteList != nil {
			aux[pos].InheritedPrep = sent.Words[realHead].Extra.PrepWhiteList
		}
	}
	return aux
}

// sharesConjunct reports whether any position in positions is a member of
// pos's conjunct set (effect #2 of §4.3).
func sharesConjunct(aux []AuxInfo, pos int, positions []int) bool {
	if len(aux[pos].ConjSet) == 0 {
		return false
	}
	set := make(map[int]struct{}, len(aux[pos].ConjSet))
	for _, p := range aux[pos].ConjSet {
		set[p] = struct{}{}
	}
	for _, p := range positions {
		if _, ok := set[p]; ok {
			return true
		}
	}
	return false
}
