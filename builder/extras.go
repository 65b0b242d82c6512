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

// Package builder implements the phrase-construction pipeline: the extras
// annotation pass, conjunct resolution, the greedy MWE pre-pass, the full
// dynamic-programming builder, the merge operation and overlap filtering.
package builder

import (
	"sort"

	"github.com/czcorpus/depphrase/phrase"
	"github.com/czcorpus/depphrase/profile"
)

// buildExtras implements §4.2: for every word, scan its left-side children
// (those preceding the head in sentence order) for an ADP linked via CASE,
// reconstruct the preposition surface by joining it with any FIXED children
// attached to that ADP, and route the result to either PrepWhiteList or
// PrepMod on the host word. If more than one whitelisted preposition
// attaches to the same host, the one closest to the host wins (§9's pinned
// redesign decision). PART children with SyntLink CASE and lemma "'s"/"'"
// set ReprModSuffix on the host regardless of side, since a possessive
// clitic can trail its host on either side of the tree.
func buildExtras(sent *phrase.Sentence, prof *profile.Profile, children [][]int) {
	for head, kids := range children {
		var bestPrep *phrase.PrepInfo
		bestDist := -1
		for _, c := range kids {
			cw := sent.Words[c]
			if cw.Pos == phrase.PosPART && cw.SyntLink == phrase.LinkCASE &&
				(cw.Lemma == "'s" || cw.Lemma == "'") {
				sent.Words[head].Extra.ReprModSuffix = cw.Lemma
				continue
			}
			if cw.Pos != phrase.PosADP || cw.SyntLink != phrase.LinkCASE {
				continue
			}
			if c >= head {
				continue
			}
			surface, wordPos := reconstructPrep(sent, children, c)
			info := phrase.PrepInfo{
				Pos:     wordPos,
				Surface: surface,
				WordID:  phrase.WordIDForLemma(surface, cw.Lang),
			}
			if prof.WhitelistedPreps.Contains(surface) {
				dist := abs(head - c)
				if bestPrep == nil || dist < bestDist {
					infoCopy := info
					bestPrep = &infoCopy
					bestDist = dist
				}
			} else {
				sent.Words[head].Extra.PrepMod = append(sent.Words[head].Extra.PrepMod, info)
			}
		}
		if bestPrep != nil {
			sent.Words[head].Extra.PrepWhiteList = bestPrep
		}
	}
}

// reconstructPrep concatenates adpPos's surface form with its FIXED
// children (in left-to-right sentence order) and returns the joined string
// plus the position of the leftmost token in the reconstruction.
func reconstructPrep(sent *phrase.Sentence, children [][]int, adpPos int) (string, int) {
	positions := []int{adpPos}
	for _, c := range children[adpPos] {
		if sent.Words[c].SyntLink == phrase.LinkFIXED {
			positions = append(positions, c)
		}
	}
	sort.Ints(positions)
	var buf []byte
	for i, pos := range positions {
		if i > 0 {
			buf = append(buf, ' ')
		}
		w := sent.Words[pos]
		form := w.Form
		if form == "" {
			form = w.Lemma
		}
		buf = append(buf, form...)
	}
	return string(buf), positions[0]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
