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
	"fmt"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"

	"github.com/czcorpus/depphrase/phrase"
)

// mergeSortedDisjoint two-way merges a and b, both already strictly
// increasing; ok is false if they share any position.
func mergeSortedDisjoint(a, b []int) (merged []int, ok bool) {
	merged = make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			merged = append(merged, a[i])
			i++
		case a[i] > b[j]:
			merged = append(merged, b[j])
			j++
		default:
			return nil, false
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged, true
}

func dedupKey(positions []int) string {
	var b strings.Builder
	for i, p := range positions {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", p)
	}
	return b.String()
}

func minInt(vals []int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// merge implements §4.6: combine head (the head-rooted phrase) with other
// (a modifier-rooted phrase) into a fresh Phrase. A nil result means
// the candidate was legitimately dropped (overlap, a preposition that
// would have to follow its own modifiers, or a position-set already seen)
// — none of these are fatal to the surrounding build.
func merge(sent *phrase.Sentence, head, other *phrase.Phrase, dedup *collections.Set[string]) *phrase.Phrase {
	if other.HeadModifier != nil && other.HeadModifier.PrepMod != nil {
		lo, hi := other.SentPosList[0], other.SentPosList[len(other.SentPosList)-1]
		pp := other.HeadModifier.PrepMod.Pos
		if pp >= lo && pp <= hi {
			return nil
		}
	}

	mergedPos, ok := mergeSortedDisjoint(head.SentPosList, other.SentPosList)
	if !ok {
		return nil
	}
	key := dedupKey(mergedPos)
	if dedup.Contains(key) {
		return nil
	}

	posIndex := make(map[int]int, len(mergedPos))
	for idx, p := range mergedPos {
		posIndex[p] = idx
	}

	n := len(mergedPos)
	newDeps := make([]int, n)
	newWords := make([]string, n)
	newReprMods := make([][]phrase.ReprEnhancer, n)

	headNewIdx := make([]int, head.Size())
	for i, p := range head.SentPosList {
		headNewIdx[i] = posIndex[p]
	}
	otherNewIdx := make([]int, other.Size())
	for j, p := range other.SentPosList {
		otherNewIdx[j] = posIndex[p]
	}

	for i, localDep := range head.Deps {
		ni := headNewIdx[i]
		newWords[ni] = sent.Words[mergedPos[ni]].Lemma
		if localDep == 0 {
			newDeps[ni] = 0
		} else {
			target := i + localDep
			newDeps[ni] = headNewIdx[target] - ni
		}
		if i < len(head.ReprModifiers) {
			newReprMods[ni] = append([]phrase.ReprEnhancer(nil), head.ReprModifiers[i]...)
		}
	}

	newHeadPos := headNewIdx[head.HeadPos]

	for j, localDep := range other.Deps {
		nj := otherNewIdx[j]
		newWords[nj] = sent.Words[mergedPos[nj]].Lemma
		if j == other.HeadPos {
			newDeps[nj] = newHeadPos - nj
		} else {
			target := j + localDep
			newDeps[nj] = otherNewIdx[target] - nj
		}
		if j < len(other.ReprModifiers) {
			newReprMods[nj] = append([]phrase.ReprEnhancer(nil), other.ReprModifiers[j]...)
		}
	}

	if other.HeadModifier != nil {
		if other.HeadModifier.PrepMod != nil {
			insertPos := minInt(otherNewIdx)
			newReprMods[insertPos] = append(newReprMods[insertPos], phrase.ReprEnhancer{
				Type:   phrase.AddWord,
				Value:  other.HeadModifier.PrepMod.Surface,
				RelPos: -otherNewIdx[other.HeadPos],
			})
		}
		if other.HeadModifier.ReprModSuffix != "" {
			otherHeadNew := otherNewIdx[other.HeadPos]
			newReprMods[otherHeadNew] = append(newReprMods[otherHeadNew], phrase.ReprEnhancer{
				Type:   phrase.AddSuffix,
				Value:  other.HeadModifier.ReprModSuffix,
				RelPos: 0,
			})
		}
	}

	otherOnLeft := other.GetHeadPos() < head.GetHeadPos()
	newPhrase := &phrase.Phrase{
		SentPosList:   mergedPos,
		HeadPos:       newHeadPos,
		Words:         newWords,
		Deps:          newDeps,
		IDHolder:      head.GetIDHolder().MergeMod(other.GetIDHolder(), otherOnLeft),
		HeadModifier:  head.HeadModifier,
		ReprModifiers: newReprMods,
		PhraseType:    head.PhraseType,
	}
	dedup.Add(key)
	return newPhrase
}
