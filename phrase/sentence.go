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
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/depphrase/perr"
)

// Sentence is an ordered sequence of Words forming a single dependency tree
// (I-S1, I-S2). It may carry phrases computed by a builder.
type Sentence struct {
	Words   []*Word
	Phrases []*Phrase
}

// NewSentence wraps a word slice into a Sentence, without validating tree
// invariants (callers are responsible for I-S1/I-S2; the CoNLL-U reader
// does not check them either, so cmd/phrasex runs ValidateTree on every
// ingested sentence).
func NewSentence(words []*Word) *Sentence {
	return &Sentence{Words: words}
}

func (s *Sentence) Len() int {
	return len(s.Words)
}

// HeadPos returns the sentence-relative index of w's head, and false if w
// has no parent.
func (s *Sentence) HeadPos(pos int) (int, bool) {
	w := s.Words[pos]
	if !w.HasParent() {
		return 0, false
	}
	return pos + w.ParentOffs, true
}

// ValidateTree checks I-S1 (in-range parents) and I-S2 (acyclic), returning
// perr.ErrMalformedInput on the first violation it finds. The core never
// calls this itself (tree construction is an ingestion-layer concern) but
// it is exposed for callers that want to fail fast on untrusted input.
func (s *Sentence) ValidateTree() error {
	for i, w := range s.Words {
		if !w.HasParent() {
			continue
		}
		head := i + w.ParentOffs
		if head < 0 || head >= len(s.Words) {
			return perr.ErrMalformedInput
		}
	}
	seen := make([]bool, len(s.Words))
	for i := range s.Words {
		cur := i
		steps := 0
		for {
			w := s.Words[cur]
			if !w.HasParent() {
				break
			}
			steps++
			if steps > len(s.Words) {
				return perr.ErrMalformedInput
			}
			cur += w.ParentOffs
			if cur == i {
				return perr.ErrMalformedInput
			}
		}
		seen[i] = true
	}
	_ = seen
	return nil
}

// Filter keeps only the words for which keep returns true, repairing parent
// links per I-S3: a kept word whose parent was removed is re-parented onto
// its nearest surviving ancestor, or — if none survives — demoted to
// SyntLink ORPHAN with ParentOffs 0. Any Phrase referencing a removed
// position is dropped (it would otherwise violate I-P1/I-P3).
//
// Grounded on the parent-remapping walk in the upstream tree-adjustment
// pass this module's CoNLL-U ingestion descends from.
func (s *Sentence) Filter(keep func(w *Word) bool) *Sentence {
	n := len(s.Words)
	keepFlags := make([]bool, n)
	for i, w := range s.Words {
		keepFlags[i] = keep(w)
	}

	// nearestSurvivingAncestor walks up the original tree from pos until it
	// finds a kept ancestor (or runs out of parents).
	nearestSurvivingAncestor := func(pos int) (int, bool) {
		cur := pos
		steps := 0
		for {
			w := s.Words[cur]
			if !w.HasParent() {
				return 0, false
			}
			cur += w.ParentOffs
			steps++
			if steps > n {
				log.Warn().Msg("cycle detected while repairing sentence links")
				return 0, false
			}
			if cur < 0 || cur >= n {
				log.Warn().Msg("parent offset out of range while repairing sentence links")
				return 0, false
			}
			if keepFlags[cur] {
				return cur, true
			}
		}
	}

	oldToNew := make([]int, n)
	newWords := make([]*Word, 0, n)
	for i, w := range s.Words {
		if !keepFlags[i] {
			oldToNew[i] = -1
			continue
		}
		oldToNew[i] = len(newWords)
		cp := *w
		newWords = append(newWords, &cp)
	}

	for oldIdx, nw := range oldToNew {
		if nw < 0 {
			continue
		}
		w := newWords[nw]
		if !w.HasParent() {
			continue
		}
		oldHead := oldIdx + w.ParentOffs
		if oldHead >= 0 && oldHead < n && keepFlags[oldHead] {
			w.ParentOffs = oldToNew[oldHead] - nw
			continue
		}
		ancestor, ok := nearestSurvivingAncestor(oldIdx)
		if ok {
			w.ParentOffs = oldToNew[ancestor] - nw
		} else {
			w.SyntLink = LinkORPHAN
			w.ParentOffs = 0
		}
	}

	var newPhrases []*Phrase
	for _, p := range s.Phrases {
		dropped := false
		for _, pos := range p.SentPosList {
			if pos < 0 || pos >= n || !keepFlags[pos] {
				dropped = true
				break
			}
		}
		if !dropped {
			newPhrases = append(newPhrases, p)
		}
	}

	return &Sentence{Words: newWords, Phrases: newPhrases}
}

// ChildrenIndex returns, for every position, the list of positions whose
// ParentOffs points at it — the all_mods_index of §4.5 step 1.
func (s *Sentence) ChildrenIndex() [][]int {
	idx := make([][]int, len(s.Words))
	for i, w := range s.Words {
		if !w.HasParent() {
			continue
		}
		head := i + w.ParentOffs
		if head < 0 || head >= len(s.Words) {
			continue
		}
		idx[head] = append(idx[head], i)
	}
	return idx
}
