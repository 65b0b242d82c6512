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

// PhraseId is the order-independent fingerprint of a phrase: a commutative,
// associative fold over the word ids of its component tokens, plus a
// separately tracked preposition contribution that only enters the fold
// when the phrase is consumed as a modifier (§9: "Prep_id is combined into
// the output only ... as a modifier, never in its free-standing id").
//
// Any mixing function meeting the commutative/associative contract is an
// acceptable "external 64-bit mixer" (§9); this one is a splitmix64-style
// avalanche finalizer folded with XOR, which is commutative and resists
// cancellation between distinct word ids.
type PhraseId struct {
	id      uint64
	prepID  uint64
	hasPrep bool
}

// mix64 is the splitmix64 finalizer, used to spread a word id across all
// bits before it is folded into a PhraseId via XOR. The finalizer is
// deterministic, so two words with equal ids (the same lemma and language)
// still cancel each other out of the fold.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// NewPhraseID builds the id for a freshly created size-1 phrase rooted at
// word w. If w carries a reconstructed whitelisted preposition (§4.2), the
// preposition's own word id is recorded as the prep contribution, available
// via GetID(true) once this phrase is later used as someone else's
// modifier.
func NewPhraseID(w *Word) PhraseId {
	id := PhraseId{id: mix64(w.WordID())}
	if w.Extra.PrepWhiteList != nil {
		id.prepID = mix64(w.Extra.PrepWhiteList.WordID)
		id.hasPrep = true
	}
	return id
}

// GetID returns the phrase's fingerprint. withPrep must be true exactly
// when the phrase is being folded into another phrase as a modifier
// (merge_mod below always requests the with-prep id of its operand); a
// phrase's own free-standing id is always GetID(false).
func (p PhraseId) GetID(withPrep bool) uint64 {
	if withPrep && p.hasPrep {
		return p.id ^ p.prepID
	}
	return p.id
}

// MergeMod folds mod's with-prep id into the receiver (the head side of a
// merge) and returns the new combined id. The result keeps the receiver's
// own prep contribution (a merged phrase's "introducing preposition", if
// any, is always inherited from its head, never its modifier). modOnLeft is
// accepted for parity with the merge operation's signature (§4.6) but does
// not affect the id: the fold is commutative by construction.
func (p PhraseId) MergeMod(mod PhraseId, modOnLeft bool) PhraseId {
	return PhraseId{
		id:      p.id ^ mod.GetID(true),
		prepID:  p.prepID,
		hasPrep: p.hasPrep,
	}
}
