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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czcorpus/cnc-gokit/collections"

	"github.com/czcorpus/depphrase/phrase"
)

func TestMergeSortedDisjoint(t *testing.T) {
	merged, ok := mergeSortedDisjoint([]int{0, 3}, []int{1, 2})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, merged)

	_, ok = mergeSortedDisjoint([]int{0, 3}, []int{3, 4})
	assert.False(t, ok, "overlapping position sets must be rejected")
}

func TestMerge_OverlappingPositionsRejected(t *testing.T) {
	sent := phrase.NewSentence([]*phrase.Word{
		w("h", 0, phrase.PosNOUN, phrase.LinkROOT),
		w("m", -1, phrase.PosADJ, phrase.LinkAMOD),
	})
	head := phrase.FromWord(sent, 0)
	other := phrase.FromWord(sent, 0)
	dedup := collections.NewSet[string]()

	assert.Nil(t, merge(sent, head, other, dedup))
}

func TestMerge_DedupSkipsRepeatedPositionSet(t *testing.T) {
	sent := phrase.NewSentence([]*phrase.Word{
		w("h", 0, phrase.PosNOUN, phrase.LinkROOT),
		w("m", -1, phrase.PosADJ, phrase.LinkAMOD),
	})
	head := phrase.FromWord(sent, 0)
	other := phrase.FromWord(sent, 1)
	dedup := collections.NewSet[string]()

	first := merge(sent, head, other, dedup)
	require.NotNil(t, first)

	second := merge(sent, head, other, dedup)
	assert.Nil(t, second, "an already-seen merged position set must be dropped")
}

func TestMerge_PrepFollowingOwnModifierIsRejected(t *testing.T) {
	// a whitelisted preposition recorded at a position that falls inside
	// the modifier's own span would have to render after the words it
	// introduces; merge must refuse that candidate (§4.6).
	sent := phrase.NewSentence([]*phrase.Word{
		w("h", 0, phrase.PosNOUN, phrase.LinkROOT),
		w("m", 1, phrase.PosADJ, phrase.LinkAMOD),
	})
	head := phrase.FromWord(sent, 0)
	other := phrase.FromWord(sent, 1)
	other.HeadModifier = &phrase.HeadModifier{
		PrepMod: &phrase.PrepInfo{Pos: 1, Surface: "of"},
	}
	dedup := collections.NewSet[string]()

	assert.Nil(t, merge(sent, head, other, dedup))
}
