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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhrase_ToDictFromDictRoundTrip(t *testing.T) {
	h2 := wordFor("h2", PosNOUN)
	p := FromWord(NewSentence([]*Word{h2}), 0)
	p.HeadModifier = &HeadModifier{
		PrepMod:       &PrepInfo{Pos: 1, Surface: "of", WordID: 42},
		ReprModSuffix: "'s",
	}
	p.ReprModifiers = [][]ReprEnhancer{{{Type: AddSuffix, Value: "'s", RelPos: 0}}}

	d := p.ToDict()
	back := FromDict(d)

	assert.Equal(t, p.SentPosList, back.SentPosList)
	assert.Equal(t, p.HeadPos, back.HeadPos)
	assert.Equal(t, p.Words, back.Words)
	assert.Equal(t, p.Deps, back.Deps)
	assert.Equal(t, p.GetID(false), back.GetID(false))
	require.NotNil(t, back.HeadModifier)
	assert.Equal(t, p.HeadModifier.ReprModSuffix, back.HeadModifier.ReprModSuffix)
	require.NotNil(t, back.HeadModifier.PrepMod)
	assert.Equal(t, p.HeadModifier.PrepMod.Surface, back.HeadModifier.PrepMod.Surface)
}

func TestPhrase_ContainsAndIntersects(t *testing.T) {
	big := &Phrase{SentPosList: []int{0, 1, 2}}
	small := &Phrase{SentPosList: []int{1, 2}}
	disjoint := &Phrase{SentPosList: []int{5}}

	assert.True(t, big.Contains(small))
	assert.False(t, small.Contains(big))
	assert.True(t, big.Intersects(disjoint) == false)
	assert.True(t, big.Overlaps(small))
}

// TestPhrase_GetStrRepr_PrepOnlyWhenNested mirrors spec scenario 1: a
// preposition recorded on a phrase's own HeadModifier must not appear when
// that phrase is printed at its own top level, only once it has been
// folded as someone else's modifier (where merge turns it into a
// positioned ReprEnhancer on the enclosing phrase).
func TestPhrase_GetStrRepr_PrepOnlyWhenNested(t *testing.T) {
	standalone := &Phrase{
		Words:         []string{"m1", "h2"},
		HeadPos:       1,
		ReprModifiers: [][]ReprEnhancer{nil, nil},
		HeadModifier:  &HeadModifier{PrepMod: &PrepInfo{Surface: "of"}},
	}
	assert.Equal(t, "m1 h2", standalone.GetStrRepr())

	nested := &Phrase{
		Words: []string{"h1", "m1", "h2"},
		ReprModifiers: [][]ReprEnhancer{
			nil,
			{{Type: AddWord, Value: "of"}},
			nil,
		},
	}
	assert.Equal(t, "h1 of m1 h2", nested.GetStrRepr())
}
