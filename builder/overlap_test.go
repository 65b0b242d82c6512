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

	"github.com/czcorpus/depphrase/phrase"
)

func TestKeepNonOverlapping(t *testing.T) {
	big := &phrase.Phrase{SentPosList: []int{0, 1, 2}}
	contained := &phrase.Phrase{SentPosList: []int{1, 2}}
	disjoint := &phrase.Phrase{SentPosList: []int{5, 6}}

	kept := KeepNonOverlapping([]*phrase.Phrase{contained, big, disjoint})

	assert.Len(t, kept, 2)
	assert.Contains(t, kept, big)
	assert.Contains(t, kept, disjoint)
	assert.NotContains(t, kept, contained)
}

func TestKeepNonOverlapping_EqualSizeDisjointBothSurvive(t *testing.T) {
	a := &phrase.Phrase{SentPosList: []int{0, 1}}
	b := &phrase.Phrase{SentPosList: []int{2, 3}}

	kept := KeepNonOverlapping([]*phrase.Phrase{a, b})
	assert.Len(t, kept, 2)
}
