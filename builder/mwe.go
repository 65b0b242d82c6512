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
	"github.com/czcorpus/depphrase/phrase"
	"github.com/czcorpus/depphrase/profile"
)

// mweMaxVariantsBound is the variant cap the greedy MWE pre-pass uses,
// tighter than the full builder's default since tight-bond compounds
// rarely branch (§4.4).
const mweMaxVariantsBound = 3

// BuildMWE implements the greedy MWE pre-pass (§4.4): run the general
// builder with the MWE profile, keep only the largest phrase found per
// head (return_top_level_phrases), drop any phrase fully contained in a
// larger surviving one (§4.7), and tag survivors PhraseType MWE.
func BuildMWE(sent *phrase.Sentence, maxN int) ([]*phrase.Phrase, error) {
	opts := Opts{MaxN: maxN, MaxVariantsBound: mweMaxVariantsBound}
	all, err := Build(sent, profile.MWE(), opts, nil)
	if err != nil {
		return nil, err
	}

	maxSizeByHead := make(map[int]int)
	for _, p := range all {
		h := p.GetHeadPos()
		if p.Size() > maxSizeByHead[h] {
			maxSizeByHead[h] = p.Size()
		}
	}
	var topLevel []*phrase.Phrase
	for _, p := range all {
		if p.Size() == maxSizeByHead[p.GetHeadPos()] {
			topLevel = append(topLevel, p)
		}
	}

	kept := KeepNonOverlapping(topLevel)
	for _, p := range kept {
		p.PhraseType = phrase.MWE
	}
	return kept, nil
}
