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
	"sort"

	"github.com/czcorpus/depphrase/phrase"
)

// KeepNonOverlapping implements §4.7: given a set of phrases, keep, in
// size-descending order, those not completely contained in an already
// accepted phrase.
func KeepNonOverlapping(phrases []*phrase.Phrase) []*phrase.Phrase {
	sorted := append([]*phrase.Phrase(nil), phrases...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size() > sorted[j].Size()
	})
	var kept []*phrase.Phrase
	for _, p := range sorted {
		contained := false
		for _, k := range kept {
			if k.Contains(p) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, p)
		}
	}
	return kept
}
