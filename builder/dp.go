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

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/cnc-gokit/collections"

	"github.com/czcorpus/depphrase/perr"
	"github.com/czcorpus/depphrase/phrase"
	"github.com/czcorpus/depphrase/profile"
)

// Opts parameterises a single builder run (§4.5, §5).
type Opts struct {
	// MaxN is the largest phrase size the builder will assemble.
	MaxN int
	// MaxVariantsBound caps the number of phrase variants kept per head
	// per level (§4.5 step 4, §8 cardinality bound).
	MaxVariantsBound int
}

// DefaultOpts returns the builder defaults used by the stock profiles.
func DefaultOpts() Opts {
	return Opts{MaxN: 4, MaxVariantsBound: 5}
}

func containsPos(p *phrase.Phrase, pos int) bool {
	i := sort.SearchInts(p.SentPosList, pos)
	return i < len(p.SentPosList) && p.SentPosList[i] == pos
}

// buildGoodModsIndex computes, for every position h, the list of candidate
// modifier positions eligible under prof — following conjunct-effective
// offsets/links (§4.3) rather than a word's own raw parent_offs/synt_link —
// plus whatever a bare conjunct at h inherits from its chain's real head
// (§4.3 effect 3).
func buildGoodModsIndex(sent *phrase.Sentence, prof *profile.Profile, aux []AuxInfo, children [][]int) [][]int {
	n := sent.Len()
	effChildren := make([][]int, n)
	for i, w := range sent.Words {
		if !w.HasParent() {
			continue
		}
		head := i + aux[i].EffectiveParentOffs
		if head < 0 || head >= n {
			continue
		}
		effChildren[head] = append(effChildren[head], i)
	}

	candidateOf := make([][]int, n)
	for h := 0; h < n; h++ {
		for _, c := range effChildren[h] {
			w := sent.Words[c]
			if prof.IsGoodModifierEff(w, aux[c].EffectiveParentOffs, aux[c].EffectiveSyntLink) {
				candidateOf[h] = append(candidateOf[h], c)
			}
		}
	}

	goodMods := make([][]int, n)
	for h := 0; h < n; h++ {
		goodMods[h] = append(goodMods[h], candidateOf[h]...)
		if aux[h].RealHead != h {
			continue
		}
		for pos := 0; pos < n; pos++ {
			if aux[pos].RealHead != h || pos == h {
				continue
			}
			for _, inherited := range aux[pos].InheritedMods {
				for _, c := range candidateOf[h] {
					if c == inherited {
						goodMods[pos] = append(goodMods[pos], inherited)
						break
					}
				}
			}
		}
	}
	return goodMods
}

// seedPhrase creates the size-1 phrase for pos, honoring any preposition
// inherited from a conjunct's real head (§4.3 effect 3) when pos itself has
// no PrepWhiteList of its own.
func seedPhrase(sent *phrase.Sentence, aux []AuxInfo, pos int) *phrase.Phrase {
	w := sent.Words[pos]
	if w.Extra.PrepWhiteList == nil && aux[pos].InheritedPrep != nil {
		saved := w.Extra.PrepWhiteList
		w.Extra.PrepWhiteList = aux[pos].InheritedPrep
		p := phrase.FromWord(sent, pos)
		w.Extra.PrepWhiteList = saved
		return p
	}
	return phrase.FromWord(sent, pos)
}

// Build implements the full dynamic-programming phrase builder (§4.5).
// seeds are phrases (typically from the MWE pre-pass, or already-built noun
// phrases for the VERB+NOUN profile) pre-seeded into the index at the slot
// matching their own size; a head carrying a seed does not also spawn a
// default singleton at slot 0.
func Build(sent *phrase.Sentence, prof *profile.Profile, opts Opts, seeds []*phrase.Phrase) ([]*phrase.Phrase, error) {
	n := sent.Len()
	if n > perr.MaxSentenceSize {
		return nil, perr.ErrSentenceTooLarge
	}
	if opts.MaxN < 1 {
		opts.MaxN = 1
	}

	children := sent.ChildrenIndex()
	buildExtras(sent, prof, children)
	aux := buildAuxInfo(sent, children)
	goodMods := buildGoodModsIndex(sent, prof, aux, children)

	wordsIndex := make([][][]*phrase.Phrase, n)
	seededHeads := make([]bool, n)
	for pos := range wordsIndex {
		wordsIndex[pos] = make([][]*phrase.Phrase, opts.MaxN)
	}
	for _, s := range seeds {
		head := s.GetHeadPos()
		sz := s.Size()
		if sz < 1 || sz > opts.MaxN {
			continue
		}
		wordsIndex[head][sz-1] = append(wordsIndex[head][sz-1], s)
		seededHeads[head] = true
	}
	for pos, w := range sent.Words {
		if seededHeads[pos] {
			continue
		}
		if w.Lemma == "" {
			log.Debug().Int("pos", pos).Msg("skipping word with no lemma")
			continue
		}
		if prof.IsGoodHead(w) || prof.IsGoodModifierEff(w, aux[pos].EffectiveParentOffs, aux[pos].EffectiveSyntLink) {
			wordsIndex[pos][0] = append(wordsIndex[pos][0], seedPhrase(sent, aux, pos))
		}
	}

	dedup := collections.NewSet[string]()
	for l := 0; l <= opts.MaxN-2; l++ {
		for h := 0; h < n; h++ {
			if len(goodMods[h]) == 0 {
				continue
			}
			for headLevel := 0; headLevel < opts.MaxN; headLevel++ {
				headPhrases := wordsIndex[h][headLevel]
				if len(headPhrases) == 0 {
					continue
				}
				modLevel := l - headLevel
				if modLevel < 0 || modLevel >= opts.MaxN {
					continue
				}
				for _, modPos := range goodMods[h] {
					modPhrases := wordsIndex[modPos][modLevel]
					if len(modPhrases) == 0 {
						continue
					}
					for _, hp := range headPhrases {
						if containsPos(hp, modPos) {
							continue
						}
						if sharesConjunct(aux, modPos, hp.SentPosList) {
							continue
						}
						if len(wordsIndex[h][l+1]) >= opts.MaxVariantsBound {
							break
						}
						for _, mp := range modPhrases {
							if len(wordsIndex[h][l+1]) >= opts.MaxVariantsBound {
								break
							}
							merged := merge(sent, hp, mp, dedup)
							if merged == nil {
								continue
							}
							wordsIndex[h][l+1] = append(wordsIndex[h][l+1], merged)
						}
					}
				}
			}
		}
	}

	var result []*phrase.Phrase
	for pos := 0; pos < n; pos++ {
		if !prof.IsGoodHead(sent.Words[pos]) {
			continue
		}
		for level := 1; level < opts.MaxN; level++ {
			result = append(result, wordsIndex[pos][level]...)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].GetHeadPos() != result[j].GetHeadPos() {
			return result[i].GetHeadPos() < result[j].GetHeadPos()
		}
		return result[i].Size() < result[j].Size()
	})
	return result, nil
}
