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

package inflect

import "github.com/czcorpus/depphrase/phrase"

// MorphParse is one candidate reading a morphological analyzer returns for
// a lemma: its PoS plus whichever agreement features apply to that reading.
type MorphParse struct {
	Pos    phrase.Pos
	Gender phrase.Gender
	Number phrase.Number
	Case   phrase.Case
}

// Target is the agreement profile an inflector is asked to realize a lemma
// in. Zero-value fields that the target PoS doesn't carry (e.g. Case for an
// English noun) are simply ignored by the inflector.
type Target struct {
	Pos    phrase.Pos
	Gender phrase.Gender
	Number phrase.Number
	Case   phrase.Case
	Tense  phrase.Tense
	Voice  phrase.Voice
}

// morphCacheKey is the per-word cache key the Russian analyzer's bounded LRU
// is addressed by: a lemma only ever needs parsing once.
type morphCacheKey struct {
	lemma string
}

// MorphAnalyzer returns the morphological parse variants a Russian
// analyzer can assign to lemma. Production code backs this with rule
// tables; tests may swap in a stub.
type MorphAnalyzer interface {
	Analyze(lemma string) []MorphParse
}
