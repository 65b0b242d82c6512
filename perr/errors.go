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

// Package perr collects the sentinel errors the phrase-construction
// pipeline can return to a caller. Per-word anomalies are logged and
// skipped rather than returned (see the package docs of builder and
// inflect); only the fatal/structural kinds below ever escape as errors.
package perr

import "errors"

var (
	// ErrMalformedInput marks a sentence whose parent_offs values do not
	// satisfy I-S1/I-S2.
	ErrMalformedInput = errors.New("malformed input: broken dependency tree")

	// ErrUnidentifiedWord marks an attempt to build a phrase from a word
	// with no lemma.
	ErrUnidentifiedWord = errors.New("word has no lemma")

	// ErrSentenceTooLarge marks a sentence exceeding the hard token cap.
	ErrSentenceTooLarge = errors.New("sentence exceeds the maximum supported size")

	// ErrOverlappingPhrases marks a merge attempt whose operands share a
	// sentence position.
	ErrOverlappingPhrases = errors.New("phrases overlap")

	// ErrUnsupportedLanguage marks a phrase whose words carry no language
	// the inflection engine recognises.
	ErrUnsupportedLanguage = errors.New("unsupported language for inflection")

	// ErrUnsupportedCase marks a case value the active inflector cannot
	// map onto its backing morphology.
	ErrUnsupportedCase = errors.New("unsupported grammatical case")

	// ErrCacheMiss signals a lookup miss in a bounded cache; callers fall
	// through to computing (and usually caching) the value directly.
	ErrCacheMiss = errors.New("cache miss")

	// ErrMorphNotFound marks a morphological analyzer lookup that produced
	// no usable parse.
	ErrMorphNotFound = errors.New("no matching morphological parse")

	// ErrAbortedByBudget marks a builder aborting partway through a
	// sentence because its time budget ran out between levels.
	ErrAbortedByBudget = errors.New("builder aborted: time budget exceeded")
)

// MaxSentenceSize is the hard cap on sentence length the builder enforces
// (§5).
const MaxSentenceSize = 4096
