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

// BuildNounPhrases runs the full "noun_phrases" dispatcher profile (§2,
// §4.1): the MWE pre-pass seeds its tight compounds into the NOUN-phrases
// DP builder.
func BuildNounPhrases(sent *phrase.Sentence, opts Opts) ([]*phrase.Phrase, error) {
	mwePhrases, err := BuildMWE(sent, opts.MaxN)
	if err != nil {
		return nil, err
	}
	return Build(sent, profile.NounPhrases(), opts, mwePhrases)
}

// BuildVerbNounPhrases runs the "verb+noun_phrases" dispatcher profile:
// noun phrases are built first, then composed as candidate arguments of
// VERB heads under the VERB+NOUN profile. Both sets are returned.
func BuildVerbNounPhrases(sent *phrase.Sentence, opts Opts) (nounPhrases, verbPhrases []*phrase.Phrase, err error) {
	nounPhrases, err = BuildNounPhrases(sent, opts)
	if err != nil {
		return nil, nil, err
	}
	verbPhrases, err = Build(sent, profile.VerbNounPhrases(), opts, nounPhrases)
	if err != nil {
		return nil, nil, err
	}
	return nounPhrases, verbPhrases, nil
}
