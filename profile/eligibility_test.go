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

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/depphrase/phrase"
)

func TestNounPhrases_IsGoodHead(t *testing.T) {
	p := NounPhrases()

	good := &phrase.Word{Pos: phrase.PosNOUN, Lang: phrase.LangEN, ParentOffs: -1, SyntLink: phrase.LinkNSUBJ}
	assert.True(t, p.IsGoodHead(good))

	wrongPos := &phrase.Word{Pos: phrase.PosVERB, Lang: phrase.LangEN}
	assert.False(t, p.IsGoodHead(wrongPos))

	noLang := &phrase.Word{Pos: phrase.PosNOUN, Lang: phrase.LangUndef}
	assert.False(t, p.IsGoodHead(noLang))

	badRel := &phrase.Word{
		Pos: phrase.PosNOUN, Lang: phrase.LangEN, ParentOffs: 1, SyntLink: phrase.LinkCOMPOUND,
	}
	assert.False(t, p.IsGoodHead(badRel))
}

func TestNounPhrases_IsGoodModifier(t *testing.T) {
	p := NounPhrases()

	good := &phrase.Word{
		Pos: phrase.PosADJ, Lang: phrase.LangEN, ParentOffs: -1, SyntLink: phrase.LinkAMOD,
	}
	assert.True(t, p.IsGoodModifier(good))

	tooFar := &phrase.Word{
		Pos: phrase.PosADJ, Lang: phrase.LangEN, ParentOffs: 8, SyntLink: phrase.LinkAMOD,
	}
	assert.False(t, p.IsGoodModifier(tooFar))

	noOffs := &phrase.Word{Pos: phrase.PosADJ, Lang: phrase.LangEN, ParentOffs: 0, SyntLink: phrase.LinkAMOD}
	assert.False(t, p.IsGoodModifier(noOffs))

	badRel := &phrase.Word{
		Pos: phrase.PosADJ, Lang: phrase.LangEN, ParentOffs: -1, SyntLink: phrase.LinkADVMOD,
	}
	assert.False(t, p.IsGoodModifier(badRel))
}

func TestNounPhrases_NmodRequiresWhitelistedOrNoPrep(t *testing.T) {
	p := NounPhrases()

	plain := &phrase.Word{
		Pos: phrase.PosNOUN, Lang: phrase.LangEN, ParentOffs: -1, SyntLink: phrase.LinkNMOD,
	}
	assert.True(t, p.IsGoodModifier(plain), "nmod modifier without any prep must pass")

	withBannedPrep := &phrase.Word{
		Pos: phrase.PosNOUN, Lang: phrase.LangEN, ParentOffs: -1, SyntLink: phrase.LinkNMOD,
		Extra: phrase.Extra{PrepMod: []phrase.PrepInfo{{Surface: "despite"}}},
	}
	assert.False(t, p.IsGoodModifier(withBannedPrep), "nmod modifier with a non-whitelisted prep must fail")

	withWhitelisted := &phrase.Word{
		Pos: phrase.PosNOUN, Lang: phrase.LangEN, ParentOffs: -1, SyntLink: phrase.LinkNMOD,
		Extra: phrase.Extra{PrepWhiteList: &phrase.PrepInfo{Surface: "of"}},
	}
	assert.True(t, p.IsGoodModifier(withWhitelisted))

	wrongPos := &phrase.Word{
		Pos: phrase.PosADJ, Lang: phrase.LangEN, ParentOffs: -1, SyntLink: phrase.LinkNMOD,
	}
	assert.False(t, p.IsGoodModifier(wrongPos), "nmod requires NOUN/PROPN regardless of good_mod_pos membership")
}

func TestNounPhrases_BannedModifier(t *testing.T) {
	p := NounPhrases(WithBannedModifiers(BannedModifier{Lemma: "said", Pos: phrase.PosADJ}))

	banned := &phrase.Word{
		Lemma: "said", Pos: phrase.PosADJ, Lang: phrase.LangEN, ParentOffs: -1, SyntLink: phrase.LinkAMOD,
	}
	assert.False(t, p.IsGoodModifier(banned))
}

func TestVerbNounPhrases_Profile(t *testing.T) {
	p := VerbNounPhrases()

	head := &phrase.Word{Pos: phrase.PosVERB, Lang: phrase.LangEN}
	assert.True(t, p.IsGoodHead(head))

	obj := &phrase.Word{
		Pos: phrase.PosNOUN, Lang: phrase.LangEN, ParentOffs: -1, SyntLink: phrase.LinkOBJ,
	}
	assert.True(t, p.IsGoodModifier(obj))

	notAnArg := &phrase.Word{
		Pos: phrase.PosNOUN, Lang: phrase.LangEN, ParentOffs: -1, SyntLink: phrase.LinkNMOD,
	}
	assert.False(t, p.IsGoodModifier(notAnArg))
}

func TestIsGoodModifierEff_ConjunctUsesEffectiveLink(t *testing.T) {
	p := NounPhrases()

	// a CONJ-attached word tested against its chain head's own AMOD
	// relation (the effective link a conjunct inherits, §4.3) must pass
	// even though its own SyntLink is CONJ and would otherwise fail.
	conjWord := &phrase.Word{
		Pos: phrase.PosADJ, Lang: phrase.LangEN, ParentOffs: 1, SyntLink: phrase.LinkCONJ,
	}
	assert.False(t, p.IsGoodModifier(conjWord))
	assert.True(t, p.IsGoodModifierEff(conjWord, -2, phrase.LinkAMOD))
}
