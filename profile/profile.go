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

// Package profile parameterises the phrase builder's head/modifier
// eligibility rules (§4.1). A Profile is plain data; NounPhrases, MWE and
// VerbNounPhrases build the three stock configurations, each overridable
// via With... options in the style of scoll.CalculationOptions.
package profile

import (
	"github.com/czcorpus/cnc-gokit/collections"

	"github.com/czcorpus/depphrase/phrase"
)

// BannedModifier identifies a (lemma, PoS, preposition) combination that is
// never eligible as a modifier regardless of everything else matching.
type BannedModifier struct {
	Lemma      string
	Pos        phrase.Pos
	PrepSurface string // empty means "no preposition"
}

// Profile parameterises eligibility predicates for one builder run.
type Profile struct {
	Name            string
	GoodHeadPos     *collections.Set[byte]
	GoodModPos      *collections.Set[byte]
	GoodSyntRels    *collections.Set[uint16]
	BadHeadRels     *collections.Set[uint16]
	WhitelistedPreps *collections.Set[string]
	BannedModifiers []BannedModifier
	MaxSyntaxDist   int
}

// Option mutates a Profile after construction, mirroring the teacher's
// scoll.CalculationOptions With... pattern.
type Option func(p *Profile)

func WithGoodModPos(pos ...phrase.Pos) Option {
	return func(p *Profile) {
		p.GoodModPos = toPosSet(pos)
	}
}

func WithGoodHeadPos(pos ...phrase.Pos) Option {
	return func(p *Profile) {
		p.GoodHeadPos = toPosSet(pos)
	}
}

func WithMaxSyntaxDist(d int) Option {
	return func(p *Profile) {
		p.MaxSyntaxDist = d
	}
}

func WithWhitelistedPreps(preps ...string) Option {
	return func(p *Profile) {
		s := collections.NewSet[string]()
		for _, v := range preps {
			s.Add(v)
		}
		p.WhitelistedPreps = s
	}
}

func WithBannedModifiers(banned ...BannedModifier) Option {
	return func(p *Profile) {
		p.BannedModifiers = banned
	}
}

func toPosSet(items []phrase.Pos) *collections.Set[byte] {
	s := collections.NewSet[byte]()
	for _, v := range items {
		s.Add(v.Byte())
	}
	return s
}

func toLinkSet(items []phrase.SyntLink) *collections.Set[uint16] {
	s := collections.NewSet[uint16]()
	for _, v := range items {
		s.Add(v.Raw)
	}
	return s
}

func apply(p *Profile, opts []Option) *Profile {
	for _, o := range opts {
		o(p)
	}
	return p
}

// defaultWhitelistedPreps mirrors the small set of prepositions that, when
// reconstructed by the extras pass (§4.2), are promoted to PREP_WHITE_LIST
// rather than PREP_MOD.
func defaultWhitelistedPreps() *collections.Set[string] {
	s := collections.NewSet[string]()
	s.Add("of")
	s.Add("в качестве")
	return s
}

// NounPhrases builds the NOUN-phrases stock profile (§4.1). Per the
// redesign decision pinned in §9, NUM is deliberately absent from the
// default good_mod_pos; pass WithGoodModPos to override.
func NounPhrases(opts ...Option) *Profile {
	p := &Profile{
		Name: "noun_phrases",
		GoodHeadPos: toPosSet([]phrase.Pos{phrase.PosNOUN, phrase.PosPROPN}),
		GoodModPos: toPosSet([]phrase.Pos{
			phrase.PosNOUN, phrase.PosPROPN, phrase.PosADJ, phrase.PosPARTICIPLE,
			phrase.PosPARTICIPLE_SHORT, phrase.PosGERUND, phrase.PosADJ_SHORT,
		}),
		GoodSyntRels: toLinkSet([]phrase.SyntLink{phrase.LinkAMOD, phrase.LinkNMOD}),
		BadHeadRels: toLinkSet([]phrase.SyntLink{
			phrase.LinkCOMPOUND, phrase.LinkFIXED, phrase.LinkFLAT,
		}),
		WhitelistedPreps: defaultWhitelistedPreps(),
		MaxSyntaxDist:    7,
	}
	return apply(p, opts)
}

// MWE builds the greedy multi-word-expression profile (§4.4).
func MWE(opts ...Option) *Profile {
	p := &Profile{
		Name: "mwe",
		GoodHeadPos: toPosSet([]phrase.Pos{
			phrase.PosNOUN, phrase.PosPROPN, phrase.PosADJ, phrase.PosPARTICIPLE,
		}),
		GoodModPos: toPosSet([]phrase.Pos{
			phrase.PosNOUN, phrase.PosPROPN, phrase.PosADJ, phrase.PosPARTICIPLE,
		}),
		GoodSyntRels: toLinkSet([]phrase.SyntLink{
			phrase.LinkCOMPOUND, phrase.LinkFIXED, phrase.LinkFLAT,
		}),
		BadHeadRels:      collections.NewSet[uint16](),
		WhitelistedPreps: defaultWhitelistedPreps(),
		MaxSyntaxDist:    7,
	}
	return apply(p, opts)
}

// VerbNounPhrases builds the VERB+NOUN profile, composing over noun-phrase
// output (§4.1).
func VerbNounPhrases(opts ...Option) *Profile {
	p := &Profile{
		Name: "verb_noun_phrases",
		GoodHeadPos: toPosSet([]phrase.Pos{phrase.PosVERB}),
		GoodModPos: toPosSet([]phrase.Pos{phrase.PosNOUN, phrase.PosPROPN}),
		GoodSyntRels: toLinkSet([]phrase.SyntLink{
			phrase.LinkOBJ, phrase.LinkOBL, phrase.LinkIOBJ,
		}),
		BadHeadRels:      collections.NewSet[uint16](),
		WhitelistedPreps: defaultWhitelistedPreps(),
		MaxSyntaxDist:    7,
	}
	return apply(p, opts)
}
