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

// ReprEnhancerDict is the wire representation of a ReprEnhancer (§6).
type ReprEnhancerDict struct {
	RelPos  int    `json:"relPos"`
	EnhType int    `json:"enhType"`
	Value   string `json:"value"`
}

// HeadModifierDict is the wire representation of a HeadModifier.
type HeadModifierDict struct {
	PrepMod       *PrepInfoDict `json:"prepMod,omitempty"`
	ReprModSuffix string        `json:"reprModSuffix,omitempty"`
}

// PrepInfoDict is the wire representation of a PrepInfo.
type PrepInfoDict struct {
	Pos     int    `json:"pos"`
	Surface string `json:"surface"`
	WordID  uint64 `json:"wordId"`
}

// IDHolderDict is the wire representation of a PhraseId.
type IDHolderDict struct {
	ID     uint64  `json:"id"`
	PrepID *uint64 `json:"prepId,omitempty"`
}

// PhraseDict is the output schema of a Phrase (§6): head_pos, sent_pos_list,
// words, deps, id_holder, optional head_mod, optional repr_modifiers,
// optional type.
type PhraseDict struct {
	HeadPos       int                  `json:"headPos"`
	SentPosList   []int                `json:"sentPosList"`
	Words         []string             `json:"words"`
	Deps          []int                `json:"deps"`
	IDHolder      IDHolderDict         `json:"idHolder"`
	HeadMod       *HeadModifierDict    `json:"headMod,omitempty"`
	ReprModifiers [][]ReprEnhancerDict `json:"reprModifiers,omitempty"`
	Type          *int                 `json:"type,omitempty"`
}

// ToDict converts the phrase to its wire representation.
func (p *Phrase) ToDict() PhraseDict {
	d := PhraseDict{
		HeadPos:     p.HeadPos,
		SentPosList: append([]int(nil), p.SentPosList...),
		Words:       append([]string(nil), p.Words...),
		Deps:        append([]int(nil), p.Deps...),
		IDHolder:    IDHolderDict{ID: p.IDHolder.id},
	}
	if p.IDHolder.hasPrep {
		prep := p.IDHolder.prepID
		d.IDHolder.PrepID = &prep
	}
	if p.HeadModifier != nil {
		hm := &HeadModifierDict{ReprModSuffix: p.HeadModifier.ReprModSuffix}
		if p.HeadModifier.PrepMod != nil {
			hm.PrepMod = &PrepInfoDict{
				Pos:     p.HeadModifier.PrepMod.Pos,
				Surface: p.HeadModifier.PrepMod.Surface,
				WordID:  p.HeadModifier.PrepMod.WordID,
			}
		}
		d.HeadMod = hm
	}
	if p.ReprModifiers != nil {
		d.ReprModifiers = make([][]ReprEnhancerDict, len(p.ReprModifiers))
		for i, rs := range p.ReprModifiers {
			for _, r := range rs {
				d.ReprModifiers[i] = append(d.ReprModifiers[i], ReprEnhancerDict{
					RelPos:  r.RelPos,
					EnhType: int(r.Type),
					Value:   r.Value,
				})
			}
		}
	}
	if p.PhraseType == MWE {
		t := int(MWE)
		d.Type = &t
	}
	return d
}

// FromDict reconstructs a Phrase from its wire representation. The
// round-trip requirement (§6) is that FromDict(ToDict(p)) preserves
// GetID, GetWords and GetStrRepr.
func FromDict(d PhraseDict) *Phrase {
	p := &Phrase{
		HeadPos:     d.HeadPos,
		SentPosList: append([]int(nil), d.SentPosList...),
		Words:       append([]string(nil), d.Words...),
		Deps:        append([]int(nil), d.Deps...),
		IDHolder:    PhraseId{id: d.IDHolder.ID},
	}
	if d.IDHolder.PrepID != nil {
		p.IDHolder.prepID = *d.IDHolder.PrepID
		p.IDHolder.hasPrep = true
	}
	if d.HeadMod != nil {
		hm := &HeadModifier{ReprModSuffix: d.HeadMod.ReprModSuffix}
		if d.HeadMod.PrepMod != nil {
			hm.PrepMod = &PrepInfo{
				Pos:     d.HeadMod.PrepMod.Pos,
				Surface: d.HeadMod.PrepMod.Surface,
				WordID:  d.HeadMod.PrepMod.WordID,
			}
		}
		p.HeadModifier = hm
	}
	if d.ReprModifiers != nil {
		p.ReprModifiers = make([][]ReprEnhancer, len(d.ReprModifiers))
		for i, rs := range d.ReprModifiers {
			for _, r := range rs {
				p.ReprModifiers[i] = append(p.ReprModifiers[i], ReprEnhancer{
					RelPos: r.RelPos,
					Type:   ReprEnhType(r.EnhType),
					Value:  r.Value,
				})
			}
		}
	} else {
		p.ReprModifiers = make([][]ReprEnhancer, len(p.SentPosList))
	}
	if d.Type != nil && PhraseType(*d.Type) == MWE {
		p.PhraseType = MWE
	}
	return p
}
