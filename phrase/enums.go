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

import "strings"

// Pos is a tagged part-of-speech value following the UD-2 tagset plus the
// finer-grained participle/gerund split the inflection engine needs.
type Pos struct {
	Readable string
	Raw      byte
}

func (p Pos) String() string {
	return p.Readable
}

func (p Pos) IsValid() bool {
	return p.Raw >= 0x01 && p.Raw <= posMaxValue
}

func (p Pos) Byte() byte {
	return p.Raw
}

const (
	posVERB byte = iota + 1
	posNOUN
	posPROPN
	posADJ
	posPARTICIPLE
	posPARTICIPLE_SHORT
	posPARTICIPLE_ADVERB
	posGERUND
	posADJ_SHORT
	posADV
	posADP
	posDET
	posAUX
	posPART
	posNUM
	posSCONJ
	posCCONJ
	posSYM
	posPRON
	posPUNCT
	posINTJ
	posX
	posUNDEF
	posMaxValue = posUNDEF
)

var (
	PosVERB              = Pos{"VERB", posVERB}
	PosNOUN               = Pos{"NOUN", posNOUN}
	PosPROPN              = Pos{"PROPN", posPROPN}
	PosADJ                = Pos{"ADJ", posADJ}
	PosPARTICIPLE         = Pos{"PARTICIPLE", posPARTICIPLE}
	PosPARTICIPLE_SHORT   = Pos{"PARTICIPLE_SHORT", posPARTICIPLE_SHORT}
	PosPARTICIPLE_ADVERB  = Pos{"PARTICIPLE_ADVERB", posPARTICIPLE_ADVERB}
	PosGERUND             = Pos{"GERUND", posGERUND}
	PosADJ_SHORT          = Pos{"ADJ_SHORT", posADJ_SHORT}
	PosADV                = Pos{"ADV", posADV}
	PosADP                = Pos{"ADP", posADP}
	PosDET                = Pos{"DET", posDET}
	PosAUX                = Pos{"AUX", posAUX}
	PosPART               = Pos{"PART", posPART}
	PosNUM                = Pos{"NUM", posNUM}
	PosSCONJ              = Pos{"SCONJ", posSCONJ}
	PosCCONJ              = Pos{"CCONJ", posCCONJ}
	PosSYM                = Pos{"SYM", posSYM}
	PosPRON               = Pos{"PRON", posPRON}
	PosPUNCT              = Pos{"PUNCT", posPUNCT}
	PosINTJ               = Pos{"INTJ", posINTJ}
	PosX                  = Pos{"X", posX}
	PosUNDEF              = Pos{"UNDEF", posUNDEF}
)

var posMapping = map[string]Pos{
	"VERB":              PosVERB,
	"NOUN":              PosNOUN,
	"PROPN":             PosPROPN,
	"ADJ":               PosADJ,
	"PARTICIPLE":        PosPARTICIPLE,
	"PARTICIPLE_SHORT":  PosPARTICIPLE_SHORT,
	"PARTICIPLE_ADVERB": PosPARTICIPLE_ADVERB,
	"GERUND":            PosGERUND,
	"ADJ_SHORT":         PosADJ_SHORT,
	"ADV":               PosADV,
	"ADP":               PosADP,
	"DET":               PosDET,
	"AUX":               PosAUX,
	"PART":              PosPART,
	"NUM":               PosNUM,
	"SCONJ":             PosSCONJ,
	"CCONJ":             PosCCONJ,
	"SYM":               PosSYM,
	"PRON":              PosPRON,
	"PUNCT":             PosPUNCT,
	"INTJ":              PosINTJ,
	"X":                 PosX,
	"UNDEF":             PosUNDEF,
}

// PosFromString maps an upstream UPOS/extended tag to a Pos, returning
// PosUNDEF for anything unrecognised.
func PosFromString(v string) Pos {
	p, ok := posMapping[strings.ToUpper(v)]
	if !ok {
		return PosUNDEF
	}
	return p
}

// SyntLink is a tagged UD-2 dependency relation.
type SyntLink struct {
	Readable string
	Raw      uint16
}

func (s SyntLink) String() string {
	return s.Readable
}

func (s SyntLink) IsValid() bool {
	_, ok := syntLinkRev[s.Raw]
	return ok
}

const (
	slROOT uint16 = iota
	slNSUBJ
	slOBJ
	slOBL
	slADVMOD
	slAMOD
	slNMOD
	slCASE
	slACL
	slCC
	slAPPOS
	slCOMPOUND
	slCONJ
	slDEP
	slMARK
	slNUMMOD
	slAUX
	slFLAT
	slCCOMP
	slCLF
	slCOP
	slCSUBJ
	slADVCL
	slDET
	slDISCOURSE
	slDISLOCATED
	slEXPL
	slFIXED
	slGOESWITH
	slIOBJ
	slLIST
	slORPHAN
	slPARATAXIS
	slPUNCT
	slREPARANDUM
	slVOCATIVE
	slXCOMP
)

var (
	LinkROOT       = SyntLink{"ROOT", slROOT}
	LinkNSUBJ      = SyntLink{"NSUBJ", slNSUBJ}
	LinkOBJ        = SyntLink{"OBJ", slOBJ}
	LinkOBL        = SyntLink{"OBL", slOBL}
	LinkADVMOD     = SyntLink{"ADVMOD", slADVMOD}
	LinkAMOD       = SyntLink{"AMOD", slAMOD}
	LinkNMOD       = SyntLink{"NMOD", slNMOD}
	LinkCASE       = SyntLink{"CASE", slCASE}
	LinkACL        = SyntLink{"ACL", slACL}
	LinkCC         = SyntLink{"CC", slCC}
	LinkAPPOS      = SyntLink{"APPOS", slAPPOS}
	LinkCOMPOUND   = SyntLink{"COMPOUND", slCOMPOUND}
	LinkCONJ       = SyntLink{"CONJ", slCONJ}
	LinkDEP        = SyntLink{"DEP", slDEP}
	LinkMARK       = SyntLink{"MARK", slMARK}
	LinkNUMMOD     = SyntLink{"NUMMOD", slNUMMOD}
	LinkAUX        = SyntLink{"AUX", slAUX}
	LinkFLAT       = SyntLink{"FLAT", slFLAT}
	LinkCCOMP      = SyntLink{"CCOMP", slCCOMP}
	LinkCLF        = SyntLink{"CLF", slCLF}
	LinkCOP        = SyntLink{"COP", slCOP}
	LinkCSUBJ      = SyntLink{"CSUBJ", slCSUBJ}
	LinkADVCL      = SyntLink{"ADVCL", slADVCL}
	LinkDET        = SyntLink{"DET", slDET}
	LinkDISCOURSE  = SyntLink{"DISCOURSE", slDISCOURSE}
	LinkDISLOCATED = SyntLink{"DISLOCATED", slDISLOCATED}
	LinkEXPL       = SyntLink{"EXPL", slEXPL}
	LinkFIXED      = SyntLink{"FIXED", slFIXED}
	LinkGOESWITH   = SyntLink{"GOESWITH", slGOESWITH}
	LinkIOBJ       = SyntLink{"IOBJ", slIOBJ}
	LinkLIST       = SyntLink{"LIST", slLIST}
	LinkORPHAN     = SyntLink{"ORPHAN", slORPHAN}
	LinkPARATAXIS  = SyntLink{"PARATAXIS", slPARATAXIS}
	LinkPUNCT      = SyntLink{"PUNCT", slPUNCT}
	LinkREPARANDUM = SyntLink{"REPARANDUM", slREPARANDUM}
	LinkVOCATIVE   = SyntLink{"VOCATIVE", slVOCATIVE}
	LinkXCOMP      = SyntLink{"XCOMP", slXCOMP}
)

var syntLinkMapping = map[string]SyntLink{
	"root": LinkROOT, "nsubj": LinkNSUBJ, "obj": LinkOBJ, "obl": LinkOBL,
	"advmod": LinkADVMOD, "amod": LinkAMOD, "nmod": LinkNMOD, "case": LinkCASE,
	"acl": LinkACL, "cc": LinkCC, "appos": LinkAPPOS, "compound": LinkCOMPOUND,
	"conj": LinkCONJ, "dep": LinkDEP, "mark": LinkMARK, "nummod": LinkNUMMOD,
	"aux": LinkAUX, "flat": LinkFLAT, "ccomp": LinkCCOMP, "clf": LinkCLF,
	"cop": LinkCOP, "csubj": LinkCSUBJ, "advcl": LinkADVCL, "det": LinkDET,
	"discourse": LinkDISCOURSE, "dislocated": LinkDISLOCATED, "expl": LinkEXPL,
	"fixed": LinkFIXED, "goeswith": LinkGOESWITH, "iobj": LinkIOBJ,
	"list": LinkLIST, "orphan": LinkORPHAN, "parataxis": LinkPARATAXIS,
	"punct": LinkPUNCT, "reparandum": LinkREPARANDUM, "vocative": LinkVOCATIVE,
	"xcomp": LinkXCOMP,
}

var syntLinkRev = func() map[uint16]SyntLink {
	m := make(map[uint16]SyntLink, len(syntLinkMapping))
	for _, v := range syntLinkMapping {
		m[v.Raw] = v
	}
	return m
}()

// SyntLinkFromString maps a DEPREL value (the base relation before any
// ':subtype') to a SyntLink, returning LinkDEP for anything unrecognised.
func SyntLinkFromString(v string) SyntLink {
	base := v
	if idx := strings.IndexByte(v, ':'); idx >= 0 {
		base = v[:idx]
	}
	sl, ok := syntLinkMapping[strings.ToLower(base)]
	if !ok {
		return LinkDEP
	}
	return sl
}

// Lang identifies the language a word belongs to; the inflection dispatcher
// switches on it.
type Lang struct {
	Readable string
	Raw      byte
}

var (
	LangRU    = Lang{"RU", 0}
	LangEN    = Lang{"EN", 1}
	LangUndef = Lang{"UNDEF", 0x0f}
)

func (l Lang) String() string {
	return l.Readable
}

func LangFromString(v string) Lang {
	switch strings.ToLower(v) {
	case "ru", "rus":
		return LangRU
	case "en", "eng":
		return LangEN
	default:
		return LangUndef
	}
}

// ---- morphological feature enums ----

type Number struct {
	Readable string
	Raw      byte
}

var (
	NumberSing  = Number{"Sing", 0}
	NumberPlur  = Number{"Plur", 1}
	NumberUndef = Number{"", 0xff}
)

func NumberFromString(v string) Number {
	switch v {
	case "Sing":
		return NumberSing
	case "Plur":
		return NumberPlur
	default:
		return NumberUndef
	}
}

type Gender struct {
	Readable string
	Raw      byte
}

var (
	GenderUndef = Gender{"", 0}
	GenderMasc  = Gender{"Masc", 1}
	GenderFem   = Gender{"Fem", 2}
	GenderNeut  = Gender{"Neut", 3}
)

func GenderFromString(v string) Gender {
	switch v {
	case "Masc":
		return GenderMasc
	case "Fem":
		return GenderFem
	case "Neut":
		return GenderNeut
	default:
		return GenderUndef
	}
}

type Case struct {
	Readable string
	Raw      byte
}

var (
	CaseNom   = Case{"Nom", 0}
	CaseGen   = Case{"Gen", 1}
	CaseAcc   = Case{"Acc", 2}
	CaseDat   = Case{"Dat", 3}
	CaseIns   = Case{"Ins", 4}
	CaseLoc   = Case{"Loc", 5}
	CasePar   = Case{"Par", 6}
	CaseVoc   = Case{"Voc", 7}
	CaseUndef = Case{"", 0xff}
)

func CaseFromString(v string) Case {
	switch v {
	case "Nom":
		return CaseNom
	case "Gen":
		return CaseGen
	case "Acc":
		return CaseAcc
	case "Dat":
		return CaseDat
	case "Ins":
		return CaseIns
	case "Loc":
		return CaseLoc
	case "Par":
		return CasePar
	case "Voc":
		return CaseVoc
	default:
		return CaseUndef
	}
}

type Tense struct {
	Readable string
	Raw      byte
}

var (
	TenseUndef = Tense{"", 0xff}
	TensePres  = Tense{"Pres", 0}
	TensePast  = Tense{"Past", 1}
	TenseImp   = Tense{"Imp", 2}
	TenseFut   = Tense{"Fut", 3}
	TensePqp   = Tense{"Pqp", 4}
)

func TenseFromString(v string) Tense {
	switch v {
	case "Pres":
		return TensePres
	case "Past":
		return TensePast
	case "Imp":
		return TenseImp
	case "Fut":
		return TenseFut
	case "Pqp":
		return TensePqp
	default:
		return TenseUndef
	}
}

type Person struct {
	Readable string
	Raw      byte
}

var (
	PersonUndef = Person{"", 0xff}
	Person1     = Person{"1", 0}
	Person2     = Person{"2", 1}
	Person3     = Person{"3", 2}
)

func PersonFromString(v string) Person {
	switch v {
	case "1":
		return Person1
	case "2":
		return Person2
	case "3":
		return Person3
	default:
		return PersonUndef
	}
}

type Degree struct {
	Readable string
	Raw      byte
}

var (
	DegreeUndef = Degree{"", 0xff}
	DegreePos   = Degree{"Pos", 0}
	DegreeEqu   = Degree{"Equ", 1}
	DegreeCmp   = Degree{"Cmp", 2}
	DegreeSup   = Degree{"Sup", 3}
	DegreeAbs   = Degree{"Abs", 4}
)

func DegreeFromString(v string) Degree {
	switch v {
	case "Pos":
		return DegreePos
	case "Equ":
		return DegreeEqu
	case "Cmp":
		return DegreeCmp
	case "Sup":
		return DegreeSup
	case "Abs":
		return DegreeAbs
	default:
		return DegreeUndef
	}
}

type Aspect struct {
	Readable string
	Raw      byte
}

var (
	AspectUndef = Aspect{"", 0xff}
	AspectImp   = Aspect{"Imp", 0}
	AspectPerf  = Aspect{"Perf", 1}
)

func AspectFromString(v string) Aspect {
	switch v {
	case "Imp":
		return AspectImp
	case "Perf":
		return AspectPerf
	default:
		return AspectUndef
	}
}

type Voice struct {
	Readable string
	Raw      byte
}

var (
	VoiceUndef = Voice{"", 0xff}
	VoiceAct   = Voice{"Act", 0}
	VoicePass  = Voice{"Pass", 1}
	VoiceMid   = Voice{"Mid", 2}
)

func VoiceFromString(v string) Voice {
	switch v {
	case "Act":
		return VoiceAct
	case "Pass":
		return VoicePass
	case "Mid":
		return VoiceMid
	default:
		return VoiceUndef
	}
}

type Mood struct {
	Readable string
	Raw      byte
}

var (
	MoodUndef = Mood{"", 0xff}
	MoodInd   = Mood{"Ind", 0}
	MoodImp   = Mood{"Imp", 1}
	MoodCnd   = Mood{"Cnd", 2}
)

func MoodFromString(v string) Mood {
	switch v {
	case "Ind":
		return MoodInd
	case "Imp":
		return MoodImp
	case "Cnd":
		return MoodCnd
	default:
		return MoodUndef
	}
}

type NumType struct {
	Readable string
	Raw      byte
}

var (
	NumTypeUndef = NumType{"", 0xff}
	NumTypeCard  = NumType{"Card", 0}
	NumTypeOrd   = NumType{"Ord", 1}
	NumTypeMult  = NumType{"Mult", 2}
	NumTypeFrac  = NumType{"Frac", 3}
	NumTypeRange = NumType{"Range", 4}
)

func NumTypeFromString(v string) NumType {
	switch v {
	case "Card":
		return NumTypeCard
	case "Ord":
		return NumTypeOrd
	case "Mult":
		return NumTypeMult
	case "Frac":
		return NumTypeFrac
	case "Range":
		return NumTypeRange
	default:
		return NumTypeUndef
	}
}

type Animacy struct {
	Readable string
	Raw      byte
}

var (
	AnimacyUndef = Animacy{"", 0xff}
	AnimacyInan  = Animacy{"Inan", 0}
	AnimacyAnim  = Animacy{"Anim", 1}
)

func AnimacyFromString(v string) Animacy {
	switch v {
	case "Inan":
		return AnimacyInan
	case "Anim":
		return AnimacyAnim
	default:
		return AnimacyUndef
	}
}
