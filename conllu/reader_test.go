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

package conllu

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czcorpus/depphrase/phrase"
)

const sample = `# text = The spam filter works.
1	The	the	DET	_	_	3	det	_	_
2	spam	spam	NOUN	_	_	3	compound	_	_
3	filter	filter	NOUN	_	Number=Sing	4	nsubj	_	_
4	works	work	VERB	_	Tense=Pres	0	root	_	_
5	.	.	PUNCT	_	_	4	punct	_	_

1	Foo	foo	NOUN	_	_	0	root	_	_
`

func TestReader_DecodesTwoSentences(t *testing.T) {
	sents, err := ReadAll(strings.NewReader(sample), phrase.LangEN)
	require.NoError(t, err)
	require.Len(t, sents, 2)

	first := sents[0]
	require.Equal(t, 5, first.Len())
	assert.Equal(t, "filter", first.Words[2].Lemma)
	assert.Equal(t, phrase.PosNOUN, first.Words[2].Pos)
	assert.Equal(t, phrase.NumberSing, first.Words[2].Number)
	assert.Equal(t, 1, first.Words[2].ParentOffs, "filter (id 3) has head id 4 (works), offset +1")
	assert.Equal(t, phrase.LinkROOT, first.Words[3].SyntLink)
	assert.Equal(t, 0, first.Words[3].ParentOffs)

	second := sents[1]
	require.Equal(t, 1, second.Len())
	assert.Equal(t, phrase.LinkROOT, second.Words[0].SyntLink)
}

func TestReader_SkipsMultiWordTokenSpans(t *testing.T) {
	const withSpan = "1-2\tgimme\t_\t_\t_\t_\t_\t_\t_\t_\n" +
		"1\tgive\tgive\tVERB\t_\t_\t0\troot\t_\t_\n" +
		"2\tme\tme\tPRON\t_\t_\t1\tobj\t_\t_\n"
	sents, err := ReadAll(strings.NewReader(withSpan), phrase.LangEN)
	require.NoError(t, err)
	require.Len(t, sents, 1)
	assert.Equal(t, 2, sents[0].Len(), "the 1-2 span line must be skipped, only the two real tokens kept")
}

func TestReader_MalformedLineReturnsError(t *testing.T) {
	const bad = "1\tfoo\tfoo\tNOUN\n"
	_, err := ReadAll(strings.NewReader(bad), phrase.LangEN)
	assert.Error(t, err)
}

func TestReader_EOFOnEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""), phrase.LangEN)
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}
