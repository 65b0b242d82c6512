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

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
)

// ExceptionTable is the English irregular-form resource (§6): a gzipped
// JSON document of the shape
//
//	{"noun": {lemma: plural}, "verb": {lemma: {"prp": ..., "pap": ...}}}
type ExceptionTable struct {
	NounPlural   map[string]string
	VerbPresPart map[string]string
	VerbPastPart map[string]string
}

type verbForms struct {
	Prp string `json:"prp"`
	Pap string `json:"pap"`
}

type exceptionTableDoc struct {
	Noun map[string]string   `json:"noun"`
	Verb map[string]verbForms `json:"verb"`
}

// LoadExceptionTable reads a gzip-compressed JSON exception resource from
// path. Construction-time-only I/O, per §5's no-blocking-in-the-core rule:
// callers load this once, before building any inflector.
func LoadExceptionTable(path string) (ExceptionTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return ExceptionTable{}, fmt.Errorf("failed to open exception table: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return ExceptionTable{}, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer gz.Close()

	var doc exceptionTableDoc
	if err := json.NewDecoder(gz).Decode(&doc); err != nil {
		return ExceptionTable{}, fmt.Errorf("failed to decode exception table: %w", err)
	}

	table := ExceptionTable{
		NounPlural:   doc.Noun,
		VerbPresPart: make(map[string]string, len(doc.Verb)),
		VerbPastPart: make(map[string]string, len(doc.Verb)),
	}
	for lemma, forms := range doc.Verb {
		if forms.Prp != "" {
			table.VerbPresPart[lemma] = forms.Prp
		}
		if forms.Pap != "" {
			table.VerbPastPart[lemma] = forms.Pap
		}
	}
	return table, nil
}
