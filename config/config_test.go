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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := writeConf(t, `{"inputPath": "in.conllu", "dispatcher": "noun_phrases"}`)

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, conf.MaxN)
	assert.Equal(t, 1, conf.Workers)
	assert.Equal(t, 20000, conf.Inflection.MorphCacheSize)
	assert.Equal(t, 5000, conf.Inflection.PhraseCacheSize)
	assert.Equal(t, "info", string(conf.Logging.Level))
}

func TestLoad_RespectsExplicitValues(t *testing.T) {
	path := writeConf(t, `{
		"inputPath": "in.conllu",
		"dispatcher": "verb+noun_phrases",
		"maxPhraseSize": 6,
		"workers": 8
	}`)

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, conf.MaxN)
	assert.Equal(t, 8, conf.Workers)
	assert.Equal(t, DispatcherVerbNounPhrases, conf.Dispatcher)
}

func TestLoad_RejectsMissingInputPath(t *testing.T) {
	path := writeConf(t, `{"dispatcher": "noun_phrases"}`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownDispatcher(t *testing.T) {
	path := writeConf(t, `{"inputPath": "in.conllu", "dispatcher": "bogus"}`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/conf.json")
	assert.Error(t, err)
}

func TestBuilderOpts_UsesConfiguredMaxN(t *testing.T) {
	conf := Conf{MaxN: 7}
	opts := conf.BuilderOpts()
	assert.Equal(t, 7, opts.MaxN)
}
