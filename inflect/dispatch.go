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
	"fmt"
	"strings"
	"sync"

	"github.com/czcorpus/depphrase/perr"
	"github.com/czcorpus/depphrase/phrase"
)

// Inflector realizes a single word's lemma as a surface form, either as a
// phrase's own head (InflectHead) or in agreement with a head (InflectPair).
type Inflector interface {
	InflectHead(w *phrase.Word, lemma string) string
	InflectPair(head, mod *phrase.Word, modLemma string) string
}

// PhraseCache maps the per-phrase agreement-tuple key of §4.8 to an
// already-inflected word vector.
type PhraseCache interface {
	Get(key string) ([]string, bool)
	Put(key string, words []string)
}

// memPhraseCache is the default in-memory PhraseCache, a bounded LRU.
type memPhraseCache struct {
	inner *lruCache[string, []string]
}

// NewMemPhraseCache builds the default in-process phrase-inflection cache.
func NewMemPhraseCache(capacity int) PhraseCache {
	return &memPhraseCache{inner: newLRUCache[string, []string](capacity)}
}

func (c *memPhraseCache) Get(key string) ([]string, bool) { return c.inner.Get(key) }
func (c *memPhraseCache) Put(key string, words []string)  { c.inner.Put(key, words) }

// Engine dispatches a Phrase to the RU or EN inflector based on the
// languages its words carry (§4.8), with a shared phrase-level cache.
//
// Inflect calls are serialized by an internal mutex, which also guards the
// phrase cache and the inflectors' own caches, so one Engine can be shared
// by cmd/phrasex's sentence-worker goroutines.
type Engine struct {
	mu    sync.Mutex
	ru    Inflector
	en    Inflector
	cache PhraseCache
}

// NewEngine builds a dispatch engine. Either inflector may be nil if that
// language is not expected to appear in the input.
func NewEngine(ru, en Inflector, cache PhraseCache) *Engine {
	if cache == nil {
		cache = NewMemPhraseCache(5000)
	}
	return &Engine{ru: ru, en: en, cache: cache}
}

func phraseCacheKey(sent *phrase.Sentence, p *phrase.Phrase) string {
	var b strings.Builder
	for _, pos := range p.SentPosList {
		w := sent.Words[pos]
		fmt.Fprintf(
			&b, "%d:%s:%s:%s:%s:%s:%s|",
			w.WordID(), w.Pos.Readable, w.Case.Readable, w.Number.Readable,
			w.Gender.Readable, w.Voice.Readable, w.Tense.Readable,
		)
	}
	return b.String()
}

// detectLang returns the language to dispatch on: RU if any word in p
// carries LangRU, else EN if any carries LangEN, else
// perr.ErrUnsupportedLanguage (§4.8).
func detectLang(sent *phrase.Sentence, p *phrase.Phrase) (phrase.Lang, error) {
	hasEN := false
	for _, pos := range p.SentPosList {
		switch sent.Words[pos].Lang {
		case phrase.LangRU:
			return phrase.LangRU, nil
		case phrase.LangEN:
			hasEN = true
		}
	}
	if hasEN {
		return phrase.LangEN, nil
	}
	return phrase.LangUndef, perr.ErrUnsupportedLanguage
}

// Inflect rewrites p.Words in place with surface forms consistent with the
// head's grammatical features (§4.8). On a cache hit the walk is skipped
// entirely. Idempotent: calling Inflect twice on the same Phrase (same
// sentence, same cache) yields the same Words both times, since the cache
// key is derived from the sentence's immutable word features, not from
// whatever the Phrase currently holds.
func (e *Engine) Inflect(sent *phrase.Sentence, p *phrase.Phrase) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	lang, err := detectLang(sent, p)
	if err != nil {
		return err
	}
	var infl Inflector
	switch lang {
	case phrase.LangRU:
		infl = e.ru
	case phrase.LangEN:
		infl = e.en
	}
	if infl == nil {
		return perr.ErrUnsupportedLanguage
	}

	key := phraseCacheKey(sent, p)
	if cached, ok := e.cache.Get(key); ok {
		p.Words = append([]string(nil), cached...)
		return nil
	}

	words := append([]string(nil), p.Words...)
	inflected := make([]bool, len(words))

	words[p.HeadPos] = infl.InflectHead(sent.Words[p.SentPosList[p.HeadPos]], words[p.HeadPos])
	inflected[p.HeadPos] = true

	var walk func(head int)
	walk = func(head int) {
		headWord := sent.Words[p.SentPosList[head]]
		for mod := range p.Deps {
			if mod == head || inflected[mod] {
				continue
			}
			if mod+p.Deps[mod] != head {
				continue
			}
			modWord := sent.Words[p.SentPosList[mod]]
			words[mod] = infl.InflectPair(headWord, modWord, words[mod])
			inflected[mod] = true
			walk(mod)
		}
	}
	walk(p.HeadPos)

	p.Words = words
	e.cache.Put(key, append([]string(nil), words...))
	return nil
}
