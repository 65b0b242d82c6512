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
	"errors"
	"fmt"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerPhraseCache backs the per-phrase inflection cache with an on-disk
// badger store, for long-running batch CLI invocations that want the cache
// to survive across process restarts over the same corpus. It satisfies the
// same PhraseCache contract as the in-memory LRU; badger's own block cache
// bounds memory use, so no separate eviction bookkeeping is needed here.
type BadgerPhraseCache struct {
	db *badger.DB
}

// OpenBadgerPhraseCache opens (creating if absent) a badger store at dir.
func OpenBadgerPhraseCache(dir string) (*BadgerPhraseCache, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open phrase inflection cache: %w", err)
	}
	return &BadgerPhraseCache{db: db}, nil
}

func (c *BadgerPhraseCache) Close() error {
	return c.db.Close()
}

func (c *BadgerPhraseCache) Get(key string) ([]string, bool) {
	var words []string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) == 0 {
				words = nil
				return nil
			}
			words = strings.Split(string(val), "\x00")
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return nil, false
		}
		return nil, false
	}
	return words, true
}

func (c *BadgerPhraseCache) Put(key string, words []string) {
	val := strings.Join(words, "\x00")
	_ = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(val))
	})
}
