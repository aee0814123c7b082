// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements an in-memory sorted index for exact key lookups.
package index

import (
	"slices"
	"strings"
)

type item[V any] struct {
	key   string
	value V
}

// Index is a sorted array of values ordered by their lookup key.
type Index[V any] struct {
	items []item[V]
}

// New creates an index over values. The key function is called once per
// value. Values sharing a key keep their relative order.
func New[V any](values []V, key func(V) string) *Index[V] {
	items := make([]item[V], len(values))
	for i, v := range values {
		items[i] = item[V]{key: key(v), value: v}
	}
	slices.SortStableFunc(items, func(a, b item[V]) int {
		return strings.Compare(a.key, b.key)
	})

	return &Index[V]{
		items: items,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// Lookup performs a binary search over the index and returns all values
// whose key equals key.
func (idx *Index[V]) Lookup(key string) []V {
	i, found := slices.BinarySearchFunc(idx.items, key, func(it item[V], k string) int {
		return strings.Compare(it.key, k)
	})
	if !found {
		return nil
	}

	var values []V
	for ; i < len(idx.items) && idx.items[i].key == key; i++ {
		values = append(values, idx.items[i].value)
	}
	return values
}
