// Package ordered provides key-ordered containers for grouping results.
//
// Maps built from Go's native map type iterate in random order; the
// containers here are backed by B-Trees so Keys, Values and Scan always walk
// keys in ascending order, which makes grouped query results reproducible.
package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/btree"
)

// Key is the set of key types the containers accept.
type Key interface {
	~string | ~int | ~int64
}

// Map is an ordered map. The zero value is an empty map ready to use.
type Map[K Key, V any] struct {
	tree btree.Map[K, V]
}

// NewMap returns an empty ordered map.
func NewMap[K Key, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Set stores value under key, replacing any previous value.
func (m *Map[K, V]) Set(key K, value V) {
	m.tree.Set(key, value)
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// GetOrInsert returns the value under key, first storing the result of
// newValue when the key is absent.
func (m *Map[K, V]) GetOrInsert(key K, newValue func() V) V {
	if v, ok := m.tree.Get(key); ok {
		return v
	}
	v := newValue()
	m.tree.Set(key, v)
	return v
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	m.tree.Scan(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns the values in key order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.tree.Len())
	m.tree.Scan(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Scan calls fn for every entry in ascending key order until fn returns false.
func (m *Map[K, V]) Scan(fn func(key K, value V) bool) {
	m.tree.Scan(fn)
}

// MarshalJSON encodes the map as a JSON object with keys in ascending order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	first := true
	m.tree.Scan(func(k K, v V) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		var key, value []byte
		if key, err = json.Marshal(fmt.Sprint(k)); err != nil {
			return false
		}
		if value, err = json.Marshal(v); err != nil {
			return false
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Set is an ordered set of distinct keys.
type Set[K Key] struct {
	tree btree.Set[K]
}

// NewSet returns a set holding items.
func NewSet[K Key](items ...K) *Set[K] {
	s := &Set[K]{}
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

func (s *Set[K]) Insert(key K) {
	s.tree.Insert(key)
}

func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// Items returns the members in ascending order.
func (s *Set[K]) Items() []K {
	items := make([]K, 0, s.tree.Len())
	s.tree.Scan(func(k K) bool {
		items = append(items, k)
		return true
	})
	return items
}
