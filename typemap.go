package tileutil

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// TypeMap is an associative container whose entries are partitioned by
// each key's dynamic type. A key is only ever hashed and compared against
// keys of its own type, so look-alike enumerated types (two distinct
// int-based constant sets, say) can share one container without any
// cross-type comparison taking place.
//
// Keys must be comparable and non-nil; violating either panics. The zero
// value is not usable, construct with [NewTypeMap]. TypeMap is not safe
// for concurrent use.
type TypeMap[V any] struct {
	types []reflect.Type
	parts map[reflect.Type]*typePartition[V]
}

// typePartition holds the entries for one key type, keeping keys in
// insertion order.
type typePartition[V any] struct {
	keys    []any
	entries map[any]V
}

// NewTypeMap returns an empty TypeMap.
func NewTypeMap[V any]() *TypeMap[V] {
	return &TypeMap[V]{parts: make(map[reflect.Type]*typePartition[V])}
}

// Contains reports whether key is present. A partition for the key's
// dynamic type must exist and contain the key.
func (m *TypeMap[V]) Contains(key any) bool {
	p, ok := m.parts[reflect.TypeOf(key)]
	if !ok {
		return false
	}
	_, ok = p.entries[key]
	return ok
}

// Get returns the value stored under key, or an error wrapping
// [ErrKeyNotFound] if the key is absent.
func (m *TypeMap[V]) Get(key any) (V, error) {
	if p, ok := m.parts[reflect.TypeOf(key)]; ok {
		if v, ok := p.entries[key]; ok {
			return v, nil
		}
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Set inserts or overwrites key → value, creating the partition for the
// key's type on first use.
func (m *TypeMap[V]) Set(key any, value V) {
	t := reflect.TypeOf(key)
	if t == nil {
		panic("tileutil: TypeMap key must not be nil")
	}
	p, ok := m.parts[t]
	if !ok {
		p = &typePartition[V]{entries: make(map[any]V)}
		m.parts[t] = p
		m.types = append(m.types, t)
	}
	if _, exists := p.entries[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.entries[key] = value
}

// Delete removes key, dropping the key's whole partition the moment it
// becomes empty. Returns an error wrapping [ErrKeyNotFound] if the key is
// absent.
func (m *TypeMap[V]) Delete(key any) error {
	t := reflect.TypeOf(key)
	p, ok := m.parts[t]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	if _, ok := p.entries[key]; !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	delete(p.entries, key)
	p.keys = slices.DeleteFunc(p.keys, func(k any) bool { return k == key })
	if len(p.entries) == 0 {
		delete(m.parts, t)
		m.types = slices.DeleteFunc(m.types, func(x reflect.Type) bool { return x == t })
	}
	return nil
}

// Keys returns every key: partitions in the order their key types were
// first inserted, keys in insertion order within each partition.
func (m *TypeMap[V]) Keys() []any {
	var keys []any
	for _, t := range m.types {
		keys = append(keys, m.parts[t].keys...)
	}
	return keys
}

// Items yields every (key, value) pair in the same traversal order as
// [TypeMap.Keys].
func (m *TypeMap[V]) Items() iter.Seq2[any, V] {
	return func(yield func(any, V) bool) {
		for _, t := range m.types {
			p := m.parts[t]
			for _, k := range p.keys {
				if !yield(k, p.entries[k]) {
					return
				}
			}
		}
	}
}

// Len reports the number of distinct key types currently stored, NOT the
// number of entries. Callers wanting an entry count should use
// len(m.Keys()).
func (m *TypeMap[V]) Len() int { return len(m.parts) }
