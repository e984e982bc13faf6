// File: meta.go
// Title: Per-Node Metadata Side Tables
// Description: An open attribute bag attached to every tree node. Each
//              attribute kind is identified by a typed Key created once by
//              the package that owns the attribute. The Key owns a side
//              table from node to value, so values are stored and read
//              back with their static type and later passes can add kinds
//              without touching earlier code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-02-12
// Modified: 2025-03-14
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation
// - 2025-03-14 v0.2.0: Typed side tables owned by keys replace the
//                      interface-valued entry map

// Package meta implements the metadata attached to tree nodes.
//
// A Store identifies the metadata of one tree; a Container is the view of
// one node in it. Values live in the side table of their Key, indexed by
// store and node, so Get never converts from an untyped value:
//
//	var noteKey = meta.NewKey[string]("note")
//
//	store := meta.NewStore()
//	meta.Insert(store.Node(3), noteKey, "hot path")
//	note, ok := meta.Get(store.Node(3), noteKey) // "hot path", true
//
// A store's rows are dropped from every side table once the store is
// garbage collected.
package meta

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
)

var (
	nextKeyID   atomic.Uint64
	nextStoreID atomic.Uint64
)

// column is the untyped face of one side table. It serves listing and
// cleanup, where values only leave as interface{} for display.
type column interface {
	kindName() string
	lookup(store uint64, node int32) (interface{}, bool)
	drop(store uint64)
}

// table maps store and node to the value of one attribute kind. Its lock
// guards against store cleanups, which run on a runtime goroutine.
type table[T any] struct {
	name string
	mu   sync.Mutex
	rows map[uint64]map[int32]T
}

func (t *table[T]) get(store uint64, node int32) (value T, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	value, ok = t.rows[store][node]
	return value, ok
}

func (t *table[T]) set(store uint64, node int32, value T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, found := t.rows[store]
	if !found {
		row = make(map[int32]T)
		t.rows[store] = row
	}
	row[node] = value
}

func (t *table[T]) kindName() string {
	return t.name
}

func (t *table[T]) lookup(store uint64, node int32) (interface{}, bool) {
	value, ok := t.get(store, node)
	return value, ok
}

func (t *table[T]) drop(store uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.rows, store)
}

// stores returns the number of stores holding rows in the table
func (t *table[T]) stores() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

// Key identifies one attribute kind carrying values of type T.
// Keys are compared by identity: two keys created with the same name are
// still distinct kinds. The zero Key is not usable; call NewKey.
type Key[T any] struct {
	id   uint64
	side *table[T]
}

// NewKey creates a new attribute kind. Call it once per kind, usually in a
// package-level var.
func NewKey[T any](name string) Key[T] {
	return Key[T]{
		id:   nextKeyID.Add(1),
		side: &table[T]{name: name, rows: make(map[uint64]map[int32]T)},
	}
}

// Name returns the name given to NewKey
func (k Key[T]) Name() string {
	return k.side.name
}

// columns records the kinds that hold rows for one store
type columns struct {
	mu   sync.Mutex
	byID map[uint64]column
}

func (c *columns) add(id uint64, col column) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID[id] = col
}

func (c *columns) list() []column {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := make([]column, 0, len(c.byID))
	for _, col := range c.byID {
		list = append(list, col)
	}
	return list
}

func (c *columns) dropAll(store uint64) {
	for _, col := range c.list() {
		col.drop(store)
	}
}

// Store identifies the metadata of one tree. A Store is not safe for
// concurrent mutation.
type Store struct {
	id      uint64
	columns *columns
}

// NewStore creates an empty store
func NewStore() *Store {
	s := &Store{
		id:      nextStoreID.Add(1),
		columns: &columns{byID: make(map[uint64]column)},
	}
	id := s.id
	runtime.AddCleanup(s, func(c *columns) { c.dropAll(id) }, s.columns)
	return s
}

// Node returns the container of one node
func (s *Store) Node(node int32) Container {
	return Container{store: s, node: node}
}

// Container is the metadata of one node. It holds at most one value per
// attribute kind. The zero Container is empty and read-only.
type Container struct {
	store *Store
	node  int32
}

// Insert stores value under key, replacing any earlier value of that kind.
// It panics on the zero Container.
func Insert[T any](c Container, key Key[T], value T) {
	if c.store == nil {
		panic("meta: Insert on a container without store")
	}
	c.store.columns.add(key.id, key.side)
	key.side.set(c.store.id, c.node, value)
	runtime.KeepAlive(c.store)
}

// Get returns the value stored under key. ok is false when the kind has
// not been set on this container.
func Get[T any](c Container, key Key[T]) (value T, ok bool) {
	if c.store == nil {
		return value, false
	}
	value, ok = key.side.get(c.store.id, c.node)
	runtime.KeepAlive(c.store)
	return value, ok
}

// Has reports whether a value of the kind is present
func Has[T any](c Container, key Key[T]) bool {
	_, ok := Get(c, key)
	return ok
}

type attribute struct {
	name  string
	value interface{}
}

func (c Container) attributes() []attribute {
	if c.store == nil {
		return nil
	}
	var attrs []attribute
	for _, col := range c.store.columns.list() {
		if value, ok := col.lookup(c.store.id, c.node); ok {
			attrs = append(attrs, attribute{name: col.kindName(), value: value})
		}
	}
	runtime.KeepAlive(c.store)
	return attrs
}

// Len returns the number of attribute kinds present
func (c Container) Len() int {
	return len(c.attributes())
}

// Each calls fn for every attribute in name order. It lets generic
// tooling such as tree dumps show attributes without knowing their keys.
func (c Container) Each(fn func(name string, value interface{})) {
	attrs := c.attributes()
	sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].name < attrs[j].name })

	for _, a := range attrs {
		fn(a.name, a.value)
	}
}
