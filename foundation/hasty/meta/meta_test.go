// File: meta_test.go
// Title: Metadata Side Table Tests
// Description: Tests for typed insert/get, overwrite and absence semantics,
//              store isolation and release of collected stores.
// Author: msto63
// Version: v0.2.0
// Created: 2025-02-12
// Modified: 2025-03-14
//
// Change History:
// - 2025-02-12 v0.1.0: Initial tests
// - 2025-03-14 v0.2.0: Store isolation and cleanup

package meta

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type typeInfo struct{ Name string }

var (
	typeKey    = NewKey[typeInfo]("type")
	bindingKey = NewKey[int]("binding")
)

func TestContainer_GetAbsent(t *testing.T) {
	c := NewStore().Node(0)

	value, ok := Get(c, typeKey)
	assert.False(t, ok)
	assert.Equal(t, typeInfo{}, value)
	assert.False(t, Has(c, typeKey))
	assert.Equal(t, 0, c.Len())
}

func TestContainer_Zero(t *testing.T) {
	var c Container

	_, ok := Get(c, typeKey)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
	assert.Panics(t, func() { Insert(c, typeKey, typeInfo{}) })
}

func TestContainer_InsertOverwrites(t *testing.T) {
	c := NewStore().Node(0)

	Insert(c, typeKey, typeInfo{Name: "int"})
	Insert(c, typeKey, typeInfo{Name: "float"})

	value, ok := Get(c, typeKey)
	require.True(t, ok)
	assert.Equal(t, "float", value.Name)
	assert.Equal(t, 1, c.Len())
}

func TestContainer_KindsAreIndependent(t *testing.T) {
	c := NewStore().Node(0)

	Insert(c, typeKey, typeInfo{Name: "string"})
	Insert(c, bindingKey, 7)

	ti, ok := Get(c, typeKey)
	require.True(t, ok)
	assert.Equal(t, "string", ti.Name)

	b, ok := Get(c, bindingKey)
	require.True(t, ok)
	assert.Equal(t, 7, b)
	assert.Equal(t, 2, c.Len())
}

func TestContainer_SameNameDifferentKey(t *testing.T) {
	c := NewStore().Node(0)
	other := NewKey[typeInfo]("type")

	Insert(c, typeKey, typeInfo{Name: "bool"})

	_, ok := Get(c, other)
	assert.False(t, ok, "keys with equal names must not alias")
	assert.Equal(t, "type", other.Name())
}

func TestContainer_EachInNameOrder(t *testing.T) {
	c := NewStore().Node(0)
	Insert(c, typeKey, typeInfo{Name: "nil"})
	Insert(c, bindingKey, 3)

	var names []string
	var values []interface{}
	c.Each(func(name string, value interface{}) {
		names = append(names, name)
		values = append(values, value)
	})
	assert.Equal(t, []string{"binding", "type"}, names)
	assert.Equal(t, []interface{}{3, typeInfo{Name: "nil"}}, values)
}

func TestStore_NodesAndStoresAreIsolated(t *testing.T) {
	first := NewStore()
	second := NewStore()

	Insert(first.Node(1), bindingKey, 10)
	Insert(second.Node(1), bindingKey, 20)

	got, ok := Get(first.Node(1), bindingKey)
	require.True(t, ok)
	assert.Equal(t, 10, got)

	got, ok = Get(second.Node(1), bindingKey)
	require.True(t, ok)
	assert.Equal(t, 20, got)

	assert.False(t, Has(first.Node(2), bindingKey))
	assert.Equal(t, 0, first.Node(2).Len())
}

func TestStore_RowsDroppedAfterCollection(t *testing.T) {
	key := NewKey[string]("scratch")

	func() {
		store := NewStore()
		for node := int32(0); node < 8; node++ {
			Insert(store.Node(node), key, "x")
		}
		require.Equal(t, 1, key.side.stores())
	}()

	assert.Eventually(t, func() bool {
		runtime.GC()
		return key.side.stores() == 0
	}, 5*time.Second, 10*time.Millisecond)
}
