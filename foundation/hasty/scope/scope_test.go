// File: scope_test.go
// Title: Scope Stack Tests
// Description: Tests for declaration, shadowing, lookup order and frame
//              management.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial tests

package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_DeclareAndLookup(t *testing.T) {
	s := New[string]()

	_, ok := s.Lookup("x")
	assert.False(t, ok, "empty scope should not find x")

	s.Declare("x", "int")
	got, ok := s.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "int", got)
	assert.True(t, s.Contains("x"))
}

func TestScope_RedeclareOverwritesWithinFrame(t *testing.T) {
	s := New[string]()

	s.Declare("x", "int")
	s.Declare("x", "string")

	got, _ := s.Lookup("x")
	assert.Equal(t, "string", got)
	assert.Equal(t, []string{"x"}, s.Names())
}

func TestScope_InnermostFrameWins(t *testing.T) {
	s := New[string]()
	s.Declare("x", "int")
	s.Declare("y", "bool")

	s.Push()
	s.Declare("x", "float")
	assert.Equal(t, 2, s.Depth())

	got, _ := s.Lookup("x")
	assert.Equal(t, "float", got, "shadowing binding should be found first")

	got, _ = s.Lookup("y")
	assert.Equal(t, "bool", got, "outer bindings stay visible")

	_, ok := s.LookupLocal("y")
	assert.False(t, ok, "LookupLocal must not search outer frames")

	require.True(t, s.Pop())
	got, _ = s.Lookup("x")
	assert.Equal(t, "int", got, "pop should restore the outer binding")
}

func TestScope_PopGlobalFrame(t *testing.T) {
	s := New[int]()
	assert.False(t, s.Pop())
	assert.Equal(t, 1, s.Depth())

	s.Declare("still", 1)
	assert.True(t, s.Contains("still"))
}

func TestScope_PoppedNamesDisappear(t *testing.T) {
	s := New[int]()
	s.Push()
	s.Declare("tmp", 1)
	s.Pop()

	assert.False(t, s.Contains("tmp"))
	assert.Empty(t, s.Names())
}
