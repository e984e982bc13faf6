// File: tree_test.go
// Title: Arena Tree Tests
// Description: Tests for node storage, metadata slots, validation,
//              visitor dispatch and the printer.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-12
// Modified: 2025-03-14
//
// Change History:
// - 2025-02-12 v0.1.0: Initial tests
// - 2025-03-14 v0.1.1: Per-tree metadata

package ast

import (
	"strings"
	"testing"

	"github.com/msto63/hasty/foundation/hasty/meta"
	"github.com/msto63/hasty/foundation/hasty/token"
)

func tok(kind token.Kind, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: 1, Column: 1}
}

func lit(t *Tree, lexeme string) Handle {
	return t.Add(Literal{Value: tok(token.Integer, lexeme)})
}

// buildSum builds (* (group (+ 1 2)) 3) as a single root
func buildSum() (*Tree, Handle) {
	tree := NewTree()
	one, two := lit(tree, "1"), lit(tree, "2")
	sum := tree.Add(Binary{Left: one, Operator: tok(token.Plus, "+"), Right: two})
	group := tree.Add(Grouping{Paren: tok(token.LeftParen, "("), Inner: sum})
	three := lit(tree, "3")
	product := tree.Add(Binary{Left: group, Operator: tok(token.Star, "*"), Right: three})
	tree.AppendRoot(product)
	return tree, product
}

func TestPrint(t *testing.T) {
	tree, root := buildSum()

	if got := Print(tree, root); got != "(* (group (+ 1 2)) 3)" {
		t.Errorf("Print() = %q", got)
	}

	decl := NewTree()
	typ := tok(token.Identifier, "int")
	value := lit(decl, "1")
	typed := decl.Add(VarDecl{Name: tok(token.Identifier, "x"), Type: &typ, Initializer: value})
	decl.AppendRoot(typed)
	bare := decl.Add(VarDecl{Name: tok(token.Identifier, "y"), Initializer: NoHandle})
	decl.AppendRoot(bare)
	neg := decl.Add(Unary{Operator: tok(token.Bang, "!"), Right: decl.Add(Variable{Name: tok(token.Identifier, "ok")})})
	decl.AppendRoot(neg)

	want := "(let x: int 1)\n(let y)\n(! ok)"
	if got := PrintRoots(decl); got != want {
		t.Errorf("PrintRoots() = %q, want %q", got, want)
	}
}

var noteKey = meta.NewKey[string]("note")

func TestMetadataSlots(t *testing.T) {
	tree, root := buildSum()

	if tree.Meta(root).Len() != 0 {
		t.Fatal("fresh nodes must have empty metadata")
	}

	meta.Insert(tree.Meta(root), noteKey, "product")
	got, ok := meta.Get(tree.Meta(root), noteKey)
	if !ok || got != "product" {
		t.Errorf("Get() = %q, %v", got, ok)
	}

	// Set replaces the payload but keeps metadata
	n := tree.Node(root).(Binary)
	n.Operator = tok(token.Slash, "/")
	tree.Set(root, n)

	if _, ok := meta.Get(tree.Meta(root), noteKey); !ok {
		t.Error("Set() dropped metadata")
	}
	if !strings.HasPrefix(Print(tree, root), "(/ ") {
		t.Errorf("Set() did not replace node: %s", Print(tree, root))
	}

	p := &Printer{Annotate: true}
	if got := p.Print(tree, root); got != "(/ (group (+ 1 2)) 3){note=product}" {
		t.Errorf("annotated Print() = %q", got)
	}
}

func TestMetadataPerTree(t *testing.T) {
	first, root := buildSum()
	second, _ := buildSum()

	meta.Insert(first.Meta(root), noteKey, "first")
	if _, ok := meta.Get(second.Meta(root), noteKey); ok {
		t.Error("metadata leaked into another tree")
	}

	// Growing the arena keeps earlier metadata
	for i := 0; i < 100; i++ {
		first.Add(Literal{Value: tok(token.Integer, "0")})
	}
	if got, ok := meta.Get(first.Meta(root), noteKey); !ok || got != "first" {
		t.Errorf("Get() after growth = %q, %v", got, ok)
	}
}

func TestValidate(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		tree, _ := buildSum()
		if err := tree.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("shared child", func(t *testing.T) {
		tree := NewTree()
		one := lit(tree, "1")
		sum := tree.Add(Binary{Left: one, Operator: tok(token.Plus, "+"), Right: one})
		tree.AppendRoot(sum)
		if err := tree.Validate(); err == nil || !strings.Contains(err.Error(), "more than one parent") {
			t.Errorf("Validate() error = %v, want shared child error", err)
		}
	})

	t.Run("child out of range", func(t *testing.T) {
		tree := NewTree()
		neg := tree.Add(Unary{Operator: tok(token.Minus, "-"), Right: Handle(42)})
		tree.AppendRoot(neg)
		if err := tree.Validate(); err == nil || !strings.Contains(err.Error(), "out of range") {
			t.Errorf("Validate() error = %v, want range error", err)
		}
	})

	t.Run("detached node", func(t *testing.T) {
		tree, _ := buildSum()
		lit(tree, "99")
		if err := tree.Validate(); err == nil || !strings.Contains(err.Error(), "not reachable") {
			t.Errorf("Validate() error = %v, want reachability error", err)
		}
	})

	t.Run("root used as child", func(t *testing.T) {
		tree := NewTree()
		one := lit(tree, "1")
		tree.AppendRoot(one)
		neg := tree.Add(Unary{Operator: tok(token.Minus, "-"), Right: one})
		tree.AppendRoot(neg)
		if err := tree.Validate(); err == nil || !strings.Contains(err.Error(), "also a child") {
			t.Errorf("Validate() error = %v, want root-as-child error", err)
		}
	})
}

type kindCounter struct {
	counts map[Kind]int
}

func (c *kindCounter) VisitBinary(h Handle, n Binary) error     { c.counts[n.Kind()]++; return nil }
func (c *kindCounter) VisitLogical(h Handle, n Logical) error   { c.counts[n.Kind()]++; return nil }
func (c *kindCounter) VisitUnary(h Handle, n Unary) error       { c.counts[n.Kind()]++; return nil }
func (c *kindCounter) VisitLiteral(h Handle, n Literal) error   { c.counts[n.Kind()]++; return nil }
func (c *kindCounter) VisitGrouping(h Handle, n Grouping) error { c.counts[n.Kind()]++; return nil }
func (c *kindCounter) VisitVarDecl(h Handle, n VarDecl) error   { c.counts[n.Kind()]++; return nil }
func (c *kindCounter) VisitVariable(h Handle, n Variable) error { c.counts[n.Kind()]++; return nil }

func TestAcceptAndInspect(t *testing.T) {
	tree, root := buildSum()
	counter := &kindCounter{counts: make(map[Kind]int)}

	var order []Handle
	Inspect(tree, root, func(h Handle, n Node) bool {
		order = append(order, h)
		if err := tree.Accept(h, counter); err != nil {
			t.Fatalf("Accept() error = %v", err)
		}
		return true
	})

	if len(order) != tree.Len() {
		t.Errorf("Inspect visited %d nodes, want %d", len(order), tree.Len())
	}
	if order[0] != root {
		t.Errorf("Inspect is not pre-order: first = %d", order[0])
	}
	if counter.counts[KindBinary] != 2 || counter.counts[KindLiteral] != 3 || counter.counts[KindGrouping] != 1 {
		t.Errorf("unexpected counts: %v", counter.counts)
	}

	skipped := 0
	Inspect(tree, root, func(h Handle, n Node) bool {
		skipped++
		return n.Kind() != KindGrouping
	})
	if skipped != 3 {
		t.Errorf("pruned walk visited %d nodes, want 3", skipped)
	}
}

func TestHandlePanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Node() with a foreign handle should panic")
		}
	}()
	NewTree().Node(Handle(0))
}
