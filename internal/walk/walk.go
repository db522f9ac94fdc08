// Package walk provides a pre-order traversal over ast trees with
// kind-specific hooks.
//
// A hook decides explicitly whether the walker descends into the node's
// children (Continue) or not (Skip). Nodes without a hook go to the default
// hook, or are descended into when none is set. A panic inside a hook
// propagates to the caller of Walk; the walker recovers nothing.
package walk

import (
	"fmt"

	"caselint/internal/ast"
)

// Decision tells the walker what to do after a hook returns.
type Decision uint8

const (
	// Continue descends into the node's children in source order.
	Continue Decision = iota
	// Skip leaves the node's subtree unvisited.
	Skip
)

func (d Decision) String() string {
	switch d {
	case Continue:
		return "continue"
	case Skip:
		return "skip"
	}
	return fmt.Sprintf("Decision(%d)", uint8(d))
}

// Hook is called once per visited node.
type Hook func(ast.Node) Decision

// Walker holds the hooks of one traversal. A Walker is not safe for
// concurrent use; build one per file.
type Walker struct {
	hooks    map[ast.Kind]Hook
	fallback Hook
}

func New() *Walker {
	return &Walker{hooks: make(map[ast.Kind]Hook)}
}

// On registers hook for nodes of the given kind, replacing any previous one.
func (w *Walker) On(kind ast.Kind, hook Hook) *Walker {
	w.hooks[kind] = hook
	return w
}

// Default sets the hook used for kinds without a specific hook.
func (w *Walker) Default(hook Hook) *Walker {
	w.fallback = hook
	return w
}

// Visit registers a typed hook. The kind is taken from T, which must be a
// concrete node pointer type such as *ast.SwitchStmt.
func Visit[T ast.Node](w *Walker, fn func(T) Decision) *Walker {
	var zero T
	if any(zero) == nil {
		panic(fmt.Sprintf("walk.Visit: %T is not a concrete node type", (*T)(nil)))
	}
	return w.On(zero.Kind(), func(n ast.Node) Decision {
		return fn(n.(T))
	})
}

// Walk visits root and, unless its hook returns Skip, each child recursively.
func (w *Walker) Walk(root ast.Node) {
	if root == nil {
		return
	}
	if w.decide(root) == Skip {
		return
	}
	for _, c := range ast.Children(root) {
		w.Walk(c)
	}
}

func (w *Walker) decide(n ast.Node) Decision {
	if hook, ok := w.hooks[n.Kind()]; ok {
		return hook(n)
	}
	if w.fallback != nil {
		return w.fallback(n)
	}
	return Continue
}

// Inspect walks root calling fn for every node; fn returning false skips the subtree.
func Inspect(root ast.Node, fn func(ast.Node) bool) {
	New().Default(func(n ast.Node) Decision {
		if fn(n) {
			return Continue
		}
		return Skip
	}).Walk(root)
}
