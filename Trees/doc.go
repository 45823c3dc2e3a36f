/*
Package Trees provides AVL, a generic height-balanced binary search tree.

Nodes are kept in an arena owned by the tree and addressed by index; the index
type S bounds the capacity at max(S) nodes and keeps node records small for
narrow S. Removed slots go to a free list and are reused by later insertions.

A tree is not safe for concurrent use. Reads may run in parallel only while no
goroutine mutates the tree.
*/
package Trees

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var fallbackTracer = func() tracing.Trace {
	var t tracing.Trace = gologadapter.New()
	t.SetTraceLevel(tracing.LevelInfo)
	return t
}()

// tracer writes to the core tracer, or to the go log when none is configured.
func tracer() tracing.Trace {
	if t := gtrace.CoreTracer; t != nil {
		return t
	}
	return fallbackTracer
}
