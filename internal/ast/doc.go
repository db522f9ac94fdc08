// Package ast holds the read-only syntax tree produced by internal/parser.
//
// Every node implements Node: Kind reports a tag from the closed Kind
// enumeration, Span is the trimmed range (first token start .. last token
// end) and FullStart is where the node's leading trivia begins. The full text
// of a node is content[FullStart:Span.End].
//
// The node set is closed. Code that needs to enumerate children uses
// Children, which panics on a node type it does not know. Kind is safe to call
// on a nil pointer of any concrete node type.
//
// Nodes are never mutated after the parser returns them.
package ast
