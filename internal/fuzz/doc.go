// Package fuzztests houses Go fuzz harnesses for the lint pipeline
// (source -> lexer -> parser -> rules -> fixes). Arbitrary input must never
// panic, hang, produce spans outside the file or fixes that fail to apply.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/rules, internal/testkit.
package fuzztests
