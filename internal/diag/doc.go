// Package diag defines the diagnostic model shared by the lexer, the parser
// and file loading.
//
// # Scope
//
// Package diag carries lexical, syntax and IO findings. Rule findings are
// lint.Failure values and never pass through here. Formatting lives in
// internal/report.
//
// # Data model
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Code – compact numeric identifier with a stable string form
//     (LEX1001, SYN2001, IO4001).
//   - Message – short, actionable text.
//   - Primary span – the source.Span pointing at the issue.
//   - Notes – optional secondary spans.
//
// # Collection
//
// Producers only see the Reporter interface. BagReporter stores into a
// bounded Bag; DedupReporter drops repeats before forwarding. Bag.Sort gives
// a deterministic order (file, start, end, severity desc, code).
package diag
