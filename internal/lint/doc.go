// Package lint hosts rules: it owns the Failure model, the rule registry
// and the Runner that lints many files in parallel.
//
// A rule sees one parsed file at a time and returns its failures; it does
// not know about configuration, caching or output. The Runner parses each
// file once, applies every enabled rule with panic isolation, stamps the
// configured severity on each failure and collects per-file Results.
package lint
