package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented outline of the tree rooted at n: one line per node
// with its kind, span and a short detail.
func Dump(w io.Writer, n Node, content []byte) error {
	return dump(w, n, content, 0)
}

func dump(w io.Writer, n Node, content []byte, depth int) error {
	sp := n.Span()
	line := fmt.Sprintf("%s%s [%d..%d)", strings.Repeat("  ", depth), n.Kind(), sp.Start, sp.End)
	if d := detail(n, content); d != "" {
		line += " " + d
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range Children(n) {
		if err := dump(w, c, content, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func detail(n Node, content []byte) string {
	switch n := n.(type) {
	case *Ident:
		return n.Name
	case *Literal:
		return n.Value
	case *BinaryExpr:
		return fmt.Sprintf("op=%q", n.Op.String())
	case *AssignExpr:
		return fmt.Sprintf("op=%q", n.Op.String())
	case *UnaryExpr:
		return fmt.Sprintf("op=%q", n.Op.String())
	case *PostfixExpr:
		return fmt.Sprintf("op=%q", n.Op.String())
	case *VarDecl:
		return n.Keyword.String()
	case *CaseClause:
		if !n.HasColon() {
			return "missing-colon"
		}
	case *BadExpr, *BadStmt:
		return fmt.Sprintf("%q", Text(n, content))
	}
	return ""
}
