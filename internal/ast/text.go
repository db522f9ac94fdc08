package ast

// Text returns the trimmed source text of n.
func Text(n Node, content []byte) string {
	sp := n.Span()
	return slice(content, sp.Start, sp.End)
}

// FullText returns the source text of n including its leading trivia.
func FullText(n Node, content []byte) string {
	return slice(content, n.FullStart(), n.Span().End)
}

// LeadingTrivia returns the text between the full start and the start of n.
func LeadingTrivia(n Node, content []byte) string {
	return slice(content, n.FullStart(), n.Span().Start)
}

func slice(content []byte, start, end uint32) string {
	s, e := int(start), int(end)
	if e > len(content) {
		e = len(content)
	}
	if s > e {
		return ""
	}
	return string(content[s:e])
}
