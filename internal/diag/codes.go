package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005

	// Синтаксические
	SynUnexpectedToken   Code = 2001
	SynExpectSemicolon   Code = 2002
	SynExpectIdentifier  Code = 2003
	SynExpectExpression  Code = 2004
	SynExpectColon       Code = 2005
	SynUnclosedParen     Code = 2006
	SynUnclosedBrace     Code = 2007
	SynUnclosedBracket   Code = 2008
	SynDuplicateDefault  Code = 2009
	SynExpectCaseOrBrace Code = 2010

	// Ввод/вывод
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	LexUnterminatedTemplate:     "Unterminated template literal",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectSemicolon:          "Expected ';'",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectExpression:         "Expected expression",
	SynExpectColon:              "Expected ':'",
	SynUnclosedParen:            "Unclosed '('",
	SynUnclosedBrace:            "Unclosed '{'",
	SynUnclosedBracket:          "Unclosed '['",
	SynDuplicateDefault:         "More than one default clause in switch",
	SynExpectCaseOrBrace:        "Expected 'case', 'default' or '}'",
	IOLoadFileError:             "Failed to load file",
	IOCacheError:                "Result cache failure",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
