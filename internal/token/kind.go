package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// NumberLit is a numeric literal.
	NumberLit
	// StringLit is a single- or double-quoted string literal.
	StringLit
	// TemplateLit is a backquoted template literal without substitutions parsed.
	TemplateLit

	kwBegin
	KwVar        // var
	KwLet        // let
	KwConst      // const
	KwFunction   // function
	KwReturn     // return
	KwIf         // if
	KwElse       // else
	KwWhile      // while
	KwDo         // do
	KwFor        // for
	KwBreak      // break
	KwContinue   // continue
	KwSwitch     // switch
	KwCase       // case
	KwDefault    // default
	KwThrow      // throw
	KwNew        // new
	KwTypeof     // typeof
	KwVoid       // void
	KwDelete     // delete
	KwInstanceof // instanceof
	KwIn         // in
	KwTrue       // true
	KwFalse      // false
	KwNull       // null
	KwThis       // this
	kwEnd

	Plus               // +
	Minus              // -
	Star               // *
	Slash              // /
	Percent            // %
	PlusPlus           // ++
	MinusMinus         // --
	Assign             // =
	PlusAssign         // +=
	MinusAssign        // -=
	StarAssign         // *=
	SlashAssign        // /=
	PercentAssign      // %=
	AmpAssign          // &=
	PipeAssign         // |=
	CaretAssign        // ^=
	ShlAssign          // <<=
	ShrAssign          // >>=
	UShrAssign         // >>>=
	EqEq               // ==
	EqEqEq             // ===
	Bang               // !
	BangEq             // !=
	BangEqEq           // !==
	Lt                 // <
	LtEq               // <=
	Gt                 // >
	GtEq               // >=
	Shl                // <<
	Shr                // >>
	UShr               // >>>
	Amp                // &
	Pipe               // |
	Caret              // ^
	Tilde              // ~
	AndAnd             // &&
	OrOr               // ||
	Question           // ?
	Colon              // :
	Semicolon          // ;
	Comma              // ,
	Dot                // .
	Arrow              // =>
	LParen             // (
	RParen             // )
	LBrace             // {
	RBrace             // }
	LBracket           // [
	RBracket           // ]
)

var kindNames = map[Kind]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	NumberLit:     "NumberLit",
	StringLit:     "StringLit",
	TemplateLit:   "TemplateLit",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	PlusPlus:      "++",
	MinusMinus:    "--",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	AmpAssign:     "&=",
	PipeAssign:    "|=",
	CaretAssign:   "^=",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	UShrAssign:    ">>>=",
	EqEq:          "==",
	EqEqEq:        "===",
	Bang:          "!",
	BangEq:        "!=",
	BangEqEq:      "!==",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	Shl:           "<<",
	Shr:           ">>",
	UShr:          ">>>",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Tilde:         "~",
	AndAnd:        "&&",
	OrOr:          "||",
	Question:      "?",
	Colon:         ":",
	Semicolon:     ";",
	Comma:         ",",
	Dot:           ".",
	Arrow:         "=>",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
}

// String returns the punctuation itself, the keyword text or the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k.IsKeyword() {
		return keywordText[k]
	}
	return "Unknown"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k > kwBegin && k < kwEnd
}

// IsAssignment reports whether k is '=' or a compound assignment operator.
func (k Kind) IsAssignment() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign,
		AmpAssign, PipeAssign, CaretAssign, ShlAssign, ShrAssign, UShrAssign:
		return true
	default:
		return false
	}
}
