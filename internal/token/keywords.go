package token

var keywords = map[string]Kind{
	"var":        KwVar,
	"let":        KwLet,
	"const":      KwConst,
	"function":   KwFunction,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"do":         KwDo,
	"for":        KwFor,
	"break":      KwBreak,
	"continue":   KwContinue,
	"switch":     KwSwitch,
	"case":       KwCase,
	"default":    KwDefault,
	"throw":      KwThrow,
	"new":        KwNew,
	"typeof":     KwTypeof,
	"void":       KwVoid,
	"delete":     KwDelete,
	"instanceof": KwInstanceof,
	"in":         KwIn,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
	"this":       KwThis,
}

var keywordText = func() map[Kind]string {
	out := make(map[Kind]string, len(keywords))
	for text, k := range keywords {
		out[k] = text
	}
	return out
}()

// LookupKeyword reports whether ident is a reserved word. Matching is case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
