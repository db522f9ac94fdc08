package parser

import (
	"caselint/internal/ast"
	"caselint/internal/token"
)

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет. Запятая, присваивание и ?: разбираются
// отдельными уровнями выше Pratt-цикла; все операторы таблицы левоассоциативны.
const (
	precLogicalOr      = 1  // ||
	precLogicalAnd     = 2  // &&
	precBitwiseOr      = 3  // |
	precBitwiseXor     = 4  // ^
	precBitwiseAnd     = 5  // &
	precEquality       = 6  // == != === !==
	precRelational     = 7  // < <= > >= instanceof in
	precShift          = 8  // << >> >>>
	precAdditive       = 9  // + -
	precMultiplicative = 10 // * / %
)

type binaryInfo struct {
	prec int
	op   ast.BinaryOp
}

var binaryOps = map[token.Kind]binaryInfo{
	token.OrOr:         {precLogicalOr, ast.BinaryOrOr},
	token.AndAnd:       {precLogicalAnd, ast.BinaryAndAnd},
	token.Pipe:         {precBitwiseOr, ast.BinaryBitOr},
	token.Caret:        {precBitwiseXor, ast.BinaryBitXor},
	token.Amp:          {precBitwiseAnd, ast.BinaryBitAnd},
	token.EqEq:         {precEquality, ast.BinaryEq},
	token.BangEq:       {precEquality, ast.BinaryNotEq},
	token.EqEqEq:       {precEquality, ast.BinaryStrictEq},
	token.BangEqEq:     {precEquality, ast.BinaryStrictNotEq},
	token.Lt:           {precRelational, ast.BinaryLt},
	token.LtEq:         {precRelational, ast.BinaryLtEq},
	token.Gt:           {precRelational, ast.BinaryGt},
	token.GtEq:         {precRelational, ast.BinaryGtEq},
	token.KwInstanceof: {precRelational, ast.BinaryInstanceof},
	token.KwIn:         {precRelational, ast.BinaryIn},
	token.Shl:          {precShift, ast.BinaryShl},
	token.Shr:          {precShift, ast.BinaryShr},
	token.UShr:         {precShift, ast.BinaryUShr},
	token.Plus:         {precAdditive, ast.BinaryAdd},
	token.Minus:        {precAdditive, ast.BinarySub},
	token.Star:         {precMultiplicative, ast.BinaryMul},
	token.Slash:        {precMultiplicative, ast.BinaryDiv},
	token.Percent:      {precMultiplicative, ast.BinaryMod},
}

// getBinaryOperator возвращает приоритет и оператор; prec = -1 для не-бинарных токенов.
func getBinaryOperator(kind token.Kind) binaryInfo {
	if info, ok := binaryOps[kind]; ok {
		return info
	}
	return binaryInfo{prec: -1}
}

// isUnaryOperator — префиксные операторы.
func isUnaryOperator(kind token.Kind) bool {
	switch kind {
	case token.Bang, token.Tilde, token.Plus, token.Minus,
		token.KwTypeof, token.KwVoid, token.KwDelete,
		token.PlusPlus, token.MinusMinus:
		return true
	default:
		return false
	}
}

// canStartExpr — может ли токен начинать выражение.
func canStartExpr(kind token.Kind) bool {
	switch kind {
	case token.Ident, token.NumberLit, token.StringLit, token.TemplateLit,
		token.KwTrue, token.KwFalse, token.KwNull, token.KwThis,
		token.KwFunction, token.KwNew,
		token.LParen, token.LBracket, token.LBrace:
		return true
	}
	return isUnaryOperator(kind)
}
