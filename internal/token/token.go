package token

import "fmt"

// Kind is the closed set of lexical categories produced by the lexer.
type Kind string

const (
	KindLeftParen  Kind = "LEFT_PAREN"
	KindRightParen Kind = "RIGHT_PAREN"
	KindLeftBrace  Kind = "LEFT_BRACE"
	KindRightBrace Kind = "RIGHT_BRACE"
	KindComma      Kind = "COMMA"
	KindDot        Kind = "DOT"
	KindSemicolon  Kind = "SEMICOLON"

	KindMinus        Kind = "MINUS"
	KindPlus         Kind = "PLUS"
	KindSlash        Kind = "SLASH"
	KindStar         Kind = "STAR"
	KindBang         Kind = "BANG"
	KindBangEqual    Kind = "BANG_EQUAL"
	KindEqual        Kind = "EQUAL"
	KindEqualEqual   Kind = "EQUAL_EQUAL"
	KindGreater      Kind = "GREATER"
	KindGreaterEqual Kind = "GREATER_EQUAL"
	KindLess         Kind = "LESS"
	KindLessEqual    Kind = "LESS_EQUAL"

	KindIdentifier Kind = "IDENTIFIER"
	KindString     Kind = "STRING"
	KindNumber     Kind = "NUMBER"

	KindAnd    Kind = "AND"
	KindClass  Kind = "CLASS"
	KindElse   Kind = "ELSE"
	KindFalse  Kind = "FALSE"
	KindFun    Kind = "FUN"
	KindFor    Kind = "FOR"
	KindIf     Kind = "IF"
	KindNil    Kind = "NIL"
	KindOr     Kind = "OR"
	KindPrint  Kind = "PRINT"
	KindReturn Kind = "RETURN"
	KindSuper  Kind = "SUPER"
	KindThis   Kind = "THIS"
	KindTrue   Kind = "TRUE"
	KindVar    Kind = "VAR"
	KindWhile  Kind = "WHILE"

	KindEOF Kind = "EOF"
)

// Token is a single lexical unit. Tokens are created by the lexer and never
// mutated afterwards; AST nodes share them by reference.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Line    int
}

func New(kind Kind, lexeme string, literal any, line int) Token {
	return Token{
		Kind:    kind,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Kind, t.Lexeme, t.Literal)
}
