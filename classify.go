package internetobject

// Character classification predicates. No state, no allocation; the
// tokenizer's main dispatch (tokenizer.go) is built entirely on top of
// these, generalized from the inline per-byte switches the teacher used
// in its own lexer loop.

const bom = '﻿'

func isWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', '\v', ' ', bom:
		return true
	}
	return false
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctalDigit(c rune) bool {
	return c >= '0' && c <= '7'
}

func isBinaryDigit(c rune) bool {
	return c == '0' || c == '1'
}

func isSpecialSymbol(c rune) bool {
	switch c {
	case '{', '}', '[', ']', ',', ':', '~':
		return true
	}
	return false
}

// getSymbolTokenType is total over the special-symbol set; callers must
// only invoke it after isSpecialSymbol has confirmed membership.
func getSymbolTokenType(c rune) TokenType {
	switch c {
	case '{':
		return CurlyOpen
	case '}':
		return CurlyClose
	case '[':
		return BracketOpen
	case ']':
		return BracketClose
	case ',':
		return Comma
	case ':':
		return Colon
	case '~':
		return Tilde
	}
	panic("internetobject: getSymbolTokenType called on a non-special character")
}

// isValidOpenStringChar reports whether c may appear inside an unquoted
// open string: not a special symbol, not a quote, not a comment starter,
// not EOF (callers test for EOF separately).
func isValidOpenStringChar(c rune) bool {
	if isSpecialSymbol(c) {
		return false
	}
	switch c {
	case '"', '\'', '#':
		return false
	}
	return true
}
