package lexer

import (
	"strings"
	"unicode/utf8"

	"ecmaparse/internal/diag"
	"ecmaparse/internal/token"
)

// scanString scans a single- or double-quoted string literal. Token.Text
// keeps the quotes and raw escapes; use Unquote for the decoded value.
// Unterminated strings are reported and cut at the line break or EOF.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump() // ' or "

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.emitString(start)
		}
		if b == '\n' || b == '\r' {
			lx.report(diag.LexNewlineInString, lx.cursor.SpanFrom(start), "line break inside string literal")
			return lx.emitString(start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			// escaped line breaks (line continuations) are fine
			if !lx.cursor.EOF() {
				lx.bumpRune()
			}
			continue
		}
		lx.bumpRune()
	}

	lx.report(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated string literal")
	return lx.emitString(start)
}

func (lx *Lexer) emitString(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// Unquote decodes a raw string-literal token text (quotes included) into its
// value. Decoding is best-effort: unknown escapes keep the escaped
// character, which matches how ECMAScript treats them.
func Unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	quote := raw[0]
	if quote != '\'' && quote != '"' {
		return raw
	}
	body := raw[1:]
	if body[len(body)-1] == quote {
		body = body[:len(body)-1]
	}
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(body) {
			break
		}
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
			i++
		case 't':
			sb.WriteByte('\t')
			i++
		case 'r':
			sb.WriteByte('\r')
			i++
		case 'b':
			sb.WriteByte('\b')
			i++
		case 'f':
			sb.WriteByte('\f')
			i++
		case 'v':
			sb.WriteByte('\v')
			i++
		case '0':
			sb.WriteByte(0)
			i++
		case '\n':
			i++ // line continuation
		case '\r':
			i++
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case 'x':
			if i+2 < len(body) && isHex(body[i+1]) && isHex(body[i+2]) {
				sb.WriteRune(rune(hexVal(body[i+1])<<4 | hexVal(body[i+2])))
				i += 3
			} else {
				sb.WriteByte('x')
				i++
			}
		case 'u':
			r, n := decodeUnicodeEscape(body[i:])
			if n > 0 {
				sb.WriteRune(r)
				i += n
			} else {
				sb.WriteByte('u')
				i++
			}
		default:
			// \\, \', \", and anything unknown: keep the character itself
			_, sz := utf8.DecodeRuneInString(body[i:])
			sb.WriteString(body[i : i+sz])
			i += sz
		}
	}
	return sb.String()
}

// decodeUnicodeEscape parses "u XXXX" or "u{...}" starting at the 'u'.
// Returns the rune and how many bytes were consumed, or (0, 0) on failure.
func decodeUnicodeEscape(s string) (rune, int) {
	if len(s) == 0 || s[0] != 'u' {
		return 0, 0
	}
	if len(s) >= 2 && s[1] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return 0, 0
		}
		var v rune
		for _, c := range []byte(s[2:end]) {
			if !isHex(c) {
				return 0, 0
			}
			v = v<<4 | rune(hexVal(c))
		}
		return v, end + 1
	}
	if len(s) < 5 {
		return 0, 0
	}
	var v rune
	for _, c := range []byte(s[1:5]) {
		if !isHex(c) {
			return 0, 0
		}
		v = v<<4 | rune(hexVal(c))
	}
	return v, 5
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
