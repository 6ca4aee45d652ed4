package token

import (
	"errors"
	"strings"
	"unicode"
)

var (
	errUnterminatedComment = errors.New("unterminated long comment")
	errUnterminatedString  = errors.New("unterminated string")
)

// CommentEnd returns the offset just past the comment starting at src[i:],
// which must begin with "--", and the number of newlines inside it. A
// single-line comment ends before its terminating '\n'.
//
// A long comment opened by "--[" followed by n '=' and '[' is closed only by
// ']' followed by the same n '=' and ']'.
func CommentEnd(src string, i int) (end, lines int, err error) {
	j := i + 2
	if level, ok := longBracket(src, j); ok {
		body := j + level + 2
		closer := "]" + strings.Repeat("=", level) + "]"
		k := strings.Index(src[body:], closer)
		if k < 0 {
			return len(src), strings.Count(src[i:], "\n"), errUnterminatedComment
		}
		end = body + k + len(closer)
		return end, strings.Count(src[i:end], "\n"), nil
	}
	k := strings.IndexByte(src[j:], '\n')
	if k < 0 {
		return len(src), 0, nil
	}
	return j + k, 0, nil
}

// longBracket reports whether src[j:] opens a long bracket "[=*[" and its
// level.
func longBracket(src string, j int) (int, bool) {
	if j >= len(src) || src[j] != '[' {
		return 0, false
	}
	k := j + 1
	for k < len(src) && src[k] == '=' {
		k++
	}
	if k >= len(src) || src[k] != '[' {
		return 0, false
	}
	return k - j - 1, true
}

// StringEnd returns the offset just past the quoted string starting at
// src[i], which must be '"' or '\'', and the number of newlines inside it.
func StringEnd(src string, i int) (end, lines int, err error) {
	quote := src[i]
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case quote:
			return j + 1, lines, nil
		case '\\':
			j++
			if j < len(src) && src[j] == '\n' {
				lines++
			}
		case '\n':
			lines++
		}
		j++
	}
	return len(src), lines, errUnterminatedString
}

func unescape(body string) string {
	if strings.IndexByte(body, '\\') < 0 {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			// \\ \" \' and escaped newlines are literal, as is anything else.
			b.WriteByte(body[i])
		}
	}
	return b.String()
}

func IsIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func IsIdentPart(r rune) bool {
	return IsIdentStart(r) || unicode.IsDigit(r)
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
