package expr

import "bytes"

// powers rewrites every a^b as (a**b). The caret binds tighter than a
// leading sign and associates to the right, so -x^2 is -(x^2) and 2^3^2
// is 2^9. A caret without a readable operand becomes a bare ** and is
// left to the parser.
func powers(src string) string {
	s := []byte(src)
	for i := bytes.LastIndexByte(s, '^'); i >= 0; i = bytes.LastIndexByte(s, '^') {
		l, r := operandStart(s, i), operandEnd(s, i+1)
		if l < 0 || r < 0 {
			s = append(s[:i:i], append([]byte("**"), s[i+1:]...)...)
			continue
		}
		out := make([]byte, 0, len(s)+3)
		out = append(out, s[:l]...)
		out = append(out, '(')
		out = append(out, bytes.TrimSpace(s[l:i])...)
		out = append(out, "**"...)
		out = append(out, bytes.TrimSpace(s[i+1:r])...)
		out = append(out, ')')
		out = append(out, s[r:]...)
		s = out
	}
	return string(s)
}

// operandStart returns where the operand ending before s[i] begins: a
// name, number, bracketed group or call, or -1.
func operandStart(s []byte, i int) int {
	j := i
	for j > 0 && isSpace(s[j-1]) {
		j--
	}
	end := j
scan:
	for j > 0 {
		switch c := s[j-1]; {
		case c == ')' || c == ']':
			if j = matchBack(s, j-1); j < 0 {
				return -1
			}
		case isWord(c):
			for j > 0 && isWord(s[j-1]) {
				j--
			}
			// 1e-5 splits at the exponent sign.
			if j >= 3 && isSign(s[j-1]) && isExp(s[j-2]) {
				k := j - 2
				for k > 0 && isWord(s[k-1]) {
					k--
				}
				if isDigit(s[k]) || s[k] == '.' {
					j = k
				}
			}
		default:
			break scan
		}
	}
	if j == end {
		return -1
	}
	return j
}

// operandEnd returns the end of the operand starting at s[i], including
// any leading signs, or -1.
func operandEnd(s []byte, i int) int {
	j := i
	for j < len(s) && (isSpace(s[j]) || isSign(s[j]) || s[j] == '!' || s[j] == '~') {
		j++
	}
	start := j
scan:
	for j < len(s) {
		switch c := s[j]; {
		case c == '(' || c == '[':
			k := matchForward(s, j)
			if k < 0 {
				return -1
			}
			j = k + 1
		case isWord(c):
			w := j
			for j < len(s) && isWord(s[j]) {
				j++
			}
			if (isDigit(s[w]) || s[w] == '.') && isExp(s[j-1]) && j+1 < len(s) && isSign(s[j]) && isDigit(s[j+1]) {
				j++
				for j < len(s) && isWord(s[j]) {
					j++
				}
			}
		default:
			break scan
		}
	}
	if j == start {
		return -1
	}
	return j
}

func matchBack(s []byte, i int) int {
	depth := 0
	for ; i >= 0; i-- {
		switch s[i] {
		case ')', ']':
			depth++
		case '(', '[':
			if depth--; depth == 0 {
				return i
			}
		}
	}
	return -1
}

func matchForward(s []byte, i int) int {
	depth := 0
	for ; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			if depth--; depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isWord(c byte) bool {
	return c == '_' || c == '$' || c == '.' || isDigit(c) || (c|0x20 >= 'a' && c|0x20 <= 'z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSign(c byte) bool  { return c == '+' || c == '-' }
func isExp(c byte) bool   { return c == 'e' || c == 'E' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
