package caps

import (
	"strconv"
	"strings"
)

// expandParams implements the subset of terminfo's parameter mini-language
// (see terminfo(5) "Parameterized Strings"): %%, %d, %c, %s (pops and
// discards), %p1-%p9, %i, %{n}, %+ %- %* %/ %m, %< %> %= %A %O %! %~, and
// the %?%t%e%; conditional. It does not implement dynamic/static variables (%P/%g) or
// the printf-style width modifiers, since none of the capabilities in this
// package's table need them.
func expandParams(template string, params []int) string {
	var out strings.Builder
	var stack []int

	push := func(v int) { stack = append(stack, v) }
	pop := func() int {
		if len(stack) == 0 {
			return 0
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	// terminfo params are 1-indexed via %p1..%p9.
	arg := func(n int) int {
		if n < 1 || n > len(params) {
			return 0
		}
		return params[n-1]
	}

	i := 0
	n := len(template)
	for i < n {
		c := template[i]
		if c != '%' || i+1 >= n {
			out.WriteByte(c)
			i++
			continue
		}
		i++ // skip '%'
		op := template[i]
		i++
		switch op {
		case '%':
			out.WriteByte('%')
		case 'p':
			if i < n {
				idx := int(template[i] - '0')
				i++
				push(arg(idx))
			}
		case 'd':
			v := pop()
			out.WriteString(strconv.Itoa(v))
		case 'c':
			v := pop()
			out.WriteByte(byte(v))
		case 's':
			// no string params used by this table; treat as no-op pop.
			pop()
		case 'i':
			// increment first two parameters (cursor addressing is
			// 1-based in many terminfo entries).
			if len(params) >= 2 {
				params[0]++
				params[1]++
			} else if len(params) == 1 {
				params[0]++
			}
		case '+':
			b, a := pop(), pop()
			push(a + b)
		case '-':
			b, a := pop(), pop()
			push(a - b)
		case '*':
			b, a := pop(), pop()
			push(a * b)
		case '/':
			b, a := pop(), pop()
			if b != 0 {
				push(a / b)
			} else {
				push(0)
			}
		case 'm':
			b, a := pop(), pop()
			if b != 0 {
				push(a % b)
			} else {
				push(0)
			}
		case '<':
			b, a := pop(), pop()
			push(boolInt(a < b))
		case '>':
			b, a := pop(), pop()
			push(boolInt(a > b))
		case '=':
			b, a := pop(), pop()
			push(boolInt(a == b))
		case 'A':
			b, a := pop(), pop()
			push(boolInt(a != 0 && b != 0))
		case 'O':
			b, a := pop(), pop()
			push(boolInt(a != 0 || b != 0))
		case '!':
			push(boolInt(pop() == 0))
		case '~':
			push(^pop())
		case '?':
			// start of a conditional: the test expression that follows
			// executes normally (it only pushes values, see %t below).
		case 't':
			if pop() == 0 {
				// test was false: skip the "then" body. If it's
				// followed by %e (including a chained "else if" that
				// starts with its own test+%t), resume normal
				// execution there; otherwise the conditional is done.
				j, tok := skipCondBranch(template, i)
				i = j
				if tok == ';' {
					// nothing more to do; %; already consumed.
				}
			}
			// test was true: fall through and keep executing the
			// "then" body normally.
		case 'e':
			// reached by falling off the end of a taken "then" body:
			// skip the remaining else body up to the matching %;.
			i = skipToMatchingSemi(template, i)
		case ';':
			// end of conditional, no-op.
		case '{':
			j := i
			for j < n && template[j] != '}' {
				j++
			}
			v, _ := strconv.Atoi(template[i:j])
			push(v)
			i = j + 1
		default:
			// unknown/unsupported operator: drop it silently rather
			// than emit garbage into the escape sequence.
		}
	}
	return out.String()
}

// skipCondBranch scans forward from i (the position right after a %t
// whose test was false), looking for the %e or %; that closes this
// branch at the current nesting depth. Nested %?...%; pairs found along
// the way are skipped whole. It returns the index to resume scanning
// from and which token ('e' or ';') was found.
func skipCondBranch(s string, i int) (int, byte) {
	depth := 0
	for i < len(s)-1 {
		if s[i] == '%' {
			switch s[i+1] {
			case '?':
				depth++
			case ';':
				if depth == 0 {
					return i + 2, ';'
				}
				depth--
			case 'e':
				if depth == 0 {
					return i + 2, 'e'
				}
			}
		}
		i++
	}
	return len(s), ';'
}

// skipToMatchingSemi scans forward from i (the position right after a
// %e reached via a taken "then" branch) to the matching %; at the
// current nesting depth, skipping any nested conditionals whole.
func skipToMatchingSemi(s string, i int) int {
	depth := 0
	for i < len(s)-1 {
		if s[i] == '%' {
			switch s[i+1] {
			case '?':
				depth++
			case ';':
				if depth == 0 {
					return i + 2
				}
				depth--
			}
		}
		i++
	}
	return len(s)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

