package syntax

// ToPostfix converts a marked infix pattern (the output of InsertConcat)
// to postfix token order.
//
// The conversion is a shunting-yard variant with exactly two binary
// operators, `|` and the Concat marker, at equal precedence. Resolution
// order depends only on stack discipline: left to right, innermost
// parenthesis first. Unary operators and literals never occupy the
// operator stack; they flow straight to the output and are consumed
// positionally by the automaton builder.
//
// Every binary operator pushed is popped to the output exactly once, so
// the output contains the same tokens as the input minus the brackets.
func ToPostfix(marked string) (string, error) {
	out := make([]byte, 0, len(marked))
	var ops []byte

	for i := 0; i < len(marked); i++ {
		c := marked[i]
		switch {
		case isBinary(c):
			// Left associativity: a binary operator already on top of
			// the stack is resolved before the new one is pushed. An
			// open bracket starts a fresh context and stays put.
			if n := len(ops); n > 0 && ops[n-1] != '(' {
				out = append(out, ops[n-1])
				ops = ops[:n-1]
			}
			ops = append(ops, c)

		case c == '(':
			ops = append(ops, c)

		case c == ')':
			n := len(ops)
			if n == 0 {
				return "", ErrUnmatchedBracket
			}
			if ops[n-1] != '(' {
				out = append(out, ops[n-1])
				ops = ops[:n-1]
				n--
			}
			if n == 0 || ops[n-1] != '(' {
				return "", ErrUnmatchedBracket
			}
			ops = ops[:n-1]

		default:
			// Unary operators and literals go straight to the output.
			out = append(out, c)
		}
	}

	// Drain the stack. A leftover open bracket means the pattern ended
	// inside a group.
	for n := len(ops); n > 0; n = len(ops) {
		if ops[n-1] == '(' {
			return "", ErrUnmatchedBracket
		}
		out = append(out, ops[n-1])
		ops = ops[:n-1]
	}

	return string(out), nil
}
