package lexer

import "github.com/lexgen-project/lexgen/internal/automata"

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}

// Scan tokenizes input against dfa using maximal munch: from each
// position it walks the DFA as far as it can, remembering the longest
// prefix that ended on an accepting state (and that state's label,
// which subset construction has already resolved to the
// earliest-declared token on any priority tie). A byte that can't
// extend any match is skipped as whitespace or reported as a
// LexicalError; scanning continues afterward rather than aborting, so
// callers see every token and every error in one pass.
func Scan(dfa *automata.DFA, input string) ([]Token, []error) {
	var tokens []Token
	var errs []error

	pos, line, col := 0, 1, 1

	advance := func(n int) {
		for i := 0; i < n; i++ {
			if input[pos] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
			pos++
		}
	}

	for pos < len(input) {
		startLine, startCol, startPos := line, col, pos

		state := dfa.Start()
		lastAccept := automata.Dead
		var lastLabel automata.DFALabel

		i := pos
		for i < len(input) {
			next := dfa.Step(state, input[i])
			if next == automata.Dead {
				break
			}
			state = next
			i++
			if lbl, ok := dfa.Label(state); ok {
				lastAccept = i
				lastLabel = lbl
			}
		}

		if lastAccept == automata.Dead {
			if isWhitespace(input[pos]) {
				advance(1)
				continue
			}
			errs = append(errs, &LexicalError{
				Line:   startLine,
				Column: startCol,
				Offset: startPos,
				Byte:   input[pos],
			})
			advance(1)
			continue
		}

		lexeme := input[startPos:lastAccept]
		tokens = append(tokens, Token{
			Type:   lastLabel.TokenName,
			Lexeme: lexeme,
			Line:   startLine,
			Column: startCol,
			Offset: startPos,
		})
		advance(len(lexeme))
	}

	return tokens, errs
}
