package config

import "github.com/lexgen-project/lexgen/internal/generator"

// Standard returns a small catalogue of commonly needed token specs —
// an identifier, a decimal number, and whitespace — expressed as plain
// textual regexes. Each letter or digit range is spelled out as an
// explicit union over the grammar's only operators (union,
// concatenation, star), since there is no character-class shorthand.
func Standard() []generator.TokenSpec {
	letter := charUnion('a', 'z') + "|" + charUnion('A', 'Z')
	digit := charUnion('0', '9')
	space := "( |\t|\n)"

	return []generator.TokenSpec{
		{Name: "IDENTIFIER", Pattern: "(" + letter + ")((" + letter + ")|(" + digit + "))*"},
		{Name: "NUMBER", Pattern: "(" + digit + ")(" + digit + ")*"},
		{Name: "WHITESPACE", Pattern: space + space + "*"},
	}
}

// charUnion returns "lo|...|hi" over every byte in [lo, hi].
func charUnion(lo, hi byte) string {
	s := ""
	for c := lo; ; c++ {
		if s != "" {
			s += "|"
		}
		s += string(rune(c))
		if c == hi {
			break
		}
	}
	return s
}
