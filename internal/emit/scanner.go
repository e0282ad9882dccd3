// Package emit generates standalone Go source for a scanner that
// realizes the longest-match, priority-tie-break algorithm over an
// embedded copy of a compiled DFA's tables — so a consumer can lex
// input without importing lexgen at all. Modeled on
// KromDaniel-regengo's ThompsonGenerator/Compiler pipeline: build the
// file with dave/jennifer, then run it through go/format.
package emit

import (
	"bytes"
	"go/format"

	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"

	"github.com/lexgen-project/lexgen/internal/automata"
)

// ErrIO is the sentinel error kind for failures while rendering or
// formatting emitted source.
var ErrIO = errors.New("io error")

// Scanner renders dfa as a standalone Go source file in package
// pkgName, exporting a Token type and a Tokenize function.
func Scanner(pkgName string, dfa *automata.DFA) (string, error) {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by lexgen. DO NOT EDIT.")

	f.Type().Id("Token").Struct(
		jen.Id("Type").String(),
		jen.Id("Lexeme").String(),
		jen.Id("Line").Int(),
		jen.Id("Column").Int(),
		jen.Id("Offset").Int(),
	)

	f.Type().Id("label").Struct(
		jen.Id("TokenType").String(),
		jen.Id("Priority").Int(),
	)

	f.Const().Id("startState").Op("=").Lit(dfa.Start())
	f.Const().Id("deadState").Op("=").Lit(-1)

	transDict := jen.Dict{}
	for _, id := range dfa.States() {
		trans := dfa.Transitions(id)
		if len(trans) == 0 {
			continue
		}
		row := jen.Dict{}
		for sym, next := range trans {
			row[jen.Lit(sym)] = jen.Lit(next)
		}
		transDict[jen.Lit(id)] = jen.Map(jen.Byte()).Int().Values(row)
	}
	f.Var().Id("transitions").Op("=").Map(jen.Int()).Map(jen.Byte()).Int().Values(transDict)

	acceptDict := jen.Dict{}
	for _, id := range dfa.States() {
		if lbl, ok := dfa.Label(id); ok {
			acceptDict[jen.Lit(id)] = jen.Id("label").Values(jen.Dict{
				jen.Id("TokenType"): jen.Lit(lbl.TokenName),
				jen.Id("Priority"):  jen.Lit(lbl.Priority),
			})
		}
	}
	f.Var().Id("accepting").Op("=").Map(jen.Int()).Id("label").Values(acceptDict)

	f.Func().Id("step").Params(jen.Id("state").Int(), jen.Id("b").Byte()).Int().Block(
		jen.List(jen.Id("row"), jen.Id("ok")).Op(":=").Id("transitions").Index(jen.Id("state")),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Id("deadState")),
		),
		jen.List(jen.Id("next"), jen.Id("ok2")).Op(":=").Id("row").Index(jen.Id("b")),
		jen.If(jen.Op("!").Id("ok2")).Block(
			jen.Return(jen.Id("deadState")),
		),
		jen.Return(jen.Id("next")),
	)

	f.Func().Id("isSpace").Params(jen.Id("b").Byte()).Bool().Block(
		jen.Return(
			jen.Id("b").Op("==").Lit(byte(' ')).
				Op("||").Id("b").Op("==").Lit(byte('\t')).
				Op("||").Id("b").Op("==").Lit(byte('\n')),
		),
	)

	f.Comment("advance walks n bytes of input forward from pos, tracking line/column.")
	f.Func().Id("advance").Params(
		jen.Id("input").String(),
		jen.Id("pos").Int(),
		jen.Id("line").Int(),
		jen.Id("col").Int(),
		jen.Id("n").Int(),
	).Params(jen.Int(), jen.Int(), jen.Int()).Block(
		jen.For(
			jen.Id("i").Op(":=").Lit(0),
			jen.Id("i").Op("<").Id("n"),
			jen.Id("i").Op("++"),
		).Block(
			jen.If(jen.Id("input").Index(jen.Id("pos")).Op("==").Lit(byte('\n'))).Block(
				jen.Id("line").Op("++"),
				jen.Id("col").Op("=").Lit(1),
			).Else().Block(
				jen.Id("col").Op("++"),
			),
			jen.Id("pos").Op("++"),
		),
		jen.Return(jen.Id("pos"), jen.Id("line"), jen.Id("col")),
	)

	f.Comment("Tokenize runs the longest-match, priority-tie-break scanner")
	f.Comment("algorithm over the embedded DFA tables above.")
	f.Func().Id("Tokenize").Params(jen.Id("input").String()).Params(
		jen.Index().Id("Token"), jen.Index().Id("error"),
	).Block(
		jen.Var().Id("tokens").Index().Id("Token"),
		jen.Var().Id("errs").Index().Id("error"),
		jen.List(jen.Id("pos"), jen.Id("line"), jen.Id("col")).Op(":=").List(jen.Lit(0), jen.Lit(1), jen.Lit(1)),

		jen.For(jen.Id("pos").Op("<").Len(jen.Id("input"))).Block(
			jen.List(jen.Id("startLine"), jen.Id("startCol"), jen.Id("startPos")).Op(":=").List(
				jen.Id("line"), jen.Id("col"), jen.Id("pos"),
			),
			jen.Id("state").Op(":=").Id("startState"),
			jen.Id("lastAccept").Op(":=").Id("deadState"),
			jen.Var().Id("lastLabel").Id("label"),

			jen.Id("i").Op(":=").Id("pos"),
			jen.For(jen.Id("i").Op("<").Len(jen.Id("input"))).Block(
				jen.Id("next").Op(":=").Id("step").Call(jen.Id("state"), jen.Id("input").Index(jen.Id("i"))),
				jen.If(jen.Id("next").Op("==").Id("deadState")).Block(
					jen.Break(),
				),
				jen.Id("state").Op("=").Id("next"),
				jen.Id("i").Op("++"),
				jen.If(
					jen.List(jen.Id("lbl"), jen.Id("ok")).Op(":=").Id("accepting").Index(jen.Id("state")),
					jen.Id("ok"),
				).Block(
					jen.Id("lastAccept").Op("=").Id("i"),
					jen.Id("lastLabel").Op("=").Id("lbl"),
				),
			),

			jen.If(jen.Id("lastAccept").Op("==").Id("deadState")).Block(
				jen.If(jen.Id("isSpace").Call(jen.Id("input").Index(jen.Id("pos")))).Block(
					jen.List(jen.Id("pos"), jen.Id("line"), jen.Id("col")).Op("=").Id("advance").Call(
						jen.Id("input"), jen.Id("pos"), jen.Id("line"), jen.Id("col"), jen.Lit(1),
					),
				).Else().Block(
					jen.Id("errs").Op("=").Id("append").Call(
						jen.Id("errs"),
						jen.Qual("fmt", "Errorf").Call(
							jen.Lit("lexical error at line %d, column %d: unexpected byte %q"),
							jen.Id("startLine"), jen.Id("startCol"), jen.Id("input").Index(jen.Id("pos")),
						),
					),
					jen.List(jen.Id("pos"), jen.Id("line"), jen.Id("col")).Op("=").Id("advance").Call(
						jen.Id("input"), jen.Id("pos"), jen.Id("line"), jen.Id("col"), jen.Lit(1),
					),
				),
			).Else().Block(
				jen.Id("lexeme").Op(":=").Id("input").Index(jen.Id("startPos"), jen.Id("lastAccept")),
				jen.Id("tokens").Op("=").Id("append").Call(
					jen.Id("tokens"),
					jen.Id("Token").Values(jen.Dict{
						jen.Id("Type"):   jen.Id("lastLabel").Dot("TokenType"),
						jen.Id("Lexeme"): jen.Id("lexeme"),
						jen.Id("Line"):   jen.Id("startLine"),
						jen.Id("Column"): jen.Id("startCol"),
						jen.Id("Offset"): jen.Id("startPos"),
					}),
				),
				jen.List(jen.Id("pos"), jen.Id("line"), jen.Id("col")).Op("=").Id("advance").Call(
					jen.Id("input"), jen.Id("pos"), jen.Id("line"), jen.Id("col"), jen.Len(jen.Id("lexeme")),
				),
			),
		),

		jen.Return(jen.Id("tokens"), jen.Id("errs")),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", errors.Wrap(ErrIO, err.Error())
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", errors.Wrap(ErrIO, err.Error())
	}
	return string(formatted), nil
}
