package gentest

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
)

// oneEntryPerLine lays out a composite literal with each element on
// its own line, so the case table stays readable and diffable.
var oneEntryPerLine = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}

// Generate renders the conformance test source. The output lives in
// the syntax package itself so the table can reference flag constants
// unqualified. Rendering is deterministic; the checked-in file is the
// byte-exact output.
func Generate(cases []Case) ([]byte, error) {
	f := jen.NewFile("syntax")
	f.HeaderComment("Code generated by scripts/conformance; DO NOT EDIT.")

	f.Comment("conformanceCond is one failing condition: the case fails when every")
	f.Comment("flag in set is enabled and every flag in clear is disabled.")
	f.Type().Id("conformanceCond").Struct(
		jen.Id("set").Id("Flags"),
		jen.Id("clear").Id("Flags"),
	)
	f.Line()

	f.Type().Id("conformanceCase").Struct(
		jen.Id("input").String(),
		jen.Id("fails").Bool(),
		jen.Id("failsWhen").Index().Id("conformanceCond"),
		jen.Id("prints").Index().String(),
	)
	f.Line()

	entries, err := caseEntries(cases)
	if err != nil {
		return nil, err
	}
	f.Var().Id("conformanceCases").Op("=").Index().Id("conformanceCase").Custom(oneEntryPerLine, entries...)
	f.Line()

	f.Func().Params(jen.Id("c").Id("conformanceCase")).Id("shouldFail").
		Params(jen.Id("flags").Id("Flags")).Bool().
		Block(
			jen.If(jen.Id("c").Dot("fails")).Block(jen.Return(jen.True())),
			jen.For(jen.List(jen.Id("_"), jen.Id("cond")).Op(":=").Range().Id("c").Dot("failsWhen")).Block(
				jen.If(
					jen.Id("flags").Op("&").Id("cond").Dot("set").Op("==").Id("cond").Dot("set").
						Op("&&").Id("flags").Op("&").Id("cond").Dot("clear").Op("==").Lit(0),
				).Block(jen.Return(jen.True())),
			),
			jen.Return(jen.False()),
		)
	f.Line()

	f.Func().Id("TestConformanceFlagMatrix").Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		jen.For(jen.List(jen.Id("_"), jen.Id("tc")).Op(":=").Range().Id("conformanceCases")).Block(
			jen.Id("tc").Op(":=").Id("tc"),
			jen.Id("t").Dot("Run").Call(jen.Id("tc").Dot("input"), jen.Func().Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
				jen.Id("observed").Op(":=").Make(jen.Map(jen.String()).Bool()),
				jen.For(
					jen.Id("flags").Op(":=").Id("NoFlags"),
					jen.Id("flags").Op("<=").Id("AllFlags"),
					jen.Id("flags").Op("++"),
				).Block(
					jen.List(jen.Id("e"), jen.Id("err")).Op(":=").Id("Parse").Call(jen.Id("tc").Dot("input"), jen.Id("flags")),
					jen.If(jen.Id("tc").Dot("shouldFail").Call(jen.Id("flags"))).Block(
						jen.If(jen.Id("err").Op("==").Nil()).Block(
							jen.Id("t").Dot("Fatalf").Call(jen.Lit("flags %v: expected failure, parsed to %q"), jen.Id("flags"), jen.Id("e").Dot("String").Call()),
						),
						jen.Continue(),
					),
					jen.If(jen.Id("err").Op("!=").Nil()).Block(
						jen.Id("t").Dot("Fatalf").Call(jen.Lit("flags %v: unexpected error: %v"), jen.Id("flags"), jen.Id("err")),
					),
					jen.Id("got").Op(":=").Id("e").Dot("String").Call(),
					jen.Id("observed").Index(jen.Id("got")).Op("=").True(),
					jen.If(
						jen.Len(jen.Id("tc").Dot("prints")).Op(">").Lit(0).
							Op("&&").Op("!").Id("containsString").Call(jen.Id("tc").Dot("prints"), jen.Id("got")),
					).Block(
						jen.Id("t").Dot("Errorf").Call(jen.Lit("flags %v: canonical form %q not among %q"), jen.Id("flags"), jen.Id("got"), jen.Id("tc").Dot("prints")),
					),
				),
				jen.For(jen.List(jen.Id("_"), jen.Id("want")).Op(":=").Range().Id("tc").Dot("prints")).Block(
					jen.If(jen.Op("!").Id("observed").Index(jen.Id("want"))).Block(
						jen.Id("t").Dot("Errorf").Call(jen.Lit("canonical form %q never produced"), jen.Id("want")),
					),
				),
			)),
		),
	)
	f.Line()

	f.Func().Id("containsString").Params(jen.Id("list").Index().String(), jen.Id("s").String()).Bool().Block(
		jen.For(jen.List(jen.Id("_"), jen.Id("v")).Op(":=").Range().Id("list")).Block(
			jen.If(jen.Id("v").Op("==").Id("s")).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render conformance test: %w", err)
	}
	return buf.Bytes(), nil
}

func caseEntries(cases []Case) ([]jen.Code, error) {
	var entries []jen.Code
	for _, c := range cases {
		d := jen.Dict{
			jen.Id("input"): jen.Lit(c.Input),
		}
		if c.Fails {
			d[jen.Id("fails")] = jen.True()
		}
		if len(c.FailsWhen) > 0 {
			var conds []jen.Code
			for _, cond := range c.FailsWhen {
				// Explicit fields keep a condition on one line; clear
				// leads so the rendered order is stable.
				var kv []jen.Code
				if len(cond.Clear) > 0 {
					kv = append(kv, jen.Id("clear").Op(":").Add(flagExpr(cond.Clear)))
				}
				kv = append(kv, jen.Id("set").Op(":").Add(flagExpr(cond.Set)))
				conds = append(conds, jen.Values(kv...))
			}
			d[jen.Id("failsWhen")] = jen.Index().Id("conformanceCond").Values(conds...)
		}
		if len(c.Prints) > 0 {
			var lits []jen.Code
			for _, s := range c.Prints {
				lits = append(lits, jen.Lit(s))
			}
			d[jen.Id("prints")] = jen.Index().String().Values(lits...)
		}
		entries = append(entries, jen.Values(d))
	}
	return entries, nil
}

// flagExpr renders a '|' join of flag constant names.
func flagExpr(names []string) *jen.Statement {
	expr := jen.Id(names[0])
	for _, name := range names[1:] {
		expr = expr.Op("|").Id(name)
	}
	return expr
}
