package parser_test

import (
	"testing"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/parser"
)

func TestBinaryPrecedence(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3)
	add, ok := exprJS(t, "1 + 2 * 3").(*ast.BinaryExpr)
	if !ok || add.Op != "+" {
		t.Fatalf("root is not '+': %#v", add)
	}
	mul, ok := add.Right.(*ast.BinaryExpr)
	if !ok || mul.Op != "*" {
		t.Fatalf("right is not '*': %#v", add.Right)
	}

	// a << b < c parses as (a << b) < c
	rel, ok := exprJS(t, "a << b < c").(*ast.BinaryExpr)
	if !ok || rel.Op != "<" {
		t.Fatalf("root is not '<': %#v", rel)
	}
	if sh, ok := rel.Left.(*ast.BinaryExpr); !ok || sh.Op != "<<" {
		t.Fatalf("left is not '<<': %#v", rel.Left)
	}
}

func TestLeftAssociativity(t *testing.T) {
	// a - b - c parses as (a - b) - c
	outer, ok := exprJS(t, "a - b - c").(*ast.BinaryExpr)
	if !ok || outer.Op != "-" {
		t.Fatalf("root: %#v", outer)
	}
	inner, ok := outer.Left.(*ast.BinaryExpr)
	if !ok || inner.Op != "-" {
		t.Fatalf("left: %#v", outer.Left)
	}
	if id, ok := outer.Right.(*ast.Ident); !ok || id.Name != "c" {
		t.Fatalf("right: %#v", outer.Right)
	}
}

func TestExponentRightAssociative(t *testing.T) {
	// 2 ** 3 ** 4 parses as 2 ** (3 ** 4)
	outer, ok := exprJS(t, "2 ** 3 ** 4").(*ast.BinaryExpr)
	if !ok || outer.Op != "**" {
		t.Fatalf("root: %#v", outer)
	}
	if _, ok := outer.Right.(*ast.BinaryExpr); !ok {
		t.Fatalf("right is %T, want nested '**'", outer.Right)
	}
	if lit, ok := outer.Left.(*ast.NumberLit); !ok || lit.Value != 2 {
		t.Fatalf("left: %#v", outer.Left)
	}
}

func TestLogicalOperators(t *testing.T) {
	tests := []struct {
		src string
		op  string
	}{
		{"a && b", "&&"},
		{"a || b", "||"},
		{"a ?? b", "??"},
	}
	for _, tt := range tests {
		log, ok := exprJS(t, tt.src).(*ast.LogicalExpr)
		if !ok {
			t.Errorf("%q: got %T, want *ast.LogicalExpr", tt.src, exprJS(t, tt.src))
			continue
		}
		if log.Op != tt.op {
			t.Errorf("%q: op = %q", tt.src, log.Op)
		}
	}
}

func TestConditional(t *testing.T) {
	cond, ok := exprJS(t, "a ? b : c ? d : e").(*ast.CondExpr)
	if !ok {
		t.Fatal("root is not a conditional")
	}
	// right-nested: alternate is another conditional
	if _, ok := cond.Alt.(*ast.CondExpr); !ok {
		t.Fatalf("alternate is %T", cond.Alt)
	}
}

func TestAssignmentForms(t *testing.T) {
	tests := []struct {
		src string
		op  string
	}{
		{"a = b", "="},
		{"a += b", "+="},
		{"a ??= b", "??="},
		{"a ||= b", "||="},
		{"a **= b", "**="},
	}
	for _, tt := range tests {
		as, ok := exprJS(t, tt.src).(*ast.AssignExpr)
		if !ok {
			t.Errorf("%q: not an assignment", tt.src)
			continue
		}
		if as.Op != tt.op {
			t.Errorf("%q: op = %q", tt.src, as.Op)
		}
	}

	// right-associative: a = b = c is a = (b = c)
	as := exprJS(t, "a = b = c").(*ast.AssignExpr)
	if _, ok := as.Value.(*ast.AssignExpr); !ok {
		t.Fatalf("value is %T", as.Value)
	}
}

func TestDestructuringAssignment(t *testing.T) {
	as, ok := exprJS(t, "[a, , ...rest] = xs").(*ast.AssignExpr)
	if !ok {
		t.Fatal("not an assignment")
	}
	arr, ok := as.Target.(*ast.ArrayPat)
	if !ok {
		t.Fatalf("target is %T, want *ast.ArrayPat", as.Target)
	}
	if len(arr.Elements) != 3 || arr.Elements[1] != nil {
		t.Fatalf("elements: %#v", arr.Elements)
	}
	if _, ok := arr.Elements[2].(*ast.RestElement); !ok {
		t.Fatalf("element 2 is %T", arr.Elements[2])
	}

	as = exprJS(t, "({ a, b: c = 1 } = o)").(*ast.AssignExpr)
	if _, ok := as.Target.(*ast.ObjectPat); !ok {
		t.Fatalf("target is %T, want *ast.ObjectPat", as.Target)
	}
}

func TestUnaryAndUpdate(t *testing.T) {
	tests := []struct {
		src string
		op  string
	}{
		{"typeof x", "typeof"},
		{"void 0", "void"},
		{"delete a.b", "delete"},
		{"!x", "!"},
		{"-x", "-"},
		{"~x", "~"},
	}
	for _, tt := range tests {
		un, ok := exprJS(t, tt.src).(*ast.UnaryExpr)
		if !ok || un.Op != tt.op {
			t.Errorf("%q: got %#v", tt.src, exprJS(t, tt.src))
		}
	}

	pre := exprJS(t, "++x").(*ast.UpdateExpr)
	if !pre.Prefix || pre.Op != "++" {
		t.Fatalf("prefix: %#v", pre)
	}
	post := exprJS(t, "x--").(*ast.UpdateExpr)
	if post.Prefix || post.Op != "--" {
		t.Fatalf("postfix: %#v", post)
	}
}

func TestMemberChains(t *testing.T) {
	// a.b.c
	outer := exprJS(t, "a.b.c").(*ast.MemberExpr)
	if id, ok := outer.Prop.(*ast.Ident); !ok || id.Name != "c" {
		t.Fatalf("prop: %#v", outer.Prop)
	}
	inner := outer.Obj.(*ast.MemberExpr)
	if id, ok := inner.Prop.(*ast.Ident); !ok || id.Name != "b" {
		t.Fatalf("inner prop: %#v", inner.Prop)
	}

	// computed
	comp := exprJS(t, "a[b]").(*ast.MemberExpr)
	if !comp.Computed {
		t.Fatal("a[b] not computed")
	}

	// reserved words as property names
	exprJS(t, "a.default")
	exprJS(t, "a.new")
	exprJS(t, "a.class")
}

func TestOptionalChaining(t *testing.T) {
	m := exprJS(t, "a?.b").(*ast.MemberExpr)
	if !m.Optional {
		t.Fatal("a?.b not optional")
	}
	c := exprJS(t, "a?.(x)").(*ast.CallExpr)
	if !c.Optional {
		t.Fatal("a?.(x) not optional")
	}
	idx := exprJS(t, "a?.[0]").(*ast.MemberExpr)
	if !idx.Optional || !idx.Computed {
		t.Fatalf("a?.[0]: %#v", idx)
	}
}

func TestCallsAndSpread(t *testing.T) {
	call := exprJS(t, "f(a, ...bs, 1)").(*ast.CallExpr)
	if len(call.Args) != 3 {
		t.Fatalf("%d args", len(call.Args))
	}
	if _, ok := call.Args[1].(*ast.SpreadElement); !ok {
		t.Fatalf("arg 1 is %T", call.Args[1])
	}

	// trailing comma
	call = exprJS(t, "f(a,)").(*ast.CallExpr)
	if len(call.Args) != 1 {
		t.Fatalf("trailing comma: %d args", len(call.Args))
	}
}

func TestNewExpressions(t *testing.T) {
	n := exprJS(t, "new Foo(1)").(*ast.NewExpr)
	if len(n.Args) != 1 {
		t.Fatalf("args: %#v", n.Args)
	}

	// no argument list
	n = exprJS(t, "new Foo").(*ast.NewExpr)
	if len(n.Args) != 0 {
		t.Fatalf("bare new has %d args", len(n.Args))
	}

	// member callee binds before the call: new a.b.C()
	n = exprJS(t, "new a.b.C()").(*ast.NewExpr)
	if _, ok := n.Callee.(*ast.MemberExpr); !ok {
		t.Fatalf("callee is %T", n.Callee)
	}

	// new.target
	meta := exprJS(t, "new.target").(*ast.MetaProp)
	if meta.Meta != "new" || meta.Prop != "target" {
		t.Fatalf("meta: %#v", meta)
	}
}

func TestArrowFunctions(t *testing.T) {
	// single parameter without parens
	arrow, ok := exprJS(t, "x => x + 1").(*ast.ArrowFunc)
	if !ok {
		t.Fatal("not an arrow")
	}
	if len(arrow.Params) != 1 {
		t.Fatalf("%d params", len(arrow.Params))
	}
	if _, ok := arrow.Body.(*ast.BinaryExpr); !ok {
		t.Fatalf("body is %T", arrow.Body)
	}

	// parenthesized list with defaults and rest
	arrow = exprJS(t, "(a, b = 1, ...cs) => { return a }").(*ast.ArrowFunc)
	if len(arrow.Params) != 3 {
		t.Fatalf("%d params", len(arrow.Params))
	}
	if _, ok := arrow.Body.(*ast.BlockStmt); !ok {
		t.Fatalf("body is %T", arrow.Body)
	}

	// async arrow
	arrow = exprJS(t, "async x => await x").(*ast.ArrowFunc)
	if !arrow.Async {
		t.Fatal("async flag not set")
	}

	// empty parameter list
	arrow = exprJS(t, "() => 0").(*ast.ArrowFunc)
	if len(arrow.Params) != 0 {
		t.Fatalf("%d params", len(arrow.Params))
	}
}

func TestParenIsNotArrow(t *testing.T) {
	// a parenthesized expression must stay an expression
	if _, ok := exprJS(t, "(a + b)").(*ast.BinaryExpr); !ok {
		t.Fatal("(a + b) did not stay a binary expression")
	}
	// calling the result of a paren
	if _, ok := exprJS(t, "(f)(x)").(*ast.CallExpr); !ok {
		t.Fatal("(f)(x) is not a call")
	}
}

func TestSequenceExpression(t *testing.T) {
	seq, ok := exprJS(t, "a, b, c").(*ast.SeqExpr)
	if !ok {
		t.Fatal("not a sequence")
	}
	if len(seq.Exprs) != 3 {
		t.Fatalf("%d exprs", len(seq.Exprs))
	}
}

func TestTemplateLiterals(t *testing.T) {
	tpl, ok := exprJS(t, "`a${x}b${y}c`").(*ast.TemplateLiteral)
	if !ok {
		t.Fatal("not a template")
	}
	if len(tpl.Quasis) != 3 || len(tpl.Exprs) != 2 {
		t.Fatalf("quasis %d exprs %d", len(tpl.Quasis), len(tpl.Exprs))
	}
	if tpl.Quasis[0].Cooked != "a" || tpl.Quasis[1].Cooked != "b" || tpl.Quasis[2].Cooked != "c" {
		t.Fatalf("cooked: %q %q %q", tpl.Quasis[0].Cooked, tpl.Quasis[1].Cooked, tpl.Quasis[2].Cooked)
	}
	if !tpl.Quasis[2].Tail {
		t.Fatal("last quasi not marked tail")
	}

	// no substitutions
	tpl = exprJS(t, "`plain`").(*ast.TemplateLiteral)
	if len(tpl.Quasis) != 1 || len(tpl.Exprs) != 0 {
		t.Fatalf("plain template: quasis %d exprs %d", len(tpl.Quasis), len(tpl.Exprs))
	}

	// tagged
	tagged, ok := exprJS(t, "tag`x${1}y`").(*ast.TaggedTemplate)
	if !ok {
		t.Fatalf("tagged template is %T", exprJS(t, "tag`x${1}y`"))
	}
	if id, ok := tagged.Tag.(*ast.Ident); !ok || id.Name != "tag" {
		t.Fatalf("tag: %#v", tagged.Tag)
	}
}

func TestNestedTemplates(t *testing.T) {
	tpl := exprJS(t, "`a${`b${x}`}c`").(*ast.TemplateLiteral)
	if len(tpl.Exprs) != 1 {
		t.Fatalf("%d exprs", len(tpl.Exprs))
	}
	if _, ok := tpl.Exprs[0].(*ast.TemplateLiteral); !ok {
		t.Fatalf("inner is %T", tpl.Exprs[0])
	}
}

func TestObjectLiterals(t *testing.T) {
	obj := exprJS(t, "({ a: 1, b, [k]: 2, ...rest, 'str': 3, 42: 4 })").(*ast.ObjectLit)
	if len(obj.Props) != 6 {
		t.Fatalf("%d props", len(obj.Props))
	}
	if p := obj.Props[1].(*ast.Property); !p.Shorthand {
		t.Fatal("b not shorthand")
	}
	if p := obj.Props[2].(*ast.Property); !p.Computed {
		t.Fatal("[k] not computed")
	}
	if _, ok := obj.Props[3].(*ast.SpreadElement); !ok {
		t.Fatalf("prop 3 is %T", obj.Props[3])
	}
}

func TestObjectMethodsAndAccessors(t *testing.T) {
	obj := exprJS(t, "({ m() {}, get x() {}, set x(v) {}, async a() {}, *g() {} })").(*ast.ObjectLit)
	if len(obj.Props) != 5 {
		t.Fatalf("%d props", len(obj.Props))
	}
	m := obj.Props[0].(*ast.Property)
	if !m.Method {
		t.Fatal("m not a method")
	}
	g := obj.Props[1].(*ast.Property)
	if g.Kind != "get" {
		t.Fatalf("kind = %q", g.Kind)
	}
	s := obj.Props[2].(*ast.Property)
	if s.Kind != "set" {
		t.Fatalf("kind = %q", s.Kind)
	}
}

func TestGetSetAsPlainNames(t *testing.T) {
	// get/set are only accessor prefixes when a key follows
	obj := exprJS(t, "({ get: 1, set: 2, async: 3 })").(*ast.ObjectLit)
	if len(obj.Props) != 3 {
		t.Fatalf("%d props", len(obj.Props))
	}
	for _, p := range obj.Props {
		if prop := p.(*ast.Property); prop.Kind != "" || prop.Method {
			t.Fatalf("prop misparsed: %#v", prop)
		}
	}
}

func TestArrayLiterals(t *testing.T) {
	arr := exprJS(t, "[1, , 2, ...xs]").(*ast.ArrayLit)
	if len(arr.Elements) != 4 {
		t.Fatalf("%d elements", len(arr.Elements))
	}
	if arr.Elements[1] != nil {
		t.Fatal("hole is not nil")
	}
	if _, ok := arr.Elements[3].(*ast.SpreadElement); !ok {
		t.Fatalf("element 3 is %T", arr.Elements[3])
	}
}

func TestLiteralValues(t *testing.T) {
	if lit := exprJS(t, "0x10").(*ast.NumberLit); lit.Value != 16 {
		t.Errorf("0x10 = %v", lit.Value)
	}
	if lit := exprJS(t, "1_000").(*ast.NumberLit); lit.Value != 1000 {
		t.Errorf("1_000 = %v", lit.Value)
	}
	if lit := exprJS(t, "1e3").(*ast.NumberLit); lit.Value != 1000 {
		t.Errorf("1e3 = %v", lit.Value)
	}
	if lit := exprJS(t, "'hi'").(*ast.StringLit); lit.Value != "hi" || lit.Raw != "'hi'" {
		t.Errorf("string: %#v", lit)
	}
	if _, ok := exprJS(t, "10n").(*ast.BigIntLit); !ok {
		t.Error("10n is not a bigint literal")
	}
	if _, ok := exprJS(t, "true").(*ast.BoolLit); !ok {
		t.Error("true is not a bool literal")
	}
	if _, ok := exprJS(t, "null").(*ast.NullLit); !ok {
		t.Error("null is not a null literal")
	}
}

func TestRegexLiteral(t *testing.T) {
	re, ok := exprJS(t, "/ab+c/gi").(*ast.RegexLit)
	if !ok {
		t.Fatal("not a regex")
	}
	if re.Pattern != "ab+c" || re.Flags != "gi" {
		t.Fatalf("pattern %q flags %q", re.Pattern, re.Flags)
	}
}

func TestFunctionExpressions(t *testing.T) {
	fe := exprJS(t, "(function named(a) { return a })").(*ast.FuncExpr)
	if fe.ID == nil || fe.ID.Name != "named" {
		t.Fatalf("id: %#v", fe.ID)
	}

	anon := exprJS(t, "(function () {})").(*ast.FuncExpr)
	if anon.ID != nil {
		t.Fatal("anonymous function has a name")
	}

	gen := exprJS(t, "(function* g() { yield 1 })").(*ast.FuncExpr)
	if !gen.Fn.Generator {
		t.Fatal("generator flag not set")
	}

	async := exprJS(t, "(async function () { await p })").(*ast.FuncExpr)
	if !async.Fn.Async {
		t.Fatal("async flag not set")
	}
}

func TestDynamicImportExpr(t *testing.T) {
	call, ok := exprJS(t, "import('./mod')").(*ast.ImportExpr)
	if !ok {
		t.Fatal("not an import expression")
	}
	src, ok := call.Source()
	if !ok || src.Value != "./mod" {
		t.Fatalf("source: %#v", src)
	}

	meta := exprJS(t, "import.meta").(*ast.MetaProp)
	if meta.Meta != "import" || meta.Prop != "meta" {
		t.Fatalf("meta: %#v", meta)
	}
}

func TestDynamicImportDisabled(t *testing.T) {
	mod, rep := parseSource("import('./mod')", parser.Options{})
	errs := rep.errors()
	if len(errs) == 0 {
		t.Fatal("expected a diagnostic for import() with dynamic import off")
	}
	if errs[0].Code != diag.SynDynamicImportDisabled {
		t.Errorf("code = %v", errs[0].Code)
	}
	// the expression still parses
	if _, ok := exprOf(t, mod, 0).(*ast.ImportExpr); !ok {
		t.Fatal("import() did not produce an ImportExpr")
	}
}
