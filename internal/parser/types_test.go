package parser_test

import (
	"testing"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/parser"
)

func TestTypeAnnotations(t *testing.T) {
	mod := parseTS(t, "let x: number = 1")
	vd := mod.Body[0].(*ast.VarDecl)
	id := vd.Decls[0].ID.(*ast.Ident)
	ref, ok := id.TypeAnn.(*ast.TSTypeRef)
	if !ok || ref.Name != "number" {
		t.Fatalf("annotation: %#v", id.TypeAnn)
	}

	// definite assignment
	mod = parseTS(t, "let y!: string")
	if !mod.Body[0].(*ast.VarDecl).Decls[0].Definite {
		t.Fatal("definite marker lost")
	}
}

func TestFunctionTypes(t *testing.T) {
	mod := parseTS(t, "function f(a: string, b?: number): boolean { return true }")
	fd := mod.Body[0].(*ast.FuncDecl)
	if fd.Fn.ReturnType == nil {
		t.Fatal("return type lost")
	}
	if !fd.Fn.Params[1].Optional {
		t.Fatal("optional parameter lost")
	}

	// generics
	mod = parseTS(t, "function id<T extends object = {}>(v: T): T { return v }")
	fd = mod.Body[0].(*ast.FuncDecl)
	if len(fd.Fn.TypeParams) != 1 {
		t.Fatalf("%d type params", len(fd.Fn.TypeParams))
	}
	tp := fd.Fn.TypeParams[0]
	if tp.Name != "T" || tp.Constraint == nil || tp.Default == nil {
		t.Fatalf("type param: %#v", tp)
	}
}

func TestAsExpressions(t *testing.T) {
	as, ok := exprTS(t, "v as string").(*ast.TSAsExpr)
	if !ok {
		t.Fatal("not an as-expression")
	}
	if ref, ok := as.TypeAnn.(*ast.TSTypeRef); !ok || ref.Name != "string" {
		t.Fatalf("type: %#v", as.TypeAnn)
	}

	// as const
	as = exprTS(t, "v as const").(*ast.TSAsExpr)
	if ref, ok := as.TypeAnn.(*ast.TSTypeRef); !ok || ref.Name != "const" {
		t.Fatalf("as const: %#v", as.TypeAnn)
	}

	// binds at relational precedence: a as T === b compares the cast
	eq := exprTS(t, "a as any === b").(*ast.BinaryExpr)
	if _, ok := eq.Left.(*ast.TSAsExpr); !ok {
		t.Fatalf("left is %T", eq.Left)
	}
}

func TestNonNullAssertion(t *testing.T) {
	nn, ok := exprTS(t, "a!.b").(*ast.MemberExpr)
	if !ok {
		t.Fatal("not a member expression")
	}
	if _, ok := nn.Obj.(*ast.TSNonNull); !ok {
		t.Fatalf("object is %T", nn.Obj)
	}
}

func TestInterfaceDecl(t *testing.T) {
	mod := parseTS(t, `
interface Shape<T> extends Base, Tagged {
  name: string
  area(): number
  readonly id: number
  [key: string]: unknown
  draw?(ctx: T): void
}`)
	id := mod.Body[0].(*ast.TSInterfaceDecl)
	if id.ID.Name != "Shape" || len(id.TypeParams) != 1 || len(id.Extends) != 2 {
		t.Fatalf("interface: %#v", id)
	}
	if len(id.Body) != 5 {
		t.Fatalf("%d members", len(id.Body))
	}
	if id.Body[0].Kind != "property" {
		t.Errorf("member 0 kind = %q", id.Body[0].Kind)
	}
	if id.Body[1].Kind != "method" {
		t.Errorf("member 1 kind = %q", id.Body[1].Kind)
	}
	if !id.Body[2].Readonly {
		t.Error("readonly lost")
	}
	if id.Body[3].Kind != "index" {
		t.Errorf("member 3 kind = %q", id.Body[3].Kind)
	}
	if !id.Body[4].Optional {
		t.Error("optional method lost")
	}
}

func TestTypeAlias(t *testing.T) {
	mod := parseTS(t, "type Pair<A, B> = [A, B]")
	ta := mod.Body[0].(*ast.TSTypeAliasDecl)
	if ta.ID.Name != "Pair" || len(ta.TypeParams) != 2 {
		t.Fatalf("alias: %#v", ta)
	}
	if _, ok := ta.TypeAnn.(*ast.TSTupleType); !ok {
		t.Fatalf("aliased type is %T", ta.TypeAnn)
	}

	// union with literal members
	mod = parseTS(t, `type Dir = 'up' | 'down' | 1`)
	ta = mod.Body[0].(*ast.TSTypeAliasDecl)
	u, ok := ta.TypeAnn.(*ast.TSUnion)
	if !ok || len(u.Types) != 3 {
		t.Fatalf("union: %#v", ta.TypeAnn)
	}

	// conditional type
	mod = parseTS(t, "type NonNull<T> = T extends null ? never : T")
	ta = mod.Body[0].(*ast.TSTypeAliasDecl)
	if _, ok := ta.TypeAnn.(*ast.TSConditionalType); !ok {
		t.Fatalf("aliased type is %T", ta.TypeAnn)
	}

	// function type
	mod = parseTS(t, "type Fn = (a: number) => void")
	ta = mod.Body[0].(*ast.TSTypeAliasDecl)
	if _, ok := ta.TypeAnn.(*ast.TSFuncType); !ok {
		t.Fatalf("aliased type is %T", ta.TypeAnn)
	}
}

func TestTypeAsIdentifier(t *testing.T) {
	// 'type' without a following alias shape is a plain identifier
	mod := parseTS(t, "type = 1")
	if _, ok := mod.Body[0].(*ast.ExprStmt); !ok {
		t.Fatalf("got %T", mod.Body[0])
	}
	mod = parseTS(t, "type(x)")
	if _, ok := exprOf(t, mod, 0).(*ast.CallExpr); !ok {
		t.Fatal("type(x) is not a call")
	}
}

func TestEnumDecl(t *testing.T) {
	mod := parseTS(t, "enum Color { Red, Green = 2, 'light blue' = 3 }")
	ed := mod.Body[0].(*ast.TSEnumDecl)
	if ed.ID.Name != "Color" || ed.Const {
		t.Fatalf("enum: %#v", ed)
	}
	if len(ed.Members) != 3 {
		t.Fatalf("%d members", len(ed.Members))
	}
	if ed.Members[0].Init != nil {
		t.Fatal("auto member has an initializer")
	}
	if ed.Members[1].Init == nil {
		t.Fatal("explicit member lost its initializer")
	}
	if _, ok := ed.Members[2].ID.(*ast.StringLit); !ok {
		t.Fatalf("string member key is %T", ed.Members[2].ID)
	}

	mod = parseTS(t, "const enum Flags { A = 1 }")
	ed = mod.Body[0].(*ast.TSEnumDecl)
	if !ed.Const {
		t.Fatal("const enum flag lost")
	}
}

func TestNamespaceDecl(t *testing.T) {
	mod := parseTS(t, "namespace A.B { export const x = 1 }")
	nd := mod.Body[0].(*ast.TSModuleDecl)
	if id, ok := nd.ID.(*ast.Ident); !ok || id.Name != "A.B" {
		t.Fatalf("name: %#v", nd.ID)
	}
	if len(nd.Body) != 1 {
		t.Fatalf("%d body statements", len(nd.Body))
	}

	mod = parseTS(t, "declare module 'ext' { const v: number }")
	nd = mod.Body[0].(*ast.TSModuleDecl)
	if !nd.Declare {
		t.Fatal("declare flag lost")
	}
	if lit, ok := nd.ID.(*ast.StringLit); !ok || lit.Value != "ext" {
		t.Fatalf("name: %#v", nd.ID)
	}
}

func TestDeclareForms(t *testing.T) {
	tests := []string{
		"declare const version: string",
		"declare function greet(name: string): void",
		"declare class External { m(): void }",
		"declare interface Ext { x: number }",
		"declare type Alias = number",
		"declare enum E { A }",
		"declare namespace NS { const x: number }",
		"declare module 'm';",
		"declare global { interface Window { custom: boolean } }",
		"declare abstract class Abs {}",
		"declare async function later(): Promise<void>",
	}
	for _, src := range tests {
		mod := parseTS(t, src)
		if len(mod.Body) != 1 {
			t.Errorf("%q: %d statements", src, len(mod.Body))
		}
	}
}

func TestDeclareAsIdentifier(t *testing.T) {
	// 'declare' alone is an identifier
	if id, ok := exprTS(t, "declare").(*ast.Ident); !ok || id.Name != "declare" {
		t.Fatal("bare declare misparsed")
	}
	if _, ok := exprTS(t, "declare + 1").(*ast.BinaryExpr); !ok {
		t.Fatal("declare + 1 misparsed")
	}
}

func TestNestedGenericClose(t *testing.T) {
	// '>>' and '>>>' close one type argument list at a time
	mod := parseTS(t, "let m: Map<string, Array<number>> = new Map()")
	vd := mod.Body[0].(*ast.VarDecl)
	id := vd.Decls[0].ID.(*ast.Ident)
	outer, ok := id.TypeAnn.(*ast.TSTypeRef)
	if !ok || outer.Name != "Map" || len(outer.TypeArgs) != 2 {
		t.Fatalf("outer: %#v", id.TypeAnn)
	}
	inner, ok := outer.TypeArgs[1].(*ast.TSTypeRef)
	if !ok || inner.Name != "Array" || len(inner.TypeArgs) != 1 {
		t.Fatalf("inner: %#v", outer.TypeArgs[1])
	}

	parseTS(t, "type Deep = A<B<C<D>>>")
}

func TestGenericCallVsComparison(t *testing.T) {
	// a typed call
	call, ok := exprTS(t, "f<number>(1)").(*ast.CallExpr)
	if !ok {
		t.Fatal("typed call misparsed")
	}
	if len(call.TypeArgs) != 1 {
		t.Fatalf("%d type args", len(call.TypeArgs))
	}

	// a pair of comparisons stays comparisons
	if _, ok := exprTS(t, "a < b").(*ast.BinaryExpr); !ok {
		t.Fatal("a < b misparsed")
	}
	seq, ok := exprTS(t, "(a < b, c > d)").(*ast.SeqExpr)
	if !ok {
		t.Fatalf("(a < b, c > d) is %T", exprTS(t, "(a < b, c > d)"))
	}
	if len(seq.Exprs) != 2 {
		t.Fatalf("%d exprs", len(seq.Exprs))
	}
}

func TestTypeOperators(t *testing.T) {
	mod := parseTS(t, "type K = keyof typeof obj")
	ta := mod.Body[0].(*ast.TSTypeAliasDecl)
	op, ok := ta.TypeAnn.(*ast.TSTypeOperator)
	if !ok || op.Op != "keyof" {
		t.Fatalf("operator: %#v", ta.TypeAnn)
	}

	mod = parseTS(t, "type A = readonly string[]")
	ta = mod.Body[0].(*ast.TSTypeAliasDecl)
	if op, ok := ta.TypeAnn.(*ast.TSTypeOperator); !ok || op.Op != "readonly" {
		t.Fatalf("readonly: %#v", ta.TypeAnn)
	}
}

func TestArrayAndIndexedTypes(t *testing.T) {
	mod := parseTS(t, "type A = string[][]")
	ta := mod.Body[0].(*ast.TSTypeAliasDecl)
	outer, ok := ta.TypeAnn.(*ast.TSArrayType)
	if !ok {
		t.Fatalf("type is %T", ta.TypeAnn)
	}
	if _, ok := outer.Elem.(*ast.TSArrayType); !ok {
		t.Fatalf("element is %T", outer.Elem)
	}

	mod = parseTS(t, `type V = Rec['key']`)
	ta = mod.Body[0].(*ast.TSTypeAliasDecl)
	if _, ok := ta.TypeAnn.(*ast.TSIndexedAccess); !ok {
		t.Fatalf("type is %T", ta.TypeAnn)
	}
}

func TestTypePredicates(t *testing.T) {
	mod := parseTS(t, "function isStr(v: unknown): v is string { return typeof v === 'string' }")
	fd := mod.Body[0].(*ast.FuncDecl)
	pred, ok := fd.Fn.ReturnType.(*ast.TSTypePredicate)
	if !ok || pred.Param != "v" || pred.Asserts {
		t.Fatalf("predicate: %#v", fd.Fn.ReturnType)
	}

	mod = parseTS(t, "function check(v: unknown): asserts v is number {}")
	fd = mod.Body[0].(*ast.FuncDecl)
	pred = fd.Fn.ReturnType.(*ast.TSTypePredicate)
	if !pred.Asserts {
		t.Fatal("asserts flag lost")
	}
}

func TestClassTSFeatures(t *testing.T) {
	mod := parseTS(t, `
abstract class Repo<T> implements Store<T>, Closeable {
  private readonly items: T[] = []
  protected abstract load(): Promise<T[]>
  constructor(private db: Conn) { super() }
  declare config: Config
}`)
	cd := mod.Body[0].(*ast.ClassDecl)
	cls := cd.Class
	if !cls.Abstract || len(cls.Implements) != 2 || len(cls.TypeParams) != 1 {
		t.Fatalf("class: abstract=%v implements=%d", cls.Abstract, len(cls.Implements))
	}

	field := cls.Body[0].(*ast.PropDef)
	if field.Accessibility != "private" || !field.Readonly {
		t.Fatalf("field: %#v", field)
	}
	meth := cls.Body[1].(*ast.MethodDef)
	if !meth.Abstract || meth.Fn.Body != nil {
		t.Fatalf("abstract method: %#v", meth)
	}
	ctor := cls.Body[2].(*ast.MethodDef)
	if ctor.Kind != "constructor" || ctor.Fn.Params[0].Accessibility != "private" {
		t.Fatalf("constructor: %#v", ctor)
	}
	decl := cls.Body[3].(*ast.PropDef)
	if !decl.Declare {
		t.Fatal("declare field lost")
	}
}

func TestMethodOverloadSignatures(t *testing.T) {
	mod := parseTS(t, `
class Conv {
  from(v: string): Conv
  from(v: number): Conv
  from(v: unknown): Conv { return this }
}`)
	cls := mod.Body[0].(*ast.ClassDecl).Class
	if len(cls.Body) != 3 {
		t.Fatalf("%d members", len(cls.Body))
	}
	if cls.Body[0].(*ast.MethodDef).Fn.Body != nil {
		t.Fatal("overload signature has a body")
	}
	if cls.Body[2].(*ast.MethodDef).Fn.Body == nil {
		t.Fatal("implementation lost its body")
	}
}

func TestTypeSyntaxDisabledInJS(t *testing.T) {
	sources := []string{
		"let x: number = 1",
		"function f(a?: string) {}",
	}
	for _, src := range sources {
		_, rep := parseSource(src, parser.Options{})
		errs := rep.errors()
		if len(errs) == 0 {
			t.Errorf("%q: no diagnostic in JS mode", src)
			continue
		}
		if errs[0].Code != diag.SynTypeSyntaxDisabled {
			t.Errorf("%q: code = %v", src, errs[0].Code)
		}
	}

	// interface/enum text stays valid JS identifiers
	_, rep := parseSource("interface + 1", parser.Options{})
	if len(rep.errors()) != 0 {
		t.Errorf("interface as identifier: %s", rep.messages())
	}
}

func TestGenericArrow(t *testing.T) {
	arrow, ok := exprTS(t, "<T,>(v: T): T => v").(*ast.ArrowFunc)
	if !ok {
		t.Fatal("generic arrow misparsed")
	}
	if len(arrow.TypeParams) != 1 || arrow.ReturnType == nil {
		t.Fatalf("arrow: %#v", arrow)
	}
}

func TestSatisfiesIsNotSpecial(t *testing.T) {
	// 'satisfies' is not in the grammar; it parses as an identifier and
	// the statement after it recovers
	mod, _ := parseSource("const c = {} satisfies Config", parser.Options{TypeScript: true})
	if len(mod.Body) == 0 {
		t.Fatal("module lost every statement")
	}
}
