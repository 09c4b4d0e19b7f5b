package lexer_test

import (
	"testing"

	"ecmaparse/internal/diag"
	"ecmaparse/internal/lexer"
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

// testReporter collects every diagnostic the lexer emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

type testComments struct {
	comments []token.Trivia
}

func (c *testComments) AddComment(tr token.Trivia) {
	c.comments = append(c.comments, tr)
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ts", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectKinds(lx *lexer.Lexer) []token.Kind {
	var kinds []token.Kind
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return kinds
		}
		kinds = append(kinds, tok.Kind)
	}
}

func TestScanKinds(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{"const x = 1;", []token.Kind{token.KwConst, token.Ident, token.Assign, token.NumberLit, token.Semicolon}},
		{"x: number", []token.Kind{token.Ident, token.Colon, token.Ident}},
		{"a ? b : c", []token.Kind{token.Ident, token.Question, token.Ident, token.Colon, token.Ident}},
		{"{a: 1}", []token.Kind{token.LBrace, token.Ident, token.Colon, token.NumberLit, token.RBrace}},
		{"a ?? b", []token.Kind{token.Ident, token.QuestionQuestion, token.Ident}},
		{"a?.b", []token.Kind{token.Ident, token.QuestionDot, token.Ident}},
		{"a ??= b", []token.Kind{token.Ident, token.QuestionQuestionAssign, token.Ident}},
		{"x ** 2", []token.Kind{token.Ident, token.StarStar, token.NumberLit}},
		{"x >>>= 1", []token.Kind{token.Ident, token.UShrAssign, token.NumberLit}},
		{"a === b !== c", []token.Kind{token.Ident, token.EqEqEq, token.Ident, token.BangEqEq, token.Ident}},
		{"(x) => x", []token.Kind{token.LParen, token.Ident, token.RParen, token.Arrow, token.Ident}},
		{"...rest", []token.Kind{token.DotDotDot, token.Ident}},
		{"#priv", []token.Kind{token.PrivateIdent}},
		{"$dollar _under", []token.Kind{token.Ident, token.Ident}},
		{"10n", []token.Kind{token.BigIntLit}},
		{"0x1f 0b10 0o17 1_000 .5 1e-3", []token.Kind{token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit}},
		{"'a' \"b\"", []token.Kind{token.StringLit, token.StringLit}},
		{"import('./m')", []token.Kind{token.KwImport, token.LParen, token.StringLit, token.RParen}},
	}
	for _, tt := range tests {
		lx, rep := makeTestLexer(tt.input)
		got := collectKinds(lx)
		if len(got) != len(tt.want) {
			t.Errorf("%q: got %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: token %d = %v, want %v", tt.input, i, got[i], tt.want[i])
			}
		}
		if rep.ErrorCount() != 0 {
			t.Errorf("%q: unexpected lex errors: %v", tt.input, rep.diagnostics)
		}
	}
}

func TestKeywordsVsContextual(t *testing.T) {
	lx, _ := makeTestLexer("const let async of await")
	kinds := collectKinds(lx)
	want := []token.Kind{token.KwConst, token.KwLet, token.Ident, token.Ident, token.KwAwait}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestRegexVsDivision(t *testing.T) {
	// expression position: regex
	lx, rep := makeTestLexer("x = /ab[/]c/g")
	kinds := collectKinds(lx)
	want := []token.Kind{token.Ident, token.Assign, token.RegexLit}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v (diags %v)", kinds, want, rep.diagnostics)
	}

	// operator position: division
	lx, _ = makeTestLexer("a / b / c")
	kinds = collectKinds(lx)
	want = []token.Kind{token.Ident, token.Slash, token.Ident, token.Slash, token.Ident}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestTemplateParts(t *testing.T) {
	lx, _ := makeTestLexer("`plain`")
	tok := lx.Next()
	if tok.Kind != token.TemplateNoSub || tok.Text != "`plain`" {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	if lexer.TemplateCooked(tok.Kind, tok.Text) != "plain" {
		t.Errorf("cooked = %q", lexer.TemplateCooked(tok.Kind, tok.Text))
	}

	lx, _ = makeTestLexer("`a${x}b`")
	head := lx.Next()
	if head.Kind != token.TemplateHead || head.Text != "`a${" {
		t.Fatalf("head = %v %q", head.Kind, head.Text)
	}
	x := lx.Next()
	if x.Kind != token.Ident {
		t.Fatalf("substitution = %v", x.Kind)
	}
	rbrace := lx.Next()
	if rbrace.Kind != token.RBrace {
		t.Fatalf("expected '}', got %v", rbrace.Kind)
	}
	tail := lx.ScanTemplateContinuation(rbrace)
	if tail.Kind != token.TemplateTail || tail.Text != "}b`" {
		t.Fatalf("tail = %v %q", tail.Kind, tail.Text)
	}
	if lexer.TemplateCooked(tail.Kind, tail.Text) != "b" {
		t.Errorf("cooked tail = %q", lexer.TemplateCooked(tail.Kind, tail.Text))
	}
}

func TestSplitGt(t *testing.T) {
	lx, _ := makeTestLexer("Map<string, Array<number>> x")
	var tok token.Token
	for tok.Kind != token.Shr {
		tok = lx.Next()
		if tok.Kind == token.EOF {
			t.Fatal("never saw '>>'")
		}
	}
	gt := lx.SplitGt(tok)
	if gt.Kind != token.Gt || gt.Span.Len() != 1 {
		t.Fatalf("split = %v len %d", gt.Kind, gt.Span.Len())
	}
	next := lx.Next()
	if next.Kind != token.Gt {
		t.Fatalf("after split, got %v, want '>'", next.Kind)
	}
	if lx.Next().Kind != token.Ident {
		t.Fatal("expected trailing identifier")
	}
}

func TestCommentsGoToSink(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("c.ts", []byte("// lead\nconst x = 1; /* tail */ let y")))
	sink := &testComments{}
	lx := lexer.New(file, lexer.Options{Comments: sink})
	collectKinds(lx)

	if len(sink.comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(sink.comments))
	}
	if sink.comments[0].Kind != token.TriviaLineComment || sink.comments[0].Text != "// lead" {
		t.Errorf("first comment = %v %q", sink.comments[0].Kind, sink.comments[0].Text)
	}
	if sink.comments[1].Kind != token.TriviaBlockComment {
		t.Errorf("second comment kind = %v", sink.comments[1].Kind)
	}
}

func TestUnterminatedStringReported(t *testing.T) {
	lx, rep := makeTestLexer("const s = 'oops\nconst t = 1")
	collectKinds(lx)
	if rep.ErrorCount() == 0 {
		t.Fatal("expected a diagnostic for the unterminated string")
	}
	if rep.diagnostics[0].Code != diag.LexNewlineInString {
		t.Errorf("code = %v", rep.diagnostics[0].Code)
	}
}

func TestUnknownCharReported(t *testing.T) {
	lx, rep := makeTestLexer("let a = 1 § 2")
	collectKinds(lx)
	if rep.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", rep.ErrorCount())
	}
	if rep.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("code = %v", rep.diagnostics[0].Code)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`'./mod'`, "./mod"},
		{`"a\nb"`, "a\nb"},
		{`'it\'s'`, "it's"},
		{`"A"`, "A"},
		{`"\u{1F600}"`, "\U0001F600"},
		{`"\x41"`, "A"},
		{`"\q"`, "q"},
	}
	for _, tt := range tests {
		if got := lexer.Unquote(tt.raw); got != tt.want {
			t.Errorf("Unquote(%s) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("let x")
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Kind != p2.Kind || p1.Span != p2.Span {
		t.Fatal("Peek must be stable")
	}
	n := lx.Next()
	if n.Span != p1.Span {
		t.Fatal("Next must return the peeked token")
	}
}
