package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// PrivateIdent represents a '#name' class-private identifier.
	PrivateIdent

	// NumberLit represents a numeric literal.
	NumberLit
	// BigIntLit represents a bigint literal (digits followed by 'n').
	BigIntLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// RegexLit represents a regular expression literal.
	RegexLit
	// TemplateNoSub represents a template literal without substitutions.
	TemplateNoSub
	// TemplateHead represents the `...${ opening part of a template.
	TemplateHead
	// TemplateMiddle represents a }...${ middle part of a template.
	TemplateMiddle
	// TemplateTail represents the closing }...` part of a template.
	TemplateTail

	// Reserved words.
	KwBreak      // break
	KwCase       // case
	KwCatch      // catch
	KwClass      // class
	KwConst      // const
	KwContinue   // continue
	KwDebugger   // debugger
	KwDefault    // default
	KwDelete     // delete
	KwDo         // do
	KwElse       // else
	KwExport     // export
	KwExtends    // extends
	KwFalse      // false
	KwFinally    // finally
	KwFor        // for
	KwFunction   // function
	KwIf         // if
	KwImport     // import
	KwIn         // in
	KwInstanceof // instanceof
	KwLet        // let (reserved in module code)
	KwNew        // new
	KwNull       // null
	KwReturn     // return
	KwSuper      // super
	KwSwitch     // switch
	KwThis       // this
	KwThrow      // throw
	KwTrue       // true
	KwTry        // try
	KwTypeof     // typeof
	KwVar        // var
	KwVoid       // void
	KwWhile      // while
	KwWith       // with
	KwAwait      // await (reserved in module code)
	KwYield      // yield

	// Punctuation.
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Semicolon // ;
	Comma     // ,
	Dot       // .
	DotDotDot // ...
	Colon     // :
	Question  // ?
	// QuestionDot represents the optional chaining operator '?.'.
	QuestionDot
	// QuestionQuestion represents the nullish coalescing operator '??'.
	QuestionQuestion
	// Arrow represents the fat arrow '=>'.
	Arrow
	// At represents '@' (decorators).
	At

	// Operators.
	Assign                 // =
	PlusAssign             // +=
	MinusAssign            // -=
	StarAssign             // *=
	SlashAssign            // /=
	PercentAssign          // %=
	StarStarAssign         // **=
	ShlAssign              // <<=
	ShrAssign              // >>=
	UShrAssign             // >>>=
	AmpAssign              // &=
	PipeAssign             // |=
	CaretAssign            // ^=
	AndAndAssign           // &&=
	OrOrAssign             // ||=
	QuestionQuestionAssign // ??=

	EqEq     // ==
	EqEqEq   // ===
	BangEq   // !=
	BangEqEq // !==
	Lt       // <
	LtEq     // <=
	Gt       // >
	GtEq     // >=
	Shl      // <<
	Shr      // >>
	UShr     // >>>

	Plus       // +
	Minus      // -
	Star       // *
	StarStar   // **
	Slash      // /
	Percent    // %
	PlusPlus   // ++
	MinusMinus // --

	Amp    // &
	Pipe   // |
	Caret  // ^
	Tilde  // ~
	Bang   // !
	AndAnd // &&
	OrOr   // ||
)

var kindNames = map[Kind]string{
	Invalid: "invalid", EOF: "eof",
	Ident: "identifier", PrivateIdent: "private identifier",
	NumberLit: "number", BigIntLit: "bigint", StringLit: "string", RegexLit: "regexp",
	TemplateNoSub: "template", TemplateHead: "template head",
	TemplateMiddle: "template middle", TemplateTail: "template tail",
	KwBreak: "break", KwCase: "case", KwCatch: "catch", KwClass: "class",
	KwConst: "const", KwContinue: "continue", KwDebugger: "debugger",
	KwDefault: "default", KwDelete: "delete", KwDo: "do", KwElse: "else",
	KwExport: "export", KwExtends: "extends", KwFalse: "false",
	KwFinally: "finally", KwFor: "for", KwFunction: "function", KwIf: "if",
	KwImport: "import", KwIn: "in", KwInstanceof: "instanceof", KwLet: "let",
	KwNew: "new", KwNull: "null", KwReturn: "return", KwSuper: "super",
	KwSwitch: "switch", KwThis: "this", KwThrow: "throw", KwTrue: "true",
	KwTry: "try", KwTypeof: "typeof", KwVar: "var", KwVoid: "void",
	KwWhile: "while", KwWith: "with", KwAwait: "await", KwYield: "yield",
	LParen: "'('", RParen: "')'", LBrace: "'{'", RBrace: "'}'",
	LBracket: "'['", RBracket: "']'", Semicolon: "';'", Comma: "','",
	Dot: "'.'", DotDotDot: "'...'", Colon: "':'", Question: "'?'",
	QuestionDot: "'?.'", QuestionQuestion: "'??'", Arrow: "'=>'", At: "'@'",
	Assign: "'='", PlusAssign: "'+='", MinusAssign: "'-='", StarAssign: "'*='",
	SlashAssign: "'/='", PercentAssign: "'%='", StarStarAssign: "'**='",
	ShlAssign: "'<<='", ShrAssign: "'>>='", UShrAssign: "'>>>='",
	AmpAssign: "'&='", PipeAssign: "'|='", CaretAssign: "'^='",
	AndAndAssign: "'&&='", OrOrAssign: "'||='", QuestionQuestionAssign: "'??='",
	EqEq: "'=='", EqEqEq: "'==='", BangEq: "'!='", BangEqEq: "'!=='",
	Lt: "'<'", LtEq: "'<='", Gt: "'>'", GtEq: "'>='",
	Shl: "'<<'", Shr: "'>>'", UShr: "'>>>'",
	Plus: "'+'", Minus: "'-'", Star: "'*'", StarStar: "'**'",
	Slash: "'/'", Percent: "'%'", PlusPlus: "'++'", MinusMinus: "'--'",
	Amp: "'&'", Pipe: "'|'", Caret: "'^'", Tilde: "'~'", Bang: "'!'",
	AndAnd: "'&&'", OrOr: "'||'",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
