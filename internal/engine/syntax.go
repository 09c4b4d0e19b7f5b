package engine

// Language selects the grammar variant.
type Language uint8

const (
	LangJavaScript Language = iota
	LangTypeScript
)

func (l Language) String() string {
	if l == LangTypeScript {
		return "typescript"
	}
	return "javascript"
}

// Target names the ECMAScript edition the grammar tracks. There is a
// single supported edition; the constant exists so the configuration
// surface states it explicitly.
const Target = "es2019"

// Syntax configures one parse.
type Syntax struct {
	Language      Language
	DynamicImport bool
}

// TypeScript is the syntax used for .ts sources: TS grammar with dynamic
// import enabled.
func TypeScript() Syntax {
	return Syntax{Language: LangTypeScript, DynamicImport: true}
}

// JavaScript is the syntax used for .js sources. Dynamic import stays
// opt-in; import(...) under this syntax is reported.
func JavaScript() Syntax {
	return Syntax{Language: LangJavaScript}
}
