package parser

import "ecmaparse/internal/token"

// Binary operator precedence, higher binds tighter. Assignment and the
// ternary live outside the table; '**' is the single right-associative
// entry.
const (
	precNullish    = 1
	precOr         = 2
	precAnd        = 3
	precBitOr      = 4
	precBitXor     = 5
	precBitAnd     = 6
	precEquality   = 7
	precRelational = 8
	precShift      = 9
	precAdditive   = 10
	precMultiplic  = 11
	precExponent   = 12
)

var binaryPrec = map[token.Kind]int{
	token.QuestionQuestion: precNullish,
	token.OrOr:             precOr,
	token.AndAnd:           precAnd,
	token.Pipe:             precBitOr,
	token.Caret:            precBitXor,
	token.Amp:              precBitAnd,

	token.EqEq:     precEquality,
	token.EqEqEq:   precEquality,
	token.BangEq:   precEquality,
	token.BangEqEq: precEquality,

	token.Lt:           precRelational,
	token.LtEq:         precRelational,
	token.Gt:           precRelational,
	token.GtEq:         precRelational,
	token.KwIn:         precRelational,
	token.KwInstanceof: precRelational,

	token.Shl:  precShift,
	token.Shr:  precShift,
	token.UShr: precShift,

	token.Plus:  precAdditive,
	token.Minus: precAdditive,

	token.Star:    precMultiplic,
	token.Slash:   precMultiplic,
	token.Percent: precMultiplic,

	token.StarStar: precExponent,
}

func isLogicalOp(k token.Kind) bool {
	switch k {
	case token.AndAnd, token.OrOr, token.QuestionQuestion:
		return true
	default:
		return false
	}
}

// opText renders the source spelling of an operator kind. Operator tokens
// do not carry Text, the kind is enough.
func opText(k token.Kind) string {
	switch k {
	case token.Assign:
		return "="
	case token.PlusAssign:
		return "+="
	case token.MinusAssign:
		return "-="
	case token.StarAssign:
		return "*="
	case token.SlashAssign:
		return "/="
	case token.PercentAssign:
		return "%="
	case token.StarStarAssign:
		return "**="
	case token.ShlAssign:
		return "<<="
	case token.ShrAssign:
		return ">>="
	case token.UShrAssign:
		return ">>>="
	case token.AmpAssign:
		return "&="
	case token.PipeAssign:
		return "|="
	case token.CaretAssign:
		return "^="
	case token.AndAndAssign:
		return "&&="
	case token.OrOrAssign:
		return "||="
	case token.QuestionQuestionAssign:
		return "??="
	case token.EqEq:
		return "=="
	case token.EqEqEq:
		return "==="
	case token.BangEq:
		return "!="
	case token.BangEqEq:
		return "!=="
	case token.Lt:
		return "<"
	case token.LtEq:
		return "<="
	case token.Gt:
		return ">"
	case token.GtEq:
		return ">="
	case token.Shl:
		return "<<"
	case token.Shr:
		return ">>"
	case token.UShr:
		return ">>>"
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	case token.Star:
		return "*"
	case token.StarStar:
		return "**"
	case token.Slash:
		return "/"
	case token.Percent:
		return "%"
	case token.PlusPlus:
		return "++"
	case token.MinusMinus:
		return "--"
	case token.Amp:
		return "&"
	case token.Pipe:
		return "|"
	case token.Caret:
		return "^"
	case token.Tilde:
		return "~"
	case token.Bang:
		return "!"
	case token.AndAnd:
		return "&&"
	case token.OrOr:
		return "||"
	case token.QuestionQuestion:
		return "??"
	case token.KwIn:
		return "in"
	case token.KwInstanceof:
		return "instanceof"
	case token.KwTypeof:
		return "typeof"
	case token.KwVoid:
		return "void"
	case token.KwDelete:
		return "delete"
	}
	return k.String()
}
