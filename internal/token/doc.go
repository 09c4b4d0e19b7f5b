// Package token defines lexical token kinds and trivia for ECMAScript and
// TypeScript source.
// Invariants:
//   - Token.Text is the exact source slice for the token (no normalization).
//   - Token.Span matches Text exactly (Start..End).
//   - Only reserved words get keyword kinds. Contextual words (async, of, as,
//     from, get, set, type, interface, declare, ...) are lexed as Ident and
//     recognized by the parser from Token.Text.
//   - Template literals are split into Head/Middle/Tail parts around `${`;
//     a template without substitutions is a single TemplateNoSub token.
//   - Comments never appear in the main token stream; they ride along as
//     leading Trivia and feed the parse context's comment registry.
package token
