package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Lexical codes live in the 1000 range,
// syntactic in the 2000 range.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005
	LexUnterminatedRegex        Code = 1006
	LexBadEscape                Code = 1007
	LexNewlineInString          Code = 1008

	// Syntactic.
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynExpectIdentifier     Code = 2002
	SynExpectExpression     Code = 2003
	SynExpectSemicolon      Code = 2004
	SynUnclosedParen        Code = 2005
	SynUnclosedBrace        Code = 2006
	SynUnclosedBracket      Code = 2007
	SynExpectBindingTarget  Code = 2008
	SynMissingInitializer   Code = 2009
	SynBadAssignTarget      Code = 2010
	SynExpectProperty       Code = 2011
	SynExpectCatchOrFinally Code = 2012
	SynBadForHeader         Code = 2013
	SynExpectCase           Code = 2014
	SynExpectClassMember    Code = 2015
	SynExpectString         Code = 2016
	SynBadRestElement       Code = 2017
	SynTemplateExpected     Code = 2018
	SynExpectArrow          Code = 2019
	SynDuplicateDefault     Code = 2020

	// Module syntax.
	SynExpectModuleSpecifier Code = 2100
	SynExpectImportBinding   Code = 2101
	SynExpectFromClause      Code = 2102
	SynExpectExportTarget    Code = 2103
	SynDynamicImportDisabled Code = 2104

	// TypeScript syntax.
	SynExpectType          Code = 2200
	SynExpectTypeParam     Code = 2201
	SynExpectTypeMember    Code = 2202
	SynExpectEnumMember    Code = 2203
	SynTypeSyntaxDisabled  Code = 2204
	SynExpectInterfaceBody Code = 2205
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:                     "lexical note",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed number literal",
	LexUnterminatedTemplate:     "unterminated template literal",
	LexUnterminatedRegex:        "unterminated regular expression",
	LexBadEscape:                "invalid escape sequence",
	LexNewlineInString:          "line break inside string literal",

	SynInfo:                 "syntactic note",
	SynUnexpectedToken:      "unexpected token",
	SynExpectIdentifier:     "identifier expected",
	SynExpectExpression:     "expression expected",
	SynExpectSemicolon:      "semicolon expected",
	SynUnclosedParen:        "unclosed parenthesis",
	SynUnclosedBrace:        "unclosed brace",
	SynUnclosedBracket:      "unclosed bracket",
	SynExpectBindingTarget:  "binding target expected",
	SynMissingInitializer:   "initializer expected",
	SynBadAssignTarget:      "invalid assignment target",
	SynExpectProperty:       "property name expected",
	SynExpectCatchOrFinally: "catch or finally expected",
	SynBadForHeader:         "malformed for-statement header",
	SynExpectCase:           "case or default expected",
	SynExpectClassMember:    "class member expected",
	SynExpectString:         "string literal expected",
	SynBadRestElement:       "rest element must be last",
	SynTemplateExpected:     "template continuation expected",
	SynExpectArrow:          "'=>' expected",
	SynDuplicateDefault:     "multiple default clauses",

	SynExpectModuleSpecifier: "module specifier expected",
	SynExpectImportBinding:   "import binding expected",
	SynExpectFromClause:      "'from' clause expected",
	SynExpectExportTarget:    "export target expected",
	SynDynamicImportDisabled: "dynamic import is not enabled",

	SynExpectType:          "type expected",
	SynExpectTypeParam:     "type parameter expected",
	SynExpectTypeMember:    "type member expected",
	SynExpectEnumMember:    "enum member expected",
	SynTypeSyntaxDisabled:  "TypeScript syntax is not enabled",
	SynExpectInterfaceBody: "interface body expected",
}

// ID renders the stable textual form of the code, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
