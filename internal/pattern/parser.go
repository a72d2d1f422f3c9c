// Package pattern parses a small regular-expression syntax and drives the
// nfa builder with it.
//
//	expr    = branch { "|" branch }
//	branch  = term { term }
//	term    = atom [ "*" | "+" | "?" ]
//	atom    = "(" expr ")" | "[" item { item } "]" | "[:name:]" | char
//	item    = "[:name:]" | char [ "-" char ]
//
// A backslash escapes the next character; \t \n \r \f \v have their usual
// meaning.
package pattern

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Expr struct {
	Branches []*Branch `parser:"@@ ( '|' @@ )*"`
}

type Branch struct {
	Terms []*Term `parser:"@@+"`
}

type Term struct {
	Atom *Atom  `parser:"@@"`
	Op   string `parser:"@( '*' | '+' | '?' )?"`
}

type Atom struct {
	Group   *Expr    `parser:"  '(' @@ ')'"`
	Class   string   `parser:"| @Class"`
	Set     *Set     `parser:"| '[' @@ ']'"`
	Literal *Literal `parser:"| @@"`
}

type Set struct {
	Items []*Item `parser:"@@+"`
}

type Item struct {
	Class string   `parser:"  @Class"`
	From  *Literal `parser:"| @@"`
	To    *Literal `parser:"  ( '-' @@ )?"`
}

type Literal struct {
	Char   string `parser:"  @Char"`
	Escape string `parser:"| @Escape"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Class", Pattern: `\[:[a-z]+:\]`},
	{Name: "Escape", Pattern: `\\.`},
	{Name: "Punct", Pattern: `[|*+?()\[\]-]`},
	{Name: "Char", Pattern: `[^|*+?()\[\]\\-]`},
})

var parser = participle.MustBuild[Expr](participle.Lexer(patternLexer))

// Parse returns the syntax tree of expr.
func Parse(expr string) (*Expr, error) {
	if expr == "" {
		return nil, errors.New("empty pattern")
	}
	ast, err := parser.ParseString("", expr)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", expr, err)
	}
	return ast, nil
}

func (l *Literal) char() rune {
	if l.Char != "" {
		return []rune(l.Char)[0]
	}
	c := []rune(l.Escape)[1]
	switch c {
	case 't':
		return '\t'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	}
	return c
}

// className strips the "[:" and ":]" around a class token.
func className(tok string) string { return tok[2 : len(tok)-2] }
