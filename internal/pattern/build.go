package pattern

import (
	"fmt"

	"thompson/internal/dfa"
	"thompson/internal/nfa"
)

// Build parses expr and assembles its fragment in n.
func Build(n *nfa.NFA, expr string) (nfa.Fragment, error) {
	ast, err := Parse(expr)
	if err != nil {
		return nfa.Empty, err
	}
	f, err := ast.build(n)
	if err != nil {
		return nfa.Empty, fmt.Errorf("pattern %q: %w", expr, err)
	}
	return f, nil
}

// Compile builds expr into a fresh NFA and determinises it.
func Compile(expr string) (*dfa.DFA, error) {
	n := nfa.New()
	f, err := Build(n, expr)
	if err != nil {
		return nil, err
	}
	return n.ToDFA(f)
}

func (e *Expr) build(n *nfa.NFA) (nfa.Fragment, error) {
	var out nfa.Fragment
	for i, b := range e.Branches {
		f, err := b.build(n)
		if err != nil {
			return nfa.Empty, err
		}
		if i == 0 {
			out = f
			continue
		}
		out = n.Alternate(out, f)
	}
	return out, nil
}

func (b *Branch) build(n *nfa.NFA) (nfa.Fragment, error) {
	var out nfa.Fragment
	for i, t := range b.Terms {
		f, err := t.build(n)
		if err != nil {
			return nfa.Empty, err
		}
		if i == 0 {
			out = f
			continue
		}
		out = n.Concat(out, f)
	}
	return out, nil
}

func (t *Term) build(n *nfa.NFA) (nfa.Fragment, error) {
	f, err := t.Atom.build(n)
	if err != nil {
		return nfa.Empty, err
	}
	switch t.Op {
	case "*":
		return n.Star(f), nil
	case "?":
		return n.Optional(f), nil
	case "+":
		// fragments cannot be copied, so build the atom a second time
		again, err := t.Atom.build(n)
		if err != nil {
			return nfa.Empty, err
		}
		return n.Plus(f, again), nil
	}
	return f, nil
}

func (a *Atom) build(n *nfa.NFA) (nfa.Fragment, error) {
	switch {
	case a.Group != nil:
		return a.Group.build(n)
	case a.Class != "":
		return class(n, a.Class)
	case a.Set != nil:
		return a.Set.build(n)
	default:
		return n.Char(a.Literal.char()), nil
	}
}

func (s *Set) build(n *nfa.NFA) (nfa.Fragment, error) {
	out := nfa.Empty
	for _, it := range s.Items {
		var f nfa.Fragment
		switch {
		case it.Class != "":
			var err error
			if f, err = class(n, it.Class); err != nil {
				return nfa.Empty, err
			}
		case it.To != nil:
			f = n.Range(it.From.char(), it.To.char())
		default:
			f = n.Char(it.From.char())
		}
		out = n.Alternate(out, f)
	}
	return out, nil
}

func class(n *nfa.NFA, tok string) (nfa.Fragment, error) {
	f, ok := n.Class(className(tok))
	if !ok {
		return nfa.Empty, fmt.Errorf("unknown character class %s", tok)
	}
	return f, nil
}
