package nfa

// Char accepts exactly the one-character string c.
func (n *NFA) Char(c rune) Fragment {
	start := n.alloc(2)
	end := start + 1
	n.states[start].Kind = Literal
	n.states[start].Char = c
	n.states[start].Out[0] = end
	return Fragment{Start: start, End: end}
}

// Concat splices b after a by turning a's end into an epsilon edge to
// b's start.
func (n *NFA) Concat(a, b Fragment) Fragment {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty
	}
	n.setEpsilon(a.End, b.Start, NoRef)
	return Fragment{Start: a.Start, End: b.End}
}

// Alternate accepts L(a) ∪ L(b). An empty operand leaves the other as is.
func (n *NFA) Alternate(a, b Fragment) Fragment {
	switch {
	case a.IsEmpty():
		return b
	case b.IsEmpty():
		return a
	}
	start := n.alloc(2)
	end := start + 1
	n.setEpsilon(start, a.Start, b.Start)
	n.setEpsilon(a.End, end, NoRef)
	n.setEpsilon(b.End, end, NoRef)
	return Fragment{Start: start, End: end}
}

// Star accepts zero or more repetitions of a.
func (n *NFA) Star(a Fragment) Fragment {
	if a.IsEmpty() {
		return n.epsilon()
	}
	start := n.alloc(2)
	end := start + 1
	n.setEpsilon(start, a.Start, end)
	n.setEpsilon(a.End, start, NoRef)
	return Fragment{Start: start, End: end}
}

// Optional accepts L(a) ∪ {""}. The end state of a is reused.
func (n *NFA) Optional(a Fragment) Fragment {
	if a.IsEmpty() {
		return n.epsilon()
	}
	start := n.alloc(1)
	n.setEpsilon(start, a.Start, a.End)
	return Fragment{Start: start, End: a.End}
}

// Plus accepts one or more repetitions. a and again must be two
// separately built copies of the same sub-automaton.
func (n *NFA) Plus(a, again Fragment) Fragment {
	return n.Concat(a, n.Star(again))
}

// Range accepts one character in [s, e]; a reversed range matches nothing.
func (n *NFA) Range(s, e rune) Fragment {
	if s > e {
		return Empty
	}
	f := n.Char(s)
	for c := s + 1; c <= e; c++ {
		f = n.Alternate(f, n.Char(c))
	}
	return f
}

// OneOf accepts one character drawn from list; an empty list matches
// nothing.
func (n *NFA) OneOf(list string) Fragment {
	f := Empty
	for _, c := range list {
		if f.IsEmpty() {
			f = n.Char(c)
			continue
		}
		f = n.Alternate(f, n.Char(c))
	}
	return f
}

// epsilon accepts only the empty string.
func (n *NFA) epsilon() Fragment {
	start := n.alloc(2)
	n.setEpsilon(start, start+1, NoRef)
	return Fragment{Start: start, End: start + 1}
}
