package nfa

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	punctChars  = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	blankChars  = " \t"
	spaceChars  = " \t\n\v\f\r"
	xdigitExtra = "ABCDEFabcdef"
)

// POSIX character classes, ASCII only.

func (n *NFA) Lower() Fragment  { return n.OneOf(lowerChars) }
func (n *NFA) Upper() Fragment  { return n.OneOf(upperChars) }
func (n *NFA) Digit() Fragment  { return n.OneOf(digitChars) }
func (n *NFA) Punct() Fragment  { return n.OneOf(punctChars) }
func (n *NFA) Blank() Fragment  { return n.OneOf(blankChars) }
func (n *NFA) Space() Fragment  { return n.OneOf(spaceChars) }
func (n *NFA) Alpha() Fragment  { return n.Alternate(n.Lower(), n.Upper()) }
func (n *NFA) Alnum() Fragment  { return n.Alternate(n.Alpha(), n.Digit()) }
func (n *NFA) Graph() Fragment  { return n.Alternate(n.Alnum(), n.Punct()) }
func (n *NFA) Print() Fragment  { return n.Alternate(n.Graph(), n.Char(' ')) }
func (n *NFA) XDigit() Fragment { return n.Alternate(n.Digit(), n.OneOf(xdigitExtra)) }

// Class builds the named POSIX class, reporting false for unknown names.
func (n *NFA) Class(name string) (Fragment, bool) {
	var build func() Fragment
	switch name {
	case "alnum":
		build = n.Alnum
	case "alpha":
		build = n.Alpha
	case "blank":
		build = n.Blank
	case "digit":
		build = n.Digit
	case "graph":
		build = n.Graph
	case "lower":
		build = n.Lower
	case "print":
		build = n.Print
	case "punct":
		build = n.Punct
	case "space":
		build = n.Space
	case "upper":
		build = n.Upper
	case "xdigit":
		build = n.XDigit
	default:
		return Empty, false
	}
	return build(), true
}
