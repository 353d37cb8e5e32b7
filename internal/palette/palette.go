// Package palette holds the fixed display colors used for status badges and
// the categorical palette used when a code has no canonical color.
package palette

// Status colors.
var (
	Amber = MustHex("#D9923F")
	Green = MustHex("#5BB65D")
	Red   = MustHex("#DA524B")
	Grey  = MustHex("#939393")
	Blue  = MustHex("#5271CC")
	Actor = MustHex("#d7bbdb")
)

// Background tints of the status colors.
var (
	AmberBg = MustHex("#FCF2D7")
	GreenBg = MustHex("#DFF1D2")
	RedBg   = MustHex("#F2D7D7")
	GreyBg  = MustHex("#F5F5F5")
	ActorBg = MustHex("#ede5ee")
)

var (
	Black = Color{}
	White = Color{R: 0xff, G: 0xff, B: 0xff}
)

// Unknown is returned for a code outside a named scale's domain. It matches no
// status color, so an unmapped code never passes for a real rating.
var Unknown = MustHex("#CCCCCC")

// Category20 is the categorical palette behind the fallback scale.
var Category20 = []Color{
	MustHex("#1f77b4"),
	MustHex("#aec7e8"),
	MustHex("#ff7f0e"),
	MustHex("#ffbb78"),
	MustHex("#2ca02c"),
	MustHex("#98df8a"),
	MustHex("#d62728"),
	MustHex("#ff9896"),
	MustHex("#9467bd"),
	MustHex("#c5b0d5"),
	MustHex("#8c564b"),
	MustHex("#c49c94"),
	MustHex("#e377c2"),
	MustHex("#f7b6d2"),
	MustHex("#7f7f7f"),
	MustHex("#c7c7c7"),
	MustHex("#bcbd22"),
	MustHex("#dbdb8d"),
	MustHex("#17becf"),
	MustHex("#9edae5"),
}
