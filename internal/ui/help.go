package ui

var helpLines = []string{
	"space  play / pause",
	"n      step (paused)",
	"b      step back (paused)",
	"r      reset pattern",
	"c      clear",
	"+ / -  zoom",
	"[ / ]  slower / faster",
	"drag   pan",
	"right  paint (shift erases)",
	"wheel  zoom at pointer",
	"h      toggle help",
	"q      quit",
}

// HelpLines returns the key binding summary shown by the overlay.
func HelpLines() []string { return helpLines }
