package game

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme is a named color palette. Purely cosmetic: the renderer and the
// burst events use it, physics never does.
type Theme struct {
	Name       string
	Background colorful.Color
	CourtLine  colorful.Color
	LeftPaddle colorful.Color
	RightPad   colorful.Color
	Ball       colorful.Color
	PowerUp    colorful.Color
	Accent     colorful.Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var themes = []Theme{
	{
		Name:       "classic",
		Background: mustHex("#0a0a12"),
		CourtLine:  mustHex("#3a3a4a"),
		LeftPaddle: mustHex("#4fc3f7"),
		RightPad:   mustHex("#ef5350"),
		Ball:       mustHex("#ffffff"),
		PowerUp:    mustHex("#ffd54f"),
		Accent:     mustHex("#80cbc4"),
	},
	{
		Name:       "neon",
		Background: mustHex("#05000f"),
		CourtLine:  mustHex("#2d1b4e"),
		LeftPaddle: mustHex("#00e5ff"),
		RightPad:   mustHex("#ff2079"),
		Ball:       mustHex("#f8f8ff"),
		PowerUp:    mustHex("#aaff00"),
		Accent:     mustHex("#bf00ff"),
	},
	{
		Name:       "sunset",
		Background: mustHex("#1a0f1e"),
		CourtLine:  mustHex("#4a2c3a"),
		LeftPaddle: mustHex("#ffb74d"),
		RightPad:   mustHex("#ba68c8"),
		Ball:       mustHex("#fff3e0"),
		PowerUp:    mustHex("#ff8a65"),
		Accent:     mustHex("#f06292"),
	},
	{
		Name:       "ocean",
		Background: mustHex("#041620"),
		CourtLine:  mustHex("#12384a"),
		LeftPaddle: mustHex("#4dd0e1"),
		RightPad:   mustHex("#66bb6a"),
		Ball:       mustHex("#e0f7fa"),
		PowerUp:    mustHex("#ffee58"),
		Accent:     mustHex("#29b6f6"),
	},
}

// ThemeByName returns the palette for a name, falling back to classic.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return themes[0], false
}

// ThemeNames lists available palettes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme cycles to the palette after the named one.
func NextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
