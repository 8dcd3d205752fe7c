package suit

import (
	"fmt"

	"github.com/fatih/color"
)

// Suit is one of the four suits of a standard deck. It is a closed
// enumeration; None marks the absence of a declared suit.
type Suit int

const (
	None Suit = iota
	Spades
	Hearts
	Diamonds
	Clubs
)

type suitInfo struct {
	name          string
	symbol        string
	colorFunction func(string, ...interface{}) string
}

var infos = map[Suit]suitInfo{
	Spades:   {name: "Spades", symbol: "♠", colorFunction: color.New(color.FgHiWhite).SprintfFunc()},
	Hearts:   {name: "Hearts", symbol: "♥", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Diamonds: {name: "Diamonds", symbol: "♦", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Clubs:    {name: "Clubs", symbol: "♣", colorFunction: color.New(color.FgHiWhite).SprintfFunc()},
}

// All lists the suits in their fixed priority order. Deterministic
// tie-breaking (e.g. the opponent's suit declaration) relies on this order.
func All() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

func (s Suit) Name() string {
	return infos[s].name
}

func (s Suit) Symbol() string {
	return infos[s].symbol
}

func (s Suit) Paint(text string) string {
	info, ok := infos[s]
	if !ok {
		return text
	}
	return info.colorFunction(text)
}

func (s Suit) Paintf(text string, args ...interface{}) string {
	info, ok := infos[s]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return info.colorFunction(text, args...)
}

func (s Suit) String() string {
	if s == None {
		return "None"
	}
	return s.Paint(s.Name() + s.Symbol())
}

// ByName resolves a suit from its name, e.g. "Hearts".
func ByName(name string) (Suit, error) {
	for _, s := range All() {
		if s.Name() == name {
			return s, nil
		}
	}
	return None, fmt.Errorf("invalid suit '%s'", name)
}
