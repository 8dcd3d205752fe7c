package card

import (
	"fmt"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"
)

// Rank is one of the thirteen ranks of a standard deck. Ranks carry no
// magnitude in this game; Eight is distinguished as the wildcard rank.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = map[Rank]string{
	Ace:   "Ace",
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

var rankLabels = map[Rank]string{
	Ace:   "A",
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
}

// Ranks lists all thirteen ranks in a fixed order.
func Ranks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

func (r Rank) String() string {
	return rankNames[r]
}

// Label is the short display form of the rank, e.g. "10" or "Q".
func (r Rank) Label() string {
	return rankLabels[r]
}

// Wild reports whether the rank is the wildcard rank.
func (r Rank) Wild() bool {
	return r == Eight
}

// RankByName resolves a rank from its name, e.g. "Eight".
func RankByName(name string) (Rank, error) {
	for _, r := range Ranks() {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("invalid rank '%s'", name)
}

// Card is an immutable playing card. The zero value is not a valid card.
type Card struct {
	rank Rank
	suit suit.Suit
}

func New(rank Rank, s suit.Suit) Card {
	return Card{rank: rank, suit: s}
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() suit.Suit {
	return c.suit
}

// Wild reports whether the card is a wildcard (an eight).
func (c Card) Wild() bool {
	return c.rank.Wild()
}

func (c Card) Equal(other Card) bool {
	return c == other
}

// ID is a card's identity, unique within a deck. It is a product of rank
// and suit rather than a formatted string, so uniqueness is structural.
type ID struct {
	Rank Rank
	Suit suit.Suit
}

func (c Card) ID() ID {
	return ID{Rank: c.rank, Suit: c.suit}
}

func (c Card) String() string {
	return c.suit.Paint(c.rank.Label() + c.suit.Symbol())
}
