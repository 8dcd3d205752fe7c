package game

import (
	"fmt"
	"strings"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"
)

// Snapshot is the read-only view handed to the presentation layer. The
// computer's hand is exposed only as a count to preserve hidden-hand
// semantics.
type Snapshot struct {
	Status           Status
	Turn             Seat
	Winner           Seat
	TopCard          card.Card
	DeclaredSuit     suit.Suit
	DrawPileSize     int
	DiscardPileSize  int
	PlayerHand       []card.Card
	ComputerHandSize int
	LegalPlays       []card.Card
	LastAction       string
}

func (g *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		Status:     g.status,
		Turn:       g.turn,
		Winner:     g.winner,
		LastAction: g.last,
	}
	if g.status == StatusNotStarted {
		return snapshot
	}
	topCard, _ := g.pile.Top()
	snapshot.TopCard = topCard
	snapshot.DeclaredSuit = g.declared
	snapshot.DrawPileSize = g.deck.Size()
	snapshot.DiscardPileSize = g.pile.Size()
	snapshot.PlayerHand = g.hands[SeatPlayer].Cards()
	snapshot.ComputerHandSize = g.hands[SeatComputer].Size()
	snapshot.LegalPlays = g.LegalPlays()
	return snapshot
}

func (s Snapshot) String() string {
	if s.Status == StatusNotStarted {
		return "No game in progress."
	}
	var lines []string
	lines = append(lines, fmt.Sprintf("Top card: %s", s.TopCard))
	if s.DeclaredSuit != suit.None {
		lines = append(lines, fmt.Sprintf("Declared suit: %s", s.DeclaredSuit))
	}
	lines = append(lines, fmt.Sprintf("Draw pile: %d card(s), computer holds %d card(s)", s.DrawPileSize, s.ComputerHandSize))
	lines = append(lines, fmt.Sprintf("Your hand: %s", s.PlayerHand))
	if s.Status == StatusConcluded {
		lines = append(lines, fmt.Sprintf("%s won!", s.Winner))
	} else {
		lines = append(lines, fmt.Sprintf("Turn: %s", s.Turn))
	}
	return strings.Join(lines, "\n")
}
