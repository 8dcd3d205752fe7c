package game

import (
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"
)

// Playable reports whether candidateCard may legally be played on topCard.
// Eights are always playable. Otherwise the candidate must match the
// effective suit (the declared suit while an eight is in effect, else the
// top card's suit) or the top card's rank.
func Playable(candidateCard card.Card, topCard card.Card, declared suit.Suit) bool {
	if candidateCard.Wild() {
		return true
	}
	effectiveSuit := topCard.Suit()
	if declared != suit.None {
		effectiveSuit = declared
	}
	return candidateCard.Suit() == effectiveSuit || candidateCard.Rank() == topCard.Rank()
}
