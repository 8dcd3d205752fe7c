package player

import (
	"math/rand"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/game"
)

// computerPlayer is a heuristic opponent: it plays a random legal
// non-eight when it has one, hoards eights until nothing else fits, and
// declares the suit it holds the most of. No look-ahead, no inference
// about the player's hand.
type computerPlayer struct{}

func NewComputer() game.Policy {
	return computerPlayer{}
}

func (p computerPlayer) ChooseMove(hand []card.Card, topCard card.Card, declared suit.Suit) game.Move {
	var plainCards, eights []card.Card
	for _, candidateCard := range hand {
		if !game.Playable(candidateCard, topCard, declared) {
			continue
		}
		if candidateCard.Wild() {
			eights = append(eights, candidateCard)
		} else {
			plainCards = append(plainCards, candidateCard)
		}
	}
	if len(plainCards) > 0 {
		return game.Move{Action: game.ActionPlay, Card: plainCards[rand.Intn(len(plainCards))]}
	}
	if len(eights) > 0 {
		return game.Move{Action: game.ActionPlay, Card: eights[0]}
	}
	return game.Move{Action: game.ActionDraw}
}

// ChooseSuit picks the most frequent suit in the remaining hand. Ties go
// to the earlier suit in the fixed priority order, so identical hands
// always yield the same declaration.
func (p computerPlayer) ChooseSuit(hand []card.Card) suit.Suit {
	suitCounts := make(map[suit.Suit]int)
	for _, handCard := range hand {
		suitCounts[handCard.Suit()]++
	}

	mostFrequentSuit := suit.All()[0]
	mostFrequentCount := -1
	for _, candidateSuit := range suit.All() {
		if suitCounts[candidateSuit] > mostFrequentCount {
			mostFrequentCount = suitCounts[candidateSuit]
			mostFrequentSuit = candidateSuit
		}
	}
	return mostFrequentSuit
}
