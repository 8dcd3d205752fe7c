package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/game"
)

func TestNewDeck(t *testing.T) {
	t.Run("holds_all_52_standard_cards", func(t *testing.T) {
		deck := game.NewDeck()
		require.Equal(t, 52, deck.Size())
		require.ElementsMatch(t, standardDeckCards(), deck.Cards())
	})

	t.Run("every_card_identity_is_unique", func(t *testing.T) {
		deck := game.NewDeck()
		seen := make(map[card.ID]bool)
		for _, c := range deck.Cards() {
			require.False(t, seen[c.ID()], "duplicate card %v", c)
			seen[c.ID()] = true
		}
	})

	t.Run("is_restartable_for_new_games", func(t *testing.T) {
		first := game.NewDeck()
		second := game.NewDeck()
		require.ElementsMatch(t, first.Cards(), second.Cards())
	})
}

func TestDraw(t *testing.T) {
	t.Run("removes_cards_from_the_end", func(t *testing.T) {
		deck := game.NewDeck()
		before := deck.Cards()
		drawn := deck.Draw(8)
		require.Len(t, drawn, 8)
		require.Equal(t, 44, deck.Size())
		require.ElementsMatch(t, before, append(deck.Cards(), drawn...))
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		deck := game.NewDeck()
		require.Empty(t, deck.Draw(0))
	})

	t.Run("does_not_refill_itself_upon_becoming_empty", func(t *testing.T) {
		deck := game.NewDeck()
		drawn := deck.Draw(52)
		require.Len(t, drawn, 52)
		require.True(t, deck.Empty())
		require.Empty(t, deck.Draw(1))
	})
}

func TestDrawOne(t *testing.T) {
	deck := game.NewDeck()
	drawn, ok := deck.DrawOne()
	require.True(t, ok)
	require.Contains(t, standardDeckCards(), drawn)
	require.Equal(t, 51, deck.Size())

	deck.Draw(51)
	_, ok = deck.DrawOne()
	require.False(t, ok)
}

func TestRefill(t *testing.T) {
	deck := game.NewDeck()
	deck.Draw(52)
	cards := []card.Card{
		card.New(card.Two, suit.Clubs),
		card.New(card.Five, suit.Hearts),
		card.New(card.Jack, suit.Spades),
	}
	deck.Refill(cards)
	require.Equal(t, 3, deck.Size())
	require.ElementsMatch(t, cards, deck.Cards())
}

func TestShuffled(t *testing.T) {
	t.Run("leaves_the_input_intact", func(t *testing.T) {
		original := standardDeckCards()
		snapshot := make([]card.Card, len(original))
		copy(snapshot, original)

		game.Shuffled(original)
		require.Equal(t, snapshot, original)
	})

	t.Run("returns_the_same_multiset_of_cards", func(t *testing.T) {
		original := standardDeckCards()
		shuffled := game.Shuffled(original)
		require.ElementsMatch(t, original, shuffled)
	})

	t.Run("changes_the_order_with_high_probability", func(t *testing.T) {
		original := standardDeckCards()
		differs := false
		// 52! orderings; ten identical shuffles in a row means a broken shuffle.
		for i := 0; i < 10; i++ {
			shuffled := game.Shuffled(original)
			for j := range shuffled {
				if !shuffled[j].Equal(original[j]) {
					differs = true
					break
				}
			}
			if differs {
				break
			}
		}
		require.True(t, differs)
	})
}

func standardDeckCards() []card.Card {
	cards := make([]card.Card, 0, 52)
	for _, s := range suit.All() {
		for _, r := range card.Ranks() {
			cards = append(cards, card.New(r, s))
		}
	}
	return cards
}
