package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/consts"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"
)

type stubPolicy struct {
	move Move
	suit suit.Suit
}

func (p stubPolicy) ChooseMove(hand []card.Card, topCard card.Card, declared suit.Suit) Move {
	return p.move
}

func (p stubPolicy) ChooseSuit(hand []card.Card) suit.Suit {
	return p.suit
}

// greedyPolicy plays the first legal card, else draws. Used to drive full
// playouts from both seats.
type greedyPolicy struct{}

func (p greedyPolicy) ChooseMove(hand []card.Card, topCard card.Card, declared suit.Suit) Move {
	for _, candidateCard := range hand {
		if Playable(candidateCard, topCard, declared) {
			return Move{Action: ActionPlay, Card: candidateCard}
		}
	}
	return Move{Action: ActionDraw}
}

func (p greedyPolicy) ChooseSuit(hand []card.Card) suit.Suit {
	return suit.Spades
}

func craftedGame(policy Policy, drawPile, discardPile, playerHand, computerHand []card.Card) *Game {
	deck := &Deck{cards: append([]card.Card{}, drawPile...)}
	pile := &Pile{cards: append([]card.Card{}, discardPile...)}
	player := NewHand()
	player.AddCards(playerHand)
	computer := NewHand()
	computer.AddCards(computerHand)
	return &Game{
		deck:     deck,
		pile:     pile,
		hands:    map[Seat]*Hand{SeatPlayer: player, SeatComputer: computer},
		turn:     SeatPlayer,
		declared: suit.None,
		status:   StatusInProgress,
		policy:   policy,
	}
}

func totalCards(g *Game) int {
	return g.deck.Size() + g.pile.Size() + g.hands[SeatPlayer].Size() + g.hands[SeatComputer].Size()
}

func assertPartition(t *testing.T, g *Game) {
	t.Helper()
	seen := make(map[card.ID]string)
	record := func(location string, cards []card.Card) {
		for _, c := range cards {
			if other, dup := seen[c.ID()]; dup {
				t.Fatalf("card %s of %s in both %s and %s", c.Rank(), c.Suit().Name(), other, location)
			}
			seen[c.ID()] = location
		}
	}
	record("draw pile", g.deck.Cards())
	record("discard pile", g.pile.Cards())
	record("player hand", g.hands[SeatPlayer].Cards())
	record("computer hand", g.hands[SeatComputer].Cards())
}

func TestDrawRecyclesTheDiscardPile(t *testing.T) {
	g := craftedGame(stubPolicy{},
		nil,
		[]card.Card{
			card.New(card.Two, suit.Clubs),
			card.New(card.Three, suit.Clubs),
			card.New(card.Four, suit.Clubs),
			card.New(card.Five, suit.Clubs),
			card.New(card.Nine, suit.Hearts),
		},
		[]card.Card{card.New(card.Queen, suit.Spades)},
		[]card.Card{card.New(card.King, suit.Spades)},
	)
	before := totalCards(g)

	require.NoError(t, g.Draw(SeatPlayer))

	topCard, ok := g.pile.Top()
	require.True(t, ok)
	require.Equal(t, card.New(card.Nine, suit.Hearts), topCard, "top card must survive recycling")
	require.Equal(t, 1, g.pile.Size())
	require.Equal(t, 3, g.deck.Size())
	require.Equal(t, 2, g.hands[SeatPlayer].Size())
	require.Equal(t, before, totalCards(g))
	require.Equal(t, SeatComputer, g.turn)
	assertPartition(t, g)
}

func TestDrawFromASingleCardDrawPile(t *testing.T) {
	g := craftedGame(stubPolicy{},
		[]card.Card{card.New(card.Ace, suit.Diamonds)},
		[]card.Card{
			card.New(card.Two, suit.Clubs),
			card.New(card.Three, suit.Clubs),
			card.New(card.Four, suit.Clubs),
			card.New(card.Five, suit.Clubs),
			card.New(card.Nine, suit.Hearts),
		},
		[]card.Card{card.New(card.Queen, suit.Spades)},
		[]card.Card{card.New(card.King, suit.Spades)},
	)
	before := totalCards(g)

	require.NoError(t, g.Draw(SeatPlayer))

	require.True(t, g.deck.Empty())
	require.Equal(t, 2, g.hands[SeatPlayer].Size())
	require.True(t, g.hands[SeatPlayer].Contains(card.New(card.Ace, suit.Diamonds)))
	topCard, _ := g.pile.Top()
	require.Equal(t, card.New(card.Nine, suit.Hearts), topCard)
	require.Equal(t, before, totalCards(g))
}

func TestDrawWhenNothingCanBeDrawn(t *testing.T) {
	g := craftedGame(stubPolicy{},
		nil,
		[]card.Card{card.New(card.Nine, suit.Hearts)},
		[]card.Card{card.New(card.Queen, suit.Spades)},
		[]card.Card{card.New(card.King, suit.Spades)},
	)
	before := totalCards(g)

	require.NoError(t, g.Draw(SeatPlayer))

	require.Equal(t, 1, g.hands[SeatPlayer].Size(), "no card can be produced")
	require.Equal(t, before, totalCards(g))
	require.Equal(t, SeatComputer, g.turn, "the side forfeits the draw, not the game")
	require.Equal(t, StatusInProgress, g.status)
}

func TestPlayerEightAwaitsSuitDeclaration(t *testing.T) {
	eight := card.New(card.Eight, suit.Clubs)
	g := craftedGame(stubPolicy{},
		nil,
		[]card.Card{card.New(card.Nine, suit.Hearts)},
		[]card.Card{eight, card.New(card.Two, suit.Spades)},
		[]card.Card{card.New(card.King, suit.Spades)},
	)

	require.NoError(t, g.Play(SeatPlayer, eight))

	require.Equal(t, StatusAwaitingSuit, g.status)
	require.Equal(t, SeatPlayer, g.turn, "turn is held until the suit is declared")

	require.ErrorIs(t, g.Draw(SeatPlayer), consts.ErrorsGameNotInProgress)
	require.ErrorIs(t, g.Play(SeatPlayer, card.New(card.Two, suit.Spades)), consts.ErrorsGameNotInProgress)

	require.NoError(t, g.DeclareSuit(suit.Spades))
	require.Equal(t, StatusInProgress, g.status)
	require.Equal(t, suit.Spades, g.declared)
	require.Equal(t, SeatComputer, g.turn)
}

func TestComputerEightDeclaresImmediately(t *testing.T) {
	eight := card.New(card.Eight, suit.Clubs)
	g := craftedGame(stubPolicy{suit: suit.Diamonds},
		nil,
		[]card.Card{card.New(card.Nine, suit.Hearts)},
		[]card.Card{card.New(card.Queen, suit.Spades)},
		[]card.Card{eight, card.New(card.Two, suit.Diamonds)},
	)
	g.turn = SeatComputer

	require.NoError(t, g.Play(SeatComputer, eight))

	require.Equal(t, StatusInProgress, g.status)
	require.Equal(t, suit.Diamonds, g.declared)
	require.Equal(t, SeatPlayer, g.turn)
}

func TestDeclaredSuitIsSupersededByTheNextPlay(t *testing.T) {
	g := craftedGame(stubPolicy{},
		nil,
		[]card.Card{card.New(card.Eight, suit.Hearts)},
		[]card.Card{card.New(card.Queen, suit.Spades), card.New(card.Two, suit.Clubs)},
		[]card.Card{card.New(card.King, suit.Spades)},
	)
	g.declared = suit.Spades

	require.NoError(t, g.Play(SeatPlayer, card.New(card.Queen, suit.Spades)))
	require.Equal(t, suit.None, g.declared)
}

func TestPlayingTheLastCardWins(t *testing.T) {
	lastCard := card.New(card.Nine, suit.Spades)
	g := craftedGame(stubPolicy{},
		nil,
		[]card.Card{card.New(card.Nine, suit.Hearts)},
		[]card.Card{lastCard},
		[]card.Card{card.New(card.King, suit.Spades)},
	)

	require.NoError(t, g.Play(SeatPlayer, lastCard))

	require.Equal(t, StatusConcluded, g.status)
	require.Equal(t, SeatPlayer, g.winner)

	require.ErrorIs(t, g.Draw(SeatComputer), consts.ErrorsGameNotInProgress)
}

func TestWinningWithAnEightSkipsTheDeclaration(t *testing.T) {
	eight := card.New(card.Eight, suit.Clubs)
	g := craftedGame(stubPolicy{},
		nil,
		[]card.Card{card.New(card.Nine, suit.Hearts)},
		[]card.Card{eight},
		[]card.Card{card.New(card.King, suit.Spades)},
	)

	require.NoError(t, g.Play(SeatPlayer, eight))

	require.Equal(t, StatusConcluded, g.status)
	require.Equal(t, SeatPlayer, g.winner)
}

func TestIllegalPlayLeavesStateUntouched(t *testing.T) {
	offSuit := card.New(card.Two, suit.Clubs)
	g := craftedGame(stubPolicy{},
		[]card.Card{card.New(card.Ace, suit.Diamonds)},
		[]card.Card{card.New(card.Nine, suit.Hearts)},
		[]card.Card{offSuit, card.New(card.Queen, suit.Spades)},
		[]card.Card{card.New(card.King, suit.Spades)},
	)
	before := totalCards(g)

	require.ErrorIs(t, g.Play(SeatPlayer, offSuit), consts.ErrorsIllegalMove)

	require.Equal(t, before, totalCards(g))
	require.Equal(t, SeatPlayer, g.turn)
	require.Equal(t, 2, g.hands[SeatPlayer].Size())
	topCard, _ := g.pile.Top()
	require.Equal(t, card.New(card.Nine, suit.Hearts), topCard)
}

func TestPlayingACardNotInHandIsRejected(t *testing.T) {
	g := craftedGame(stubPolicy{},
		nil,
		[]card.Card{card.New(card.Nine, suit.Hearts)},
		[]card.Card{card.New(card.Queen, suit.Spades)},
		[]card.Card{card.New(card.King, suit.Spades)},
	)
	require.ErrorIs(t, g.Play(SeatPlayer, card.New(card.Nine, suit.Clubs)), consts.ErrorsIllegalMove)
}

// TestFullPlayoutKeepsThePartitionInvariant drives whole games with a
// greedy policy on both seats and checks after every operation that no
// card exists in two places and all 52 are accounted for.
func TestFullPlayoutKeepsThePartitionInvariant(t *testing.T) {
	policy := greedyPolicy{}
	for round := 0; round < 20; round++ {
		g := New(policy)
		require.NoError(t, g.Start())

		for steps := 0; steps < 2000 && g.status != StatusConcluded; steps++ {
			if g.status == StatusAwaitingSuit {
				require.NoError(t, g.DeclareSuit(suit.Spades))
			} else if g.turn == SeatPlayer {
				topCard, _ := g.pile.Top()
				move := policy.ChooseMove(g.hands[SeatPlayer].Cards(), topCard, g.declared)
				if move.Action == ActionPlay {
					require.NoError(t, g.Play(SeatPlayer, move.Card))
				} else {
					require.NoError(t, g.Draw(SeatPlayer))
				}
			} else {
				require.NoError(t, g.ComputerTurn())
			}
			require.Equal(t, 52, totalCards(g))
			assertPartition(t, g)
		}
		if g.status == StatusConcluded {
			require.NotEqual(t, SeatNone, g.winner)
		}
	}
}
