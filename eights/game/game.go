package game

import (
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/consts"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/event"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/msg"
)

// Seat identifies one of the two sides of the game.
type Seat int

const (
	SeatNone Seat = iota
	SeatPlayer
	SeatComputer
)

func (s Seat) String() string {
	switch s {
	case SeatPlayer:
		return "Player"
	case SeatComputer:
		return "Computer"
	}
	return "Nobody"
}

func (s Seat) Other() Seat {
	switch s {
	case SeatPlayer:
		return SeatComputer
	case SeatComputer:
		return SeatPlayer
	}
	return SeatNone
}

// Status is the engine's lifecycle state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusAwaitingSuit
	StatusConcluded
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusInProgress:
		return "in-progress"
	case StatusAwaitingSuit:
		return "awaiting-suit-declaration"
	case StatusConcluded:
		return "concluded"
	}
	return ""
}

// Action is the kind of move a policy can choose.
type Action int

const (
	ActionDraw Action = iota
	ActionPlay
)

// Move is a single decision by the opponent policy: play a specific card,
// or draw.
type Move struct {
	Action Action
	Card   card.Card
}

// Policy decides the computer side's moves from its observable state.
type Policy interface {
	ChooseMove(hand []card.Card, topCard card.Card, declared suit.Suit) Move
	ChooseSuit(hand []card.Card) suit.Suit
}

// Game is the canonical game state. All mutation goes through Start, Draw,
// Play, DeclareSuit and ComputerTurn; each operation either applies fully
// or fails leaving the state untouched. Not safe for concurrent callers.
type Game struct {
	deck     *Deck
	pile     *Pile
	hands    map[Seat]*Hand
	turn     Seat
	declared suit.Suit
	status   Status
	winner   Seat
	last     string
	policy   Policy
}

func New(policy Policy) *Game {
	return &Game{
		hands:  map[Seat]*Hand{SeatPlayer: NewHand(), SeatComputer: NewHand()},
		status: StatusNotStarted,
		policy: policy,
	}
}

// Start deals a fresh game: a new shuffled deck, eight cards to each side,
// one card turned up on the discard pile, player to move. Valid from
// not-started or concluded.
func (g *Game) Start() error {
	if g.status != StatusNotStarted && g.status != StatusConcluded {
		return consts.ErrorsInvalidState
	}
	deck := NewDeck()
	if deck.Size() < consts.HandSize*2+1 {
		return consts.ErrorsInsufficientCards
	}
	pile := NewPile()
	playerHand := NewHand()
	computerHand := NewHand()
	playerHand.AddCards(deck.Draw(consts.HandSize))
	computerHand.AddCards(deck.Draw(consts.HandSize))
	firstCard, _ := deck.DrawOne()
	pile.Add(firstCard)

	g.deck = deck
	g.pile = pile
	g.hands = map[Seat]*Hand{SeatPlayer: playerHand, SeatComputer: computerHand}
	g.turn = SeatPlayer
	g.declared = suit.None
	g.status = StatusInProgress
	g.winner = SeatNone
	g.last = msg.Message.GameStarted(firstCard)
	return nil
}

// Draw moves the top card of the draw pile into seat's hand and passes the
// turn. An empty draw pile is replenished by reshuffling the discard pile
// under its top card; when neither pile can yield a card the draw is a
// no-op but the turn still passes.
func (g *Game) Draw(seat Seat) error {
	if g.status != StatusInProgress {
		return consts.ErrorsGameNotInProgress
	}
	if seat != g.turn {
		return consts.ErrorsInvalidTurn
	}
	recycledCount := 0
	if g.deck.Empty() {
		if g.pile.Size() <= 1 {
			g.turn = seat.Other()
			g.last = msg.Message.SideCannotDraw(seat.String())
			return nil
		}
		recycled := g.pile.TakeAllButTop()
		g.deck.Refill(recycled)
		recycledCount = len(recycled)
		event.PileRecycled.Emit(event.PileRecycledPayload{Count: recycledCount})
	}
	drawnCard, _ := g.deck.DrawOne()
	g.hands[seat].AddCards([]card.Card{drawnCard})
	g.turn = seat.Other()
	g.last = msg.Message.SideDrewCard(seat.String())
	if recycledCount > 0 {
		g.last = msg.Message.PileRecycled(recycledCount) + " " + g.last
	}
	event.CardsDrawn.Emit(event.CardsDrawnPayload{Seat: seat.String(), Count: 1})
	return nil
}

// Play moves a card from seat's hand onto the discard pile. An eight by
// the player holds the turn until DeclareSuit; an eight by the computer
// resolves its declared suit immediately through the policy. Emptying a
// hand concludes the game.
func (g *Game) Play(seat Seat, c card.Card) error {
	if g.status != StatusInProgress {
		return consts.ErrorsGameNotInProgress
	}
	if seat != g.turn {
		return consts.ErrorsInvalidTurn
	}
	hand := g.hands[seat]
	topCard, _ := g.pile.Top()
	if !hand.Contains(c) || !Playable(c, topCard, g.declared) {
		return consts.ErrorsIllegalMove
	}

	hand.RemoveCard(c)
	g.pile.Add(c)
	g.declared = suit.None
	event.CardPlayed.Emit(event.CardPlayedPayload{Seat: seat.String(), Card: c})

	if hand.Empty() {
		g.status = StatusConcluded
		g.winner = seat
		g.last = msg.Message.SideWon(seat.String(), c)
		event.GameConcluded.Emit(event.GameConcludedPayload{Winner: seat.String()})
		return nil
	}

	if c.Wild() {
		if seat == SeatPlayer {
			g.status = StatusAwaitingSuit
			g.last = msg.Message.SidePlayedEight(seat.String(), c)
			return nil
		}
		declared := g.policy.ChooseSuit(hand.Cards())
		g.declared = declared
		g.turn = seat.Other()
		g.last = msg.Message.SidePlayedEightAndDeclared(seat.String(), c, declared)
		event.SuitDeclared.Emit(event.SuitDeclaredPayload{Seat: seat.String(), Suit: declared})
		return nil
	}

	g.turn = seat.Other()
	g.last = msg.Message.SidePlayedCard(seat.String(), c)
	return nil
}

// DeclareSuit resolves the player's pending eight and hands the turn to
// the computer.
func (g *Game) DeclareSuit(declared suit.Suit) error {
	if g.status != StatusAwaitingSuit {
		return consts.ErrorsInvalidState
	}
	if declared == suit.None {
		return consts.ErrorsIllegalMove
	}
	g.declared = declared
	g.status = StatusInProgress
	g.turn = SeatComputer
	g.last = msg.Message.SideDeclaredSuit(SeatPlayer.String(), declared)
	event.SuitDeclared.Emit(event.SuitDeclaredPayload{Seat: SeatPlayer.String(), Suit: declared})
	return nil
}

// ComputerTurn asks the opponent policy for a move and applies it.
func (g *Game) ComputerTurn() error {
	if g.status != StatusInProgress {
		return consts.ErrorsGameNotInProgress
	}
	if g.turn != SeatComputer {
		return consts.ErrorsInvalidTurn
	}
	topCard, _ := g.pile.Top()
	move := g.policy.ChooseMove(g.hands[SeatComputer].Cards(), topCard, g.declared)
	if move.Action == ActionPlay {
		return g.Play(SeatComputer, move.Card)
	}
	return g.Draw(SeatComputer)
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Turn() Seat {
	return g.turn
}

func (g *Game) Winner() Seat {
	return g.winner
}

func (g *Game) DeclaredSuit() suit.Suit {
	return g.declared
}

func (g *Game) LastAction() string {
	return g.last
}

// LegalPlays lists the cards the player may currently play, for the
// presentation layer to highlight.
func (g *Game) LegalPlays() []card.Card {
	if g.status != StatusInProgress || g.turn != SeatPlayer {
		return nil
	}
	topCard, _ := g.pile.Top()
	return g.hands[SeatPlayer].PlayableCards(topCard, g.declared)
}
