package game

import (
	"math/rand"
	"sync"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/consts"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"
)

// Deck is the face-down draw pile. Cards are removed from the end. Unlike
// an endless dealing shoe it never refills itself; recycling the discard
// pile is the engine's decision.
type Deck struct {
	sync.Mutex
	cards []card.Card
}

// NewDeck builds a full 52-card deck in a fresh random order.
func NewDeck() *Deck {
	return &Deck{cards: Shuffled(fullDeck())}
}

func (d *Deck) DrawOne() (card.Card, bool) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	drawn := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return drawn, true
}

// Draw removes up to amount cards from the end of the deck.
func (d *Deck) Draw(amount int) []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[len(d.cards)-amount:])
	d.cards = d.cards[:len(d.cards)-amount]
	return cards
}

// Refill replaces the deck's contents with a shuffled copy of cards.
func (d *Deck) Refill(cards []card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.cards = Shuffled(cards)
}

func (d *Deck) Size() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return d.Size() == 0
}

func (d *Deck) Cards() []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func fullDeck() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, s := range suit.All() {
		for _, r := range card.Ranks() {
			cards = append(cards, card.New(r, s))
		}
	}
	return cards
}

// Shuffled returns a uniformly random permutation of cards as a new slice,
// leaving the input intact.
func Shuffled(cards []card.Card) []card.Card {
	shuffled := make([]card.Card, len(cards))
	copy(shuffled, cards)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled
}
