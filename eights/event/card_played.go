package event

import "github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card"

var CardPlayed = &cardPlayedEmitter{}

type CardPlayedPayload struct {
	Seat string
	Card card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	listeners []CardPlayedListener
}

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardPlayed(payload)
	}
}
