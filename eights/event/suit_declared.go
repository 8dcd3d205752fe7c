package event

import "github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"

var SuitDeclared = &suitDeclaredEmitter{}

type SuitDeclaredPayload struct {
	Seat string
	Suit suit.Suit
}

type SuitDeclaredListener interface {
	OnSuitDeclared(SuitDeclaredPayload)
}

type suitDeclaredEmitter struct {
	listeners []SuitDeclaredListener
}

func (e *suitDeclaredEmitter) AddListener(listener SuitDeclaredListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *suitDeclaredEmitter) Emit(payload SuitDeclaredPayload) {
	for _, listener := range e.listeners {
		listener.OnSuitDeclared(payload)
	}
}
