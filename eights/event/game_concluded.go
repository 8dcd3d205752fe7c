package event

var GameConcluded = &gameConcludedEmitter{}

type GameConcludedPayload struct {
	Winner string
}

type GameConcludedListener interface {
	OnGameConcluded(GameConcludedPayload)
}

type gameConcludedEmitter struct {
	listeners []GameConcludedListener
}

func (e *gameConcludedEmitter) AddListener(listener GameConcludedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *gameConcludedEmitter) Emit(payload GameConcludedPayload) {
	for _, listener := range e.listeners {
		listener.OnGameConcluded(payload)
	}
}
