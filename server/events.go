package server

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/event"
)

// eventLogger mirrors every engine event into the structured log.
type eventLogger struct {
	log *logrus.Logger
}

var registerEventsOnce sync.Once

// registerEventLog subscribes the logger to the engine's emitters. The
// emitters are process-wide, so registration happens once no matter how
// many servers are built.
func registerEventLog(log *logrus.Logger) {
	registerEventsOnce.Do(func() {
		listener := eventLogger{log: log}
		event.CardPlayed.AddListener(listener)
		event.SuitDeclared.AddListener(listener)
		event.CardsDrawn.AddListener(listener)
		event.PileRecycled.AddListener(listener)
		event.GameConcluded.AddListener(listener)
	})
}

func (l eventLogger) OnCardPlayed(payload event.CardPlayedPayload) {
	l.log.WithFields(logrus.Fields{
		"seat": payload.Seat,
		"card": fmt.Sprintf("%s of %s", payload.Card.Rank(), payload.Card.Suit().Name()),
	}).Info("card played")
}

func (l eventLogger) OnSuitDeclared(payload event.SuitDeclaredPayload) {
	l.log.WithFields(logrus.Fields{
		"seat": payload.Seat,
		"suit": payload.Suit.Name(),
	}).Info("suit declared")
}

func (l eventLogger) OnCardsDrawn(payload event.CardsDrawnPayload) {
	l.log.WithFields(logrus.Fields{
		"seat":  payload.Seat,
		"count": payload.Count,
	}).Info("cards drawn")
}

func (l eventLogger) OnPileRecycled(payload event.PileRecycledPayload) {
	l.log.WithField("count", payload.Count).Info("discard pile recycled")
}

func (l eventLogger) OnGameConcluded(payload event.GameConcludedPayload) {
	l.log.WithField("winner", payload.Winner).Info("game concluded")
}
