package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/game"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/player"
)

// Session binds one live game to its turn scheduler and its snapshot
// subscribers. The session mutex is the single entry point for game
// mutation, matching the engine's one-turn-in-flight model.
type Session struct {
	ID string

	mu          sync.Mutex
	game        *game.Game
	scheduler   *game.Scheduler
	delay       time.Duration
	lastActive  time.Time
	subscribers map[chan game.Snapshot]struct{}
}

func NewSession(delay time.Duration) *Session {
	return &Session{
		ID:          uuid.NewString(),
		game:        game.New(player.NewComputer()),
		scheduler:   game.NewScheduler(),
		delay:       delay,
		lastActive:  time.Now(),
		subscribers: make(map[chan game.Snapshot]struct{}),
	}
}

func (s *Session) Start() (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.game.Start(); err != nil {
		return game.Snapshot{}, err
	}
	s.afterMoveLocked()
	return s.game.Snapshot(), nil
}

// Reset abandons the current game, discarding any scheduled computer
// decision, and deals a fresh one.
func (s *Session) Reset() (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduler.Cancel()
	s.game = game.New(player.NewComputer())
	if err := s.game.Start(); err != nil {
		return game.Snapshot{}, err
	}
	s.afterMoveLocked()
	return s.game.Snapshot(), nil
}

func (s *Session) Draw() (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.game.Draw(game.SeatPlayer); err != nil {
		return s.game.Snapshot(), err
	}
	s.afterMoveLocked()
	return s.game.Snapshot(), nil
}

func (s *Session) Play(c card.Card) (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.game.Play(game.SeatPlayer, c); err != nil {
		return s.game.Snapshot(), err
	}
	s.afterMoveLocked()
	return s.game.Snapshot(), nil
}

func (s *Session) DeclareSuit(declared suit.Suit) (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.game.DeclareSuit(declared); err != nil {
		return s.game.Snapshot(), err
	}
	s.afterMoveLocked()
	return s.game.Snapshot(), nil
}

func (s *Session) Snapshot() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Subscribe returns a channel receiving a snapshot after every state
// change. Slow subscribers miss intermediate snapshots rather than block
// the game.
func (s *Session) Subscribe() chan game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan game.Snapshot, 8)
	s.subscribers[ch] = struct{}{}
	return ch
}

func (s *Session) Unsubscribe(ch chan game.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers, ch)
}

// Close cancels any pending computer decision and drops all subscribers.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduler.Cancel()
	for ch := range s.subscribers {
		close(ch)
		delete(s.subscribers, ch)
	}
}

func (s *Session) afterMoveLocked() {
	s.lastActive = time.Now()
	snapshot := s.game.Snapshot()
	for ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
		}
	}
	if s.game.Status() == game.StatusInProgress && s.game.Turn() == game.SeatComputer {
		s.scheduler.Schedule(s.delay, s.computerTurn)
	}
}

func (s *Session) computerTurn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game.Status() != game.StatusInProgress || s.game.Turn() != game.SeatComputer {
		return
	}
	if err := s.game.ComputerTurn(); err != nil {
		return
	}
	s.afterMoveLocked()
}
