package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/consts"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GameServer serves one crazy-eights game per session to the browser UI.
// It holds no rule logic; every decision is the engine's.
type GameServer struct {
	cfg      Config
	log      *logrus.Logger
	done     chan struct{}
	stopOnce sync.Once
	http.Server
}

func New(cfg Config, log *logrus.Logger) *GameServer {
	s := &GameServer{cfg: cfg, log: log, done: make(chan struct{})}
	registerEventLog(log)

	router := chi.NewRouter()
	router.Get("/api/health", s.handleHealth)
	router.Post("/api/games", s.handleNewGame)
	router.Route("/api/games/{gameID}", func(router chi.Router) {
		router.Get("/", s.handleGetGame)
		router.Post("/draw", s.handleDraw)
		router.Post("/play", s.handlePlay)
		router.Post("/declare", s.handleDeclare)
		router.Post("/reset", s.handleReset)
		router.Delete("/", s.handleDeleteGame)
		router.Get("/ws", s.handleWatch)
	})

	s.Server.Addr = cfg.Addr
	s.Server.Handler = handlers.LoggingHandler(log.Writer(), router)

	go s.sweepLoop()
	return s
}

func (s *GameServer) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if removed := SweepSessions(s.cfg.SessionTTL); removed > 0 {
				s.log.WithField("sessions", removed).Info("swept idle games")
			}
		case <-s.done:
			return
		}
	}
}

// Shutdown stops the sweeper and then the HTTP server. Safe to call more
// than once.
func (s *GameServer) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.done) })
	return s.Server.Shutdown(ctx)
}

type cardDTO struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

type playReq struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

type declareReq struct {
	Suit string `json:"suit"`
}

type stateRes struct {
	GameID           string    `json:"game_id"`
	Status           string    `json:"status"`
	Turn             string    `json:"turn"`
	Winner           string    `json:"winner,omitempty"`
	TopCard          *cardDTO  `json:"top_card,omitempty"`
	DeclaredSuit     string    `json:"declared_suit,omitempty"`
	DrawPileSize     int       `json:"draw_pile_size"`
	ComputerHandSize int       `json:"computer_hand_size"`
	PlayerHand       []cardDTO `json:"player_hand"`
	LegalPlays       []cardDTO `json:"legal_plays"`
	LastAction       string    `json:"last_action"`
}

func toCardDTO(c card.Card) cardDTO {
	return cardDTO{Rank: c.Rank().String(), Suit: c.Suit().Name()}
}

func toCardDTOs(cards []card.Card) []cardDTO {
	dtos := make([]cardDTO, 0, len(cards))
	for _, c := range cards {
		dtos = append(dtos, toCardDTO(c))
	}
	return dtos
}

func toStateRes(gameID string, snapshot game.Snapshot) stateRes {
	res := stateRes{
		GameID:           gameID,
		Status:           snapshot.Status.String(),
		Turn:             snapshot.Turn.String(),
		DrawPileSize:     snapshot.DrawPileSize,
		ComputerHandSize: snapshot.ComputerHandSize,
		PlayerHand:       toCardDTOs(snapshot.PlayerHand),
		LegalPlays:       toCardDTOs(snapshot.LegalPlays),
		LastAction:       snapshot.LastAction,
	}
	if snapshot.Status != game.StatusNotStarted {
		topCard := toCardDTO(snapshot.TopCard)
		res.TopCard = &topCard
	}
	if snapshot.DeclaredSuit != suit.None {
		res.DeclaredSuit = snapshot.DeclaredSuit.Name()
	}
	if snapshot.Status == game.StatusConcluded {
		res.Winner = snapshot.Winner.String()
	}
	return res
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var gameErr consts.Error
	if errors.As(err, &gameErr) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": gameErr.Msg})
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func (s *GameServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *GameServer) handleNewGame(w http.ResponseWriter, r *http.Request) {
	session := CreateSession(s.cfg.ThinkingDelay)
	snapshot, err := session.Start()
	if err != nil {
		DeleteSession(session.ID)
		writeError(w, err)
		return
	}
	s.log.WithField("game", session.ID).Info("new game")
	writeJSON(w, http.StatusCreated, toStateRes(session.ID, snapshot))
}

func (s *GameServer) session(w http.ResponseWriter, r *http.Request) *Session {
	gameID := chi.URLParam(r, "gameID")
	session := GetSession(gameID)
	if session == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown game ID '" + gameID + "'"})
		return nil
	}
	return session
}

func (s *GameServer) handleGetGame(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}
	writeJSON(w, http.StatusOK, toStateRes(session.ID, session.Snapshot()))
}

func (s *GameServer) handleDraw(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}
	snapshot, err := session.Draw()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStateRes(session.ID, snapshot))
}

func (s *GameServer) handlePlay(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}
	var req playReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}
	rank, err := card.RankByName(req.Rank)
	if err != nil {
		writeError(w, err)
		return
	}
	cardSuit, err := suit.ByName(req.Suit)
	if err != nil {
		writeError(w, err)
		return
	}
	snapshot, err := session.Play(card.New(rank, cardSuit))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStateRes(session.ID, snapshot))
}

func (s *GameServer) handleDeclare(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}
	var req declareReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}
	declared, err := suit.ByName(req.Suit)
	if err != nil {
		writeError(w, err)
		return
	}
	snapshot, err := session.DeclareSuit(declared)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStateRes(session.ID, snapshot))
}

func (s *GameServer) handleReset(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}
	snapshot, err := session.Reset()
	if err != nil {
		writeError(w, err)
		return
	}
	s.log.WithField("game", session.ID).Info("game reset")
	writeJSON(w, http.StatusOK, toStateRes(session.ID, snapshot))
}

func (s *GameServer) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}
	DeleteSession(session.ID)
	w.WriteHeader(http.StatusNoContent)
}

// handleWatch streams a snapshot to the client after every state change.
func (s *GameServer) handleWatch(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if session == nil {
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	updates := session.Subscribe()
	defer session.Unsubscribe(updates)

	// Drain client frames so pings and closes are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(toStateRes(session.ID, session.Snapshot())); err != nil {
		return
	}
	for {
		select {
		case snapshot, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(toStateRes(session.ID, snapshot)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
