package server

import (
	"encoding/json"
	"errors"
	"fmt"
	mrand "math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"minesweeper/config"
	"minesweeper/game"
)

const (
	// sessionTTL borne la vie d'une partie sans aucun client connecté.
	sessionTTL = 10 * time.Minute
	writeWait  = 5 * time.Second
)

var (
	ErrGameFinished  = errors.New("game is finished")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrUnknownAction = errors.New("unknown message type")
)

// Session est une partie identifiée par un code. Un seul plateau par code :
// tous les onglets ouverts sur ce code voient la même partie.
type Session struct {
	Code      string
	CreatedAt time.Time
	Board     *game.Board
	Clients   map[*websocket.Conn]bool
	Mu        sync.Mutex
}

// Message est l'enveloppe JSON échangée sur la WebSocket.
type Message struct {
	Type  string     `json:"type"`
	Code  string     `json:"code,omitempty"`
	X     int        `json:"x,omitempty"`
	Y     int        `json:"y,omitempty"`
	Game  *game.View `json:"game,omitempty"`
	Error string     `json:"error,omitempty"`
}

// Server sert les parties de démineur en HTTP + WebSocket.
type Server struct {
	defaults config.Config
	log      logrus.FieldLogger
	upgrader websocket.Upgrader

	sessionsMu sync.Mutex
	sessions   map[string]*Session
	rng        *mrand.Rand
}

// New crée un serveur dont les parties héritent par défaut des dimensions de cfg.
func New(cfg config.Config, log logrus.FieldLogger) *Server {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Server{
		defaults: cfg,
		log:      log,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		sessions: make(map[string]*Session),
		rng:      mrand.New(mrand.NewSource(seed)),
	}
}

// Register monte les routes sur mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/game/create", s.createHandler)
	mux.HandleFunc("/ws/", s.wsHandler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

// generateCode doit être appelé avec sessionsMu verrouillé.
func (s *Server) generateCode() string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	for {
		b := make([]byte, 6)
		for i := range b {
			b[i] = charset[s.rng.Intn(len(charset))]
		}
		if _, taken := s.sessions[string(b)]; !taken {
			return string(b)
		}
	}
}

// gameConfig lit width/height/mines dans la requête, par-dessus les valeurs par défaut.
func (s *Server) gameConfig(r *http.Request) (config.Config, error) {
	cfg := s.defaults
	q := r.URL.Query()
	params := []struct {
		name string
		dst  *int
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
		{"mines", &cfg.Mines},
	}
	for _, prm := range params {
		v := q.Get(prm.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, &config.ConfigError{Field: prm.name, Err: err}
		}
		*prm.dst = n
	}
	cfg.Normalize()
	return cfg, cfg.Validate()
}

// Create ouvre une nouvelle partie et retourne sa session.
func (s *Server) Create(cfg config.Config) (*Session, error) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	s.reapLocked(time.Now())
	b, err := game.New(s.rng, cfg.Width, cfg.Height, cfg.Mines)
	if err != nil {
		return nil, err
	}
	p := &Session{
		Code:      s.generateCode(),
		CreatedAt: time.Now(),
		Board:     b,
		Clients:   make(map[*websocket.Conn]bool),
	}
	s.sessions[p.Code] = p

	s.log.WithFields(logrus.Fields{
		"code":   p.Code,
		"width":  cfg.Width,
		"height": cfg.Height,
		"mines":  cfg.Mines,
	}).Info("✅ Nouvelle partie créée")
	return p, nil
}

func (s *Server) session(code string) (*Session, bool) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	p, ok := s.sessions[strings.ToUpper(code)]
	return p, ok
}

// Reap retire les parties créées depuis plus de sessionTTL et sans client
// connecté. Il retourne le nombre de parties retirées.
func (s *Server) Reap(now time.Time) int {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	return s.reapLocked(now)
}

// reapLocked suppose sessionsMu verrouillé.
func (s *Server) reapLocked(now time.Time) int {
	n := 0
	for code, p := range s.sessions {
		p.Mu.Lock()
		expired := len(p.Clients) == 0 && now.Sub(p.CreatedAt) > sessionTTL
		p.Mu.Unlock()
		if expired {
			delete(s.sessions, code)
			n++
		}
	}
	if n > 0 {
		s.log.WithField("count", n).Debug("parties expirées retirées")
	}
	return n
}

// forget retire p si plus aucun client n'y est connecté.
func (s *Server) forget(p *Session) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	p.Mu.Lock()
	idle := len(p.Clients) == 0
	p.Mu.Unlock()
	if idle && s.sessions[p.Code] == p {
		delete(s.sessions, p.Code)
		s.log.WithField("code", p.Code).Debug("partie oubliée")
	}
}

func (s *Server) createHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	cfg, err := s.gameConfig(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := s.Create(cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"code": p.Code})
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/ws/")
	p, exists := s.session(code)
	if !exists {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("WebSocket upgrade error")
		return
	}
	log := s.log.WithField("code", p.Code)

	p.Mu.Lock()
	p.Clients[conn] = true
	_ = p.send(conn, p.state())
	p.Mu.Unlock()
	log.Info("👥 Client connecté")

	go func() {
		defer func() {
			p.Mu.Lock()
			delete(p.Clients, conn)
			done := len(p.Clients) == 0
			p.Mu.Unlock()
			conn.Close()
			log.Info("Client déconnecté")
			if done {
				s.forget(p)
			}
		}()

		for {
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if err := s.handleMove(p, msg); err != nil {
				if errors.Is(err, ErrUnknownAction) {
					continue
				}
				p.Mu.Lock()
				_ = p.send(conn, Message{Type: "error", Code: p.Code, Error: err.Error()})
				p.Mu.Unlock()
			}
		}
	}()
}

// handleMove applique un coup et diffuse le nouvel état aux clients de la session.
func (s *Server) handleMove(p *Session, msg Message) error {
	if msg.Type != "reveal" {
		return fmt.Errorf("%q: %w", msg.Type, ErrUnknownAction)
	}

	p.Mu.Lock()
	defer p.Mu.Unlock()

	c := game.Coordinate{X: msg.X, Y: msg.Y}
	if p.finished() {
		return ErrGameFinished
	}
	if !p.Board.InBounds(c) {
		return fmt.Errorf("(%d,%d): %w", c.X, c.Y, ErrOutOfBounds)
	}

	outcome := p.Board.Reveal(c)
	st := p.state()
	s.log.WithFields(logrus.Fields{
		"code":    p.Code,
		"x":       c.X,
		"y":       c.Y,
		"outcome": outcome,
	}).Debug("coup joué")
	if st.Game.Finished {
		s.log.WithFields(logrus.Fields{"code": p.Code, "won": st.Game.Won}).Info("🏁 Partie terminée")
	}

	p.broadcast(st)
	return nil
}

// send écrit msg avec une échéance ; un client qui n'accepte pas l'écriture
// est retiré et sa connexion fermée. Suppose p.Mu verrouillé.
func (p *Session) send(conn *websocket.Conn, msg Message) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		delete(p.Clients, conn)
		conn.Close()
		return err
	}
	return nil
}

// broadcast suppose p.Mu verrouillé.
func (p *Session) broadcast(msg Message) {
	for conn := range p.Clients {
		_ = p.send(conn, msg)
	}
}

// state et finished supposent p.Mu verrouillé.
func (p *Session) state() Message {
	v := game.NewView(p.Board)
	return Message{Type: "state", Code: p.Code, Game: &v}
}

func (p *Session) finished() bool {
	return p.Board.IsDetonated() || p.Board.IsWon()
}
