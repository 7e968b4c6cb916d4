package service

import (
	"sync"
	"time"
)

// State — агрегат для health-эндпоинтов: соединение со стримом и свежесть тиков.
type State struct {
	mu          sync.RWMutex
	startedAt   time.Time
	wsConnected bool
	lastTick    time.Time
}

func NewState() *State {
	return &State{startedAt: time.Now()}
}

func (s *State) SetWSConnected(v bool) {
	s.mu.Lock()
	s.wsConnected = v
	s.mu.Unlock()
}

func (s *State) WSConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wsConnected
}

func (s *State) MarkTick() {
	s.mu.Lock()
	s.lastTick = time.Now()
	s.mu.Unlock()
}

func (s *State) LastTick() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastTick
}

func (s *State) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startedAt)
}

// Ready — стрим подключён и тики идут.
func (s *State) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wsConnected && !s.lastTick.IsZero()
}
