package service

import (
	"fmt"

	"breakout_bot/internal/modules/config"
)

// Registry — именованные стратегии. Новая стратегия добавляется сюда,
// контроллер сделок при этом не меняется.
type Registry struct {
	engines map[string]Engine
}

func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{engines: make(map[string]Engine)}
	r.Register(NewVolatilityBreakout(cfg.HoldFor))
	return r
}

func (r *Registry) Register(e Engine) {
	r.engines[e.Name()] = e
}

func (r *Registry) Get(name string) (Engine, error) {
	e, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
	return e, nil
}

// NewEngine отдаёт активную стратегию из конфига.
func NewEngine(cfg *config.Config, r *Registry) (Engine, error) {
	return r.Get(cfg.Strategy)
}
