package locale

import "sync"

// Theme carries the layout direction. It is only driven by Preference and
// is never persisted.
type Theme struct {
	mu        sync.RWMutex
	direction Direction
}

func NewTheme() *Theme {
	return &Theme{direction: LTR}
}

// SetDirection recomputes the direction from lang.
func (t *Theme) SetDirection(lang Language) {
	t.mu.Lock()
	t.direction = DirectionOf(lang)
	t.mu.Unlock()
}

func (t *Theme) Direction() Direction {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.direction
}
