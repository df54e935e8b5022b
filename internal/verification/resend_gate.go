package verification

import (
	"math"
	"sync"
	"time"
)

// ResendGate - client-side ограничение повторной отправки кода.
// Чистое состояние (deadline + инжектируемые часы); опциональный
// тикер для UI живет отдельно и обязан останавливаться при unmount.
type ResendGate struct {
	mu       sync.Mutex
	cooldown time.Duration
	deadline time.Time
	now      func() time.Time
}

func NewResendGate(cooldown time.Duration) *ResendGate {
	return &ResendGate{
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Arm запускает отсчет: повторная отправка недоступна до deadline
func (g *ResendGate) Arm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deadline = g.now().Add(g.cooldown)
}

// CanResend - true, когда отсчет не идет
func (g *ResendGate) CanResend() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.now().Before(g.deadline)
}

// Remaining возвращает оставшиеся целые секунды (0 - контрол доступен)
func (g *ResendGate) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	left := g.deadline.Sub(g.now())
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

// StartCountdown запускает тикер, дергающий onTick раз в интервал с
// оставшимися секундами. Возвращенный stop ОБЯЗАН быть вызван при
// unmount компонента - иначе горутина переживет view.
func (g *ResendGate) StartCountdown(interval time.Duration, onTick func(remaining int)) (stop func()) {
	done := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				remaining := g.Remaining()
				onTick(remaining)
				if remaining == 0 {
					return
				}
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}
