package verification

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock - управляемые часы для проверки deadline без реального сна
type fakeClock struct {
	mu  sync.Mutex
	cur time.Time
}

func (f *fakeClock) now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cur
}

func (f *fakeClock) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cur = f.cur.Add(d)
}

func newGateWithClock(cooldown time.Duration) (*ResendGate, *fakeClock) {
	clock := &fakeClock{cur: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)}
	g := NewResendGate(cooldown)
	g.now = clock.now
	return g, clock
}

func TestResendGate_OpenUntilArmed(t *testing.T) {
	g, _ := newGateWithClock(60 * time.Second)

	assert.True(t, g.CanResend())
	assert.Equal(t, 0, g.Remaining())
}

func TestResendGate_ArmBlocksUntilDeadline(t *testing.T) {
	g, clock := newGateWithClock(60 * time.Second)

	g.Arm()
	assert.False(t, g.CanResend())
	assert.Equal(t, 60, g.Remaining())

	clock.advance(30 * time.Second)
	assert.False(t, g.CanResend())
	assert.Equal(t, 30, g.Remaining())

	clock.advance(30 * time.Second)
	assert.True(t, g.CanResend())
	assert.Equal(t, 0, g.Remaining())
}

func TestResendGate_RemainingRoundsUp(t *testing.T) {
	g, clock := newGateWithClock(60 * time.Second)
	g.Arm()

	// 59.3 секунды до deadline показываются как 60
	clock.advance(700 * time.Millisecond)
	assert.Equal(t, 60, g.Remaining())
}

func TestResendGate_RearmRestartsCountdown(t *testing.T) {
	g, clock := newGateWithClock(60 * time.Second)

	g.Arm()
	clock.advance(60 * time.Second)
	assert.True(t, g.CanResend())

	g.Arm()
	assert.False(t, g.CanResend())
	assert.Equal(t, 60, g.Remaining())
}

func TestResendGate_CountdownTicksAndStops(t *testing.T) {
	// Здесь реальные часы: тикер интеграционно завязан на time.Ticker
	g := NewResendGate(30 * time.Millisecond)
	g.Arm()

	ticks := make(chan int, 16)
	stop := g.StartCountdown(10*time.Millisecond, func(remaining int) {
		ticks <- remaining
	})
	defer stop()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case remaining := <-ticks:
			if remaining == 0 {
				return // горутина сама завершилась на нуле
			}
		case <-deadline:
			t.Fatal("отсчет не дошел до нуля")
		}
	}
}

func TestResendGate_StopIsIdempotent(t *testing.T) {
	g := NewResendGate(time.Minute)
	g.Arm()

	stop := g.StartCountdown(10*time.Millisecond, func(int) {})
	stop()
	stop() // повторный вызов не паникует
}
