package view

import "sync"

// Ticket выдаётся на каждую загрузку.
type Ticket struct {
	seq    uint64
	target string
}

func (t Ticket) Target() string {
	return t.target
}

// Guard отбрасывает устаревшие результаты: если view закрыт или после
// загрузки началась новая загрузка для другого target.
// Результаты нескольких загрузок одного target принимаются все,
// побеждает последний ответ.
type Guard struct {
	mu          sync.Mutex
	seq         uint64
	target      string
	targetSince uint64
	closed      bool
}

func (g *Guard) Begin(target string) Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seq++
	if g.seq == 1 || g.target != target {
		g.target = target
		g.targetSince = g.seq
	}
	return Ticket{seq: g.seq, target: target}
}

func (g *Guard) Accept(t Ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return !g.closed && t.target == g.target && t.seq >= g.targetSince
}

func (g *Guard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.closed = true
}

func (g *Guard) Closed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.closed
}
