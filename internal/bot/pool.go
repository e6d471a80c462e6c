package bot

import (
	"context"
	"sync"
)

// Pool runs events on a fixed set of workers. Events of one chat always land
// on the same worker and are handled in arrival order; different chats
// interleave.
type Pool struct {
	queues []chan Event
	handle func(context.Context, Event)
	wg     sync.WaitGroup
}

func NewPool(workers, buffer int, handle func(context.Context, Event)) *Pool {
	if workers <= 0 {
		workers = 1
	}
	queues := make([]chan Event, workers)
	for i := range queues {
		queues[i] = make(chan Event, buffer)
	}
	return &Pool{queues: queues, handle: handle}
}

// Start launches the workers. Handling is detached from ctx cancellation so
// queued events still finish on shutdown.
func (p *Pool) Start(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	for _, q := range p.queues {
		p.wg.Add(1)
		go func(q <-chan Event) {
			defer p.wg.Done()
			for ev := range q {
				p.handle(ctx, ev)
			}
		}(q)
	}
}

// Submit queues ev on its chat's worker. It returns false if ctx is done
// first.
func (p *Pool) Submit(ctx context.Context, ev Event) bool {
	select {
	case p.queues[p.index(ev.ChatID)] <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop closes the queues and waits for the workers to drain them. Submit must
// not be called afterwards.
func (p *Pool) Stop() {
	for _, q := range p.queues {
		close(q)
	}
	p.wg.Wait()
}

func (p *Pool) index(chatID int64) int {
	n := int64(len(p.queues))
	i := chatID % n
	if i < 0 {
		i += n
	}
	return int(i)
}
