package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zjrosen/pagekit/internal/log"
)

// Background runs registrations the sequence deliberately does not await.
// Later steps never wait on them; Wait reports how they ended.
type Background struct {
	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
}

// Go starts fn on its own goroutine. fn sees ctx's values but not its
// cancellation, so it outlives the sequence that started it.
func (b *Background) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if err := fn(context.WithoutCancel(ctx)); err != nil {
			log.ErrorErr(log.CatBoot, "Background registration failed", err, "step", name)
			b.mu.Lock()
			b.errs = append(b.errs, fmt.Errorf("%s: %w", name, err))
			b.mu.Unlock()
			return
		}
		log.Debug(log.CatBoot, "Background registration complete", "step", name)
	}()
}

// Wait blocks until every background registration finishes and joins their errors.
func (b *Background) Wait() error {
	b.wg.Wait()
	b.mu.Lock()
	defer b.mu.Unlock()
	return errors.Join(b.errs...)
}
