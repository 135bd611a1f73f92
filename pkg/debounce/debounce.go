package debounce

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded возвращается вызову, который был вытеснен более свежим.
var ErrSuperseded = errors.New("call superseded by a newer one")

/*
latest-wins коалесцирование: при шквале одинаковых запросов выполняется
и доставляет результат только самый свежий. Предыдущий in-flight вызов
отменяется через его контекст, а его результат отбрасывается.
*/

type Coalescer[T any] struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

// Do выполняет fn с дочерним контекстом, который отменяется при приходе
// следующего вызова. Вытесненный вызов получает ErrSuperseded независимо
// от того, что вернула его fn.
func (c *Coalescer[T]) Do(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	result, err := fn(callCtx)

	c.mu.Lock()
	latest := seq == c.seq
	if latest {
		c.cancel = nil
	}
	c.mu.Unlock()

	// cancel своего контекста безопасен в обоих случаях: у вытесненного
	// вызова он уже отменен, у последнего - больше не нужен
	cancel()

	if !latest {
		var zero T
		return zero, ErrSuperseded
	}
	return result, err
}

// Group - набор независимых Coalescer, разделенных строковым ключом.
// Вызовы с разными ключами никогда не вытесняют друг друга; внутри
// одного ключа действует та же latest-wins семантика, что и у Coalescer.
type Group[T any] struct {
	mu    sync.Mutex
	calls map[string]*groupCall
}

type groupCall struct {
	cancel   context.CancelFunc
	seq      uint64
	inflight int
}

// Do выполняет fn под ключом key. Запись ключа живет только пока по нему
// есть in-flight вызовы, так что набор ключей не накапливается.
func (g *Group[T]) Do(ctx context.Context, key string, fn func(context.Context) (T, error)) (T, error) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*groupCall)
	}
	call, ok := g.calls[key]
	if !ok {
		call = &groupCall{}
		g.calls[key] = call
	}
	if call.cancel != nil {
		call.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	call.cancel = cancel
	call.seq++
	call.inflight++
	seq := call.seq
	g.mu.Unlock()

	result, err := fn(callCtx)

	g.mu.Lock()
	latest := seq == call.seq
	if latest {
		call.cancel = nil
	}
	call.inflight--
	if call.inflight == 0 {
		delete(g.calls, key)
	}
	g.mu.Unlock()

	cancel()

	if !latest {
		var zero T
		return zero, ErrSuperseded
	}
	return result, err
}
