package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/morningli/linked_lists/pkg/common"
	"github.com/morningli/linked_lists/pkg/functional"
	"github.com/morningli/linked_lists/pkg/queue"
	"github.com/morningli/linked_lists/pkg/stack"
)

var (
	errUnknownStructure = errors.New("unknown structure")
	errOrderViolated    = errors.New("order violated")
)

// checkEvery is how many operations a worker runs between context checks.
const checkEvery = 1024

// worker owns one container for its whole lifetime.
type worker struct {
	id  int
	ops int
	rec common.Recorder
}

func (w *worker) timed(op string, f func()) {
	start := time.Now()
	f()
	w.rec.Record(op, time.Since(start))
}

// runStack pushes 0..ops-1 and expects them back in reverse.
func (w *worker) runStack(ctx context.Context) error {
	s := stack.New[int]()
	for i := 0; i < w.ops; i++ {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		w.timed("stack.push", func() { s.Push(i) })
	}
	for i := w.ops - 1; i >= 0; i-- {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		var (
			v  int
			ok bool
		)
		w.timed("stack.pop", func() { v, ok = s.Pop() })
		if !ok || v != i {
			return fmt.Errorf("worker %d: stack pop got (%d, %t), want %d: %w", w.id, v, ok, i, errOrderViolated)
		}
	}
	if _, ok := s.Pop(); ok {
		return fmt.Errorf("worker %d: stack not empty after %d pops: %w", w.id, w.ops, errOrderViolated)
	}
	return nil
}

// runQueue enqueues 0..ops-1 and expects them back in order.
func (w *worker) runQueue(ctx context.Context) error {
	q := queue.New[int]()
	for i := 0; i < w.ops; i++ {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		w.timed("queue.enqueue", func() { q.Enqueue(i) })
	}
	for i := 0; i < w.ops; i++ {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		var (
			v  int
			ok bool
		)
		w.timed("queue.dequeue", func() { v, ok = q.Dequeue() })
		if !ok || v != i {
			return fmt.Errorf("worker %d: dequeue got (%d, %t), want %d: %w", w.id, v, ok, i, errOrderViolated)
		}
	}
	if _, ok := q.Dequeue(); ok {
		return fmt.Errorf("worker %d: queue not empty after %d dequeues: %w", w.id, w.ops, errOrderViolated)
	}
	return nil
}

// runList keeps every version alive while pushing and then checks that
// popping walks back through them.
func (w *worker) runList(ctx context.Context) error {
	versions := make([]functional.List[int], 0, w.ops+1)
	l := functional.New[int]()
	versions = append(versions, l)
	for i := 0; i < w.ops; i++ {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		w.timed("list.push", func() { l = l.Push(i) })
		versions = append(versions, l)
	}
	for i := w.ops - 1; i >= 0; i-- {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		var (
			v  int
			ok bool
		)
		w.timed("list.pop", func() { v, l, ok = l.Pop() })
		if !ok || v != i || l.Len() != versions[i].Len() {
			return fmt.Errorf("worker %d: list pop got (%d, %t), want %d: %w", w.id, v, ok, i, errOrderViolated)
		}
	}
	if top, ok := versions[w.ops].Peek(); w.ops > 0 && (!ok || top != w.ops-1) {
		return fmt.Errorf("worker %d: newest version changed: %w", w.id, errOrderViolated)
	}
	return nil
}

func (w *worker) run(ctx context.Context, structure string) error {
	switch structure {
	case "stack":
		return w.runStack(ctx)
	case "queue":
		return w.runQueue(ctx)
	case "list":
		return w.runList(ctx)
	}
	return fmt.Errorf("%q: %w", structure, errUnknownStructure)
}

// runWorkload starts workerNum workers on structure, each with its own
// container, and waits for all of them. The first failure cancels the rest.
func runWorkload(ctx context.Context, structure string, workerNum, ops int, rec common.Recorder) error {
	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workerNum; i++ {
		w := &worker{id: i, ops: ops, rec: rec}
		eg.Go(func() error {
			log.Debugf("worker %d start, structure:%s, ops:%d", w.id, structure, w.ops)
			return w.run(ctx, structure)
		})
	}
	return eg.Wait()
}
