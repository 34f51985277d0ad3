package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-stackqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-stackqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-stackqueue/pkg/settings"
)

const component = "queue"

// runDemo enqueues every configured item, then dequeues the same number of
// items, writing one line per step to out.
func runDemo(cfg settings.Queue, out io.Writer, log *zap.Logger) (err error) {
	q, err := queue.New(cfg.Capacity)
	if err != nil {
		return apperr.MapError(component, err, apperr.CodeQueueCreate, apperr.MsgCreateFailed, apperr.ExitFailure)
	}
	defer func() {
		if rerr := q.Release(); rerr != nil && err == nil {
			err = apperr.MapError(component, rerr, apperr.CodeQueueInternal, apperr.MsgReleaseFailed, apperr.ExitFailure)
		}
	}()
	log.Debug("queue created", zap.Int("capacity", q.Capacity()))

	for _, item := range cfg.Items {
		if err := q.Enqueue(item); err != nil {
			return apperr.MapError(component, err, codeFor(err), apperr.MsgEnqueueFailed, apperr.ExitFailure)
		}
		fmt.Fprintf(out, "%d enqueued onto queue\n", item)
		log.Debug("enqueued", zap.Int("item", item), zap.Int("len", q.Len()))
	}

	for range cfg.Items {
		item, err := q.Dequeue()
		if err != nil {
			return apperr.MapError(component, err, codeFor(err), apperr.MsgDequeueFailed, apperr.ExitFailure)
		}
		fmt.Fprintf(out, "%d dequeued from queue\n", item)
		log.Debug("dequeued", zap.Int("item", item), zap.Int("len", q.Len()))
	}

	log.Info("demo finished", zap.Int("items", len(cfg.Items)))
	return nil
}

func codeFor(err error) int {
	switch {
	case errors.Is(err, queue.ErrQueueFull):
		return apperr.CodeQueueFull
	case errors.Is(err, queue.ErrQueueEmpty):
		return apperr.CodeQueueEmpty
	default:
		return apperr.CodeQueueInternal
	}
}
