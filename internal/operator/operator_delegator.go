package operator

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// OperatorDelegator manages the queues, starts/stops Operators (workers),
// and enqueues items. Each worker owns one queue and actions are sharded
// onto queues by their key, so two actions against the same account can
// never interleave.
type OperatorDelegator struct {
	storage  *storage.Storage
	queues   []chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	queues := make([]chan ActionItem, numWorkers)
	for i := range queues {
		queues[i] = make(chan ActionItem, 1000)
	}
	return &OperatorDelegator{
		storage: s,
		queues:  queues,
	}
}

func (d *OperatorDelegator) Start() {
	for _, queue := range d.queues {
		d.wg.Add(1)
		op := NewOperator(d.storage, queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		for _, queue := range d.queues {
			close(queue)
		}
		d.wg.Wait()
	})
}

// Process enqueues the action and waits for it to finish. Once an action
// has started it runs to completion; cancelling ctx only abandons the wait.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.queueFor(action.Key()) <- item

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) queueFor(key string) chan ActionItem {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return d.queues[int(h.Sum32())%len(d.queues)]
}
