package token

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// DefaultIteratorBatch is a number of items fetched from the session iterator
// at once.
const DefaultIteratorBatch = 100

// PendingRefundOf returns refund scheduled for the owner, nil if there is
// none.
func (c *ContractReader) PendingRefundOf(owner util.Uint160) (*RefundRequest, error) {
	item, err := unwrap.Item(c.invoker.Call(c.hash, "pendingRefund", owner))
	if err != nil {
		return nil, err
	}
	if _, ok := item.(stackitem.Null); ok {
		return nil, nil
	}

	return itemToRefundRequest(item, nil)
}

// FetchPendingRefunds reads all scheduled refunds through the session
// iterator. Non-positive batch means DefaultIteratorBatch.
func (c *ContractReader) FetchPendingRefunds(batch int) ([]RefundRequest, error) {
	if batch <= 0 {
		batch = DefaultIteratorBatch
	}

	sess, iter, err := c.PendingRefunds()
	if err != nil {
		return nil, fmt.Errorf("open pending refunds iterator: %w", err)
	}
	if iter.ID != nil {
		defer func() { _ = c.invoker.TerminateSession(sess) }()
	}

	var res []RefundRequest
	for {
		items, err := c.invoker.TraverseIterator(sess, &iter, batch)
		if err != nil {
			return nil, fmt.Errorf("traverse pending refunds: %w", err)
		}

		for i := range items {
			var req RefundRequest
			if err := req.FromStackItem(items[i]); err != nil {
				return nil, fmt.Errorf("invalid refund request #%d: %w", len(res), err)
			}
			res = append(res, req)
		}

		if len(items) < batch {
			return res, nil
		}
	}
}
