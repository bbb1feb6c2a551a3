package commands

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// orderMutation is the shared flow of every order-mutating handler: load the
// aggregate, run the domain operation, write the result with a guarded
// update and persist the queued notification records in the same
// transaction, then broadcast after commit.
type orderMutation struct {
	uowFactory  OrderUoWFactory
	broadcaster *Broadcaster
}

func (m orderMutation) apply(ctx context.Context, orderID kernel.UUID,
	fn func(aggregate *order.Order) error) error {
	uow := m.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	// The guarded update below races on the state observed here. A
	// concurrent request that moved the order first wins; this one gets a
	// status conflict from the repository.
	expectedStatus := aggregate.Status()
	expectedRejection := aggregate.Rejection()
	mark := len(aggregate.PendingNotifications())

	if err = fn(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expectedStatus, expectedRejection); err != nil {
		return err
	}

	queued := aggregate.PendingNotifications()[mark:]
	if len(queued) > 0 {
		if err = uow.NotificationRepository().Add(ctx, queued); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if m.broadcaster != nil {
		m.broadcaster.Broadcast(ctx, queued)
	}
	return nil
}
