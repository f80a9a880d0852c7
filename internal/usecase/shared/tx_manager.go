package shared

import "context"

// RunInTx runs fn inside a write transaction and hands back its result.
func RunInTx[T any](ctx context.Context, uow UnitOfWork, fn func(ctx context.Context, tx Tx) (T, error)) (T, error) {
	var result T
	err := uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		v, err := fn(ctx, tx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// RunReadOnly is RunInTx for read-only snapshots.
func RunReadOnly[T any](ctx context.Context, uow UnitOfWork, fn func(ctx context.Context, reads CommandReads) (T, error)) (T, error) {
	var result T
	err := uow.WithinReadOnly(ctx, func(ctx context.Context, reads CommandReads) error {
		v, err := fn(ctx, reads)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
