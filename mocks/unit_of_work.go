package mocks

import (
	"context"

	"gstbill/internal/port"
)

// FakeUnitOfWork runs the callback directly against the given repositories.
// Err, when set, is returned without calling the callback.
type FakeUnitOfWork struct {
	Repos port.TxRepositories
	Err   error
	Calls int
}

func (u *FakeUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos port.TxRepositories) error) error {
	u.Calls++
	if u.Err != nil {
		return u.Err
	}
	return fn(ctx, u.Repos)
}
