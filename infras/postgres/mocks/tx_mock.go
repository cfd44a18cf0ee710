package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lodge/infras/postgres"
)

type txerImpl struct {
	err error
}

// WithTransaction implements postgres.Txer. The callback runs with a nil
// transaction handle; repository calls inside it are expected to be mocked.
func (t *txerImpl) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	if t.err != nil {
		return t.err
	}

	return fn(nil)
}

func NewTxer() postgres.Txer {
	return &txerImpl{}
}

func NewTxerWithError(err error) postgres.Txer {
	return &txerImpl{err: err}
}
