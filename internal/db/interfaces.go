// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type DBClientInterface interface {
	Statement(ctx context.Context) sq.StatementBuilderType
	BeginTx(ctx context.Context) (context.Context, TxInterface, error)
	WithTx(ctx context.Context, fn func(context.Context) error) error
	Ping(ctx context.Context) error
	Close()
}

// TxRunnerInterface runs fn inside one transaction.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type TxInterface interface {
	Commit() error
	Rollback() error
	sq.BaseRunner
}
