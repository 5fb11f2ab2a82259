package repository

import (
	"context"

	"payoutd/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Create(ctx context.Context, records any) error
	Upsert(ctx context.Context, records any, opts db.UpsertOptions) error
	Save(ctx context.Context, record any) error
	DeleteBy(ctx context.Context, model any, column string, value any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	FindOne(ctx context.Context, entity any, conds map[string]any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
}
