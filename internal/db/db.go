package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// UpsertOptions describes an INSERT ... ON CONFLICT statement.
type UpsertOptions struct {
	ConflictColumns []string
	// UpdateColumns are overwritten from the excluded row; empty means DO NOTHING.
	UpdateColumns []string
	// UpdateWhere limits which conflicting rows are updated.
	UpdateWhere string
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func (f *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Create inserts a record or a pointer to a slice of records.
func (f *PostgresDB) Create(ctx context.Context, records any) error {
	if isEmptySlice(records) {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Upsert(ctx context.Context, records any, opts UpsertOptions) error {
	if isEmptySlice(records) {
		return nil
	}

	columns := make([]clause.Column, 0, len(opts.ConflictColumns))
	for _, c := range opts.ConflictColumns {
		columns = append(columns, clause.Column{Name: c})
	}

	onConflict := clause.OnConflict{Columns: columns}
	if len(opts.UpdateColumns) == 0 {
		onConflict.DoNothing = true
	} else {
		onConflict.DoUpdates = clause.AssignmentColumns(opts.UpdateColumns)
	}
	if opts.UpdateWhere != "" {
		onConflict.Where = clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: opts.UpdateWhere}}}
	}

	if err := f.DB.WithContext(ctx).Clauses(onConflict).Create(records).Error; err != nil {
		return fmt.Errorf("upsert to table: %w", err)
	}

	return nil
}

// Save updates every column of record by primary key.
func (f *PostgresDB) Save(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

func (f *PostgresDB) DeleteBy(ctx context.Context, model any, column string, value any) error {
	query := fmt.Sprintf("%s = ?", column)
	if err := f.DB.WithContext(ctx).Where(query, value).Delete(model).Error; err != nil {
		return fmt.Errorf("deleting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// FindOne returns the first row matching every condition.
func (f *PostgresDB) FindOne(ctx context.Context, entity any, conds map[string]any) error {
	err := f.DB.WithContext(ctx).Where(conds).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("finding record: %w", err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func isEmptySlice(records any) bool {
	v := reflect.ValueOf(records)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return v.Kind() == reflect.Slice && v.Len() == 0
}
