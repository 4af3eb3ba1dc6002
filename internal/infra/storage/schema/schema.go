package schema

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/campus-facility-booking/pkg/dbmetrics"
	"github.com/m04kA/campus-facility-booking/pkg/psqlbuilder"
)

// ErrApply возвращается при ошибке применения схемы
var ErrApply = errors.New("schema: failed to apply")

//go:embed postgres.sql
var postgresSchema string

//go:embed sqlite.sql
var sqliteSchema string

// Apply создает таблицы и индексы, если их еще нет
func Apply(ctx context.Context, db dbmetrics.DBExecutor, dialect psqlbuilder.Dialect) error {
	source := postgresSchema
	if dialect == psqlbuilder.SQLite {
		source = sqliteSchema
	}

	for _, stmt := range statements(source) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %v", ErrApply, err)
		}
	}

	return nil
}

// statements режет скрипт на отдельные выражения (драйверы не везде принимают несколько за раз)
func statements(source string) []string {
	parts := strings.Split(source, ";")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if stmt := strings.TrimSpace(part); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}
