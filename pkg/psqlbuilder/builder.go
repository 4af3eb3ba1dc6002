package psqlbuilder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Dialect SQL-диалект хранилища
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect проверяет имя диалекта
func ParseDialect(name string) (Dialect, error) {
	switch Dialect(name) {
	case Postgres, SQLite:
		return Dialect(name), nil
	default:
		return "", fmt.Errorf("psqlbuilder: unsupported dialect %q", name)
	}
}

// For возвращает squirrel builder с плейсхолдерами нужного диалекта
// PostgreSQL - $1, $2...; SQLite - ?
func For(d Dialect) squirrel.StatementBuilderType {
	if d == SQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// SupportsRowLocks сообщает, поддерживает ли диалект SELECT ... FOR UPDATE
func (d Dialect) SupportsRowLocks() bool {
	return d == Postgres
}
