package idgen

import "github.com/google/uuid"

// UUIDGenerator генерирует идентификаторы бронирований (UUID v4)
type UUIDGenerator struct{}

// NewID возвращает новый идентификатор
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
