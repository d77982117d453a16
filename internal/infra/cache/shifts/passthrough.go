package shifts

import (
	"context"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
)

// Passthrough реализация кеша без хранения: каждый вызов идет в загрузчик.
// Используется при отключенном кеше в конфигурации
type Passthrough struct{}

// NewPassthrough создает passthrough-кеш
func NewPassthrough() *Passthrough {
	return &Passthrough{}
}

// FetchIfEmpty всегда загружает каталог через load
func (Passthrough) FetchIfEmpty(ctx context.Context, lawyerID int64, from, to string, load Loader) ([]domain.Shift, error) {
	return load(ctx, lawyerID, from, to)
}

// Invalidate ничего не делает
func (Passthrough) Invalidate(int64) {}
