// Package shifts кеширует каталог смен юристов.
//
// Раньше каталог жил в изменяемых глобальных списках, заполняемых один раз
// на страницу; теперь это явный объект кеша с политикой fetch-if-empty,
// который передаётся владеющему сервису.
package shifts

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Loader загружает каталог смен из внешнего источника (LawyerService)
type Loader func(ctx context.Context, lawyerID int64, from, to string) ([]domain.Shift, error)

type entry struct {
	shifts    []domain.Shift
	fetchedAt time.Time
}

// Cache LRU-кеш каталогов смен с TTL
// Ключ - юрист + запрошенный период
type Cache struct {
	lru    *lru.Cache[string, *entry]
	ttl    time.Duration
	mu     sync.Mutex
	logger Logger
}

// New создает кеш на size записей с указанным TTL
func New(size int, ttl time.Duration, logger Logger) (*Cache, error) {
	c, err := lru.New[string, *entry](size)
	if err != nil {
		return nil, fmt.Errorf("shifts cache: %w", err)
	}

	return &Cache{
		lru:    c,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// FetchIfEmpty возвращает каталог смен из кеша, загружая его через load
// только при отсутствии или протухании записи. Ошибка загрузки не кешируется.
func (c *Cache) FetchIfEmpty(ctx context.Context, lawyerID int64, from, to string, load Loader) ([]domain.Shift, error) {
	key := cacheKey(lawyerID, from, to)

	c.mu.Lock()
	if e, ok := c.lru.Get(key); ok && time.Since(e.fetchedAt) < c.ttl {
		c.mu.Unlock()
		return e.shifts, nil
	}
	c.mu.Unlock()

	shifts, err := load(ctx, lawyerID, from, to)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.lru.Add(key, &entry{shifts: shifts, fetchedAt: time.Now()})
	c.mu.Unlock()

	c.logger.Info("shifts cache: refreshed catalog for lawyer=%d period=%s..%s (%d shifts)",
		lawyerID, from, to, len(shifts))
	return shifts, nil
}

// Invalidate сбрасывает все записи юриста
// Вызывается после изменения его расписания
func (c *Cache) Invalidate(lawyerID int64) {
	prefix := fmt.Sprintf("%d|", lawyerID)

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range c.lru.Keys() {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			c.lru.Remove(key)
		}
	}
}

func cacheKey(lawyerID int64, from, to string) string {
	return fmt.Sprintf("%d|%s|%s", lawyerID, from, to)
}
