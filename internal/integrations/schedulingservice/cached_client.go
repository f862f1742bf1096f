package schedulingservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const cacheKeyPrefix = "scheduling:open-slots:"

// CachedClient read-through кеш поверх клиента сервиса расписаний
// Ошибки кеша не ломают запрос: при недоступности кеша идем напрямую в сервис
type CachedClient struct {
	next  SlotsFetcher
	cache Cache
	ttl   time.Duration
	log   Logger
}

// NewCachedClient создает кеширующую обертку
func NewCachedClient(next SlotsFetcher, cache Cache, ttl time.Duration, log Logger) *CachedClient {
	return &CachedClient{
		next:  next,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// GetOpenSlots возвращает слоты из кеша или загружает их и кладет в кеш
func (c *CachedClient) GetOpenSlots(ctx context.Context, companyID int64, date string) (*OpenSlotsResponse, error) {
	key := cacheKey(companyID, date)

	if cached, ok := c.lookup(ctx, key); ok {
		return cached, nil
	}

	resp, err := c.next.GetOpenSlots(ctx, companyID, date)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, resp)
	return resp, nil
}

func (c *CachedClient) lookup(ctx context.Context, key string) (*OpenSlotsResponse, bool) {
	data, found, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("GetOpenSlots: cache read failed, key=%s: %v", key, err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var resp OpenSlotsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.log.Warn("GetOpenSlots: corrupted cache entry, key=%s: %v", key, err)
		return nil, false
	}

	return &resp, true
}

func (c *CachedClient) store(ctx context.Context, key string, resp *OpenSlotsResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		c.log.Warn("GetOpenSlots: failed to encode cache entry, key=%s: %v", key, err)
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.log.Warn("GetOpenSlots: cache write failed, key=%s: %v", key, err)
	}
}

func cacheKey(companyID int64, date string) string {
	return fmt.Sprintf("%s%d:%s", cacheKeyPrefix, companyID, date)
}
