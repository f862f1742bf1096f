package schedulingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeFetcher struct {
	calls int
	resp  *OpenSlotsResponse
	err   error
}

func (f *fakeFetcher) GetOpenSlots(_ context.Context, _ int64, _ string) (*OpenSlotsResponse, error) {
	f.calls++
	return f.resp, f.err
}

type fakeCache struct {
	data   map[string][]byte
	ttl    time.Duration
	getErr error
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	c.ttl = ttl
	return nil
}

func sampleResponse() *OpenSlotsResponse {
	return &OpenSlotsResponse{
		CompanyID: 3,
		Date:      "2026-10-20",
		Slots:     []TimeSlot{{ID: "a", StartTime: "09:00", EndTime: "09:30"}},
	}
}

func TestCachedClient_ReadThrough(t *testing.T) {
	fetcher := &fakeFetcher{resp: sampleResponse()}
	cache := newFakeCache()
	client := NewCachedClient(fetcher, cache, time.Minute, logger.NewNop())

	first, err := client.GetOpenSlots(context.Background(), 3, "2026-10-20")
	require.NoError(t, err)
	second, err := client.GetOpenSlots(context.Background(), 3, "2026-10-20")
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, time.Minute, cache.ttl)
	assert.Contains(t, cache.data, "scheduling:open-slots:3:2026-10-20")
}

func TestCachedClient_DifferentDatesAreSeparate(t *testing.T) {
	fetcher := &fakeFetcher{resp: sampleResponse()}
	client := NewCachedClient(fetcher, newFakeCache(), time.Minute, logger.NewNop())

	_, err := client.GetOpenSlots(context.Background(), 3, "2026-10-20")
	require.NoError(t, err)
	_, err = client.GetOpenSlots(context.Background(), 3, "2026-10-21")
	require.NoError(t, err)

	assert.Equal(t, 2, fetcher.calls)
}

func TestCachedClient_CacheFailuresAreIgnored(t *testing.T) {
	fetcher := &fakeFetcher{resp: sampleResponse()}
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	client := NewCachedClient(fetcher, cache, time.Minute, logger.NewNop())

	resp, err := client.GetOpenSlots(context.Background(), 3, "2026-10-20")
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 1)
}

func TestCachedClient_CorruptedEntryRefetched(t *testing.T) {
	fetcher := &fakeFetcher{resp: sampleResponse()}
	cache := newFakeCache()
	cache.data[cacheKey(3, "2026-10-20")] = []byte("not json")
	client := NewCachedClient(fetcher, cache, time.Minute, logger.NewNop())

	_, err := client.GetOpenSlots(context.Background(), 3, "2026-10-20")
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
}

func TestCachedClient_ErrorsAreNotCached(t *testing.T) {
	fetcher := &fakeFetcher{err: ErrCompanyNotFound}
	cache := newFakeCache()
	client := NewCachedClient(fetcher, cache, time.Minute, logger.NewNop())

	_, err := client.GetOpenSlots(context.Background(), 3, "2026-10-20")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
	assert.Empty(t, cache.data)
}
