package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/cache"
	mock_logger "github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger/mock"
	mock_metric "github.com/leohenricardoso/encomenda-zap-sub000/pkg/metric/mock"

	"github.com/golang/mock/gomock"
)

func newTestCache(t *testing.T, capacity int) *cache.LRUCache[int, string] {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockLogger := mock_logger.NewMockLogger(ctrl)
	mockMetrics := mock_metric.NewMockCache(ctrl)

	mockMetrics.EXPECT().Hit(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().Miss(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().Eviction(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().Size(gomock.Any(), gomock.Any()).AnyTimes()

	c, err := cache.NewLRUCache[int, string](capacity, mockLogger, mockMetrics)
	if err != nil {
		t.Fatalf("NewLRUCache: %v", err)
	}
	return c
}

type cacheOperation struct {
	op    string
	key   int
	value string
}

func TestLRUCache_GetPut(t *testing.T) {
	testCases := []struct {
		desc     string
		capacity int
		ops      []cacheOperation
		results  map[int]string
		missing  []int
		len      int
	}{
		{
			desc:     "BasicGetPut",
			capacity: 2,
			ops: []cacheOperation{
				{"put", 1, "one"},
				{"put", 2, "two"},
			},
			results: map[int]string{1: "one", 2: "two"},
			len:     2,
		},
		{
			desc:     "LRUEviction",
			capacity: 2,
			ops: []cacheOperation{
				{"put", 1, "one"},
				{"put", 2, "two"},
				{"get", 1, ""},
				{"put", 3, "three"},
			},
			results: map[int]string{1: "one", 3: "three"},
			missing: []int{2},
			len:     2,
		},
		{
			desc:     "UpdateExistingKey",
			capacity: 2,
			ops: []cacheOperation{
				{"put", 1, "one"},
				{"put", 2, "two"},
				{"put", 1, "uno"},
			},
			results: map[int]string{1: "uno", 2: "two"},
			len:     2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			c := newTestCache(t, tc.capacity)

			for _, op := range tc.ops {
				switch op.op {
				case "put":
					c.Put(op.key, op.value, 0)
				case "get":
					c.Get(op.key)
				}
			}

			for key, want := range tc.results {
				got, ok := c.Get(key)
				if !ok || got != want {
					t.Errorf("Get(%d) = %q, %v; want %q, true", key, got, ok, want)
				}
			}
			for _, key := range tc.missing {
				if _, ok := c.Get(key); ok {
					t.Errorf("Get(%d) = hit; want miss", key)
				}
			}
			if c.Len() != tc.len {
				t.Errorf("Len() = %d; want %d", c.Len(), tc.len)
			}
		})
	}
}

func TestLRUCache_TTL(t *testing.T) {
	testCases := []struct {
		desc  string
		ttl   time.Duration
		sleep time.Duration
		ok    bool
	}{
		{desc: "TTLNotExpired", ttl: 200 * time.Millisecond, sleep: 100 * time.Millisecond, ok: true},
		{desc: "TTLExpired", ttl: 100 * time.Millisecond, sleep: 200 * time.Millisecond, ok: false},
		{desc: "NoTTL", ttl: 0, sleep: 300 * time.Millisecond, ok: true},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			c := newTestCache(t, 1)
			c.Put(1, "one", tc.ttl)
			time.Sleep(tc.sleep)

			if _, ok := c.Get(1); ok != tc.ok {
				t.Errorf("Get() ok = %v; want %v", ok, tc.ok)
			}
		})
	}
}

func TestLRUCache_Delete(t *testing.T) {
	t.Parallel()

	c := newTestCache(t, 4)
	c.Put(1, "one", 0)
	c.Put(2, "two", 0)

	c.Delete(1)

	if _, ok := c.Get(1); ok {
		t.Error("Get(1) = hit after Delete; want miss")
	}
	if _, ok := c.Get(2); !ok {
		t.Error("Get(2) = miss; Delete must not touch other keys")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1", c.Len())
	}

	// Deleting an absent key is a no-op.
	c.Delete(99)
	if c.Len() != 1 {
		t.Errorf("Len() after deleting absent key = %d; want 1", c.Len())
	}
}

func TestLRUCache_OnEvicted(t *testing.T) {
	testCases := []struct {
		desc        string
		capacity    int
		puts        []int
		purge       bool
		evictedKeys []int
		finalLen    int
	}{
		{
			desc:        "SingleEviction",
			capacity:    2,
			puts:        []int{1, 2, 3},
			evictedKeys: []int{1},
			finalLen:    2,
		},
		{
			desc:        "MultipleEvictions",
			capacity:    1,
			puts:        []int{1, 2, 3},
			evictedKeys: []int{1, 2},
			finalLen:    1,
		},
		{
			desc:        "PurgeEvictions",
			capacity:    2,
			puts:        []int{1, 2},
			purge:       true,
			evictedKeys: []int{1, 2},
			finalLen:    0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			var (
				mu          sync.Mutex
				evictedKeys []int
			)

			c := newTestCache(t, tc.capacity)
			c.SetOnEvicted(func(key int, _ string) {
				mu.Lock()
				defer mu.Unlock()
				evictedKeys = append(evictedKeys, key)
			})

			for _, key := range tc.puts {
				c.Put(key, "value", 0)
			}
			if tc.purge {
				c.Purge()
			}

			mu.Lock()
			defer mu.Unlock()

			if len(evictedKeys) != len(tc.evictedKeys) {
				t.Fatalf("evicted count = %d; want %d", len(evictedKeys), len(tc.evictedKeys))
			}
			for i, key := range evictedKeys {
				if key != tc.evictedKeys[i] {
					t.Errorf("evictedKeys[%d] = %d; want %d", i, key, tc.evictedKeys[i])
				}
			}
			if c.Len() != tc.finalLen {
				t.Errorf("Len() = %d; want %d", c.Len(), tc.finalLen)
			}
		})
	}
}

func TestLRUCache_NewLRUCache(t *testing.T) {
	testCases := []struct {
		desc      string
		capacity  int
		wantError bool
	}{
		{"NegativeCapacity", -1, true},
		{"ZeroCapacity", 0, true},
		{"PositiveCapacity", 10, false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			mockLogger := mock_logger.NewMockLogger(ctrl)
			mockMetrics := mock_metric.NewMockCache(ctrl)

			_, err := cache.NewLRUCache[int, string](tc.capacity, mockLogger, mockMetrics)
			if (err != nil) != tc.wantError {
				t.Errorf("NewLRUCache() error = %v, wantError %v", err, tc.wantError)
			}
		})
	}
}
