package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cad/internal/structures"
)

type cacheMetricsTestInner struct {
	data map[string][]byte
}

func (c *cacheMetricsTestInner) Get(key string) ([]byte, bool) {
	v, ok := c.data[key]
	return v, ok
}
func (c *cacheMetricsTestInner) Set(key string, value []byte) {
	c.data[key] = value
}

func TestMetricsCacheProvider_Hit(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{"key1": []byte("val1")}}
	metrics := &mockMetrics{}
	cache := &MetricsCacheProvider{inner: inner, metrics: metrics}

	val, ok := cache.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, []byte("val1"), val)
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 0, metrics.misses)
}

func TestMetricsCacheProvider_Miss(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{}}
	metrics := &mockMetrics{}
	cache := &MetricsCacheProvider{inner: inner, metrics: metrics}

	val, ok := cache.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.Equal(t, 0, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
}

func TestMetricsCacheProvider_SetDelegates(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{}}
	cache := &MetricsCacheProvider{inner: inner, metrics: &mockMetrics{}}

	cache.Set("key1", []byte("val1"))
	assert.Equal(t, []byte("val1"), inner.data["key1"])
}

func TestNewInstrumentedCacheProvider_DisabledSkipsWrapping(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: false},
	}
	c := NewInstrumentedCacheProvider(conf, &cacheTestLogger{}, &mockMetrics{})
	assert.IsType(t, &noopCache{}, c)
}

func TestNewInstrumentedCacheProvider_EnabledWraps(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: true, Size: 1, TTL: 5 * time.Second},
	}
	metrics := &mockMetrics{}
	c := NewInstrumentedCacheProvider(conf, &cacheTestLogger{}, metrics)
	assert.IsType(t, &MetricsCacheProvider{}, c)

	c.Get("missing")
	assert.Equal(t, 1, metrics.misses)
}
