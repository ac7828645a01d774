package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemCacheSetGet(t *testing.T) {
	mc := NewMemCache()
	defer mc.Close()

	mc.Set("key", "value", time.Minute)

	assert.Equal(t, "value", mc.Get("key"))
	assert.Nil(t, mc.Get("missing"))
}

func TestMemCacheExpiration(t *testing.T) {
	mc := NewMemCache()
	defer mc.Close()

	mc.Set("key", "value", -time.Second)

	assert.Nil(t, mc.Get("key"))
}
