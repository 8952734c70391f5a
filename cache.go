package bigfloat

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// radixCache coordinates per-radix cached state (the Chudnovsky split
// accumulated so far in pi.go, a cached ln(radix) in log.go). Rather than
// one coarse lock shared across every radix, each radix gets its own
// token, so computing pi in radix 16 never blocks a concurrent request for
// radix 10. Identical concurrent requests (same radix, same precision
// tier) are additionally coalesced through singleflight so that N
// goroutines asking for the same (radix, precision) pair only pay for the
// computation once.
type radixCache struct {
	name   string
	tokens sync.Map // radix (int) -> *sync.Mutex
	state  sync.Map // radix (int) -> cached value, type owned by the caller
	group  singleflight.Group
}

func newRadixCache(name string) *radixCache {
	return &radixCache{name: name}
}

func (c *radixCache) token(radix int) *sync.Mutex {
	v, _ := c.tokens.LoadOrStore(radix, new(sync.Mutex))
	return v.(*sync.Mutex)
}

func (c *radixCache) load(radix int) (any, bool) {
	return c.state.Load(radix)
}

func (c *radixCache) store(radix int, v any) {
	c.state.Store(radix, v)
}

// withRadix runs fn while holding radix's token, having first coalesced
// identical concurrent requests sharing (radix, key) through singleflight.
func (c *radixCache) withRadix(radix int, key string, fn func() (any, error)) (any, error) {
	token := c.token(radix)
	sfKey := fmt.Sprintf("%s:%d:%s", c.name, radix, key)
	v, err, shared := c.group.Do(sfKey, func() (any, error) {
		token.Lock()
		defer token.Unlock()
		return fn()
	})
	if shared {
		pkgLogger.Debugw("cache request coalesced", "cache", c.name, "radix", radix, "key", key)
	}
	return v, err
}
