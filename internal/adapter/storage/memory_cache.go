package storage

import (
	"sync"

	"storefront/internal/core/domain"
)

// MemoryCartCache is the single-slot cart cache. It holds at most one cart;
// a Get for any other user misses, which is what invalidates the slot when
// the current user changes.
type MemoryCartCache struct {
	mu   sync.RWMutex
	cart *domain.Cart
}

func NewMemoryCartCache() *MemoryCartCache {
	return &MemoryCartCache{}
}

func (c *MemoryCartCache) Get(userID int64) (*domain.Cart, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cart == nil || c.cart.User.ID != userID {
		return nil, false
	}
	return c.cart, true
}

func (c *MemoryCartCache) Put(cart *domain.Cart) {
	c.mu.Lock()
	c.cart = cart
	c.mu.Unlock()
}

func (c *MemoryCartCache) Invalidate() {
	c.mu.Lock()
	c.cart = nil
	c.mu.Unlock()
}
