package port

import "storefront/internal/core/domain"

// CartCache is the client-side single-slot cart cache. It holds at most one
// cart; Get misses whenever the cached cart's owner differs from userID, so
// switching users invalidates the slot implicitly.
type CartCache interface {
	Get(userID int64) (*domain.Cart, bool)
	Put(cart *domain.Cart)
	Invalidate()
}
