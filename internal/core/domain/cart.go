package domain

// Cart is a user's current selection. Total and item subtotals are computed
// by the backend; the client never fills them in.
type Cart struct {
	ID    int64      `json:"id"`
	User  UserRef    `json:"user"`
	Total float64    `json:"total"`
	Items []CartItem `json:"items"`
}

type CartItem struct {
	ID       int64   `json:"id,omitempty"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal,omitempty"`
	Product  Product `json:"product"`
}

type UserRef struct {
	ID int64 `json:"id"`
}

type ProductRef struct {
	ID int64 `json:"id"`
}

// CartPayload is the write shape for POST /cart. The backend treats the call
// as create-or-replace, so the payload always carries the complete item list.
type CartPayload struct {
	User  UserRef           `json:"user"`
	Items []CartItemPayload `json:"items"`
}

type CartItemPayload struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
}

// NewCartPayload reduces items to {product id, quantity} pairs. Display-only
// fields are dropped; the backend recomputes subtotals and the total.
func NewCartPayload(userID int64, items []CartItem) CartPayload {
	payload := CartPayload{
		User:  UserRef{ID: userID},
		Items: make([]CartItemPayload, 0, len(items)),
	}
	for _, item := range items {
		payload.Items = append(payload.Items, CartItemPayload{
			Product:  ProductRef{ID: item.Product.ID},
			Quantity: item.Quantity,
		})
	}
	return payload
}

// AddItem returns a new item list with quantity added to an existing entry
// for the product, or a new entry appended. The input slice is not modified.
func AddItem(items []CartItem, productID int64, quantity int) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].Product.ID == productID {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, CartItem{
		Product:  Product{ID: productID},
		Quantity: quantity,
	})
}

// SetItemQuantity returns a new item list with the product's quantity
// replaced. A product that is not in the list is left alone: updating never
// creates an item.
func SetItemQuantity(items []CartItem, productID int64, quantity int) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].Product.ID == productID {
			out[i].Quantity = quantity
			break
		}
	}
	return out
}

// RemoveItem returns a new item list without the product. Removing a product
// that is not present is a no-op, not an error.
func RemoveItem(items []CartItem, productID int64) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	return out
}
