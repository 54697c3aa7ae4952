package domain

import (
	"reflect"
	"testing"
)

func sampleItems() []CartItem {
	return []CartItem{
		{ID: 1, Quantity: 2, Subtotal: 19.80, Product: Product{ID: 10, Name: "Pilsen", Price: 9.90}},
		{ID: 2, Quantity: 1, Subtotal: 14.50, Product: Product{ID: 11, Name: "IPA", Price: 14.50}},
	}
}

func TestAddItem_DoesNotMutateInput(t *testing.T) {
	items := sampleItems()

	out := AddItem(items, 10, 3)

	if items[0].Quantity != 2 {
		t.Errorf("input slice was mutated: %+v", items[0])
	}
	if out[0].Quantity != 5 {
		t.Errorf("expected merged quantity 5, got %d", out[0].Quantity)
	}
}

func TestAddItem_AppendsUnknownProduct(t *testing.T) {
	out := AddItem(sampleItems(), 99, 4)

	if len(out) != 3 {
		t.Fatalf("expected 3 items, got %d", len(out))
	}
	last := out[2]
	if last.Product.ID != 99 || last.Quantity != 4 {
		t.Errorf("unexpected appended item: %+v", last)
	}
}

func TestSetItemQuantity(t *testing.T) {
	items := sampleItems()

	out := SetItemQuantity(items, 11, 7)
	if out[1].Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", out[1].Quantity)
	}
	if items[1].Quantity != 1 {
		t.Error("input slice was mutated")
	}

	unchanged := SetItemQuantity(items, 99, 7)
	if !reflect.DeepEqual(unchanged, items) {
		t.Error("setting quantity for an absent product must not create an item")
	}
}

func TestRemoveItem(t *testing.T) {
	items := sampleItems()

	out := RemoveItem(items, 10)
	if len(out) != 1 || out[0].Product.ID != 11 {
		t.Errorf("unexpected result: %+v", out)
	}

	noop := RemoveItem(items, 99)
	if !reflect.DeepEqual(noop, items) {
		t.Error("removing an absent product must be a no-op")
	}
}

func TestNewCartPayload_ReducesItems(t *testing.T) {
	payload := NewCartPayload(7, sampleItems())

	if payload.User.ID != 7 {
		t.Errorf("expected owner 7, got %d", payload.User.ID)
	}
	want := []CartItemPayload{
		{Product: ProductRef{ID: 10}, Quantity: 2},
		{Product: ProductRef{ID: 11}, Quantity: 1},
	}
	if !reflect.DeepEqual(payload.Items, want) {
		t.Errorf("expected reduced items %+v, got %+v", want, payload.Items)
	}
}

func TestNewCartPayload_EmptyList(t *testing.T) {
	payload := NewCartPayload(7, nil)

	if payload.Items == nil || len(payload.Items) != 0 {
		t.Errorf("expected an explicit empty item list, got %#v", payload.Items)
	}
}
