package receipt

import (
	"sync"
	"testing"
)

func TestStorePutGet(t *testing.T) {
	store := NewStore()
	rec := buildReceipt(t, "Target", "2022-01-01", "13:01", "1.00",
		item(t, "Soda", "1.00"))

	id := store.Put(rec)
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	got, ok := store.Get(id)
	if !ok {
		t.Fatalf("expected receipt for id %s", id)
	}
	if got.Retailer != "Target" {
		t.Fatalf("unexpected retailer %q", got.Retailer)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 stored receipt, got %d", store.Len())
	}
}

func TestStoreGetUnknown(t *testing.T) {
	store := NewStore()
	if _, ok := store.Get("missing"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestStoreDistinctIDs(t *testing.T) {
	store := NewStore()
	rec := buildReceipt(t, "Target", "2022-01-01", "13:01", "0.00")
	first := store.Put(rec)
	second := store.Put(rec)
	if first == second {
		t.Fatalf("expected distinct ids, got %s twice", first)
	}
}

func TestStoreConcurrentPuts(t *testing.T) {
	store := NewStore()
	rec := buildReceipt(t, "Target", "2022-01-01", "13:01", "0.00")

	const writers = 50
	ids := make([]string, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			ids[slot] = store.Put(rec)
		}(i)
	}
	wg.Wait()

	if store.Len() != writers {
		t.Fatalf("expected %d receipts, got %d", writers, store.Len())
	}
	for _, id := range ids {
		if _, ok := store.Get(id); !ok {
			t.Fatalf("missing receipt for id %s", id)
		}
	}
}
