package repo

import (
	"errors"
	"sync"
	"testing"

	"github.com/rogerio-castellano/inventory-app/internal/models"
)

func newTestRepos() (*InMemoryProductRepository, *InMemoryInventoryLogRepository) {
	categories := NewInMemoryCategoryRepository()
	products := NewInMemoryProductRepository(categories)
	logs := NewInMemoryInventoryLogRepository(products)
	return products, logs
}

func TestAdjust_WritesSnapshotAndQuantity(t *testing.T) {
	products, logs := newTestRepos()
	p, _ := products.Create(models.Product{Name: "Widget", Price: 9.99, Quantity: 3, LowStockThreshold: 5})

	entry, err := logs.Adjust(p.ID, models.ChangeTypeRestock, 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.PreviousQuantity != 3 || entry.NewQuantity != 13 {
		t.Errorf("expected snapshot 3 -> 13, got %d -> %d", entry.PreviousQuantity, entry.NewQuantity)
	}

	stored, _ := products.GetByID(p.ID)
	if stored.Quantity != 13 {
		t.Errorf("expected stored quantity 13, got %d", stored.Quantity)
	}
}

func TestAdjust_RejectsNegativeResultWithoutSideEffects(t *testing.T) {
	products, logs := newTestRepos()
	p, _ := products.Create(models.Product{Name: "Widget", Price: 9.99, Quantity: 3, LowStockThreshold: 5})

	_, err := logs.Adjust(p.ID, models.ChangeTypeSale, -4, nil)
	if !errors.Is(err, ErrInsufficientQuantity) {
		t.Fatalf("expected ErrInsufficientQuantity, got %v", err)
	}

	stored, _ := products.GetByID(p.ID)
	if stored.Quantity != 3 {
		t.Errorf("expected quantity unchanged at 3, got %d", stored.Quantity)
	}
	entries, _ := logs.GetAll()
	if len(entries) != 0 {
		t.Errorf("expected no log entries, got %d", len(entries))
	}
}

func TestAdjust_UnknownProduct(t *testing.T) {
	_, logs := newTestRepos()

	_, err := logs.Adjust(42, models.ChangeTypeRestock, 1, nil)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

// Concurrent sales against a finite stock: exactly `stock` of them may
// succeed, the quantity never goes negative, and every success leaves
// exactly one log entry with consistent snapshots.
func TestAdjust_ConcurrentSalesSerialize(t *testing.T) {
	products, logs := newTestRepos()
	const stock = 20
	const attempts = 50

	p, _ := products.Create(models.Product{Name: "Contested", Price: 1.0, Quantity: stock, LowStockThreshold: 0})

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, rejected := 0, 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := logs.Adjust(p.ID, models.ChangeTypeSale, -1, nil)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrInsufficientQuantity):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != stock || rejected != attempts-stock {
		t.Errorf("expected %d successes and %d rejections, got %d and %d",
			stock, attempts-stock, succeeded, rejected)
	}

	stored, _ := products.GetByID(p.ID)
	if stored.Quantity != 0 {
		t.Errorf("expected final quantity 0, got %d", stored.Quantity)
	}

	entries, _ := logs.GetAll()
	if len(entries) != stock {
		t.Fatalf("expected %d log entries, got %d", stock, len(entries))
	}
	// snapshots must chain: every new_quantity = previous_quantity - 1
	seen := map[int]bool{}
	for _, e := range entries {
		if e.NewQuantity != e.PreviousQuantity-1 {
			t.Errorf("inconsistent snapshot %d -> %d", e.PreviousQuantity, e.NewQuantity)
		}
		if seen[e.NewQuantity] {
			t.Errorf("duplicate new_quantity %d, adjustments interleaved", e.NewQuantity)
		}
		seen[e.NewQuantity] = true
	}
}
