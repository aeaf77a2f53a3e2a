package products

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/davidcastanon/shopmart-backend/pkg/db/models"
	"github.com/davidcastanon/shopmart-backend/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	conn := openTestDB(t)
	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}
	return svc, conn
}

// seedProduct inserts directly so tests control the creation timestamp.
func seedProduct(t *testing.T, conn *gorm.DB, id, name, category string, createdAt time.Time) {
	t.Helper()

	row := models.Product{
		ID:        id,
		Name:      name,
		Price:     decimal.NewFromFloat(19.99),
		Category:  category,
		CreatedAt: createdAt,
	}
	if err := conn.Create(&row).Error; err != nil {
		t.Fatalf("failed to seed product %s: %v", id, err)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc, conn := newTestService(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedProduct(t, conn, "p1", "Old Lamp", "home", base)
	seedProduct(t, conn, "p2", "New Lamp", "home", base.Add(2*time.Hour))
	seedProduct(t, conn, "p3", "Mid Lamp", "home", base.Add(time.Hour))

	page, err := svc.List(context.Background(), "", pagination.Params{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(page.Items))
	}
	for i, want := range []string{"p2", "p3", "p1"} {
		if page.Items[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, page.Items[i].ID)
		}
	}
}

func TestListPagination(t *testing.T) {
	svc, conn := newTestService(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		seedProduct(t, conn, fmt.Sprintf("p%02d", i), fmt.Sprintf("Item %02d", i), "misc", base.Add(time.Duration(i)*time.Minute))
	}

	t.Run("defaults", func(t *testing.T) {
		page, err := svc.List(context.Background(), "", pagination.Params{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(page.Items) != pagination.DefaultLimit {
			t.Fatalf("expected %d items, got %d", pagination.DefaultLimit, len(page.Items))
		}
		if page.Pagination.CurrentPage != 1 {
			t.Fatalf("expected page 1, got %d", page.Pagination.CurrentPage)
		}
		if page.Pagination.TotalItems != 30 {
			t.Fatalf("expected 30 total items, got %d", page.Pagination.TotalItems)
		}
		if page.Pagination.TotalPages != 3 {
			t.Fatalf("expected 3 total pages, got %d", page.Pagination.TotalPages)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		page, err := svc.List(context.Background(), "", pagination.Params{Page: 3, Limit: 12})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(page.Items) != 6 {
			t.Fatalf("expected 6 items on page 3, got %d", len(page.Items))
		}
	})

	t.Run("page past the end", func(t *testing.T) {
		page, err := svc.List(context.Background(), "", pagination.Params{Page: 9, Limit: 12})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(page.Items) != 0 {
			t.Fatalf("expected empty page, got %d items", len(page.Items))
		}
		if page.Pagination.TotalItems != 30 {
			t.Fatalf("totals must survive an out-of-range page, got %d", page.Pagination.TotalItems)
		}
		if page.Pagination.CurrentPage != 9 {
			t.Fatalf("expected requested page echoed back, got %d", page.Pagination.CurrentPage)
		}
	})
}

func TestListCategoryFilterIsExact(t *testing.T) {
	svc, conn := newTestService(t)
	now := time.Now().UTC()

	seedProduct(t, conn, "p1", "Desk", "furniture", now)
	seedProduct(t, conn, "p2", "Chair", "furniture", now.Add(time.Minute))
	seedProduct(t, conn, "p3", "Mug", "kitchen", now.Add(2*time.Minute))

	page, err := svc.List(context.Background(), "furniture", pagination.Params{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 furniture items, got %d", len(page.Items))
	}
	if page.Pagination.TotalItems != 2 {
		t.Fatalf("expected filtered total of 2, got %d", page.Pagination.TotalItems)
	}

	page, err = svc.List(context.Background(), "Furniture", pagination.Params{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("category match is case sensitive, got %d items", len(page.Items))
	}
}

func TestGetByID(t *testing.T) {
	svc, conn := newTestService(t)
	seedProduct(t, conn, "p1", "Desk", "furniture", time.Now().UTC())

	got, err := svc.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Name != "Desk" {
		t.Fatalf("expected Desk, got %+v", got)
	}

	missing, err := svc.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetByID missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown id, got %+v", missing)
	}
}

func TestSearch(t *testing.T) {
	svc, conn := newTestService(t)
	now := time.Now().UTC()

	seedProduct(t, conn, "p1", "Wireless Headphones", "electronics", now)
	seedProduct(t, conn, "p2", "Ceramic Mug", "kitchen", now.Add(time.Minute))

	t.Run("case insensitive name match", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "WIRELESS")
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p1" {
			t.Fatalf("expected p1, got %+v", got)
		}
	})

	t.Run("category match", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "kitchen")
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p2" {
			t.Fatalf("expected p2, got %+v", got)
		}
	})

	t.Run("blank query returns nothing", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "   ")
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no results, got %d", len(got))
		}
	})
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService(t)

	stock := 4
	rating := 4.5
	got, err := svc.Create(context.Background(), CreateProductInput{
		Name:     "  Standing Desk  ",
		Price:    decimal.NewFromFloat(349.00),
		Category: "furniture",
		Stock:    &stock,
		Rating:   &rating,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID == "" {
		t.Fatal("expected generated id")
	}
	if got.Name != "Standing Desk" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
	if got.Stock != 4 || got.Rating != 4.5 {
		t.Fatalf("unexpected stock/rating: %+v", got)
	}

	t.Run("defaults to zero stock and rating", func(t *testing.T) {
		got, err := svc.Create(context.Background(), CreateProductInput{
			Name:  "Bare Item",
			Price: decimal.NewFromFloat(1.00),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if got.Stock != 0 || got.Rating != 0 {
			t.Fatalf("expected zero defaults, got %+v", got)
		}
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateProductInput{Price: decimal.NewFromFloat(1)})
		if err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateProductInput{Name: "x", Price: decimal.NewFromFloat(-1)})
		if err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestCategories(t *testing.T) {
	svc, conn := newTestService(t)
	now := time.Now().UTC()

	seedProduct(t, conn, "p1", "Desk", "furniture", now)
	seedProduct(t, conn, "p2", "Chair", "furniture", now.Add(time.Minute))
	seedProduct(t, conn, "p3", "Mug", "kitchen", now.Add(2*time.Minute))

	got, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(got) != 2 || got[0] != "furniture" || got[1] != "kitchen" {
		t.Fatalf("unexpected categories: %v", got)
	}
}
