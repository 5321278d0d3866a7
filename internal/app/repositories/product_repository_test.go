package repositories

import (
	"strings"
	"testing"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
)

func float64Ptr(f float64) *float64 { return &f }

func TestProductBuildListQuery(t *testing.T) {
	r := NewProductRepository(nil)

	t.Run("all filters bind in appearance order", func(t *testing.T) {
		sql, args, err := r.buildListQuery(dto.ProductFilters{
			CategoryID: 2,
			MinPrice:   float64Ptr(10),
			MaxPrice:   float64Ptr(100),
			Search:     "usb",
			SortBy:     "price",
			SortOrder:  "asc",
			Limit:      20,
			Offset:     40,
		})
		if err != nil {
			t.Fatalf("buildListQuery() error = %v", err)
		}

		for i, fragment := range []string{
			"p.category_id = $1",
			"p.price >= $2",
			"p.price <= $3",
			"p.name ILIKE $4",
			"p.description ILIKE $5",
		} {
			if !strings.Contains(sql, fragment) {
				t.Errorf("fragment %d: sql %q missing %q", i, sql, fragment)
			}
		}
		if !strings.Contains(sql, "GROUP BY p.id, c.name") {
			t.Errorf("sql %q missing group-by", sql)
		}
		if !strings.Contains(sql, "ORDER BY p.price ASC") {
			t.Errorf("sql %q missing whitelisted sort", sql)
		}
		if !strings.Contains(sql, "LIMIT 20 OFFSET 40") {
			t.Errorf("sql %q missing paging", sql)
		}

		want := []interface{}{int64(2), 10.0, 100.0, "%usb%", "%usb%"}
		if len(args) != len(want) {
			t.Fatalf("args = %v, want %v", args, want)
		}
		for i := range want {
			if args[i] != want[i] {
				t.Errorf("args[%d] = %v, want %v", i, args[i], want[i])
			}
		}
	})

	t.Run("unknown sort column falls back to created_at", func(t *testing.T) {
		sql, _, err := r.buildListQuery(dto.ProductFilters{SortBy: "price; DROP TABLE products"})
		if err != nil {
			t.Fatalf("buildListQuery() error = %v", err)
		}
		if !strings.Contains(sql, "ORDER BY p.created_at DESC") {
			t.Errorf("sql %q did not fall back to created_at DESC", sql)
		}
		if strings.Contains(sql, "DROP TABLE") {
			t.Errorf("sql %q leaked unvalidated sort input", sql)
		}
	})
}

func TestUserBuildListQuery(t *testing.T) {
	r := NewUserRepository(nil)

	sql, args, err := r.buildListQuery(dto.UserFilters{Role: "admin", Search: "ali", Limit: 10})
	if err != nil {
		t.Fatalf("buildListQuery() error = %v", err)
	}

	if !strings.Contains(sql, "role = $1") {
		t.Errorf("sql %q missing role predicate at $1", sql)
	}
	if !strings.Contains(sql, "name ILIKE $2 OR email ILIKE $3") {
		t.Errorf("sql %q missing search predicates at $2/$3", sql)
	}
	if !strings.Contains(sql, "ORDER BY created_at DESC") {
		t.Errorf("sql %q missing default ordering", sql)
	}

	want := []interface{}{"admin", "%ali%", "%ali%"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %v, want %v", i, args[i], want[i])
		}
	}
}
