package repositories

import (
	"testing"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
)

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []dto.OrderItemRequest
		want  float64
	}{
		{
			name: "two line items",
			items: []dto.OrderItemRequest{
				{ProductID: 1, Quantity: 2, Price: 10},
				{ProductID: 2, Quantity: 1, Price: 5},
			},
			want: 25,
		},
		{
			name:  "no items",
			items: nil,
			want:  0,
		},
		{
			name: "fractional prices",
			items: []dto.OrderItemRequest{
				{ProductID: 1, Quantity: 3, Price: 19.99},
			},
			want: 59.97,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orderTotal(tt.items); got != tt.want {
				t.Errorf("orderTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderBuildListQuery(t *testing.T) {
	r := NewOrderRepository(nil)

	t.Run("no filters", func(t *testing.T) {
		sql, args, err := r.buildListQuery(dto.OrderFilters{})
		if err != nil {
			t.Fatalf("buildListQuery() error = %v", err)
		}
		want := "SELECT o.id, o.user_id, o.total_amount, o.status, o.created_at, o.updated_at, " +
			"u.name AS user_name, u.email AS user_email " +
			"FROM orders o JOIN users u ON o.user_id = u.id " +
			"ORDER BY o.created_at DESC"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want none", args)
		}
	})

	t.Run("all filters keep positional order", func(t *testing.T) {
		sql, args, err := r.buildListQuery(dto.OrderFilters{
			UserID: 7,
			Status: "pending",
			Limit:  5,
			Offset: 10,
		})
		if err != nil {
			t.Fatalf("buildListQuery() error = %v", err)
		}
		want := "SELECT o.id, o.user_id, o.total_amount, o.status, o.created_at, o.updated_at, " +
			"u.name AS user_name, u.email AS user_email " +
			"FROM orders o JOIN users u ON o.user_id = u.id " +
			"WHERE o.user_id = $1 AND o.status = $2 " +
			"ORDER BY o.created_at DESC " +
			"LIMIT 5 OFFSET 10"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
		if len(args) != 2 || args[0] != int64(7) || args[1] != "pending" {
			t.Errorf("args = %v, want [7 pending]", args)
		}
	})

	t.Run("status only binds at $1", func(t *testing.T) {
		sql, args, err := r.buildListQuery(dto.OrderFilters{Status: "delivered"})
		if err != nil {
			t.Fatalf("buildListQuery() error = %v", err)
		}
		if want := "WHERE o.status = $1"; !contains(sql, want) {
			t.Errorf("sql = %q, want it to contain %q", sql, want)
		}
		if len(args) != 1 || args[0] != "delivered" {
			t.Errorf("args = %v, want [delivered]", args)
		}
	})
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
