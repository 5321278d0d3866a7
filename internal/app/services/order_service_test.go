package services

import (
	"errors"
	"testing"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/pkg/apperrors"
)

func TestValidateOrderItems(t *testing.T) {
	tests := []struct {
		name    string
		items   []dto.OrderItemRequest
		wantErr error
	}{
		{
			name:    "empty order",
			items:   nil,
			wantErr: apperrors.ErrOrderNoItems,
		},
		{
			name: "zero quantity",
			items: []dto.OrderItemRequest{
				{ProductID: 1, Quantity: 0, Price: 10},
			},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name: "negative quantity",
			items: []dto.OrderItemRequest{
				{ProductID: 1, Quantity: -2, Price: 10},
			},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name: "negative price",
			items: []dto.OrderItemRequest{
				{ProductID: 1, Quantity: 1, Price: -0.5},
			},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name: "valid items",
			items: []dto.OrderItemRequest{
				{ProductID: 1, Quantity: 2, Price: 10},
				{ProductID: 2, Quantity: 1, Price: 5},
			},
			wantErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrderItems(tt.items)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateOrderItems() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateOrderItems() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
