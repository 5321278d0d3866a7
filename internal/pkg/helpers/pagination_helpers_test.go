package helpers

import "testing"

func TestNormalizeLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"zero values fall back", 0, 0, DefaultLimit, 0},
		{"negative limit falls back", -5, 10, DefaultLimit, 10},
		{"limit above cap clamps", 10000, 0, MaxLimit, 0},
		{"negative offset clamps to zero", 20, -3, 20, 0},
		{"valid values pass through", 25, 50, 25, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := NormalizeLimitOffset(tt.limit, tt.offset)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("NormalizeLimitOffset(%d, %d) = (%d, %d), want (%d, %d)",
					tt.limit, tt.offset, limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(20, 40, 13)
	if info.Limit != 20 || info.Offset != 40 || info.Count != 13 {
		t.Errorf("NewPaginationInfo = %+v", info)
	}
}
