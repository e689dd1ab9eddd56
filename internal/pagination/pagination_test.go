package pagination

import "testing"

func TestPageRequest_Defaults(t *testing.T) {
	tests := []struct {
		name       string
		in         PageRequest
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"zero", PageRequest{}, 1, DefaultPageSize, 0},
		{"explicit", PageRequest{Page: 3, PageSize: 10}, 3, 10, 20},
		{"oversize", PageRequest{Page: 1, PageSize: 500}, 1, MaxPageSize, 0},
		{"negative", PageRequest{Page: -2, PageSize: -1}, 1, DefaultPageSize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Defaults()
			if p.Page != tt.wantPage || p.PageSize != tt.wantSize {
				t.Errorf("expected %d/%d, got %d/%d", tt.wantPage, tt.wantSize, p.Page, p.PageSize)
			}
			if p.Offset() != tt.wantOffset {
				t.Errorf("expected offset %d, got %d", tt.wantOffset, p.Offset())
			}
		})
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[int](nil, 1, 20, 0)
	if resp.Data == nil || resp.TotalPages != 0 {
		t.Errorf("unexpected empty response %+v", resp)
	}

	resp = NewPageResponse([]int{1, 2}, 2, 2, 5)
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}

	resp = NewPageResponse([]int{1}, 1, 0, 5)
	if resp.TotalPages != 0 {
		t.Errorf("expected 0 pages for zero page size, got %d", resp.TotalPages)
	}
}
