package response

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		total       int64
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{"first of many", 1, 10, 45, 5, true, false},
		{"middle", 3, 10, 45, 5, true, true},
		{"last partial", 5, 10, 45, 5, false, true},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"empty", 1, 10, 0, 0, false, false},
		{"single row", 1, 12, 1, 1, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPagination(c.page, c.limit, c.total)
			if p.Pages != c.wantPages {
				t.Errorf("pages = %d, want %d", p.Pages, c.wantPages)
			}
			if p.HasNext != c.wantNext {
				t.Errorf("hasNext = %v, want %v", p.HasNext, c.wantNext)
			}
			if p.HasPrev != c.wantPrev {
				t.Errorf("hasPrev = %v, want %v", p.HasPrev, c.wantPrev)
			}
			if p.Total != c.total {
				t.Errorf("total = %d, want %d", p.Total, c.total)
			}
		})
	}
}
