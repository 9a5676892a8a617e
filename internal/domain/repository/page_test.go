package repository

import "testing"

func TestNewPage_Defaults(t *testing.T) {
	p := NewPage(0, 0, 12)

	if p.Number != 1 {
		t.Errorf("expected page 1, got %d", p.Number)
	}
	if p.Limit != 12 {
		t.Errorf("expected default limit 12, got %d", p.Limit)
	}
	if p.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset())
	}
}

func TestNewPage_ClampsLimit(t *testing.T) {
	p := NewPage(3, 500, 10)

	if p.Limit != 50 {
		t.Errorf("expected limit clamped to 50, got %d", p.Limit)
	}
	if p.Offset() != 100 {
		t.Errorf("expected offset 100, got %d", p.Offset())
	}
}

func TestNewPage_NegativeValues(t *testing.T) {
	p := NewPage(-2, -5, 10)

	if p.Number != 1 || p.Limit != 10 {
		t.Errorf("expected sane page, got %+v", p)
	}
}
