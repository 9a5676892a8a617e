package postgres

import (
	"strings"
	"testing"

	repo "github.com/addisestates/backend/internal/domain/repository"
)

func TestBuildPropertyWhere_Empty(t *testing.T) {
	where, args := buildPropertyWhere(repo.PropertyFilter{})

	if where != " WHERE 1=1" {
		t.Errorf("expected bare predicate, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildPropertyWhere_PublicOnly(t *testing.T) {
	where, args := buildPropertyWhere(repo.PropertyFilter{PublicOnly: true, Status: "pending"})

	if !strings.Contains(where, "p.status IN ('approved', 'sold', 'rented')") {
		t.Errorf("expected visibility clause, got %q", where)
	}
	if !strings.Contains(where, "p.is_active = true") {
		t.Errorf("expected active clause, got %q", where)
	}
	// PublicOnly wins over an explicit status
	if strings.Contains(where, "p.status = $") {
		t.Errorf("status filter must not leak into the public surface: %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildPropertyWhere_NumbersArePositional(t *testing.T) {
	min := 1000000.0
	max := 5000000.0
	beds := 2
	where, args := buildPropertyWhere(repo.PropertyFilter{
		Category: "house_rent",
		City:     "addis",
		MinPrice: &min,
		MaxPrice: &max,
		Bedrooms: &beds,
		Search:   "garden villa",
	})

	wantClauses := []string{
		"p.category = $1",
		"p.city ILIKE '%' || $2 || '%'",
		"p.price >= $3",
		"p.price <= $4",
		"p.bedrooms >= $5",
		"plainto_tsquery('english', $6)",
	}
	for _, c := range wantClauses {
		if !strings.Contains(where, c) {
			t.Errorf("missing clause %q in %q", c, where)
		}
	}
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d: %v", len(args), args)
	}
	if args[0] != "house_rent" || args[5] != "garden villa" {
		t.Errorf("args out of order: %v", args)
	}
}

func TestBuildPropertyWhere_BooleanFeatures(t *testing.T) {
	where, args := buildPropertyWhere(repo.PropertyFilter{Parking: true, Security: true})

	if !strings.Contains(where, "p.parking = true") || !strings.Contains(where, "p.security = true") {
		t.Errorf("expected feature clauses, got %q", where)
	}
	if strings.Contains(where, "p.furnished") || strings.Contains(where, "p.garden") {
		t.Errorf("unset features must not filter: %q", where)
	}
	if len(args) != 0 {
		t.Errorf("feature flags must not bind args, got %v", args)
	}
}

func TestOrderBy(t *testing.T) {
	cases := []struct {
		sortBy string
		want   string
	}{
		{repo.SortPriceAsc, "p.price ASC"},
		{repo.SortPriceDesc, "p.price DESC"},
		{repo.SortAreaAsc, "p.area_size ASC"},
		{repo.SortAreaDesc, "p.area_size DESC"},
		{repo.SortViews, "p.views DESC"},
		{repo.SortNewest, "p.created_at DESC"},
		{"", "p.created_at DESC"},
		{"drop table", "p.created_at DESC"}, // unknown keys never reach SQL
	}
	for _, c := range cases {
		got := orderBy(c.sortBy)
		if !strings.Contains(got, c.want) {
			t.Errorf("orderBy(%q) = %q, want %q", c.sortBy, got, c.want)
		}
	}
}
