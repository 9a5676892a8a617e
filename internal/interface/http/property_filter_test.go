package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func filterCtx(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/properties?"+rawQuery, nil)
	return c
}

func TestParsePropertyFilter_Full(t *testing.T) {
	c := filterCtx("category=house_rent&type=villa&city=Addis&subcity=Bole" +
		"&minPrice=1000000&maxPrice=9000000&minArea=50&maxArea=300" +
		"&bedrooms=3&bathrooms=2&parking=true&furnished=true" +
		"&search=garden+view&sortBy=price_asc&page=2&limit=20")

	f := parsePropertyFilter(c, defaultPublicPage)

	if f.Category != "house_rent" || f.Type != "villa" || f.City != "Addis" || f.Subcity != "Bole" {
		t.Errorf("string filters wrong: %+v", f)
	}
	if f.MinPrice == nil || *f.MinPrice != 1000000 || f.MaxPrice == nil || *f.MaxPrice != 9000000 {
		t.Errorf("price bounds wrong: %+v", f)
	}
	if f.Bedrooms == nil || *f.Bedrooms != 3 || f.Bathrooms == nil || *f.Bathrooms != 2 {
		t.Errorf("room thresholds wrong: %+v", f)
	}
	if !f.Parking || !f.Furnished || f.Garden || f.Security {
		t.Errorf("feature flags wrong: %+v", f)
	}
	if f.Search != "garden view" || f.SortBy != "price_asc" {
		t.Errorf("search/sort wrong: %+v", f)
	}
	if f.Page.Number != 2 || f.Page.Limit != 20 {
		t.Errorf("pagination wrong: %+v", f.Page)
	}
}

func TestParsePropertyFilter_Defaults(t *testing.T) {
	f := parsePropertyFilter(filterCtx(""), defaultPublicPage)

	if f.Page.Number != 1 || f.Page.Limit != defaultPublicPage {
		t.Errorf("expected default page, got %+v", f.Page)
	}
	if f.MinPrice != nil || f.Bedrooms != nil {
		t.Errorf("expected unfiltered numerics, got %+v", f)
	}
}

func TestParsePropertyFilter_FeatureFlagsLiteralTrueOnly(t *testing.T) {
	f := parsePropertyFilter(filterCtx("parking=1&furnished=TRUE&garden=t&security=true"), defaultPublicPage)

	if f.Parking || f.Furnished || f.Garden {
		t.Errorf("expected non-literal booleans ignored, got %+v", f)
	}
	if !f.Security {
		t.Error("expected security=true to filter")
	}
}

func TestParsePropertyFilter_MalformedNumbersIgnored(t *testing.T) {
	f := parsePropertyFilter(filterCtx("minPrice=cheap&bedrooms=many&limit=lots"), defaultPublicPage)

	if f.MinPrice != nil {
		t.Errorf("expected malformed minPrice ignored, got %v", *f.MinPrice)
	}
	if f.Bedrooms != nil {
		t.Errorf("expected malformed bedrooms ignored, got %v", *f.Bedrooms)
	}
	if f.Page.Limit != defaultPublicPage {
		t.Errorf("expected default limit, got %d", f.Page.Limit)
	}
}
