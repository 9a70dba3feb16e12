package repository

import (
	"reflect"
	"testing"
)

func TestBuildBrowseQueryNoFilters(t *testing.T) {
	query, args := buildBrowseQuery("SELECT *", PropertyFilter{})
	want := `SELECT * FROM properties WHERE is_approved = TRUE AND status = 'available'`
	if query != want {
		t.Errorf("query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildBrowseQueryAllFilters(t *testing.T) {
	min, max := 500.0, 2000.0
	query, args := buildBrowseQuery("SELECT COUNT(1)", PropertyFilter{
		PropertyType: "villa",
		City:         "jed",
		MinPrice:     &min,
		MaxPrice:     &max,
	})

	want := `SELECT COUNT(1) FROM properties WHERE is_approved = TRUE AND status = 'available'` +
		` AND property_type = $1 AND city ILIKE $2 AND price >= $3 AND price <= $4`
	if query != want {
		t.Errorf("query:\n got %q\nwant %q", query, want)
	}
	wantArgs := []interface{}{"villa", "%jed%", 500.0, 2000.0}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args: got %v want %v", args, wantArgs)
	}
}

func TestBuildBrowseQueryPlaceholderOrder(t *testing.T) {
	// Placeholders must renumber when earlier filters are absent.
	max := 900.0
	query, args := buildBrowseQuery("SELECT *", PropertyFilter{City: "riyadh", MaxPrice: &max})

	want := `SELECT * FROM properties WHERE is_approved = TRUE AND status = 'available'` +
		` AND city ILIKE $1 AND price <= $2`
	if query != want {
		t.Errorf("query:\n got %q\nwant %q", query, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"%riyadh%", 900.0}) {
		t.Errorf("args: got %v", args)
	}
}
