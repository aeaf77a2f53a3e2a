package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	p := Normalize(Params{})
	if p.Page != 1 {
		t.Fatalf("expected page 1, got %d", p.Page)
	}
	if p.Limit != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
}

func TestNormalizeClampsLimit(t *testing.T) {
	p := Normalize(Params{Page: 3, Limit: 10_000})
	if p.Limit != MaxLimit {
		t.Fatalf("expected limit clamped to %d, got %d", MaxLimit, p.Limit)
	}
	if p.Page != 3 {
		t.Fatalf("page should be preserved, got %d", p.Page)
	}
}

func TestOffsetIsOneBased(t *testing.T) {
	if off := (Params{Page: 1, Limit: 6}).Offset(); off != 0 {
		t.Fatalf("page 1 should start at offset 0, got %d", off)
	}
	if off := (Params{Page: 2, Limit: 6}).Offset(); off != 6 {
		t.Fatalf("page 2 with limit 6 should start at offset 6, got %d", off)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestMetaFor(t *testing.T) {
	meta := MetaFor(Params{Page: 2, Limit: 6}, 12)
	if meta.CurrentPage != 2 || meta.TotalPages != 2 || meta.TotalItems != 12 || meta.ItemsPerPage != 6 {
		t.Fatalf("unexpected meta %+v", meta)
	}
}
