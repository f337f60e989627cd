package service

import "testing"

func TestPaginate_TableDriven(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	cases := []struct {
		name      string
		page      int
		perPage   int
		wantLen   int
		wantFirst int
	}{
		{name: "first page", page: 1, perPage: 10, wantLen: 10, wantFirst: 0},
		{name: "middle page", page: 2, perPage: 10, wantLen: 10, wantFirst: 10},
		{name: "partial last page", page: 3, perPage: 10, wantLen: 5, wantFirst: 20},
		{name: "past the end", page: 4, perPage: 10, wantLen: 0},
		{name: "far past the end", page: 100, perPage: 10, wantLen: 0},
		{name: "single item pages", page: 25, perPage: 1, wantLen: 1, wantFirst: 24},
		{name: "page size over total", page: 1, perPage: 100, wantLen: 25, wantFirst: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(items, tc.page, tc.perPage)
			if len(got.Items) != tc.wantLen {
				t.Fatalf("len=%d, want %d", len(got.Items), tc.wantLen)
			}
			if got.Total != 25 {
				t.Fatalf("total=%d, want 25", got.Total)
			}
			if got.Page != tc.page || got.PerPage != tc.perPage {
				t.Fatalf("page metadata %d/%d, want %d/%d", got.Page, got.PerPage, tc.page, tc.perPage)
			}
			if tc.wantLen > 0 && got.Items[0] != tc.wantFirst {
				t.Fatalf("first item=%d, want %d", got.Items[0], tc.wantFirst)
			}
			// Original order must be preserved
			for i := 1; i < len(got.Items); i++ {
				if got.Items[i] != got.Items[i-1]+1 {
					t.Fatalf("items out of order: %v", got.Items)
				}
			}
		})
	}
}

// Item count follows min(s, max(0, N-(p-1)*s)) for every valid page/size pair.
func TestPaginate_CountProperty(t *testing.T) {
	const n = 25
	items := make([]struct{}, n)

	for p := 1; p <= 30; p++ {
		for s := 1; s <= 12; s++ {
			got := Paginate(items, p, s)
			want := n - (p-1)*s
			if want < 0 {
				want = 0
			}
			if want > s {
				want = s
			}
			if len(got.Items) != want {
				t.Fatalf("p=%d s=%d: len=%d, want %d", p, s, len(got.Items), want)
			}
			if got.Total != n {
				t.Fatalf("p=%d s=%d: total=%d, want %d", p, s, got.Total, n)
			}
		}
	}
}

func TestPaginate_Empty(t *testing.T) {
	got := Paginate([]string{}, 1, 10)
	if len(got.Items) != 0 || got.Total != 0 {
		t.Fatalf("unexpected page for empty collection: %+v", got)
	}
}
