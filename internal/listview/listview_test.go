package listview

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/me/shopadmin/pkg/model"
)

func courseSearchText(c model.Course) []string {
	return []string{c.Title, c.Instructor, c.Status.String(), strconv.FormatFloat(c.Price, 'f', -1, 64)}
}

func courseConfig(fetch func(context.Context) ([]model.Course, error), pageSize int) Config[model.Course] {
	return Config[model.Course]{
		Fetch:      fetch,
		ID:         func(c model.Course) string { return c.ID },
		SearchText: courseSearchText,
		PageSize:   pageSize,
	}
}

func fixedCourses(cs ...model.Course) func(context.Context) ([]model.Course, error) {
	return func(context.Context) ([]model.Course, error) { return cs, nil }
}

func makeCourses(n int) []model.Course {
	out := make([]model.Course, n)
	for i := range out {
		out[i] = model.Course{ID: fmt.Sprintf("c%d", i), Title: fmt.Sprintf("Course %d", i)}
	}
	return out
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	records := []model.Course{
		{ID: "1", Title: "Course A", Instructor: "Jane", Status: model.StatusActive},
		{ID: "2", Title: "Course B", Instructor: "Bob", Status: model.StatusInactive},
		{ID: "3", Title: "Advanced Jane Studies", Instructor: "Ann", Status: model.StatusActive},
	}

	got := Filter(records, "jane", courseSearchText)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("Filter(jane) = %v", ids(got))
	}

	if got := Filter(records, "zzz", courseSearchText); len(got) != 0 {
		t.Errorf("Filter(zzz) should be empty, got %v", ids(got))
	}

	// Empty term matches everything, in order.
	if got := Filter(records, "  ", courseSearchText); len(got) != 3 {
		t.Errorf("blank term should match all, got %v", ids(got))
	}
}

func TestFilter_MatchesStringifiedNumbers(t *testing.T) {
	records := []model.Course{{ID: "1", Title: "X", Price: 49.5}}
	if got := Filter(records, "49.5", courseSearchText); len(got) != 1 {
		t.Error("expected price substring to match")
	}
}

func TestFilter_Pure(t *testing.T) {
	records := makeCourses(10)
	a := Filter(records, "Course 1", courseSearchText)
	b := Filter(records, "Course 1", courseSearchText)
	if len(a) != len(b) {
		t.Fatalf("repeat call differed: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("repeat call differed at %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}

func TestPaginate_CoversExactlyOnce(t *testing.T) {
	for _, tc := range []struct{ n, pageSize int }{
		{0, 4}, {1, 4}, {4, 4}, {5, 4}, {17, 5}, {10, 10}, {23, 10},
	} {
		records := makeCourses(tc.n)
		seen := map[string]int{}
		for page := 1; page <= TotalPages(tc.n, tc.pageSize); page++ {
			for _, r := range Paginate(records, page, tc.pageSize) {
				seen[r.ID]++
			}
		}
		if len(seen) != tc.n {
			t.Errorf("n=%d size=%d: union covered %d records", tc.n, tc.pageSize, len(seen))
		}
		for id, count := range seen {
			if count != 1 {
				t.Errorf("n=%d size=%d: record %s appeared %d times", tc.n, tc.pageSize, id, count)
			}
		}
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	records := makeCourses(6)
	if got := Paginate(records, 3, 5); got != nil {
		t.Errorf("page past end should be empty, got %v", ids(got))
	}
	if got := Paginate(records, 0, 5); got != nil {
		t.Errorf("page 0 should be empty, got %v", ids(got))
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct{ n, size, want int }{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{17, 4, 5},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.n, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.want)
		}
	}
}

func TestPipeline_LoadSearchPaginate(t *testing.T) {
	courses := []model.Course{
		{ID: "1", Title: "Course A", Instructor: "Jane", Price: 10, Status: model.StatusActive, EnrollmentsCount: 3},
	}
	p := New(courseConfig(fixedCourses(courses...), 5))

	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !p.Loaded() {
		t.Error("Loaded should be true after Load")
	}
	if len(p.Records()) != 1 {
		t.Fatalf("Records = %d, want 1", len(p.Records()))
	}

	p.SetSearch("jane")
	if w := p.Window(); len(w) != 1 || w[0].ID != "1" {
		t.Errorf("search 'jane' window = %v", ids(w))
	}

	p.SetSearch("zzz")
	if w := p.Window(); len(w) != 0 {
		t.Errorf("search 'zzz' window = %v", ids(w))
	}
	if p.TotalPages() != 1 {
		t.Errorf("empty filtered set should still report 1 page, got %d", p.TotalPages())
	}
}

func TestPipeline_PageClampsAfterDelete(t *testing.T) {
	courses := makeCourses(6) // 2 pages at size 5; page 2 holds one record
	p := New(courseConfig(fixedCourses(courses...), 5))
	if err := p.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	p.SetPage(2)
	if w := p.Window(); len(w) != 1 {
		t.Fatalf("page 2 window = %d records, want 1", len(w))
	}

	// Deleting the only record on page 2 must clamp back to page 1,
	// never show a blank page.
	if err := p.Delete(context.Background(), "c5", func(context.Context) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if p.Page() != 1 {
		t.Errorf("page after delete = %d, want 1", p.Page())
	}
	if w := p.Window(); len(w) != 5 {
		t.Errorf("window after clamp = %d records, want 5", len(w))
	}
}

func TestPipeline_DeleteReconciliation(t *testing.T) {
	p := New(courseConfig(fixedCourses(makeCourses(3)...), 10))
	if err := p.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := p.Delete(context.Background(), "c1", func(context.Context) error { return nil }); err != nil {
		t.Fatal(err)
	}
	for _, r := range p.Records() {
		if r.ID == "c1" {
			t.Error("deleted id still present in records")
		}
	}
	for _, r := range p.Filtered() {
		if r.ID == "c1" {
			t.Error("deleted id still present in filtered projection")
		}
	}
	for _, r := range p.Window() {
		if r.ID == "c1" {
			t.Error("deleted id still present in window")
		}
	}
}

func TestPipeline_DeleteFailureLeavesStateUntouched(t *testing.T) {
	p := New(courseConfig(fixedCourses(makeCourses(3)...), 10))
	if err := p.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	wantErr := fmt.Errorf("server said no")
	err := p.Delete(context.Background(), "c1", func(context.Context) error { return wantErr })
	if err == nil {
		t.Fatal("expected delete error")
	}
	if len(p.Records()) != 3 {
		t.Errorf("failed delete mutated local state: %d records", len(p.Records()))
	}
}

func TestPipeline_LoadErrorKeepsPreviousRecords(t *testing.T) {
	calls := 0
	fetch := func(context.Context) ([]model.Course, error) {
		calls++
		if calls > 1 {
			return nil, fmt.Errorf("network down")
		}
		return makeCourses(2), nil
	}

	p := New(courseConfig(fetch, 10))
	if err := p.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := p.Load(context.Background()); err == nil {
		t.Fatal("expected error from second load")
	}
	if len(p.Records()) != 2 {
		t.Errorf("failed load clobbered records: %d", len(p.Records()))
	}
}

func TestPipeline_StaleResponseDiscarded(t *testing.T) {
	// The first load blocks until the second finishes; its response is
	// older and must not overwrite the newer record set.
	firstStarted := make(chan struct{})
	release := make(chan struct{})
	var call int
	var mu sync.Mutex

	fetch := func(context.Context) ([]model.Course, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			close(firstStarted)
			<-release
			return []model.Course{{ID: "stale"}}, nil
		}
		return []model.Course{{ID: "fresh"}}, nil
	}

	p := New(courseConfig(fetch, 10))

	done := make(chan error, 1)
	go func() { done <- p.Load(context.Background()) }()
	<-firstStarted

	if err := p.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	records := p.Records()
	if len(records) != 1 || records[0].ID != "fresh" {
		t.Errorf("stale response overwrote state: %v", ids(records))
	}
}

func TestPipeline_SearchResetsPage(t *testing.T) {
	p := New(courseConfig(fixedCourses(makeCourses(20)...), 5))
	if err := p.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	p.SetPage(4)
	p.SetSearch("Course 1")
	if p.Page() != 1 {
		t.Errorf("search should reset page to 1, got %d", p.Page())
	}
}

func ids(cs []model.Course) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}
