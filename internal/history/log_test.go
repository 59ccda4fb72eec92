package history

import (
	"sync"
	"testing"
	"time"
)

func TestAppendAndList(t *testing.T) {
	l := New()
	fixed := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	first := l.Append("h*c", "1.989×10^-25", 1.989e-25)
	second := l.Append("2+2", "4", 4)

	if first.ID == second.ID {
		t.Error("entries share an ID")
	}
	if !first.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", first.CreatedAt, fixed)
	}

	got := l.List()
	if len(got) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(got))
	}
	if got[0].Expression != "h*c" || got[1].Expression != "2+2" {
		t.Errorf("List() order = %q, %q, want h*c, 2+2", got[0].Expression, got[1].Expression)
	}
	if line := got[0].Line(); line != "h*c = 1.989×10^-25" {
		t.Errorf("Line() = %q, want %q", line, "h*c = 1.989×10^-25")
	}
}

func TestListIsSnapshot(t *testing.T) {
	l := New()
	l.Append("1+1", "2", 2)

	snap := l.List()
	snap[0].Expression = "changed"
	l.Append("2+2", "4", 4)

	if len(snap) != 1 {
		t.Errorf("snapshot grew to %d entries", len(snap))
	}
	if e, _ := l.At(0); e.Expression != "1+1" {
		t.Errorf("At(0).Expression = %q, want 1+1", e.Expression)
	}
}

func TestAt(t *testing.T) {
	l := New()
	l.Append("1", "1", 1)

	if _, ok := l.At(-1); ok {
		t.Error("At(-1) ok = true, want false")
	}
	if _, ok := l.At(1); ok {
		t.Error("At(1) ok = true, want false")
	}
	if e, ok := l.At(0); !ok || e.Value != 1 {
		t.Errorf("At(0) = %v, %v, want value 1", e, ok)
	}
}

func TestClear(t *testing.T) {
	l := New()
	l.Append("1", "1", 1)
	l.Append("2", "2", 2)
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}
	if got := l.List(); len(got) != 0 {
		t.Errorf("List() after Clear = %v, want empty", got)
	}
}

func TestConcurrentAppend(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Append("1+1", "2", 2)
			_ = l.List()
		}()
	}
	wg.Wait()

	if l.Len() != 50 {
		t.Errorf("Len() = %d, want 50", l.Len())
	}
}
