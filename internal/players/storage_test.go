package players

import (
	"testing"
)

func TestStore_Add(t *testing.T) {
	s := NewStore()
	p := s.Add("Alice", "conn-1")
	if p.ID == "" {
		t.Error("player id should not be empty")
	}
	if p.Name != "Alice" {
		t.Errorf("Name = %q, want %q", p.Name, "Alice")
	}
	if p.Score != 0 || p.Streak != 0 {
		t.Errorf("new player should start at 0/0, got %d/%d", p.Score, p.Streak)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStore_Get(t *testing.T) {
	s := NewStore()
	p := s.Add("Alice", "conn-1")

	if got := s.Get(p.ID); got == nil || got.ID != p.ID {
		t.Error("Get() should return the added player")
	}
	if s.Get("missing") != nil {
		t.Error("Get() should return nil for unknown id")
	}
}

func TestStore_ListPreservesJoinOrder(t *testing.T) {
	s := NewStore()
	names := []string{"Alice", "Bob", "Carol", "Dave"}
	for _, n := range names {
		s.Add(n, "conn-"+n)
	}

	list := s.List()
	if len(list) != len(names) {
		t.Fatalf("List() length = %d, want %d", len(list), len(names))
	}
	for i, p := range list {
		if p.Name != names[i] {
			t.Errorf("List()[%d] = %q, want %q", i, p.Name, names[i])
		}
	}
}

func TestStore_RemoveByConn(t *testing.T) {
	s := NewStore()
	s.Add("Alice", "conn-1")
	b := s.Add("Bob", "conn-2")
	s.Add("Carol", "conn-3")

	removed := s.RemoveByConn("conn-2")
	if removed == nil || removed.ID != b.ID {
		t.Fatal("RemoveByConn should return Bob")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	list := s.List()
	if list[0].Name != "Alice" || list[1].Name != "Carol" {
		t.Error("join order should survive a removal")
	}

	if s.RemoveByConn("conn-2") != nil {
		t.Error("second removal should be a no-op returning nil")
	}
}

func TestStore_Apply(t *testing.T) {
	s := NewStore()
	p := s.Add("Alice", "conn-1")

	got := s.Apply(p.ID, 750, 1)
	if got == nil {
		t.Fatal("Apply returned nil for existing player")
	}
	if got.Score != 750 || got.Streak != 1 {
		t.Errorf("after Apply: score=%d streak=%d, want 750/1", got.Score, got.Streak)
	}

	got = s.Apply(p.ID, 250, 2)
	if got.Score != 1000 || got.Streak != 2 {
		t.Errorf("Apply should accumulate score: got %d/%d, want 1000/2", got.Score, got.Streak)
	}

	if s.Apply("missing", 100, 1) != nil {
		t.Error("Apply on unknown id should return nil")
	}
}
