package tables

import "testing"

func TestPackedGetSet(t *testing.T) {
	p := newPacked(10)
	for i := 0; i < 10; i++ {
		if got := p.get(i); got != unvisited {
			t.Fatalf("newPacked entry %d = %d, want unvisited", i, got)
		}
	}
	for i := 0; i < 10; i++ {
		p.set(i, i%15)
	}
	for i := 0; i < 10; i++ {
		if got := p.get(i); got != i%15 {
			t.Errorf("get(%d) = %d, want %d", i, got, i%15)
		}
	}
}

func TestPackedNeighborsIndependent(t *testing.T) {
	p := newPacked(2)
	p.set(0, 3)
	p.set(1, 9)
	if p.get(0) != 3 || p.get(1) != 9 {
		t.Fatalf("packing two entries in one byte corrupted each other: %v", p)
	}
}
