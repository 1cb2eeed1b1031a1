package pool

import (
	"math/rand"
	"testing"
)

type thing struct {
	Slot
	name int
}

func checkDense(t *testing.T, p *Layered[*thing]) {
	t.Helper()
	for l := 0; l < p.Layers(); l++ {
		for i, item := range p.Layer(l) {
			if item == nil {
				t.Fatalf("layer %d has a hole at index %d", l, i)
			}
			if item.ID() != i+1 {
				t.Fatalf("layer %d index %d: id = %d, expected %d", l, i, item.ID(), i+1)
			}
			if item.Layer() != l {
				t.Fatalf("layer %d index %d: layer = %d", l, i, item.Layer())
			}
		}
	}
}

func TestAddStampsSlot(t *testing.T) {
	p := New[*thing](2)
	a, b, c := &thing{name: 1}, &thing{name: 2}, &thing{name: 3}

	p.Add(a, 0)
	p.Add(b, 0)
	p.Add(c, 1)

	if a.ID() != 1 || b.ID() != 2 || c.ID() != 1 {
		t.Errorf("ids = %d,%d,%d, expected 1,2,1", a.ID(), b.ID(), c.ID())
	}
	if c.Layer() != 1 {
		t.Errorf("c.Layer() = %d, expected 1", c.Layer())
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", p.Len())
	}
}

func TestRemoveSwapsLast(t *testing.T) {
	p := New[*thing](1)
	items := []*thing{{name: 0}, {name: 1}, {name: 2}, {name: 3}}
	for _, it := range items {
		p.Add(it, 0)
	}

	p.Remove(items[1])

	layer := p.Layer(0)
	if len(layer) != 3 {
		t.Fatalf("len = %d, expected 3", len(layer))
	}
	if layer[1] != items[3] {
		t.Errorf("last element should fill the vacated slot, got name %d", layer[1].name)
	}
	if items[3].ID() != 2 {
		t.Errorf("moved element id = %d, expected 2", items[3].ID())
	}
	if items[1].ID() != 0 {
		t.Errorf("removed element should be unstamped, id = %d", items[1].ID())
	}
	checkDense(t, p)

	// Removing the last element must not move anything
	p.Remove(items[2])
	if len(p.Layer(0)) != 2 || items[3].ID() != 2 {
		t.Error("removing the tail should only shrink the layer")
	}

	// Removing twice is harmless
	p.Remove(items[2])
	if len(p.Layer(0)) != 2 {
		t.Error("second Remove should be a no-op")
	}
	checkDense(t, p)
}

func TestRandomAddRemoveStaysDense(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := New[*thing](3)
	var live []*thing

	for step := 0; step < 2000; step++ {
		if len(live) == 0 || rng.Float64() < 0.55 {
			it := &thing{name: step}
			p.Add(it, rng.Intn(3))
			live = append(live, it)
		} else {
			i := rng.Intn(len(live))
			p.Remove(live[i])
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
		}
		checkDense(t, p)
	}

	if p.Len() != len(live) {
		t.Errorf("Len() = %d, expected %d", p.Len(), len(live))
	}
}

func TestEachToleratesRemoval(t *testing.T) {
	p := New[*thing](2)
	for i := 0; i < 10; i++ {
		p.Add(&thing{name: i}, i%2)
	}

	visits := make(map[int]int)
	p.Each(func(it *thing) {
		visits[it.name]++
		if it.name%3 == 0 {
			p.Remove(it)
		}
	})

	if len(visits) != 10 {
		t.Errorf("visited %d objects, expected 10", len(visits))
	}
	for name, n := range visits {
		if n != 1 {
			t.Errorf("object %d visited %d times", name, n)
		}
	}
	if p.Len() != 6 {
		t.Errorf("Len() = %d after removing 4, expected 6", p.Len())
	}
	checkDense(t, p)
}

func TestEachSkipsAppendedToSameLayer(t *testing.T) {
	p := New[*thing](1)
	p.Add(&thing{name: 1}, 0)

	visited := 0
	p.Each(func(it *thing) {
		visited++
		if it.name == 1 {
			p.Add(&thing{name: 2}, 0)
		}
	})

	if visited != 1 {
		t.Errorf("visited %d, expected only the original object", visited)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", p.Len())
	}
}

func TestReset(t *testing.T) {
	p := New[*thing](2)
	a := &thing{}
	p.Add(a, 1)
	p.Reset()

	if p.Len() != 0 {
		t.Errorf("Len() = %d after Reset", p.Len())
	}
	if a.ID() != 0 {
		t.Error("Reset should unstamp objects")
	}
}
