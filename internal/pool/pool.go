// Package pool stores live simulation objects in dense per-layer slices with
// O(1) add and swap-remove. Each object carries a Slot recording its 1-based
// index and layer; only this package writes it.
package pool

// Slot is the pool bookkeeping embedded in pooled objects.
// Its fields are unexported so gameplay code can read but never move them.
type Slot struct {
	id    int
	layer int
}

// ID returns the 1-based index of the object in its layer, or 0 when the
// object is not pooled.
func (s *Slot) ID() int { return s.id }

// Layer returns the layer the object was added to.
func (s *Slot) Layer() int { return s.layer }

// PoolSlot exposes the slot to the pool. Embedding Slot satisfies Item.
func (s *Slot) PoolSlot() *Slot { return s }

// Item is anything that embeds a Slot.
type Item interface {
	PoolSlot() *Slot
}

// Layered is a fixed set of dense layers.
type Layered[T Item] struct {
	layers [][]T
}

// New creates a pool with n layers.
func New[T Item](n int) *Layered[T] {
	return &Layered[T]{layers: make([][]T, n)}
}

// Add appends item to layer and stamps its slot.
func (p *Layered[T]) Add(item T, layer int) {
	p.layers[layer] = append(p.layers[layer], item)
	slot := item.PoolSlot()
	slot.id = len(p.layers[layer])
	slot.layer = layer
}

// Remove takes item out of its layer by moving the last element into its
// place. Removing an item that is not pooled is a no-op.
func (p *Layered[T]) Remove(item T) {
	slot := item.PoolSlot()
	if slot.id == 0 {
		return
	}
	layer := p.layers[slot.layer]
	last := layer[len(layer)-1]
	var zero T
	layer[len(layer)-1] = zero
	layer = layer[:len(layer)-1]

	if last.PoolSlot() != slot {
		layer[slot.id-1] = last
		last.PoolSlot().id = slot.id
	}
	p.layers[slot.layer] = layer
	slot.id = 0
}

// Layer returns the live slice of a layer. Callers must not modify it.
func (p *Layered[T]) Layer(layer int) []T {
	return p.layers[layer]
}

// Layers returns the number of layers.
func (p *Layered[T]) Layers() int {
	return len(p.layers)
}

// Len returns the number of pooled objects across all layers.
func (p *Layered[T]) Len() int {
	n := 0
	for _, l := range p.layers {
		n += len(l)
	}
	return n
}

// Each visits every object, layer by layer, from the highest index down.
// fn may remove the visited object or append new ones. Objects appended to
// the layer being walked are not visited in this pass, and no survivor of
// that layer is visited twice.
func (p *Layered[T]) Each(fn func(T)) {
	for l := range p.layers {
		for i := len(p.layers[l]) - 1; i >= 0; i-- {
			if i >= len(p.layers[l]) {
				continue
			}
			fn(p.layers[l][i])
		}
	}
}

// Reset empties every layer.
func (p *Layered[T]) Reset() {
	for l := range p.layers {
		for _, item := range p.layers[l] {
			item.PoolSlot().id = 0
		}
		clear(p.layers[l])
		p.layers[l] = p.layers[l][:0]
	}
}
