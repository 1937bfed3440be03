package fleet

// Piece is one cell-sized segment of a ship.
type Piece struct {
	Hit bool
}

// Ship is a single ship instance. It owns its pieces.
type Ship struct {
	Kind   Kind
	Pieces []Piece
}

// NewShip creates an undamaged ship of the given kind.
func NewShip(k Kind) *Ship {
	return &Ship{
		Kind:   k,
		Pieces: make([]Piece, k.Length),
	}
}

// Hit marks piece i as hit and reports whether the ship is now destroyed.
// Hitting an already hit piece is harmless.
func (s *Ship) Hit(i int) (sunk bool) {
	if i >= 0 && i < len(s.Pieces) {
		s.Pieces[i].Hit = true
	}
	return s.IsDestroyed()
}

// IsDestroyed returns true when every piece has been hit.
func (s *Ship) IsDestroyed() bool {
	for _, p := range s.Pieces {
		if !p.Hit {
			return false
		}
	}
	return true
}

// HitCount returns how many pieces have been hit.
func (s *Ship) HitCount() int {
	n := 0
	for _, p := range s.Pieces {
		if p.Hit {
			n++
		}
	}
	return n
}

// Fleet is the set of ships belonging to one side.
type Fleet struct {
	Ships []*Ship
}

// New builds a fleet with one ship per kind, in order.
func New(kinds []Kind) *Fleet {
	f := &Fleet{Ships: make([]*Ship, 0, len(kinds))}
	for _, k := range kinds {
		f.Ships = append(f.Ships, NewShip(k))
	}
	return f
}

// Standard builds a fleet from the standard catalog.
func Standard() *Fleet {
	return New(Catalog())
}

// AllDestroyed returns true if every ship in the fleet is destroyed.
func (f *Fleet) AllDestroyed() bool {
	for _, s := range f.Ships {
		if !s.IsDestroyed() {
			return false
		}
	}
	return true
}

// Remaining returns the number of ships still afloat.
func (f *Fleet) Remaining() int {
	n := 0
	for _, s := range f.Ships {
		if !s.IsDestroyed() {
			n++
		}
	}
	return n
}

// ShipStatus is a read-only summary of one ship.
type ShipStatus struct {
	Kind      Kind
	Hits      int
	Destroyed bool
}

// Status lists every ship with its damage, in fleet order.
func (f *Fleet) Status() []ShipStatus {
	out := make([]ShipStatus, len(f.Ships))
	for i, s := range f.Ships {
		out[i] = ShipStatus{
			Kind:      s.Kind,
			Hits:      s.HitCount(),
			Destroyed: s.IsDestroyed(),
		}
	}
	return out
}
