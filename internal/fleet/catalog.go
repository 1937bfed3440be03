// Package fleet defines the ship catalog and the per-side fleet that tracks
// which pieces of which ships have been hit.
package fleet

// Kind describes one type of ship.
type Kind struct {
	Name   string
	Symbol rune // Shown on the owner's board
	Length int
}

// String returns the ship name.
func (k Kind) String() string {
	return k.Name
}

// Standard ship kinds, longest first.
var (
	Carrier    = Kind{Name: "Carrier", Symbol: 'C', Length: 5}
	Battleship = Kind{Name: "Battleship", Symbol: 'B', Length: 4}
	Frigate    = Kind{Name: "Frigate", Symbol: 'F', Length: 3}
	Submarine  = Kind{Name: "Submarine", Symbol: 'S', Length: 3}
	Destroyer  = Kind{Name: "Destroyer", Symbol: 'D', Length: 2}
)

// Catalog returns the five standard kinds in placement order.
func Catalog() []Kind {
	return []Kind{Carrier, Battleship, Frigate, Submarine, Destroyer}
}

// TotalLength returns the number of cells the given kinds occupy.
func TotalLength(kinds []Kind) int {
	total := 0
	for _, k := range kinds {
		total += k.Length
	}
	return total
}
