package model

// indexer gives a unique index to every (day, slot) cell of a grid and vice versa
type indexer interface {
	// Returns a unique index in [0, days*slots) for the cell
	Index(day, slot uint64) uint64
	// Returns the cell of a unique index
	Attributes(index uint64) (day uint64, slot uint64)
}

func newIndexer(grid Grid) indexer {
	return &indexerImplementation{
		days:  uint64(len(grid.Days)),
		slots: uint64(len(grid.Slots)),
	}
}
