package model

type indexerImplementation struct {
	days  uint64
	slots uint64
}

func (indexer *indexerImplementation) Index(day, slot uint64) uint64 {
	return slot + indexer.slots*day
}

func (indexer *indexerImplementation) Attributes(index uint64) (day, slot uint64) {
	slot = index % indexer.slots
	day = index / indexer.slots
	return day, slot
}
