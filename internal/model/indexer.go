package model

// Indexer gives a unique index to a (patient, slot-unit) decision variable
// and recovers the pair back from the index.
type Indexer interface {
	Index(patient, unit uint64) uint64
	Attributes(index uint64) (patient uint64, unit uint64)
}

func NewIndexer(patients, units uint64) Indexer {
	return &sortedIndexer{
		patients: patients,
		units:    units,
	}
}
