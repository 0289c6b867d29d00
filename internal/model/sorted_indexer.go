package model

type sortedIndexer struct {
	patients uint64
	units    uint64
}

func (i *sortedIndexer) Index(patient, unit uint64) uint64 {
	return unit + i.units*patient
}

func (i *sortedIndexer) Attributes(index uint64) (patient uint64, unit uint64) {
	unit = index % i.units
	patient = index / i.units

	return patient, unit
}
