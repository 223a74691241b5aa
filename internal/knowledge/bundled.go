package knowledge

import _ "embed"

//go:embed data/starter.csv
var starterCSV string

// LoadBundled creates a store initialized from the CSV data set that ships
// with the binary.
func LoadBundled(cfg Config) *Store {
	s := NewStore(cfg)
	s.Initialize(starterCSV)
	return s
}
