package book

// AddressBook is a name-keyed collection of records. Keys are unique by
// construction and iteration follows insertion order, which keeps listings
// and completion output deterministic.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// New creates an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts the record under its name, overwriting any existing entry with
// the same key (last write wins). An overwritten entry keeps its original
// position in the iteration order.
func (ab *AddressBook) Add(rec *Record) {
	key := rec.Name()
	if _, exists := ab.records[key]; !exists {
		ab.order = append(ab.order, key)
	}
	ab.records[key] = rec
}

// Find looks up a record by its exact name. A miss is a normal outcome, not
// an error.
func (ab *AddressBook) Find(name string) (*Record, bool) {
	rec, ok := ab.records[name]
	return rec, ok
}

// Delete removes the entry for name and reports whether a removal happened.
func (ab *AddressBook) Delete(name string) bool {
	if _, ok := ab.records[name]; !ok {
		return false
	}
	delete(ab.records, name)
	for i, key := range ab.order {
		if key == name {
			ab.order = append(ab.order[:i], ab.order[i+1:]...)
			break
		}
	}
	return true
}

// Records returns all records in insertion order.
func (ab *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(ab.order))
	for _, key := range ab.order {
		out = append(out, ab.records[key])
	}
	return out
}

// Names returns the contact names in insertion order. Used by the completion
// collaborator, which must not mutate the book.
func (ab *AddressBook) Names() []string {
	out := make([]string, len(ab.order))
	copy(out, ab.order)
	return out
}

// Len reports the number of stored records.
func (ab *AddressBook) Len() int {
	return len(ab.records)
}
