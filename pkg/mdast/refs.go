package mdast

// Resource is the (URL, optional title) pair a Link or Image resolves to.
type Resource struct {
	Location string
	Name     string
	HasName  bool
}

// ReferenceTable is the document-scoped mapping from a reference id to the
// Resource it was defined to point at. It is populated strictly during
// parse (by ResourceDefinition nodes) and only read during HTML emission;
// no mutation happens during emission.
//
// Matching is exact-case: classic Markdown dialects often fold case, but
// this one does not (see DESIGN.md's Open Question resolution).
type ReferenceTable struct {
	entries map[string]*Resource
}

// NewReferenceTable creates an empty reference table.
func NewReferenceTable() *ReferenceTable {
	return &ReferenceTable{entries: make(map[string]*Resource)}
}

// Define registers id as resolving to resource. A later definition of the
// same id overwrites an earlier one, matching a simple last-write-wins
// policy for duplicate definitions.
func (t *ReferenceTable) Define(id string, resource *Resource) {
	if t.entries == nil {
		t.entries = make(map[string]*Resource)
	}
	t.entries[id] = resource
}

// Lookup returns the resource registered for id, if any.
func (t *ReferenceTable) Lookup(id string) (*Resource, bool) {
	if t.entries == nil {
		return nil, false
	}
	r, ok := t.entries[id]
	return r, ok
}

// Len returns the number of distinct ids registered.
func (t *ReferenceTable) Len() int {
	return len(t.entries)
}
