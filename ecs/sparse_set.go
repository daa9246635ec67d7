package ecs

// SparseSet is component storage keyed by entity ID. Values are held as
// `any`; the typed accessors in generics.go cast on the way out.
type SparseSet struct {
	denseEntities []int
	denseValues   []any
	sparse        []int
}

func NewSparseSet() *SparseSet {
	return &SparseSet{}
}

func (s *SparseSet) Has(id int) bool {
	if id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == id
}

func (s *SparseSet) Get(id int) (any, bool) {
	if !s.Has(id) {
		return nil, false
	}
	return s.denseValues[s.sparse[id-1]], true
}

// Set inserts or updates the component for id.
func (s *SparseSet) Set(id int, v any) {
	if id <= 0 {
		return
	}
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseEntities = append(s.denseEntities, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the component for id by swapping the last dense slot in.
func (s *SparseSet) Remove(id int) {
	if !s.Has(id) {
		return
	}
	idx := s.sparse[id-1]
	last := len(s.denseEntities) - 1
	lastID := s.denseEntities[last]

	s.denseEntities[idx] = s.denseEntities[last]
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
}

// Entities returns the dense entity id list. Callers must not mutate it.
func (s *SparseSet) Entities() []int {
	return s.denseEntities
}

func (s *SparseSet) Len() int {
	return len(s.denseEntities)
}
