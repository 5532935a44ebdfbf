package registry

import (
	"sync"

	"github.com/Hfear/job-registry/internal/domain"
	"github.com/Hfear/job-registry/internal/metrics"
)

// Store holds the ordered job sequence behind an RWMutex.
type Store struct {
	mu   sync.RWMutex
	jobs []domain.Job
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWithJobs returns a store pre-populated with the given records, in
// order. The slice is copied; callers keep ownership of theirs.
func NewStoreWithJobs(jobs []domain.Job) *Store {
	s := &Store{jobs: make([]domain.Job, len(jobs))}
	copy(s.jobs, jobs)
	metrics.RegistrySize.Set(float64(len(jobs)))
	return s
}

// List returns a copy of the full ordered sequence. The records themselves
// are shallow-copied so callers cannot mutate stored state.
func (s *Store) List() []domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Job, len(s.jobs))
	for i, j := range s.jobs {
		out[i] = j.Clone()
	}
	return out
}

// Get returns the first record whose id matches, or ErrJobNotFound.
func (s *Store) Get(id int) (domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, j := range s.jobs {
		if j.HasID(id) {
			return j.Clone(), nil
		}
	}
	return nil, domain.ErrJobNotFound
}

// Create appends the payload verbatim to the end of the sequence and returns
// the stored record. The caller-supplied payload is trusted as-is: no id is
// assigned here (see NextID).
func (s *Store) Create(job domain.Job) domain.Job {
	stored := job.Clone()

	s.mu.Lock()
	s.jobs = append(s.jobs, stored)
	size := len(s.jobs)
	s.mu.Unlock()

	metrics.JobsCreatedTotal.Inc()
	metrics.RegistrySize.Set(float64(size))
	return stored.Clone()
}

// Update shallow-merges patch onto the matching record (patch keys win),
// writes the merged record back at the same position, and returns it.
// Existence is checked before merging so a miss never writes anything.
func (s *Store) Update(id int, patch domain.Job) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, j := range s.jobs {
		if j.HasID(id) {
			merged := j.Merge(patch)
			s.jobs[i] = merged
			metrics.JobsUpdatedTotal.Inc()
			return merged.Clone(), nil
		}
	}
	return nil, domain.ErrJobNotFound
}

// Delete removes the matching record from the sequence.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, j := range s.jobs {
		if j.HasID(id) {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			metrics.JobsDeletedTotal.Inc()
			metrics.RegistrySize.Set(float64(len(s.jobs)))
			return nil
		}
	}
	return domain.ErrJobNotFound
}

// Len returns the current number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// NextID computes the identifier a newly created record would get: the last
// record's id + 1, or 1 when the sequence is empty. Create intentionally does
// not call this, matching the service's observed contract where the client
// supplies ids.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.jobs) == 0 {
		return 1
	}
	last, ok := s.jobs[len(s.jobs)-1].ID()
	if !ok {
		return 1
	}
	return last + 1
}
