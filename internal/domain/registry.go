package domain

// Registry is the ordered in-memory collection of job records. All operations
// are safe for concurrent use; handlers run on parallel goroutines.
type Registry interface {
	// List returns a copy of the full ordered sequence.
	List() []Job
	// Get returns the first record matching id, or ErrJobNotFound.
	Get(id int) (Job, error)
	// Create appends the payload verbatim and returns the stored record.
	// No server-side id assignment happens here.
	Create(job Job) Job
	// Update shallow-merges patch onto the matching record in place (patch
	// keys win) and returns the merged record, or ErrJobNotFound.
	Update(id int, patch Job) (Job, error)
	// Delete removes the matching record, or returns ErrJobNotFound.
	Delete(id int) error
	// Len returns the current number of records.
	Len() int
	// NextID returns last record's id + 1, or 1 when the sequence is empty.
	NextID() int
}
