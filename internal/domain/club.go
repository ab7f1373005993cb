package domain

// Club is the professional club a member plays for.
type Club struct {
	ID   int64
	Name string
}
