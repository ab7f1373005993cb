package domain

// Role describes a member's function within the squad (goalkeeper, coach...).
type Role struct {
	ID    int64
	Title string
}
