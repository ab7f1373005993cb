package domain

// Member is a person on a squad roster.
type Member struct {
	ID          int64
	FirstName   string
	Nickname    string
	LastName    string
	Age         int
	ShirtNumber int
	SquadID     int64
	ClubID      int64
	RoleID      int64
}

// MemberDetail is a member with its related records resolved.
type MemberDetail struct {
	Member
	Squad Squad
	Club  Club
	Role  Role
}
