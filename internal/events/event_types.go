package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMemberCreated EventType = "member_created"
	EventMemberUpdated EventType = "member_updated"
	EventMemberDeleted EventType = "member_deleted"

	EventSquadCreated EventType = "squad_created"
	EventSquadUpdated EventType = "squad_updated"
	EventSquadDeleted EventType = "squad_deleted"

	EventClubCreated EventType = "club_created"
	EventClubUpdated EventType = "club_updated"
	EventClubDeleted EventType = "club_deleted"

	EventRoleCreated EventType = "role_created"
	EventRoleUpdated EventType = "role_updated"
	EventRoleDeleted EventType = "role_deleted"
)

// RosterEventTypes lists every event a roster mutation can emit.
var RosterEventTypes = []EventType{
	EventMemberCreated, EventMemberUpdated, EventMemberDeleted,
	EventSquadCreated, EventSquadUpdated, EventSquadDeleted,
	EventClubCreated, EventClubUpdated, EventClubDeleted,
	EventRoleCreated, EventRoleUpdated, EventRoleDeleted,
}

// Event represents a roster change emitted by services. EntityID is the id of
// the changed member, squad, club, or role depending on Type.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  int64       `json:"entity_id"`
	ActorID   int64       `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MemberChangedPayload describes the roster slot affected by a change.
type MemberChangedPayload struct {
	SquadID     int64  `json:"squad_id"`
	ClubID      int64  `json:"club_id"`
	RoleID      int64  `json:"role_id"`
	LastName    string `json:"last_name"`
	ShirtNumber int    `json:"shirt_number"`
}

// SquadChangedPayload carries the squad state after a change.
type SquadChangedPayload struct {
	Country string `json:"country"`
}

// ClubChangedPayload carries the club state after a change.
type ClubChangedPayload struct {
	Name string `json:"name"`
}

// RoleChangedPayload carries the role state after a change.
type RoleChangedPayload struct {
	Title string `json:"title"`
}
