package kafka

// OverrideEvent is published to the rate-events topic whenever a
// custom override is created, ended or deactivated.
type OverrideEvent struct {
	EventType  string  `json:"event_type"`
	OverrideID string  `json:"override_id"`
	OwnerID    string  `json:"owner_id"`
	CabID      string  `json:"cab_id,omitempty"`
	Rate       float64 `json:"rate"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date,omitempty"`
	Reason     string  `json:"reason,omitempty"`
}

// AssignmentEvent is published to the profile-events topic whenever a
// shift gains or loses a profile assignment.
type AssignmentEvent struct {
	EventType    string `json:"event_type"`
	AssignmentID string `json:"assignment_id"`
	ShiftID      string `json:"shift_id"`
	ProfileID    string `json:"profile_id"`
	ProfileCode  string `json:"profile_code,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	AssignedBy   string `json:"assigned_by,omitempty"`
}

const (
	EventOverrideCreated     = "OVERRIDE_CREATED"
	EventOverrideEnded       = "OVERRIDE_ENDED"
	EventOverrideDeactivated = "OVERRIDE_DEACTIVATED"
	EventProfileAssigned     = "PROFILE_ASSIGNED"
	EventAssignmentEnded     = "ASSIGNMENT_ENDED"
)
