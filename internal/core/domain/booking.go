package domain

import "time"

// Event is a one-off facility reservation. Overlap is checked per
// (facility, date) partition.
type Event struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	Facility   string `json:"facility" bson:"facility"`
	Sport      string `json:"sport" bson:"sport"`
	Date       string `json:"date" bson:"date"` // YYYY-MM-DD
	MemberName string `json:"memberName" bson:"member_name"`
	Title      string `json:"title" bson:"title"`
	LoadedBy   string `json:"loadedBy" bson:"loaded_by"`
	StartTime  string `json:"startTime" bson:"start_time"` // HH:MM
	EndTime    string `json:"endTime" bson:"end_time"`     // HH:MM
}

// Schedule is a recurring weekly class slot. Overlap is checked per
// (facility, weekday) partition.
type Schedule struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Weekday   string `json:"weekday" bson:"weekday"`
	Facility  string `json:"facility" bson:"facility"`
	Sport     string `json:"sport" bson:"sport"`
	Category  string `json:"category" bson:"category"`
	LoadedBy  string `json:"loadedBy" bson:"loaded_by"`
	StartTime string `json:"startTime" bson:"start_time"` // HH:MM
	EndTime   string `json:"endTime" bson:"end_time"`     // HH:MM
}

// ActivityRecord is one entry in the booking audit trail.
type ActivityRecord struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Actor      string    `json:"actor" bson:"actor"`
	Action     string    `json:"action" bson:"action"`
	Resource   string    `json:"resource" bson:"resource"`
	ResourceID string    `json:"resourceId" bson:"resource_id"`
	Detail     string    `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
