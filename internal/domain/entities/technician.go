package entities

import "time"

// Technician is the field worker ("maestro") that can be assigned to a
// service request.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Technicians are referenced by id from service requests; their profile can
// be edited at any time and the assignment must keep reflecting the current
// profile, so no field of this record is ever copied onto a request.
type Technician struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email,omitempty"`
	Category          string    `json:"category"`
	WorkZone          string    `json:"work_zone"`
	CriminalRecordURL string    `json:"criminal_record_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// FullName returns the technician's display name.
func (t Technician) FullName() string {
	if t.FirstName == "" {
		return t.LastName
	}
	if t.LastName == "" {
		return t.FirstName
	}
	return t.FirstName + " " + t.LastName
}
