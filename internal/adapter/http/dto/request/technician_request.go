package request

// TechnicianRequest registers or updates a technician. On update, empty
// fields keep their stored value.
type TechnicianRequest struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Category          string `json:"category"`
	WorkZone          string `json:"work_zone"`
	CriminalRecordURL string `json:"criminal_record_url"`
}
