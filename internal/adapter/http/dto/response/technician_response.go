package response

import (
	"time"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
)

type TechnicianResponse struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	FullName          string    `json:"full_name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email,omitempty"`
	Category          string    `json:"category"`
	WorkZone          string    `json:"work_zone"`
	CriminalRecordURL string    `json:"criminal_record_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromTechnician(t entities.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:                t.ID,
		FirstName:         t.FirstName,
		LastName:          t.LastName,
		FullName:          t.FullName(),
		Phone:             t.Phone,
		Email:             t.Email,
		Category:          t.Category,
		WorkZone:          t.WorkZone,
		CriminalRecordURL: t.CriminalRecordURL,
		CreatedAt:         t.CreatedAt,
	}
}

func FromTechnicians(items []entities.Technician) []TechnicianResponse {
	out := make([]TechnicianResponse, 0, len(items))
	for _, t := range items {
		out = append(out, FromTechnician(t))
	}
	return out
}
