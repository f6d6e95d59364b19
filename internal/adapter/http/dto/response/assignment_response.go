package response

// AssignmentResponse is the read-time resolution of the technician relation.
// The name is looked up through the reference on every call, so it always
// reflects the current technician profile.
type AssignmentResponse struct {
	ServiceRequestID string `json:"service_request_id"`
	TechnicianName   string `json:"technician_name"`
}
