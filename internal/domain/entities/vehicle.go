package entities

// Vehicle belongs to exactly one client (ClientID back-reference).
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: id
//
// Km is the last odometer reading recorded by the workshop. Finalizing a
// service order overwrites it with the value supplied at that time; a lower
// reading silently replaces a higher one (no monotonic clamp).

type Vehicle struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id"`
	Plate        string `json:"plate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	Km           int    `json:"km"`
	Observations string `json:"observations,omitempty"`
}
