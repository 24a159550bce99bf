package professionals

import "time"

// Professional is a healthcare provider record.
type Professional struct {
	ID        int64
	Name      string
	Specialty string
	CRM       string
	Phone     string
	Address   string
	CreatedAt time.Time
}
