package consultations

import (
	"time"

	"github.com/edalcin/medlog/internal/attachments"
)

// Consultation is a dated appointment with a healthcare professional.
// Specialty is entered independently and may differ from the
// professional's own specialty.
type Consultation struct {
	ID             int64
	Date           time.Time
	ProfessionalID int64
	Specialty      string
	Notes          string
	CreatedAt      time.Time
}

// Summary is a consultation decorated for the list view.
type Summary struct {
	Consultation
	ProfessionalName string
	FileCount        int
}

// Detail is a consultation decorated for the detail view.
type Detail struct {
	Consultation
	ProfessionalName string
	Files            []attachments.File
}
