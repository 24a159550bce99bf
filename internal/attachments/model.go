package attachments

import "time"

// File is the metadata row for one uploaded document tied to a
// consultation. Filename is the storage key locating the bytes on disk.
type File struct {
	ID               int64
	ConsultationID   int64
	Filename         string
	OriginalFilename string
	FileType         string
	Description      string
	UploadedAt       time.Time
}
