package storage

// Config holds photo storage configuration
type Config struct {
	UploadDir    string   // Directory uploads are written to
	BaseURL      string   // Public base URL files are served under, e.g. "http://localhost:8080/api/v1/files"
	MaxBytes     int64    // Upload size limit
	AllowedTypes []string // Accepted MIME types, e.g. "image/jpeg"
}
