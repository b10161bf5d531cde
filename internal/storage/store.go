package storage

// FileStore persists patient documents (X-ray scans, treatment plans,
// consent forms) and returns a public URL for each upload.
type FileStore interface {
	UploadFile(file []byte, filename string, folder string) (string, error)
	DeleteFile(publicID string, folder string) error
}
