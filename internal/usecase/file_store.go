package usecase

import "fmt"

// FileStore is the binary-content collaborator consumed by registries that
// accept photo uploads. Save returns the generated filename only; callers
// build the public path from it. Stored files are never deleted and reads go
// through the static /uploads handler, so Save is the whole contract.
type FileStore interface {
	Save(content []byte, originalName, subfolder string) (string, error)
}

// Upload subfolders, one per entity kind
const (
	doctorUploadFolder     = "doctors"
	patientUploadFolder    = "patients"
	eventUploadFolder      = "events"
	historiqueUploadFolder = "historiques"
)

// publicUploadPath is the path stored on the entity and served under /uploads.
func publicUploadPath(subfolder, name string) string {
	return fmt.Sprintf("uploads/%s/%s", subfolder, name)
}
