package dto

// FileUpload carries the raw bytes of a multipart upload together with the
// client-supplied filename, used only for its extension.
type FileUpload struct {
	OriginalName string
	Content      []byte
}
