package models

// SourceFile is one corpus document discovered on disk, with the subject
// inferred from its parent folder name.
type SourceFile struct {
	Path        string
	Subject     string
	ContentType string
}
