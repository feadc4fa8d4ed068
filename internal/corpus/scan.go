package corpus

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sharkoil/csec-tutor/internal/models"
)

var supportedExts = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// Scan enumerates the corpus under dataDir. Layout:
//
//	{dataDir}/past-papers/{subject}/*.pdf  -> content type "question"
//	{dataDir}/syllabi/{subject}/*.pdf      -> content type "syllabus"
//
// A missing branch is not an error; an empty corpus returns an empty slice.
func Scan(dataDir string) ([]models.SourceFile, error) {
	var files []models.SourceFile

	branches := []struct {
		dir         string
		contentType string
	}{
		{"past-papers", models.ContentTypeQuestion},
		{"syllabi", models.ContentTypeSyllabus},
	}

	for _, branch := range branches {
		root := filepath.Join(dataDir, branch.dir)
		subjects, err := os.ReadDir(root)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, subjectDir := range subjects {
			if !subjectDir.IsDir() {
				continue
			}
			subject := NormalizeSubject(subjectDir.Name())
			entries, err := os.ReadDir(filepath.Join(root, subjectDir.Name()))
			if err != nil {
				return nil, err
			}
			for _, entry := range entries {
				if entry.IsDir() || !supportedExts[strings.ToLower(filepath.Ext(entry.Name()))] {
					continue
				}
				files = append(files, models.SourceFile{
					Path:        filepath.Join(root, subjectDir.Name(), entry.Name()),
					Subject:     subject,
					ContentType: branch.contentType,
				})
			}
		}
	}

	return files, nil
}
