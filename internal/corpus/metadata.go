package corpus

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sharkoil/csec-tutor/internal/models"
)

var (
	yearRe  = regexp.MustCompile(models.YearRegex)
	paperRe = regexp.MustCompile(models.PaperRegex)
)

// ExtractFileMetadata pulls the exam year, paper number and session out of a
// past-paper filename, e.g. "maths_paper2_may2019.pdf". Fields that cannot
// be inferred are simply absent.
func ExtractFileMetadata(filename, contentType string) map[string]any {
	meta := map[string]any{
		"source":       filename,
		"content_type": contentType,
	}

	if m := yearRe.FindString(filename); m != "" {
		if year, err := strconv.Atoi(m); err == nil {
			meta["year"] = year
		}
	}

	lower := strings.ToLower(filename)
	if m := paperRe.FindStringSubmatch(lower); m != nil {
		if paper, err := strconv.Atoi(m[1]); err == nil {
			meta["paper"] = paper
		}
	}

	switch {
	case strings.Contains(lower, "jan"):
		meta["session"] = "January"
	case strings.Contains(lower, "may"), strings.Contains(lower, "jun"):
		meta["session"] = "May/June"
	}

	return meta
}
