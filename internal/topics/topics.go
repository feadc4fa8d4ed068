// Package topics assigns CSEC syllabus topic labels to extracted text by
// keyword matching against per-subject tables.
package topics

import (
	"strings"

	"github.com/sharkoil/csec-tutor/internal/models"
)

type topicEntry struct {
	topic    string
	keywords []string
}

var subjectTopics = map[string][]topicEntry{
	"Mathematics": {
		{"algebra", []string{"algebra", "equation", "polynomial", "factori", "quadratic"}},
		{"geometry", []string{"geometry", "triangle", "circle", "angle", "polygon", "theorem"}},
		{"trigonometry", []string{"trigonometry", "sine", "cosine", "tangent", "pythagor"}},
		{"statistics", []string{"statistics", "mean", "median", "mode", "probability", "data"}},
		{"calculus", []string{"calculus", "differentiat", "integrat", "derivative"}},
		{"sets", []string{"sets", "venn diagram", "union", "intersection"}},
		{"functions", []string{"function", "domain", "range", "mapping"}},
		{"vectors", []string{"vector", "scalar", "magnitude", "direction"}},
		{"matrices", []string{"matrix", "matrices", "determinant"}},
		{"mensuration", []string{"area", "volume", "surface area", "perimeter"}},
	},
	"Biology": {
		{"cells", []string{"cell", "membrane", "nucleus", "mitochondri", "cytoplasm"}},
		{"genetics", []string{"gene", "dna", "chromosome", "heredit", "mutation"}},
		{"ecology", []string{"ecology", "ecosystem", "food chain", "habitat", "biodiversity"}},
		{"human biology", []string{"human body", "organ", "digest", "circulat", "respir"}},
		{"plant biology", []string{"photosynthesis", "plant", "chlorophyll", "transpir"}},
		{"evolution", []string{"evolution", "natural selection", "adaptation", "species"}},
	},
	"Chemistry": {
		{"atomic structure", []string{"atom", "electron", "proton", "neutron", "isotope"}},
		{"bonding", []string{"bond", "ionic", "covalent", "metallic"}},
		{"reactions", []string{"reaction", "equation", "product", "reactant"}},
		{"acids and bases", []string{"acid", "base", "ph", "neutrali"}},
		{"organic chemistry", []string{"organic", "hydrocarbon", "alkane", "alkene"}},
		{"electrochemistry", []string{"electrolysis", "electrode", "electrolyte"}},
	},
	"Physics": {
		{"mechanics", []string{"force", "motion", "velocity", "acceleration", "momentum"}},
		{"waves", []string{"wave", "frequency", "wavelength", "sound", "light"}},
		{"electricity", []string{"electric", "current", "voltage", "resistance", "circuit"}},
		{"magnetism", []string{"magnet", "magnetic field", "electromagnet"}},
		{"heat", []string{"heat", "temperature", "thermal", "conduction", "convection"}},
		{"energy", []string{"energy", "kinetic", "potential", "conservation"}},
	},
}

// Detect returns the topics whose keywords appear in the text
// (case-insensitive substring match), in table order. Subjects without a
// table and texts matching nothing get the generic topic.
func Detect(text, subject string) []string {
	entries, ok := subjectTopics[subject]
	if !ok {
		return []string{models.GeneralTopic}
	}

	textLower := strings.ToLower(text)
	var matched []string
	for _, entry := range entries {
		for _, keyword := range entry.keywords {
			if strings.Contains(textLower, keyword) {
				matched = append(matched, entry.topic)
				break
			}
		}
	}

	if len(matched) == 0 {
		return []string{models.GeneralTopic}
	}
	return matched
}
