package corpus

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type subjectAlias struct {
	alias     string
	canonical string
}

// Ordered so the containment fallback has a reproducible first-match.
var subjectAliases = []subjectAlias{
	{"math", "Mathematics"},
	{"maths", "Mathematics"},
	{"mathematics", "Mathematics"},
	{"bio", "Biology"},
	{"biology", "Biology"},
	{"chem", "Chemistry"},
	{"chemistry", "Chemistry"},
	{"phys", "Physics"},
	{"physics", "Physics"},
	{"english-a", "English A"},
	{"english-b", "English B"},
	{"englisha", "English A"},
	{"englishb", "English B"},
	{"history", "Caribbean History"},
	{"caribbean-history", "Caribbean History"},
	{"economics", "Economics"},
	{"econ", "Economics"},
	{"geography", "Geography"},
	{"geo", "Geography"},
	{"pob", "Principles of Business"},
	{"principles-of-business", "Principles of Business"},
	{"poa", "Principles of Accounts"},
	{"principles-of-accounts", "Principles of Accounts"},
	{"it", "Information Technology"},
	{"information-technology", "Information Technology"},
	{"cs", "Computer Science"},
	{"social-studies", "Social Studies"},
	{"spanish", "Spanish"},
	{"french", "French"},
	{"integrated-science", "Integrated Science"},
	{"agricultural-science", "Agricultural Science"},
	{"human-and-social-biology", "Human and Social Biology"},
	{"hsb", "Human and Social Biology"},
	{"visual-arts", "Visual Arts"},
	{"music", "Music"},
	{"physical-education", "Physical Education"},
	{"pe", "Physical Education"},
	{"office-administration", "Office Administration"},
	{"theatre-arts", "Theatre Arts"},
	{"electronic-document-preparation", "Electronic Document Preparation"},
	{"edpm", "Electronic Document Preparation"},
	{"food-and-nutrition", "Food and Nutrition"},
	{"home-economics", "Home Economics"},
	{"textiles-clothing-and-fashion", "Textiles Clothing and Fashion"},
	{"technical-drawing", "Technical Drawing"},
	{"building-technology", "Building Technology"},
	{"electrical-and-electronic-technology", "Electrical and Electronic Technology"},
	{"mechanical-engineering-technology", "Mechanical Engineering Technology"},
	{"religious-education", "Religious Education"},
}

// NormalizeSubject maps a corpus folder name to a canonical CSEC subject
// name. Exact alias match first, then substring containment in table order,
// then a title-cased fallback. Never returns an empty name for a non-empty
// folder name.
func NormalizeSubject(folderName string) string {
	key := strings.ToLower(strings.TrimSpace(folderName))
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, " ", "-")

	for _, sa := range subjectAliases {
		if sa.alias == key {
			return sa.canonical
		}
	}
	for _, sa := range subjectAliases {
		if strings.Contains(key, sa.alias) || strings.Contains(sa.alias, key) {
			return sa.canonical
		}
	}

	name := strings.ReplaceAll(folderName, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
