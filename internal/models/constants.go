package models

const (
	YearRegex  = `(19|20)\d{2}`
	PaperRegex = `p(?:aper)?[_\-\s]?([123])`

	ContentTypeQuestion = "question"
	ContentTypeSyllabus = "syllabus"

	GeneralTopic = "General"
)
