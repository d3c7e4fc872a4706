// Package i18n holds the label strings printed on exams, in English and
// Spanish.
package i18n

// Language selects the label set used on generated PDFs.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// Strings is the full set of printable labels for one language.
type Strings struct {
	StudentLabel   string
	CourseLabel    string
	ClassLabel     string
	ProfessorLabel string
	DateLabel      string
	ListNumber     string
	ValueLabel     string
	PointsSuffix   string
	GradeLabel     string

	InstructionsTitle string
	InstructionsText  string

	AnswerSheetTitle string
	AnswerKeyBanner  string

	StudentBlank string
	CourseBlank  string
	DateBlank    string
	ListBlank    string
}

var texts = map[Language]Strings{
	English: {
		StudentLabel:   "Student",
		CourseLabel:    "Course",
		ClassLabel:     "Class",
		ProfessorLabel: "Professor",
		DateLabel:      "Date",
		ListNumber:     "#List",
		ValueLabel:     "Value",
		PointsSuffix:   "pts",
		GradeLabel:     "Grade",

		InstructionsTitle: "INSTRUCTIONS",
		InstructionsText: "Read each question carefully and select the correct answer by " +
			"completely filling in the corresponding circle. Use only pencil No. 2 or blue or black pen.",

		AnswerSheetTitle: "ANSWER SHEET",
		AnswerKeyBanner:  "ANSWER KEY - ANSWER SHEET",

		StudentBlank: "Student: _________________________________________________________________",
		CourseBlank:  "Course: ___________________",
		DateBlank:    "Date: ________________",
		ListBlank:    "#List: ________________",
	},
	Spanish: {
		StudentLabel:   "Alumno",
		CourseLabel:    "Curso",
		ClassLabel:     "Clase",
		ProfessorLabel: "Profesor",
		DateLabel:      "Fecha",
		ListNumber:     "#Lista",
		ValueLabel:     "Valor",
		PointsSuffix:   "pts",
		GradeLabel:     "Calificación",

		InstructionsTitle: "INSTRUCCIONES",
		InstructionsText: "Lea cuidadosamente cada pregunta y seleccione la respuesta correcta " +
			"rellenando completamente el círculo correspondiente. Use únicamente lápiz No. 2 o bolígrafo azul o negro.",

		AnswerSheetTitle: "HOJA DE RESPUESTAS",
		AnswerKeyBanner:  "PAUTA - HOJA DE RESPUESTAS",

		StudentBlank: "Alumno: _________________________________________________________________",
		CourseBlank:  "Curso: ___________________",
		DateBlank:    "Fecha: ________________",
		ListBlank:    "#Lista: ________________",
	},
}

// Get returns the strings for lang, falling back to English for anything
// unrecognized.
func Get(lang Language) Strings {
	if s, ok := texts[lang]; ok {
		return s
	}
	return texts[English]
}
