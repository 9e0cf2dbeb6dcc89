// Package portfolio defines the profile input model, its strict validation,
// and the assembled portfolio output model.
package portfolio

// Profile is a validated generation request payload.
type Profile struct {
	Name       string     `json:"name"`
	Profession string     `json:"profession"`
	Experience string     `json:"experience,omitempty"`
	Skills     []string   `json:"skills,omitempty"`
	Projects   []string   `json:"projects,omitempty"`
	Education  *Education `json:"education,omitempty"`
	TemplateID string     `json:"template_id,omitempty"`
	Contact    *Contact   `json:"contact,omitempty"`
}

// Education carries the education union: free text, or an ordered list of
// structured records. At most one of the two is set.
type Education struct {
	Text    string            `json:"text,omitempty"`
	Records []EducationRecord `json:"records,omitempty"`
}

// Structured reports whether structured records were supplied.
func (e *Education) Structured() bool {
	return e != nil && len(e.Records) > 0
}

// EducationRecord is one structured education entry. GPA and Honors are not
// accepted on the wire; they render only when set by library callers.
type EducationRecord struct {
	School    string `json:"school,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	GPA       string `json:"gpa,omitempty"`
	Honors    string `json:"honors,omitempty"`
}

// Contact is the portfolio contact block. As an input override any subset of
// fields may be set; as generator output every field is populated.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// Testimonial is one generated endorsement.
type Testimonial struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Position string `json:"position"`
}
