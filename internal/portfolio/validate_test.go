package portfolio

import "testing"

func TestParseProfileMinimal(t *testing.T) {
	p, err := ParseProfile([]byte(`{"name":"Jane Doe","profession":"Graphic Designer"}`))
	if err != nil {
		t.Fatalf("ParseProfile: %v", err)
	}

	if p.Name != "Jane Doe" {
		t.Errorf("Name = %q, want Jane Doe", p.Name)
	}
	if p.Profession != "Graphic Designer" {
		t.Errorf("Profession = %q, want Graphic Designer", p.Profession)
	}
	if p.Experience != "" || p.Skills != nil || p.Projects != nil {
		t.Errorf("optional fields not empty: %+v", p)
	}
	if p.Education != nil || p.Contact != nil {
		t.Errorf("education/contact not nil: %+v", p)
	}
}

func TestParseProfileFull(t *testing.T) {
	raw := []byte(`{
		"name": "Alex Chen",
		"profession": "Senior Software Developer",
		"experience": "5+ years of full-stack development",
		"skills": ["Python", "Go", "React"],
		"projects": ["E-commerce Platform"],
		"education": [{"school": "MIT", "degree": "BS", "field": "Computer Science", "start_date": "2020-09", "end_date": "2024-06"}],
		"template_id": "tech_modern",
		"contact": {"email": "alex@example.com", "phone": "+1 (555) 123-4567"}
	}`)

	p, err := ParseProfile(raw)
	if err != nil {
		t.Fatalf("ParseProfile: %v", err)
	}

	if len(p.Skills) != 3 || p.Skills[0] != "Python" {
		t.Errorf("Skills = %v", p.Skills)
	}
	if len(p.Projects) != 1 {
		t.Errorf("Projects = %v", p.Projects)
	}
	if !p.Education.Structured() || len(p.Education.Records) != 1 {
		t.Fatalf("Education = %+v, want one structured record", p.Education)
	}
	rec := p.Education.Records[0]
	if rec.School != "MIT" || rec.Degree != "BS" || rec.StartDate != "2020-09" {
		t.Errorf("record = %+v", rec)
	}
	if p.TemplateID != "tech_modern" {
		t.Errorf("TemplateID = %q", p.TemplateID)
	}
	if p.Contact == nil || p.Contact.Email != "alex@example.com" {
		t.Errorf("Contact = %+v", p.Contact)
	}
	if p.Contact.LinkedIn != "" {
		t.Errorf("LinkedIn = %q, want empty", p.Contact.LinkedIn)
	}
}

func TestParseProfileEducationText(t *testing.T) {
	p, err := ParseProfile([]byte(`{"name":"A B","profession":"Developer","education":"BS in CS from MIT"}`))
	if err != nil {
		t.Fatalf("ParseProfile: %v", err)
	}

	if p.Education == nil || p.Education.Text != "BS in CS from MIT" {
		t.Errorf("Education = %+v", p.Education)
	}
	if p.Education.Structured() {
		t.Error("free-text education reported structured")
	}
}

func TestParseProfileOptionalAbsentForms(t *testing.T) {
	// Null, empty, and zero values on optional fields all count as absent.
	tests := []struct {
		name string
		raw  string
	}{
		{"nulls", `{"name":"A B","profession":"Dev","experience":null,"skills":null,"projects":null,"education":null,"contact":null}`},
		{"empty collections", `{"name":"A B","profession":"Dev","skills":[],"projects":[],"education":[]}`},
		{"empty strings", `{"name":"A B","profession":"Dev","experience":"","education":""}`},
		{"unknown top-level keys", `{"name":"A B","profession":"Dev","theme":"dark","version":2}`},
		{"non-string template id", `{"name":"A B","profession":"Dev","template_id":7}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProfile([]byte(tt.raw))
			if err != nil {
				t.Fatalf("ParseProfile: %v", err)
			}
			if p.Experience != "" || p.Skills != nil || p.Projects != nil || p.Education != nil {
				t.Errorf("optional fields not absent: %+v", p)
			}
		})
	}
}

func TestParseProfileEducationRecordNullValues(t *testing.T) {
	raw := []byte(`{"name":"A B","profession":"Dev","education":[{"school":"MIT","degree":null}]}`)

	p, err := ParseProfile(raw)
	if err != nil {
		t.Fatalf("ParseProfile: %v", err)
	}
	rec := p.Education.Records[0]
	if rec.School != "MIT" || rec.Degree != "" {
		t.Errorf("record = %+v", rec)
	}
}

func TestParseProfileRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"name":`},
		{"null body", `null`},
		{"array body", `["name"]`},
		{"string body", `"profile"`},
		{"missing name", `{"profession":"Dev"}`},
		{"empty name", `{"name":"","profession":"Dev"}`},
		{"blank name", `{"name":"   ","profession":"Dev"}`},
		{"numeric name", `{"name":42,"profession":"Dev"}`},
		{"missing profession", `{"name":"A B"}`},
		{"null profession", `{"name":"A B","profession":null}`},
		{"numeric experience", `{"name":"A B","profession":"Dev","experience":5}`},
		{"skills not array", `{"name":"A B","profession":"Dev","skills":"Python"}`},
		{"skills numeric element", `{"name":"A B","profession":"Dev","skills":["Go",1]}`},
		{"skills null element", `{"name":"A B","profession":"Dev","skills":["Go",null]}`},
		{"projects not array", `{"name":"A B","profession":"Dev","projects":{"a":"b"}}`},
		{"education numeric", `{"name":"A B","profession":"Dev","education":12}`},
		{"education bare object", `{"name":"A B","profession":"Dev","education":{"school":"MIT"}}`},
		{"education string entry", `{"name":"A B","profession":"Dev","education":["MIT"]}`},
		{"education unknown key", `{"name":"A B","profession":"Dev","education":[{"gpa":"4.0"}]}`},
		{"education numeric value", `{"name":"A B","profession":"Dev","education":[{"school":12}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseProfile([]byte(tt.raw)); err == nil {
				t.Errorf("ParseProfile(%s) succeeded, want error", tt.raw)
			}
			if IsValid([]byte(tt.raw)) {
				t.Errorf("IsValid(%s) = true, want false", tt.raw)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid([]byte(`{"name":"A B","profession":"Dev","education":[{"school":"MIT","degree":"BS"}]}`)) {
		t.Error("IsValid rejected a school/degree education record")
	}
	if IsValid([]byte(`{"name":"A B","profession":"Dev","education":[{"school":"MIT","gpa":"4.0"}]}`)) {
		t.Error("IsValid accepted an education record with a gpa key")
	}
}

func TestParseProfileLenientContact(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *Contact
	}{
		{"non-object contact ignored", `{"name":"A B","profession":"Dev","contact":"call me"}`, nil},
		{"non-string fields ignored", `{"name":"A B","profession":"Dev","contact":{"email":5,"phone":true}}`, nil},
		{"unknown fields ignored", `{"name":"A B","profession":"Dev","contact":{"fax":"+1 555","email":"a@b.com"}}`, &Contact{Email: "a@b.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProfile([]byte(tt.raw))
			if err != nil {
				t.Fatalf("ParseProfile: %v", err)
			}
			switch {
			case tt.want == nil && p.Contact != nil:
				t.Errorf("Contact = %+v, want nil", p.Contact)
			case tt.want != nil && (p.Contact == nil || *p.Contact != *tt.want):
				t.Errorf("Contact = %+v, want %+v", p.Contact, tt.want)
			}
		})
	}
}
