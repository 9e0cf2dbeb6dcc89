package textgen

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"github.com/forgefolio/forgefolio/internal/enhance"
	"github.com/forgefolio/forgefolio/internal/portfolio"
	"github.com/forgefolio/forgefolio/internal/sections"
	"github.com/forgefolio/forgefolio/internal/templates"
)

// Synthesizer produces portfolio text locally, without any external call. Its
// output mirrors what the Groq path returns: bold-headed sections the
// extraction step can split on.
type Synthesizer struct{}

// NewSynthesizer creates a local text synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// narrative renders one style's portfolio text from normalized profile fields.
type narrative func(in narrativeInput) string

// narrativeInput is a profile with demo defaults applied and skills capped at
// the first three entries.
type narrativeInput struct {
	Name       string
	Profession string
	Experience string
	Skills     []string
	Projects   []string
	Education  string
}

var narratives = map[templates.Style]narrative{
	templates.StyleModern:    modernNarrative,
	templates.StyleCreative:  creativeNarrative,
	templates.StyleCorporate: corporateNarrative,
	templates.StyleAcademic:  academicNarrative,
	templates.StyleFreelance: freelanceNarrative,
}

// projectPhrases gives each style its own achievement phrasing for project
// bullets.
var projectPhrases = map[templates.Style]string{
	templates.StyleModern:    "built end to end with a focus on performance and clean architecture",
	templates.StyleCreative:  "an original piece that pushed the visual identity in a bold new direction",
	templates.StyleCorporate: "delivered on schedule and adopted across the organization",
	templates.StyleAcademic:  "a peer-reviewed contribution recognized within the field",
	templates.StyleFreelance: "completed for a client on time, on budget, and to a five-star review",
}

// Generate synthesizes portfolio text for the template's style. Unknown
// styles fall back to the modern narrative.
func (s *Synthesizer) Generate(_ context.Context, profile portfolio.Profile, tmpl templates.Template) (string, error) {
	fn, ok := narratives[tmpl.Style]
	if !ok {
		fn = modernNarrative
	}
	return fn(newNarrativeInput(profile)), nil
}

func newNarrativeInput(p portfolio.Profile) narrativeInput {
	in := narrativeInput{
		Name:       cmp.Or(p.Name, "John Doe"),
		Profession: cmp.Or(p.Profession, "Software Developer"),
		Experience: cmp.Or(p.Experience, "5 years of experience"),
		Skills:     p.Skills,
		Projects:   p.Projects,
		Education:  enhance.EducationText(p.Education),
	}
	if len(in.Skills) == 0 {
		in.Skills = []string{"Python", "JavaScript", "React"}
	}
	if len(in.Skills) > 3 {
		in.Skills = in.Skills[:3]
	}
	if len(in.Projects) == 0 {
		in.Projects = []string{"E-commerce Platform", "Task Management App"}
	}
	return in
}

// heading renders the bold marker line for a canonical section id, using the
// same display names the extraction table resolves.
func heading(id string) string {
	return "**" + sections.Heading(id) + "**"
}

func (in narrativeInput) skillList() string {
	return strings.Join(in.Skills, ", ")
}

func (in narrativeInput) projectBullets(style templates.Style) string {
	phrase := projectPhrases[style]
	lines := make([]string, 0, len(in.Projects))
	for _, proj := range in.Projects {
		lines = append(lines, "• "+proj+" - "+phrase)
	}
	return strings.Join(lines, "\n")
}

func modernNarrative(in narrativeInput) string {
	var b strings.Builder
	b.WriteString(heading("summary") + "\n")
	fmt.Fprintf(&b, "%s is a dedicated %s with %s. With a passion for creating innovative solutions and a strong foundation in modern technologies, %s brings expertise and creativity to every project.\n\n",
		in.Name, in.Profession, in.Experience, in.Name)
	b.WriteString(heading("skills") + "\n")
	fmt.Fprintf(&b, "• %s\n", in.skillList())
	b.WriteString("• Problem-solving and analytical thinking\n")
	b.WriteString("• Agile development methodologies\n")
	b.WriteString("• Version control with Git\n")
	b.WriteString("• Database design and optimization\n\n")
	b.WriteString(heading("experience") + "\n")
	fmt.Fprintf(&b, "%s in software development with a focus on creating scalable, maintainable applications. Experience includes full-stack development, API design, and database optimization.\n\n",
		in.Experience)
	b.WriteString(heading("projects") + "\n")
	b.WriteString(in.projectBullets(templates.StyleModern) + "\n\n")
	b.WriteString(heading("achievements") + "\n")
	fmt.Fprintf(&b, "Consistently ships reliable software, raises code quality through reviews and tooling, and mentors teammates on %s.\n\n",
		in.skillList())
	b.WriteString(heading("conclusion") + "\n")
	fmt.Fprintf(&b, "%s is committed to delivering high-quality solutions and continuously learning new technologies to stay at the forefront of the industry.",
		in.Name)
	return b.String()
}

func creativeNarrative(in narrativeInput) string {
	var b strings.Builder
	b.WriteString(heading("summary") + "\n")
	fmt.Fprintf(&b, "%s is a %s who turns ideas into striking visual stories. With %s, %s treats every brief as a chance to make something memorable, blending careful craft with bold experimentation.\n\n",
		in.Name, in.Profession, in.Experience, in.Name)
	b.WriteString(heading("projects") + "\n")
	b.WriteString(in.projectBullets(templates.StyleCreative) + "\n\n")
	b.WriteString(heading("skills") + "\n")
	fmt.Fprintf(&b, "• %s\n", in.skillList())
	b.WriteString("• Visual storytelling and art direction\n")
	b.WriteString("• Concept development from first sketch to final piece\n")
	b.WriteString("• Collaboration with clients, writers, and developers\n\n")
	b.WriteString(heading("experience") + "\n")
	fmt.Fprintf(&b, "%s across commissions, studio work, and personal projects, building a body of work that ranges from brand identities to illustration and motion.\n\n",
		in.Experience)
	b.WriteString(heading("testimonials") + "\n")
	fmt.Fprintf(&b, "Clients describe working with %s as energizing: clear communication, fearless ideas, and finished work that goes beyond the brief.\n\n",
		in.Name)
	b.WriteString(heading("conclusion") + "\n")
	fmt.Fprintf(&b, "%s is always looking for the next story worth telling and the next brand worth reimagining.",
		in.Name)
	return b.String()
}

func corporateNarrative(in narrativeInput) string {
	var b strings.Builder
	b.WriteString(heading("summary") + "\n")
	fmt.Fprintf(&b, "%s is a results-driven %s with %s, known for steering organizations through growth, change, and competitive markets.\n\n",
		in.Name, in.Profession, in.Experience)
	b.WriteString(heading("experience") + "\n")
	fmt.Fprintf(&b, "%s spanning strategy, operations, and P&L ownership, with a record of building teams that deliver quarter after quarter. Core strengths include %s.\n\n",
		in.Experience, in.skillList())
	b.WriteString(heading("leadership") + "\n")
	fmt.Fprintf(&b, "Sets a clear vision, develops senior talent, and holds the organization to measurable outcomes. Key initiatives include:\n%s\n\n",
		in.projectBullets(templates.StyleCorporate))
	b.WriteString(heading("achievements") + "\n")
	b.WriteString("Recognized for revenue growth, operational efficiency gains, and successful expansion into new markets.\n\n")
	if in.Education != "" {
		b.WriteString(heading("education") + "\n")
		b.WriteString(in.Education + "\n\n")
	}
	b.WriteString(heading("conclusion") + "\n")
	fmt.Fprintf(&b, "%s pairs commercial judgment with people-first leadership to create durable business value.",
		in.Name)
	return b.String()
}

func academicNarrative(in narrativeInput) string {
	var b strings.Builder
	b.WriteString(heading("summary") + "\n")
	fmt.Fprintf(&b, "%s is a %s with %s, committed to rigorous, reproducible work and to sharing it through publication, teaching, and collaboration.\n\n",
		in.Name, in.Profession, in.Experience)
	b.WriteString(heading("research") + "\n")
	fmt.Fprintf(&b, "Research interests center on %s. Selected projects:\n%s\n\n",
		in.skillList(), in.projectBullets(templates.StyleAcademic))
	b.WriteString(heading("publications") + "\n")
	b.WriteString("Author of peer-reviewed papers and conference presentations; a full list is available on request.\n\n")
	if in.Education != "" {
		b.WriteString(heading("education") + "\n")
		b.WriteString(in.Education + "\n\n")
	}
	b.WriteString(heading("awards") + "\n")
	b.WriteString("Recipient of departmental honors and competitive research funding.\n\n")
	b.WriteString(heading("conclusion") + "\n")
	fmt.Fprintf(&b, "%s welcomes collaboration and is committed to advancing the field through careful, methodical work.",
		in.Name)
	return b.String()
}

func freelanceNarrative(in narrativeInput) string {
	var b strings.Builder
	b.WriteString(heading("summary") + "\n")
	fmt.Fprintf(&b, "%s is an independent %s with %s, helping clients ship polished work without the overhead of a big agency.\n\n",
		in.Name, in.Profession, in.Experience)
	b.WriteString(heading("services") + "\n")
	b.WriteString("• Project-based engagements and ongoing retainers\n")
	fmt.Fprintf(&b, "• %s consulting tailored to each client\n", in.Profession)
	b.WriteString("• Fast, communicative turnaround from kickoff to delivery\n\n")
	b.WriteString(heading("projects") + "\n")
	b.WriteString(in.projectBullets(templates.StyleFreelance) + "\n\n")
	b.WriteString(heading("testimonials") + "\n")
	fmt.Fprintf(&b, "Clients keep coming back to %s for reliability, range, and work that lands with their audience.\n\n",
		in.Name)
	b.WriteString(heading("skills") + "\n")
	fmt.Fprintf(&b, "• %s\n", in.skillList())
	b.WriteString("• Scoping, estimation, and client communication\n")
	b.WriteString("• Self-directed delivery across the full project lifecycle\n\n")
	b.WriteString(heading("conclusion") + "\n")
	fmt.Fprintf(&b, "%s is currently booking new projects and would love to hear about yours.",
		in.Name)
	return b.String()
}

// Compile-time interface check
var _ Service = (*Synthesizer)(nil)
