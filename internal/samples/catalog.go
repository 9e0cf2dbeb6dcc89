// Package samples holds the canned demo profiles used for UI quick-fill.
package samples

import (
	"math/rand"

	"github.com/forgefolio/forgefolio/internal/portfolio"
)

// DefaultID is the profile returned for unknown identifiers.
const DefaultID = "software_developer"

var catalog = map[string]portfolio.Profile{
	"software_developer": {
		Name:       "Alex Chen",
		Profession: "Senior Software Developer",
		Experience: "5+ years of experience in full-stack development with expertise in modern web technologies. Led development of scalable applications serving 100K+ users.",
		Skills:     []string{"Python", "JavaScript", "React", "Node.js", "AWS", "Docker", "PostgreSQL", "MongoDB"},
		Projects: []string{
			"E-commerce Platform - Built scalable online marketplace with microservices architecture",
			"Real-time Chat Application - Developed using WebSockets and React",
			"Machine Learning API - Created ML pipeline for predictive analytics",
		},
	},
	"data_scientist": {
		Name:       "Dr. Sarah Johnson",
		Profession: "Data Scientist",
		Experience: "6+ years in machine learning and data analysis. PhD in Statistics with focus on predictive modeling and big data analytics.",
		Skills:     []string{"Python", "R", "Machine Learning", "TensorFlow", "PyTorch", "SQL", "Tableau", "Statistics"},
		Projects: []string{
			"Customer Segmentation Model - Improved marketing ROI by 40%",
			"Predictive Analytics Dashboard - Real-time business intelligence solution",
			"NLP Text Classification - Automated document processing system",
		},
	},
	"ui_designer": {
		Name:       "Maria Rodriguez",
		Profession: "UI/UX Designer",
		Experience: "4+ years creating user-centered designs for web and mobile applications. Expert in design thinking and user research methodologies.",
		Skills:     []string{"Figma", "Adobe Creative Suite", "Sketch", "User Research", "Prototyping", "HTML/CSS", "JavaScript"},
		Projects: []string{
			"Mobile Banking App - Redesigned user experience for 500K+ users",
			"E-learning Platform - Created intuitive learning management system",
			"Healthcare Dashboard - Designed data visualization for medical professionals",
		},
	},
	"marketing_manager": {
		Name:       "David Kim",
		Profession: "Marketing Manager",
		Experience: "7+ years in digital marketing and brand management. Led campaigns that generated $2M+ in revenue and increased brand awareness by 150%.",
		Skills:     []string{"Digital Marketing", "SEO/SEM", "Google Analytics", "Social Media", "Content Strategy", "Email Marketing", "A/B Testing"},
		Projects: []string{
			"Brand Rebranding Campaign - Increased market share by 25%",
			"Digital Marketing Automation - Implemented lead nurturing system",
			"Social Media Strategy - Grew followers from 10K to 100K+",
		},
	},
}

var order = []string{
	"software_developer",
	"data_scientist",
	"ui_designer",
	"marketing_manager",
}

// Get returns the named profile, falling back to the software_developer
// default for unknown identifiers.
func Get(id string) portfolio.Profile {
	if p, ok := catalog[id]; ok {
		return p
	}
	return catalog[DefaultID]
}

// Lookup returns the named profile and whether it exists.
func Lookup(id string) (portfolio.Profile, bool) {
	p, ok := catalog[id]
	return p, ok
}

// All returns every profile keyed by identifier.
func All() map[string]portfolio.Profile {
	out := make(map[string]portfolio.Profile, len(catalog))
	for id, p := range catalog {
		out[id] = p
	}
	return out
}

// IDs returns the profile identifiers in catalog order.
func IDs() []string {
	return append([]string(nil), order...)
}

// Random picks a profile uniformly using the given source.
func Random(rng *rand.Rand) (string, portfolio.Profile) {
	id := order[rng.Intn(len(order))]
	return id, catalog[id]
}
