package enhance

import (
	"strconv"
	"strings"

	"github.com/forgefolio/forgefolio/internal/portfolio"
)

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatEducation renders structured education records as display text.
// Each entry joins the non-empty of school, degree, and field with commas,
// followed by a date range line ("Sep 2020 - Jun 2024", or "Sep 2020 -
// Present" when open-ended) and GPA/honors lines when set. Entries are
// separated by a blank line.
func FormatEducation(entries []portfolio.EducationRecord) string {
	blocks := make([]string, 0, len(entries))
	for _, rec := range entries {
		var lines []string
		var parts []string
		for _, p := range []string{rec.School, rec.Degree, rec.Field} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, ", "))
		}
		if dates := dateRange(rec.StartDate, rec.EndDate); dates != "" {
			lines = append(lines, dates)
		}
		if rec.GPA != "" {
			lines = append(lines, "GPA: "+rec.GPA)
		}
		if rec.Honors != "" {
			lines = append(lines, rec.Honors)
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(blocks, "\n\n")
}

// EducationText renders the education union as display text: formatted
// records when structured, the free text otherwise.
func EducationText(edu *portfolio.Education) string {
	switch {
	case edu == nil:
		return ""
	case edu.Structured():
		return FormatEducation(edu.Records)
	default:
		return edu.Text
	}
}

func dateRange(start, end string) string {
	switch {
	case start != "" && end != "":
		return monthYear(start) + " - " + monthYear(end)
	case start != "":
		return monthYear(start) + " - Present"
	case end != "":
		return monthYear(end)
	}
	return ""
}

// monthYear converts a YYYY-MM date to "MMM YYYY"; anything that does not
// match passes through unmodified.
func monthYear(s string) string {
	year, month, ok := strings.Cut(s, "-")
	if !ok || len(year) != 4 {
		return s
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return s
	}
	return monthNames[m-1] + " " + year
}
