package record

import (
	"fmt"
	"strings"

	"github.com/janelia-scicomp/biblio/value"
)

// DateUnknown is returned when no recognized date section holds a
// complete date. Missing dates are a fallback value, never an error.
const DateUnknown = "unknown"

// dateSections is the fixed priority order for Crossref date sections.
var dateSections = []string{
	"published",
	"published-print",
	"published-online",
	"posted",
	"created",
}

// PublishingDate returns the publication date as YYYY-MM-DD.
//
// Crossref records are scanned section by section in priority order;
// the first section holding a complete [year, month, day] array wins.
// DataCite records use the date portion of the registered timestamp.
// Returns DateUnknown when no section qualifies.
func (r Record) PublishingDate() string {
	if r.Variant() == Crossref {
		for _, sec := range dateSections {
			section := value.Map(r[sec])
			if section == nil {
				continue
			}
			parts, ok := value.First(section["date-parts"]).([]any)
			if !ok || len(parts) != 3 {
				continue
			}
			return fmt.Sprintf("%d-%02d-%02d",
				value.Int(parts[0]), value.Int(parts[1]), value.Int(parts[2]))
		}
		return DateUnknown
	}
	if registered := value.Text(r["registered"]); registered != "" {
		date, _, _ := strings.Cut(registered, "T")
		return date
	}
	return DateUnknown
}

// PublishingYear returns the year portion of the publication date,
// or "" when the date is unknown.
func (r Record) PublishingYear() string {
	date := r.PublishingDate()
	if date == DateUnknown {
		return ""
	}
	year, _, _ := strings.Cut(date, "-")
	return year
}
