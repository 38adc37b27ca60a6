package export

import (
	"strings"
	"time"
)

// Format identifies one of the supported export formats.
type Format string

// User-facing format names, each mapping 1:1 to one encoder.
const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatPlan     Format = "plan-feature"
)

// slugFallback is used when slugging a project name leaves nothing.
const slugFallback = "untitled"

// ParseFormat validates a user-supplied format name.
func ParseFormat(value string) (Format, bool) {
	switch Format(value) {
	case FormatJSON, FormatMarkdown, FormatPlan:
		return Format(value), true
	}
	return "", false
}

// MediaType returns the media type for delivering artifacts of the format.
func MediaType(format Format) string {
	if format == FormatJSON {
		return "application/json"
	}
	return "text/markdown"
}

// DeriveFileName derives a deterministic artifact file name from the
// project name, format, and export date:
//
//	<slug>-2006-01-02.json        for json
//	<slug>-2006-01-02.md          for markdown
//	<slug>-plan-2006-01-02.md     for plan-feature
func DeriveFileName(projectName string, format Format, date time.Time) string {
	name := slug(projectName)
	if format == FormatPlan {
		name += "-plan"
	}
	name += "-" + date.Format("2006-01-02")

	if format == FormatJSON {
		return name + ".json"
	}
	return name + ".md"
}

// slug lowercases the project name, collapses whitespace runs to single
// hyphens, and drops anything else unsafe in a file name.
func slug(name string) string {
	var builder strings.Builder
	for _, field := range strings.Fields(strings.ToLower(name)) {
		cleaned := strings.Map(keepSlugRune, field)
		if cleaned == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteByte('-')
		}
		builder.WriteString(cleaned)
	}
	if builder.Len() == 0 {
		return slugFallback
	}
	return builder.String()
}

// keepSlugRune keeps lowercase letters, digits, and hyphens.
func keepSlugRune(r rune) rune {
	if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
		return r
	}
	return -1
}
