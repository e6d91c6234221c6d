package cleaner

import "strings"

// DefaultFillerPhrases are the known introductory phrases the model
// emits despite being told not to. The list is data, not control flow:
// extend it here without touching Clean.
var DefaultFillerPhrases = []string{
	"Absolument.",
	"Voici le rapport de radiologie",
	"Voici le rapport médical",
	"Je vais analyser",
	"Après analyse de l'image",
	"Suite à l'analyse",
	"En analysant cette image",
	"rédigé en suivant scrupuleusement",
	"la méthodologie et la structure demandées",
	"Voici l'analyse",
	"Voici donc",
	"Comme demandé",
	"Selon la structure demandée",
}

// Cleaner strips introductory filler from a generated report and
// normalizes blank lines.
type Cleaner struct {
	fillerPhrases []string
}

// NewCleaner creates a cleaner with the default filler phrase list.
func NewCleaner() *Cleaner {
	return NewCleanerWithPhrases(DefaultFillerPhrases)
}

// NewCleanerWithPhrases creates a cleaner with a custom phrase list.
func NewCleanerWithPhrases(phrases []string) *Cleaner {
	lowered := make([]string, len(phrases))
	for i, p := range phrases {
		lowered[i] = strings.ToLower(p)
	}
	return &Cleaner{fillerPhrases: lowered}
}

// Clean removes filler lines appearing before the first markdown
// heading, collapses runs of blank lines and trims the result. Once a
// heading line is seen, every later line is preserved verbatim.
func (c *Cleaner) Clean(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	headingSeen := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			headingSeen = true
		}
		if !headingSeen && c.isFiller(trimmed) {
			continue
		}
		kept = append(kept, line)
	}

	out := strings.Join(kept, "\n")

	// Three or more consecutive newlines leave at most one blank line.
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}

	return strings.TrimSpace(out)
}

func (c *Cleaner) isFiller(trimmedLine string) bool {
	if trimmedLine == "" {
		return false
	}
	lower := strings.ToLower(trimmedLine)
	for _, phrase := range c.fillerPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
