package cleaner

import "strings"

// sectionNames are the bolded section markers the model emits; display
// formatting rewrites them to headings without reordering sections.
var sectionNames = []string{
	"EN-TÊTE",
	"TYPE D'EXAMEN",
	"DESCRIPTION ANALYTIQUE",
	"SYNTHÈSE ET DIAGNOSTIC",
	"IMPRESSION",
	"CONCLUSION",
}

// Disclaimer is the fixed medical warning appended to generated reports.
const Disclaimer = `
---
⚠️ **AVERTISSEMENT MÉDICAL**

Ce rapport a été généré par une intelligence artificielle à des fins d'assistance et d'éducation uniquement.
Il ne remplace en aucun cas l'expertise d'un radiologue qualifié ou un diagnostic médical professionnel.

**Veuillez consulter un professionnel de santé pour toute décision médicale.**
---
`

// FormatOptions controls the presentation pass applied after cleaning.
type FormatOptions struct {
	// RewriteSectionHeadings turns **SECTION** markers into ## headings.
	RewriteSectionHeadings bool
	// AppendDisclaimer adds the medical warning block at the end.
	AppendDisclaimer bool
}

// Format applies presentation concerns to a cleaned report. Section
// order is preserved; only markup changes.
func Format(report string, opts FormatOptions) string {
	out := report

	if opts.RewriteSectionHeadings {
		for _, section := range sectionNames {
			out = strings.ReplaceAll(out, "**"+section+"**", "\n## 📋 "+section+"\n")
		}
	}

	if opts.AppendDisclaimer {
		out = out + "\n" + Disclaimer
	}

	return out
}
