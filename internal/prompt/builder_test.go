package prompt

import (
	"strings"
	"testing"
	"time"
)

func TestBuild_Deterministic(t *testing.T) {
	b := NewBuilder()
	today := time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC)

	first := b.Build("Toux persistante depuis 3 semaines", "Dupont Jean", "12/04/1981", "Martin", today)
	second := b.Build("Toux persistante depuis 3 semaines", "Dupont Jean", "12/04/1981", "Martin", today)

	if first != second {
		t.Error("Expected identical inputs to yield byte-identical prompts")
	}
}

func TestBuild_PlaceholdersForUnsetFields(t *testing.T) {
	b := NewBuilder()
	today := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	got := b.Build("Suspicion de fracture du poignet droit", "", "", "", today)

	for _, placeholder := range []string{PlaceholderPatientName, PlaceholderBirthDate, PlaceholderDoctorName} {
		if !strings.Contains(got, placeholder) {
			t.Errorf("Expected prompt to contain placeholder %q", placeholder)
		}
	}
}

func TestBuild_SubstitutesProvidedFields(t *testing.T) {
	b := NewBuilder()
	today := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	got := b.Build("Douleur thoracique", "Durand Marie", "01/02/1970", "Bernard", today)

	if strings.Contains(got, PlaceholderPatientName) {
		t.Error("Expected patient placeholder to be replaced")
	}
	if !strings.Contains(got, "Durand Marie") {
		t.Error("Expected patient name in prompt")
	}
	if !strings.Contains(got, "Dr. Bernard") {
		t.Error("Expected doctor name prefixed with Dr.")
	}
	if !strings.Contains(got, "24/08/2026") {
		t.Error("Expected exam date rendered as JJ/MM/AAAA")
	}
}

func TestBuild_ContainsFixedSectionStructure(t *testing.T) {
	b := NewBuilder()
	got := b.Build("Contrôle de routine", "", "", "", time.Now())

	sections := []string{
		"**1. EN-TÊTE**",
		"**2. TYPE D'EXAMEN ET RENSEIGNEMENTS CLINIQUES**",
		"**3. DESCRIPTION ANALYTIQUE DES SIGNES RADIOLOGIQUES**",
		"**4. SYNTHÈSE ET DIAGNOSTIC DIFFÉRENTIEL**",
		"**5. IMPRESSION / CONCLUSION**",
	}

	lastIdx := -1
	for _, section := range sections {
		idx := strings.Index(got, section)
		if idx < 0 {
			t.Errorf("Expected prompt to contain section %q", section)
			continue
		}
		if idx < lastIdx {
			t.Errorf("Expected section %q to appear after the previous one", section)
		}
		lastIdx = idx
	}
}

func TestBuild_EmbedsMethodologyInstructions(t *testing.T) {
	b := NewBuilder()
	got := b.Build("Contrôle de routine", "", "", "", time.Now())

	instructions := []string{
		"Analyse Systématique Obligatoire",
		"Corrélation Clinico-Radiologique Stricte",
		"Diagnostic Différentiel",
		"Aucune Phrase Introductive",
		"Aucune Mesure Chiffrée",
		"Examen Normal",
	}
	for _, instruction := range instructions {
		if !strings.Contains(got, instruction) {
			t.Errorf("Expected prompt to contain instruction %q", instruction)
		}
	}
}
