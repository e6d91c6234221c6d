package models

// ExampleCase is a sample clinical context shown by the demo UI.
type ExampleCase struct {
	Title        string `json:"title"`
	ClinicalInfo string `json:"clinical_info"`
	ExamType     string `json:"exam_type"`
	Specialty    string `json:"specialty"`
}

// ExampleClinicalCases returns the demonstration cases offered to users
// who want to try the assistant without writing their own clinical notes.
func ExampleClinicalCases() []ExampleCase {
	return []ExampleCase{
		{
			Title:        "Radiographie Thoracique - Toux Persistante",
			ClinicalInfo: "Patient de 45 ans, non-fumeur, consulte pour une toux persistante depuis 3 semaines avec légère dyspnée d'effort. Antécédents familiaux de cancer pulmonaire. Auscultation révèle des râles crépitants en base droite.",
			ExamType:     "Radiographie thoracique de face et profil",
			Specialty:    "Pneumologie",
		},
		{
			Title:        "Mammographie - Dépistage de Routine",
			ClinicalInfo: "Patiente de 52 ans en suivi post-thérapeutique pour cancer du sein gauche traité il y a 2 ans par tumorectomie et radiothérapie. Contrôle de routine dans le cadre de la surveillance oncologique. Aucun signe clinique suspect à l'examen.",
			ExamType:     "Mammographie bilatérale avec tomosynthèse",
			Specialty:    "Sénologie",
		},
		{
			Title:        "Radiographie Osseuse - Traumatisme",
			ClinicalInfo: "Patient de 35 ans, ouvrier du bâtiment, chute d'échafaudage il y a 2 heures. Douleur intense poignet droit, impotence fonctionnelle totale, déformation visible. Pas de troubles vasculo-nerveux distaux. Recherche de fracture.",
			ExamType:     "Radiographie poignet droit face et profil",
			Specialty:    "Orthopédie",
		},
		{
			Title:        "Radiographie Cervicale - Névralgie",
			ClinicalInfo: "Patient de 53 ans, fumeur, adressé pour majoration d'une névralgie cervicobrachiale C8-T1. Présente une douleur du membre supérieur gauche et une légère atrophie musculaire de l'épaule. Paresthésies dans le territoire cubital.",
			ExamType:     "Radiographie rachis cervical face et profil",
			Specialty:    "Neurologie",
		},
		{
			Title:        "Radiographie Abdominale - Douleurs Abdominales",
			ClinicalInfo: "Patiente de 67 ans, diabétique, présente depuis 48h des douleurs abdominales diffuses avec arrêt des matières et des gaz. Vomissements bilieux. Abdomen distendu, tympanique. Suspicion d'occlusion intestinale.",
			ExamType:     "Radiographie abdomen sans préparation debout et couché",
			Specialty:    "Gastroentérologie",
		},
	}
}
