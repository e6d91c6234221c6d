package service

import (
	"fmt"

	"go-radiology-assistant/internal/llm"
)

// User-facing messages. Every pipeline failure surfaces as one of these
// displayable texts; the presentation layer never sees a raw fault.

const configurationErrorMessage = `❌ **Erreur de configuration**

La clé API Google Gemini n'est pas configurée.

**Pour configurer :**
1. Obtenez une clé API sur https://makersuite.google.com/app/apikey
2. Ajoutez-la dans le fichier .env : ` + "`GOOGLE_API_KEY=votre_cle_api`" + `
3. Redémarrez l'application`

const blockedSafetyMessage = `❌ **Analyse bloquée par le filtre de sécurité**

Le modèle a refusé de traiter cette demande malgré la configuration permissive du service.

**Suggestions :**
• Reformulez les renseignements cliniques en termes strictement médicaux
• Vérifiez que l'image ne contient pas d'éléments étrangers à l'examen
• Soumettez à nouveau la demande`

const blockedRecitationMessage = `❌ **Analyse bloquée par le filtre de récitation**

La réponse ressemblait trop à un contenu existant et a été interrompue par le fournisseur.

**Suggestions :**
• Reformulez les renseignements cliniques avec vos propres mots
• Soumettez à nouveau la demande`

const truncatedMessage = `❌ **Rapport tronqué**

La génération a dépassé la limite de longueur autorisée et le rapport est incomplet.

**Suggestions :**
• Raccourcissez les renseignements cliniques
• Soumettez à nouveau la demande`

const emptyMessage = `❌ **Aucun rapport généré**

Le modèle n'a renvoyé aucun contenu exploitable.

**Suggestions :**
• Soumettez à nouveau la demande
• Essayez avec une autre image si le problème persiste`

const malformedMessageFmt = `❌ **Réponse inattendue du modèle**

Le modèle a terminé avec un état inconnu (%s).

**Suggestions :**
• Soumettez à nouveau la demande
• Contactez le support si le problème persiste`

func transportErrorMessage(outcome llm.Outcome) string {
	var body string
	switch outcome.TransportKind {
	case llm.TransportInvalidArgument:
		body = `La requête a été rejetée par l'API (argument invalide).

**Vérifications suggérées :**
• Clé API valide et correctement copiée
• Modèle configuré existant`
	case llm.TransportPermissionDenied:
		body = `L'accès à l'API a été refusé.

**Vérifications suggérées :**
• Clé API active et autorisée pour ce modèle
• Restrictions éventuelles sur la clé`
	case llm.TransportQuotaExceeded:
		body = `Le quota de l'API est épuisé.

**Vérifications suggérées :**
• Quota API disponible sur votre compte
• Réessayez dans quelques minutes`
	case llm.TransportTimeout:
		body = `Le délai de réponse de l'API a été dépassé.

**Vérifications suggérées :**
• Connexion internet stable
• Réessayez : le service distant est peut-être surchargé`
	default:
		body = `Une erreur de communication inattendue s'est produite.

**Vérifications suggérées :**
• Connexion internet stable
• Réessayez dans quelques instants`
	}

	msg := "❌ **Problème de connexion API**\n\n" + body
	if outcome.Err != nil {
		msg += fmt.Sprintf("\n\n*Détail technique :* %v", outcome.Err)
	}
	return msg
}
