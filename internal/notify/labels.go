package notify

// Display fallbacks for coded or optional fields. Every lookup table in this
// file is total: unknown codes degrade to a placeholder, never to an empty
// string.
const (
	LabelNonSpecifie = "Non spécifié"
	LabelNonFourni   = "Non fourni"
)

var cabinetLabels = map[string]string{
	CabinetPlomberie:     "Plomberie",
	CabinetFumisterie:    "Fumisterie",
	CabinetCouverture:    "Couverture et Étanchéité",
	CabinetAdministratif: "Administratif",
}

var projectTypeLabels = map[string]string{
	"plomberie":         "Plomberie",
	"couverture":        "Couverture",
	"etancheite":        "Extension",
	"fumisterie":        "Fumisterie",
	"access-difficiles": "Travaux d’accès difficiles",
	"other":             "Autre",
}

var budgetLabels = map[string]string{
	"less-than-10k":  "Moins de 10 000 €",
	"10k-50k":        "10 000 € - 50 000 €",
	"50k-100k":       "50 000 € - 100 000 €",
	"100k-200k":      "100 000 € - 200 000 €",
	"more-than-200k": "Plus de 200 000 €",
}

var timelineLabels = map[string]string{
	"urgent":              "Urgent (moins d'1 mois)",
	"1-3-months":          "1 à 3 mois",
	"3-6-months":          "3 à 6 mois",
	"6-12-months":         "6 à 12 mois",
	"more-than-12-months": "Plus de 12 mois",
}

var reasonLabels = map[string]string{
	"information":  "Demande d'information",
	"consultation": "Consultation",
	"devis":        "Demande de devis",
	"other":        "Autre",
}

var methodLabels = map[string]string{
	"video": "par visioconférence",
	"phone": "par téléphone",
}

// CabinetLabel translates a cabinet key for display.
func CabinetLabel(code string) string {
	return lookup(cabinetLabels, code, LabelNonSpecifie)
}

// ProjectTypeLabel translates a project type code for display.
func ProjectTypeLabel(code string) string {
	return lookup(projectTypeLabels, code, LabelNonSpecifie)
}

// BudgetLabel translates a budget bracket code for display.
func BudgetLabel(code string) string {
	return lookup(budgetLabels, code, LabelNonSpecifie)
}

// TimelineLabel translates a timeline code for display.
func TimelineLabel(code string) string {
	return lookup(timelineLabels, code, LabelNonSpecifie)
}

// ReasonLabel translates an appointment motif code for display.
func ReasonLabel(code string) string {
	return lookup(reasonLabels, code, LabelNonSpecifie)
}

// MethodLabel translates an appointment method code for display. The fallback
// is "en personne": any unrecognized method reads as an in-person meeting,
// matching the historic site behavior.
func MethodLabel(code string) string {
	return lookup(methodLabels, code, "en personne")
}

// Optional renders an optional free-text field, substituting "Non fourni"
// for missing values.
func Optional(value string) string {
	if value == "" {
		return LabelNonFourni
	}
	return value
}

func lookup(table map[string]string, code, fallback string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return fallback
}
