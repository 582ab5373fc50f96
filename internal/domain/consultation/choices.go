package consultation

// Disposition codes a consultation can end with.
const (
	SuggestionHomeIsolation  = "HI"
	SuggestionAdmission      = "A"
	SuggestionReferral       = "R"
	SuggestionOPConsultation = "OP"
	SuggestionDomiciliary    = "DC"
)

var suggestionLabels = map[string]string{
	SuggestionHomeIsolation:  "HOME ISOLATION",
	SuggestionAdmission:      "ADMISSION",
	SuggestionReferral:       "REFERRAL",
	SuggestionOPConsultation: "OP CONSULTATION",
	SuggestionDomiciliary:    "DOMICILIARY CARE",
}

var categoryLabels = map[string]string{
	"Mild":     "Category-A",
	"Moderate": "Category-B",
	"Severe":   "Category-C",
}

var symptomLabels = map[int]string{
	1:  "ASYMPTOMATIC",
	2:  "FEVER",
	3:  "SORE THROAT",
	4:  "COUGH",
	5:  "BREATHLESSNESS",
	6:  "MYALGIA",
	7:  "ABDOMINAL DISCOMFORT",
	8:  "VOMITING/DIARRHOEA",
	9:  "OTHERS",
	10: "SARI",
	11: "SPUTUM",
	12: "NAUSEA",
	13: "CHEST PAIN",
	14: "HEMOPTYSIS",
	15: "NASAL DISCHARGE",
	16: "BODY ACHE",
}

var admitLabels = map[int]string{
	1: "Isolation Room",
	2: "ICU",
	3: "ICU with Ventilator",
	4: "Home Isolation",
}

// SuggestionLabel translates a stored disposition code to its display
// label, "-" when the code is unrecognized.
func SuggestionLabel(code string) string {
	if label, ok := suggestionLabels[code]; ok {
		return label
	}
	return "-"
}

func CategoryLabel(code string) string {
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	return "-"
}

func SymptomLabel(code int) string {
	if label, ok := symptomLabels[code]; ok {
		return label
	}
	return "-"
}

func AdmitLabel(code int) string {
	if label, ok := admitLabels[code]; ok {
		return label
	}
	return "-"
}
