package points

// JobType classifies a work order.
type JobType string

const (
	Repair             JobType = "Repair"
	Aftercare          JobType = "Aftercare"
	ResidentialInstall JobType = "ResidentialInstall"
	B2BInstall         JobType = "B2BInstall"
)

// AftercareRate applies to every subtype of an Aftercare order.
const AftercareRate = 1.77

var repairRates = map[string]float64{
	"Interior/Exterior":   1.95,
	"Poste":               1.95 + 1.99,
	"Fin de semana":       2.04,
	"Fin de semana Poste": 2.04 + 2.99,
}

var residentialRates = map[string]float64{
	"Interior -80m":                 3.80,
	"Interior +80m":                 4.56,
	"Exterior -80m":                 4.23,
	"Exterior +80m":                 5.09,
	"Poste -80m":                    8.01,
	"Poste +80m":                    8.83,
	"Poste +220m":                   9.18,
	"TV":                            0.43,
	"Reutilizada Interior/Exterior": 2.60,
	"Reutilizada Poste":             4.37,
}

var b2bRates = map[string]float64{
	"Acceso+Router Nueva":               6.23,
	"Acceso+Router Reutilizada":         4.90,
	"Acceso GGCC Nueva":                 4.68,
	"Acceso GGCC Reutilizada":           3.35,
	"Acceso+Router Centrex Nueva":       7.15,
	"Acceso+Router Centrex Reutilizada": 5.82,
	"Poste Nueva":                       2.70,
	"Poste Reutilizada":                 1.38,
	"Postventa":                         2.02,
	"Portabilidad Express":              2.14,
	"Replanteo":                         3.16,
	"Instalación TV":                    0.46,
	"Avería":                            2.14,
}

var aftercareSubtypes = []string{"Postventa"}

// Lookup returns the rate for a single subtype under the given job type.
// The second result reports whether the subtype is known; callers decide
// whether an unknown subtype is an error or a zero contribution.
func Lookup(jobType JobType, subtype string) (float64, bool) {
	switch jobType {
	case Repair:
		v, ok := repairRates[subtype]
		return v, ok
	case Aftercare:
		return AftercareRate, true
	case ResidentialInstall:
		v, ok := residentialRates[subtype]
		return v, ok
	case B2BInstall:
		v, ok := b2bRates[subtype]
		return v, ok
	}
	return 0, false
}

// Calculate sums the rates of the given subtypes. Duplicates contribute once
// per occurrence. Unknown subtypes and unknown job types contribute zero.
func Calculate(jobType JobType, subtypes []string) float64 {
	var total float64
	for _, st := range subtypes {
		v, _ := Lookup(jobType, st)
		total += v
	}
	return total
}

// Subtypes returns the legal subtype labels for a job type, in the order
// they are presented on the order form. Nil for an unknown job type.
func Subtypes(jobType JobType) []string {
	switch jobType {
	case Repair:
		return []string{"Interior/Exterior", "Poste", "Fin de semana", "Fin de semana Poste"}
	case Aftercare:
		return aftercareSubtypes
	case ResidentialInstall:
		return []string{
			"Interior -80m", "Interior +80m", "Exterior -80m", "Exterior +80m",
			"Poste -80m", "Poste +80m", "Poste +220m", "TV",
			"Reutilizada Interior/Exterior", "Reutilizada Poste",
		}
	case B2BInstall:
		return []string{
			"Acceso+Router Nueva", "Acceso+Router Reutilizada",
			"Acceso GGCC Nueva", "Acceso GGCC Reutilizada",
			"Acceso+Router Centrex Nueva", "Acceso+Router Centrex Reutilizada",
			"Poste Nueva", "Poste Reutilizada",
			"Postventa", "Portabilidad Express", "Replanteo",
			"Instalación TV", "Avería",
		}
	}
	return nil
}

// JobTypes lists every known job type.
func JobTypes() []JobType {
	return []JobType{Repair, Aftercare, ResidentialInstall, B2BInstall}
}

// ValidType reports whether jobType is one of the known job types.
func ValidType(jobType JobType) bool {
	switch jobType {
	case Repair, Aftercare, ResidentialInstall, B2BInstall:
		return true
	}
	return false
}

// ValidSubtype reports whether subtype is legal under jobType. Aftercare
// accepts only its single listed subtype here even though Lookup rates any
// subtype; the order form never offers anything else.
func ValidSubtype(jobType JobType, subtype string) bool {
	for _, st := range Subtypes(jobType) {
		if st == subtype {
			return true
		}
	}
	return false
}
