package model

// Energy credit amounts for the events that feed the gamification meter.
const (
	EnergyMax        = 100
	CreditToggle     = 10
	CreditManualTask = 3
	CreditChatTask   = 5
)

type EnergyStatus string

const (
	EnergyChampion    EnergyStatus = "champion"
	EnergyHot         EnergyStatus = "hot"
	EnergyNeedsCoffee EnergyStatus = "needs coffee"
	EnergyCritical    EnergyStatus = "critical"
	EnergyIdle        EnergyStatus = "idle"
)

// EnergyLevel is a session-wide engagement counter in [0, EnergyMax]. It only
// ever goes up and saturates at EnergyMax.
type EnergyLevel int

func (e EnergyLevel) Credit(amount int) EnergyLevel {
	if amount < 0 {
		return e
	}
	next := int(e) + amount
	if next > EnergyMax {
		next = EnergyMax
	}
	return EnergyLevel(next)
}

// Status maps the level onto a label, highest threshold first.
func (e EnergyLevel) Status() EnergyStatus {
	switch {
	case e >= 90:
		return EnergyChampion
	case e >= 70:
		return EnergyHot
	case e >= 50:
		return EnergyNeedsCoffee
	case e >= 30:
		return EnergyCritical
	default:
		return EnergyIdle
	}
}
