package models

// HomeToggles is a single-row table of homepage section switches.
type HomeToggles struct {
	ID             uint `json:"-" gorm:"primaryKey"`
	ShowNewsletter bool `json:"showNewsletter"`
	ShowPremium    bool `json:"showPremium"`
	ShowPromo      bool `json:"showPromo"`
}
