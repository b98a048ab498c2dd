package service

import (
	"time"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/model"
)

// Period is an inclusive [From, To] day range. Zero times mean "unbounded",
// which is how the "tout" shortcut clears both filters.
type Period struct {
	From time.Time
	To   time.Time
}

// Date shortcut identifiers, as exposed on the dashboard endpoint.
const (
	PeriodeAujourdHui   = "aujourd-hui"
	PeriodeCetteSemaine = "cette-semaine"
	PeriodeCeMois       = "ce-mois"
	PeriodeCeTrimestre  = "ce-trimestre"
	PeriodeCetteAnnee   = "cette-annee"
	PeriodeTout         = "tout"
)

// PeriodFor resolves a date shortcut against a reference "now". Weeks start
// on Monday; a quarter starts on the 1st of its first month. Returns false
// for an unknown shortcut.
func PeriodFor(raccourci string, now time.Time) (Period, bool) {
	today := model.DateOnly(now)
	switch raccourci {
	case PeriodeAujourdHui:
		return Period{From: today, To: today}, true
	case PeriodeCetteSemaine:
		// time.Weekday counts Sunday as 0; shift so Monday is the origin.
		offset := (int(today.Weekday()) + 6) % 7
		return Period{From: today.AddDate(0, 0, -offset), To: today}, true
	case PeriodeCeMois:
		return Period{From: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()), To: today}, true
	case PeriodeCeTrimestre:
		quarter := (int(today.Month())-1)/3 + 1
		startMonth := time.Month((quarter-1)*3 + 1)
		return Period{From: time.Date(today.Year(), startMonth, 1, 0, 0, 0, 0, today.Location()), To: today}, true
	case PeriodeCetteAnnee:
		return Period{From: time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()), To: today}, true
	case PeriodeTout:
		return Period{}, true
	}
	return Period{}, false
}
