package reservation

import "strings"

type Badge struct {
	Label string
	Color string
}

const (
	LocaleEN = "en"
	LocaleFR = "fr"
)

var statusLabels = map[string]map[Status]string{
	LocaleEN: {
		StatusPending:   "Pending",
		StatusConfirmed: "Confirmed",
		StatusCompleted: "Completed",
		StatusCancelled: "Cancelled",
		StatusExpired:   "Expired",
		StatusPickedUp:  "Picked up",
	},
	LocaleFR: {
		StatusPending:   "En attente",
		StatusConfirmed: "Confirmée",
		StatusCompleted: "Terminée",
		StatusCancelled: "Annulée",
		StatusExpired:   "Expirée",
		StatusPickedUp:  "Récupérée",
	},
}

var ownerLabels = map[string]map[OwnerStatus]string{
	LocaleEN: {
		OwnerStatusActive:   "Active",
		OwnerStatusPickedUp: "Picked up",
		OwnerStatusClosed:   "Closed",
	},
	LocaleFR: {
		OwnerStatusActive:   "Active",
		OwnerStatusPickedUp: "Récupérée",
		OwnerStatusClosed:   "Clôturée",
	},
}

var statusColors = map[Status]string{
	StatusPending:   "warning",
	StatusConfirmed: "info",
	StatusCompleted: "success",
	StatusCancelled: "danger",
	StatusExpired:   "muted",
	StatusPickedUp:  "success",
}

var ownerColors = map[OwnerStatus]string{
	OwnerStatusActive:   "info",
	OwnerStatusPickedUp: "success",
	OwnerStatusClosed:   "muted",
}

const neutralColor = "neutral"

// normalizeLocale maps "fr-CA" or "FR" to "fr"; unsupported locales fall back to English.
func normalizeLocale(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(l, "-_"); i > 0 {
		l = l[:i]
	}
	if _, ok := statusLabels[l]; ok {
		return l
	}
	return LocaleEN
}

func (s Status) Display(locale string) Badge {
	label, ok := statusLabels[normalizeLocale(locale)][s]
	if !ok {
		return Badge{Label: string(s), Color: neutralColor}
	}
	return Badge{Label: label, Color: statusColors[s]}
}

func (s OwnerStatus) Display(locale string) Badge {
	label, ok := ownerLabels[normalizeLocale(locale)][s]
	if !ok {
		return Badge{Label: string(s), Color: neutralColor}
	}
	return Badge{Label: label, Color: ownerColors[s]}
}
