package announcement

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mergington/highschool/core"
)

var (
	dateWindowTag  = "datewindow"
	dateWindowText = "start_date must be before expiration_date"
)

func init() {
	core.Validate.RegisterStructValidation(dateWindowStructValidation, NewAnnouncement{})
	core.Validate.RegisterStructValidation(dateWindowStructValidation, UpdateAnnouncement{})
	core.RegisterCustomTranslation(dateWindowTag, dateWindowText)
}

// dateWindowStructValidation checks that StartDate, when set, strictly
// precedes ExpirationDate.
func dateWindowStructValidation(sl validator.StructLevel) {
	var start *time.Time
	var expiration time.Time

	switch ann := sl.Current().Interface().(type) {
	case NewAnnouncement:
		start, expiration = ann.StartDate, ann.ExpirationDate
	case UpdateAnnouncement:
		start, expiration = ann.StartDate, ann.ExpirationDate
	default:
		return
	}

	if start != nil && !expiration.IsZero() && !start.Before(expiration) {
		sl.ReportError(start, "start_date", "StartDate", dateWindowTag, "")
	}
}
