package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

var shortDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)

// normalizeFieldValue prepares a raw value for a column of the given kind.
//
// Text values pass through. For date and integer columns an empty string
// becomes NULL. Dates written as MM/DD/YY become YYYY-MM-DD, two-digit
// years below 50 falling in the 2000s.
func normalizeFieldValue(kind models.FieldKind, value *string) (*string, error) {
	if value == nil || kind == models.FieldText {
		return value, nil
	}

	v := strings.TrimSpace(*value)
	if v == "" {
		return nil, nil
	}

	switch kind {
	case models.FieldDate:
		date, err := normalizeDate(v)
		if err != nil {
			return nil, err
		}
		return &date, nil
	case models.FieldInteger:
		// columns are PostgreSQL integer
		if _, err := strconv.ParseInt(v, 10, 32); err != nil {
			return nil, fmt.Errorf("%w: %q is not a 32-bit integer", ErrInvalidFieldValue, v)
		}
		return &v, nil
	}

	return &v, nil
}

func normalizeDate(v string) (string, error) {
	if m := shortDate.FindStringSubmatch(v); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
		v = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}

	if _, err := time.Parse(time.DateOnly, v); err != nil {
		return "", fmt.Errorf("%w: %q is not a date", ErrInvalidFieldValue, v)
	}
	return v, nil
}

// normalizeOptionalDate applies normalizeFieldValue to an optional date.
func normalizeOptionalDate(value *string) (*string, error) {
	return normalizeFieldValue(models.FieldDate, value)
}
