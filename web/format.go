package web

import (
	"fmt"
	"time"
)

// Template formatters. Missing one-to-one columns come back as nil
// pointers and render as "-", matching what the comparison view shows
// for absent stats.

func statFormatter(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func textFormatter(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func metricFormatter(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f", *v)
}

func moneyFormatter(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("€%.0f", *v)
}

// refidFormatter renders a nullable reference id for form option
// matching; nil means "no selection".
func refidFormatter(v *int32) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func dateFormatter(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
