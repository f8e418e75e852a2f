package internal

import "time"

const (
	formatDateTime = "02.01.2006 15:04 MST"
)

func Format(date time.Time) string {
	return date.UTC().Format(formatDateTime)
}
