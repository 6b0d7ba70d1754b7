package mapper

import "time"

func formatTime(v *time.Time) *string {
	if v == nil {
		return nil
	}
	s := v.UTC().Format(time.RFC3339)
	return &s
}

func formatTimeValue(v time.Time) string {
	return v.UTC().Format(time.RFC3339)
}

func emptySlice(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
