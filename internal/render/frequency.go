package render

import "github.com/joescharf/bugdesk/internal/models"

// Field names a bug attribute that can be grouped on.
type Field string

const (
	FieldSeverity Field = "severity"
	FieldStatus   Field = "status"
	FieldLanguage Field = "language"
)

// Value returns the field's value on b.
func (f Field) Value(b *models.Bug) string {
	switch f {
	case FieldSeverity:
		return string(b.Severity)
	case FieldStatus:
		return string(b.Status)
	case FieldLanguage:
		return b.Language
	}
	return ""
}

// Frequency maps each distinct value of a field to its number of
// occurrences. Keys keep first-seen order.
type Frequency struct {
	Keys   []string
	Counts map[string]int
}

// Count returns the occurrences of key.
func (f Frequency) Count(key string) int { return f.Counts[key] }

// Values returns the counts aligned with Keys.
func (f Frequency) Values() []int {
	out := make([]int, len(f.Keys))
	for i, k := range f.Keys {
		out[i] = f.Counts[k]
	}
	return out
}

// Total returns the sum of all counts.
func (f Frequency) Total() int {
	n := 0
	for _, c := range f.Counts {
		n += c
	}
	return n
}

// CountBy groups bugs on field.
func CountBy(bugs []*models.Bug, field Field) Frequency {
	freq := Frequency{Counts: make(map[string]int)}
	for _, b := range bugs {
		v := field.Value(b)
		if _, seen := freq.Counts[v]; !seen {
			freq.Keys = append(freq.Keys, v)
		}
		freq.Counts[v]++
	}
	return freq
}
