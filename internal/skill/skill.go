// Package skill maps numeric skill ranges and free-form level strings onto the
// fine-grained labels shown on cards and the coarse categories used by filters.
package skill

import "strings"

// LabelsFromRange returns every bucket label whose range intersects [min, max],
// in increasing difficulty. A nil bound is open (0 or 5). When both bounds are nil
// the universal label is returned.
func LabelsFromRange(min, max *float64) []string {
	if min == nil && max == nil {
		return []string{UniversalLabel}
	}
	lo, hi := MinLevel, MaxLevel
	if min != nil {
		lo = clamp(*min)
	}
	if max != nil {
		hi = clamp(*max)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	var out []string
	for i := range Buckets {
		if overlaps(i, lo, hi) {
			out = append(out, Buckets[i].Name)
		}
	}
	if len(out) == 0 {
		return []string{UniversalLabel}
	}
	return out
}

// Contains reports whether level falls inside bucket i, treating the gap up to the
// next bucket's lower edge as part of bucket i.
func Contains(i int, level float64) bool {
	return overlaps(i, level, level)
}

func overlaps(i int, lo, hi float64) bool {
	b := Buckets[i]
	if i == len(Buckets)-1 {
		return hi >= b.Lo && lo <= b.Hi
	}
	return hi >= b.Lo && lo < Buckets[i+1].Lo
}

func clamp(v float64) float64 {
	if v < MinLevel {
		return MinLevel
	}
	if v > MaxLevel {
		return MaxLevel
	}
	return v
}

// BroadCategory maps a fine-grained label to its coarse category by prefix.
// Unknown labels map to CategoryAny so that normalization never hides data.
func BroadCategory(label string) Category {
	switch {
	case strings.HasPrefix(label, "Yếu"):
		return CategoryWeak
	case strings.HasPrefix(label, "TB"):
		return CategoryIntermediate
	case strings.HasPrefix(label, "Khá"), label == "Giỏi":
		return CategoryAdvanced
	default:
		return CategoryAny
	}
}

// FromEnglish maps the English level strings produced by the snapshot generator.
func FromEnglish(level string) Category {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "beginner":
		return CategoryWeak
	case "intermediate":
		return CategoryIntermediate
	case "advanced":
		return CategoryAdvanced
	default:
		return CategoryAny
	}
}

// ParseCategory parses a category name coming from a query string or a CLI flag.
// ok is false when the value means "no skill filter" or is not recognised.
func ParseCategory(s string) (c Category, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tất cả", "all":
		return "", false
	case "yếu", "weak", "beginner":
		return CategoryWeak, true
	case "tb", "intermediate":
		return CategoryIntermediate, true
	case "khá", "advanced":
		return CategoryAdvanced, true
	case "mọi trình độ", "any", "anylevel":
		return CategoryAny, true
	}
	return "", false
}

// Rank orders categories for the skill sort. Higher ranks sort first.
func Rank(c Category) int {
	switch c {
	case CategoryWeak:
		return 0
	case CategoryIntermediate:
		return 1
	case CategoryAdvanced:
		return 2
	default:
		return 3
	}
}
