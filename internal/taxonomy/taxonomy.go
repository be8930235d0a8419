package taxonomy

// Category names known to the taxonomy table.
const (
	Physical        = "Physical"
	Psychological   = "Psychological"
	Psychosocial    = "Psychosocial"
	Psychospiritual = "Psychospiritual"
)

var order = []string{Physical, Psychological, Psychosocial, Psychospiritual}

var table = map[string][]string{
	Physical:        {"Trauma", "Physical Labor", "Illness", "Dietary Stress"},
	Psychological:   {"Emotional Stress", "Cognitive Stress", "Perceptual Stress"},
	Psychosocial:    {"Relationships", "Lack of Social Support", "Financial Stress"},
	Psychospiritual: {"Values of Life", "Purpose of Living", "Joyless Striving", "Loss of Faith"},
}

// SubcategoriesFor returns the sub-categories allowed for category in table
// order. Unknown categories, including the empty string, yield an empty slice.
func SubcategoriesFor(category string) []string {
	subs := table[category]
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// Categories lists the known categories in table order.
func Categories() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Contains reports whether sub is listed under category.
func Contains(category, sub string) bool {
	for _, s := range table[category] {
		if s == sub {
			return true
		}
	}
	return false
}
