package compose

import "fmt"

// Fact renders a labeled value, or nothing at all when the value is empty.
// Every optional field in every layout goes through here so sparse records
// never produce orphaned labels.
func Fact(label, value string) *Node {
	if value == "" {
		return nil
	}
	return Box(Style{Margin: Edges{Bottom: 10}},
		Text(styleLabel, label),
		Text(styleValue, value),
	)
}

func areaValue(m2 *int) string {
	if m2 == nil {
		return ""
	}
	return fmt.Sprintf("%d m²", *m2)
}

func contractValue(mnok *float64) string {
	if mnok == nil {
		return ""
	}
	return fmt.Sprintf("%g MNOK", *mnok)
}
