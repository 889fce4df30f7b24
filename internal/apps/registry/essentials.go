package registry

// EssentialItem is a checklist suggestion.
type EssentialItem struct {
	Name     string `json:"name"`
	Priority string `json:"priority"`
}

type EssentialGroup struct {
	Category string          `json:"category"`
	Items    []EssentialItem `json:"items"`
}

var essentials = []EssentialGroup{
	{Category: "Sleep", Items: []EssentialItem{
		{"Crib", "high"},
		{"Crib mattress", "high"},
		{"Fitted crib sheets", "medium"},
		{"Baby monitor", "high"},
		{"Swaddles", "medium"},
	}},
	{Category: "Feeding", Items: []EssentialItem{
		{"Bottles", "high"},
		{"Bottle brush", "medium"},
		{"Nursing pillow", "medium"},
		{"Burp cloths", "high"},
		{"High chair", "low"},
	}},
	{Category: "Clothing", Items: []EssentialItem{
		{"Onesies (0-3 months)", "high"},
		{"Sleep sacks", "medium"},
		{"Socks", "medium"},
		{"Hats", "medium"},
		{"Seasonal outerwear", "low"},
	}},
	{Category: "Diapering", Items: []EssentialItem{
		{"Diapers", "high"},
		{"Wipes", "high"},
		{"Changing pad", "medium"},
		{"Diaper bag", "medium"},
		{"Diaper cream", "medium"},
	}},
}

// Essentials returns the built-in checklist.
func Essentials() []EssentialGroup {
	out := make([]EssentialGroup, len(essentials))
	for i, g := range essentials {
		out[i] = EssentialGroup{Category: g.Category, Items: append([]EssentialItem(nil), g.Items...)}
	}
	return out
}
