package meals

var builtinMeals = []Meal{
	{
		ID:          "builtin-1",
		Name:        "Protein-Packed Breakfast Bowl",
		Description: "Scrambled eggs with spinach, avocado, and whole grain toast",
		Type:        Breakfast,
		PrepTime:    "15 min",
		Nutrients:   []string{"Protein", "Folate", "Healthy Fats"},
	},
	{
		ID:          "builtin-2",
		Name:        "Anti-Nausea Smoothie",
		Description: "Ginger, banana, and yogurt smoothie to help with morning sickness",
		Type:        Breakfast,
		PrepTime:    "5 min",
		Nutrients:   []string{"Vitamin B6", "Probiotics", "Potassium"},
	},
	{
		ID:          "builtin-3",
		Name:        "Iron-Rich Lunch",
		Description: "Lentil salad with leafy greens, bell peppers, and pumpkin seeds",
		Type:        Lunch,
		PrepTime:    "20 min",
		Nutrients:   []string{"Iron", "Fiber", "Vitamin C"},
	},
	{
		ID:          "builtin-4",
		Name:        "Hearty Dinner",
		Description: "Baked salmon with sweet potato and steamed broccoli",
		Type:        Dinner,
		PrepTime:    "30 min",
		Nutrients:   []string{"Omega-3", "Vitamin A", "Calcium"},
	},
	{
		ID:          "builtin-5",
		Name:        "Balanced Snack",
		Description: "Apple slices with peanut butter and a small handful of nuts",
		Type:        Snack,
		PrepTime:    "2 min",
		Nutrients:   []string{"Protein", "Healthy Fats", "Fiber"},
	},
}

var nutritionTips = []string{
	"Folate-rich foods like leafy greens help prevent neural tube defects.",
	"Iron from meat, beans, and fortified cereals prevents anemia.",
	"Calcium supports bone development - dairy, fortified plant milks, and leafy greens are good sources.",
	"Omega-3 fatty acids from fish and walnuts support brain development.",
}

// Builtin returns a deep copy of the bundled meals.
func Builtin() []Meal {
	out := make([]Meal, len(builtinMeals))
	for i, m := range builtinMeals {
		m.Nutrients = append([]string(nil), m.Nutrients...)
		out[i] = m
	}
	return out
}

func Tips() []string { return append([]string(nil), nutritionTips...) }
