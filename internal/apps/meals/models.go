package meals

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

var mealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

type Meal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        MealType `json:"type"`
	PrepTime    string   `json:"prepTime"`
	Nutrients   []string `json:"nutrients"`
	UserAdded   bool     `json:"userAdded"`
}

func (m Meal) EntityID() string { return m.ID }

// MealView is a meal with the caller's saved flag.
type MealView struct {
	Meal
	Saved bool `json:"saved"`
}

type AddMealRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        MealType `json:"type"`
	PrepTime    string   `json:"prepTime"`
	Nutrients   []string `json:"nutrients"`
}
