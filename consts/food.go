package consts

import (
	"fmt"
	"strings"
)

var FoodTypeNames map[string]string

func init() {
	FoodTypeNames = make(map[string]string)

	FoodTypeNames["vegetable-curry"] = "Vegetable Curry"
	FoodTypeNames["rice"] = "Rice"
	FoodTypeNames["bread"] = "Bread"
	FoodTypeNames["dal"] = "Dal/Lentils"
	FoodTypeNames["fruits"] = "Fresh Fruits"
	FoodTypeNames["vegetables"] = "Fresh Vegetables"
	FoodTypeNames["sweets"] = "Sweets/Desserts"
	FoodTypeNames["other"] = "Other"
}

// FoodTypeName - convert a donation form option into its display name.
// Display names are accepted as well since the photo analysis prefills the
// form with one.
func FoodTypeName(option string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(option))
	if name, ok := FoodTypeNames[key]; ok {
		return name, nil
	}

	for _, name := range FoodTypeNames {
		if strings.ToLower(name) == key {
			return name, nil
		}
	}

	return "", fmt.Errorf("%s not exist", option)
}
