package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FoodCategory classifies menu items
type FoodCategory int

const (
	FoodCategoryStarters FoodCategory = iota
	FoodCategoryMainCourse
	FoodCategoryBeverages
	FoodCategoryDesserts
	FoodCategorySnacks
	FoodCategoryChaat
)

func (c FoodCategory) String() string {
	names := [...]string{"STARTERS", "MAIN_COURSE", "BEVERAGES", "DESSERTS", "SNACKS", "CHAAT"}
	if int(c) < 0 || int(c) >= len(names) {
		return "STARTERS"
	}
	return names[c]
}

// ParseFoodCategory converts a wire value into a FoodCategory.
func ParseFoodCategory(value string) (FoodCategory, error) {
	switch value {
	case "STARTERS":
		return FoodCategoryStarters, nil
	case "MAIN_COURSE":
		return FoodCategoryMainCourse, nil
	case "BEVERAGES":
		return FoodCategoryBeverages, nil
	case "DESSERTS":
		return FoodCategoryDesserts, nil
	case "SNACKS":
		return FoodCategorySnacks, nil
	case "CHAAT":
		return FoodCategoryChaat, nil
	}
	return FoodCategoryStarters, fmt.Errorf("invalid food category %q", value)
}

func (c FoodCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *FoodCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = FoodCategory(i)
		return nil
	}
	parsed, err := ParseFoodCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c FoodCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *FoodCategory) Scan(value interface{}) error {
	if value == nil {
		*c = FoodCategoryStarters
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = FoodCategory(v)
	case int:
		*c = FoodCategory(v)
	}
	return nil
}
