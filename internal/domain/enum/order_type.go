package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderType distinguishes dine-in from takeaway orders
type OrderType int

const (
	OrderTypeDineIn OrderType = iota
	OrderTypeTakeaway
)

func (t OrderType) String() string {
	names := [...]string{"DINE_IN", "TAKEAWAY"}
	if int(t) < 0 || int(t) >= len(names) {
		return "DINE_IN"
	}
	return names[t]
}

// ParseOrderType converts a wire value into an OrderType.
func ParseOrderType(value string) (OrderType, error) {
	switch value {
	case "DINE_IN":
		return OrderTypeDineIn, nil
	case "TAKEAWAY":
		return OrderTypeTakeaway, nil
	}
	return OrderTypeDineIn, fmt.Errorf("invalid order type %q", value)
}

func (t OrderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *OrderType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = OrderType(i)
		return nil
	}
	parsed, err := ParseOrderType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t OrderType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *OrderType) Scan(value interface{}) error {
	if value == nil {
		*t = OrderTypeDineIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = OrderType(v)
	case int:
		*t = OrderType(v)
	}
	return nil
}
