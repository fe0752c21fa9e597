package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentStatus tracks whether an order has been paid
type PaymentStatus int

const (
	PaymentStatusPending PaymentStatus = iota
	PaymentStatusPaid
	PaymentStatusRefunded
)

func (s PaymentStatus) String() string {
	names := [...]string{"PENDING", "PAID", "REFUNDED"}
	if int(s) < 0 || int(s) >= len(names) {
		return "PENDING"
	}
	return names[s]
}

// ParsePaymentStatus converts a wire value into a PaymentStatus.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	switch value {
	case "PENDING":
		return PaymentStatusPending, nil
	case "PAID":
		return PaymentStatusPaid, nil
	case "REFUNDED":
		return PaymentStatusRefunded, nil
	}
	return PaymentStatusPending, fmt.Errorf("invalid payment status %q", value)
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	parsed, err := ParsePaymentStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}

// PaymentMethod is how a bill was settled
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = iota
	PaymentMethodCard
	PaymentMethodUPI
	PaymentMethodOnline
)

func (m PaymentMethod) String() string {
	names := [...]string{"CASH", "CARD", "UPI", "ONLINE"}
	if int(m) < 0 || int(m) >= len(names) {
		return "CASH"
	}
	return names[m]
}

// ParsePaymentMethod converts a wire value into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	switch value {
	case "CASH":
		return PaymentMethodCash, nil
	case "CARD":
		return PaymentMethodCard, nil
	case "UPI":
		return PaymentMethodUPI, nil
	case "ONLINE":
		return PaymentMethodOnline, nil
	}
	return PaymentMethodCash, fmt.Errorf("invalid payment method %q", value)
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
