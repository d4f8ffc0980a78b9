package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how the delivered amount of a prescription was paid
type PaymentMethod int

const (
	PaymentMethodCash       PaymentMethod = 0
	PaymentMethodDebitCard  PaymentMethod = 1
	PaymentMethodCreditCard PaymentMethod = 2
	PaymentMethodTransfer   PaymentMethod = 3
	PaymentMethodOther      PaymentMethod = 4
)

func (m PaymentMethod) String() string {
	names := [...]string{"Cash", "DebitCard", "CreditCard", "Transfer", "Other"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Cash"
	}
	return names[m]
}

// ParsePaymentMethod maps a wire string onto a PaymentMethod. Empty or unknown
// input falls back to Cash, the form default.
func ParsePaymentMethod(s string) PaymentMethod {
	switch s {
	case "DebitCard":
		return PaymentMethodDebitCard
	case "CreditCard":
		return PaymentMethodCreditCard
	case "Transfer":
		return PaymentMethodTransfer
	case "Other":
		return PaymentMethodOther
	default:
		return PaymentMethodCash
	}
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
	*m = ParsePaymentMethod(str)
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
