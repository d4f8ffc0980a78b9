package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProductType classifies an inventory item of the optical shop
type ProductType int

const (
	ProductTypeFrame          ProductType = 0
	ProductTypeOphthalmicLens ProductType = 1
	ProductTypeContactLens    ProductType = 2
	ProductTypeSunglasses     ProductType = 3
	ProductTypeSolutions      ProductType = 4
	ProductTypeAccessory      ProductType = 5
	ProductTypeOther          ProductType = 6
)

func (t ProductType) String() string {
	names := [...]string{
		"Frame", "OphthalmicLens", "ContactLens",
		"Sunglasses", "Solutions", "Accessory", "Other",
	}
	if int(t) < 0 || int(t) >= len(names) {
		return "Other"
	}
	return names[t]
}

// ParseProductType maps a display name back to its product type; unknown
// names default to Other.
func ParseProductType(s string) ProductType {
	switch s {
	case "Frame":
		return ProductTypeFrame
	case "OphthalmicLens":
		return ProductTypeOphthalmicLens
	case "ContactLens":
		return ProductTypeContactLens
	case "Sunglasses":
		return ProductTypeSunglasses
	case "Solutions":
		return ProductTypeSolutions
	case "Accessory":
		return ProductTypeAccessory
	default:
		return ProductTypeOther
	}
}

func (t ProductType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ProductType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = ProductType(i)
		return nil
	}
	switch str {
	case "Frame":
		*t = ProductTypeFrame
	case "OphthalmicLens":
		*t = ProductTypeOphthalmicLens
	case "ContactLens":
		*t = ProductTypeContactLens
	case "Sunglasses":
		*t = ProductTypeSunglasses
	case "Solutions":
		*t = ProductTypeSolutions
	case "Accessory":
		*t = ProductTypeAccessory
	default:
		*t = ProductTypeOther
	}
	return nil
}

func (t ProductType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *ProductType) Scan(value interface{}) error {
	if value == nil {
		*t = ProductTypeOther
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = ProductType(v)
	case int:
		*t = ProductType(v)
	}
	return nil
}
