package model

// Setting is an operational key/value pair editable by administrators.
// Checkout reads shipping_base_cost and shipping_additional_ratio from here.
type Setting struct {
	Key   string `json:"config_key" db:"config_key"`
	Value string `json:"config_value" db:"config_value"`
}

// Well-known setting keys.
const (
	SettingShippingBaseCost       = "shipping_base_cost"
	SettingShippingAdditionalRate = "shipping_additional_ratio"
)

// SettingValueRequest is the payload for updating a config value.
type SettingValueRequest struct {
	Value string `json:"config_value"`
}

// SettingCreateRequest is the payload for adding a new config key/value.
type SettingCreateRequest struct {
	Key   string `json:"config_key"`
	Value string `json:"config_value"`
}
