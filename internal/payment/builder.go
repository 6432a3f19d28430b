package payment

import (
	"stitchkart/internal/model"

	"github.com/shopspring/decimal"
)

const (
	modePayment = "payment"

	// Provider limit on line-item descriptions.
	maxDescriptionLen = 100
)

var oneHundred = decimal.NewFromInt(100)

// BuildSessionRequest maps an order and its priced cart snapshot into the
// provider's session-creation payload. Unit amounts are converted to minor
// currency units by multiplying by 100 and truncating. The order identifier
// travels in the session metadata so the asynchronous payment-completion
// notification can be correlated back to the order.
func BuildSessionRequest(order *model.Order, items []model.SnapshotItem, shippingCost decimal.Decimal, opts SessionOptions) *SessionRequest {
	req := &SessionRequest{
		Currency:   opts.Currency,
		Mode:       modePayment,
		LineItems:  make([]LineItem, 0, len(items)+1),
		Metadata:   map[string]string{"order_id": order.ID.String()},
		SuccessURL: opts.SuccessURL,
		CancelURL:  opts.CancelURL,
	}

	for _, item := range items {
		line := LineItem{
			Name:        item.Name,
			Description: truncate(item.Description, maxDescriptionLen),
			UnitAmount:  minorUnits(decimal.NewFromFloat(item.UnitPrice)),
			Quantity:    item.Quantity,
		}
		if item.ImageURL != nil {
			line.ImageURL = *item.ImageURL
		}
		req.LineItems = append(req.LineItems, line)
	}

	if shippingCost.IsPositive() {
		req.LineItems = append(req.LineItems, LineItem{
			Name:        "Shipping Cost",
			Description: "Shipping and handling fee",
			UnitAmount:  minorUnits(shippingCost),
			Quantity:    1,
		})
	}

	return req
}

// minorUnits converts a decimal amount to the currency's smallest unit,
// truncating toward zero.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(oneHundred).IntPart()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
