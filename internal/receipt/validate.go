package receipt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/receipts-api/internal/common"
)

// totalTolerance is the absolute tolerance applied when comparing the
// declared total against the sum of item prices.
var totalTolerance = decimal.RequireFromString("0.01")

// requiredFields lists the top-level receipt fields in the order they are
// checked. The first violated constraint aborts validation.
var requiredFields = []string{"retailer", "purchaseDate", "purchaseTime", "items", "total"}

var formats = validator.New()

// Validate checks a loosely-structured receipt document and converts it
// into a typed Receipt. Checks run in a fixed order and stop at the first
// violation: required fields, retailer, total, purchaseDate, purchaseTime,
// items shape, then per-item fields.
func Validate(doc map[string]any) (Receipt, error) {
	for _, field := range requiredFields {
		if _, ok := doc[field]; !ok {
			return Receipt{}, common.NewValidationError(fmt.Sprintf("Missing required field: %s", field))
		}
	}

	retailer, ok := doc["retailer"].(string)
	if !ok || strings.TrimSpace(retailer) == "" {
		return Receipt{}, common.NewValidationError("Invalid retailer name")
	}

	total, ok := parseAmount(doc["total"])
	if !ok {
		return Receipt{}, common.NewValidationError("Invalid total format")
	}

	rawDate, ok := doc["purchaseDate"].(string)
	if !ok || formats.Var(rawDate, "datetime="+purchaseDateLayout) != nil {
		return Receipt{}, common.NewValidationError("Invalid purchaseDate format, expected YYYY-MM-DD")
	}
	purchaseDate, _ := time.Parse(purchaseDateLayout, rawDate)

	rawTime, ok := doc["purchaseTime"].(string)
	if !ok || formats.Var(rawTime, "datetime="+purchaseTimeLayout) != nil {
		return Receipt{}, common.NewValidationError("Invalid purchaseTime format, expected HH:MM")
	}
	purchaseTime, _ := time.Parse(purchaseTimeLayout, rawTime)

	rawItems, ok := doc["items"].([]any)
	if !ok {
		return Receipt{}, common.NewValidationError("Items should be a list of objects")
	}
	items := make([]Item, 0, len(rawItems))
	for _, raw := range rawItems {
		entry, ok := raw.(map[string]any)
		if !ok {
			return Receipt{}, common.NewValidationError("Items should be a list of objects")
		}
		rawDesc, hasDesc := entry["shortDescription"]
		rawPrice, hasPrice := entry["price"]
		if !hasDesc || !hasPrice {
			return Receipt{}, common.NewValidationError("Each item must have 'shortDescription' and 'price'")
		}
		desc, ok := rawDesc.(string)
		if !ok || strings.TrimSpace(desc) == "" {
			return Receipt{}, common.NewValidationError("Invalid shortDescription in items")
		}
		price, ok := parseAmount(rawPrice)
		if !ok {
			return Receipt{}, common.NewValidationError("Invalid price format in items")
		}
		items = append(items, Item{ShortDescription: desc, Price: price})
	}

	return Receipt{
		Retailer:     retailer,
		PurchaseDate: purchaseDate,
		PurchaseTime: purchaseTime,
		Items:        items,
		Total:        total,
	}, nil
}

// CheckTotal verifies the declared total matches the sum of item prices
// within the configured tolerance.
func CheckTotal(r Receipt) error {
	calculated := decimal.Zero
	for _, item := range r.Items {
		calculated = calculated.Add(item.Price)
	}
	if calculated.Sub(r.Total).Abs().GreaterThan(totalTolerance) {
		return common.NewValidationError(fmt.Sprintf(
			"Total mismatch: calculated total is %s, but provided total is %s",
			calculated.String(), r.Total.String()))
	}
	return nil
}

// parseAmount accepts a decimal amount submitted as a JSON string or
// number and rejects negative values.
func parseAmount(v any) (decimal.Decimal, bool) {
	var raw string
	switch value := v.(type) {
	case string:
		raw = strings.TrimSpace(value)
	case json.Number:
		raw = value.String()
	case float64:
		raw = strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, false
	}
	return amount, true
}
