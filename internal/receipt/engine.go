package receipt

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	quarter           = decimal.RequireFromString("0.25")
	descriptionFactor = decimal.RequireFromString("0.2")
)

// Calculate derives the loyalty score for a validated receipt. The rules
// are independent and additive, so the result is deterministic and never
// negative.
func Calculate(r Receipt) int {
	points := 0

	// One point per ASCII alphanumeric character in the retailer name.
	for _, ch := range r.Retailer {
		if ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9') {
			points++
		}
	}

	// 50 points for a whole-dollar total.
	if r.Total.IsInteger() {
		points += 50
	}

	// 25 points when the total is an exact multiple of 0.25. Decimal
	// arithmetic keeps values like 0.15 from matching through float noise.
	if r.Total.Mod(quarter).IsZero() {
		points += 25
	}

	// 5 points for every complete pair of items.
	points += len(r.Items) / 2 * 5

	// ceil(price * 0.2) for each item whose trimmed description length is
	// a nonzero multiple of 3.
	for _, item := range r.Items {
		trimmed := strings.TrimSpace(item.ShortDescription)
		if len(trimmed) > 0 && len(trimmed)%3 == 0 {
			points += int(item.Price.Mul(descriptionFactor).Ceil().IntPart())
		}
	}

	// 6 points when the day of the purchase date is odd.
	if r.PurchaseDate.Day()%2 == 1 {
		points += 6
	}

	// 10 points when the purchase hour falls in [14:00, 16:00).
	if hour := r.PurchaseTime.Hour(); hour >= 14 && hour < 16 {
		points += 10
	}

	return points
}
