package receipt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/receipts-api/internal/common"
)

func decodeDoc(t *testing.T, body string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var doc map[string]any
	require.NoError(t, dec.Decode(&doc))
	return doc
}

const validBody = `{
	"retailer": "Target",
	"purchaseDate": "2022-01-01",
	"purchaseTime": "13:01",
	"items": [
		{"shortDescription": "Mountain Dew 12PK", "price": "6.49"},
		{"shortDescription": "Emils Cheese Pizza", "price": "12.25"}
	],
	"total": "18.74"
}`

func TestValidateAccepted(t *testing.T) {
	rec, err := Validate(decodeDoc(t, validBody))
	require.NoError(t, err)
	require.Equal(t, "Target", rec.Retailer)
	require.Equal(t, "18.74", rec.Total.String())
	require.Len(t, rec.Items, 2)
	require.Equal(t, "Mountain Dew 12PK", rec.Items[0].ShortDescription)
	require.Equal(t, "6.49", rec.Items[0].Price.String())
	require.Equal(t, 2022, rec.PurchaseDate.Year())
	require.Equal(t, 13, rec.PurchaseTime.Hour())
}

func TestValidateNumericAmounts(t *testing.T) {
	doc := decodeDoc(t, `{
		"retailer": "Corner Shop",
		"purchaseDate": "2022-06-15",
		"purchaseTime": "08:30",
		"items": [{"shortDescription": "Milk", "price": 3.5}],
		"total": 3.5
	}`)
	rec, err := Validate(doc)
	require.NoError(t, err)
	require.True(t, rec.Total.Equal(rec.Items[0].Price))
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing retailer",
			body: `{"purchaseDate":"2022-01-01","purchaseTime":"13:01","items":[],"total":"0.00"}`,
			want: "Missing required field: retailer",
		},
		{
			name: "missing total",
			body: `{"retailer":"T","purchaseDate":"2022-01-01","purchaseTime":"13:01","items":[]}`,
			want: "Missing required field: total",
		},
		{
			name: "blank retailer",
			body: `{"retailer":"   ","purchaseDate":"2022-01-01","purchaseTime":"13:01","items":[],"total":"0.00"}`,
			want: "Invalid retailer name",
		},
		{
			name: "retailer wrong type",
			body: `{"retailer":7,"purchaseDate":"2022-01-01","purchaseTime":"13:01","items":[],"total":"0.00"}`,
			want: "Invalid retailer name",
		},
		{
			name: "negative total",
			body: `{"retailer":"T","purchaseDate":"2022-01-01","purchaseTime":"13:01","items":[],"total":"-1.00"}`,
			want: "Invalid total format",
		},
		{
			name: "unparseable total",
			body: `{"retailer":"T","purchaseDate":"2022-01-01","purchaseTime":"13:01","items":[],"total":"12.3.4"}`,
			want: "Invalid total format",
		},
		{
			name: "bad purchase date",
			body: `{"retailer":"T","purchaseDate":"01-01-2022","purchaseTime":"13:01","items":[],"total":"0.00"}`,
			want: "Invalid purchaseDate format, expected YYYY-MM-DD",
		},
		{
			name: "bad purchase time",
			body: `{"retailer":"T","purchaseDate":"2022-01-01","purchaseTime":"1:01 PM","items":[],"total":"0.00"}`,
			want: "Invalid purchaseTime format, expected HH:MM",
		},
		{
			name: "items wrong type",
			body: `{"retailer":"T","purchaseDate":"2022-01-01","purchaseTime":"13:01","items":"none","total":"0.00"}`,
			want: "Items should be a list of objects",
		},
		{
			name: "item not an object",
			body: `{"retailer":"T","purchaseDate":"2022-01-01","purchaseTime":"13:01","items":["soda"],"total":"0.00"}`,
			want: "Items should be a list of objects",
		},
		{
			name: "item missing price",
			body: `{"retailer":"T","purchaseDate":"2022-01-01","purchaseTime":"13:01","items":[{"shortDescription":"Soda"}],"total":"0.00"}`,
			want: "Each item must have 'shortDescription' and 'price'",
		},
		{
			name: "item blank description",
			body: `{"retailer":"T","purchaseDate":"2022-01-01","purchaseTime":"13:01","items":[{"shortDescription":"  ","price":"1.00"}],"total":"1.00"}`,
			want: "Invalid shortDescription in items",
		},
		{
			name: "item negative price",
			body: `{"retailer":"T","purchaseDate":"2022-01-01","purchaseTime":"13:01","items":[{"shortDescription":"Soda","price":"-1.00"}],"total":"1.00"}`,
			want: "Invalid price format in items",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(decodeDoc(t, tc.body))
			require.Error(t, err)
			var appErr *common.AppError
			require.ErrorAs(t, err, &appErr)
			require.Equal(t, common.KindValidation, appErr.Kind)
			require.Equal(t, tc.want, appErr.Message)
		})
	}
}

func TestValidateReportsFirstViolation(t *testing.T) {
	// Retailer and purchaseDate are both invalid; the retailer check runs
	// first.
	doc := decodeDoc(t, `{"retailer":" ","purchaseDate":"bad","purchaseTime":"13:01","items":[],"total":"0.00"}`)
	_, err := Validate(doc)
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "Invalid retailer name", appErr.Message)
}

func TestCheckTotalWithinTolerance(t *testing.T) {
	rec, err := Validate(decodeDoc(t, `{
		"retailer": "T",
		"purchaseDate": "2022-01-01",
		"purchaseTime": "13:01",
		"items": [{"shortDescription": "Soda", "price": "1.00"}],
		"total": "1.01"
	}`))
	require.NoError(t, err)
	require.NoError(t, CheckTotal(rec))
}

func TestCheckTotalMismatch(t *testing.T) {
	rec, err := Validate(decodeDoc(t, `{
		"retailer": "T",
		"purchaseDate": "2022-01-01",
		"purchaseTime": "13:01",
		"items": [{"shortDescription": "Soda", "price": "1.00"}],
		"total": "1.50"
	}`))
	require.NoError(t, err)

	err = CheckTotal(rec)
	require.Error(t, err)
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, common.KindValidation, appErr.Kind)
	require.Contains(t, appErr.Message, "calculated total is 1")
	require.Contains(t, appErr.Message, "provided total is 1.5")
}

func TestCheckTotalEmptyItems(t *testing.T) {
	rec, err := Validate(decodeDoc(t, `{
		"retailer": "T",
		"purchaseDate": "2022-01-01",
		"purchaseTime": "13:01",
		"items": [],
		"total": "0.00"
	}`))
	require.NoError(t, err)
	require.NoError(t, CheckTotal(rec))
}
