package pricing

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/boldgroup/website/app/models"
)

var vatRate = decimal.RequireFromString("0.075")

// VATRate returns the fixed value-added tax applied to every package price.
func VATRate() decimal.Decimal {
	return vatRate
}

// Quote is the price breakdown of a package: the base price, the VAT on it and
// the total. Figures are exact; rounding is left to presentation.
type Quote struct {
	Price decimal.Decimal
	VAT   decimal.Decimal
	Total decimal.Decimal
}

// Calculate derives VAT and total for a base price.
func Calculate(price int64) Quote {
	base := decimal.NewFromInt(price)
	vat := base.Mul(vatRate)
	return Quote{
		Price: base,
		VAT:   vat,
		Total: base.Add(vat),
	}
}

// ForPackage quotes a package. A nil package quotes as zero.
func ForPackage(pkg *models.Package) Quote {
	if pkg == nil {
		return Calculate(0)
	}
	return Calculate(pkg.Price)
}

// MarshalJSON renders the figures as JSON numbers.
func (q Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Price json.Number `json:"price"`
		VAT   json.Number `json:"vat"`
		Total json.Number `json:"total"`
	}{
		Price: json.Number(q.Price.String()),
		VAT:   json.Number(q.VAT.String()),
		Total: json.Number(q.Total.String()),
	})
}
