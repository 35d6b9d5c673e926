package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PriceItem is a named entry of the pricing catalogue.
type PriceItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Catalogue lists the venue packages and optional add-ons.
type Catalogue struct {
	Packages []PriceItem `json:"packages"`
	AddOns   []PriceItem `json:"addOns"`
}

// Pricing looks up package and add-on prices.
type Pricing struct {
	catalogue Catalogue
	packages  map[string]decimal.Decimal
	addOns    map[string]decimal.Decimal
}

// DefaultCatalogue is the venue's published price list.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		Packages: []PriceItem{
			{Name: "Essential", Price: decimal.NewFromInt(2500)},
			{Name: "Premium", Price: decimal.NewFromInt(4200)},
			{Name: "Luxury", Price: decimal.NewFromInt(6800)},
		},
		AddOns: []PriceItem{
			{Name: "Professional Photography", Price: decimal.NewFromInt(800)},
			{Name: "Videography Service", Price: decimal.NewFromInt(1200)},
			{Name: "Live Music Band", Price: decimal.NewFromInt(1500)},
			{Name: "DJ Service", Price: decimal.NewFromInt(600)},
			{Name: "Additional Hour", Price: decimal.NewFromInt(300)},
			{Name: "Upgraded Floral Arrangements", Price: decimal.NewFromInt(500)},
			{Name: "Specialty Lighting", Price: decimal.NewFromInt(400)},
			{Name: "Photo Booth", Price: decimal.NewFromInt(450)},
		},
	}
}

// NewPricing indexes a catalogue by case-insensitive name.
func NewPricing(c Catalogue) *Pricing {
	p := &Pricing{
		catalogue: c,
		packages:  make(map[string]decimal.Decimal, len(c.Packages)),
		addOns:    make(map[string]decimal.Decimal, len(c.AddOns)),
	}
	for _, item := range c.Packages {
		p.packages[priceKey(item.Name)] = item.Price
	}
	for _, item := range c.AddOns {
		p.addOns[priceKey(item.Name)] = item.Price
	}
	return p
}

// priceKey folds case and drops a " package" suffix or a trailing price label
// such as "Premium ($4,200)".
func priceKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key, _, _ = strings.Cut(key, " (")
	return strings.TrimSuffix(strings.TrimSpace(key), " package")
}

// Catalogue returns the full price list.
func (p *Pricing) Catalogue() Catalogue {
	return p.catalogue
}

// Estimate sums the package price and add-on prices. Unknown names, including
// "Custom Quote", count as zero.
func (p *Pricing) Estimate(packageType string, addOns []string) decimal.Decimal {
	total := decimal.Zero
	if price, ok := p.packages[priceKey(packageType)]; ok {
		total = total.Add(price)
	}
	for _, name := range addOns {
		if price, ok := p.addOns[priceKey(name)]; ok {
			total = total.Add(price)
		}
	}
	return total
}
