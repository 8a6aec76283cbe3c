package property

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Attribute is one trait of a metadata document
type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// Metadata is the document attached to a minted token. It is never
// mutated after construction. Attribute order follows Record field
// order, the price attribute is always last.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Attributes  []Attribute `json:"attributes"`
}

// BuildMetadata derives the metadata document from a record and a price
// estimate. Pure and deterministic, no I/O.
func BuildMetadata(r *Record, price float64) *Metadata {
	attributes := []Attribute{
		{TraitType: "Name", Value: r.Name},
		{TraitType: "Bedrooms", Value: r.Bedrooms},
		{TraitType: "Bathrooms", Value: r.Bathrooms},
		{TraitType: "Living Area", Value: r.SqftLiving},
		{TraitType: "Lot Size", Value: r.SqftLot},
		{TraitType: "Floors", Value: r.Floors},
		{TraitType: "Waterfront", Value: r.Waterfront},
		{TraitType: "View", Value: r.View},
		{TraitType: "Condition", Value: r.Condition},
		{TraitType: "Grade", Value: r.Grade},
		{TraitType: "Sqft Above", Value: r.SqftAbove},
		{TraitType: "Sqft Basement", Value: r.SqftBasement},
		{TraitType: "Year Built", Value: r.YrBuilt},
		{TraitType: "Year Renovated", Value: r.YrRenovated},
		{TraitType: "Zipcode", Value: r.Zipcode},
		{TraitType: "Latitude", Value: r.Lat},
		{TraitType: "Longitude", Value: r.Long},
		{TraitType: "Living Area 15", Value: r.SqftLiving15},
		{TraitType: "Lot Size 15", Value: r.SqftLot15},
		{TraitType: "Month", Value: r.Month},
		{TraitType: "Year", Value: r.Year},
		{TraitType: "Price", Value: price},
	}
	return &Metadata{
		Name:        r.Name,
		Description: fmt.Sprintf("A %d bedroom house priced at $%s", r.Bedrooms, decimal.NewFromFloat(price).String()),
		Attributes:  attributes,
	}
}
