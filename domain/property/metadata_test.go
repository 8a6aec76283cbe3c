package property

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleRecord() *Record {
	return &Record{
		Name:         "7 Maple Street",
		Bedrooms:     3,
		Bathrooms:    2.5,
		SqftLiving:   1960,
		SqftLot:      5000,
		Floors:       2,
		Waterfront:   0,
		View:         0,
		Condition:    3,
		Grade:        8,
		SqftAbove:    1680,
		SqftBasement: 280,
		YrBuilt:      1977,
		YrRenovated:  0,
		Zipcode:      98115,
		Lat:          47.6974,
		Long:         -122.313,
		SqftLiving15: 1950,
		SqftLot15:    5100,
		Month:        5,
		Year:         2022,
	}
}

func TestBuildMetadataDescription(t *testing.T) {
	req := require.New(t)

	md := BuildMetadata(sampleRecord(), 450000.0)

	req.Equal("7 Maple Street", md.Name)
	req.Contains(md.Description, "3 bedroom house priced at $450000")
}

func TestBuildMetadataPriceIsLastAttribute(t *testing.T) {
	req := require.New(t)

	md := BuildMetadata(sampleRecord(), 389500.5)

	req.Len(md.Attributes, 22)
	last := md.Attributes[len(md.Attributes)-1]
	req.Equal("Price", last.TraitType)
	req.Equal(389500.5, last.Value)
	for _, at := range md.Attributes[:len(md.Attributes)-1] {
		req.NotEqual("Price", at.TraitType)
	}
}

func TestBuildMetadataAttributeOrder(t *testing.T) {
	req := require.New(t)

	md := BuildMetadata(sampleRecord(), 450000.0)

	wantOrder := []string{
		"Name", "Bedrooms", "Bathrooms", "Living Area", "Lot Size",
		"Floors", "Waterfront", "View", "Condition", "Grade",
		"Sqft Above", "Sqft Basement", "Year Built", "Year Renovated",
		"Zipcode", "Latitude", "Longitude", "Living Area 15",
		"Lot Size 15", "Month", "Year", "Price",
	}
	req.Len(md.Attributes, len(wantOrder))
	for i, at := range md.Attributes {
		req.Equal(wantOrder[i], at.TraitType)
	}
}

func TestBuildMetadataDeterministic(t *testing.T) {
	req := require.New(t)

	r := sampleRecord()
	first, err := json.Marshal(BuildMetadata(r, 450000.0))
	req.NoError(err)
	second, err := json.Marshal(BuildMetadata(r, 450000.0))
	req.NoError(err)
	req.Equal(first, second)
}

func TestBuildMetadataRoundTrip(t *testing.T) {
	req := require.New(t)

	md := BuildMetadata(sampleRecord(), 450000.0)
	data, err := json.Marshal(md)
	req.NoError(err)

	parsed := &Metadata{}
	req.NoError(json.Unmarshal(data, parsed))
	req.Equal(md.Name, parsed.Name)
	req.Equal(md.Description, parsed.Description)
	req.Len(parsed.Attributes, len(md.Attributes))
	req.Equal("Price", parsed.Attributes[len(parsed.Attributes)-1].TraitType)
}
