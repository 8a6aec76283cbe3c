package property

// Record describes one house listing. Field order is significant: it is
// the canonical attribute order of minted metadata, so fields must not be
// renamed or reordered.
type Record struct {
	Name         string  `json:"name" validate:"required"`
	Bedrooms     uint64  `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms" validate:"gte=0"`
	SqftLiving   uint64  `json:"sqft_living"`
	SqftLot      uint64  `json:"sqft_lot"`
	Floors       uint64  `json:"floors"`
	Waterfront   uint64  `json:"waterfront"`
	View         uint64  `json:"view"`
	Condition    uint64  `json:"condition"`
	Grade        uint64  `json:"grade"`
	SqftAbove    uint64  `json:"sqft_above"`
	SqftBasement uint64  `json:"sqft_basement"`
	YrBuilt      uint64  `json:"yr_built"`
	YrRenovated  uint64  `json:"yr_renovated"`
	Zipcode      uint64  `json:"zipcode"`
	Lat          float64 `json:"lat"`
	Long         float64 `json:"long"`
	SqftLiving15 uint64  `json:"sqft_living15"`
	SqftLot15    uint64  `json:"sqft_lot15"`
	Month        uint64  `json:"month"`
	Year         uint64  `json:"year"`
}
