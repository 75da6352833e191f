package dataset

type file struct {
	Yachts []yachtRecord `json:"yachts"`
}

type yachtRecord struct {
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Location      locationRecord   `json:"location"`
	LengthFeet    float64          `json:"lengthFeet"`
	GuestCapacity int              `json:"guestCapacity"`
	Cabins        int              `json:"cabins"`
	PriceTiers    []priceTierEntry `json:"priceTiers"`
	AmenityCodes  []string         `json:"amenityCodes"`
	ImageURLs     []string         `json:"imageUrls"`
	Published     *bool            `json:"published"` // по умолчанию true
}

type locationRecord struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type priceTierEntry struct {
	CharterHours int   `json:"charterHours"`
	RetailCents  int64 `json:"retailCents"`
}
