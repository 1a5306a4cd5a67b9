package domain

// Coordinate - географическая точка
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LocationInfo - структурированное описание места, полученное обратным геокодированием
type LocationInfo struct {
	Type        string `json:"type"`
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryCode string `json:"country_code"`
	Country     string `json:"country"`
	Timezone    string `json:"timezone"`
	RawAddress  string `json:"raw_address"`
}
