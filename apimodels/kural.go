package apimodels

// Kural is a single Thirukural record as served by the API.
type Kural struct {
	// Number is the unique couplet number (1..1330)
	Number int `json:"number"`

	// Kural is the original couplet text in Tamil, two lines joined by "\n"
	Kural string `json:"kural"`

	// Translation is the English meaning of the couplet
	Translation string `json:"translation"`

	// Section is the high-level division (e.g. அறத்துப்பால்), when known
	Section *string `json:"section"`

	// Chapter is the chapter name within the section, when known
	Chapter *string `json:"chapter"`
}
