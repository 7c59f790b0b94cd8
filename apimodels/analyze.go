package apimodels

type AnalyzeRequest struct {
	// Number is the couplet number (1..1330)
	Number int `json:"number"`

	// Kural is the original couplet text in Tamil
	Kural string `json:"kural"`

	// Translation is the English meaning of the couplet
	Translation string `json:"translation"`
}

type AnalyzeResponse struct {
	Number      int    `json:"number"`
	Kural       string `json:"kural"`
	Translation string `json:"translation"`

	// The generated or templated explanation
	Explanation string `json:"explanation"`

	// Model that produced the explanation; null when the
	// deterministic placeholder was used
	Model *string `json:"model"`

	// Whether an external text-generation call produced the explanation
	ExternalCallUsed bool `json:"external_call_used"`
}
