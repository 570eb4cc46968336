package domain

// AdviceResponse is returned by the advisory endpoints
type AdviceResponse struct {
	Query  string `json:"query"`
	Advice string `json:"advice"`
}
