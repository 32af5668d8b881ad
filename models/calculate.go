package models

// CalculateResponse is the success body of the calculate endpoint: the
// resulting instant in UTC with second precision.
type CalculateResponse struct {
	Date string `json:"date"`
}
