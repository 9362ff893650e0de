package models

// DailyQuote is the quote-of-the-day record, scoped to one calendar day.
type DailyQuote struct {
	EN       string `json:"en"`
	CN       string `json:"cn"`
	Author   string `json:"author"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl"`
}
