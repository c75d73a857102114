// Package dto defines the wire format of Twelve Data API responses.
package dto

// TimeSeriesResponse is the JSON payload of the time_series endpoint.
// Status is "error" on API-level failures, with the reason in Message.
type TimeSeriesResponse struct {
	Status   string            `json:"status"`
	Message  string            `json:"message,omitempty"`
	Symbol   string            `json:"symbol"`
	Interval string            `json:"interval"`
	Values   []TimeSeriesValue `json:"values"`
}

// TimeSeriesValue is a single bar. All numeric fields arrive as strings
// and are parsed by the repository; Volume may be empty for FX pairs.
type TimeSeriesValue struct {
	Datetime string `json:"datetime"`
	Open     string `json:"open"`
	High     string `json:"high"`
	Low      string `json:"low"`
	Close    string `json:"close"`
	Volume   string `json:"volume"`
}
