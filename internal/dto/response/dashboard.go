package response

// CountsResponse is returned as a bare object, without the success envelope
type CountsResponse struct {
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	Customers  int64 `json:"customers"`
}
