package dto

// InfoResponse is the success body of GET /info.
type InfoResponse struct {
	Name          string   `json:"name"`
	Version       string   `json:"version"`
	Description   string   `json:"description"`
	Endpoints     []string `json:"endpoints"`
	Documentation string   `json:"documentation"`
}
