package dto

// PublicTokenExchangeRequest is the body of POST /item/public_token/exchange.
type PublicTokenExchangeRequest struct {
	PublicToken string `json:"public_token" validate:"required"`
}

// PublicTokenExchangeResponse is the success body of POST /item/public_token/exchange.
type PublicTokenExchangeResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}
