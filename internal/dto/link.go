package dto

// LinkTokenUser identifies the end user starting a link session.
type LinkTokenUser struct {
	ClientUserID string `json:"client_user_id" validate:"required"`
}

// LinkTokenCreateRequest is the body of POST /link/token/create.
type LinkTokenCreateRequest struct {
	User LinkTokenUser `json:"user"`
}

// LinkTokenCreateResponse is the success body of POST /link/token/create.
type LinkTokenCreateResponse struct {
	LinkToken  string `json:"link_token"`
	Expiration int64  `json:"expiration"`
	RequestID  string `json:"request_id"`
}
