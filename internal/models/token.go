package models

// LinkToken is the grant returned by the link phase. The token embeds the
// tenant, user, issuance timestamp and a random identifier; it is never
// persisted or validated afterwards.
type LinkToken struct {
	Token      string
	Expiration int64
	RequestID  string
}

// AccessTokenGrant is the result of a public token exchange. The minted token
// is not registered in the catalog, so it resolves to no accounts.
type AccessTokenGrant struct {
	AccessToken string
	ItemID      string
	RequestID   string
}
