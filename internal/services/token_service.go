package services

import (
	"fmt"
	"strings"
	"time"

	"sahl-bank-api/internal/models"

	"github.com/google/uuid"
)

// LinkTokenTTL is the lifetime embedded in issued link tokens.
const LinkTokenTTL = 1800 * time.Second

type tokenService struct {
	now func() time.Time
}

// NewTokenService creates the token lifecycle service.
func NewTokenService() TokenServiceInterface {
	return NewTokenServiceWithClock(time.Now)
}

// NewTokenServiceWithClock creates a token service with an injected clock.
func NewTokenServiceWithClock(now func() time.Time) TokenServiceInterface {
	return &tokenService{now: now}
}

// CreateLinkToken issues a link token embedding the tenant, user, issuance
// timestamp and a random identifier. Nothing is persisted; the link and
// exchange phases are independent in this simulator.
func (s *tokenService) CreateLinkToken(clientID, userID string) models.LinkToken {
	timestamp := s.now().Unix()
	randomPart := randomHex()

	return models.LinkToken{
		Token:      fmt.Sprintf("link-%s-%s-%d-%s", clientID, userID, timestamp, randomPart),
		Expiration: timestamp + int64(LinkTokenTTL.Seconds()),
		RequestID:  "req_" + randomPart[:8],
	}
}

// ExchangePublicToken mints a fresh access token and item ID. The input
// token's content is ignored and the mint is not registered in the catalog,
// so the returned token resolves to no accounts. Each call mints anew.
func (s *tokenService) ExchangePublicToken(publicToken string) models.AccessTokenGrant {
	return models.AccessTokenGrant{
		AccessToken: "access-" + randomHex(),
		ItemID:      "item-" + randomHex()[:8],
		RequestID:   NewRequestID(),
	}
}

// NewRequestID returns a fresh opaque request identifier for response tracing.
func NewRequestID() string {
	return "req_" + randomHex()[:8]
}

func randomHex() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
