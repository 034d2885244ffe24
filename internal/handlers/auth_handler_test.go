package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sahl-bank-api/internal/catalog"
	"sahl-bank-api/internal/dto"
	"sahl-bank-api/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	handler *AuthHandler
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	clock := func() time.Time { return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC) }

	sessionService := services.NewSessionService(
		catalog.NewDefault(),
		services.NewTransactionGeneratorWithRand(rand.New(rand.NewSource(1)), clock),
		services.NewStatementGeneratorWithRand("https://api.sahlfinancial.com", rand.New(rand.NewSource(1)), clock),
	)
	s.handler = NewAuthHandler(sessionService)
}

func (s *AuthHandlerTestSuite) postJSON(body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodPost, "/auth/get", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, s.echo.NewContext(req, rec)
}

func (s *AuthHandlerTestSuite) TestGetAuth_KnownToken() {
	rec, c := s.postJSON(`{"access_token":"access-token-1"}`)

	s.NoError(s.handler.GetAuth(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AuthGetResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Accounts, 2)
	s.Len(resp.Numbers.ACH, 2)
	s.Equal("acc_1", resp.Numbers.ACH[0].AccountID)
	s.NotEmpty(resp.Numbers.ACH[0].Account)
	s.NotEmpty(resp.Numbers.ACH[0].Routing)
}

func (s *AuthHandlerTestSuite) TestGetAuth_UnknownTokenIsEmpty200() {
	rec, c := s.postJSON(`{"access_token":"access-ffffffffffffffffffffffffffffffff"}`)

	s.NoError(s.handler.GetAuth(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AuthGetResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Empty(resp.Accounts)
	s.Empty(resp.Numbers.ACH)
}

func (s *AuthHandlerTestSuite) TestGetAuth_MissingAccessToken() {
	rec, c := s.postJSON(`{}`)

	s.NoError(s.handler.GetAuth(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"Missing access_token"}`, rec.Body.String())
}
