package catalog

import (
	"testing"

	"sahl-bank-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAccountsForToken_KnownToken(t *testing.T) {
	c := NewDefault()

	accounts := c.AccountsForToken("access-token-1")

	assert.Len(t, accounts, 2)
	assert.Equal(t, "acc_1", accounts[0].AccountID)
	assert.Equal(t, "acc_2", accounts[1].AccountID)
	assert.Equal(t, "MAD", accounts[0].Balances.ISOCurrencyCode)
	assert.Nil(t, accounts[0].Balances.Limit)
}

func TestAccountsForToken_UnknownTokenIsEmptyNotNil(t *testing.T) {
	c := NewDefault()

	accounts := c.AccountsForToken("access-unknown")

	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
}

func TestAccountsForToken_PreservesItemOrder(t *testing.T) {
	c := New(
		map[string]models.Account{
			"a": {AccountID: "a"},
			"b": {AccountID: "b"},
		},
		nil,
		map[string]models.Item{
			"token": {ItemID: "item_x", AccountIDs: []string{"b", "a"}},
		},
	)

	accounts := c.AccountsForToken("token")

	assert.Equal(t, "b", accounts[0].AccountID)
	assert.Equal(t, "a", accounts[1].AccountID)
}

func TestAccountNumbersForToken_SkipsAccountsWithoutNumbers(t *testing.T) {
	c := New(
		map[string]models.Account{
			"a": {AccountID: "a"},
			"b": {AccountID: "b"},
		},
		map[string]models.AccountNumber{
			"a": {AccountID: "a", Routing: "007780000"},
		},
		map[string]models.Item{
			"token": {ItemID: "item_x", AccountIDs: []string{"a", "b"}},
		},
	)

	numbers := c.AccountNumbersForToken("token")

	assert.Len(t, numbers, 1)
	assert.Equal(t, "a", numbers[0].AccountID)
}

func TestAccountNumbersForToken_UnknownTokenIsEmpty(t *testing.T) {
	c := NewDefault()
	assert.Empty(t, c.AccountNumbersForToken("access-unknown"))
}

func TestAccountIDsForToken_ReturnsCopy(t *testing.T) {
	c := NewDefault()

	ids := c.AccountIDsForToken("access-token-1")
	ids[0] = "mutated"

	assert.Equal(t, "acc_1", c.AccountIDsForToken("access-token-1")[0])
}
