package catalog

import "sahl-bank-api/internal/models"

// Catalog is the process-wide reference data of the simulator: accounts,
// their banking numbers, and the access-token to item bindings. It is built
// once at startup and never mutated, so concurrent reads need no locking.
type Catalog struct {
	accounts       map[string]models.Account
	accountNumbers map[string]models.AccountNumber
	items          map[string]models.Item
}

// New builds a catalog from the given reference data. The maps are copied so
// later mutation of the inputs cannot leak into the catalog.
func New(
	accounts map[string]models.Account,
	accountNumbers map[string]models.AccountNumber,
	items map[string]models.Item,
) *Catalog {
	c := &Catalog{
		accounts:       make(map[string]models.Account, len(accounts)),
		accountNumbers: make(map[string]models.AccountNumber, len(accountNumbers)),
		items:          make(map[string]models.Item, len(items)),
	}

	for id, account := range accounts {
		c.accounts[id] = account
	}
	for id, number := range accountNumbers {
		c.accountNumbers[id] = number
	}
	for token, item := range items {
		c.items[token] = item
	}

	return c
}

// NewDefault builds the catalog with the built-in demo reference data.
func NewDefault() *Catalog {
	return New(seedAccounts(), seedAccountNumbers(), seedItems())
}

// AccountsForToken resolves an access token to the accounts owned by its
// item, in the item's stored order. Unknown tokens resolve to an empty slice,
// never an error: the simulator is permissive by design.
func (c *Catalog) AccountsForToken(accessToken string) []models.Account {
	item, ok := c.items[accessToken]
	if !ok {
		return []models.Account{}
	}

	accounts := make([]models.Account, 0, len(item.AccountIDs))
	for _, id := range item.AccountIDs {
		if account, ok := c.accounts[id]; ok {
			accounts = append(accounts, account)
		}
	}
	return accounts
}

// AccountNumbersForToken resolves an access token to the banking numbers of
// its item's accounts, skipping accounts that have none registered.
func (c *Catalog) AccountNumbersForToken(accessToken string) []models.AccountNumber {
	item, ok := c.items[accessToken]
	if !ok {
		return []models.AccountNumber{}
	}

	numbers := make([]models.AccountNumber, 0, len(item.AccountIDs))
	for _, id := range item.AccountIDs {
		if number, ok := c.accountNumbers[id]; ok {
			numbers = append(numbers, number)
		}
	}
	return numbers
}

// AccountIDsForToken returns the raw account IDs bound to the token's item.
func (c *Catalog) AccountIDsForToken(accessToken string) []string {
	item, ok := c.items[accessToken]
	if !ok {
		return []string{}
	}

	ids := make([]string, len(item.AccountIDs))
	copy(ids, item.AccountIDs)
	return ids
}
