package catalog

import "sahl-bank-api/internal/models"

// Demo reference data, Moroccan themed. Exactly one access token resolves to
// accounts; tokens minted by the exchange endpoint are deliberately never
// registered here.

func seedAccounts() map[string]models.Account {
	return map[string]models.Account{
		"acc_1": {
			AccountID: "acc_1",
			Balances: models.Balances{
				Available:       5000.75,
				Current:         5100.75,
				ISOCurrencyCode: "MAD",
			},
			Mask:         "1234",
			Name:         "Compte Courant Al Amal",
			OfficialName: "Compte Courant Premium Al Amal",
			Subtype:      "checking",
			Type:         "depository",
		},
		"acc_2": {
			AccountID: "acc_2",
			Balances: models.Balances{
				Available:       12500.00,
				Current:         12500.00,
				ISOCurrencyCode: "MAD",
			},
			Mask:         "5678",
			Name:         "Compte Épargne Al Baraka",
			OfficialName: "Compte Épargne Rendement Élevé Al Baraka",
			Subtype:      "savings",
			Type:         "depository",
		},
	}
}

func seedAccountNumbers() map[string]models.AccountNumber {
	return map[string]models.AccountNumber{
		"acc_1": {
			Account:     "007780000123456789012345",
			AccountID:   "acc_1",
			Routing:     "007780000",
			WireRouting: "BCMAMAMC",
		},
		"acc_2": {
			Account:     "013450000234567890123456",
			AccountID:   "acc_2",
			Routing:     "013450000",
			WireRouting: "BMCEMAMC",
		},
	}
}

func seedItems() map[string]models.Item {
	return map[string]models.Item{
		"access-token-1": {
			ItemID:     "item_1",
			AccountIDs: []string{"acc_1", "acc_2"},
		},
	}
}
