package services

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"sahl-bank-api/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// DefaultTransactionCount is the number of transactions generated per
	// account on each query.
	DefaultTransactionCount = 20

	maxTransactionAgeDays = 30
	incomeProbability     = 0.20
	minAmount             = 0.05
	maxAmount             = 5.00
)

type transactionGenerator struct {
	categories [][]string
	merchants  []string
	rng        *rand.Rand
	now        func() time.Time
}

// NewTransactionGenerator creates a transaction generator backed by an
// unseeded time-based random source. Output varies call to call by design.
func NewTransactionGenerator() TransactionGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return NewTransactionGeneratorWithRand(rand.New(source), time.Now)
}

// NewTransactionGeneratorWithRand creates a generator with an injected random
// source and clock so tests can make structural assertions deterministic.
func NewTransactionGeneratorWithRand(rng *rand.Rand, now func() time.Time) TransactionGeneratorInterface {
	return &transactionGenerator{
		categories: transactionCategories(),
		merchants:  merchantNames(),
		rng:        rng,
		now:        now,
	}
}

// transactionCategories returns the [primary, detailed] category vocabulary.
func transactionCategories() [][]string {
	return [][]string{
		{"Food and Drink", "Restaurants"},
		{"Food and Drink", "Cafés"},
		{"Shops", "Souk"},
		{"Shops", "Épicerie"},
		{"Transfer", "Dépôt"},
		{"Transfer", "Retrait"},
		{"Service", "Abonnement"},
		{"Travel", "Royal Air Maroc"},
		{"Travel", "Riads"},
		{"Payment", "Carte de Crédit"},
		{"Family", "Aïd al-Fitr"},
		{"Family", "Aïd al-Adha"},
	}
}

func merchantNames() []string {
	return []string{
		"Marjane", "Carrefour Market", "Aswak Assalam", "Café Maure",
		"Hammam Traditionnel", "Patisserie Marocaine", "Pharmacie Atlas",
		"Royal Air Maroc", "Riad Al Andalous", "Maroc Telecom",
		"INWI", "ONEE", "LYDEC", "Souk El Had",
		"Artisanat Maroc", "Fès Medina Shop",
	}
}

// Generate produces count fresh transactions for the account, dated within
// the last 30 days and sorted by date descending. Nothing is persisted;
// repeated calls for the same account yield different sets.
func (g *transactionGenerator) Generate(accountID string, count int) []models.Transaction {
	today := g.now()
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		daysAgo := g.rng.Intn(maxTransactionAgeDays)
		date := today.AddDate(0, 0, -daysAgo)

		isIncome := g.rng.Float64() < incomeProbability
		magnitude := minAmount + g.rng.Float64()*(maxAmount-minAmount)
		amount := decimal.NewFromFloat(magnitude).Round(2).InexactFloat64()
		if !isIncome {
			amount = -amount
		}

		category := g.categories[g.rng.Intn(len(g.categories))]
		merchant := g.merchants[g.rng.Intn(len(g.merchants))]

		transactions = append(transactions, models.Transaction{
			TransactionID: fmt.Sprintf("tx_%s_%d", accountID, i),
			AccountID:     accountID,
			Amount:        amount,
			Date:          date.Format(time.DateOnly),
			Datetime:      date.UTC().Format(time.RFC3339),
			Name:          merchant,
			MerchantName:  merchant,
			Pending:       false,
			Category:      category,
		})
	}

	// ISO dates compare lexicographically the same as chronologically.
	// Stable keeps generation order on ties.
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})

	return transactions
}
