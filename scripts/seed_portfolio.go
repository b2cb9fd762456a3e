package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carteiralabs/carteira/internal/db"
	"github.com/carteiralabs/carteira/internal/models"
	"github.com/carteiralabs/carteira/internal/repositories"
)

// Seeds a small sample portfolio for local development. Idempotent: assets
// that already exist are skipped.
func main() {
	dryRun := flag.Bool("dry-run", false, "Print what would be seeded without writing")
	flag.Parse()

	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	assetRepo := repositories.NewAssetRepository(database)
	txRepo := repositories.NewTransactionRepository(database)
	divRepo := repositories.NewDividendRepository(database)
	ctx := context.Background()

	energy := "Energy"
	mining := "Mining"
	logistics := "Logistics"

	seeds := []struct {
		asset        models.Asset
		transactions []models.Transaction
		dividends    []models.Dividend
	}{
		{
			asset: models.Asset{Ticker: "PETR4", Name: "Petrobras PN", AssetType: models.AssetTypeStock, Sector: &energy},
			transactions: []models.Transaction{
				{Quantity: dec("100"), Price: dec("10.50"), TransactionDate: date(2025, 1, 15)},
				{Quantity: dec("50"), Price: dec("11.00"), TransactionDate: date(2025, 3, 10)},
			},
			dividends: []models.Dividend{
				{AmountPerShare: dec("0.50"), PaymentDate: date(2025, 4, 15)},
			},
		},
		{
			asset: models.Asset{Ticker: "VALE3", Name: "Vale ON", AssetType: models.AssetTypeStock, Sector: &mining},
			transactions: []models.Transaction{
				{Quantity: dec("40"), Price: dec("58.30"), TransactionDate: date(2025, 2, 5)},
			},
			dividends: []models.Dividend{
				{AmountPerShare: dec("2.09"), PaymentDate: date(2025, 3, 14)},
			},
		},
		{
			asset: models.Asset{Ticker: "HGLG11", Name: "CSHG Logística FII", AssetType: models.AssetTypeREIT, Sector: &logistics},
			transactions: []models.Transaction{
				{Quantity: dec("20"), Price: dec("160.00"), TransactionDate: date(2025, 1, 20)},
			},
			dividends: []models.Dividend{
				{AmountPerShare: dec("1.10"), PaymentDate: date(2025, 2, 10)},
				{AmountPerShare: dec("1.10"), PaymentDate: date(2025, 3, 10)},
			},
		},
	}

	for _, seed := range seeds {
		if *dryRun {
			fmt.Printf("Would seed %s with %d transactions and %d dividends\n",
				seed.asset.Ticker, len(seed.transactions), len(seed.dividends))
			continue
		}

		asset := seed.asset
		if existing, err := assetRepo.GetByTicker(ctx, asset.Ticker); err == nil {
			fmt.Printf("Skipping %s: already exists (%s)\n", asset.Ticker, existing.ID)
			continue
		}
		if err := assetRepo.Create(ctx, &asset); err != nil {
			log.Fatalf("Failed to create asset %s: %v", asset.Ticker, err)
		}

		for _, tx := range seed.transactions {
			tx.AssetID = asset.ID
			if err := txRepo.Create(ctx, &tx); err != nil {
				log.Fatalf("Failed to create transaction for %s: %v", asset.Ticker, err)
			}
		}
		for _, dividend := range seed.dividends {
			dividend.AssetID = asset.ID
			if err := divRepo.Create(ctx, &dividend); err != nil {
				log.Fatalf("Failed to create dividend for %s: %v", asset.Ticker, err)
			}
		}
		fmt.Printf("Seeded %s\n", asset.Ticker)
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
