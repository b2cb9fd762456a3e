package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/carteiralabs/carteira/internal/db"
	apperrors "github.com/carteiralabs/carteira/internal/errors"
	"github.com/carteiralabs/carteira/internal/models"
)

// setupTestDB opens a private in-memory SQLite database and migrates the
// schema. Each test gets its own database, named after the test.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	if err := gdb.AutoMigrate(&models.Asset{}, &models.Transaction{}, &models.Dividend{}, &models.AgentAction{}); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	database := &db.DB{DB: gdb}
	t.Cleanup(func() { database.Close() })
	return database
}

func createTestAsset(t *testing.T, repo AssetRepository, ticker string) *models.Asset {
	t.Helper()
	asset := &models.Asset{Ticker: ticker, Name: ticker + " Test", AssetType: models.AssetTypeStock}
	if err := repo.Create(context.Background(), asset); err != nil {
		t.Fatalf("Failed to create asset %s: %v", ticker, err)
	}
	return asset
}

func TestAssetRepository_CreateAndGet(t *testing.T) {
	repo := NewAssetRepository(setupTestDB(t))
	ctx := context.Background()

	sector := "Energy"
	asset := &models.Asset{Ticker: "PETR4", Name: "Petrobras PN", AssetType: models.AssetTypeStock, Sector: &sector}
	if err := repo.Create(ctx, asset); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if asset.ID == "" {
		t.Fatal("expected an ID to be assigned")
	}

	got, err := repo.GetByTicker(ctx, "PETR4")
	if err != nil {
		t.Fatalf("GetByTicker failed: %v", err)
	}
	if got.Name != "Petrobras PN" || got.Sector == nil || *got.Sector != "Energy" {
		t.Errorf("unexpected asset: %+v", got)
	}

	byID, err := repo.GetByID(ctx, asset.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if byID.Ticker != "PETR4" {
		t.Errorf("Expected ticker PETR4, got %s", byID.Ticker)
	}
}

func TestAssetRepository_DuplicateTicker(t *testing.T) {
	repo := NewAssetRepository(setupTestDB(t))
	ctx := context.Background()

	createTestAsset(t, repo, "PETR4")

	err := repo.Create(ctx, &models.Asset{Ticker: "PETR4", Name: "Again", AssetType: models.AssetTypeStock})
	var duplicate *apperrors.ErrDuplicate
	if !errors.As(err, &duplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestAssetRepository_NotFound(t *testing.T) {
	repo := NewAssetRepository(setupTestDB(t))
	ctx := context.Background()

	var notFound *apperrors.ErrNotFound
	if _, err := repo.GetByTicker(ctx, "GHOST"); !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound from GetByTicker, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "missing-id"); !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound from GetByID, got %v", err)
	}
	if err := repo.Delete(ctx, "missing-id"); !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound from Delete, got %v", err)
	}
}

func TestAssetRepository_ListOrderedByTicker(t *testing.T) {
	repo := NewAssetRepository(setupTestDB(t))

	createTestAsset(t, repo, "VALE3")
	createTestAsset(t, repo, "HGLG11")
	createTestAsset(t, repo, "PETR4")

	assets, err := repo.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(assets) != 3 {
		t.Fatalf("Expected 3 assets, got %d", len(assets))
	}
	want := []string{"HGLG11", "PETR4", "VALE3"}
	for i, ticker := range want {
		if assets[i].Ticker != ticker {
			t.Errorf("Expected assets[%d] = %s, got %s", i, ticker, assets[i].Ticker)
		}
	}

	limited, err := repo.List(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("List with pagination failed: %v", err)
	}
	if len(limited) != 2 || limited[0].Ticker != "PETR4" {
		t.Errorf("unexpected page: %+v", limited)
	}
}

func TestAssetRepository_UpdateAndDelete(t *testing.T) {
	repo := NewAssetRepository(setupTestDB(t))
	ctx := context.Background()

	asset := createTestAsset(t, repo, "PETR4")

	asset.Name = "Petróleo Brasileiro S.A."
	if err := repo.Update(ctx, asset); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := repo.GetByID(ctx, asset.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Petróleo Brasileiro S.A." {
		t.Errorf("Expected updated name, got %s", got.Name)
	}

	if err := repo.Delete(ctx, asset.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	var notFound *apperrors.ErrNotFound
	if _, err := repo.GetByID(ctx, asset.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTransactionRepository_CreateAndListOrdered(t *testing.T) {
	database := setupTestDB(t)
	assetRepo := NewAssetRepository(database)
	txRepo := NewTransactionRepository(database)
	ctx := context.Background()

	asset := createTestAsset(t, assetRepo, "PETR4")

	// Inserted newest-first; listing must come back oldest-first.
	later := &models.Transaction{
		AssetID:         asset.ID,
		Quantity:        decimal.NewFromInt(50),
		Price:           decimal.RequireFromString("11.00"),
		TransactionDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	earlier := &models.Transaction{
		AssetID:         asset.ID,
		Quantity:        decimal.NewFromInt(100),
		Price:           decimal.RequireFromString("10.50"),
		TransactionDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := txRepo.Create(ctx, later); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := txRepo.Create(ctx, earlier); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	listed, err := txRepo.ListByAsset(ctx, asset.ID, 0, 0)
	if err != nil {
		t.Fatalf("ListByAsset failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(listed))
	}
	if !listed[0].Quantity.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected oldest transaction first, got quantity %s", listed[0].Quantity)
	}
	if !listed[1].Price.Equal(decimal.RequireFromString("11.00")) {
		t.Errorf("Expected newest transaction last, got price %s", listed[1].Price)
	}
}

func TestTransactionRepository_SignedQuantityRoundTrip(t *testing.T) {
	database := setupTestDB(t)
	assetRepo := NewAssetRepository(database)
	txRepo := NewTransactionRepository(database)
	ctx := context.Background()

	asset := createTestAsset(t, assetRepo, "VALE3")

	sell := &models.Transaction{
		AssetID:         asset.ID,
		Quantity:        decimal.RequireFromString("-40.5"),
		Price:           decimal.RequireFromString("61.20"),
		TransactionDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := txRepo.Create(ctx, sell); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := txRepo.GetByID(ctx, sell.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.Quantity.Equal(decimal.RequireFromString("-40.5")) {
		t.Errorf("Expected quantity -40.5, got %s", got.Quantity)
	}
	if got.IsBuy() {
		t.Error("negative quantity must not be a buy")
	}
}

func TestTransactionRepository_UpdateAndDelete(t *testing.T) {
	database := setupTestDB(t)
	assetRepo := NewAssetRepository(database)
	txRepo := NewTransactionRepository(database)
	ctx := context.Background()

	asset := createTestAsset(t, assetRepo, "PETR4")
	tx := &models.Transaction{
		AssetID:         asset.ID,
		Quantity:        decimal.NewFromInt(100),
		Price:           decimal.RequireFromString("10.50"),
		TransactionDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := txRepo.Create(ctx, tx); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tx.Price = decimal.RequireFromString("10.75")
	if err := txRepo.Update(ctx, tx); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := txRepo.GetByID(ctx, tx.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.Price.Equal(decimal.RequireFromString("10.75")) {
		t.Errorf("Expected updated price 10.75, got %s", got.Price)
	}

	if err := txRepo.Delete(ctx, tx.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	var notFound *apperrors.ErrNotFound
	if err := txRepo.Delete(ctx, tx.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDividendRepository_CreateAndList(t *testing.T) {
	database := setupTestDB(t)
	assetRepo := NewAssetRepository(database)
	divRepo := NewDividendRepository(database)
	ctx := context.Background()

	asset := createTestAsset(t, assetRepo, "PETR4")

	second := &models.Dividend{
		AssetID:        asset.ID,
		AmountPerShare: decimal.RequireFromString("0.75"),
		PaymentDate:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}
	first := &models.Dividend{
		AssetID:        asset.ID,
		AmountPerShare: decimal.RequireFromString("0.50"),
		PaymentDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	if err := divRepo.Create(ctx, second); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := divRepo.Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	listed, err := divRepo.ListByAsset(ctx, asset.ID, 0, 0)
	if err != nil {
		t.Fatalf("ListByAsset failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("Expected 2 dividends, got %d", len(listed))
	}
	if !listed[0].AmountPerShare.Equal(decimal.RequireFromString("0.50")) {
		t.Errorf("Expected earliest payment first, got %s", listed[0].AmountPerShare)
	}
}

func TestAgentActionRepository_CreateAndList(t *testing.T) {
	repo := NewAgentActionRepository(setupTestDB(t))
	ctx := context.Background()

	older := &models.AgentAction{
		AgentName:  "portfolio_analyzer",
		Action:     models.ActionAnalyzePortfolio,
		ParamsJSON: []byte(`{}`),
		ResultJSON: []byte(`[]`),
		CreatedAt:  time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	newer := &models.AgentAction{
		AgentName:  "data_manager",
		Action:     models.ActionRegisterPosition,
		ParamsJSON: []byte(`{"ticker":"PETR4"}`),
		ResultJSON: []byte(`{"status":"success"}`),
		CreatedAt:  time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, err := repo.List(ctx, "", 0, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 actions, got %d", len(all))
	}
	if all[0].Action != models.ActionRegisterPosition {
		t.Errorf("Expected newest action first, got %s", all[0].Action)
	}

	filtered, err := repo.List(ctx, "portfolio_analyzer", 0, 0)
	if err != nil {
		t.Fatalf("List with filter failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].AgentName != "portfolio_analyzer" {
		t.Errorf("unexpected filter result: %+v", filtered)
	}
}

func TestAgentActionRepository_RejectsInvalid(t *testing.T) {
	repo := NewAgentActionRepository(setupTestDB(t))

	err := repo.Create(context.Background(), &models.AgentAction{Action: models.ActionGetPrice})
	if err == nil {
		t.Fatal("expected validation error for missing agent name")
	}
}
