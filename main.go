package main

import (
	"fmt"
	"os"

	auction "auction-engine/internal/auctionService"
	"auction-engine/internal/config"
	"auction-engine/internal/lotlock"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/utils"
)

func main() {
	cfg, err := config.Load(os.Getenv("AUCTION_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ledger, cleanup, err := openLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open ledger: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	guard := lotlock.New()
	auctionSvc := auction.NewAuctionService(ledger, guard, auction.LogRecorder{}, cfg.LockTimeout)

	router := server.SetupRouter(auctionSvc)

	utils.Info("starting auction server", map[string]any{"addr": cfg.Addr, "ledger": cfg.Ledger})
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openLedger builds the configured LedgerStore and a cleanup func for it
func openLedger(cfg config.Config) (repository.LedgerStore, func(), error) {
	switch cfg.Ledger {
	case "bolt":
		ledger, err := repository.NewBoltLedger(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return ledger, func() { ledger.Close() }, nil
	default:
		return repository.NewMemoryLedger(), func() {}, nil
	}
}
