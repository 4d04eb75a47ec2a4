package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
	companyStore "github.com/nicholasDWinters/biztime-exercise/internal/company/store"
	"github.com/nicholasDWinters/biztime-exercise/internal/config"
	"github.com/nicholasDWinters/biztime-exercise/internal/database"
	biztimeHttp "github.com/nicholasDWinters/biztime-exercise/internal/http"
	companyHandler "github.com/nicholasDWinters/biztime-exercise/internal/http/company"
	importHandler "github.com/nicholasDWinters/biztime-exercise/internal/http/importcsv"
	industryHandler "github.com/nicholasDWinters/biztime-exercise/internal/http/industry"
	invoiceHandler "github.com/nicholasDWinters/biztime-exercise/internal/http/invoice"
	"github.com/nicholasDWinters/biztime-exercise/internal/industry"
	industryStore "github.com/nicholasDWinters/biztime-exercise/internal/industry/store"
	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
	invoiceStore "github.com/nicholasDWinters/biztime-exercise/internal/invoice/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		companyService  = company.NewService(companyStore.New(db))
		invoiceService  = invoice.NewService(invoiceStore.New(db), companyService)
		industryService = industry.NewService(industryStore.New(db), companyService)
	)

	var (
		companyH  = companyHandler.NewHandler(companyService, invoiceService)
		invoiceH  = invoiceHandler.NewHandler(invoiceService)
		industryH = industryHandler.NewHandler(industryService)
		importH   = importHandler.NewHandler(invoiceService)
	)

	router := biztimeHttp.New(companyH, invoiceH, industryH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
