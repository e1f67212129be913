package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sales_tracker/internal/metrics"
	"sales_tracker/internal/sales"
)

// Config carries the transport-level settings for route registration.
type Config struct {
	// DataFile is the path of the flat CSV ledger file.
	DataFile string
	// StaticDir is where rendered chart artifacts are written and served from.
	StaticDir string
}

// InitRoutes registers all ledger and report endpoints on the given Gin
// engine. It initializes the storage, service, and handler, then binds each
// HTTP method and path to the appropriate handler function.
func InitRoutes(e *gin.Engine, cfg Config, logger *zap.Logger) error {
	storage := sales.NewCSVStorage(cfg.DataFile)
	if err := storage.Initialize(); err != nil {
		return fmt.Errorf("initialize ledger store: %w", err)
	}
	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		return fmt.Errorf("create static dir: %w", err)
	}

	salesService := sales.NewService(storage, logger)
	salesHandler := NewSalesHandler(salesService, logger, cfg.StaticDir)

	e.POST("/add_sale", salesHandler.handleAddSale)
	e.GET("/get_sales", salesHandler.handleGetSales)
	e.GET("/get_sales_summary", salesHandler.handleSalesSummary)
	e.GET("/plot", salesHandler.handlePlot)
	e.GET("/download_sales_csv", salesHandler.handleDownloadCSV)
	e.GET("/download_sales_data_pdf", salesHandler.handleDownloadDataPDF)
	e.GET("/download_sales_summary_pdf", salesHandler.handleDownloadSummaryPDF)
	e.GET("/download_sales_plot_pdf", salesHandler.handleDownloadPlotPDF)

	e.GET("/metrics", gin.WrapH(metrics.Handler()))
	e.Static("/static", cfg.StaticDir)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	return nil
}
