package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sales_tracker/internal/metrics"
	"sales_tracker/internal/report"
	"sales_tracker/internal/sales"
)

// salesHandler holds the sales service and implements HTTP handlers for the
// ledger and report endpoints.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
	staticDir    string
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger, staticDir string) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
		staticDir:    staticDir,
	}
}

// handleAddSale handles the POST /add_sale endpoint. The body is bound as a
// loose map so the validator can tell an absent field from an empty one.
func (h *salesHandler) handleAddSale(ctx *gin.Context) {
	var fields map[string]any
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	if _, err := h.salesService.AddSale(fields); err != nil {
		var vErr *sales.ValidationError
		if errors.As(err, &vErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"status": fmt.Sprintf("Error: '%s' cannot be empty.", vErr.Field)})
			return
		}
		h.logger.Error("failed to record sale", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record sale"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "Sale added successfully!"})
}

// handleGetSales handles the GET /get_sales endpoint.
func (h *salesHandler) handleGetSales(ctx *gin.Context) {
	records, err := h.salesService.ListSales()
	if err != nil {
		if errors.Is(err, sales.ErrNoData) {
			ctx.JSON(http.StatusOK, []sales.SaleRecord{})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sales"})
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// handleSalesSummary handles the GET /get_sales_summary endpoint.
func (h *salesHandler) handleSalesSummary(ctx *gin.Context) {
	summary, err := h.salesService.Summary()
	if err != nil {
		if errors.Is(err, sales.ErrNoData) {
			ctx.JSON(http.StatusNotFound, gin.H{"status": "No sales data available."})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"total_sales_per_product": totalsJSON(summary.PerProduct),
		"top_selling_items":       totalsJSON(summary.Top5),
	})
}

// totalsJSON shapes product totals into the wire envelope, amounts as
// numbers.
func totalsJSON(totals []sales.ProductTotal) []gin.H {
	rows := make([]gin.H, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, gin.H{
			sales.FieldProductName: t.Product,
			sales.FieldSalesAmount: t.Total.InexactFloat64(),
		})
	}
	return rows
}

// handlePlot handles the GET /plot endpoint: it renders the trend chart as
// a PNG under the static dir and returns its location. The file name is
// uniquified so concurrent renders cannot clobber each other.
func (h *salesHandler) handlePlot(ctx *gin.Context) {
	records, err := h.salesService.ListSales()
	if err != nil {
		h.respondLoadError(ctx, err)
		return
	}

	name := fmt.Sprintf("sales_trend_%s.png", uuid.NewString())
	path := filepath.Join(h.staticDir, name)
	f, err := os.Create(path)
	if err != nil {
		h.logger.Error("failed to create plot file", zap.String("path", path), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create plot file"})
		return
	}
	defer f.Close()

	if err := report.TrendChart(records, f, "png"); err != nil {
		h.respondChartError(ctx, "trend_png", err)
		return
	}

	metrics.ReportRenders.WithLabelValues("trend_png", "ok").Inc()
	ctx.JSON(http.StatusOK, gin.H{"plot_url": "static/" + name})
}

// handleDownloadCSV handles the GET /download_sales_csv endpoint with a
// byte-for-byte passthrough of the persisted ledger file.
func (h *salesHandler) handleDownloadCSV(ctx *gin.Context) {
	data, err := h.salesService.Export()
	if err != nil {
		h.respondLoadError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="sales_data.csv"`)
	ctx.Data(http.StatusOK, "text/csv", data)
}

// handleDownloadDataPDF handles the GET /download_sales_data_pdf endpoint.
func (h *salesHandler) handleDownloadDataPDF(ctx *gin.Context) {
	h.downloadPDF(ctx, "detail_pdf", "sales_data.pdf", report.DetailReport)
}

// handleDownloadSummaryPDF handles the GET /download_sales_summary_pdf
// endpoint.
func (h *salesHandler) handleDownloadSummaryPDF(ctx *gin.Context) {
	h.downloadPDF(ctx, "summary_pdf", "sales_summary.pdf", report.SummaryReport)
}

// handleDownloadPlotPDF handles the GET /download_sales_plot_pdf endpoint.
// Like the PNG render it is strict about dates.
func (h *salesHandler) handleDownloadPlotPDF(ctx *gin.Context) {
	records, err := h.salesService.ListSales()
	if err != nil {
		h.respondLoadError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := report.TrendChart(records, &buf, "pdf"); err != nil {
		h.respondChartError(ctx, "trend_pdf", err)
		return
	}

	metrics.ReportRenders.WithLabelValues("trend_pdf", "ok").Inc()
	ctx.Header("Content-Disposition", `attachment; filename="sales_plot.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *salesHandler) downloadPDF(ctx *gin.Context, kind, filename string, render func([]sales.SaleRecord, io.Writer) error) {
	records, err := h.salesService.ListSales()
	if err != nil {
		h.respondLoadError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := render(records, &buf); err != nil {
		metrics.ReportRenders.WithLabelValues(kind, "error").Inc()
		h.logger.Error("failed to render report", zap.String("kind", kind), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}

	metrics.ReportRenders.WithLabelValues(kind, "ok").Inc()
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *salesHandler) respondLoadError(ctx *gin.Context, err error) {
	if errors.Is(err, sales.ErrNoData) {
		ctx.JSON(http.StatusNotFound, gin.H{"status": "No sales data available."})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sales"})
}

func (h *salesHandler) respondChartError(ctx *gin.Context, kind string, err error) {
	metrics.ReportRenders.WithLabelValues(kind, "error").Inc()
	if errors.Is(err, report.ErrInvalidDate) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "There are invalid date entries in the data."})
		return
	}
	h.logger.Error("failed to render trend chart", zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render trend chart"})
}
