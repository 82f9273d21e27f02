package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

const upstreamFailureMessage = "Failed to fetch exchange rates"

// currencyHandler handles HTTP requests related to currencies and conversion.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	historyService  portssvc.HistorySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade, hs portssvc.HistorySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs, historyService: hs}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, jwtSecret string, cs portssvc.CurrencySvcFacade, hs portssvc.HistorySvcFacade) {
	h := newCurrencyHandler(cs, hs)

	currencies := rg.Group("/currency", middleware.OptionalAuthMiddleware(jwtSecret))
	{
		currencies.GET("/list", h.listCurrencies)
		currencies.GET("/rates", h.getLatestRates)
		currencies.GET("/historical", h.getHistoricalRates)
		currencies.GET("/timeseries", h.getTimeSeries)
		currencies.GET("/quota", h.getQuota)
		currencies.POST("/convert", h.convert)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns every currency the rate provider supports, keyed by ISO code.
// @Tags currency
// @Produce json
// @Success 200 {object} domain.CurrencyInfoTable
// @Failure 500 {object} ErrorResponse
// @Router /currency/list [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	table, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, err, upstreamFailureMessage)
		return
	}
	c.JSON(http.StatusOK, table)
}

// getLatestRates godoc
// @Summary Get latest exchange rates
// @Tags currency
// @Produce json
// @Param base query string false "Base currency code (default: USD)" example(USD)
// @Success 200 {object} dto.RatesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /currency/rates [get]
func (h *currencyHandler) getLatestRates(c *gin.Context) {
	var q dto.RatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	snap, err := h.currencyService.LatestRates(c.Request.Context(), q.Base)
	if err != nil {
		respondError(c, err, upstreamFailureMessage)
		return
	}
	c.JSON(http.StatusOK, dto.ToRatesResponse(snap))
}

// getHistoricalRates godoc
// @Summary Get historical exchange rates for a date
// @Tags currency
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD format" example(2025-12-07)
// @Param base query string false "Base currency code (default: USD)"
// @Success 200 {object} dto.RatesResponse
// @Failure 400 {object} ErrorResponse "Invalid or future date"
// @Failure 500 {object} ErrorResponse
// @Router /currency/historical [get]
func (h *currencyHandler) getHistoricalRates(c *gin.Context) {
	var q dto.HistoricalRatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	snap, err := h.currencyService.HistoricalRates(c.Request.Context(), q.Date, q.Base)
	if err != nil {
		respondError(c, err, upstreamFailureMessage)
		return
	}
	c.JSON(http.StatusOK, dto.ToRatesResponse(snap))
}

// getTimeSeries godoc
// @Summary Get sampled rates between two dates
// @Description Samples at most about ten dates across a window of up to 30 days. Dates the provider fails on are omitted.
// @Tags currency
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param base query string false "Base currency code (default: USD)"
// @Param currencies query string false "Comma separated currency codes to keep"
// @Success 200 {object} domain.TimeSeries
// @Failure 400 {object} ErrorResponse
// @Router /currency/timeseries [get]
func (h *currencyHandler) getTimeSeries(c *gin.Context) {
	var q dto.TimeSeriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	series, err := h.currencyService.TimeSeries(c.Request.Context(), q.StartDate, q.EndDate, q.Base, splitCodes(q.Currencies))
	if err != nil {
		respondError(c, err, upstreamFailureMessage)
		return
	}
	c.JSON(http.StatusOK, series)
}

// getQuota godoc
// @Summary Get the provider quota last observed
// @Tags currency
// @Produce json
// @Success 200 {object} domain.QuotaSnapshot
// @Success 204 "No quota observed yet"
// @Router /currency/quota [get]
func (h *currencyHandler) getQuota(c *gin.Context) {
	snap, ok := h.currencyService.CurrentQuota()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Authentication is optional. Conversions by signed-in users and identified guests are saved to history.
// @Tags currency
// @Accept json
// @Produce json
// @Param conversion body dto.ConvertRequest true "Conversion request"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse "Invalid request or unsupported currency"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currency/convert [post]
func (h *currencyHandler) convert(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.currencyService.Convert(ctx, req.FromCurrency, req.ToCurrency, *req.Amount, req.Date)
	if err != nil {
		respondError(c, err, "Conversion failed")
		return
	}

	identity := middleware.GetIdentity(c)
	if identity.IsAnonymous() && req.GuestID != "" {
		identity = domain.Guest(req.GuestID)
	}
	if err := h.historyService.RecordConversion(ctx, identity, result); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to record conversion history",
			slog.String("identity", identity.String()), slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}

// splitCodes parses a comma separated currency list, dropping blanks.
func splitCodes(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if code := strings.TrimSpace(p); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
