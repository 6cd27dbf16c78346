package handler

import (
	"errors"
	"net/http"

	"github.com/Blackprojecttech/technoline-stocktake/internal/auth"
	"github.com/Blackprojecttech/technoline-stocktake/internal/stocktake"
	"github.com/Blackprojecttech/technoline-stocktake/internal/stocktake/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StocktakeHandler is the thin HTTP surface over the counting engine. It
// owns no business rules; it binds input, resolves the actor and maps
// engine errors to statuses.
type StocktakeHandler struct {
	uc     stocktake.UseCase
	logger *zap.Logger
}

func NewStocktakeHandler(uc stocktake.UseCase, log *zap.Logger) *StocktakeHandler {
	return &StocktakeHandler{uc: uc, logger: log}
}

func (h *StocktakeHandler) RegisterRoutes(group *gin.RouterGroup) {
	session := group.Group("/session")
	{
		session.GET("", h.GetSession)
		session.POST("/configure", h.Configure)
		session.POST("/start", h.Start)
		session.POST("/scan", h.Scan)
		session.PUT("/items/:id/quantity", h.SetQuantity)
		session.POST("/reset", h.Reset)
	}

	reports := group.Group("/reports")
	{
		reports.POST("", h.GenerateReport)
		reports.GET("", h.ListReports)
		reports.DELETE("/:id", h.DeleteReport)
	}
}

func (h *StocktakeHandler) Configure(c *gin.Context) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	var input dto.SessionSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.uc.Configure(c.Request.Context(), actor, &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StocktakeHandler) Start(c *gin.Context) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	var input dto.SessionSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.uc.Start(c.Request.Context(), actor, &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StocktakeHandler) GetSession(c *gin.Context) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	view, err := h.uc.Session(c.Request.Context(), actor)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StocktakeHandler) Scan(c *gin.Context) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	var input dto.ScanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.uc.Scan(c.Request.Context(), actor, input.Code)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *StocktakeHandler) SetQuantity(c *gin.Context) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	var input dto.SetQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.uc.SetQuantity(c.Request.Context(), actor, c.Param("id"), input.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *StocktakeHandler) Reset(c *gin.Context) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	if err := h.uc.Reset(c.Request.Context(), actor); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

func (h *StocktakeHandler) GenerateReport(c *gin.Context) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	report, err := h.uc.GenerateReport(c.Request.Context(), actor)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *StocktakeHandler) ListReports(c *gin.Context) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	reports, err := h.uc.ListReports(c.Request.Context(), actor)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *StocktakeHandler) DeleteReport(c *gin.Context) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	if err := h.uc.DeleteReport(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// fail maps engine errors to HTTP statuses. Everything except the snapshot
// source failure is an operator-facing condition, not a server fault.
func (h *StocktakeHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, stocktake.ErrSessionNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, stocktake.ErrQuantityExceedsActual),
		errors.Is(err, stocktake.ErrNegativeQuantity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, stocktake.ErrItemNotFound),
		errors.Is(err, stocktake.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, stocktake.ErrReportDeletionForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, stocktake.ErrSnapshotSourceUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		h.logger.Error("stocktake handler error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
