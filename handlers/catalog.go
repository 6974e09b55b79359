package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"omm/services/booking"
	"omm/services/catalog"
	"omm/utils"
)

// CatalogHandler serves filtered, sorted, optionally grouped views over the
// part catalogue. When a bookingId is supplied, parts already on that
// booking come back flagged so the client can disable re-adding them.
type CatalogHandler struct {
	Svc      catalog.CatalogService
	Bookings booking.BookingService
}

func NewCatalogHandler(svc catalog.CatalogService, bookings booking.BookingService) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Bookings: bookings}
}

// ListParts renders one view of the catalogue.
func (h *CatalogHandler) ListParts(c *gin.Context) {
	cfg := viewConfigFromQuery(c)
	vehicleID := c.Query("vehicleId")
	ctx := c.Request.Context()

	if cfg.Grouped {
		groups, err := h.Svc.GroupedParts(ctx, vehicleID, cfg)
		if err != nil {
			utils.JSONError(c, http.StatusBadGateway, "failed to load catalog", err.Error())
			return
		}
		if bookingID := c.Query("bookingId"); bookingID != "" {
			if b, err := h.Bookings.Working(ctx, bookingID); err == nil {
				for i := range groups {
					groups[i].Parts = catalog.MarkAdded(groups[i].Parts, b)
				}
			}
		}
		c.JSON(http.StatusOK, gin.H{"groups": groups})
		return
	}

	parts, err := h.Svc.Parts(ctx, vehicleID, cfg)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load catalog", err.Error())
		return
	}
	if bookingID := c.Query("bookingId"); bookingID != "" {
		if b, err := h.Bookings.Working(ctx, bookingID); err == nil {
			parts = catalog.MarkAdded(parts, b)
		}
	}
	c.JSON(http.StatusOK, gin.H{"parts": parts})
}

func viewConfigFromQuery(c *gin.Context) catalog.ViewConfig {
	grouped, _ := strconv.ParseBool(c.DefaultQuery("grouped", "false"))
	return catalog.ViewConfig{
		Search:   c.Query("search"),
		Tier:     c.Query("tier"),
		Category: c.Query("category"),
		Group:    c.Query("group"),
		Stock:    catalog.StockFilter(c.DefaultQuery("stock", string(catalog.StockAll))),
		SortBy:   catalog.SortKey(c.DefaultQuery("sortBy", string(catalog.SortByName))),
		Dir:      catalog.SortDir(c.DefaultQuery("dir", string(catalog.Asc))),
		Grouped:  grouped,
	}
}
