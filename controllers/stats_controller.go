package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// Summary returns the dashboard counters. A database that has not been
// bootstrapped yet answers 200 with an all-zero body so the dashboard
// renders instead of erroring.
func (sc *StatsController) Summary(c *gin.Context) {
	stats, err := sc.Stats.Summary()
	if err != nil {
		if utils.IsNoSuchTable(err) {
			c.JSON(http.StatusOK, gin.H{
				"totalRooms":        0,
				"availableRooms":    0,
				"totalBookings":     0,
				"confirmedBookings": 0,
				"pendingBookings":   0,
				"totalGuests":       0,
				"totalHotels":       0,
			})
			return
		}
		log.Printf("stats query failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}
