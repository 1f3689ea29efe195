package handlers

import (
	"net/http"
	"strconv"

	"restaurant-order-api/policy"
	"restaurant-order-api/repository"

	"github.com/gin-gonic/gin"
)

// pageFromQuery reads skip/limit query params with the documented defaults.
func pageFromQuery(c *gin.Context) repository.Page {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		skip = repository.DefaultSkip
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		limit = repository.DefaultLimit
	}
	return repository.Page{Skip: skip, Limit: limit}.Normalize()
}

// parseID reads a numeric path parameter, responding 400 on garbage.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// deny writes a policy denial as-is.
func deny(c *gin.Context, d policy.Decision) {
	c.JSON(d.Status, gin.H{"error": d.Reason})
}
