package handlers

import (
	"net/http"

	"restaurant-order-api/qr"

	"github.com/gin-gonic/gin"
)

type QRCodeController struct {
	FrontendURL string
}

func NewQRCodeController(frontendURL string) *QRCodeController {
	return &QRCodeController{FrontendURL: frontendURL}
}

type QRCodeRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
	TableNumber  int  `json:"table_number" binding:"required,min=1"`
}

// Create renders the deep link for a restaurant table as a scannable
// PNG data URI.
func (ctl *QRCodeController) Create(c *gin.Context) {
	var req QRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link := qr.TableLink(ctl.FrontendURL, req.RestaurantID, req.TableNumber)
	dataURI, err := qr.DataURI(link)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"link":    link,
		"qr_code": dataURI,
	})
}
