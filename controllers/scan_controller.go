package controllers

import (
	"context"

	"mysterystays/dto"
	"mysterystays/models"
	"mysterystays/response"
	"mysterystays/services/logger"
	"mysterystays/validator"

	"github.com/gin-gonic/gin"
)

type ListingScanner interface {
	Scan(ctx context.Context, req dto.ScanRequest) ([]models.Listing, error)
}

type ScanController struct {
	Scanner ListingScanner
	Logger  logger.Logger
}

// NewScanController builds a ScanController. A nil log discards output.
func NewScanController(scanner ListingScanner, log logger.Logger) ScanController {
	if log == nil {
		log = logger.Nop{}
	}
	return ScanController{Scanner: scanner, Logger: log}
}

// ScanAirbnb godoc
// @Summary      Scan a city's Airbnb results for mystery stay candidates
// @Tags         scan
// @Accept       json
// @Produce      json
// @Param        scan  body      dto.ScanRequest  true  "Scan"
// @Success      200   {object}  dto.ScanResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /scan_airbnb [post]
func (s ScanController) ScanAirbnb(c *gin.Context) {
	var req dto.ScanRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "invalid JSON body: "+err.Error())
			return
		}
	}
	req = req.WithDefaults()
	if err := validator.ValidateScan(&req); err != nil {
		response.FromError(c, err)
		return
	}

	listings, err := s.Scanner.Scan(c.Request.Context(), req)
	if err != nil {
		s.Logger.Error("scan_airbnb for %s failed: %v", req.City, err)
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"listings": listings})
}
