package http

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robridge/scanner/internal/domain"
)

// ScanAnalyzer is the core pipeline contract consumed by the HTTP layer
type ScanAnalyzer interface {
	Analyze(ctx context.Context, input domain.ScanInput) *domain.ScanResult
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scans ScanAnalyzer
}

// NewHandler creates a new HTTP handler
func NewHandler(scans ScanAnalyzer) *Handler {
	return &Handler{scans: scans}
}

// deviceScanRequest is the scan payload sent by ESP32 scanner devices
type deviceScanRequest struct {
	DeviceID    string `json:"deviceId" binding:"required"`
	BarcodeData string `json:"barcodeData" binding:"required"`
	DeviceName  string `json:"deviceName"`
	ScanType    string `json:"scanType"`
	Timestamp   int64  `json:"timestamp"`
}

// scanRequest is the plain scan payload from the web console
type scanRequest struct {
	ScannedValue string `json:"scanned_value" binding:"required"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "robridge-scanner",
		"version": "2.0.0",
	})
}

// DeviceScan analyzes a scan submitted by an ESP32 device and returns the
// full wire-format result, including the display-capped short description
func (h *Handler) DeviceScan(c *gin.Context) {
	var req deviceScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deviceId and barcodeData are required"})
		return
	}

	scanID := uuid.NewString()
	log.Printf("[HTTP] scan %s: device %s sent %q (name=%s type=%s)",
		scanID, req.DeviceID, req.BarcodeData, req.DeviceName, req.ScanType)

	result := h.scans.Analyze(c.Request.Context(), domain.ScanInput{
		RawValue: req.BarcodeData,
		DeviceID: req.DeviceID,
	})

	log.Printf("[HTTP] scan %s: %s - %s", scanID, result.Title, result.Category)
	c.JSON(http.StatusOK, result)
}

// Scan analyzes a scanned value from the web console and returns the result
// as a single text block
func (h *Handler) Scan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scanned_value is required"})
		return
	}

	result := h.scans.Analyze(c.Request.Context(), domain.ScanInput{
		RawValue: req.ScannedValue,
	})

	block := fmt.Sprintf("Scanned Code: %s\nTitle: %s\nCategory: %s\nDescription: %s",
		result.Barcode, result.Title, result.Category, result.Description)

	c.JSON(http.StatusOK, gin.H{"result": block})
}

// DevicePing is the ESP32 heartbeat endpoint
func (h *Handler) DevicePing(c *gin.Context) {
	deviceID := c.Param("deviceId")
	log.Printf("[HTTP] ping from device %s", deviceID)

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"deviceId":  deviceID,
		"timestamp": "pong",
	})
}
