package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/c2h5oh/datasize"
	"github.com/gin-gonic/gin"
	"github.com/shizde/ruffman/internal/compression"
	"github.com/shizde/ruffman/internal/compression/algorithms/huffman"
	"github.com/shizde/ruffman/internal/config"
	"github.com/sirupsen/logrus"
)

// Handler carries the dependencies the HTTP endpoints need.
type Handler struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewHandler builds a Handler around the given configuration and logger.
func NewHandler(cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{cfg: cfg, log: log}
}

// CompressRequest represents the compression request payload
type CompressRequest struct {
	Algorithm string `form:"algorithm" binding:"required"`
	Level     *int   `form:"level,omitempty"`
}

// DecompressRequest represents the decompression request payload
type DecompressRequest struct {
	Algorithm string `form:"algorithm" binding:"required"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HandleCompress handles file compression requests
func (h *Handler) HandleCompress(c *gin.Context) {
	var req CompressRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}

	if !compression.IsValidAlgorithm(req.Algorithm) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid algorithm",
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Supported algorithms: %v", compression.GetSupportedAlgorithms()),
		})
		return
	}

	fileContent, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	options := compression.Options{
		Algorithm: req.Algorithm,
	}
	if req.Level != nil {
		options.Level = *req.Level
	}

	compressedData, stats, err := compression.Compress(fileContent, options)
	if err != nil {
		h.log.WithError(err).WithField("algorithm", req.Algorithm).Error("compression failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Compression failed",
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
		return
	}

	h.log.WithFields(logrus.Fields{
		"algorithm":      stats.Algorithm,
		"original_size":  stats.OriginalSize,
		"processed_size": stats.ProcessedSize,
	}).Info("file compressed")

	downloadName := fmt.Sprintf("%s_compressed.%s", getBaseFilename(filename), getExtensionForAlgorithm(req.Algorithm))
	writeStatsHeaders(c, stats)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", downloadName))
	c.Header("Content-Length", strconv.Itoa(len(compressedData)))
	c.Data(http.StatusOK, "application/octet-stream", compressedData)
}

// HandleDecompress handles file decompression requests
func (h *Handler) HandleDecompress(c *gin.Context) {
	var req DecompressRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}

	if !compression.IsValidAlgorithm(req.Algorithm) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid algorithm",
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Supported algorithms: %v", compression.GetSupportedAlgorithms()),
		})
		return
	}

	fileContent, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	decompressedData, stats, err := compression.Decompress(fileContent, compression.Options{
		Algorithm: req.Algorithm,
	})
	if err != nil {
		h.log.WithError(err).WithField("algorithm", req.Algorithm).Warn("decompression failed")
		status := http.StatusInternalServerError
		if errors.Is(err, huffman.ErrMalformedHeader) || errors.Is(err, huffman.ErrTruncatedStream) {
			// The upload is not a valid container, which is the client's
			// problem rather than ours.
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, ErrorResponse{
			Error:   "Decompression failed",
			Code:    status,
			Message: err.Error(),
		})
		return
	}

	h.log.WithFields(logrus.Fields{
		"algorithm":      stats.Algorithm,
		"original_size":  stats.OriginalSize,
		"processed_size": stats.ProcessedSize,
	}).Info("file decompressed")

	downloadName := fmt.Sprintf("%s_decompressed.bin", getBaseFilename(filename))
	writeStatsHeaders(c, stats)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", downloadName))
	c.Header("Content-Length", strconv.Itoa(len(decompressedData)))
	c.Data(http.StatusOK, "application/octet-stream", decompressedData)
}

// readUpload pulls the multipart file out of the request, enforcing the
// configured size limit. It writes the error response itself when ok is
// false.
func (h *Handler) readUpload(c *gin.Context) (content []byte, filename string, ok bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "File upload error",
			Code:    http.StatusBadRequest,
			Message: "No file provided or file upload failed",
		})
		return nil, "", false
	}
	defer file.Close()

	if header.Size > h.cfg.MaxFileSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "File too large",
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Maximum file size is %s", datasize.ByteSize(h.cfg.MaxFileSize).HumanReadable()),
		})
		return nil, "", false
	}

	content, err = io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "File read error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to read uploaded file",
		})
		return nil, "", false
	}
	return content, header.Filename, true
}

// HandleInfo provides information about supported algorithms
func (h *Handler) HandleInfo(c *gin.Context) {
	info := map[string]interface{}{
		"service": "ruffman compression service",
		"version": "1.0.0",
		"algorithms": map[string]interface{}{
			"supported": compression.GetSupportedAlgorithms(),
			"descriptions": map[string]string{
				"huffman": "static Huffman coding with a self-describing container",
				"flate":   "DEFLATE - LZ77 matching plus canonical Huffman coding",
				"gzip":    "gzip wrapper around DEFLATE with a CRC32 trailer",
				"zstd":    "Zstandard dictionary compression",
			},
		},
		"limits": map[string]interface{}{
			"max_file_size": datasize.ByteSize(h.cfg.MaxFileSize).HumanReadable(),
		},
		"endpoints": map[string]interface{}{
			"compress":   "POST /compress - Upload file for compression",
			"decompress": "POST /decompress - Upload file for decompression",
			"info":       "GET /info - Get service information",
			"health":     "GET /health - Health check",
		},
	}

	c.JSON(http.StatusOK, info)
}

// HandleHealth provides a simple health check endpoint
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ruffman",
	})
}

func writeStatsHeaders(c *gin.Context, stats *compression.Stats) {
	c.Header("X-Algorithm", stats.Algorithm)
	c.Header("X-Original-Size", strconv.Itoa(stats.OriginalSize))
	c.Header("X-Processed-Size", strconv.Itoa(stats.ProcessedSize))
	c.Header("X-Compression-Ratio", strconv.FormatFloat(stats.CompressionRatio, 'f', 2, 64))
}

// Helper functions
func getBaseFilename(filename string) string {
	if filename == "" {
		return "file"
	}

	// Remove extension
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[:i]
		}
	}
	return filename
}

func getExtensionForAlgorithm(algorithm string) string {
	extensions := map[string]string{
		"huffman": "ruff",
		"flate":   "flate",
		"gzip":    "gz",
		"zstd":    "zst",
	}

	if ext, exists := extensions[algorithm]; exists {
		return ext
	}
	return "compressed"
}
