package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xiaocenxiaocen/huffmantree/internal/repo"
	"github.com/xiaocenxiaocen/huffmantree/internal/service"
	"github.com/xiaocenxiaocen/huffmantree/pkg/huffman"
)

const (
	HeaderBits    = "X-Huffman-Bits"
	HeaderSymbols = "X-Huffman-Symbols"
)

type BlobHandler struct {
	svc *service.CompressionService
}

func NewBlobHandler(s *service.CompressionService) *BlobHandler {
	return &BlobHandler{svc: s}
}

// readBody는 MaxBytes 를 넘는 순간 읽기를 멈춤 (전체를 메모리에 올리지 않음)
func (h *BlobHandler) readBody(c *gin.Context) ([]byte, error) {
	if max := h.svc.MaxBytes(); max > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
	}
	data, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: body over %d bytes", service.ErrPayloadTooLarge, tooLarge.Limit)
		}
		return nil, err
	}
	return data, nil
}

func writeBodyError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrPayloadTooLarge) {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *BlobHandler) Create(c *gin.Context) {
	data, err := h.readBody(c)
	if err != nil {
		writeBodyError(c, err)
		return
	}
	b, err := h.svc.Compress(c.Request.Context(), data)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BlobHandler) GetByID(c *gin.Context) {
	b, err := h.svc.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BlobHandler) List(c *gin.Context) {
	blobs, err := h.svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, blobs)
}

func (h *BlobHandler) Raw(c *gin.Context) {
	out, err := h.svc.Decompress(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func (h *BlobHandler) Packed(c *gin.Context) {
	b, err := h.svc.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header(HeaderBits, strconv.FormatUint(b.Bits, 10))
	c.Header(HeaderSymbols, strconv.Itoa(b.Symbols))
	c.Data(http.StatusOK, "application/octet-stream", b.Packed)
}

// Decode는 body(packed)를 ?bits=&symbols= 로 해당 blob 트리에 통과시킴
func (h *BlobHandler) Decode(c *gin.Context) {
	bits, err := strconv.ParseUint(c.Query("bits"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bits: " + err.Error()})
		return
	}
	symbols, err := strconv.Atoi(c.Query("symbols"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbols: " + err.Error()})
		return
	}
	packed, err := h.readBody(c)
	if err != nil {
		writeBodyError(c, err)
		return
	}
	out, err := h.svc.DecodeWith(c.Request.Context(), c.Param("id"), huffman.Bitstream{Packed: packed, Bits: bits}, symbols)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func (h *BlobHandler) Codes(c *gin.Context) {
	codes, err := h.svc.Codes(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, codes)
}

func (h *BlobHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BlobHandler) Stats(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit: must be a non-negative integer"})
		return
	}
	rows, err := h.svc.RecentStats(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "blob not found"})
	case errors.Is(err, service.ErrPayloadTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, huffman.ErrTruncated),
		errors.Is(err, huffman.ErrShortBuffer),
		errors.Is(err, huffman.ErrNegativeCount):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, huffman.ErrReleased):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
