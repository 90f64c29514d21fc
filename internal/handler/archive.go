package handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"dapurstok/internal/apierror"
	"dapurstok/internal/infra"

	"github.com/gin-gonic/gin"
)

// ArchiveHandler serves archived documents (PO sheets, delivery notes) back
// to authenticated clients by their stored path.
type ArchiveHandler struct{ store *infra.DocumentStore }

func NewArchiveHandler(store *infra.DocumentStore) *ArchiveHandler {
	return &ArchiveHandler{store: store}
}

// Upload archives a multipart document (scanned PO, delivery note) and
// returns the path the owning record should store. The optional "date" form
// field partitions the archive; it defaults to today.
func (h *ArchiveHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("file wajib diisi"))
		return
	}
	date := c.PostForm("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("file tidak dapat dibaca"))
		return
	}
	defer f.Close()
	blob, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("file tidak dapat dibaca"))
		return
	}

	path, err := h.store.Archive(blob, date, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"path": path})
}

func (h *ArchiveHandler) Serve(c *gin.Context) {
	date := c.Param("date")
	filename := c.Param("filename")
	if strings.ContainsAny(filename, `/\`) || strings.Contains(date, "..") {
		c.JSON(http.StatusBadRequest, apierror.New("path tidak valid"))
		return
	}
	c.File(h.store.Resolve("/archive/" + date + "/" + filename))
}
