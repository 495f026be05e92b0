// Command snapdoc-server exposes the screenshot-to-document pipeline
// over HTTP: upload a batch of screenshots, receive a download link for
// the generated Word document.
//
// Environment (a .env file is honored):
//
//	PORT            listen port (default 8080)
//	OUTPUT_DIR      where generated documents are stored (default ./outputs)
//	SNAPDOC_CONFIG  optional path to a YAML config file of pipeline thresholds
//
// Requires an OCR-enabled build: go build -tags ocr
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/tsawler/snapdoc"
	"github.com/tsawler/snapdoc/docx"
	"github.com/tsawler/snapdoc/format"
	"github.com/tsawler/snapdoc/ocr"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type server struct {
	processor *snapdoc.Processor
	writer    *docx.Writer
	outputDir string
	log       *slog.Logger
}

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := snapdoc.DefaultProcessorConfig()
	if path := os.Getenv("SNAPDOC_CONFIG"); path != "" {
		loaded, err := snapdoc.LoadConfig(path)
		if err != nil {
			log.Error("failed to load config", "path", path, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	engine, err := ocr.NewTesseractEngine(cfg.Language, cfg.PageSegMode)
	if err != nil {
		log.Error("failed to create OCR engine", "error", err)
		os.Exit(1)
	}

	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "outputs"
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.Error("failed to create output directory", "dir", outputDir, "error", err)
		os.Exit(1)
	}

	s := &server{
		processor: snapdoc.New(engine, snapdoc.WithConfig(cfg)),
		writer:    docx.NewWriter(),
		outputDir: outputDir,
		log:       log,
	}

	r := gin.Default()
	r.GET("/", s.health)
	r.POST("/process-screenshots", s.processScreenshots)
	r.GET("/download/:id", s.download)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func (s *server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "snapdoc API is running"})
}

// imageError is the per-image failure detail in a batch response
type imageError struct {
	Index    int    `json:"index"`
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// processScreenshots accepts a multipart batch of screenshots, converts
// them into one Word document, and returns a summary with a download
// URL. A failure on one image is reported but does not block the rest.
func (s *server) processScreenshots(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})
		return
	}

	images := make([][]byte, 0, len(files))
	names := make([]string, 0, len(files))
	for _, fh := range files {
		data, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to read %s", fh.Filename)})
			return
		}
		if !format.IsSupported(data) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format: %s", fh.Filename)})
			return
		}
		images = append(images, data)
		names = append(names, fh.Filename)
	}

	results := s.processor.ProcessBatch(c.Request.Context(), images)

	var failures []imageError
	for i, r := range results {
		if !r.OK() {
			s.log.Warn("image failed", "filename", names[i], "error", r.Err)
			failures = append(failures, imageError{Index: i, Filename: names[i], Error: r.Err.Error()})
		}
	}

	if len(failures) == len(results) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "no image could be processed",
			"errors": failures,
		})
		return
	}

	doc := snapdoc.Combine(results)
	fileID := uuid.NewString()
	outPath := filepath.Join(s.outputDir, fileID+".docx")

	out, err := os.Create(outPath)
	if err != nil {
		s.log.Error("failed to create output file", "path", outPath, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write document"})
		return
	}
	defer out.Close()

	if err := s.writer.WriteTo(doc, out); err != nil {
		s.log.Error("failed to write document", "path", outPath, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write document"})
		return
	}

	s.log.Info("generated document", "file_id", fileID, "blocks", doc.BlockCount(),
		"processed", len(results)-len(failures), "failed", len(failures))

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"file_id":         fileID,
		"processed_count": len(results) - len(failures),
		"failed_count":    len(failures),
		"errors":          failures,
		"download_url":    "/download/" + fileID,
	})
}

// download serves a previously generated document by its batch ID
func (s *server) download(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file ID format"})
		return
	}

	path := filepath.Join(s.outputDir, id+".docx")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.Header("Content-Type", docxContentType)
	c.FileAttachment(path, "extracted_content_"+id+".docx")
}

// readUpload reads one multipart file into memory
func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
