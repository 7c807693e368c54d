// Package media provides image processing for gallery and project uploads
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ImageProcessor handles base64 image uploads and WebP thumbnail generation
type ImageProcessor struct {
	basePath    string
	thumbWidth  int
	webpQuality int
}

// NewImageProcessor creates a new ImageProcessor rooted at basePath
func NewImageProcessor(basePath string, thumbWidth, webpQuality int) *ImageProcessor {
	return &ImageProcessor{
		basePath:    basePath,
		thumbWidth:  thumbWidth,
		webpQuality: webpQuality,
	}
}

var binaryPattern = regexp.MustCompile(`^data:image/\w+;base64,`)

// ProcessUpload decodes a base64 image, stores the original under the given
// subdirectory, and writes a resized WebP thumbnail next to it. Returns the
// relative URL paths for the original and the thumbnail.
func (p *ImageProcessor) ProcessUpload(data, name, subdir string) (string, string, error) {
	if data == "" {
		return "", "", fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", "", fmt.Errorf("unsupported image format")
	}

	timestamp := time.Now().UnixMilli()
	filename := fmt.Sprintf("%s-%d.%s", name, timestamp, ext)

	targetDir := filepath.Join(p.basePath, subdir)
	thumbsDir := filepath.Join(p.basePath, subdir, "thumbs")
	if err := os.MkdirAll(thumbsDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create media directory: %w", err)
	}

	originalPath, err := writeBinaryImage(data, filename, targetDir)
	if err != nil {
		return "", "", err
	}

	thumbPath, err := p.writeThumbnail(originalPath, fmt.Sprintf("%s-%d", name, timestamp), thumbsDir)
	if err != nil {
		os.Remove(originalPath)
		return "", "", err
	}

	relOriginal := "/media/" + strings.ReplaceAll(filepath.Join(subdir, filename), "\\", "/")
	relThumb := "/media/" + strings.ReplaceAll(filepath.Join(subdir, "thumbs", filepath.Base(thumbPath)), "\\", "/")
	return relOriginal, relThumb, nil
}

// writeThumbnail resizes the stored original and saves it as WebP
func (p *ImageProcessor) writeThumbnail(originalPath, basename, thumbsDir string) (string, error) {
	originalFile, err := os.Open(originalPath)
	if err != nil {
		return "", fmt.Errorf("failed to open original file: %w", err)
	}
	defer originalFile.Close()

	img, err := imaging.Decode(originalFile)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	resized := imaging.Resize(img, p.thumbWidth, 0, imaging.Lanczos)

	thumbPath := filepath.Join(thumbsDir, fmt.Sprintf("%s_%dpx.webp", basename, p.thumbWidth))
	if err := webp.Save(thumbPath, resized, &webp.Options{Quality: float32(p.webpQuality)}); err != nil {
		return "", fmt.Errorf("failed to save WebP thumbnail: %w", err)
	}

	return thumbPath, nil
}

// writeBinaryImage strips the data-URL prefix, decodes, and writes the file
func writeBinaryImage(data, filename, targetDir string) (string, error) {
	if !binaryPattern.MatchString(data) {
		return "", fmt.Errorf("invalid binary image base64 format")
	}

	b64Data := binaryPattern.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write binary file: %w", err)
	}

	return fullPath, nil
}

// extractExtension auto-detects file extension from the data-URL MIME type
func extractExtension(data string) string {
	switch {
	case strings.Contains(data, "data:image/png"):
		return "png"
	case strings.Contains(data, "data:image/jpeg"), strings.Contains(data, "data:image/jpg"):
		return "jpg"
	case strings.Contains(data, "data:image/webp"):
		return "webp"
	}
	return ""
}
