package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	config "github.com/kevotieno/craft_agency/configs"
)

const maxUploadSize = 5 << 20 // 5 MiB

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

var materialTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// validateUpload checks size, extension and the declared content type against
// an allow-list. Both checks must pass, so a renamed binary fails on the MIME
// side and a spoofed content type fails on the extension side.
func validateUpload(filename, contentType string, size int64, allowed map[string]string) error {
	if size > maxUploadSize {
		return fmt.Errorf("file exceeds the %d MB limit", maxUploadSize>>20)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	wantType, ok := allowed[ext]
	if !ok {
		return fmt.Errorf("file type %s is not allowed", ext)
	}
	if !strings.HasPrefix(contentType, wantType) {
		return fmt.Errorf("content type %s does not match %s", contentType, ext)
	}
	return nil
}

func ValidateImageUpload(file *multipart.FileHeader) error {
	return validateUpload(file.Filename, file.Header.Get("Content-Type"), file.Size, imageTypes)
}

func ValidateMaterialUpload(file *multipart.FileHeader) error {
	return validateUpload(file.Filename, file.Header.Get("Content-Type"), file.Size, materialTypes)
}

// SaveUpload stores the file in the uploads directory under
// <unix-ms-timestamp>-<sanitized-original-name> and returns the stored
// filename.
func SaveUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := config.AppConfig.UploadsDir
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(file.Filename))
	dst, err := os.Create(filepath.Join(destDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filename, nil
}

// RemoveUpload deletes a stored file, tolerating its absence.
func RemoveUpload(filename string) {
	if filename == "" {
		return
	}
	err := os.Remove(filepath.Join(config.AppConfig.UploadsDir, filename))
	if err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Failed to remove upload %s: %v", filename, err)
	}
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, " ", "_")
}
