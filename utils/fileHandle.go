package utils

import (
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"pkl/config"
	"pkl/models"
)

// SaveDokumen stores one uploaded document under destDir and returns
// the metadata recorded on the registration. When an external blob
// store is configured the saved file is replicated there off the
// request path.
func SaveDokumen(file *multipart.FileHeader, destDir string) (models.DokumenInfo, error) {
	src, err := file.Open()
	if err != nil {
		return models.DokumenInfo{}, err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return models.DokumenInfo{}, err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.New().String() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return models.DokumenInfo{}, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return models.DokumenInfo{}, err
	}

	info := models.DokumenInfo{
		NamaAsli:     file.Filename,
		Path:         filePath,
		Ukuran:       file.Size,
		TipeMime:     file.Header.Get("Content-Type"),
		DiunggahPada: time.Now(),
	}

	if config.AppConfig.StorageApiURL != "" {
		go replicateDokumen(filePath, info)
	}

	return info, nil
}

// replicateDokumen pushes a saved file to the external blob store.
// Best effort: the local copy is authoritative.
func replicateDokumen(filePath string, info models.DokumenInfo) {
	client := resty.New().SetTimeout(15 * time.Second)

	resp, err := client.R().
		SetFile("file", filePath).
		SetFormData(map[string]string{
			"nama_asli": info.NamaAsli,
			"tipe_mime": info.TipeMime,
		}).
		SetHeader("Authorization", "Bearer "+config.AppConfig.StorageApiKey).
		Post(config.AppConfig.StorageApiURL + "/upload")
	if err != nil {
		log.Printf("[STORAGE] Error replicating %s: %v", filePath, err)
		return
	}
	if resp.IsError() {
		log.Printf("[STORAGE] Replication of %s failed: %s", filePath, resp.Status())
	}
}

// GetFileURL maps a stored document path to the public /uploads route
// served from the configured upload directory.
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	rel, err := filepath.Rel(config.AppConfig.UploadDir, filePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(filePath)
	}
	return "/uploads/" + filepath.ToSlash(rel)
}
