package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/sushibar/sushi-bar-api/utils"
)

// LocalImageService implements ImageService on the local filesystem.
// Used when no S3 bucket is configured, so the app runs without AWS
// credentials; images are served back through /api/v1/uploads/:filename.
type LocalImageService struct {
	uploadDir string
}

// NewLocalImageService creates a local image service storing files in uploadDir
func NewLocalImageService(uploadDir string) *LocalImageService {
	if uploadDir == "" {
		uploadDir = utils.UploadDir
	}
	return &LocalImageService{uploadDir: uploadDir}
}

// InitLocalImageService initializes the image service with the local backend
func InitLocalImageService(uploadDir string) ImageService {
	imageServiceInstance = NewLocalImageService(uploadDir)
	return imageServiceInstance
}

// UploadImage validates and saves a menu image to the local upload directory
func (l *LocalImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	filename, err := utils.SaveUploadedFile(fileHeader, l.uploadDir)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return filename, nil
}

// GetImageURL returns the serving path for a locally stored image
func (l *LocalImageService) GetImageURL(imageKey string) (string, error) {
	return utils.GetImageURL(imageKey), nil
}

// DeleteImage removes a locally stored image
func (l *LocalImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	fullPath := filepath.Join(l.uploadDir, filepath.Base(imageKey))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
