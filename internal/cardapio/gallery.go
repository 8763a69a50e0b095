package cardapio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"

	"cardapio-admin-svc/internal/models"
)

const (
	galleryPath = "/api/cardapio/gallery"
	trashPath   = "/api/cardapio/trash"
)

// ListGallery returns every image of the shared library
func (c *Client) ListGallery(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := c.doJSON(ctx, http.MethodGet, galleryPath, nil, nil, &images)
	return images, err
}

// UploadImage stores a new image in the shared library
func (c *Client) UploadImage(ctx context.Context, filename, folder string, content io.Reader) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := c.upload(ctx, galleryPath, filename, map[string]string{"folder": folder}, content, &image); err != nil {
		return nil, err
	}
	if image.Filename == "" {
		image.Filename = path.Base(image.URL)
	}
	return &image, nil
}

// DeleteImage removes an image from the shared library
func (c *Client) DeleteImage(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return Invalid("image id is required")
	}
	return c.doJSON(ctx, http.MethodDelete, galleryPath+"/"+url.PathEscape(id), nil, nil, nil)
}

// upload posts content as the "file" field of a multipart form
func (c *Client) upload(ctx context.Context, p, filename string, fields map[string]string, content io.Reader, out interface{}) error {
	if strings.TrimSpace(filename) == "" {
		return Invalid("file name is required")
	}
	if content == nil {
		return Invalid("file content is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("failed to copy file content: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, p, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

// ListTrash returns soft deleted records, optionally for one bar
func (c *Client) ListTrash(ctx context.Context, barID uint) ([]models.TrashEntry, error) {
	var entries []models.TrashEntry
	err := c.doJSON(ctx, http.MethodGet, trashPath, barQuery(barID), nil, &entries)
	return entries, err
}

// RestoreTrash restores a soft deleted record
func (c *Client) RestoreTrash(ctx context.Context, id uint) error {
	if err := requireID(id, "trash entry"); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, idPath(trashPath, id)+"/restore", nil, nil, nil)
}
