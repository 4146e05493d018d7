package http

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// saveImage extrait la partie "image" d'une requête multipart et l'écrit dans
// dir sous un nom uuid. Retourne le chemin stocké, ou "" si la requête ne
// porte pas d'image.
func saveImage(c *fiber.Ctx, dir string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, fiber.ErrUnprocessableEntity) {
			return "", nil
		}
		// Requête non multipart ou sans partie image : pas d'image à stocker.
		return "", nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.New().String() + filepath.Ext(file.Filename)
	path := filepath.Join(dir, name)
	if err := c.SaveFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}
