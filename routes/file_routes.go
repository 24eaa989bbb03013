package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ssamratd571/localexplorer/models"
)

// RegisterFileRoutes sets up all file serving routes
func RegisterFileRoutes(e *echo.Echo) {
	e.GET("/uploads/*", ServeFile)
	e.GET("/uploads/:filename", ServeImage)
}

// ServeImage serves an uploaded image looked up across the storage subdirs.
func ServeImage(c echo.Context) error {
	path := c.Param("*")
	if path == "" {
		path = c.Param("filename")
	}

	potentialPaths := []string{
		filepath.Join("uploads", path),
		filepath.Join("uploads", "listings", path),
		filepath.Join("uploads", "thumbnails", path),
		filepath.Join("uploads", "profiles", path),
	}

	for _, filePath := range potentialPaths {
		if _, err := os.Stat(filePath); !os.IsNotExist(err) {
			return c.File(filePath)
		}
	}

	return c.JSON(http.StatusNotFound, models.Response{
		Status:  http.StatusNotFound,
		Message: "Image not found",
	})
}

// ServeFile serves uploaded files with traversal protection.
func ServeFile(c echo.Context) error {
	path := c.Param("*")
	if path == "" {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "File not found",
		})
	}

	cleanPath := filepath.Clean(path)
	if cleanPath == ".." || strings.HasPrefix(cleanPath, "../") {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Access denied - invalid path",
		})
	}

	fullPath := filepath.Join("uploads", cleanPath)

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "File not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error accessing file: " + err.Error(),
		})
	}

	if info.IsDir() {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Access denied - directory listing not allowed",
		})
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=31536000")
	c.Response().Header().Set("Expires", time.Now().AddDate(1, 0, 0).Format(time.RFC1123))

	return c.File(fullPath)
}
