package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/config"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/models"
	"github.com/ssamratd571/localexplorer/repositories"
	"github.com/ssamratd571/localexplorer/utils"
)

// UserController handles profile management
type UserController struct {
	db    *mongo.Client
	users *repositories.UserRepository
}

// NewUserController creates a new user controller
func NewUserController(db *mongo.Client) *UserController {
	return &UserController{
		db:    db,
		users: repositories.NewUserRepository(db),
	}
}

// GetProfile returns the caller's profile.
func (uc *UserController) GetProfile(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	user, err := uc.users.FindByID(userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "User not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile retrieved",
		Data:    user,
	})
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// UpdateProfile updates display name and phone.
func (uc *UserController) UpdateProfile(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	set := bson.M{"updatedAt": time.Now()}
	if name := utils.SanitizeInput(req.DisplayName); name != "" {
		set["displayName"] = name
	}
	if strings.TrimSpace(req.Phone) != "" {
		phone, err := utils.SanitizePhone(req.Phone)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid phone number",
			})
		}
		set["phone"] = phone
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection(uc.db, "users").UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set}); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update profile: " + err.Error(),
		})
	}

	user, err := uc.users.FindByID(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to reload profile: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile updated",
		Data:    user,
	})
}

// ListUsers returns recent accounts for the admin console. The route guard
// enforces the admin role.
func (uc *UserController) ListUsers(c echo.Context) error {
	users, err := uc.users.ListUsers(200)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to list users: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Users retrieved",
		Data:    users,
	})
}

// UploadProfilePhoto stores a new profile picture and saves its URL.
func (uc *UserController) UploadProfilePhoto(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing photo",
		})
	}
	if err := utils.ValidateFileType(fh.Filename, "image"); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	if err := utils.ValidateFile(fh.Filename, fh.Size); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	data, err := readMultipartFile(fh)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Failed to read photo: " + err.Error(),
		})
	}

	url, err := utils.UploadFileToPath(data, fh.Filename, "image", "profiles")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to store photo: " + err.Error(),
		})
	}

	if err := uc.users.UpdateProfilePicture(userID, url); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to save profile picture: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile photo updated",
		Data:    map[string]string{"profilePic": url},
	})
}
