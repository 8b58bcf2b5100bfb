package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/crewdeck-dev/crewdeck/db"
	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/crewdeck-dev/crewdeck/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateClientRequest struct {
	Name string `json:"name" binding:"required,min=2"`
}

func CreateClient(ctx *gin.Context) {
	var body CreateClientRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	body.Name = strings.TrimSpace(body.Name)

	var existingClient models.Client

	err := db.DB.Where("name = ?", body.Name).First(&existingClient).Error

	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "Client with this name already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing client: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	client := models.Client{Name: body.Name}

	if err := db.DB.Create(&client).Error; err != nil {
		log.Printf("Failed to create client: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Client created successfully",
		"client":  types.NewClientResponse(client),
	})
}

func ListClients(ctx *gin.Context) {
	var clients []models.Client

	if err := db.DB.Order("created_at DESC").Find(&clients).Error; err != nil {
		log.Printf("Failed to list clients: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.ClientResponse, 0, len(clients))

	for _, client := range clients {
		response = append(response, types.NewClientResponse(client))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetClient(ctx *gin.Context) {
	clientID, ok := parseID(ctx, "client_id")

	if !ok {
		return
	}

	var client models.Client

	err := db.DB.Preload("Users").Preload("Projects").First(&client, clientID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		} else {
			log.Printf("Failed to fetch client: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	users := make([]types.UserResponse, 0, len(client.Users))

	for _, user := range client.Users {
		users = append(users, types.NewUserResponse(user))
	}

	projects := make([]types.ProjectResponse, 0, len(client.Projects))

	for _, project := range client.Projects {
		projects = append(projects, types.NewProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, types.ClientDetailResponse{
		ClientResponse: types.NewClientResponse(client),
		Users:          users,
		Projects:       projects,
	})
}
