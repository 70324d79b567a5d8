package portfolio

import (
	"net/http"

	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/common"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/responses"
	"github.com/DhavalSuthar-24/skillswap/pkg/validator"
	"github.com/gin-gonic/gin"
)

var itemTypes = map[string]bool{
	models.PortfolioProject:     true,
	models.PortfolioCertificate: true,
	models.PortfolioWorkSample:  true,
	models.PortfolioOther:       true,
}

type PortfolioController struct {
	repo   PortfolioRepository
	config *config.Config
	log    *logger.Logger
}

func NewPortfolioController(repo PortfolioRepository, cfg *config.Config, log *logger.Logger) *PortfolioController {
	return &PortfolioController{repo: repo, config: cfg, log: log}
}

// CreateItem godoc
// @Summary Add a portfolio item
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param item body CreatePortfolioItemRequest true "Portfolio item"
// @Success 201 {object} responses.SuccessResponse{data=models.PortfolioItem}
// @Failure 400 {object} responses.ErrorResponse
// @Router /portfolio/me [post]
// @Security BearerAuth
func (pc *PortfolioController) CreateItem(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	var req CreatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	item := &models.PortfolioItem{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		ItemType:    req.ItemType,
		MediaURL:    req.MediaURL,
		LinkURL:     req.LinkURL,
	}
	if err := pc.repo.Create(item); err != nil {
		pc.log.Error("create portfolio item", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to create portfolio item")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Portfolio item created", item)
}

// ListMine godoc
// @Summary My portfolio
// @Tags Portfolio
// @Produce json
// @Param item_type query string false "project, certificate, work_sample or other"
// @Success 200 {object} responses.SuccessResponse{data=[]models.PortfolioItem}
// @Router /portfolio/me [get]
// @Security BearerAuth
func (pc *PortfolioController) ListMine(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	itemType := c.Query("item_type")
	if itemType != "" && !itemTypes[itemType] {
		responses.BadRequest(c, "Invalid item_type")
		return
	}
	items, err := pc.repo.ListForUser(userID, itemType)
	if err != nil {
		pc.log.Error("list portfolio", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to retrieve portfolio")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", items)
}

// ListForUser godoc
// @Summary A user's portfolio
// @Tags Portfolio
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.PortfolioItem}
// @Failure 404 {object} responses.ErrorResponse
// @Router /portfolio/user/{user_id} [get]
func (pc *PortfolioController) ListForUser(c *gin.Context) {
	id, err := common.ParseIDParam(c, "user_id")
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	active, err := pc.repo.ActiveUserExists(id)
	if err != nil {
		pc.log.Error("check user", "user_id", id, "error", err)
		responses.InternalServerError(c, "Failed to retrieve portfolio")
		return
	}
	if !active {
		responses.NotFound(c, "User")
		return
	}
	items, err := pc.repo.ListForUser(id, "")
	if err != nil {
		pc.log.Error("list portfolio", "user_id", id, "error", err)
		responses.InternalServerError(c, "Failed to retrieve portfolio")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", items)
}

// UpdateItem godoc
// @Summary Update a portfolio item
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param portfolio_id path int true "Portfolio item ID"
// @Param item body UpdatePortfolioItemRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.PortfolioItem}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /portfolio/{portfolio_id} [put]
// @Security BearerAuth
func (pc *PortfolioController) UpdateItem(c *gin.Context) {
	item, ok := pc.loadOwned(c)
	if !ok {
		return
	}
	var req UpdatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.ItemType != nil {
		item.ItemType = *req.ItemType
	}
	if req.MediaURL != nil {
		item.MediaURL = *req.MediaURL
	}
	if req.LinkURL != nil {
		item.LinkURL = *req.LinkURL
	}

	if err := pc.repo.Update(item); err != nil {
		pc.log.Error("update portfolio item", "portfolio_id", item.ID, "error", err)
		responses.InternalServerError(c, "Failed to update portfolio item")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Portfolio item updated", item)
}

// DeleteItem godoc
// @Summary Delete a portfolio item
// @Tags Portfolio
// @Param portfolio_id path int true "Portfolio item ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /portfolio/{portfolio_id} [delete]
// @Security BearerAuth
func (pc *PortfolioController) DeleteItem(c *gin.Context) {
	item, ok := pc.loadOwned(c)
	if !ok {
		return
	}
	if err := pc.repo.Delete(item); err != nil {
		pc.log.Error("delete portfolio item", "portfolio_id", item.ID, "error", err)
		responses.InternalServerError(c, "Failed to delete portfolio item")
		return
	}
	responses.NoContent(c)
}

func (pc *PortfolioController) loadOwned(c *gin.Context) (*models.PortfolioItem, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return nil, false
	}
	id, err := common.ParseIDParam(c, "portfolio_id")
	if err != nil {
		responses.BadRequest(c, "Invalid portfolio ID")
		return nil, false
	}
	item, err := pc.repo.GetByID(id)
	if err != nil {
		pc.log.Error("get portfolio item", "portfolio_id", id, "error", err)
		responses.InternalServerError(c, "Failed to retrieve portfolio item")
		return nil, false
	}
	if item == nil {
		responses.NotFound(c, "Portfolio item")
		return nil, false
	}
	if item.UserID != userID {
		responses.Forbidden(c, "Not your portfolio item")
		return nil, false
	}
	return item, true
}
