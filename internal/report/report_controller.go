package report

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

type ReportController struct {
	repo   ReportRepository
	config *config.Config
	log    *logger.Logger
}

func NewReportController(repo ReportRepository, cfg *config.Config, log *logger.Logger) *ReportController {
	return &ReportController{repo: repo, config: cfg, log: log}
}

// ReportUser godoc
// @Summary Report a user
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body CreateReportRequest true "Report"
// @Success 201 {object} responses.SuccessResponse{data=models.Report}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /reports/users [post]
// @Security BearerAuth
func (rc *ReportController) ReportUser(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	if req.ReportedID == userID {
		responses.BadRequest(c, "Cannot report yourself")
		return
	}

	found, err := rc.repo.UserExists(req.ReportedID)
	if err != nil {
		rc.log.Error("check reported user", "reported_id", req.ReportedID, "error", err)
		responses.InternalServerError(c, "Failed to create report")
		return
	}
	if !found {
		responses.NotFound(c, "User")
		return
	}

	report := &models.Report{
		ReporterID: userID,
		ReportedID: req.ReportedID,
		Reason:     req.Reason,
		Details:    req.Details,
		Status:     models.ReportPending,
	}
	if err := rc.repo.Create(report); err != nil {
		rc.log.Error("create report", "reporter_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to create report")
		return
	}
	rc.log.Warn("user reported", "report_id", report.ID, "reported_id", report.ReportedID)
	responses.SendSuccess(c, http.StatusCreated, "Report submitted", report)
}

// ListReports godoc
// @Summary List reports
// @Tags Reports
// @Produce json
// @Param status query string false "pending, reviewed or dismissed"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Report}
// @Failure 403 {object} responses.ErrorResponse
// @Router /reports [get]
// @Security BearerAuth
func (rc *ReportController) ListReports(c *gin.Context) {
	status := c.Query("status")
	switch status {
	case "", models.ReportPending, models.ReportReviewed, models.ReportDismissed:
	default:
		responses.BadRequest(c, "Invalid status filter")
		return
	}
	page, pageSize := common.ParsePagination(c, common.DefaultPageSize)
	reports, total, err := rc.repo.List(status, page, pageSize)
	if err != nil {
		rc.log.Error("list reports", "error", err)
		responses.InternalServerError(c, "Failed to retrieve reports")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Reports retrieved", reports, total, page, pageSize)
}

// UpdateReport godoc
// @Summary Change a report's status
// @Tags Reports
// @Accept json
// @Produce json
// @Param report_id path int true "Report ID"
// @Param report body UpdateReportRequest true "New status"
// @Success 200 {object} responses.SuccessResponse{data=models.Report}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /reports/{report_id} [put]
// @Security BearerAuth
func (rc *ReportController) UpdateReport(c *gin.Context) {
	id, err := common.ParseIDParam(c, "report_id")
	if err != nil {
		responses.BadRequest(c, "Invalid report ID")
		return
	}
	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	report, err := rc.repo.GetByID(id)
	if err != nil {
		rc.log.Error("get report", "report_id", id, "error", err)
		responses.InternalServerError(c, "Failed to update report")
		return
	}
	if report == nil {
		responses.NotFound(c, "Report")
		return
	}
	if err := rc.repo.UpdateStatus(report, req.Status); err != nil {
		rc.log.Error("update report", "report_id", id, "error", err)
		responses.InternalServerError(c, "Failed to update report")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Report updated", report)
}
