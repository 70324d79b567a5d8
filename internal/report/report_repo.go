package report

import (
	"errors"

	"github.com/DhavalSuthar-24/skillswap/internal/common"
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(r *models.Report) error
	GetByID(id uint) (*models.Report, error)
	UpdateStatus(r *models.Report, status string) error
	List(status string, page, pageSize int) ([]models.Report, int64, error)
	UserExists(id uint) (bool, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) UpdateStatus(report *models.Report, status string) error {
	report.Status = status
	return r.db.Model(report).Update("status", status).Error
}

func (r *reportRepository) List(status string, page, pageSize int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := r.db.Model(&models.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC, id DESC").
		Offset(common.Offset(page, pageSize)).Limit(pageSize).
		Find(&reports).Error
	return reports, total, err
}

// UserExists includes deactivated accounts so they can still be reported.
func (r *reportRepository) UserExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
