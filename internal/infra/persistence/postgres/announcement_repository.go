package postgres

import (
	"context"

	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/domain/repository"
	"lounas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// announcementRepository implements the domain.AnnouncementRepository interface using GORM.
type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(db *gorm.DB) repository.AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create persists a new announcement.
func (repo *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	annM := fromAnnouncementDomain(announcement)

	if err := repo.db.WithContext(ctx).Create(annM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create announcement")
	}

	announcement.ID = annM.ID
	announcement.CreatedAt = annM.CreatedAt

	return nil
}

// FindActive retrieves active announcements, newest first.
func (repo *announcementRepository) FindActive(ctx context.Context) ([]*entity.Announcement, error) {
	var annMs []*model.AnnouncementModel

	err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&annMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active announcements")
	}

	return toAnnouncementDomainList(annMs), nil
}

// FindAll retrieves every announcement, newest first.
func (repo *announcementRepository) FindAll(ctx context.Context) ([]*entity.Announcement, error) {
	var annMs []*model.AnnouncementModel

	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&annMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all announcements")
	}

	return toAnnouncementDomainList(annMs), nil
}

// Toggle flips the active flag in a single UPDATE ... RETURNING statement and
// reports the new value.
func (repo *announcementRepository) Toggle(ctx context.Context, id uuid.UUID) (bool, error) {
	var annM model.AnnouncementModel

	result := repo.db.WithContext(ctx).
		Model(&annM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "active"}}}).
		Where("id = ?", id).
		Update("active", gorm.Expr("NOT active"))
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to toggle announcement")
	}

	if result.RowsAffected == 0 {
		return false, repository.ErrAnnouncementNotFound
	}

	return annM.Active, nil
}

func toAnnouncementDomainList(annMs []*model.AnnouncementModel) []*entity.Announcement {
	announcements := make([]*entity.Announcement, 0, len(annMs))
	for _, annM := range annMs {
		announcements = append(announcements, toAnnouncementDomain(annM))
	}

	return announcements
}

func toAnnouncementDomain(annM *model.AnnouncementModel) *entity.Announcement {
	return &entity.Announcement{
		ID:        annM.ID,
		Title:     annM.Title,
		Content:   annM.Content,
		Active:    annM.Active,
		CreatedAt: annM.CreatedAt,
	}
}

func fromAnnouncementDomain(announcement *entity.Announcement) *model.AnnouncementModel {
	return &model.AnnouncementModel{
		ID:        announcement.ID,
		Title:     announcement.Title,
		Content:   announcement.Content,
		Active:    announcement.Active,
		CreatedAt: announcement.CreatedAt,
	}
}
