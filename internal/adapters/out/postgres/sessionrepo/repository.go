package sessionrepo

import (
	"context"
	"errors"

	"instore/internal/core/domain/model/kernel"
	"instore/internal/core/domain/model/order"
	"instore/internal/core/domain/model/session"
	"instore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new session to the database.
func (r *GormSessionRepository) Add(ctx context.Context, sess *session.Session) error {
	if err := sess.Order().Validate(); err != nil {
		return err
	}

	dto := fromDomain(sess)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.OrderID, sess)
	return nil
}

// Update saves an existing session to the database. Item rows are replaced
// wholesale; a line removed from the aggregate must disappear from storage,
// which association saving alone would not do.
func (r *GormSessionRepository) Update(ctx context.Context, sess *session.Session) error {
	if err := sess.Order().Validate(); err != nil {
		return err
	}

	dto := fromDomain(sess)

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", dto.OrderID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	items := dto.Items
	dto.Items = nil
	result := db.Model(&SessionDTO{}).Where("order_id = ?", dto.OrderID).
		Select("ClientID", "Status", "Subtotal", "Tax", "AppliedSeq", "NextSeq", "CreatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(dto.OrderID, sess)
	return nil
}

// Get retrieves the newest session belonging to a shopper device.
func (r *GormSessionRepository) Get(ctx context.Context, clientID kernel.UUID) (*session.Session, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("client_id = ?", clientID.Bytes()).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", clientID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the session holding the given order code.
func (r *GormSessionRepository) GetByOrderID(ctx context.Context, orderID string) (*session.Session, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	var dto SessionDTO
	err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllTracked retrieves every session whose order is not yet delivered.
func (r *GormSessionRepository) GetAllTracked(ctx context.Context) ([]*session.Session, error) {
	var dtos []SessionDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status != ?", int(order.Delivered)).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	sessions := make([]*session.Session, 0, len(dtos))
	for _, dto := range dtos {
		sess, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}

	return sessions, nil
}
