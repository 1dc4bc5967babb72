// Package repo holds the postgres-backed stores. LinkRepo and AnalysisRepo
// double as the tracker's LinkStore and EventStore.
package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/777sanket/LinkManager-Backend/model"
	"github.com/777sanket/LinkManager-Backend/shared/db"
	"github.com/777sanket/LinkManager-Backend/tracker"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// sortColumns whitelists the client-facing sort keys per table. Anything not
// listed falls back to the default so raw query input never reaches ORDER BY.
var linkSortColumns = map[string]string{
	"dateCreated":  "date_created",
	"clicks":       "clicks",
	"originalLink": "original_link",
	"remark":       "remark",
}

var eventSortColumns = map[string]string{
	"dateClicked":  "date_clicked",
	"originalLink": "original_link",
	"deviceType":   "device_type",
}

func orderClause(columns map[string]string, sortBy, order, fallback string) string {
	column, ok := columns[sortBy]
	if !ok {
		column = fallback
	}
	direction := "DESC"
	if order == "asc" {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}

type UserRepo struct {
	DB *db.PostgresDB
}

func NewUserRepo(database *db.PostgresDB) *UserRepo {
	return &UserRepo{DB: database}
}

func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	return r.DB.Create(ctx, user)
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.DB.First(ctx, &user, "email = ?", email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.DB.First(ctx, &user, "id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Save(ctx context.Context, user *model.User) error {
	return r.DB.Save(ctx, user)
}

// DeleteCascade removes the user together with every link and click event
// they own, in one transaction.
func (r *UserRepo) DeleteCascade(ctx context.Context, userID uint) error {
	return r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.ClickEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Link{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&model.User{}).Error
	})
}

type LinkRepo struct {
	DB *db.PostgresDB
}

func NewLinkRepo(database *db.PostgresDB) *LinkRepo {
	return &LinkRepo{DB: database}
}

func (r *LinkRepo) Create(ctx context.Context, link *model.Link) error {
	return r.DB.Create(ctx, link)
}

func (r *LinkRepo) FindByID(ctx context.Context, id uint) (*model.Link, error) {
	var link model.Link
	if err := r.DB.First(ctx, &link, "id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *LinkRepo) FindByShortCode(ctx context.Context, code string) (*model.Link, error) {
	var link model.Link
	if err := r.DB.First(ctx, &link, "short_code = ?", code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tracker.ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// IncrementClicks bumps the counter in a single round trip so concurrent
// redirects on the same link never lose updates.
func (r *LinkRepo) IncrementClicks(ctx context.Context, linkID uint) (int64, error) {
	var clicks int64
	err := r.DB.RawScan(ctx, &clicks,
		"UPDATE links SET clicks = clicks + 1 WHERE id = ? RETURNING clicks", linkID)
	if err != nil {
		return 0, err
	}
	return clicks, nil
}

func (r *LinkRepo) Save(ctx context.Context, link *model.Link) error {
	return r.DB.Save(ctx, link)
}

// FindAllByUser returns the owner's links, optionally filtered by a search
// term over original link and remark, sorted by a whitelisted column.
func (r *LinkRepo) FindAllByUser(ctx context.Context, userID uint, sortBy, order, search string) ([]model.Link, error) {
	var links []model.Link
	clause := orderClause(linkSortColumns, sortBy, order, "date_created")

	query := r.DB.DB.WithContext(ctx).Where("user_id = ?", userID)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("original_link ILIKE ? OR remark ILIKE ?", pattern, pattern)
	}
	if err := query.Order(clause).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// DeleteCascade removes the link and its click events in one transaction,
// so a deleted link never leaves orphaned analytics behind.
func (r *LinkRepo) DeleteCascade(ctx context.Context, linkID uint) error {
	return r.DB.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", linkID).Delete(&model.ClickEvent{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", linkID).Delete(&model.Link{}).Error
	})
}

type AnalysisRepo struct {
	DB *db.PostgresDB
}

func NewAnalysisRepo(database *db.PostgresDB) *AnalysisRepo {
	return &AnalysisRepo{DB: database}
}

func (r *AnalysisRepo) Append(ctx context.Context, event *model.ClickEvent) error {
	return r.DB.Create(ctx, event)
}

func (r *AnalysisRepo) FindByOwner(ctx context.Context, userID uint) ([]model.ClickEvent, error) {
	var events []model.ClickEvent
	if err := r.DB.Find(ctx, &events, "user_id = ?", userID); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *AnalysisRepo) CountByOwner(ctx context.Context, userID uint) (int64, error) {
	return r.DB.Count(ctx, &model.ClickEvent{}, "user_id = ?", userID)
}

// FindPageByOwner returns one page of the owner's click events for the
// event-list endpoint.
func (r *AnalysisRepo) FindPageByOwner(ctx context.Context, userID uint, sortBy, order string, page, limit int) ([]model.ClickEvent, error) {
	var events []model.ClickEvent
	clause := orderClause(eventSortColumns, sortBy, order, "date_clicked")
	offset := (page - 1) * limit
	if err := r.DB.FindPage(ctx, &events, clause, offset, limit, "user_id = ?", userID); err != nil {
		return nil, err
	}
	return events, nil
}
