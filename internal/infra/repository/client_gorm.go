package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clientbook/internal/domain/client"
	"github.com/BruksfildServices01/clientbook/internal/dto"
	"github.com/BruksfildServices01/clientbook/internal/httperr"
	"github.com/BruksfildServices01/clientbook/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Schema
// --------------------------------------------------

// CreateSchema drops both tables and creates them again. Every row is
// lost and the id sequences restart.
func (r *ClientGormRepository) CreateSchema(ctx context.Context) error {
	m := r.db.WithContext(ctx).Migrator()

	if err := m.DropTable(&models.Phone{}, &models.Client{}); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}

	if err := m.CreateTable(&models.Client{}, &models.Phone{}); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	return nil
}

// EnsureSchema creates whatever is missing and keeps existing rows.
func (r *ClientGormRepository) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(
		&models.Client{},
		&models.Phone{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

// CreateClient inserts the client and then each phone, all in one
// transaction. c.ID and c.Phones are filled in on success.
func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	c *models.Client,
	phones []string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(c).Error; err != nil {
			return translate(err, domain.ErrEmailTaken)
		}

		created, err := insertPhones(tx, c.ID, phones)
		if err != nil {
			return err
		}

		c.Phones = created
		return nil
	})
}

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}

	phones, err := r.ListPhones(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Phones = phones

	return &c, nil
}

// UpdateClient overwrites the fields set in changes with a single
// UPDATE. It reports ErrClientNotFound when no row has that id.
func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	id uint,
	changes domain.Changes,
) error {

	if changes.Empty() {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Updates(changes.Columns())
	if res.Error != nil {
		return translate(res.Error, domain.ErrEmailTaken)
	}
	if res.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

// DeleteClient removes the client's phones and then the client in one
// transaction. The bool is false when the client did not exist.
func (r *ClientGormRepository) DeleteClient(
	ctx context.Context,
	id uint,
) (bool, error) {

	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("client_id = ?", id).
			Delete(&models.Phone{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.Client{})
		if res.Error != nil {
			return res.Error
		}

		deleted = res.RowsAffected > 0
		return nil
	})

	return deleted, err
}

// --------------------------------------------------
// Phone
// --------------------------------------------------

func (r *ClientGormRepository) AddPhone(
	ctx context.Context,
	clientID uint,
	number string,
) (*models.Phone, error) {

	p := models.Phone{ClientID: clientID, Number: number}
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&p).Error; err != nil {
		return nil, translate(err, domain.ErrPhoneTaken)
	}

	return &p, nil
}

func (r *ClientGormRepository) ListPhones(
	ctx context.Context,
	clientID uint,
) ([]models.Phone, error) {

	var phones []models.Phone
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id ASC").
		Find(&phones).Error; err != nil {
		return nil, err
	}

	return phones, nil
}

// ReplacePhones deletes every phone of the client and inserts numbers in
// their place, in one transaction. An empty list leaves the client
// without phones.
func (r *ClientGormRepository) ReplacePhones(
	ctx context.Context,
	clientID uint,
	numbers []string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("client_id = ?", clientID).
			Delete(&models.Phone{}).Error; err != nil {
			return err
		}

		_, err := insertPhones(tx, clientID, numbers)
		return err
	})
}

func (r *ClientGormRepository) DeletePhone(
	ctx context.Context,
	clientID uint,
	number string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("client_id = ? AND phone = ?", clientID, number).
		Delete(&models.Phone{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Search
// --------------------------------------------------

// Search runs clients LEFT JOIN phones with an equality predicate for
// every filter field that is set. Filtering on phone drops clients that
// have no phones.
func (r *ClientGormRepository) Search(
	ctx context.Context,
	f domain.Filter,
) ([]dto.ClientSearchRow, error) {

	q := r.db.WithContext(ctx).
		Table("clients AS c").
		Select(
			"c.id AS client_id, c.name AS first_name, c.surname AS last_name, " +
				"c.email AS email, p.id AS phone_id, p.phone AS phone",
		).
		Joins("LEFT JOIN phones AS p ON c.id = p.client_id")

	if f.FirstName != nil {
		q = q.Where("c.name = ?", *f.FirstName)
	}
	if f.LastName != nil {
		q = q.Where("c.surname = ?", *f.LastName)
	}
	if f.Email != nil {
		q = q.Where("c.email = ?", *f.Email)
	}
	if f.Phone != nil {
		q = q.Where("p.phone = ?", *f.Phone)
	}

	rows := []dto.ClientSearchRow{}
	if err := q.
		Order("c.id ASC, p.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func insertPhones(tx *gorm.DB, clientID uint, numbers []string) ([]models.Phone, error) {
	phones := make([]models.Phone, 0, len(numbers))

	for _, n := range numbers {
		p := models.Phone{ClientID: clientID, Number: n}
		if err := tx.Omit(clause.Associations).Create(&p).Error; err != nil {
			return nil, translate(err, domain.ErrPhoneTaken)
		}
		phones = append(phones, p)
	}

	return phones, nil
}

// translate maps constraint violations onto business errors; a unique
// violation becomes onUnique and a broken foreign key means the owning
// client is gone.
func translate(err error, onUnique error) error {
	switch {
	case httperr.IsUniqueViolation(err):
		return onUnique
	case httperr.IsForeignKeyViolation(err):
		return domain.ErrClientNotFound
	default:
		return err
	}
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
