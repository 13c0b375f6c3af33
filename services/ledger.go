package services

import (
	"errors"
	"fmt"

	"billing-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerService owns every mutation of user_balances. All writes go through
// a short-lived transaction holding a row lock on the user's balance row, so
// concurrent adjustments for the same user serialize while different users
// proceed in parallel. The balance never goes negative.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// GetBalance returns the user's current credit balance, materializing a zero
// row on first read so subsequent reads and writes hit an existing record.
func (s *LedgerService) GetBalance(userID uuid.UUID) (int64, error) {
	var balance models.UserBalance
	err := s.db.Where("user_id = ?", userID).First(&balance).Error
	if err == nil {
		return balance.Credits, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}

	if err := s.requireUser(userID); err != nil {
		return 0, err
	}
	if err := s.ensureRow(userID); err != nil {
		return 0, err
	}
	if err := s.db.Where("user_id = ?", userID).First(&balance).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}
	return balance.Credits, nil
}

// SetBalance overwrites the balance with an exact non-negative value.
func (s *LedgerService) SetBalance(userID uuid.UUID, amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if err := s.requireUser(userID); err != nil {
		return err
	}
	if err := s.ensureRow(userID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var balance models.UserBalance
		if err := lockForUpdate(tx).Where("user_id = ?", userID).First(&balance).Error; err != nil {
			return err
		}
		return tx.Model(&balance).Update("credits", amount).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}
	return nil
}

// AddCredits credits the user with a positive amount.
func (s *LedgerService) AddCredits(userID uuid.UUID, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.adjust(userID, amount)
}

// RemoveCredits debits the user. When the debit would push the balance below
// zero the balance is left untouched and ErrInsufficientCredits is returned.
func (s *LedgerService) RemoveCredits(userID uuid.UUID, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.adjust(userID, -amount)
}

// adjust applies delta to the user's balance. The row lock is acquired only
// after the transaction starts and released at commit/rollback, which closes
// the read-modify-write race between concurrent requests: a second caller
// blocks on the lock and sees the committed balance, never a stale one.
func (s *LedgerService) adjust(userID uuid.UUID, delta int64) error {
	if err := s.requireUser(userID); err != nil {
		return err
	}
	if err := s.ensureRow(userID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var balance models.UserBalance
		if err := lockForUpdate(tx).Where("user_id = ?", userID).First(&balance).Error; err != nil {
			return err
		}

		next := balance.Credits + delta
		if next < 0 {
			return ErrInsufficientCredits
		}
		return tx.Model(&balance).Update("credits", next).Error
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientCredits) {
			return ErrInsufficientCredits
		}
		return fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}
	return nil
}

// ensureRow materializes the balance row with zero credits. The insert is an
// idempotent upsert: when two callers race to create the first row for a
// user, one insert wins and the other is a no-op, so neither sees a spurious
// duplicate-key error.
func (s *LedgerService) ensureRow(userID uuid.UUID) error {
	balance := models.UserBalance{UserID: userID}
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&balance).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}
	return nil
}

// requireUser checks the panel's user table; balances are never created for
// unknown users.
func (s *LedgerService) requireUser(userID uuid.UUID) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}

// lockForUpdate adds SELECT ... FOR UPDATE. SQLite rejects the clause and
// serializes writers at the database level anyway, so it is skipped there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
