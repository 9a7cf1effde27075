package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"

	"board/db"
	"board/models"

	"gorm.io/gorm"
)

var (
	ErrPhoneNotFound = errors.New("phone not found")
	ErrCodeMismatch  = errors.New("invalid code")
)

const (
	codeMin = 1000
	codeMax = 9999
)

type VerificationService struct {
	db *db.Manager
}

func NewVerificationService(manager *db.Manager) *VerificationService {
	return &VerificationService{db: manager}
}

func randomCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return 0, err
	}
	return codeMin + int(n.Int64()), nil
}

// IssueCode генерирует новый код и сохраняет его для номера.
// Повторный вызов для того же номера перезаписывает имя и код.
func (s *VerificationService) IssueCode(ctx context.Context, phone, name string) (int, error) {
	code, err := randomCode()
	if err != nil {
		return 0, fmt.Errorf("failed to generate code: %w", err)
	}

	var user models.User
	err = s.db.Write(ctx).Where("phone = ?", phone).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{Phone: phone, Name: name, Code: code}
		if err := s.db.Write(ctx).Create(&user).Error; err != nil {
			return 0, fmt.Errorf("failed to create user: %w", err)
		}
	case err != nil:
		return 0, fmt.Errorf("failed to look up user: %w", err)
	default:
		err = s.db.Write(ctx).Model(&user).Updates(map[string]interface{}{
			"name": name,
			"code": code,
		}).Error
		if err != nil {
			return 0, fmt.Errorf("failed to update user: %w", err)
		}
	}

	// Отправки SMS нет, код достается из лога / базы
	log.Printf("verification code issued for %s: %d", phone, code)

	return code, nil
}

// CheckCode сверяет присланный код с последним выданным.
// Код не сгорает: остается валидным до следующего IssueCode.
func (s *VerificationService) CheckCode(ctx context.Context, phone string, code int) error {
	var user models.User
	err := s.db.Read(ctx).Where("phone = ?", phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPhoneNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Code != code {
		return ErrCodeMismatch
	}
	return nil
}
