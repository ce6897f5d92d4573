//go:generate mockery --name LearnerService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"card_keep/internal/middleware"
	"card_keep/internal/model"
	"card_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearnerService interface {
	CreateLearner(ctx context.Context, req *model.CreateLearnerRequest) (*model.Learner, error)
	// GetLearner は指定されたIDの学習者を取得します (認証ミドルウェアの存在確認にも使う)
	GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error)
}

type learnerService struct {
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
}

func NewLearnerService(db *gorm.DB, repo repository.LearnerRepository) LearnerService {
	return &learnerService{db: db, learnerRepo: repo}
}

func (s *learnerService) CreateLearner(ctx context.Context, req *model.CreateLearnerRequest) (*model.Learner, error) {
	logger := middleware.GetLogger(ctx)

	learner := &model.Learner{
		LearnerID: uuid.New(), // Service層でUUIDを生成
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
	}
	if learner.Name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "名前は必須項目です。", "name", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.learnerRepo.Create(ctx, tx, learner)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("EMAIL_ALREADY_EXISTS", "このメールアドレスは既に登録されています。", "email", err)
		}
		logger.Error("Failed to create learner", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習者の登録に失敗しました。", "", err)
	}

	logger.Info("Learner created", "learner_id", learner.LearnerID)
	return learner, nil
}

func (s *learnerService) GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error) {
	learner, err := s.learnerRepo.FindByID(ctx, s.db, learnerID)
	if err != nil {
		// AppError で包んでも errors.Is(err, model.ErrNotFound) で判定できる
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LEARNER_NOT_FOUND", "学習者が見つかりません。", "", err)
		}
		middleware.GetLogger(ctx).Error("Failed to find learner", "error", err, "learner_id", learnerID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習者の取得に失敗しました。", "", err)
	}
	return learner, nil
}
