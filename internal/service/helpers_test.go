// internal/service/helpers_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"card_keep/internal/model"
	"card_keep/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var t0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return t0 }

// setupTestDB はトランザクション用のインメモリDBです。リポジトリはモックするのでテーブルは作らない
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func ownedCard(learnerID uuid.UUID) *model.Flashcard {
	deckID := uuid.New()
	return &model.Flashcard{
		FlashcardID: uuid.New(),
		DeckID:      deckID,
		Question:    "apple",
		Answer:      "りんご",
		Deck:        &model.Deck{DeckID: deckID, LearnerID: learnerID, Name: "英単語", SelectionPolicy: srs.PolicyDueDatePriority},
	}
}
