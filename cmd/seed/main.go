// cmd/seed/main.go
// 開発用のサンプルデータ投入コマンド。学習者・デッキ・カードを作成し、
// API を試すための X-Learner-ID と Bearer トークンを表示する
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"card_keep/internal/config"
	"card_keep/internal/model"
	"card_keep/internal/repository"
	"card_keep/internal/service"
	"card_keep/internal/srs"

	"github.com/golang-jwt/jwt/v5"
)

var sampleCards = []model.CreateFlashcardRequest{
	{Question: "apple", Answer: "りんご"},
	{Question: "borrow", Answer: "借りる"},
	{Question: "consider", Answer: "よく考える"},
	{Question: "determine", Answer: "決定する"},
	{Question: "efficient", Answer: "効率的な"},
}

func main() {
	configPath := flag.String("config", "configs", "config.yaml のあるディレクトリ")
	email := flag.String("email", "demo@example.com", "作成する学習者のメールアドレス")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "表示するトークンの有効期間")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, slog.Default())
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	ctx := context.Background()
	learnerService := service.NewLearnerService(db, repository.NewGormLearnerRepository())
	deckService := service.NewDeckService(db, repository.NewGormDeckRepository(), repository.NewGormFlashcardRepository(), cfg.App.DefaultSelectionPolicy)

	fmt.Println("--- Creating learner ---")
	learner, err := learnerService.CreateLearner(ctx, &model.CreateLearnerRequest{Name: "Demo", Email: *email})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			log.Fatalf("Learner %s already exists. Use -email to choose another address.", *email)
		}
		log.Fatalf("Failed to create learner: %v", err)
	}
	fmt.Printf("Created learner: ID=%s, Email=%s\n", learner.LearnerID, learner.Email)

	// 両方のポリシーのデッキを 1 つずつ作る
	for _, d := range []model.CreateDeckRequest{
		{Name: "英単語 (SM-2)", SelectionPolicy: srs.PolicyDueDatePriority},
		{Name: "英単語 (スコア)", SelectionPolicy: srs.PolicyScoreWeightedRandom},
	} {
		deck, err := deckService.CreateDeck(ctx, learner.LearnerID, &d)
		if err != nil {
			log.Fatalf("Failed to create deck %q: %v", d.Name, err)
		}
		for i := range sampleCards {
			if _, err := deckService.AddFlashcard(ctx, learner.LearnerID, deck.DeckID, &sampleCards[i]); err != nil {
				log.Fatalf("Failed to add card to deck %q: %v", d.Name, err)
			}
		}
		fmt.Printf("Created deck: ID=%s, Name=%s, Policy=%s, Cards=%d\n", deck.DeckID, deck.Name, deck.SelectionPolicy, len(sampleCards))
	}

	fmt.Println("\n--- Credentials ---")
	fmt.Printf("X-Learner-ID: %s\n", learner.LearnerID)
	if cfg.JWT.SecretKey == "" {
		fmt.Println("jwt.secret_key is empty. Bearer token was not generated.")
		os.Exit(0)
	}
	now := time.Now()
	claims := model.JWTCustomClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   learner.LearnerID.String(),
		Issuer:    config.AppName,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(*tokenTTL)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.SecretKey))
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Printf("Authorization: Bearer %s\n", token)
}
