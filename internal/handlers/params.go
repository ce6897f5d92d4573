package handlers

import (
	"errors"
	"net/http"

	"card_keep/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// uuidParam は URL パラメータを UUID として取り出します。形式が不正なら 400 になる AppError を返す
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_PATH_PARAMETER", name+"の形式が正しくありません。", name, errors.Join(model.ErrInvalidInput, err))
	}
	return id, nil
}
