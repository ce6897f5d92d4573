// internal/srs/errors.go
package srs

import "errors"

// スケジューラのエラー。errors.Is で判定する。
var (
	ErrInvalidRating = errors.New("srs: invalid rating")
	ErrConfig        = errors.New("srs: invalid configuration")
)
