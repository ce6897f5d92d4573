// internal/srs/config.go
package srs

import "fmt"

// Config はスケジューラの調整値です。
// 値型として各 Schedule 呼び出しに渡し、実行中に書き換えないこと。
type Config struct {
	LearningSteps      []int   `mapstructure:"learning_steps" json:"learning_steps"`           // 分
	GraduatingInterval int     `mapstructure:"graduating_interval" json:"graduating_interval"` // 日
	EasyInterval       int     `mapstructure:"easy_interval" json:"easy_interval"`             // 日
	StartingEase       float64 `mapstructure:"starting_ease" json:"starting_ease"`
	EasyBonus          float64 `mapstructure:"easy_bonus" json:"easy_bonus"`
	IntervalModifier   float64 `mapstructure:"interval_modifier" json:"interval_modifier"`
	MaxInterval        int     `mapstructure:"max_interval" json:"max_interval"` // 日
	MinEase            float64 `mapstructure:"min_ease" json:"min_ease"`
}

// DefaultConfig は Anki 相当のデフォルト設定を返します。
// 呼び出しごとに新しいスライスを返すので、呼び出し側で変更しても他に影響しない。
func DefaultConfig() Config {
	return Config{
		LearningSteps:      []int{1, 10},
		GraduatingInterval: 1,
		EasyInterval:       4,
		StartingEase:       2.5,
		EasyBonus:          1.3,
		IntervalModifier:   1.0,
		MaxInterval:        36500,
		MinEase:            1.3,
	}
}

// Validate は起動時の設定チェックです。問題があれば ErrConfig をラップして返します。
func (c Config) Validate() error {
	if len(c.LearningSteps) == 0 {
		return fmt.Errorf("%w: learning_steps must not be empty", ErrConfig)
	}
	for i, m := range c.LearningSteps {
		if m <= 0 {
			return fmt.Errorf("%w: learning_steps[%d] = %d must be positive", ErrConfig, i, m)
		}
	}
	if c.MinEase <= 0 {
		return fmt.Errorf("%w: min_ease %v must be positive", ErrConfig, c.MinEase)
	}
	if c.StartingEase < c.MinEase {
		return fmt.Errorf("%w: starting_ease %v is below min_ease %v", ErrConfig, c.StartingEase, c.MinEase)
	}
	if c.MaxInterval <= 0 {
		return fmt.Errorf("%w: max_interval %d must be positive", ErrConfig, c.MaxInterval)
	}
	if c.GraduatingInterval < 0 || c.EasyInterval < 0 {
		return fmt.Errorf("%w: graduating_interval and easy_interval must not be negative", ErrConfig)
	}
	if c.EasyBonus <= 0 || c.IntervalModifier <= 0 {
		return fmt.Errorf("%w: easy_bonus and interval_modifier must be positive", ErrConfig)
	}
	return nil
}
