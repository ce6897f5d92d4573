// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "card_keep"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultDatabaseDriver  = "postgres"
	DefaultSelectionPolicy = "due_date_priority"
	DefaultAuthEnabled     = true
)
