package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins          []string      `mapstructure:"ALLOWED_ORIGINS"`
	HTTPServerAddress       string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSecretKey          string        `mapstructure:"TOKEN_SECRET_KEY"`
	AccessTokenDuration     time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	FirebaseCredentialsFile string        `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	RedisServerAddress      string        `mapstructure:"REDIS_SERVER_ADDRESS"`
	CloudinaryURL           string        `mapstructure:"CLOUDINARY_URL"`
	GmailSMTPUsername       string        `mapstructure:"GMAIL_SMTP_USERNAME"`
	GmailSMTPPassword       string        `mapstructure:"GMAIL_SMTP_PASSWORD"`
	SMSRelayURL             string        `mapstructure:"SMS_RELAY_URL"`
	SMSRelayAPIKey          string        `mapstructure:"SMS_RELAY_API_KEY"`
	DiscordBotToken         string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordOpsChannelID     string        `mapstructure:"DISCORD_OPS_CHANNEL_ID"`
	ReminderLeadTime        time.Duration `mapstructure:"REMINDER_LEAD_TIME"`
	NotificationPageSize    int           `mapstructure:"NOTIFICATION_PAGE_SIZE"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("ACCESS_TOKEN_DURATION", "24h")
	viper.SetDefault("REMINDER_LEAD_TIME", "24h")
	viper.SetDefault("NOTIFICATION_PAGE_SIZE", 50)

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.TokenSecretKey == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY is required")
	}
	if config.FirebaseCredentialsFile == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_FILE is required")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}
	if config.CloudinaryURL == "" {
		return fmt.Errorf("CLOUDINARY_URL is required")
	}

	return nil
}
