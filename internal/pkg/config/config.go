package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	CORS     CORSConfig
	Log      LogConfig
	Auth     AuthConfig
	Calendar CalendarConfig
	Shop     ShopConfig
	Reminder ReminderConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	Dir              string `envconfig:"STORE_DIR" default:"./data"`
	AppointmentsFile string `envconfig:"STORE_APPOINTMENTS_FILE" default:"appointments.json"`
	BreaksFile       string `envconfig:"STORE_BREAKS_FILE" default:"breaks.json"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Jerusalem"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type AuthConfig struct {
	// One of AdminPasswordHash (bcrypt) or AdminPassword must be set.
	// A plaintext AdminPassword is hashed at boot; intended for local setups.
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
	AdminPassword     string `envconfig:"ADMIN_PASSWORD"`
	JWTSecret         string `envconfig:"JWT_SECRET" required:"true"`
	TokenDuration     string `envconfig:"AUTH_TOKEN_DURATION" default:"12h"`
}

type CalendarConfig struct {
	Enabled      bool          `envconfig:"GOOGLE_CALENDAR_ENABLED" default:"false"`
	ClientID     string        `envconfig:"GOOGLE_CLIENT_ID"`
	ClientSecret string        `envconfig:"GOOGLE_CLIENT_SECRET"`
	RefreshToken string        `envconfig:"GOOGLE_REFRESH_TOKEN"`
	CalendarID   string        `envconfig:"GOOGLE_CALENDAR_ID" default:"primary"`
	Timeout      time.Duration `envconfig:"GOOGLE_CALENDAR_TIMEOUT" default:"3s"`
}

type ShopConfig struct {
	Name       string `envconfig:"SHOP_NAME" default:"מספרת 360 מעלות"`
	Address    string `envconfig:"SHOP_ADDRESS" default:"ויצמן 1, כפר סבא"`
	Phone      string `envconfig:"SHOP_PHONE" default:"053-5594136"`
	OwnerPhone string `envconfig:"OWNER_PHONE" default:"972535594136"`
	TimeZone   string `envconfig:"SHOP_TIMEZONE" default:"Asia/Jerusalem"`
}

type ReminderConfig struct {
	Enabled  bool          `envconfig:"REMINDER_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"REMINDER_INTERVAL" default:"1m"`
	Window   time.Duration `envconfig:"REMINDER_WINDOW" default:"30m"`
}

func (c *StoreConfig) AppointmentsPath() string {
	return filepath.Join(c.Dir, c.AppointmentsFile)
}

func (c *StoreConfig) BreaksPath() string {
	return filepath.Join(c.Dir, c.BreaksFile)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Dir:              "./testdata",
			AppointmentsFile: "appointments.json",
			BreaksFile:       "breaks.json",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Jerusalem",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		Auth: AuthConfig{
			AdminPassword: "360admin",
			JWTSecret:     "test-secret",
			TokenDuration: "1h",
		},
		Shop: ShopConfig{
			Name:       "מספרת 360 מעלות",
			Address:    "ויצמן 1, כפר סבא",
			Phone:      "053-5594136",
			OwnerPhone: "972535594136",
			TimeZone:   "Asia/Jerusalem",
		},
		Reminder: ReminderConfig{
			Enabled:  false,
			Interval: time.Minute,
			Window:   30 * time.Minute,
		},
	}
}
