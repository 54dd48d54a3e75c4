package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogFile           string
	DatabaseURL       string
	PayslipDir        string
	DataEncryptionKey string
	Environment       string
	LogLevel          string
}

// Keys double as flag names; environment variables use the upper-cased,
// underscored form (ACTION_LOG_FILE, DATABASE_URL, ...).
const (
	KeyLogFile           = "action-log-file"
	KeyDatabaseURL       = "database-url"
	KeyPayslipDir        = "payslip-dir"
	KeyDataEncryptionKey = "data-encryption-key"
	KeyEnvironment       = "app-env"
	KeyLogLevel          = "log-level"
)

var defaults = map[string]string{
	KeyLogFile:           "employee_log.txt",
	KeyDatabaseURL:       "",
	KeyPayslipDir:        "storage/payslips",
	KeyDataEncryptionKey: "",
	KeyEnvironment:       "development",
	KeyLogLevel:          "info",
}

var usage = map[string]string{
	KeyLogFile:           "file the action log is appended to",
	KeyDatabaseURL:       "PostgreSQL URL; when set, actions are also recorded in the employee_actions table",
	KeyPayslipDir:        "directory payslip PDFs are written to",
	KeyDataEncryptionKey: "32-byte key (raw, hex or base64) used to encrypt payslips at rest",
	KeyEnvironment:       "deployment environment (development, test, production)",
	KeyLogLevel:          "log level (debug, info, warn, error)",
}

// RegisterFlags declares one string flag per key with its default.
func RegisterFlags(flags *pflag.FlagSet) {
	for _, key := range keys() {
		flags.String(key, defaults[key], usage[key])
	}
}

// NewViper binds env and, when flags is non-nil, the flags registered by
// RegisterFlags. Flags that were set explicitly win over the environment.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range keys() {
		v.SetDefault(key, defaults[key])
	}
	v.AutomaticEnv()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func Load(v *viper.Viper) Config {
	return Config{
		LogFile:           v.GetString(KeyLogFile),
		DatabaseURL:       v.GetString(KeyDatabaseURL),
		PayslipDir:        v.GetString(KeyPayslipDir),
		DataEncryptionKey: v.GetString(KeyDataEncryptionKey),
		Environment:       v.GetString(KeyEnvironment),
		LogLevel:          v.GetString(KeyLogLevel),
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.LogFile) == "" {
		return fmt.Errorf("ACTION_LOG_FILE must not be empty")
	}
	if strings.TrimSpace(c.PayslipDir) == "" {
		return fmt.Errorf("PAYSLIP_DIR must not be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required in production so actions are recorded durably")
		}
		if strings.TrimSpace(c.DataEncryptionKey) == "" {
			return fmt.Errorf("DATA_ENCRYPTION_KEY must be set in production for payslip encryption at rest")
		}
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return level, nil
}

func keys() []string {
	return []string{KeyLogFile, KeyDatabaseURL, KeyPayslipDir, KeyDataEncryptionKey, KeyEnvironment, KeyLogLevel}
}
