package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	SearchConsole  SearchConsole  `mapstructure:",squash"`
	Batch          Batch          `mapstructure:",squash"`
	Sink           Sink           `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	ComparisonSync ComparisonSync `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN        string `mapstructure:"-"`
	Driver     string `mapstructure:"database_driver"`
	Password   string `mapstructure:"database_password"`
	URL        string `mapstructure:"database_url"`
	User       string `mapstructure:"database_user"`
	SQLitePath string `mapstructure:"database_sqlite_path"`
}

type SearchConsole struct {
	BaseURL          string        `mapstructure:"search_console_base_url"`
	InspectionURL    string        `mapstructure:"search_console_inspection_url"`
	TokenURL         string        `mapstructure:"search_console_token_url"`
	ClientSecretFile string        `mapstructure:"search_console_client_secret_file"`
	TokenFile        string        `mapstructure:"search_console_token_file"`
	SecretsDir       string        `mapstructure:"search_console_secrets_dir"`
	RequestTimeout   time.Duration `mapstructure:"search_console_request_timeout"`
	RowLimit         int           `mapstructure:"search_console_row_limit"`
	RetentionMonths  int           `mapstructure:"search_console_retention_months"`
	LanguageCode     string        `mapstructure:"search_console_language_code"`
}

type Batch struct {
	RequestDelay    time.Duration `mapstructure:"batch_request_delay"`
	InspectionDelay time.Duration `mapstructure:"batch_inspection_delay"`
	BackoffBase     time.Duration `mapstructure:"batch_backoff_base"`
	BackoffStep     time.Duration `mapstructure:"batch_backoff_step"`
	BackoffMax      time.Duration `mapstructure:"batch_backoff_max"`
	BackoffCycle    int           `mapstructure:"batch_backoff_cycle"`
	ProgressEvery   int           `mapstructure:"batch_progress_every"`
}

type Sink struct {
	Kind      string `mapstructure:"report_sink"`
	OutputDir string `mapstructure:"report_output_dir"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret               string        `mapstructure:"auth_secret"`
	OperatorEmail        string        `mapstructure:"auth_operator_email"`
	OperatorPasswordHash string        `mapstructure:"auth_operator_password_hash"`
	OperatorRoleID       int           `mapstructure:"auth_operator_role_id"`
	TokenTTL             time.Duration `mapstructure:"auth_token_ttl"`
}

type ComparisonSync struct {
	CronSchedule string `mapstructure:"comparison_sync_cron"`
	LookbackDays int    `mapstructure:"comparison_sync_lookback_days"`
	SiteURL      string `mapstructure:"comparison_sync_site_url"`
	InputFile    string `mapstructure:"comparison_sync_input"`
	Enabled      bool   `mapstructure:"comparison_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/search_console?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SQLITE_PATH", "results/reports.db")

	viper.SetDefault("SEARCH_CONSOLE_BASE_URL", "https://www.googleapis.com/webmasters/v3")
	viper.SetDefault("SEARCH_CONSOLE_INSPECTION_URL", "https://searchconsole.googleapis.com/v1/urlInspection/index:inspect")
	viper.SetDefault("SEARCH_CONSOLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("SEARCH_CONSOLE_CLIENT_SECRET_FILE", "client_secret.json")
	viper.SetDefault("SEARCH_CONSOLE_TOKEN_FILE", "token.json")
	viper.SetDefault("SEARCH_CONSOLE_SECRETS_DIR", ".secrets")
	viper.SetDefault("SEARCH_CONSOLE_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("SEARCH_CONSOLE_ROW_LIMIT", 25000)       // Máximo de linhas por consulta
	viper.SetDefault("SEARCH_CONSOLE_RETENTION_MONTHS", 16)   // Janela de dados da Search Analytics
	viper.SetDefault("SEARCH_CONSOLE_LANGUAGE_CODE", "en-US") // Idioma da URL Inspection API

	// Defaults para o processamento em lote
	viper.SetDefault("BATCH_REQUEST_DELAY", "150ms")    // Pausa entre alvos
	viper.SetDefault("BATCH_INSPECTION_DELAY", "150ms") // Pausa entre inspeções de URL
	viper.SetDefault("BATCH_BACKOFF_BASE", "1s")
	viper.SetDefault("BATCH_BACKOFF_STEP", "1500ms")
	viper.SetDefault("BATCH_BACKOFF_MAX", "10s")
	viper.SetDefault("BATCH_BACKOFF_CYCLE", 5)
	viper.SetDefault("BATCH_PROGRESS_EVERY", 25) // Log de progresso a cada 25 alvos

	viper.SetDefault("REPORT_SINK", "csv") // csv, sqlite ou postgres
	viper.SetDefault("REPORT_OUTPUT_DIR", "results")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_OPERATOR_EMAIL", "")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_OPERATOR_ROLE_ID", 1)
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("COMPARISON_SYNC_CRON", "0 6 * * 1") // Toda segunda-feira às 6h da manhã
	viper.SetDefault("COMPARISON_SYNC_LOOKBACK_DAYS", 28) // 28 dias completos até ontem
	viper.SetDefault("COMPARISON_SYNC_SITE_URL", "")
	viper.SetDefault("COMPARISON_SYNC_INPUT", "input/urls.txt")
	viper.SetDefault("COMPARISON_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	// AUTH_SECRET tem precedência sobre SECRET_KEY para assinar os tokens
	if config.Auth.Secret != "" {
		config.SecretKey = config.Auth.Secret
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(cwd, ".secrets", ".env"),   // Pasta de segredos
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Debug("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
