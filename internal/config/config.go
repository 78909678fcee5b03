package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	HierarchySync  HierarchySync  `mapstructure:",squash"`
	SpendIngestion SpendIngestion `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AppID       string `mapstructure:"meta_app_id"`
	AppSecret   string `mapstructure:"meta_app_secret"`
	RedirectURI string `mapstructure:"meta_redirect_uri"`
	PageLimit   int    `mapstructure:"meta_page_limit"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// HierarchySync configura a sincronização hierárquica periódica
// (campanha -> conjunto -> anúncio) de todas as contas ativas.
type HierarchySync struct {
	CronSchedule          string `mapstructure:"hierarchy_sync_cron"`
	MaxConcurrentAccounts int    `mapstructure:"hierarchy_sync_max_concurrent_accounts"`
	Enabled               bool   `mapstructure:"hierarchy_sync_enabled"`
	SyncUserID            string `mapstructure:"hierarchy_sync_user_id"`
}

// SpendIngestion configura o job de ingestão de snapshots diários de gasto.
// Provider aceita "meta" (insights reais) ou "synthetic" (gerador para
// ambientes sem credenciais).
type SpendIngestion struct {
	CronSchedule string `mapstructure:"spend_ingestion_cron"`
	Enabled      bool   `mapstructure:"spend_ingestion_enabled"`
	Provider     string `mapstructure:"spend_ingestion_provider"`
	Currency     string `mapstructure:"spend_ingestion_currency"`
	SyncUserID   string `mapstructure:"spend_ingestion_sync_user_id"`
}

const (
	ProviderMeta      = "meta"
	ProviderSynthetic = "synthetic"
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ad_intelligence")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_REDIRECT_URI", "http://localhost:3000/meta/callback")
	viper.SetDefault("META_PAGE_LIMIT", 50)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Defaults para sincronização hierárquica
	viper.SetDefault("HIERARCHY_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("HIERARCHY_SYNC_MAX_CONCURRENT_ACCOUNTS", 3)
	viper.SetDefault("HIERARCHY_SYNC_ENABLED", false)
	viper.SetDefault("HIERARCHY_SYNC_USER_ID", "")

	// Defaults para ingestão de snapshots de gasto
	viper.SetDefault("SPEND_INGESTION_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("SPEND_INGESTION_ENABLED", false)
	viper.SetDefault("SPEND_INGESTION_PROVIDER", ProviderSynthetic)
	viper.SetDefault("SPEND_INGESTION_CURRENCY", "BRL")
	viper.SetDefault("SPEND_INGESTION_SYNC_USER_ID", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
