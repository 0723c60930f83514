package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/retailbot-api/internal/domain"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
	RateLimit     RateLimit     `mapstructure:",squash"`
	CORS          CORS          `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Dataset struct {
	// Caminho local ou URL http(s) do arquivo JSON do dataset
	Source string `mapstructure:"dataset_source"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"rate_limit_rps"`
	Burst             int     `mapstructure:"rate_limit_burst"`
	Enabled           bool    `mapstructure:"rate_limit_enabled"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Auth struct {
	TokenTTLHours int `mapstructure:"auth_token_ttl_hours"`

	// Credenciais no formato email:hash_bcrypt:role_id separadas por ponto e
	// vírgula. Montadas em Users pelo NewConfig.
	RawUsers string `mapstructure:"api_users"`

	Users []domain.APIUser `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATASET_SOURCE", "data/sales_data.json")

	// Defaults para recarga periódica do dataset
	viper.SetDefault("DATASET_RELOAD_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)

	viper.SetDefault("RATE_LIMIT_RPS", 5.0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
	viper.SetDefault("RATE_LIMIT_ENABLED", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)
	viper.SetDefault("API_USERS", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Auth.Users = ParseAPIUsers(config.Auth.RawUsers)

	return config, nil
}

// ParseAPIUsers interpreta as credenciais provisionadas por ambiente.
// Entradas fora do formato email:hash_bcrypt:role_id são descartadas com
// aviso no log; o hash bcrypt não contém ':' nem ';'.
func ParseAPIUsers(raw string) []domain.APIUser {
	users := make([]domain.APIUser, 0)

	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			logrus.Warnf("Credencial de API ignorada: formato inválido em %q", entry)
			continue
		}

		roleID, err := strconv.Atoi(parts[2])
		if err != nil || roleID < domain.RoleAdmin || roleID > domain.RoleClient {
			logrus.Warnf("Credencial de API ignorada: role_id inválido em %q", entry)
			continue
		}

		users = append(users, domain.APIUser{
			Email:        strings.ToLower(strings.TrimSpace(parts[0])),
			PasswordHash: parts[1],
			RoleID:       roleID,
		})
	}

	return users
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
