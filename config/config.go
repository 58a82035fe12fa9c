package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config — конфигурация процесса из переменных окружения.
type Config struct {
	BotToken string `env:"BOT_TOKEN"`

	// WebhookURL — внешний базовый адрес бота. Пусто — длинный опрос,
	// задано — режим вебхука.
	WebhookURL string `env:"WEBHOOK_URL"`
	Port       string `env:"PORT" envDefault:"8080"`

	// DeleteWebhookOnStop — снимать ли регистрацию вебхука при
	// остановке. При частых перезапусках её лучше не трогать.
	DeleteWebhookOnStop bool `env:"WEBHOOK_DELETE_ON_STOP" envDefault:"false"`

	HeroesFile  string `env:"HEROES_FILE" envDefault:"heroes.json"`
	AliasesFile string `env:"ALIASES_FILE"` // пусто — встроенная таблица

	FuzzyThreshold int `env:"FUZZY_THRESHOLD" envDefault:"70"`
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
