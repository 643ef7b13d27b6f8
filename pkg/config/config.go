package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
	LiqPay   LiqPay
	// SiteURL is the public URL of the donation site, used to build the
	// default result_url payers are redirected back to.
	SiteURL   string `env:"SITE_URL"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev"`
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	PaymentEventsTopic string   `env:"KAFKA_PAYMENT_EVENTS_TOPIC"`
}

type LiqPay struct {
	APIURL        string `env:"LIQPAY_API_URL" envDefault:"https://www.liqpay.ua"`
	CheckoutJSURL string `env:"LIQPAY_CHECKOUT_JS_URL" envDefault:"https://static.liqpay.ua/libjs/checkout.js"`
	PublicKey     string `env:"LIQPAY_PUBLIC_KEY"`
	PrivateKey    string `env:"LIQPAY_PRIVATE_KEY"` // Secret, never logged
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
