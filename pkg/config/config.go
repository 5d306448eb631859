package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP   HTTP
	Logger Logger
	Drafts Drafts
	Assets Assets
	Mailer Mailer
	Kafka  Kafka
	Seller Seller
}

type HTTP struct {
	Port         int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"20s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"20s"`
	// AllowedOrigins limits CORS. Empty allows any origin.
	AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" envDefault:""`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Drafts idle longer than TTL are removed every SweepInterval. A zero TTL keeps drafts forever.
type Drafts struct {
	TTL           time.Duration `env:"DRAFTS_TTL" envDefault:"24h"`
	SweepInterval time.Duration `env:"DRAFTS_SWEEP_INTERVAL" envDefault:"10m"`
}

// Assets are the images printed on every invoice. Empty URLs render without the image.
type Assets struct {
	LogoURL       string        `env:"ASSETS_LOGO_URL" envDefault:"https://i.imghippo.com/files/RfC9405A.jpg"`
	FooterURL     string        `env:"ASSETS_FOOTER_URL" envDefault:"https://i.imghippo.com/files/rtrV3514D.jpg"`
	RetryAttempts int           `env:"ASSETS_RETRY_ATTEMPTS" envDefault:"2"`
	Timeout       time.Duration `env:"ASSETS_TIMEOUT" envDefault:"5s"`
}

// Mailer is disabled while Host is empty.
type Mailer struct {
	Host     string `env:"MAILER_HOST" envDefault:""`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN" envDefault:""`
	Password string `env:"MAILER_PASSWORD" envDefault:""`
	From     string `env:"MAILER_FROM" envDefault:""`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Proforma Invoice"`
}

// Kafka publishing is disabled while Brokers is empty.
type Kafka struct {
	Brokers              []string `env:"KAFKA_BROKERS" envDefault:""`
	InvoiceExportedTopic string   `env:"KAFKA_INVOICE_EXPORTED_TOPIC" envDefault:"invoice_exported"`
}

// Seller overrides the issuer presets of new invoices. Empty values keep the built-in presets.
type Seller struct {
	BankCompanyName string `env:"SELLER_BANK_COMPANY_NAME" envDefault:""`
	BankAccountNo   string `env:"SELLER_BANK_ACCOUNT_NO" envDefault:""`
	BankBranchName  string `env:"SELLER_BANK_BRANCH_NAME" envDefault:""`
	BankIFSCCode    string `env:"SELLER_BANK_IFSC_CODE" envDefault:""`
	TermsPayment    string `env:"SELLER_TERMS_PAYMENT" envDefault:""`
	TermsInsurance  string `env:"SELLER_TERMS_INSURANCE" envDefault:""`
	TermsFreight    string `env:"SELLER_TERMS_FREIGHT" envDefault:""`
	GSTNo           string `env:"SELLER_GST_NO" envDefault:""`
	StateCode       string `env:"SELLER_STATE_CODE" envDefault:""`
	CIN             string `env:"SELLER_CIN" envDefault:""`
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
