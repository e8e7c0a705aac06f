package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":3002"`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
}

// Pricing holds the checkout policy knobs. Defaults mirror the storefront's
// advertised policy: free shipping at $100, flat $10 fee, 8% tax.
type Pricing struct {
	FreeShippingThreshold float64 `yaml:"FREE_SHIPPING_THRESHOLD" env:"FREE_SHIPPING_THRESHOLD" env-default:"100"`
	ShippingFee           float64 `yaml:"SHIPPING_FEE" env:"SHIPPING_FEE" env-default:"10"`
	TaxRate               float64 `yaml:"TAX_RATE" env:"TAX_RATE" env-default:"0.08"`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-required:"true"`
	UsersFile  string `yaml:"users_file" env:"USERS_FILE" env-default:"users.json"`
	HTTPServer `yaml:"http_server"`
	Security   Security `yaml:"security"`
	Pricing    Pricing  `yaml:"pricing"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}
