package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Redis struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Static struct {
	BuildDir  string   // SPA shell (index.html lives here)
	PublicDir string   // subject guide folders live under this
	Guides    []string // URL prefixes, one per subject folder
}

type Cache struct {
	GuideTTLSec int
}

type Config struct {
	App    App
	Log    Log
	DB     DB
	Redis  Redis `mapstructure:"redis"`
	Static Static
	Cache  Cache
}

// Load reads the YAML file (optional) with APP_* env overrides, then applies
// the two raw environment knobs the deployment actually sets: DATABASE_URL
// and PORT.
func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			log.Fatalf("read config: %v", err)
		}
		// No file is fine: env-only deployments (Heroku style) set
		// DATABASE_URL and PORT and nothing else.
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		c.DB.DSN = dsn
	}
	if p := os.Getenv("PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			c.App.HTTP.Port = n
		}
	}
	return &c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "stemgurukul-backend")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 3000)
	v.SetDefault("app.http.readtimeoutsec", 15)
	v.SetDefault("app.http.writetimeoutsec", 30)
	v.SetDefault("app.http.idletimeoutsec", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.maxopenconns", 10)
	v.SetDefault("db.maxidleconns", 5)
	v.SetDefault("db.connmaxlifetimemin", 30)
	v.SetDefault("db.automigrate", true)
	v.SetDefault("db.loglevel", "warn")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")

	v.SetDefault("static.builddir", "./build")
	v.SetDefault("static.publicdir", "./public")
	v.SetDefault("static.guides", []string{"maths12-guide", "science12-guide"})

	v.SetDefault("cache.guidettlsec", 300)
}
