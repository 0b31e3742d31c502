package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// App holds the runtime settings. Every field has a default, so the program
// runs without a config file or environment.
type App struct {
	ProductsFile   string
	SnapshotFile   string
	CatalogLimit   int
	LedgerLimit    int
	RestoreRentals bool
	ReserveStock   bool
	CurrencySymbol string
	Log            Log
	Mirror         Mirror
}

type Log struct {
	Level  string
	Format string
}

type Mirror struct {
	PostgresURL string
	RedisAddr   string
	RedisKey    string
}

const (
	envPrefix         = "INVENTORY"
	defaultConfigFile = "inventory.yaml"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("products_file", "inventory.txt")
	v.SetDefault("snapshot_file", "inventory.json")
	v.SetDefault("catalog.capacity", 100)
	v.SetDefault("ledger.capacity", 100)
	v.SetDefault("restore_rentals", false)
	v.SetDefault("rentals.reserve_stock", false)
	v.SetDefault("currency_symbol", "₹")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("mirror.postgres_url", "")
	v.SetDefault("mirror.redis_addr", "")
	v.SetDefault("mirror.redis_key", "inventory:snapshot")
}

// Load reads inventory.yaml from the working directory when present and
// applies INVENTORY_* environment overrides, e.g. INVENTORY_CATALOG_CAPACITY.
// The file is named exactly: a name-only lookup would also match the
// inventory.json snapshot.
func Load() (App, error) {
	v := viper.New()
	v.SetConfigFile(defaultConfigFile)
	return load(v, true)
}

// LoadFile is Load with an explicit config file path, which must exist.
func LoadFile(path string) (App, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v, false)
}

func load(v *viper.Viper, optional bool) (App, error) {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !optional || !missing {
			return App{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := App{
		ProductsFile:   v.GetString("products_file"),
		SnapshotFile:   v.GetString("snapshot_file"),
		CatalogLimit:   v.GetInt("catalog.capacity"),
		LedgerLimit:    v.GetInt("ledger.capacity"),
		RestoreRentals: v.GetBool("restore_rentals"),
		ReserveStock:   v.GetBool("rentals.reserve_stock"),
		CurrencySymbol: v.GetString("currency_symbol"),
		Log: Log{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Mirror: Mirror{
			PostgresURL: v.GetString("mirror.postgres_url"),
			RedisAddr:   v.GetString("mirror.redis_addr"),
			RedisKey:    v.GetString("mirror.redis_key"),
		},
	}
	return cfg, cfg.validate()
}

func (c App) validate() error {
	if c.ProductsFile == "" || c.SnapshotFile == "" {
		return errors.New("products_file and snapshot_file must be set")
	}
	if c.ProductsFile == c.SnapshotFile {
		return fmt.Errorf("products_file and snapshot_file both point to %s", c.ProductsFile)
	}
	return nil
}
