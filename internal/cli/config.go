package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/host"
)

// =============================================================================
// Config
// =============================================================================

// Config is the on-disk CLI configuration.
type Config struct {
	// Tour is the tour name used by file, redis, and mongo backends.
	Tour string `toml:"tour"`

	// Backend selects the settings store: memory, file, redis, mongo.
	Backend string `toml:"backend"`

	// ObjectsFile is a JSON snapshot of the container's objects, used to
	// resolve step targets outside a live host.
	ObjectsFile string `toml:"objects_file"`

	Container ContainerConfig `toml:"container"`
	File      FileConfig      `toml:"file"`
	Redis     RedisConfig     `toml:"redis"`
	Mongo     MongoConfig     `toml:"mongo"`
	Serve     ServeConfig     `toml:"serve"`
}

// ContainerConfig sets the overlay container dimensions.
type ContainerConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// FileConfig configures the file backend.
type FileConfig struct {
	// Dir overrides the tour file directory (default ~/.config/spotlight/tours).
	Dir string `toml:"dir"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServeConfig configures the serve command.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Tour:    "default",
		Backend: host.BackendFile,
		Container: ContainerConfig{
			Width:  1280,
			Height: 720,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Mongo: MongoConfig{URI: "mongodb://localhost:27017"},
		Serve: ServeConfig{Addr: "localhost:8473"},
	}
}

// loadConfig reads the config file, falling back to defaults when the
// file does not exist. An explicitly passed path must exist.
func (c *CLI) loadConfig() (Config, error) {
	cfg := defaultConfig()

	path := c.configPath
	explicit := path != ""
	if !explicit {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if c.tourName != "" {
		cfg.Tour = c.tourName
	}
	return cfg, nil
}

// containerRect returns the configured overlay container bounds.
func (cfg Config) containerRect() geom.Rect {
	return geom.Rect{Width: cfg.Container.Width, Height: cfg.Container.Height}
}

// =============================================================================
// Gateway Factory
// =============================================================================

// openStore opens the configured settings backend.
func (c *CLI) openStore(ctx context.Context, cfg Config) (host.SettingsStore, error) {
	switch cfg.Backend {
	case host.BackendMemory, "":
		return host.NewMemoryGateway(), nil
	case host.BackendFile:
		return host.NewFileStore(cfg.File.Dir, cfg.Tour)
	case host.BackendRedis:
		return host.NewRedisStore(ctx, host.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Tour:     cfg.Tour,
		})
	case host.BackendMongo:
		return host.NewMongoStore(ctx, host.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
			Tour:       cfg.Tour,
		})
	default:
		return nil, fmt.Errorf("unknown backend %q (want memory, file, redis, or mongo)", cfg.Backend)
	}
}

// openObjects loads the configured object snapshot. Without an objects
// file, targets resolve against an empty container; every step renders
// without geometry.
func (c *CLI) openObjects(cfg Config) (host.ObjectSource, error) {
	if cfg.ObjectsFile == "" {
		c.Logger.Debug("no objects file configured; targets will not resolve")
		return host.NewObjectMap(nil), nil
	}
	return host.ReadObjectsFile(cfg.ObjectsFile)
}

// openGateway combines the configured store and object snapshot.
func (c *CLI) openGateway(ctx context.Context, cfg Config) (host.Gateway, error) {
	store, err := c.openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	objects, err := c.openObjects(cfg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return host.NewGateway(store, objects), nil
}
