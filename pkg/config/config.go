package config

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the process-wide configuration. It is loaded once at
// startup and passed into the container; nothing re-reads the
// environment per request.
type Config struct {
	Port string `env:"PORT,default=8080"`

	// Either a full connection string, or credentials + cluster from
	// which one is assembled (Atlas style).
	MongoURI      string `env:"MONGO_URI"`
	MongoUser     string `env:"MONGO_USER,default=JobPortal"`
	MongoPassword string `env:"MONGO_PASSWORD"`
	MongoCluster  string `env:"MONGO_CLUSTER,default=jobportal.vrdkavz.mongodb.net"`
	MongoDatabase string `env:"MONGO_DATABASE,default=job_portal"`

	AdminUsername string `env:"ADMIN_USERNAME,default=admin"`
	AdminPassword string `env:"ADMIN_PASSWORD,default=admin123"`

	SecretKey string        `env:"SECRET_KEY,default=dev-secret-key"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,default=24h"`

	UploadDir        string `env:"UPLOAD_DIR,default=uploads/resumes"`
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS,default=*"`
}

// Load returns a Config populated from environment variables.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConnectionString returns MONGO_URI when set, otherwise assembles an
// Atlas SRV URI with the credentials percent-encoded.
func (c Config) ConnectionString() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/%s?retryWrites=true&w=majority",
		url.QueryEscape(c.MongoUser),
		url.QueryEscape(c.MongoPassword),
		c.MongoCluster,
		c.MongoDatabase,
	)
}
