package config

import (
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxUploadSize is the ceiling for any request body, uploads included.
const MaxUploadSize int64 = 16 << 20

const (
	defaultPort          = 5000
	defaultSessionMaxAge = 24 * 60
)

// WebConfig is the static configuration record of the web server.
type WebConfig struct {
	Listen        string `json:"listen"`
	Domain        string `json:"domain"`
	Port          int    `json:"port"`
	Secret        string `json:"-"`
	UploadFolder  string `json:"uploadFolder"`
	MaxUploadSize int64  `json:"maxUploadSize"`
	SessionMaxAge int    `json:"sessionMaxAge"` // minutes
}

// GetWebConfig assembles the web configuration from the environment.
// An empty Secret is left for the caller to fill in.
func GetWebConfig() (*WebConfig, error) {
	port, err := intEnv("FOLIO_PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	maxAge, err := intEnv("FOLIO_SESSION_MAX_AGE", defaultSessionMaxAge)
	if err != nil {
		return nil, err
	}
	return &WebConfig{
		Listen:        os.Getenv("FOLIO_LISTEN"),
		Domain:        os.Getenv("FOLIO_DOMAIN"),
		Port:          port,
		Secret:        os.Getenv("FOLIO_SECRET"),
		UploadFolder:  GetUploadFolder(),
		MaxUploadSize: MaxUploadSize,
		SessionMaxAge: maxAge,
	}, nil
}

// Validate checks that the record can be used to start the server.
func (c *WebConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Secret, validation.Required, validation.Length(16, 0)),
		validation.Field(&c.UploadFolder, validation.Required),
		validation.Field(&c.MaxUploadSize, validation.Required, validation.Min(int64(1))),
		validation.Field(&c.SessionMaxAge, validation.Required, validation.Min(1)),
	)
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, validation.Errors{key: validation.NewError("validation_is_int", "must be an integer")}
	}
	return n, nil
}
