package httpserver

import "time"

// Config is loaded from the environment with pkg/config.
type Config struct {
	Addr              string        `env:"APP_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Options converts the config into server options.
func (c Config) Options() []Option {
	return []Option{
		WithAddr(c.Addr),
		WithReadHeaderTimeout(c.ReadHeaderTimeout),
		WithTimeouts(c.ReadTimeout, c.WriteTimeout, c.IdleTimeout),
		WithShutdownTimeout(c.ShutdownTimeout),
	}
}
