package log

// Config holds logger settings consumed by cmd on startup.
type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
}
