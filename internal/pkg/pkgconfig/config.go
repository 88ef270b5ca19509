package pkgconfig

// Config is the read-only view of application settings.
type Config interface {
	// Get returns the raw value for key, preserving the type it was decoded as.
	Get(key string) any
	GetString(key string) string
	GetBool(key string) bool
	Close() error
}
