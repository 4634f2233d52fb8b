package driven

// ConfigStore provides read access to application configuration.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	Set(key string, value any) error
}
