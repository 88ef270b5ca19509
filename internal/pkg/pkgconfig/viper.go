package pkgconfig

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// Option customizes NewViper.
type Option func(*viper.Viper) error

// WithDefaults registers default values by key.
func WithDefaults(defaults map[string]any) Option {
	return func(v *viper.Viper) error {
		for key, value := range defaults {
			v.SetDefault(key, value)
		}
		return nil
	}
}

// WithEnvPrefix lets PREFIX_SECTION_KEY environment variables override keys
// of the form "section.key".
func WithEnvPrefix(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()
		return nil
	}
}

// WithFlags binds command line flags to keys. Nil flags are skipped.
func WithFlags(flags map[string]*pflag.Flag) Option {
	return func(v *viper.Viper) error {
		for key, flag := range flags {
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return err
			}
		}
		return nil
	}
}

// NewViper builds a Viper-backed Config. When pathFile is not empty the file is
// read and its type inferred from the extension; a missing file is an error.
func NewViper(pathFile string, opts ...Option) (*Viper, error) {
	v := viper.New()

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	if pathFile != "" {
		v.SetConfigFile(pathFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Viper{v: v}, nil
}

// Get returns the value for key as decoded by its source.
func (vc *Viper) Get(key string) any {
	return vc.v.Get(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	// Nothing is watched or held open.
	return nil
}
