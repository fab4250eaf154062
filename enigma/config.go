package enigma

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/bgallie/enigma/cryptors/stator"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config holds every choice that fixes the behaviour of a machine.  Rotors and
// Positions are listed left to right, the rightmost rotor being the one next
// to the stator.  A ReflectorWiring, when set, replaces the named Reflector.
type Config struct {
	Rotors          []string `yaml:"rotors" validate:"required,min=1,dive,required"`
	Positions       string   `yaml:"positions" validate:"required,alpha"`
	Reflector       string   `yaml:"reflector" validate:"required_without=ReflectorWiring"`
	ReflectorWiring string   `yaml:"reflectorWiring,omitempty"`
	Stator          string   `yaml:"stator" validate:"required"`
	Plugboard       string   `yaml:"plugboard,omitempty"`
}

// DefaultConfig returns rotors I, II and III at AAA with reflector B, the army
// stator and an empty plugboard.
func DefaultConfig() Config {
	return Config{
		Rotors:    []string{"I", "II", "III"},
		Positions: "AAA",
		Reflector: "B",
		Stator:    "army",
	}
}

// Validate reports whether a machine can be assembled from c.  Any error is a
// *cryptors.ConfigurationError.
func (c Config) Validate() error {
	_, err := assemble(c.clone())
	return err
}

// clone copies Rotors, keeping a nil slice nil and an empty one empty.
func (c Config) clone() Config {
	if c.Rotors != nil {
		c.Rotors = append(make([]string, 0, len(c.Rotors)), c.Rotors...)
	}
	return c
}

func (c Config) String() string {
	reflector := c.Reflector
	if c.ReflectorWiring != "" {
		reflector = "custom:" + strings.ToUpper(c.ReflectorWiring)
	}
	return fmt.Sprintf("rotors=%s positions=%s reflector=%s stator=%s plugboard=%q",
		strings.Join(c.Rotors, ","), strings.ToUpper(c.Positions), reflector, c.Stator, c.Plugboard)
}

func checkShape(c Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	setting := strings.ToLower(e.Field())
	if i := strings.IndexByte(setting, '['); i >= 0 {
		setting = setting[:i]
	}
	value := fmt.Sprint(e.Value())
	switch e.Tag() {
	case "required", "required_without":
		return cryptors.NewConfigurationError(setting, value, "value is required")
	case "min":
		return cryptors.NewConfigurationError(setting, value, "must have at least %s entries", e.Param())
	case "alpha":
		return cryptors.NewConfigurationError(setting, value, "must contain only letters")
	default:
		return cryptors.NewConfigurationError(setting, value, "validation failed (%s)", e.Tag())
	}
}

// Catalog lists the component identifiers a Config may name.
type Catalog struct {
	Rotors     []string
	Reflectors []string
	Stators    []string
}

func Components() Catalog {
	return Catalog{
		Rotors:     rotor.Names(),
		Reflectors: reflector.Names(),
		Stators:    stator.Names(),
	}
}

// LoadKeySheet reads a YAML key sheet.  Settings missing from the sheet keep
// their DefaultConfig values.
func LoadKeySheet(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("read key sheet: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteKeySheet writes c as a YAML key sheet that LoadKeySheet and the
// command line --config flag both accept.
func (c Config) WriteKeySheet(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("write key sheet: %w", err)
	}
	return enc.Close()
}
