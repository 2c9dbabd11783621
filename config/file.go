package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rastvo/asmexport/utils"
)

type fileOverrides struct {
	LinearTolerance  float32   `yaml:"linear_tolerance"`
	AngularTolerance float32   `yaml:"angular_tolerance"`
	ImageWidth       int       `yaml:"image_width"`
	ImageHeight      int       `yaml:"image_height"`
	Background       []float32 `yaml:"background"`
	Debug            bool      `yaml:"debug"`
}

// LoadFile applies overrides from a yaml file. Zero-valued fields keep
// the current setting.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "Cannot read config %q", path)
	}

	var o fileOverrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return errors.Wrapf(err, "Cannot parse config %q", path)
	}

	SetLinearTolerance(o.LinearTolerance)
	SetAngularTolerance(o.AngularTolerance)
	SetImageSize(o.ImageWidth, o.ImageHeight)
	switch len(o.Background) {
	case 0:
	case 3, 4:
		SetBackground(utils.NewColorFloatSlice(o.Background))
	default:
		return errors.Errorf("Config %q: background needs 3 or 4 components, got %d", path, len(o.Background))
	}
	if o.Debug {
		SetDebug(true)
	}
	return nil
}
