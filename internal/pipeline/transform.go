package pipeline

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/philipparndt/gosensors/pkg/channels"
	"github.com/philipparndt/gosensors/pkg/transform"
)

// TransformOptions configures Transform
type TransformOptions struct {
	Input     string
	Output    string
	Transform string
}

// Validate rejects options before any file is touched
func (o TransformOptions) Validate() error {
	if o.Input == "" || o.Output == "" || o.Transform == "" {
		return errors.New("input, output and transformation files are required")
	}
	return nil
}

// Transform moves the channels of a channel file. The transform is loaded
// first so a malformed transform file leaves no output behind.
func Transform(opts TransformOptions, log *logrus.Entry) (*channels.Set, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log = log.WithField("input", opts.Input)

	affine, err := transform.LoadFile(opts.Transform)
	if err != nil {
		return nil, err
	}
	log.WithField("transform", opts.Transform).Debugf("transformation:\n%v", affine)

	set, err := channels.ReadFile(opts.Input)
	if err != nil {
		return nil, err
	}
	previous, err := set.Affine()
	if err != nil {
		return nil, err
	}
	log.WithField("channels", len(set.Channels)).Info("read channels")

	if err := set.SetPoints(transform.Apply(set.Points(), affine)); err != nil {
		return nil, err
	}
	set.SetTransform(affine.Mul(previous))

	if err := channels.WriteFile(opts.Output, set); err != nil {
		return nil, err
	}
	log.WithField("output", opts.Output).Info("wrote channels")
	return set, nil
}
