package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/philipparndt/gosensors/pkg/bnd"
	"github.com/philipparndt/gosensors/pkg/channels"
	"github.com/philipparndt/gosensors/pkg/geometry"
)

// Layout is a set of positions read from either kind of input file
type Layout struct {
	Points geometry.PointList
	// Unit is the declared unit of a position file, empty for channel files
	Unit     string
	Declared int
	Names    []string
}

// IsChannelFile reports whether path looks like a channel file rather than
// a position file
func IsChannelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// LoadLayout reads a position file or a channel file
func LoadLayout(path string, log *logrus.Entry) (*Layout, error) {
	if IsChannelFile(path) {
		set, err := channels.ReadFile(path)
		if err != nil {
			return nil, err
		}
		layout := &Layout{Points: set.Points(), Declared: len(set.Channels)}
		for _, ch := range set.Channels {
			layout.Names = append(layout.Names, ch.Name)
		}
		return layout, nil
	}

	result, err := bnd.Parse(path)
	if err != nil {
		return nil, err
	}
	logWarnings(log.WithField("input", path), result.Warnings)

	layout := &Layout{
		Points:   result.Points,
		Unit:     result.Unit.String(),
		Declared: result.Declared,
	}
	for i := range result.Points {
		layout.Names = append(layout.Names, channels.ChannelName(i))
	}
	return layout, nil
}
