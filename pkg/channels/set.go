// Package channels builds and stores EEG channel descriptions: one channel
// per sensor position, in position order.
package channels

import (
	"fmt"

	"github.com/philipparndt/gosensors/pkg/errkind"
	"github.com/philipparndt/gosensors/pkg/geometry"
	"github.com/philipparndt/gosensors/pkg/transform"
)

const (
	KindEEG       = "EEG"
	CoilEEG       = "EEG"
	FrameHead     = "head"
	UnitMeter     = "m"
	channelPrefix = "EEG"
)

// Channel describes one EEG electrode
type Channel struct {
	Index    int        `yaml:"index" json:"index"`
	Name     string     `yaml:"name" json:"name"`
	Kind     string     `yaml:"kind" json:"kind"`
	CoilType string     `yaml:"coil_type" json:"coil_type"`
	Location [3]float64 `yaml:"location,flow" json:"location"`
}

// Set is a channel file. Transform records the head transform that has been
// applied to the locations, as 4 rows of 4 values.
type Set struct {
	Source     string      `yaml:"source,omitempty" json:"source,omitempty"`
	CoordFrame string      `yaml:"coord_frame" json:"coord_frame"`
	Unit       string      `yaml:"unit" json:"unit"`
	Transform  [][]float64 `yaml:"transform,flow" json:"transform"`
	Channels   []Channel   `yaml:"channels" json:"channels"`
}

// ChannelName returns the name of the channel at a 0-based index
func ChannelName(index int) string {
	return fmt.Sprintf("%s %03d", channelPrefix, index+1)
}

// FromPoints creates one channel per point. applied is the transform the
// points have already been through.
func FromPoints(source string, points geometry.PointList, applied transform.Affine) *Set {
	set := &Set{
		Source:     source,
		CoordFrame: FrameHead,
		Unit:       UnitMeter,
		Channels:   make([]Channel, 0, len(points)),
	}
	set.SetTransform(applied)
	for i, p := range points {
		set.Channels = append(set.Channels, Channel{
			Index:    i + 1,
			Name:     ChannelName(i),
			Kind:     KindEEG,
			CoilType: CoilEEG,
			Location: p.Array(),
		})
	}
	return set
}

// Points returns the channel locations in channel order
func (s *Set) Points() geometry.PointList {
	points := make(geometry.PointList, len(s.Channels))
	for i, ch := range s.Channels {
		points[i] = geometry.NewVector3(ch.Location[0], ch.Location[1], ch.Location[2])
	}
	return points
}

// SetPoints replaces the channel locations. Names and order are kept.
func (s *Set) SetPoints(points geometry.PointList) error {
	if len(points) != len(s.Channels) {
		return fmt.Errorf("got %d locations for %d channels", len(points), len(s.Channels))
	}
	for i, p := range points {
		s.Channels[i].Location = p.Array()
	}
	return nil
}

// SetTransform records the applied transform
func (s *Set) SetTransform(a transform.Affine) {
	rows := a.Rows()
	s.Transform = make([][]float64, 4)
	for i := range rows {
		s.Transform[i] = append([]float64(nil), rows[i][:]...)
	}
}

// Affine returns the recorded transform. A set without one is untransformed.
func (s *Set) Affine() (transform.Affine, error) {
	if len(s.Transform) == 0 {
		return transform.Identity(), nil
	}
	if len(s.Transform) != 4 {
		return transform.Affine{}, errkind.New(errkind.SinkFormat, "transform must have 4 rows, got %d", len(s.Transform))
	}
	var rows [4][4]float64
	for i, row := range s.Transform {
		if len(row) != 4 {
			return transform.Affine{}, errkind.New(errkind.SinkFormat, "transform row %d must have 4 values, got %d", i+1, len(row))
		}
		copy(rows[i][:], row)
	}
	return transform.NewAffine(rows), nil
}

// Validate checks what a reader of the set relies on
func (s *Set) Validate() error {
	if s.Unit != "" && s.Unit != UnitMeter {
		return errkind.New(errkind.SinkFormat, "unsupported unit %q", s.Unit)
	}
	seen := make(map[string]bool, len(s.Channels))
	for _, ch := range s.Channels {
		if ch.Name == "" {
			return errkind.New(errkind.SinkFormat, "channel %d has no name", ch.Index)
		}
		if seen[ch.Name] {
			return errkind.New(errkind.SinkFormat, "duplicate channel %q", ch.Name)
		}
		seen[ch.Name] = true
	}
	_, err := s.Affine()
	return err
}
