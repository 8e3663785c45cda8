package services

import (
	"discgolf-session-service/internal/domain"
	"fmt"
	"image/color"
	"math"
)

const (
	BullseyeRadiusFeet   = 20.0
	JuicedRatio          = 1.1
	OoofAngleDegrees     = 25.0
	GoodLineAngleDegrees = 5.0
)

// Marker tint palette. Deviation at or under 5 degrees is green, at or over
// 15 degrees is red, and the ramp passes through yellow at 10 degrees.
var (
	LineGreen  = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	LineYellow = color.RGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff}
	LineRed    = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
)

// ThrowMeasurement is everything the classifier needs to judge one throw.
// ThrowDistance and TargetDistance share the session's display unit;
// DistanceToTargetFeet is always in feet.
type ThrowMeasurement struct {
	ThrowBearing         float64
	ReferenceBearing     float64
	ThrowDistance        float64
	TargetDistance       float64
	DistanceToTargetFeet float64
}

// Classification is the feedback for a single throw.
type Classification struct {
	Tags      []domain.Tag
	AngleDiff float64
	LineColor color.RGBA
}

// Has reports whether tag is present.
func (c Classification) Has(tag domain.Tag) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AccuracyClassifier maps a throw's bearing deviation and distance ratio to
// feedback tags and a marker tint.
//
// By default the bearing deviation is the plain absolute difference, so a
// throw at 359 degrees against a 1 degree reference reads as 358 degrees off.
// WrapAngles measures the shorter way around the circle instead.
type AccuracyClassifier struct {
	WrapAngles bool
}

// AngleDiff returns the deviation between two bearings using c's wrap rule.
func (c AccuracyClassifier) AngleDiff(throwBearing, referenceBearing float64) float64 {
	d := math.Abs(throwBearing - referenceBearing)
	if c.WrapAngles {
		d = math.Mod(d, 360)
		d = math.Min(d, 360-d)
	}
	return d
}

// Classify evaluates each tag rule independently. GoodLine and Ooof are
// mutually exclusive; a deviation strictly between 5 and 25 degrees earns
// neither.
func (c AccuracyClassifier) Classify(m ThrowMeasurement) Classification {
	angleDiff := c.AngleDiff(m.ThrowBearing, m.ReferenceBearing)

	tags := make([]domain.Tag, 0, 3)
	if m.DistanceToTargetFeet <= BullseyeRadiusFeet {
		tags = append(tags, domain.TagBullseye)
	}

	if m.ThrowDistance >= m.TargetDistance*JuicedRatio {
		tags = append(tags, domain.TagJuiced)
	}

	if angleDiff > OoofAngleDegrees {
		tags = append(tags, domain.TagOoof)
	} else if angleDiff <= GoodLineAngleDegrees {
		tags = append(tags, domain.TagGoodLine)
	}

	return Classification{
		Tags:      tags,
		AngleDiff: angleDiff,
		LineColor: LineColor(angleDiff),
	}
}

// LineColor maps a bearing deviation to the marker tint.
func LineColor(angleDiff float64) color.RGBA {
	switch {
	case angleDiff <= 5:
		return LineGreen
	case angleDiff >= 15:
		return LineRed
	case angleDiff <= 10:
		return interpolateColor(LineGreen, LineYellow, (angleDiff-5)/5)
	default:
		return interpolateColor(LineYellow, LineRed, (angleDiff-10)/5)
	}
}

// HexColor formats c as "#rrggbb".
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func interpolateColor(from, to color.RGBA, factor float64) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*factor))
	}

	return color.RGBA{
		R: lerp(from.R, to.R),
		G: lerp(from.G, to.G),
		B: lerp(from.B, to.B),
		A: 0xff,
	}
}
