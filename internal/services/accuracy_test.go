package services

import (
	"discgolf-session-service/internal/domain"
	"testing"
)

func TestClassifyBullseyeAndGoodLine(t *testing.T) {
	c := AccuracyClassifier{}

	got := c.Classify(ThrowMeasurement{
		ThrowBearing:         90,
		ReferenceBearing:     90,
		ThrowDistance:        300,
		TargetDistance:       300,
		DistanceToTargetFeet: 10,
	})

	if len(got.Tags) != 2 || !got.Has(domain.TagBullseye) || !got.Has(domain.TagGoodLine) {
		t.Fatalf("tags = %v, want [Bullseye GoodLine]", got.Tags)
	}
	if got.LineColor != LineGreen {
		t.Fatalf("line color = %s, want green", HexColor(got.LineColor))
	}
}

func TestClassifyOoofExcludesGoodLine(t *testing.T) {
	c := AccuracyClassifier{}

	got := c.Classify(ThrowMeasurement{
		ThrowBearing:         120,
		ReferenceBearing:     90,
		ThrowDistance:        200,
		TargetDistance:       300,
		DistanceToTargetFeet: 150,
	})

	if !got.Has(domain.TagOoof) {
		t.Fatalf("tags = %v, want Ooof", got.Tags)
	}
	if got.Has(domain.TagGoodLine) {
		t.Fatalf("tags = %v, GoodLine must not accompany Ooof", got.Tags)
	}
	if got.LineColor != LineRed {
		t.Fatalf("line color = %s, want red", HexColor(got.LineColor))
	}
}

func TestClassifyJuiced(t *testing.T) {
	c := AccuracyClassifier{}

	got := c.Classify(ThrowMeasurement{
		ThrowBearing:         100,
		ReferenceBearing:     90,
		ThrowDistance:        331,
		TargetDistance:       300,
		DistanceToTargetFeet: 40,
	})

	if len(got.Tags) != 1 || got.Tags[0] != domain.TagJuiced {
		t.Fatalf("tags = %v, want [Juiced]", got.Tags)
	}

	short := c.Classify(ThrowMeasurement{ThrowDistance: 329, TargetDistance: 300, DistanceToTargetFeet: 40})
	if short.Has(domain.TagJuiced) {
		t.Fatalf("329/300 should not be juiced")
	}
}

func TestClassifyMiddleBandHasNoLineTag(t *testing.T) {
	c := AccuracyClassifier{}

	for _, diff := range []float64{5.5, 12, 25} {
		got := c.Classify(ThrowMeasurement{
			ThrowBearing:         90 + diff,
			ReferenceBearing:     90,
			ThrowDistance:        100,
			TargetDistance:       300,
			DistanceToTargetFeet: 200,
		})
		if len(got.Tags) != 0 {
			t.Errorf("diff %v: tags = %v, want none", diff, got.Tags)
		}
	}
}

func TestAngleDiffNaiveAndWrapped(t *testing.T) {
	naive := AccuracyClassifier{}
	if got := naive.AngleDiff(359, 1); got != 358 {
		t.Fatalf("naive AngleDiff(359, 1) = %v, want 358", got)
	}

	wrapped := AccuracyClassifier{WrapAngles: true}
	if got := wrapped.AngleDiff(359, 1); got != 2 {
		t.Fatalf("wrapped AngleDiff(359, 1) = %v, want 2", got)
	}
	if got := wrapped.AngleDiff(10, 40); got != 30 {
		t.Fatalf("wrapped AngleDiff(10, 40) = %v, want 30", got)
	}
}

func TestLineColorRamp(t *testing.T) {
	cases := []struct {
		diff float64
		want string
	}{
		{0, "#2ecc71"},
		{5, "#2ecc71"},
		{10, "#f1c40f"},
		{15, "#e74c3c"},
		{40, "#e74c3c"},
		{7.5, "#90c840"},
		{12.5, "#ec8826"},
	}

	for _, c := range cases {
		if got := HexColor(LineColor(c.diff)); got != c.want {
			t.Errorf("LineColor(%v) = %s, want %s", c.diff, got, c.want)
		}
	}
}
