package simulation

import "testing"

func TestLevelBand(t *testing.T) {
	cases := map[float64]string{100: LevelOptimal, 70.1: LevelOptimal, 70: LevelMedium, 31: LevelMedium, 30: LevelLow, 0: LevelLow}
	for in, want := range cases {
		if got := LevelBand(in); got != want {
			t.Errorf("LevelBand(%v)=%q, want %q", in, got, want)
		}
	}
}

func TestActivityBand(t *testing.T) {
	cases := map[float64]string{90: ActivityHigh, 55: ActivityNormal, 25: ActivityLow, 20: ActivityVeryLow}
	for in, want := range cases {
		if got := ActivityBand(in); got != want {
			t.Errorf("ActivityBand(%v)=%q, want %q", in, got, want)
		}
	}
}

func TestTrendOf(t *testing.T) {
	if tr := TrendOf(23.6, 23.5); tr.Direction != TrendNeutral || tr.Percent != 0 {
		t.Fatalf("small change should be neutral, got %+v", tr)
	}
	if tr := TrendOf(26, 23.5); tr.Direction != TrendUp || tr.Percent != 10.6 {
		t.Fatalf("want +10.6, got %+v", tr)
	}
	if tr := TrendOf(60, 72); tr.Direction != TrendDown || tr.Percent != -16.7 {
		t.Fatalf("want -16.7, got %+v", tr)
	}
	if tr := TrendOf(5, 0); tr.Direction != TrendNeutral {
		t.Fatalf("zero reference should be neutral, got %+v", tr)
	}
}
