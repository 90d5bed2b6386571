package styling

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/utomato/internal/config"
)

func TestLighten(t *testing.T) {
	grey := colorful.Color{
		R: float64(0x80) / 255.0,
		G: float64(0x80) / 255.0,
		B: float64(0x80) / 255.0,
	}

	{
		testcase := "0% -> no change"
		result := lightenColorfulColor(grey, 0)
		if !result.AlmostEqualRgb(grey) {
			t.Fatalf("colors testcase '%s' failed: %s instead of %s", testcase, result.Hex(), grey.Hex())
		}
	}
	{
		testcase := "100% -> white"
		expected := colorful.Color{R: 1.0, G: 1.0, B: 1.0}
		result := lightenColorfulColor(grey, 100)
		if !result.AlmostEqualRgb(expected) {
			t.Fatalf("colors testcase '%s' failed: %s instead of %s", testcase, result.Hex(), expected.Hex())
		}
	}
	{
		testcase := "75% lighter <=> 50% lighter then 50% lighter again"
		a := lightenColorfulColor(grey, 75)
		b := lightenColorfulColor(lightenColorfulColor(grey, 50), 50)
		if !a.AlmostEqualRgb(b) {
			t.Fatalf("colors testcase '%s' failed: %s != %s (dist: %f)", testcase, a.Hex(), b.Hex(), a.DistanceRgb(b))
		}
	}
}

func TestDarken(t *testing.T) {
	grey := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	black := colorful.Color{}
	if result := darkenColorfulColor(grey, 100); !result.AlmostEqualRgb(black) {
		t.Fatalf("100%% darker is not black but %s", result.Hex())
	}
	if result := darkenColorfulColor(grey, 0); !result.AlmostEqualRgb(grey) {
		t.Fatalf("0%% darker changed color to %s", result.Hex())
	}
}

func TestStyleFromConfig(t *testing.T) {
	style, err := StyleFromConfig(config.Styling{Fg: "#ff0000", Bg: "#000000", Style: &config.FontStyle{Bold: true}})
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}
	fg, bg, attrs := style.AsTcell().Decompose()
	if fg != tcell.NewHexColor(0xff0000) || bg != tcell.NewHexColor(0x000000) {
		t.Error("unexpected colors:", style.ToString())
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("style not bold:", style.ToString())
	}

	t.Run("invalid", func(t *testing.T) {
		for _, c := range []config.Styling{
			{Fg: "red", Bg: "#000000"},
			{Fg: "#000000", Bg: ""},
		} {
			if _, err := StyleFromConfig(c); err == nil {
				t.Errorf("expected error for %+v", c)
			}
		}
	})
}

func TestModifiersCopy(t *testing.T) {
	base, err := StyleFromHex("#ffffff", "#000000")
	if err != nil {
		t.Fatal(err)
	}
	bolded := base.Bolded()
	_, _, attrs := base.AsTcell().Decompose()
	if attrs&tcell.AttrBold != 0 {
		t.Error("Bolded modified the original")
	}
	_, _, attrs = bolded.AsTcell().Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("Bolded did not bold")
	}
	_, _, attrs = bolded.Italicized().AsTcell().Decompose()
	if attrs&tcell.AttrItalic == 0 || attrs&tcell.AttrBold == 0 {
		t.Error("Italicized lost bold or did not italicize")
	}
}

func TestNewStylesheetFromConfig(t *testing.T) {
	sheet, err := NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)
	if err != nil {
		t.Fatal("default stylesheet invalid:", err.Error())
	}
	if sheet.Title == nil || sheet.TimerOverrun == nil || sheet.Editor == nil {
		t.Error("stylesheet has unset styles")
	}

	broken := config.Default(config.Light).Stylesheet
	broken.Timer.Fg = "#nothex"
	if _, err := NewStylesheetFromConfig(broken); err == nil {
		t.Error("expected error for broken timer style")
	}
}
