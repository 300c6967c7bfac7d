package logo

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"logo-studio/render"
)

func TestSaveDataRoundTrip(t *testing.T) {
	sv := SaveData{
		MajorVersion: SaveDataMajorVersion,
		MinorVersion: SaveDataMinorVersion,

		Options: Options{
			TargetFPS:       120,
			Checkerboard:    false,
			AutoSaveSession: true,
		},

		Design: render.Design{
			Text:     "Hello",
			FontName: "Default",
			FontSize: 96,

			TextPaint:       render.GradientPaint("#FF0000", "#0000FF", render.AxisVertical),
			BackgroundPaint: render.SolidPaint("#FFFFFF"),

			Enable3D: true,
			Depth:    7,

			Width:  800,
			Height: 600,
		},
	}

	data, err := EncodeSaveData(sv)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	decoded, err := DecodeSaveData(data)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if diff := cmp.Diff(sv, decoded); diff != "" {
		t.Errorf("save data changed through round trip:\n%s", diff)
	}
}

func TestDecodeSaveDataRejectsNewerVersion(t *testing.T) {
	sv := SaveData{
		MajorVersion: SaveDataMajorVersion + 1,

		Options: DefaultOptions,
		Design:  render.DefaultDesign(),
	}

	data, err := EncodeSaveData(sv)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	if _, err := DecodeSaveData(data); err == nil {
		t.Errorf("expected newer major version to be rejected")
	}
}

func TestDecodeSaveDataRejectsInvalidDesign(t *testing.T) {
	sv := SaveData{
		MajorVersion: SaveDataMajorVersion,

		Options: DefaultOptions,
		Design:  render.DefaultDesign(),
	}

	sv.Design.Width = 1 // below the canvas minimum

	data, err := EncodeSaveData(sv)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	if _, err := DecodeSaveData(data); err == nil {
		t.Errorf("expected invalid design to be rejected")
	}
}

func TestDecodeSaveDataClampsOptions(t *testing.T) {
	tests := []struct {
		name    string
		fps     int32
		wantFPS int32
	}{
		{"zero fps", 0, MinTargetFPS},
		{"negative fps", -5, MinTargetFPS},
		{"absurd fps", 100000, MaxTargetFPS},
		{"valid fps", 60, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sv := SaveData{
				MajorVersion: SaveDataMajorVersion,

				Options: DefaultOptions,
				Design:  render.DefaultDesign(),
			}

			sv.Options.TargetFPS = tt.fps

			data, err := EncodeSaveData(sv)
			if err != nil {
				t.Fatalf("failed to encode: %v", err)
			}

			decoded, err := DecodeSaveData(data)
			if err != nil {
				t.Fatalf("failed to decode: %v", err)
			}

			if decoded.Options.TargetFPS != tt.wantFPS {
				t.Errorf("TargetFPS = %d, want %d", decoded.Options.TargetFPS, tt.wantFPS)
			}
		})
	}
}

func TestDecodeSaveDataRejectsGarbage(t *testing.T) {
	if _, err := DecodeSaveData([]byte("not json at all")); err == nil {
		t.Errorf("expected garbage input to be rejected")
	}
}
