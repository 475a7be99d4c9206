package sct

import "testing"

func TestClassifyTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     uint32
		pathway  Pathway
		channels int
		blockW   int
		blockH   int
	}{
		{name: "rgb565", code: 4, pathway: PathwayRGB565, channels: 3},
		{name: "plain-rgb", code: 6, pathway: PathwayPlainRGB, channels: 3},
		{name: "rgb565-named-plain", code: 16, pathway: PathwayPlainRGB, channels: 3},
		{name: "etc2", code: 19, pathway: PathwayETC2, channels: 4},
		{name: "astc-4x4", code: 40, pathway: PathwayASTC, channels: 4, blockW: 4, blockH: 4},
		{name: "astc-6x6", code: 44, pathway: PathwayASTC, channels: 4, blockW: 6, blockH: 6},
		{name: "astc-8x8", code: 47, pathway: PathwayASTC, channels: 4, blockW: 8, blockH: 8},
		{name: "rgba-band-low", code: 17, pathway: PathwayPlainRGBA, channels: 4},
		{name: "rgba-band-mid", code: 22, pathway: PathwayPlainRGBA, channels: 4},
		{name: "rgba-band-high", code: 26, pathway: PathwayPlainRGBA, channels: 4},
		{name: "generic-band-low", code: 41, pathway: PathwayCompressedGeneric, channels: 4},
		{name: "generic-band-high", code: 53, pathway: PathwayCompressedGeneric, channels: 4},
		{name: "zero", code: 0, pathway: PathwayUnknown, channels: 4},
		{name: "unmapped-low", code: 7, pathway: PathwayUnknown, channels: 4},
		{name: "unmapped-high", code: 99, pathway: PathwayUnknown, channels: 4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tc.code)
			if got.Pathway != tc.pathway {
				t.Fatalf("Classify(%d).Pathway = %v, want %v", tc.code, got.Pathway, tc.pathway)
			}
			if got.Channels != tc.channels {
				t.Fatalf("Classify(%d).Channels = %d, want %d", tc.code, got.Channels, tc.channels)
			}
			if got.BlockW != tc.blockW || got.BlockH != tc.blockH {
				t.Fatalf("Classify(%d) block = %dx%d, want %dx%d", tc.code, got.BlockW, got.BlockH, tc.blockW, tc.blockH)
			}
		})
	}
}

func TestClassifyGenericBandDisjoint(t *testing.T) {
	t.Parallel()

	// Codes 41-53 are the generic compressed band except the dedicated
	// ASTC codes 44 and 47, which must never fall into the band.
	for code := uint32(41); code <= 53; code++ {
		got := Classify(code)

		if code == 44 || code == 47 {
			if got.Pathway != PathwayASTC {
				t.Fatalf("Classify(%d).Pathway = %v, want ASTC", code, got.Pathway)
			}
			continue
		}

		if got.Pathway != PathwayCompressedGeneric {
			t.Fatalf("Classify(%d).Pathway = %v, want COMPRESSED", code, got.Pathway)
		}
		if got.Channels != 4 {
			t.Fatalf("Classify(%d).Channels = %d, want 4", code, got.Channels)
		}
	}
}

func TestExpectedPayloadSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code uint32
		w, h int
		want int
	}{
		{name: "astc-4x4-exact", code: 40, w: 8, h: 8, want: 4 * 16},
		{name: "astc-4x4-rounds-up", code: 40, w: 10, h: 10, want: 9 * 16},
		{name: "astc-4x4-minimal", code: 40, w: 1, h: 1, want: 16},
		{name: "two-bytes-per-pixel", code: 4, w: 16, h: 8, want: 256},
		{name: "plain-rgb-estimate", code: 6, w: 3, h: 3, want: 18},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := expectedPayloadSize(tc.code, tc.w, tc.h); got != tc.want {
				t.Fatalf("expectedPayloadSize(%d,%d,%d) = %d, want %d", tc.code, tc.w, tc.h, got, tc.want)
			}
		})
	}
}

func TestPixelFormatString(t *testing.T) {
	t.Parallel()

	if got := Classify(44).String(); got != "ASTC6x6/4ch" {
		t.Fatalf("String() = %q", got)
	}
	if got := Classify(4).String(); got != "RGB565/3ch" {
		t.Fatalf("String() = %q", got)
	}
}
