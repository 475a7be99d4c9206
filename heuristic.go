package sct

// Heuristic tuning. Reverse-engineered against RGB565, ETC2 and ASTC
// 4x4/6x6/8x8 files; not verified beyond those formats.
const (
	// heuristicSizeRatioMax is the payload/expected ratio above which the
	// payload is assumed to already be raw. Strict: a ratio of exactly
	// heuristicSizeRatioMax counts as raw.
	heuristicSizeRatioMax = 0.95
	// bytesPerPixelEstimate approximates the raw payload size for
	// non-block formats.
	bytesPerPixelEstimate = 2
)

// probeCompression decides whether a v2 payload whose raw or has-alpha
// flags are set is actually compressed. Those flags historically predict
// nothing, so the payload is probed: decompression is trusted only when
// the raw payload is measurably smaller than the expected pixel size and
// inflating it moves the size closer to expected. On a positive answer
// the probe's result is returned so the caller does not decompress twice.
//
// Callers must ensure len(payload) >= 8. A wrong answer here degrades
// output quality but never fails the decode; the orchestrator keeps the
// raw payload as fallback.
func probeCompression(payload []byte, width, height int, code uint32) (*DecompressResult, bool) {
	expected := expectedPayloadSize(code, width, height)
	if expected <= 0 {
		return nil, false
	}

	sizeRatio := float64(len(payload)) / float64(expected)
	if sizeRatio >= heuristicSizeRatioMax {
		return nil, false
	}

	res, err := Decompress(payload)
	if err != nil || res.ActualSize == 0 {
		return nil, false
	}

	decompRatio := float64(res.ActualSize) / float64(expected)
	if decompRatio <= sizeRatio {
		return nil, false
	}

	return res, true
}

// shouldDecompress reports the probe's verdict without the result bytes.
func shouldDecompress(payload []byte, width, height int, code uint32) bool {
	_, ok := probeCompression(payload, width, height, code)

	return ok
}
