package format

const (
	// MaxValueBytes is the largest encoded frame the host storage slot accepts.
	// It mirrors the host's per-value byte ceiling; frames larger than this are
	// rejected by the host, not by the codec. The "compress only when necessary"
	// policy uses it to decide whether a raw value would still fit.
	MaxValueBytes = 32766

	// MinCompressionLevel is the fastest DEFLATE setting.
	MinCompressionLevel = 1

	// MaxCompressionLevel is the smallest-output DEFLATE setting.
	MaxCompressionLevel = 9

	// DefaultCompressionLevel favors output size over speed, matching the
	// expectation that encoded values are written once and read many times.
	DefaultCompressionLevel = MaxCompressionLevel
)
