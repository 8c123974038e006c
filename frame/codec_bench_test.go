package frame

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/arloliu/valpack/format"
)

// generateBenchData creates value payloads of varying compressibility.
func generateBenchData(size int, class string) []byte {
	data := make([]byte, size)

	switch class {
	case "compressible":
		pattern := []byte(`{"status":"ok","region":"us-east-1","latency_ms":42}`)
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	default:
		// Incompressible random data: exercises the raw fallback path.
		rand.New(rand.NewSource(1)).Read(data)
	}

	return data
}

func BenchmarkCodec_Encode(b *testing.B) {
	benchSizes := []int{256, 4096, 16384, 65536}

	for _, class := range []string{"compressible", "incompressible"} {
		for _, size := range benchSizes {
			data := generateBenchData(size, class)

			b.Run(fmt.Sprintf("%s_%dB", class, size), func(b *testing.B) {
				codec, err := NewCodec()
				if err != nil {
					b.Fatal(err)
				}

				b.SetBytes(int64(size))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_ = codec.Encode(data)
				}
			})
		}
	}
}

func BenchmarkCodec_EncodeFastest(b *testing.B) {
	data := generateBenchData(16384, "compressible")

	codec, err := NewCodec(WithCompressionLevel(format.MinCompressionLevel))
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = codec.Encode(data)
	}
}

func BenchmarkCodec_Decode(b *testing.B) {
	benchSizes := []int{256, 4096, 16384, 65536}

	for _, size := range benchSizes {
		codec, err := NewCodec()
		if err != nil {
			b.Fatal(err)
		}
		frame := codec.Encode(generateBenchData(size, "compressible"))

		b.Run(fmt.Sprintf("compressed_%dB", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := codec.Decode(frame); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCodec_DecodeRaw(b *testing.B) {
	codec, err := NewCodec(WithCompressOnlyWhenNecessary(true))
	if err != nil {
		b.Fatal(err)
	}
	frame := codec.Encode(generateBenchData(16384, "compressible"))

	b.SetBytes(16384)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := codec.Decode(frame); err != nil {
			b.Fatal(err)
		}
	}
}
