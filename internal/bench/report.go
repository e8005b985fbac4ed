package bench

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport writes the result table followed by the classic per-algorithm
// summary lines.
func WriteReport(w io.Writer, inputName string, results []Result) {
	if len(results) == 0 {
		return
	}

	fmt.Fprintf(w, "=== Compression Benchmark: %s (%s bytes) ===\n\n",
		inputName, formatNumber(results[0].InputSize))

	// Print header
	fmt.Fprintf(w, "%-10s | %-13s | %-8s | %-12s | %-14s | %-8s\n",
		"Algorithm", "Compressed", "Ratio", "Comp MB/s", "Decomp MB/s", "Verified")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	// Print each result
	for _, r := range results {
		fmt.Fprintf(w, "%-10s | %-13s | %-8s | %-12.1f | %-14.1f | %-8s\n",
			r.Algorithm,
			formatNumber(r.CompressedSize),
			fmt.Sprintf("%.2f%%", r.RatioPercent),
			r.CompressMBps,
			r.DecompressMBps,
			verifiedMark(r.Verified))
	}
	fmt.Fprintln(w)

	for _, r := range results {
		fmt.Fprintf(w, "%s compression: ratio=%.2f%% rate=%.1f MBps\n",
			r.Algorithm, r.RatioPercent, r.CompressMBps)
		fmt.Fprintf(w, "%s decompression: rate=%.1f MBps\n",
			r.Algorithm, r.DecompressMBps)
	}
}

func verifiedMark(verified bool) string {
	if verified {
		return "yes"
	}

	return "NO"
}

// formatNumber formats an integer with comma thousands separators.
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
