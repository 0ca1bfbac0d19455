//go:build analysis

// Command analysis renders coefficient distributions of the verification
// pipeline to an HTML page: the hash-to-point output across random nonces,
// and the centered s2 magnitudes of a signature file when one is given.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"rpo-falcon512/falcon"
	"rpo-falcon512/prof"
	"rpo-falcon512/rpo"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, values []int64, nbins int) *charts.Bar {
	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	width := maxV - minV + 1
	if int64(nbins) > width {
		nbins = int(width)
	}
	counts := make([]int, nbins)
	labels := make([]string, nbins)
	for _, v := range values {
		b := int((v - minV) * int64(nbins) / width)
		counts[b]++
	}
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", minV+int64(i)*width/int64(nbins))
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("n=%d, min=%d, max=%d", len(values), minV, maxV)}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func main() {
	samples := flag.Int("samples", 64, "number of random (message, nonce) hash-to-point samples")
	sigPath := flag.String("sig", "", "optional path to a serialized signature whose s2 distribution to plot")
	outDir := flag.String("out", ".", "output directory for the HTML page")
	flag.Parse()

	var htpCoeffs []int64
	for s := 0; s < *samples; s++ {
		var msg rpo.Word
		var nonce [falcon.SigNonceLen]byte
		if _, err := rand.Read(nonce[:]); err != nil {
			log.Fatalf("sample nonce: %v", err)
		}
		start := time.Now()
		p := falcon.HashToPoint(msg, &nonce)
		prof.Track(start, "hash-to-point")
		for _, c := range p {
			htpCoeffs = append(htpCoeffs, int64(c))
		}
	}
	prof.WriteSummary(os.Stderr)

	page := components.NewPage()
	page.AddCharts(newHistogramChart("hash-to-point coefficients", htpCoeffs, 64))

	if *sigPath != "" {
		data, err := os.ReadFile(*sigPath)
		if err != nil {
			log.Fatalf("read signature: %v", err)
		}
		sig, err := falcon.DecodeSignature(data)
		if err != nil {
			log.Fatalf("decode signature: %v", err)
		}
		s2 := sig.SigPoly()
		centered := make([]int64, 0, len(s2))
		for _, c := range s2 {
			centered = append(centered, int64(falcon.Center(c)))
		}
		page.AddCharts(newHistogramChart("s2 centered coefficients", centered, 64))
	}

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("falcon_histograms_%s.html", time.Now().Format("20060102_150405")))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Histogram page:", htmlPath)
}
