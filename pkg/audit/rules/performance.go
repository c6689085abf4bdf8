package rules

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/yaklabco/seolint/pkg/audit"
)

var modernImageExt = regexp.MustCompile(`(?i)\.(webp|avif)($|\?)`)

// TTFBRule grades time to first byte.
type TTFBRule struct {
	audit.BaseRule
}

// NewTTFBRule creates a new TTFB rule.
func NewTTFBRule() *TTFBRule {
	return &TTFBRule{
		BaseRule: audit.NewBaseRule(
			"SEO120",
			"ttfb",
			"Time to first byte should stay under 200 milliseconds",
			audit.CategoryPerformance,
		),
	}
}

// Apply emits nothing when response timing was not measured.
func (r *TTFBRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	ttfb := ctx.Page.Timing().ResponseStart
	if ttfb <= 0 {
		return nil, nil
	}

	ms := math.Round(ttfb)
	switch {
	case ttfb < 200:
		return []audit.Finding{audit.Good(
			fmt.Sprintf("TTFB good (%.0f ms)", ms),
		)}, nil
	case ttfb < 500:
		return []audit.Finding{audit.Warn(
			fmt.Sprintf("TTFB moderate (%.0f ms)", ms),
			"Consider CDN and server optimizations",
		)}, nil
	default:
		return []audit.Finding{audit.Error(
			fmt.Sprintf("TTFB high (%.0f ms)", ms),
			"Use caching, optimize server, leverage CDN",
		)}, nil
	}
}

// ImageOptimizationRule checks formats, lazy loading, and dimensions.
type ImageOptimizationRule struct {
	audit.BaseRule
}

// NewImageOptimizationRule creates a new image optimization rule.
func NewImageOptimizationRule() *ImageOptimizationRule {
	return &ImageOptimizationRule{
		BaseRule: audit.NewBaseRule(
			"SEO121",
			"image-optimization",
			"Images should use modern formats, lazy loading, and fixed dimensions",
			audit.CategoryPerformance,
		),
	}
}

// Apply runs three independent checks over img[src]. Pages without such
// images emit nothing.
func (r *ImageOptimizationRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	images := ctx.Page.Doc().Find("img[src]")
	total := images.Length()
	if total == 0 {
		return nil, nil
	}

	modern, lazy, dimMissing := 0, 0, 0
	images.Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if modernImageExt.MatchString(src) {
			modern++
		}
		loading, _ := sel.Attr("loading")
		if strings.EqualFold(loading, "lazy") {
			lazy++
		}
		_, hasW := sel.Attr("width")
		_, hasH := sel.Attr("height")
		if !hasW || !hasH {
			dimMissing++
		}
	})

	var findings []audit.Finding
	if modern > 0 {
		findings = append(findings, audit.Good(
			fmt.Sprintf("Modern image formats used (%d/%d)", modern, total),
		))
	} else {
		findings = append(findings, audit.Warn(
			"No modern image formats detected",
			"Use WebP or AVIF for better compression",
		))
	}

	if float64(lazy)/float64(total) >= 0.5 {
		findings = append(findings, audit.Good(
			fmt.Sprintf("Lazy loading on %.0f%% images", math.Round(percent(lazy, total))),
		))
	} else {
		findings = append(findings, audit.Warn(
			"Low lazy-loading usage on images",
			`Add loading="lazy" to below-the-fold images`,
		))
	}

	if dimMissing > 0 {
		findings = append(findings, audit.Warn(
			fmt.Sprintf("%d images missing width/height", dimMissing),
			"Set dimensions to reduce CLS",
		))
	}
	return findings, nil
}

// INPPerformanceRule mirrors the responsiveness grade into the performance
// category, without tips on the graded outcomes.
type INPPerformanceRule struct {
	audit.BaseRule
}

// NewINPPerformanceRule creates a new performance-side INP rule.
func NewINPPerformanceRule() *INPPerformanceRule {
	return &INPPerformanceRule{
		BaseRule: audit.NewBaseRule(
			"SEO122",
			"inp-performance",
			"Interaction responsiveness graded as a performance signal",
			audit.CategoryPerformance,
		),
	}
}

func (r *INPPerformanceRule) Apply(ctx *audit.RuleContext) ([]audit.Finding, error) {
	if !ctx.Vitals.INPSeen {
		return []audit.Finding{audit.Warn(
			"INP not measured",
			"Requires interaction or lab testing",
		)}, nil
	}

	inp := math.Round(ctx.Vitals.INP)
	switch {
	case inp < 200:
		return []audit.Finding{audit.Good(fmt.Sprintf("INP good (%.0f ms)", inp))}, nil
	case inp < 500:
		return []audit.Finding{audit.Warn(fmt.Sprintf("INP moderate (%.0f ms)", inp), "")}, nil
	default:
		return []audit.Finding{audit.Error(fmt.Sprintf("INP poor (%.0f ms)", inp), "")}, nil
	}
}
