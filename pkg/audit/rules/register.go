package rules

import "github.com/yaklabco/seolint/pkg/audit"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *audit.Registry) {
	// On-page rules
	registry.Register(NewTitleLengthRule())      // SEO001
	registry.Register(NewMetaDescriptionRule())  // SEO002
	registry.Register(NewSingleH1Rule())         // SEO003
	registry.Register(NewHeadingStructureRule()) // SEO004
	registry.Register(NewImageAltRule())         // SEO005
	registry.Register(NewLinkProfileRule())      // SEO006
	registry.Register(NewURLFormatRule())        // SEO007
	registry.Register(NewMultimediaRule())       // SEO008
	registry.Register(NewKeywordDensityRule())   // SEO009

	// Technical rules
	registry.Register(NewHTTPSRule())          // SEO020
	registry.Register(NewViewportRule())       // SEO021
	registry.Register(NewCanonicalRule())      // SEO022
	registry.Register(NewPaginationRelRule())  // SEO023
	registry.Register(NewRobotsMetaRule())     // SEO024
	registry.Register(NewHTMLLangRule())       // SEO025
	registry.Register(NewHreflangRule())       // SEO026
	registry.Register(NewFaviconRule())        // SEO027
	registry.Register(NewLoadTimeRule())       // SEO028
	registry.Register(NewMinifiedAssetsRule()) // SEO029
	registry.Register(NewAMPRule())            // SEO030

	// Content rules
	registry.Register(NewContentLengthRule())    // SEO040
	registry.Register(NewReadabilityRule())      // SEO041
	registry.Register(NewTextHTMLRatioRule())    // SEO042
	registry.Register(NewDuplicateContentRule()) // SEO043
	registry.Register(NewContentImagesRule())    // SEO044
	registry.Register(NewFreshnessRule())        // SEO045

	// Off-page rules
	registry.Register(NewOpenGraphRule())       // SEO060
	registry.Register(NewTwitterCardRule())     // SEO061
	registry.Register(NewStructuredDataRule())  // SEO062
	registry.Register(NewSocialLinksRule())     // SEO063
	registry.Register(NewMicrodataRule())       // SEO064
	registry.Register(NewNofollowBalanceRule()) // SEO065

	// User experience rules
	registry.Register(NewLCPRule())        // SEO080
	registry.Register(NewCLSRule())        // SEO081
	registry.Register(NewINPRule())        // SEO082
	registry.Register(NewNavigationRule()) // SEO083
	registry.Register(NewA11yBasicsRule()) // SEO084

	// Local rules
	registry.Register(NewLocalSchemaRule()) // SEO100
	registry.Register(NewNAPSignalsRule())  // SEO101

	// Performance rules
	registry.Register(NewTTFBRule())              // SEO120
	registry.Register(NewImageOptimizationRule()) // SEO121
	registry.Register(NewINPPerformanceRule())    // SEO122

	// Analytics rules
	registry.Register(NewAnalyticsToolsRule()) // SEO140

	// Advanced rules
	registry.Register(NewSchemaCoverageRule())    // SEO160
	registry.Register(NewAuthorAttributionRule()) // SEO161
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(audit.DefaultRegistry)
}
