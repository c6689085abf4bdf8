package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/seolint/internal/logging"
	"github.com/yaklabco/seolint/pkg/audit"
	_ "github.com/yaklabco/seolint/pkg/audit/rules" // Register built-in rules
)

type rulesFlags struct {
	format   string
	category string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available audit rules",
		Long: `List all available audit rules with their IDs, descriptions,
and the category their findings belong to.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rules := audit.DefaultRegistry.Rules()

			if flags.category != "" {
				rules = filterByCategory(rules, flags.category)
				if len(rules) == 0 {
					return fmt.Errorf("no rules in category %q", flags.category)
				}
			}

			if flags.format == formatJSON {
				return outputRulesJSON(rules)
			}

			logger := logging.Default()
			logger.Info("available rules")

			for _, rule := range rules {
				logger.Info(rule.ID(),
					"name", rule.Name(),
					logging.FieldCategory, rule.Category().DisplayName(),
					"description", rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().StringVar(&flags.category, "category", "",
		"only show rules from this category (e.g. technical)")

	return cmd
}

// filterByCategory keeps rules whose category matches the given ID or
// display name.
func filterByCategory(rules []audit.Rule, category string) []audit.Rule {
	result := make([]audit.Rule, 0, len(rules))
	for _, rule := range rules {
		cat := rule.Category()
		if string(cat) == category || cat.DisplayName() == category {
			result = append(result, rule)
		}
	}
	return result
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(rules []audit.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Category:    string(rule.Category()),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
