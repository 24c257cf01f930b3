package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

// The category set is a fixed, explicit configuration passed to the engine
// at construction rather than a hidden default inside the aggregator.

// BudgetsFile is the top-level budgets.yaml shape
type BudgetsFile struct {
	Categories []CategorySeed `yaml:"categories"`
}

// CategorySeed is one pre-seeded category with its allocated ceiling.
// Amounts are strings in YAML to keep decimal precision exact.
type CategorySeed struct {
	Category  string `yaml:"category"`
	Allocated string `yaml:"allocated"`
}

// DefaultSeed returns the stock category set for a brand-new user
func DefaultSeed() []domain.BudgetAllocation {
	return []domain.BudgetAllocation{
		{Category: "Food & Dining", Allocated: decimal.NewFromInt(500), Spent: decimal.Zero},
		{Category: "Transportation", Allocated: decimal.NewFromInt(200), Spent: decimal.Zero},
		{Category: "Shopping", Allocated: decimal.NewFromInt(300), Spent: decimal.Zero},
		{Category: "Entertainment", Allocated: decimal.NewFromInt(150), Spent: decimal.Zero},
		{Category: "Bills & Utilities", Allocated: decimal.NewFromInt(400), Spent: decimal.Zero},
		{Category: "Healthcare", Allocated: decimal.NewFromInt(100), Spent: decimal.Zero},
	}
}

// LoadSeed reads a budgets.yaml file into an allocation seed.
// Duplicate categories are rejected: the allocation set is keyed by
// category with no duplicates.
func LoadSeed(path string) ([]domain.BudgetAllocation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading budgets file: %w", err)
	}

	var file BudgetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing budgets file: %w", err)
	}

	seen := make(map[string]bool, len(file.Categories))
	seed := make([]domain.BudgetAllocation, 0, len(file.Categories))
	for _, c := range file.Categories {
		if c.Category == "" {
			return nil, domain.NewValidationError("budgets file: category cannot be empty")
		}
		if seen[c.Category] {
			return nil, domain.NewValidationError("budgets file: duplicate category " + c.Category)
		}
		seen[c.Category] = true

		allocated, err := decimal.NewFromString(c.Allocated)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("budgets file: invalid allocated amount %q for %s", c.Allocated, c.Category))
		}
		if allocated.IsNegative() {
			return nil, domain.NewValidationError("budgets file: allocated amount must be non-negative for " + c.Category)
		}

		seed = append(seed, domain.BudgetAllocation{
			Category:  c.Category,
			Allocated: allocated,
			Spent:     decimal.Zero,
		})
	}

	return seed, nil
}

// SaveSeed writes an allocation seed to a budgets.yaml file
func SaveSeed(path string, seed []domain.BudgetAllocation) error {
	file := BudgetsFile{Categories: make([]CategorySeed, len(seed))}
	for i, alloc := range seed {
		file.Categories[i] = CategorySeed{
			Category:  alloc.Category,
			Allocated: alloc.Allocated.String(),
		}
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("marshaling budgets file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing budgets file: %w", err)
	}
	return nil
}
