// Command seed populates a FreshPlate database with a demo dataset: the demo
// menu, per-dish ingredients with randomized shelf-life windows, and recent
// storage_check events.
package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/Shravani253/Ai-food-menu/internal/database"
	"github.com/Shravani253/Ai-food-menu/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jaswdr/faker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type menuSeed struct {
	name        string
	category    domain.Category
	price       float64
	ingredients []ingredientSeed
}

type ingredientSeed struct {
	name     string
	category domain.Category
	shelfMin int // days
	shelfMax int
	risk     domain.RiskLevel
}

var demoMenu = []menuSeed{
	{"Grilled Salmon", domain.CategorySeafood, 750, []ingredientSeed{
		{"Salmon Fillet", domain.CategorySeafood, 2, 4, domain.RiskHigh},
		{"Lemon", domain.CategoryVegetarian, 7, 14, domain.RiskLow},
		{"Butter", domain.CategoryDairy, 14, 30, domain.RiskLow},
	}},
	{"Prawn Masala", domain.CategorySeafood, 680, []ingredientSeed{
		{"Prawns", domain.CategorySeafood, 1, 3, domain.RiskHigh},
		{"Tomatoes", domain.CategoryVegetarian, 4, 8, domain.RiskLow},
		{"Cream", domain.CategoryDairy, 5, 10, domain.RiskMedium},
	}},
	{"Tuna Steak", domain.CategorySeafood, 820, []ingredientSeed{
		{"Tuna Loin", domain.CategorySeafood, 2, 4, domain.RiskHigh},
		{"Olive Oil", domain.CategoryOther, 90, 180, domain.RiskLow},
	}},
	{"Grilled Chicken", domain.CategoryChicken, 520, []ingredientSeed{
		{"Chicken Breast", domain.CategoryChicken, 2, 5, domain.RiskMedium},
		{"Garlic", domain.CategoryVegetarian, 14, 30, domain.RiskLow},
	}},
	{"Butter Chicken", domain.CategoryChicken, 620, []ingredientSeed{
		{"Chicken Thigh", domain.CategoryChicken, 2, 5, domain.RiskMedium},
		{"Butter", domain.CategoryDairy, 14, 30, domain.RiskLow},
		{"Cream", domain.CategoryDairy, 5, 10, domain.RiskMedium},
	}},
	{"Chicken Biryani", domain.CategoryChicken, 650, []ingredientSeed{
		{"Chicken Leg", domain.CategoryChicken, 2, 5, domain.RiskMedium},
		{"Basmati Rice", domain.CategoryOther, 180, 365, domain.RiskLow},
		{"Yogurt", domain.CategoryDairy, 7, 14, domain.RiskMedium},
	}},
	{"Paneer Tikka", domain.CategoryVegetarian, 520, []ingredientSeed{
		{"Paneer", domain.CategoryDairy, 5, 10, domain.RiskMedium},
		{"Bell Peppers", domain.CategoryVegetarian, 5, 10, domain.RiskLow},
	}},
	{"Veg Stir Fry", domain.CategoryVegetarian, 420, []ingredientSeed{
		{"Broccoli", domain.CategoryVegetarian, 4, 8, domain.RiskLow},
		{"Carrots", domain.CategoryVegetarian, 10, 21, domain.RiskLow},
		{"Mushrooms", domain.CategoryVegetarian, 3, 6, domain.RiskMedium},
	}},
	{"Mushroom Masala", domain.CategoryVegetarian, 480, []ingredientSeed{
		{"Mushrooms", domain.CategoryVegetarian, 3, 6, domain.RiskMedium},
		{"Onions", domain.CategoryVegetarian, 14, 30, domain.RiskLow},
	}},
	{"Creamy Spinach", domain.CategoryVegetarian, 460, []ingredientSeed{
		{"Spinach", domain.CategoryVegetarian, 2, 5, domain.RiskLow},
		{"Cream", domain.CategoryDairy, 5, 10, domain.RiskMedium},
	}},
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seeds a FreshPlate database with demo menu data",
	Long: `seed inserts the demo menu, its ingredients, their association rows,
and randomized storage_check events into the configured Postgres database.
Existing rows with matching slugs are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		databaseURL := viper.GetString("database-url")
		if databaseURL == "" {
			return fmt.Errorf("database URL is required (flag --database-url or env DATABASE_URL)")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		pool, err := database.Connect(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.RunMigrations(ctx, pool); err != nil {
			return err
		}

		return seed(ctx, pool, viper.GetInt("events-per-ingredient"), viper.GetBool("include-anomalies"))
	},
}

func init() {
	rootCmd.Flags().String("database-url", "", "Postgres connection URL")
	rootCmd.Flags().Int("events-per-ingredient", 3, "Number of storage_check events per ingredient")
	rootCmd.Flags().Bool("include-anomalies", true, "Seed some out-of-range storage temperatures")

	_ = viper.BindPFlags(rootCmd.Flags())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func seed(ctx context.Context, pool *pgxpool.Pool, eventsPerIngredient int, includeAnomalies bool) error {
	fake := faker.New()
	now := time.Now().UTC()

	for _, menu := range demoMenu {
		var menuID int64
		err := pool.QueryRow(ctx, `
			INSERT INTO menu_items (slug, name, category, price, is_available)
			VALUES ($1, $2, $3, $4, TRUE)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING menu_id
		`, slugify(menu.name), menu.name, string(menu.category), menu.price).Scan(&menuID)
		if err != nil {
			return fmt.Errorf("insert menu item %q: %w", menu.name, err)
		}

		for _, ing := range menu.ingredients {
			shelfLife := fake.IntBetween(ing.shelfMin, ing.shelfMax)
			age := fake.IntBetween(0, shelfLife)
			received := now.AddDate(0, 0, -age)
			expiry := received.AddDate(0, 0, shelfLife)

			var ingredientID int64
			err := pool.QueryRow(ctx, `
				INSERT INTO ingredients (name, category, received_date, expiry_date, freshness_score, risk_level)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING ingredient_id
			`, ing.name, string(ing.category), received, expiry, fake.Float64(2, 60, 100), string(ing.risk)).Scan(&ingredientID)
			if err != nil {
				return fmt.Errorf("insert ingredient %q: %w", ing.name, err)
			}

			_, err = pool.Exec(ctx, `
				INSERT INTO menu_ingredients (menu_id, ingredient_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, menuID, ingredientID)
			if err != nil {
				return fmt.Errorf("link ingredient %q to menu %q: %w", ing.name, menu.name, err)
			}

			for i := 0; i < eventsPerIngredient; i++ {
				temp := safeTemp(fake, ing.category)
				if includeAnomalies && fake.IntBetween(0, 9) == 0 {
					temp += fake.Float64(1, 5, 10)
				}
				createdAt := now.Add(-time.Duration(fake.IntBetween(1, 72)) * time.Hour)

				_, err := pool.Exec(ctx, `
					INSERT INTO ingredient_events (ingredient_id, event_type, event_value, created_at)
					VALUES ($1, 'storage_check', $2, $3)
				`, ingredientID, map[string]any{"temp": temp}, createdAt)
				if err != nil {
					return fmt.Errorf("insert event for ingredient %q: %w", ing.name, err)
				}
			}
		}
	}

	fmt.Printf("Seeded %d menu items\n", len(demoMenu))
	return nil
}

// safeTemp picks a temperature inside the category's safe storage range.
func safeTemp(fake faker.Faker, category domain.Category) float64 {
	switch category {
	case domain.CategorySeafood, domain.CategoryChicken, domain.CategoryMeat:
		return fake.Float64(1, 0, 4)
	case domain.CategoryVegetarian:
		return fake.Float64(1, 2, 8)
	case domain.CategoryDairy:
		return fake.Float64(1, 2, 6)
	default:
		return fake.Float64(1, 0, 8)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
