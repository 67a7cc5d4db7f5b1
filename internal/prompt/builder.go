// Package prompt assembles the text payload for the external language-model
// collaborator. Generation itself happens outside this service; everything
// here is deterministic text assembly.
package prompt

import (
	"fmt"
	"strings"

	"github.com/Shravani253/Ai-food-menu/internal/domain"
)

// BuildInsight renders a menu item's freshness report as a prompt. The
// modifiers adjust framing only; all safety-relevant facts come from the
// freshness result.
func BuildInsight(item domain.MenuItem, result domain.MenuFreshnessResult, mods domain.PromptModifiers) string {
	var b strings.Builder

	b.WriteString("You are a food safety assistant for a restaurant menu.\n")
	b.WriteString("Explain information clearly, calmly, and honestly.\n")
	b.WriteString("Do NOT exaggerate or give medical advice.\n")

	if mods.Tone == "simple" {
		b.WriteString("Use simple, non-technical language that customers can easily understand.\n")
	}
	if mods.SafetyEmphasis {
		b.WriteString("If food is unsafe or unavailable, clearly state this first.\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Menu Item: %s\n", item.Name)
	fmt.Fprintf(&b, "Category: %s\n", item.Category)
	fmt.Fprintf(&b, "Price: %.2f\n", item.Price)
	if item.IsAvailable {
		b.WriteString("Availability: Available\n")
	} else {
		b.WriteString("Availability: Unavailable\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Overall Freshness Score: %g/100\n", result.MenuFreshness)
	fmt.Fprintf(&b, "Overall Status: %s\n", result.Status)

	b.WriteString("\nIngredient Details:\n")
	for _, ing := range result.Ingredients {
		fmt.Fprintf(&b, "- %s: %g/100\n", ing.Name, ing.FinalFreshness)
		for _, w := range ing.Warnings {
			fmt.Fprintf(&b, "  Warning: %s\n", w)
		}
	}

	b.WriteString("\nExplain the above information in a friendly, customer-facing way. ")
	b.WriteString("Keep it short, transparent, and confidence-building.")

	return b.String()
}
