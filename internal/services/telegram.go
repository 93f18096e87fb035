package services

import (
	"fmt"
	"strings"

	"github.com/Tyrock1988/gamblecodez-platform/internal/models"
)

// Telegram export builders. Pure formatting over already-fetched links; the
// output is Telegram HTML ready for the clipboard.

const (
	telegramDivider       = "______\n"
	telegramSocialsFooter = "Join us everywhere for epic giveaways and high-roller vibes! 🐋💸"
)

var categoryEmojis = map[string]string{
	models.CategoryUS:         "🇺🇸",
	models.CategoryNonUS:      "🌐",
	models.CategoryEverywhere: "🌍",
	models.CategoryFaucet:     "🚰",
	models.CategorySocials:    "📱",
}

// TelegramCategoryText renders one category view. "promos" and "socials" get
// divider lines between entries; socials additionally get the channel footer.
func TelegramCategoryText(category string, links []models.Link) string {
	var sb strings.Builder

	switch category {
	case "promos":
		for i, link := range links {
			sb.WriteString(linkAnchor(link))
			if len(link.Tags) > 0 {
				fmt.Fprintf(&sb, " <b>%s</b>", strings.ToUpper(strings.Join(link.Tags, ", ")))
			}
			if link.PromoText != "" {
				fmt.Fprintf(&sb, " 🔥 %s", link.PromoText)
			}
			sb.WriteString("\n")
			if i < len(links)-1 {
				sb.WriteString(telegramDivider)
			}
		}
	case models.CategorySocials:
		for i, link := range links {
			sb.WriteString(linkAnchor(link))
			sb.WriteString("\n")
			if i < len(links)-1 {
				sb.WriteString(telegramDivider)
			}
		}
		sb.WriteString(telegramDivider)
		sb.WriteString(telegramSocialsFooter)
	default:
		for _, link := range links {
			sb.WriteString(linkAnchor(link))
			if len(link.Tags) > 0 {
				fmt.Fprintf(&sb, " <b>%s</b>", strings.ToUpper(strings.Join(link.Tags, ", ")))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// TelegramDirectory renders the full export: every category with links, in
// the fixed category order, labeled with its emoji header.
func TelegramDirectory(links []models.Link) string {
	var sb strings.Builder
	sb.WriteString("**GambleCodez Links**\n\n")

	for _, category := range models.Categories {
		var group []models.Link
		for _, link := range links {
			if link.Category == category {
				group = append(group, link)
			}
		}
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "%s **%s LINKS**\n\n", categoryEmojis[category], strings.ToUpper(category))
		for _, link := range group {
			sb.WriteString(linkAnchor(link))
			if len(link.Tags) > 0 {
				fmt.Fprintf(&sb, " <b>%s</b>", strings.Join(link.Tags, ", "))
			}
			if link.PromoText != "" {
				fmt.Fprintf(&sb, " 🔥 %s", link.PromoText)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n" + telegramDivider + "\n")
	}

	return sb.String()
}

func linkAnchor(link models.Link) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, link.URL, link.Name)
}
