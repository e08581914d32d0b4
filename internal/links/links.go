package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/wingseng/parts-catalog/internal/models"
)

// Outbound deep links. These are fire-and-forget: the site opens them in a
// new browsing context and never waits for a response.

// WhatsApp builds a wa.me link carrying a prefilled message. The number is
// reduced to digits, so "+254 718 234 222" and "254718234222" are equivalent.
func WhatsApp(number, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

// Tel builds a direct dial URI.
func Tel(number string) string {
	return "tel:" + strings.ReplaceAll(strings.TrimSpace(number), " ", "")
}

// Mailto builds a mail link.
func Mailto(addr string) string {
	return "mailto:" + strings.TrimSpace(addr)
}

// ProductQuoteMessage is the prefilled text for a single-product quote chat.
func ProductQuoteMessage(p models.Product) string {
	return fmt.Sprintf("Hi, I'm interested in %s (Part #%s). Can you provide more details and pricing?", p.Name, p.PartNumber)
}

// EngineQuoteMessage adds the engine context from the finder flow.
func EngineQuoteMessage(p models.Product, engineBrand, engineModel string) string {
	return fmt.Sprintf("Hi, I'm interested in %s (Part #%s) for my %s %s engine. Can you provide more details and pricing?", p.Name, p.PartNumber, engineBrand, engineModel)
}

// SourcingMessage is used when a search found nothing and the visitor wants
// the part sourced.
func SourcingMessage(query string) string {
	return fmt.Sprintf("Hi, I'm looking for a spare part: %q. Can you help me find it?", query)
}
