package catalog

import (
	"fmt"
	"net/url"
	"strconv"
)

// BuildShareText formats a dish announcement for outbound sharing.
func BuildShareText(dish Dish, orderURL string) string {
	return fmt.Sprintf(
		"🔥 *%s* is now available!\n\n%s\n\nPrice: ₹%s\n\n😋 Order now at: %s",
		dish.Title,
		dish.Description,
		strconv.FormatFloat(dish.Price, 'f', -1, 64),
		orderURL,
	)
}

// WhatsAppShareURL wraps the announcement in a wa.me link.
func WhatsAppShareURL(dish Dish, orderURL string) string {
	return "https://wa.me/?text=" + url.QueryEscape(BuildShareText(dish, orderURL))
}
