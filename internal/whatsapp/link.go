package whatsapp

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/narendranaragani/printmaania/internal/pricing"
)

const separator = "---------------------------"

// Builder turns an order payload into a wa.me deep link addressed to the
// shop's admin number.
type Builder struct {
	adminNumber string
}

func NewBuilder(adminNumber string) *Builder {
	return &Builder{adminNumber: adminNumber}
}

func (b *Builder) BuildLink(p Payload) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.adminNumber, escapeText(BuildMessage(p)))
}

// escapeText escapes spaces as %20, not +, so links open the same in a
// browser and in the WhatsApp apps.
func escapeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BuildMessage renders the labeled message body for a payload. The union is
// sealed, so the type switch covers every case.
func BuildMessage(p Payload) string {
	var intro string
	var lines, footer []string

	switch data := p.(type) {
	case OrderConfirmation:
		// The confirmation shape has no separator after the intro.
		lines = []string{
			"*Order Confirmation* 🛒",
			fmt.Sprintf("*Order Number:* %s", data.OrderNumber),
			fmt.Sprintf("*Total Amount:* %s", pricing.FormatPrice(data.Total)),
			"",
			fmt.Sprintf("*Customer:* %s", data.CustomerName),
			fmt.Sprintf("*Phone:* %s", data.Phone),
			fmt.Sprintf("*Address:* %s", data.Address),
			"",
			"*Items:*",
		}
		for i, item := range data.Items {
			lines = append(lines, fmt.Sprintf("%d. *%s*", i+1, item.ProductTitle))
			lines = append(lines, fmt.Sprintf("   Quantity: %d", item.Quantity))
			if item.Color != "" {
				lines = append(lines, fmt.Sprintf("   Color: %s", item.Color))
			}
			if item.Size != "" {
				lines = append(lines, fmt.Sprintf("   Size: %s", item.Size))
			}
		}
		lines = append(lines, "", separator, "*Please attach your design files in this WhatsApp chat*")
		return strings.Join(lines, "\n")

	case BulkOrder:
		intro = "*New Bulk Order Request* 📦"
		lines = []string{
			fmt.Sprintf("*Product:* %s", data.ProductCategory),
			fmt.Sprintf("*Qty:* %d", data.Quantity),
			fmt.Sprintf("*Type:* %s", data.Type),
			fmt.Sprintf("*Color:* %s", data.Color),
			fmt.Sprintf("*Fabric:* %s", data.Fabric),
			fmt.Sprintf("*Customer Note:* %s", orNotProvided(data.Notes)),
		}
		footer = []string{
			separator,
			"*Design File:* Please attach your artwork in WhatsApp chat",
		}

	case ProductOrder:
		intro = "*Order Request* 🛒"
		lines = []string{
			fmt.Sprintf("*Product:* %s", data.ProductTitle),
			fmt.Sprintf("*Quantity:* %d", data.Quantity),
		}

		if data.Color != "" {
			lines = append(lines, fmt.Sprintf("*Color:* %s", data.Color))
		}
		if data.Size != "" {
			lines = append(lines, fmt.Sprintf("*Size:* %s", data.Size))
		}
		if data.Material != "" {
			lines = append(lines, fmt.Sprintf("*Material:* %s", data.Material))
		}

		for _, key := range sortedKeys(data.CustomOptions) {
			lines = append(lines, fmt.Sprintf("*%s:* %s", key, data.CustomOptions[key]))
		}

		if data.DesignUploaded {
			lines = append(lines, "*Design Uploaded:* Yes")
		} else {
			lines = append(lines, "*Design Uploaded:* No")
		}
		if data.DesignFileName != "" {
			lines = append(lines, fmt.Sprintf("*Design File:* %s", data.DesignFileName))
		}

		if data.CustomerName != "" {
			lines = append(lines, fmt.Sprintf("*Customer Name:* %s", data.CustomerName))
		}
		if data.Phone != "" {
			lines = append(lines, fmt.Sprintf("*Phone:* %s", data.Phone))
		}
		if data.Address != "" {
			lines = append(lines, fmt.Sprintf("*Address:* %s", data.Address))
		}
		if data.Notes != "" {
			lines = append(lines, fmt.Sprintf("*Notes:* %s", data.Notes))
		}

		footer = []string{separator}
		if data.DesignUploaded {
			footer = append(footer, "*Please attach your design file in this WhatsApp chat*")
		} else {
			footer = append(footer, "*Please attach your artwork in WhatsApp chat")
		}

	case NormalOrder:
		intro = "*New Custom Order* 🎁"
		lines = []string{
			fmt.Sprintf("*Product:* %s", data.Product),
			fmt.Sprintf("*Customer:* %s", data.CustomerName),
			fmt.Sprintf("*Phone:* %s", data.Phone),
			fmt.Sprintf("*Customer Note:* %s", orNotProvided(data.Notes)),
		}
		footer = []string{
			separator,
			"*Design File:* Please attach your artwork in WhatsApp chat",
		}
	}

	parts := make([]string, 0, len(lines)+len(footer)+2)
	parts = append(parts, intro, separator)
	parts = append(parts, lines...)
	parts = append(parts, footer...)
	return strings.Join(parts, "\n")
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
