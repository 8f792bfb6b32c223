package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessageBulk(t *testing.T) {
	msg := BuildMessage(BulkOrder{
		ProductCategory: "T-Shirts",
		Quantity:        150,
		Type:            "Round Neck",
		Color:           "Black",
		Fabric:          "Cotton",
	})

	lines := strings.Split(msg, "\n")
	assert.Equal(t, "*New Bulk Order Request* 📦", lines[0])
	assert.Equal(t, "---------------------------", lines[1])
	assert.Contains(t, lines, "*Product:* T-Shirts")
	assert.Contains(t, lines, "*Qty:* 150")
	assert.Contains(t, lines, "*Customer Note:* Not provided")
	assert.Equal(t, "*Design File:* Please attach your artwork in WhatsApp chat", lines[len(lines)-1])
}

func TestBuildMessageNormal(t *testing.T) {
	msg := BuildMessage(NormalOrder{
		Product:      "Custom Mugs",
		CustomerName: "Asha",
		Phone:        "9000000001",
		Notes:        "Need by Friday",
	})

	assert.True(t, strings.HasPrefix(msg, "*New Custom Order* 🎁\n"))
	assert.Contains(t, msg, "*Customer:* Asha")
	assert.Contains(t, msg, "*Phone:* 9000000001")
	assert.Contains(t, msg, "*Customer Note:* Need by Friday")
}

func TestBuildMessageProductOptionalFields(t *testing.T) {
	minimal := BuildMessage(ProductOrder{
		ProductTitle: "Custom T-Shirts",
		Quantity:     2,
	})

	assert.True(t, strings.HasPrefix(minimal, "*Order Request* 🛒\n"))
	assert.Contains(t, minimal, "*Design Uploaded:* No")
	assert.NotContains(t, minimal, "*Color:*")
	assert.NotContains(t, minimal, "*Size:*")
	assert.True(t, strings.HasSuffix(minimal, "*Please attach your artwork in WhatsApp chat"))

	full := BuildMessage(ProductOrder{
		ProductTitle:   "Custom T-Shirts",
		Quantity:       2,
		Color:          "Navy",
		Size:           "XL",
		CustomOptions:  map[string]string{"Print Side": "Both"},
		DesignUploaded: true,
		DesignFileName: "logo.png",
		CustomerName:   "Asha",
		Phone:          "9000000001",
		Address:        "12 MG Road",
		Notes:          "Front pocket print",
	})

	assert.Contains(t, full, "*Color:* Navy")
	assert.Contains(t, full, "*Size:* XL")
	assert.Contains(t, full, "*Print Side:* Both")
	assert.Contains(t, full, "*Design Uploaded:* Yes")
	assert.Contains(t, full, "*Design File:* logo.png")
	assert.Contains(t, full, "*Address:* 12 MG Road")
	assert.True(t, strings.HasSuffix(full, "*Please attach your design file in this WhatsApp chat*"))
}

func TestBuildMessageOrderConfirmation(t *testing.T) {
	msg := BuildMessage(OrderConfirmation{
		OrderNumber:  "PM202609010042",
		Total:        1547,
		CustomerName: "Asha",
		Phone:        "9000000001",
		Address:      "12 MG Road, Bengaluru, Karnataka - 560001",
		Items: []ConfirmationItem{
			{ProductTitle: "Custom T-Shirts", Quantity: 2, Color: "Navy", Size: "XL"},
			{ProductTitle: "Custom Mugs", Quantity: 1},
		},
	})

	lines := strings.Split(msg, "\n")
	// No separator after the intro, unlike the enquiry shapes.
	assert.Equal(t, "*Order Confirmation* 🛒", lines[0])
	assert.Equal(t, "*Order Number:* PM202609010042", lines[1])
	assert.Equal(t, "*Total Amount:* ₹ 1,547", lines[2])
	assert.Contains(t, lines, "*Customer:* Asha")
	assert.Contains(t, lines, "*Address:* 12 MG Road, Bengaluru, Karnataka - 560001")
	assert.Contains(t, lines, "*Items:*")
	assert.Contains(t, lines, "1. *Custom T-Shirts*")
	assert.Contains(t, lines, "   Quantity: 2")
	assert.Contains(t, lines, "   Color: Navy")
	assert.Contains(t, lines, "   Size: XL")
	assert.Contains(t, lines, "2. *Custom Mugs*")
	assert.Equal(t, "*Please attach your design files in this WhatsApp chat*", lines[len(lines)-1])
}

func TestBuildLink(t *testing.T) {
	b := NewBuilder("919876543210")

	link := b.BuildLink(NormalOrder{
		Product:      "Custom Mugs",
		CustomerName: "Asha",
		Phone:        "9000000001",
	})

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "*New Custom Order* 🎁")
	assert.Contains(t, text, "*Product:* Custom Mugs")
}

func TestBuildLinkEscapesSpacesAsPercent20(t *testing.T) {
	b := NewBuilder("919876543210")

	link := b.BuildLink(NormalOrder{
		Product:      "Custom Mugs",
		CustomerName: "Asha Rao",
		Phone:        "9000000001",
	})

	assert.Contains(t, link, "%20")
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "Custom%20Mugs")
}
