package repository

import (
	"github.com/narendranaragani/printmaania/internal/model"
)

// SeedProducts is the storefront catalog.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:               "custom-mugs",
			Slug:             "custom-mugs",
			Title:            "Custom Mugs",
			ShortDescription: "Matte, metallic, temperature, inner-color mugs with high-resolution sublimation printing.",
			FullDescription:  "Premium quality mugs available in multiple finishes including matte, metallic, and temperature-changing variants. Perfect for personalized gifts and promotional items.",
			Images: []model.ProductImage{
				{URL: "https://i.pinimg.com/1200x/db/20/07/db200736a5e337bb06ef3e6a6c2a40ce.jpg", Alt: "Custom Matte Mug", Type: "mockup"},
				{URL: "https://i.pinimg.com/1200x/27/89/11/278911e7a0c78b9e5ed4b84781ad608b.jpg", Alt: "Mug Side View", Type: "mockup"},
				{URL: "https://i.pinimg.com/1200x/58/4b/62/584b625cbe204538153e90dc45cd6a45.jpg", Alt: "Mug Close-up", Type: "real"},
			},
			PrintingMethods:   []string{"Sublimation", "UV Print", "Screen Print"},
			EstimatedDelivery: "3-7 days",
			Colors: []model.ProductColor{
				{Name: "Matte Black", Hex: "#1a1a1a"},
				{Name: "Matte White", Hex: "#ffffff"},
				{Name: "Metallic Gold", Hex: "#d4af37"},
				{Name: "Metallic Silver", Hex: "#c0c0c0"},
				{Name: "Temperature Changing", Hex: "#ff6b6b"},
			},
			MinQuantity:     1,
			BulkMinQuantity: 25,
			Reviews:         &model.ReviewSummary{Rating: 4.5, Count: 128},
			Category:        "Drinkware",
			Pricing: &model.Pricing{
				BasePrice: 299,
				BulkPricing: []model.BulkTier{
					{MinQuantity: 25, PricePerUnit: 249, DiscountPercent: 17},
					{MinQuantity: 50, PricePerUnit: 229, DiscountPercent: 23},
					{MinQuantity: 100, PricePerUnit: 199, DiscountPercent: 33},
				},
				SetupFee: 50,
			},
			IsBestSeller: true,
			IsTrending:   true,
			Tags:         []string{"gifts", "customizable", "premium"},
		},
		{
			ID:               "photo-frames",
			Slug:             "photo-frames",
			Title:            "Photo Frames",
			ShortDescription: "Acrylic, wood, glass frames with table/wall mount options for your precious memories.",
			Images: []model.ProductImage{
				{URL: "https://i.pinimg.com/1200x/e1/3c/4c/e13c4cf7897169f0a098028871601947.jpg", Alt: "Photo Frame", Type: "mockup"},
				{URL: "https://i.pinimg.com/736x/e3/97/26/e397261ab08d892792462f725f729055.jpg", Alt: "Frame Variants", Type: "real"},
			},
			PrintingMethods:   []string{"Print", "Engraving"},
			EstimatedDelivery: "5-10 days",
			Materials:         []string{"Acrylic", "Wood", "Glass"},
			CustomOptions: []model.ProductOption{
				{Label: "Mount Type", Values: []string{"Table Mount", "Wall Mount", "Stand"}},
				{Label: "Size", Values: []string{"4x6", "5x7", "8x10", "11x14"}},
			},
			Category: "Frames",
			Pricing:  &model.Pricing{BasePrice: 249},
		},
		{
			ID:               "polaroids",
			Slug:             "polaroids",
			Title:            "Polaroids",
			ShortDescription: "Retro mini prints in matte/glossy finish, available in bundles for special moments.",
			Images: []model.ProductImage{
				{URL: "https://i.pinimg.com/736x/ef/f4/ec/eff4ec686229809b7833d75194812f04.jpg", Alt: "Polaroid Prints", Type: "mockup"},
				{URL: "https://i.pinimg.com/736x/d5/6e/49/d56e49c80f057ae406d01aa2176372bc.jpg", Alt: "Polaroid Prints", Type: "real"},
			},
			PrintingMethods:   []string{"Instant Print"},
			EstimatedDelivery: "3-5 days",
			Materials:         []string{"Matte Paper", "Glossy Paper"},
			CustomOptions: []model.ProductOption{
				{Label: "Bundle Size", Values: []string{"Single", "Pack of 10", "Pack of 25", "Pack of 50"}},
			},
			Category: "Prints",
			Pricing:  &model.Pricing{BasePrice: 10},
		},
		{
			ID:               "keychains",
			Slug:             "keychains",
			Title:            "Keychains",
			ShortDescription: "Acrylic, metal, and leather keychains with custom engraving options.",
			Images: []model.ProductImage{
				{URL: "https://i.pinimg.com/1200x/a4/f6/a6/a4f6a6b49fe5d44b5adb25d22ef27f88.jpg", Alt: "Custom Keychains", Type: "mockup"},
			},
			PrintingMethods:   []string{"Engraving", "Print", "UV Print"},
			EstimatedDelivery: "3-7 days",
			Materials:         []string{"Acrylic", "Metal", "Leather"},
			BulkMinQuantity:   25,
			Category:          "Accessories",
		},
		{
			ID:               "t-shirts",
			Slug:             "t-shirts",
			Title:            "T-Shirts",
			ShortDescription: "Round-neck, oversized, collar T-shirts in cotton and dry-fit fabrics.",
			Images: []model.ProductImage{
				{URL: "https://i.pinimg.com/736x/08/11/df/0811dfcd6951969a18e4d80069203f51.jpg", Alt: "Custom T-Shirt", Type: "mockup"},
				{URL: "https://i.pinimg.com/736x/37/a9/08/37a9083a1e9eba4e17c962a5f9b21949.jpg", Alt: "T-Shirt Variants", Type: "real"},
			},
			PrintingMethods:   []string{"Screen Print", "DTG Print", "Heat Transfer"},
			EstimatedDelivery: "5-10 days",
			Colors: []model.ProductColor{
				{Name: "Black", Hex: "#000000"},
				{Name: "White", Hex: "#ffffff"},
				{Name: "Navy Blue", Hex: "#1a237e"},
				{Name: "Gray", Hex: "#616161"},
				{Name: "Red", Hex: "#d32f2f"},
			},
			Sizes:           []string{"S", "M", "L", "XL", "XXL"},
			Materials:       []string{"Cotton", "Dry-Fit", "Polyester Blend"},
			BulkMinQuantity: 25,
			Reviews:         &model.ReviewSummary{Rating: 4.7, Count: 342},
			Category:        "Apparel",
			Pricing: &model.Pricing{
				BasePrice: 499,
				Variants: []model.PriceVariant{
					{Size: "S", Price: 499},
					{Size: "M", Price: 499},
					{Size: "L", Price: 549},
					{Size: "XL", Price: 599},
					{Size: "XXL", Price: 649},
				},
				BulkPricing: []model.BulkTier{
					{MinQuantity: 25, PricePerUnit: 449, DiscountPercent: 10},
					{MinQuantity: 50, PricePerUnit: 399, DiscountPercent: 20},
					{MinQuantity: 100, PricePerUnit: 349, DiscountPercent: 30},
				},
				SetupFee: 100,
			},
			IsBestSeller: true,
			IsTrending:   true,
			Tags:         []string{"apparel", "customizable", "fashion"},
		},
		{
			ID:               "hoodies",
			Slug:             "hoodies",
			Title:            "Hoodies",
			ShortDescription: "Premium hoodies in fleece and cotton blends with front and back printing.",
			PrintingMethods:  []string{"Screen Print", "DTG Print", "Embroidery"},
			EstimatedDelivery: "7-12 days",
			Sizes:            []string{"S", "M", "L", "XL", "XXL"},
			Materials:        []string{"Cotton", "Fleece"},
			BulkMinQuantity:  25,
			Reviews:          &model.ReviewSummary{Rating: 4.3, Count: 87},
			Category:         "Apparel",
			Pricing: &model.Pricing{
				BasePrice: 899,
				BulkPricing: []model.BulkTier{
					{MinQuantity: 25, PricePerUnit: 799, DiscountPercent: 11},
					{MinQuantity: 50, PricePerUnit: 749, DiscountPercent: 17},
				},
				SetupFee: 100,
			},
			Tags: []string{"apparel", "winter", "customizable"},
		},
		{
			ID:               "posters",
			Slug:             "posters",
			Title:            "Posters",
			ShortDescription: "High-quality A3, A2, A1 posters in matte and gloss finishes.",
			Images: []model.ProductImage{
				{URL: "https://i.pinimg.com/736x/03/21/bc/0321bc261d39aac0aa787216ff3c080e.jpg", Alt: "Custom Poster", Type: "mockup"},
			},
			PrintingMethods:   []string{"Digital Print", "Offset Print"},
			EstimatedDelivery: "3-7 days",
			CustomOptions: []model.ProductOption{
				{Label: "Size", Values: []string{"A3", "A2", "A1", "Custom"}},
				{Label: "Finish", Values: []string{"Matte", "Gloss"}},
			},
			Category: "Prints",
			Pricing:  &model.Pricing{BasePrice: 99},
		},
		{
			ID:               "stickers",
			Slug:             "stickers",
			Title:            "Stickers",
			ShortDescription: "Vinyl, transparent, and die-cut stickers for any application.",
			Images: []model.ProductImage{
				{URL: "https://i.pinimg.com/736x/b5/89/78/b589785291f5b6cfeadbb4615e0fe1d8.jpg", Alt: "Custom Stickers", Type: "mockup"},
			},
			PrintingMethods:   []string{"Vinyl Print", "Die-cut"},
			EstimatedDelivery: "3-7 days",
			Materials:         []string{"Vinyl", "Transparent", "Paper"},
			BulkMinQuantity:   25,
			Category:          "Accessories",
			Pricing: &model.Pricing{
				BasePrice: 49,
				BulkPricing: []model.BulkTier{
					{MinQuantity: 50, PricePerUnit: 39, DiscountPercent: 20},
					{MinQuantity: 100, PricePerUnit: 29, DiscountPercent: 40},
				},
			},
			IsTrending: true,
			Tags:       []string{"accessories", "customizable"},
		},
	}
}
