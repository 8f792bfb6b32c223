package dto

// AddItemInput mirrors the cart line a shopper creates from a product page.
type AddItemInput struct {
	ProductID      string            `json:"product_id" binding:"required"`
	ProductSlug    string            `json:"product_slug"`
	ProductTitle   string            `json:"product_title"`
	Quantity       int               `json:"quantity" binding:"omitempty,min=1"`
	Color          string            `json:"color"`
	Size           string            `json:"size"`
	Material       string            `json:"material"`
	CustomOptions  map[string]string `json:"custom_options"`
	DesignUploaded bool              `json:"design_uploaded"`
	DesignFileName string            `json:"design_file_name"`
	Notes          string            `json:"notes"`
	UnitPrice      float64           `json:"unit_price"`
}

// UpdateItemInput carries partial updates; absent fields stay as they are.
type UpdateItemInput struct {
	Quantity       *int              `json:"quantity" binding:"omitempty,min=1"`
	Color          *string           `json:"color"`
	Size           *string           `json:"size"`
	Material       *string           `json:"material"`
	CustomOptions  map[string]string `json:"custom_options"`
	DesignUploaded *bool             `json:"design_uploaded"`
	DesignFileName *string           `json:"design_file_name"`
	Notes          *string           `json:"notes"`
}

type AddWishlistInput struct {
	ProductID   string `json:"product_id" binding:"required"`
	ProductSlug string `json:"product_slug" binding:"required"`
}
