package whatsapp

// Payload is a sealed union of the three order-request message shapes. Only
// types in this package can implement it, which keeps the builder's type
// switch exhaustive.
type Payload interface {
	payloadKind() string
}

// BulkOrder is the bulk-enquiry form from the landing page.
type BulkOrder struct {
	ProductCategory string `json:"product_category" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	Type            string `json:"type" binding:"required"`
	Color           string `json:"color" binding:"required"`
	Fabric          string `json:"fabric" binding:"required"`
	Notes           string `json:"notes,omitempty"`
}

// NormalOrder is the generic custom-order form.
type NormalOrder struct {
	Product      string `json:"product" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Notes        string `json:"notes,omitempty"`
}

// ProductOrder is a single-product order raised from a product page. Only
// the title and quantity are mandatory; every other field is appended to
// the message when present.
type ProductOrder struct {
	ProductTitle   string            `json:"product_title" binding:"required"`
	Quantity       int               `json:"quantity" binding:"required,min=1"`
	Color          string            `json:"color,omitempty"`
	Size           string            `json:"size,omitempty"`
	Material       string            `json:"material,omitempty"`
	CustomOptions  map[string]string `json:"custom_options,omitempty"`
	DesignUploaded bool              `json:"design_uploaded"`
	DesignFileName string            `json:"design_file_name,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	CustomerName   string            `json:"customer_name,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Address        string            `json:"address,omitempty"`
}

// OrderConfirmation is built server side after checkout when the shopper
// pays via WhatsApp; it is never bound from a request.
type OrderConfirmation struct {
	OrderNumber  string             `json:"order_number"`
	Total        float64            `json:"total"`
	CustomerName string             `json:"customer_name"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Items        []ConfirmationItem `json:"items"`
}

type ConfirmationItem struct {
	ProductTitle string `json:"product_title"`
	Quantity     int    `json:"quantity"`
	Color        string `json:"color,omitempty"`
	Size         string `json:"size,omitempty"`
}

func (BulkOrder) payloadKind() string         { return "bulk" }
func (NormalOrder) payloadKind() string       { return "normal" }
func (ProductOrder) payloadKind() string      { return "product" }
func (OrderConfirmation) payloadKind() string { return "order" }
