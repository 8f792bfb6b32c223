package order

import "github.com/narendranaragani/printmaania/internal/model"

// StatusInfo is the display metadata a client renders for an order status.
type StatusInfo struct {
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var statusInfo = map[model.OrderStatus]StatusInfo{
	model.OrderStatusReceived: {
		Label:       "Order Received",
		Color:       "text-blue-400",
		Description: "We have received your order and payment.",
	},
	model.OrderStatusPrinting: {
		Label:       "Printing",
		Color:       "text-purple-400",
		Description: "Your custom design is being printed.",
	},
	model.OrderStatusPacked: {
		Label:       "Packed",
		Color:       "text-yellow-400",
		Description: "Your order has been packed and is ready to ship.",
	},
	model.OrderStatusShipped: {
		Label:       "Shipped",
		Color:       "text-orange-400",
		Description: "Your order is on its way to you.",
	},
	model.OrderStatusDelivered: {
		Label:       "Delivered",
		Color:       "text-green-400",
		Description: "Your order has been delivered.",
	},
	model.OrderStatusCancelled: {
		Label:       "Cancelled",
		Color:       "text-red-400",
		Description: "This order has been cancelled.",
	},
}

// GetStatusInfo falls back to the order_received metadata for an unknown
// status so a renderer always has something to show.
func GetStatusInfo(s model.OrderStatus) StatusInfo {
	if info, ok := statusInfo[s]; ok {
		return info
	}
	return statusInfo[model.OrderStatusReceived]
}
