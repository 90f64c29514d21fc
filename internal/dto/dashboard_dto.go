package dto

type DashboardResponse struct {
	TotalProducts    int64        `json:"total_products"`
	LowStockProducts int64        `json:"low_stock_products"`
	TotalSuppliers   int64        `json:"total_suppliers"`
	PendingPOs       int64        `json:"pending_pos"`
	RecentPOs        []POResponse `json:"recent_pos"`
}
