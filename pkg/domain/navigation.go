package domain

// NavItem is an entry of the application navigation.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	// Capability is required to see the item.
	Capability Capability `json:"-"`
}

// navigation lists the dashboard items followed by the consumer tabs.
var navigation = []NavItem{ //nolint: gochecknoglobals
	{Label: "Dashboard", Href: "/dashboard", Capability: CapBatchesRead},
	{Label: "Batches", Href: "/dashboard/batches", Capability: CapBatchesRead},
	{Label: "Create Batch", Href: "/dashboard/batches/create", Capability: CapBatchesCreate},
	{Label: "Transfers", Href: "/dashboard/transfers", Capability: CapTransfersRead},
	{Label: "Verification", Href: "/dashboard/verification", Capability: CapVerificationManage},
	{Label: "Analytics", Href: "/dashboard/analytics", Capability: CapAnalyticsRead},
	{Label: "QR Verify", Href: "/dashboard/qr", Capability: CapQRManage},
	{Label: "Settings", Href: "/dashboard/settings", Capability: CapSettingsRead},
	{Label: "Marketplace", Href: "/consumer/marketplace", Capability: CapMarketplaceRead},
	{Label: "Orders", Href: "/consumer/orders", Capability: CapOrdersRead},
	{Label: "Scan", Href: "/verify", Capability: CapMarketplaceRead},
	{Label: "Profile", Href: "/consumer/profile", Capability: CapProfileManage},
}

// Navigation returns the items r may see, in display order.
func Navigation(r Role) []NavItem {
	items := make([]NavItem, 0, len(navigation))
	for _, item := range navigation {
		if r.Can(item.Capability) {
			items = append(items, item)
		}
	}

	return items
}
