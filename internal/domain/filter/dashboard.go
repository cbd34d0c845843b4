package filter

// Dashboard categories.
const (
	Merchants    Category = "merchants"
	Customers    Category = "customers"
	Transactions Category = "transactions"
	Offers       Category = "offers"
	Products     Category = "products"
)

// Common keys.
const (
	KeySearch        Key = "search"
	KeyStatus        Key = "status"
	KeyCreatedAt     Key = "created_at"
	KeyProductID     Key = "product_id"
	KeyMerchantID    Key = "merchant_id"
	KeyCustomerID    Key = "customer_id"
	KeyPaymentMethod Key = "payment_method"
	KeyVerified      Key = "verified"
	KeyRefunded      Key = "refunded"
)

// DashboardCategories returns the filter definitions of the payments dashboard.
func DashboardCategories() []CategoryDef {
	return []CategoryDef{
		{
			Name:  Merchants,
			Label: "Merchants",
			Keys: []KeyDef{
				{Name: KeySearch, Kind: KindString, Label: "Search", Column: "business_name"},
				{Name: KeyStatus, Kind: KindStringSet, Label: "Status"},
				{Name: KeyProductID, Kind: KindID, Label: "Product"},
				{Name: KeyCreatedAt, Kind: KindDateRange, Label: "Created"},
			},
		},
		{
			Name:  Customers,
			Label: "Customers",
			Keys: []KeyDef{
				{Name: KeySearch, Kind: KindString, Label: "Search", Column: "email"},
				{Name: KeyStatus, Kind: KindStringSet, Label: "Status"},
				{Name: KeyMerchantID, Kind: KindID, Label: "Merchant"},
				{Name: KeyVerified, Kind: KindBool, Label: "Verified"},
				{Name: KeyCreatedAt, Kind: KindDateRange, Label: "Created"},
			},
		},
		{
			Name:  Transactions,
			Label: "Transactions",
			Keys: []KeyDef{
				{Name: KeySearch, Kind: KindString, Label: "Reference", Column: "reference"},
				{Name: KeyStatus, Kind: KindStringSet, Label: "Status"},
				{Name: KeyPaymentMethod, Kind: KindStringSet, Label: "Payment method"},
				{Name: KeyMerchantID, Kind: KindID, Label: "Merchant"},
				{Name: KeyCustomerID, Kind: KindID, Label: "Customer"},
				{Name: KeyRefunded, Kind: KindBool, Label: "Refunded"},
				{Name: KeyCreatedAt, Kind: KindDateRange, Label: "Created"},
			},
		},
		{
			Name:  Offers,
			Label: "Offers",
			Keys: []KeyDef{
				{Name: KeyStatus, Kind: KindStringSet, Label: "Status"},
				{Name: KeyProductID, Kind: KindID, Label: "Product"},
			},
		},
		{
			Name:  Products,
			Label: "Products",
			Keys: []KeyDef{
				{Name: KeySearch, Kind: KindString, Label: "Search", Column: "name"},
				{Name: KeyStatus, Kind: KindStringSet, Label: "Status"},
			},
		},
	}
}

// DashboardRegistry builds the registry of the payments dashboard.
func DashboardRegistry() *Registry {
	return MustNewRegistry(DashboardCategories()...)
}
