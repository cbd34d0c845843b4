package dashboard

import (
	"paydash/internal/domain/filter"
	"paydash/internal/domain/table"
)

// View binds a dashboard page to its filter category, the API resource it
// lists and the columns its table shows.
type View struct {
	Name     string
	Category filter.Category
	Resource string
	Columns  []table.Column
}

// DefaultViews returns the built-in table views.
func DefaultViews(opts table.FormatOptions) []View {
	fmts := table.DefaultFormatters(opts)

	return []View{
		{
			Name:     "merchants",
			Category: filter.Merchants,
			Resource: "/merchants",
			Columns: []table.Column{
				table.FieldColumn("business_name", "Business"),
				table.FieldColumn("email", "Email"),
				table.CompositeColumn("Location", "city", "country").WithFormat(fmts["join_comma"]),
				table.FieldColumn("status", "Status").WithFormat(fmts["upper"]),
				table.FieldColumn("created_at", "Created").WithFormat(fmts["date"]),
			},
		},
		{
			Name:     "customers",
			Category: filter.Customers,
			Resource: "/customers",
			Columns: []table.Column{
				table.CompositeColumn("Name", "first_name", "last_name"),
				table.FieldColumn("email", "Email"),
				table.FieldColumn("phone", "Phone"),
				table.FieldColumn("balance", "Balance").WithFormat(fmts["money"]),
				table.FieldColumn("created_at", "Created").WithFormat(fmts["date"]),
			},
		},
		{
			Name:     "transactions",
			Category: filter.Transactions,
			Resource: "/transactions",
			Columns: []table.Column{
				table.FieldColumn("reference", "Reference"),
				table.CompositeColumn("Customer", "customer_first_name", "customer_last_name"),
				table.FieldColumn("amount", "Amount").WithFormat(fmts["money"]),
				table.FieldColumn("payment_method", "Method"),
				table.FieldColumn("status", "Status").WithFormat(fmts["upper"]),
				table.FieldColumn("created_at", "Date").WithFormat(fmts["datetime"]),
			},
		},
		{
			Name:     "offers",
			Category: filter.Offers,
			Resource: "/offers",
			Columns: []table.Column{
				table.FieldColumn("name", "Offer"),
				table.FieldColumn("product_name", "Product"),
				table.FieldColumn("discount", "Discount").WithFormat(fmts["number"]),
				table.FieldColumn("status", "Status").WithFormat(fmts["upper"]),
				table.FieldColumn("expires_at", "Expires").WithFormat(fmts["date"]),
			},
		},
	}
}

// Override replaces the columns of views named in spec. Views not in spec
// keep their columns; spec entries without a matching view are ignored.
func Override(views []View, spec table.Spec) []View {
	out := make([]View, len(views))
	for i, v := range views {
		if cols, ok := spec[v.Name]; ok {
			v.Columns = cols
		}
		out[i] = v
	}
	return out
}
