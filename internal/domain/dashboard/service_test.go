package dashboard

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paydash/internal/core/apperror"
	"paydash/internal/domain/filter"
	"paydash/internal/domain/table"
	"paydash/pkg/logger"
)

func newTestService(t *testing.T, fetcher Fetcher) *Service {
	t.Helper()

	store := filter.NewStore(filter.DashboardRegistry())
	svc, err := NewService(ServiceConfig{
		Store:    store,
		Fetcher:  fetcher,
		Views:    DefaultViews(table.FormatOptions{Currency: "USD"}),
		PageSize: 25,
		Logger:   logger.NewNop(),
	})
	require.NoError(t, err)
	return svc
}

func transactionsEnvelope() Envelope {
	next := 2
	return Envelope{
		TotalRecord: 3,
		TotalPage:   2,
		Limit:       2,
		Page:        1,
		NextPage:    &next,
		Data: []table.Record{
			{"id": 1, "reference": "TX-1", "customer_first_name": "Ada", "customer_last_name": "Lovelace", "amount": "12.5", "status": "success", "refunded": false},
			{"id": 2, "reference": "TX-2", "customer_first_name": "Grace", "amount": 0, "status": "failed"},
		},
	}
}

func TestService_Load(t *testing.T) {
	fetcher := NewStaticFetcher().Set("/transactions", transactionsEnvelope())
	svc := newTestService(t, fetcher)

	require.NoError(t, svc.SetFilter("transactions", filter.KeyStatus, filter.Strings("SUCCESS", "FAILED")))
	require.NoError(t, svc.SetFilter("transactions", filter.KeyCreatedAt, filter.Period(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)))

	page, err := svc.Load(context.Background(), "transactions", PageRequest{Page: 2})
	require.NoError(t, err)

	params, ok := fetcher.LastParams("/transactions")
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"search":         "",
		"status":         "SUCCESS,FAILED",
		"payment_method": "",
		"created_at":     "2024-01-01,2024-01-31",
		"page":           "2",
		"limit":          "25",
	}, params)

	assert.Equal(t, "transactions", page.View)
	assert.Equal(t, []string{"Reference", "Customer", "Amount", "Method", "Status", "Date"}, page.Headers)
	assert.Equal(t, 3, page.Meta.TotalRecord)
	require.NotNil(t, page.Meta.NextPage)
	assert.Equal(t, 2, *page.Meta.NextPage)
	assert.Nil(t, page.Meta.PrevPage)

	require.Len(t, page.Rows, 2)
	assert.Equal(t, "Ada Lovelace", page.Rows[0]["Customer"])
	assert.Equal(t, "12.50 USD", page.Rows[0]["amount"])
	assert.Equal(t, "SUCCESS", page.Rows[0]["status"])
	assert.Equal(t, "", page.Rows[0]["payment_method"])
	assert.Equal(t, "Grace", page.Rows[1]["Customer"])
	assert.Equal(t, "0.00 USD", page.Rows[1]["amount"])
	assert.Equal(t, 2, page.Rows[1].Raw()["id"])
}

func TestService_LoadDefaultsPageAndLimit(t *testing.T) {
	fetcher := NewStaticFetcher().Set("/offers", Envelope{})
	svc := newTestService(t, fetcher)

	page, err := svc.Load(context.Background(), "offers", PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, page.Rows)

	params, _ := fetcher.LastParams("/offers")
	assert.Equal(t, map[string]string{"status": "", "page": "1", "limit": "25"}, params)
}

func TestService_LoadUnknownView(t *testing.T) {
	svc := newTestService(t, NewStaticFetcher())

	_, err := svc.Load(context.Background(), "refunds", PageRequest{})

	assert.True(t, apperror.IsNotFound(err))
}

func TestService_LoadFetchError(t *testing.T) {
	apiErr := &apperror.AppError{Code: "MERCHANT_SUSPENDED", Message: "merchant suspended", HTTPStatus: 403}
	svc := newTestService(t, FetcherFunc(func(context.Context, string, map[string]string) (Envelope, error) {
		return Envelope{}, apiErr
	}))

	_, err := svc.Load(context.Background(), "merchants", PageRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "fetch /merchants")
	assert.Equal(t, 403, apperror.GetHTTPStatus(err))
}

func TestService_LoadMissingResponse(t *testing.T) {
	svc := newTestService(t, NewStaticFetcher())

	_, err := svc.Load(context.Background(), "customers", PageRequest{})

	assert.True(t, apperror.HasCode(err, apperror.CodeUpstream))
}

func TestService_LoadCanceled(t *testing.T) {
	svc := newTestService(t, NewStaticFetcher().Set("/customers", Envelope{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Load(ctx, "customers", PageRequest{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_ChangeScope(t *testing.T) {
	svc := newTestService(t, NewStaticFetcher())
	store := svc.Store()

	require.NoError(t, svc.SetFilter("merchants", filter.KeySearch, filter.String("acme")))
	require.NoError(t, svc.SetFilter("customers", filter.KeyVerified, filter.SomeBool(true)))
	require.NoError(t, svc.SetFilter("offers", filter.KeyProductID, filter.SomeID(7)))

	require.NoError(t, svc.ChangeScope("customers"))

	snap := store.Snapshot()
	merchants, _ := snap.Category(filter.Merchants)
	defMerchants, _ := store.Registry().Default(filter.Merchants)
	assert.True(t, merchants.Equal(defMerchants))

	offers, _ := snap.Category(filter.Offers)
	assert.Empty(t, offers.Active())

	verified, err := store.Get(filter.Customers, filter.KeyVerified)
	require.NoError(t, err)
	assert.True(t, verified.Equal(filter.SomeBool(true)))

	assert.True(t, apperror.IsNotFound(svc.ChangeScope("nope")))
}

func TestService_SetFilterGuards(t *testing.T) {
	svc := newTestService(t, NewStaticFetcher())

	err := svc.SetFilter("offers", filter.KeySearch, filter.String("x"))
	assert.True(t, apperror.HasCode(err, apperror.CodeUnknownKey))

	err = svc.SetFilter("offers", filter.KeyStatus, filter.String("ACTIVE"))
	assert.True(t, apperror.HasCode(err, apperror.CodeTypeMismatch))
}

func TestService_Params(t *testing.T) {
	svc := newTestService(t, NewStaticFetcher())
	require.NoError(t, svc.SetFilter("customers", filter.KeyMerchantID, filter.SomeID(42)))

	params, err := svc.Params("customers", PageRequest{Page: 3, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "42", params["merchant_id"])
	assert.Equal(t, "3", params["page"])
	assert.Equal(t, "10", params["limit"])
	_, hasVerified := params["verified"]
	assert.False(t, hasVerified)
}

func TestNewService_Validation(t *testing.T) {
	store := filter.NewStore(filter.DashboardRegistry())

	tests := []struct {
		name string
		cfg  ServiceConfig
		code string
	}{
		{"no store", ServiceConfig{Fetcher: NewStaticFetcher()}, apperror.CodeValidation},
		{"no fetcher", ServiceConfig{Store: store}, apperror.CodeValidation},
		{"duplicate view", ServiceConfig{Store: store, Fetcher: NewStaticFetcher(), Views: []View{
			{Name: "a", Category: filter.Offers}, {Name: "a", Category: filter.Products},
		}}, apperror.CodeValidation},
		{"unknown category", ServiceConfig{Store: store, Fetcher: NewStaticFetcher(), Views: []View{
			{Name: "refunds", Category: "refunds"},
		}}, apperror.CodeUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.cfg)
			assert.True(t, apperror.HasCode(err, tt.code))
		})
	}
}

func TestService_Views(t *testing.T) {
	svc := newTestService(t, NewStaticFetcher())

	var names []string
	for _, v := range svc.Views() {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"merchants", "customers", "transactions", "offers"}, names)
}

func TestOverride(t *testing.T) {
	spec, err := table.LoadSpec(strings.NewReader("views:\n  offers:\n    - field: name\n      label: Name\n"), nil)
	require.NoError(t, err)

	views := Override(DefaultViews(table.FormatOptions{}), spec)

	for _, v := range views {
		if v.Name == "offers" {
			assert.Equal(t, []string{"Name"}, table.Headers(v.Columns))
		} else {
			assert.Greater(t, len(v.Columns), 1)
		}
	}
}

func TestStaticFetcher_NoParamsBeforeFetch(t *testing.T) {
	_, ok := NewStaticFetcher().LastParams("/x")
	assert.False(t, ok)
}
