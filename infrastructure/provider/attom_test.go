package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *AttomClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAttomClient("test-key",
		WithBaseURL(srv.URL),
		WithPageSize(2),
		WithPageDelay(0),
	)
}

func TestPropertiesByAreaPaging(t *testing.T) {
	pages := map[string]string{
		"1": `{"status":{"total":3},"property":[
			{"identifier":{"attomId":1001}},
			{"identifier":{"attomId":1002}}
		]}`,
		"2": `{"status":{"total":3},"property":[
			{"identifier":{"attomId":1003}}
		]}`,
	}

	var gotKey string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/property/address", r.URL.Path)
		assert.Equal(t, "90210", r.URL.Query().Get("postalcode"))
		assert.Equal(t, "SFR", r.URL.Query().Get("propertytype"))
		gotKey = r.Header.Get("apikey")

		body, ok := pages[r.URL.Query().Get("page")]
		require.True(t, ok, "unexpected page %s", r.URL.Query().Get("page"))
		fmt.Fprint(w, body)
	}))

	summaries, err := client.PropertiesByArea(context.Background(), "90210", "SFR")
	require.NoError(t, err)

	require.Len(t, summaries, 3)
	assert.Equal(t, int64(1001), summaries[0].ExternalID)
	assert.Equal(t, int64(1003), summaries[2].ExternalID)
	assert.Equal(t, "test-key", gotKey)
}

func TestPropertiesByAreaEmptyListing(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":{"total":0},"property":[]}`)
	}))

	summaries, err := client.PropertiesByArea(context.Background(), "00000", "SFR")
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestOwnerDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/property/detailowner", r.URL.Path)
		assert.Equal(t, "1001", r.URL.Query().Get("attomid"))
		fmt.Fprint(w, `{"status":{"total":1},"property":[{
			"identifier":{"attomId":1001},
			"owner":{
				"mailingaddressoneline":"123 MAIN ST, SPRINGFIELD, CA 90210",
				"owner1":{"fullname":"SMITH JOHN"},
				"owner2":{"fullname":"SMITH MARY"},
				"owner3":{"fullname":""},
				"owner4":{"fullname":""}
			}
		}]}`)
	}))

	detail, ok, err := client.OwnerDetail(context.Background(), 1001)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "123 MAIN ST, SPRINGFIELD, CA 90210", detail.MailingAddress)
	named := detail.NamedSlots()
	require.Len(t, named, 2)
	assert.Equal(t, "SMITH JOHN", named[0].FullName)
	assert.Equal(t, "SMITH MARY", named[1].FullName)
}

func TestOwnerDetailAbsent(t *testing.T) {
	t.Run("empty property list", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"status":{"total":0},"property":[]}`)
		}))

		_, ok, err := client.OwnerDetail(context.Background(), 4040)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non-success status", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"status":{"msg":"SuccessWithoutResult"}}`, http.StatusBadRequest)
		}))

		_, ok, err := client.OwnerDetail(context.Background(), 4040)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestFinancialDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/property/expandedprofile", r.URL.Path)
		fmt.Fprint(w, `{"status":{"total":1},"property":[{
			"identifier":{"attomId":1001},
			"address":{
				"oneLine":"123 MAIN ST, SPRINGFIELD, CA 90210",
				"line1":"123 MAIN ST",
				"locality":"SPRINGFIELD",
				"countrySubd":"CA",
				"postal1":"90210"
			},
			"location":{"latitude":"34.0901","longitude":"-118.4065"},
			"summary":{"proptype":"SFR","yearbuilt":1938},
			"building":{"size":{"universalsize":5200}},
			"sale":{"amount":{"saleamt":4500000,"saletranstype":"Resale"},"saleTransDate":"2025-03-10"},
			"avm":{"amount":{"value":5000000,"low":4200000,"high":5600000,"scr":95},"eventDate":"2025-05-01"},
			"assessment":{
				"assessed":{"assdttlvalue":3900000},
				"market":{"mktttlvalue":4800000},
				"tax":{"taxamt":32000,"taxyear":2024}
			}
		}]}`)
	}))

	rec, ok, err := client.FinancialDetail(context.Background(), 1001)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, int64(1001), rec.ExternalID)
	assert.Equal(t, "SPRINGFIELD", rec.City)
	assert.Equal(t, "CA", rec.State)
	assert.Equal(t, "90210", rec.ZipCode)
	assert.InDelta(t, 34.0901, rec.Latitude, 1e-6)
	assert.InDelta(t, -118.4065, rec.Longitude, 1e-6)
	assert.Equal(t, "SFR", rec.PropertyType)
	assert.Equal(t, 1938, rec.YearBuilt)
	assert.InDelta(t, 5200, rec.Size, 1e-6)
	assert.InDelta(t, 4_500_000, rec.SaleAmount, 1e-6)
	assert.Equal(t, "2025-03-10", rec.SaleDate)
	assert.InDelta(t, 5_000_000, rec.AVMValue, 1e-6)
	assert.InDelta(t, 95, rec.AVMScore, 1e-6)
	assert.Equal(t, "2025-05-01", rec.AVMLastUpdated)
	assert.InDelta(t, 3_900_000, rec.AssessedTotalValue, 1e-6)
	assert.InDelta(t, 4_800_000, rec.MarketTotalValue, 1e-6)
	assert.InDelta(t, 32_000, rec.TaxAmount, 1e-6)
	assert.Equal(t, 2024, rec.TaxYear)
}

func TestFinancialDetailMalformedCoordinates(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":{"total":1},"property":[{
			"identifier":{"attomId":7},
			"location":{"latitude":"not-a-number","longitude":""}
		}]}`)
	}))

	rec, ok, err := client.FinancialDetail(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, rec.Latitude)
	assert.Zero(t, rec.Longitude)
}

func TestGetTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse all connections

	client := NewAttomClient("test-key", WithBaseURL(srv.URL), WithPageDelay(0))

	_, _, err := client.OwnerDetail(context.Background(), 1)
	assert.Error(t, err)
}
