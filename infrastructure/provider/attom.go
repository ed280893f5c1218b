// Package provider implements the external real-estate data provider client.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/domain/property"
)

// Default client settings.
const (
	DefaultBaseURL   = "https://api.gateway.attomdata.com/propertyapi/v1.0.0"
	DefaultPageSize  = 100
	DefaultPageDelay = 500 * time.Millisecond
	defaultTimeout   = 30 * time.Second
)

// AttomClient fetches property and ownership records from the ATTOM property
// API. It implements the ingestion pipeline's Provider contract: a missing
// record or a non-success response is reported as absent, never as an error,
// so one bad record degrades to a skip rather than a batch abort.
type AttomClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	pageSize   int
	pageDelay  time.Duration
	logger     *slog.Logger
}

// AttomOption is a functional option for AttomClient.
type AttomOption func(*AttomClient)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(base string) AttomOption {
	return func(c *AttomClient) { c.baseURL = base }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) AttomOption {
	return func(c *AttomClient) { c.httpClient = hc }
}

// WithPageSize sets the paging fetch page size.
func WithPageSize(n int) AttomOption {
	return func(c *AttomClient) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithPageDelay sets the fixed delay between page fetches.
func WithPageDelay(d time.Duration) AttomOption {
	return func(c *AttomClient) { c.pageDelay = d }
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) AttomOption {
	return func(c *AttomClient) { c.logger = logger }
}

// NewAttomClient creates a new AttomClient.
func NewAttomClient(apiKey string, opts ...AttomOption) *AttomClient {
	c := &AttomClient{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		pageSize:   DefaultPageSize,
		pageDelay:  DefaultPageDelay,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// attomEnvelope is the common response wrapper: a status block plus a list
// of property payloads.
type attomEnvelope struct {
	Status struct {
		Total int `json:"total"`
	} `json:"status"`
	Property []attomProperty `json:"property"`
}

type attomProperty struct {
	Identifier struct {
		AttomID int64 `json:"attomId"`
	} `json:"identifier"`
	Address struct {
		OneLine     string `json:"oneLine"`
		Line1       string `json:"line1"`
		Line2       string `json:"line2"`
		Locality    string `json:"locality"`
		CountrySubd string `json:"countrySubd"`
		Postal1     string `json:"postal1"`
	} `json:"address"`
	Location struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"location"`
	Summary struct {
		PropType  string `json:"proptype"`
		YearBuilt int    `json:"yearbuilt"`
	} `json:"summary"`
	Building struct {
		Size struct {
			UniversalSize float64 `json:"universalsize"`
		} `json:"size"`
	} `json:"building"`
	Sale struct {
		Amount struct {
			SaleAmt      float64 `json:"saleamt"`
			SaleTransTyp string  `json:"saletranstype"`
		} `json:"amount"`
		SaleTransDate string `json:"saleTransDate"`
	} `json:"sale"`
	AVM struct {
		Amount struct {
			Value float64 `json:"value"`
			Low   float64 `json:"low"`
			High  float64 `json:"high"`
			Score float64 `json:"scr"`
		} `json:"amount"`
		EventDate string `json:"eventDate"`
	} `json:"avm"`
	Assessment struct {
		Assessed struct {
			AssdTtlValue float64 `json:"assdttlvalue"`
		} `json:"assessed"`
		Market struct {
			MktTtlValue float64 `json:"mktttlvalue"`
		} `json:"market"`
		Tax struct {
			TaxAmt  float64 `json:"taxamt"`
			TaxYear int     `json:"taxyear"`
		} `json:"tax"`
	} `json:"assessment"`
	Owner attomOwner `json:"owner"`
}

type attomOwner struct {
	MailingAddressOneLine string        `json:"mailingaddressoneline"`
	Owner1                attomNameSlot `json:"owner1"`
	Owner2                attomNameSlot `json:"owner2"`
	Owner3                attomNameSlot `json:"owner3"`
	Owner4                attomNameSlot `json:"owner4"`
}

type attomNameSlot struct {
	FullName string `json:"fullname"`
}

// PropertiesByArea returns summaries of every property in a postal code
// matching the property-type filter, paging through the provider listing
// with a fixed inter-page delay. A non-success page response ends the loop
// with whatever was accumulated, mirroring the provider's own guidance to
// treat paging truncation as soft failure.
func (c *AttomClient) PropertiesByArea(ctx context.Context, postalCode, propertyType string) ([]property.Summary, error) {
	var summaries []property.Summary

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("postalcode", postalCode)
		params.Set("propertytype", propertyType)
		params.Set("page", strconv.Itoa(page))
		params.Set("pagesize", strconv.Itoa(c.pageSize))

		envelope, ok, err := c.get(ctx, "/property/address", params)
		if err != nil {
			return nil, err
		}
		if !ok || len(envelope.Property) == 0 {
			break
		}

		for _, p := range envelope.Property {
			if p.Identifier.AttomID != 0 {
				summaries = append(summaries, property.Summary{ExternalID: p.Identifier.AttomID})
			}
		}

		if len(summaries) >= envelope.Status.Total {
			break
		}

		if c.pageDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.pageDelay):
			}
		}
	}

	return summaries, nil
}

// OwnerDetail returns the ownership record for an external record id.
func (c *AttomClient) OwnerDetail(ctx context.Context, externalID int64) (owner.Detail, bool, error) {
	params := url.Values{}
	params.Set("attomid", strconv.FormatInt(externalID, 10))

	envelope, ok, err := c.get(ctx, "/property/detailowner", params)
	if err != nil {
		return owner.Detail{}, false, err
	}
	if !ok || len(envelope.Property) == 0 {
		return owner.Detail{}, false, nil
	}

	raw := envelope.Property[0].Owner
	detail := owner.Detail{
		MailingAddress: raw.MailingAddressOneLine,
		Slots: []owner.Slot{
			{FullName: raw.Owner1.FullName},
			{FullName: raw.Owner2.FullName},
			{FullName: raw.Owner3.FullName},
			{FullName: raw.Owner4.FullName},
		},
	}
	return detail, true, nil
}

// FinancialDetail returns the financial/physical record for an external
// record id.
func (c *AttomClient) FinancialDetail(ctx context.Context, externalID int64) (property.Record, bool, error) {
	params := url.Values{}
	params.Set("attomid", strconv.FormatInt(externalID, 10))

	envelope, ok, err := c.get(ctx, "/property/expandedprofile", params)
	if err != nil {
		return property.Record{}, false, err
	}
	if !ok || len(envelope.Property) == 0 {
		return property.Record{}, false, nil
	}

	return recordFromAttom(envelope.Property[0]), true, nil
}

// recordFromAttom maps a raw provider payload onto the upsert record.
// Coordinates arrive as strings; malformed values are left unset rather than
// failing the record.
func recordFromAttom(p attomProperty) property.Record {
	lat, _ := strconv.ParseFloat(p.Location.Latitude, 64)
	lng, _ := strconv.ParseFloat(p.Location.Longitude, 64)

	return property.Record{
		ExternalID: p.Identifier.AttomID,

		SiteAddress:  p.Address.OneLine,
		AddressLine1: p.Address.Line1,
		AddressLine2: p.Address.Line2,
		City:         p.Address.Locality,
		State:        p.Address.CountrySubd,
		ZipCode:      p.Address.Postal1,
		Latitude:     lat,
		Longitude:    lng,

		PropertyType: p.Summary.PropType,
		YearBuilt:    p.Summary.YearBuilt,
		Size:         p.Building.Size.UniversalSize,

		SaleAmount: p.Sale.Amount.SaleAmt,
		SaleDate:   p.Sale.SaleTransDate,
		SaleType:   p.Sale.Amount.SaleTransTyp,

		AVMValue:       p.AVM.Amount.Value,
		AVMLow:         p.AVM.Amount.Low,
		AVMHigh:        p.AVM.Amount.High,
		AVMScore:       p.AVM.Amount.Score,
		AVMLastUpdated: p.AVM.EventDate,

		AssessedTotalValue: p.Assessment.Assessed.AssdTtlValue,
		MarketTotalValue:   p.Assessment.Market.MktTtlValue,
		TaxAmount:          p.Assessment.Tax.TaxAmt,
		TaxYear:            p.Assessment.Tax.TaxYear,
	}
}

// get performs one API request. A non-2xx response is logged and reported as
// absent (ok=false) rather than an error; only transport failures error.
func (c *AttomClient) get(ctx context.Context, path string, params url.Values) (attomEnvelope, bool, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return attomEnvelope{}, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return attomEnvelope{}, false, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return attomEnvelope{}, false, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("provider fetch failed",
			"path", path,
			"status", resp.StatusCode,
			"body", truncateBody(body),
		)
		return attomEnvelope{}, false, nil
	}

	var envelope attomEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return attomEnvelope{}, false, fmt.Errorf("decode response: %w", err)
	}
	return envelope, true, nil
}

const maxLoggedBody = 256

func truncateBody(body []byte) string {
	if len(body) <= maxLoggedBody {
		return string(body)
	}
	return string(body[:maxLoggedBody]) + "..."
}
