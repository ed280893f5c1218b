package wealthmap_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthmap/wealthmap"
	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/domain/property"
)

// stubProvider serves a fixed two-record area from memory.
type stubProvider struct {
	owners  map[int64]owner.Detail
	records map[int64]property.Record
}

func (p stubProvider) PropertiesByArea(_ context.Context, _, _ string) ([]property.Summary, error) {
	summaries := make([]property.Summary, 0, len(p.records))
	for id := range p.records {
		summaries = append(summaries, property.Summary{ExternalID: id})
	}
	return summaries, nil
}

func (p stubProvider) OwnerDetail(_ context.Context, externalID int64) (owner.Detail, bool, error) {
	d, ok := p.owners[externalID]
	return d, ok, nil
}

func (p stubProvider) FinancialDetail(_ context.Context, externalID int64) (property.Record, bool, error) {
	r, ok := p.records[externalID]
	return r, ok, nil
}

func newTestClient(t *testing.T, provider stubProvider) *wealthmap.Client {
	t.Helper()

	client, err := wealthmap.New(
		wealthmap.WithSQLite(filepath.Join(t.TempDir(), "wealthmap.db")),
		wealthmap.WithProvider(provider),
		wealthmap.WithIngestDelay(0),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewRequiresDatabase(t *testing.T) {
	_, err := wealthmap.New()
	assert.ErrorIs(t, err, wealthmap.ErrNoDatabase)
}

func TestIngestAndQuery(t *testing.T) {
	ctx := context.Background()

	provider := stubProvider{
		owners: map[int64]owner.Detail{
			1001: {
				MailingAddress: "123 MAIN ST, SPRINGFIELD, CA 90210",
				Slots:          []owner.Slot{{FullName: "SMITH JOHN"}, {FullName: "SMITH MARY"}},
			},
			1002: {
				MailingAddress: "123 MAIN ST, SPRINGFIELD, CA 90210",
				Slots:          []owner.Slot{{FullName: "SMITH JOHN"}},
			},
		},
		records: map[int64]property.Record{
			1001: {State: "CA", ZipCode: "90210", AVMValue: 2_500_000, AVMScore: 95},
			1002: {State: "NY", ZipCode: "10007", SaleAmount: 1_800_000},
		},
	}

	client := newTestClient(t, provider)
	require.NoError(t, client.Ingestion.IngestArea(ctx, "90210", "SFR"))

	// Both records landed, and the shared owner was identity-resolved once.
	listings, err := client.Properties.Find(ctx, property.Filter{})
	require.NoError(t, err)
	assert.Len(t, listings, 2)

	owners, err := client.Owners.Find(ctx, owner.Filter{})
	require.NoError(t, err)
	require.Len(t, owners, 2)

	// John Smith owns both properties and carries an estimate spanning them.
	matches, err := client.Owners.Find(ctx, owner.Filter{Name: "smith john"})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	portfolio, err := client.Owners.Get(ctx, matches[0].ID())
	require.NoError(t, err)
	assert.Len(t, portfolio.Properties, 2)
	require.NotNil(t, portfolio.Owner.EstimatedNetWorth())
	assert.Positive(t, *portfolio.Owner.EstimatedNetWorth())
	assert.NotEmpty(t, portfolio.Owner.Confidence())

	// Re-ingesting the same area is idempotent.
	require.NoError(t, client.Ingestion.IngestArea(ctx, "90210", "SFR"))

	count, err := client.Properties.Count(ctx, property.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	ownerCount, err := client.Owners.Count(ctx, owner.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), ownerCount)
}

func TestProcessRecordDirect(t *testing.T) {
	ctx := context.Background()

	provider := stubProvider{
		owners: map[int64]owner.Detail{
			7: {MailingAddress: "9 ELM ST", Slots: []owner.Slot{{FullName: "DOE JANE"}}},
		},
		records: map[int64]property.Record{
			7: {State: "CT", AVMValue: 900_000},
		},
	}

	client := newTestClient(t, provider)

	touched := client.Ingestion.ProcessRecord(ctx, 7, "SFR")
	require.Len(t, touched, 1)

	portfolio, err := client.Owners.Get(ctx, touched[0])
	require.NoError(t, err)
	assert.Equal(t, "DOE JANE", portfolio.Owner.FullName())
	require.Len(t, portfolio.Properties, 1)
	assert.Equal(t, int64(7), portfolio.Properties[0].ExternalID())
	assert.Equal(t, "SFR", portfolio.Properties[0].Type())
}
