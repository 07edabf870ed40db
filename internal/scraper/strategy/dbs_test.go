package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bank-feed/models"
)

type scriptedPage struct {
	fills    map[string]string
	clicks   []string
	textErr  error
	evalData models.ScrapedData
	evalErr  error
}

func newScriptedPage() *scriptedPage {
	return &scriptedPage{fills: make(map[string]string)}
}

func (p *scriptedPage) Navigate(_ context.Context, _ string) error { return nil }
func (p *scriptedPage) WaitReady(_ context.Context) error          { return nil }

func (p *scriptedPage) Fill(_ context.Context, selector, value string) error {
	p.fills[selector] = value
	return nil
}

func (p *scriptedPage) Click(_ context.Context, selector string) error {
	p.clicks = append(p.clicks, selector)
	return nil
}

func (p *scriptedPage) Text(_ context.Context, _ string) (string, error) {
	return "", p.textErr
}

func (p *scriptedPage) Evaluate(_ context.Context, _ string, out any) error {
	if p.evalErr != nil {
		return p.evalErr
	}
	*(out.(*models.ScrapedData)) = p.evalData
	return nil
}

func (p *scriptedPage) Close() error { return nil }

func TestDBSScrape(t *testing.T) {
	page := newScriptedPage()
	page.evalData = models.ScrapedData{
		"My Savings Account": map[string]any{
			"totalBalance": 1250.75,
			"accountKind":  "savings",
		},
	}

	dbs := NewDBS()
	data, err := dbs.Scrape(context.Background(), `{"username":"u1","password":"p1"}`, page)
	require.NoError(t, err)

	assert.Equal(t, page.evalData, data)
	assert.Equal(t, "u1", page.fills[dbsUserIDSelector])
	assert.Equal(t, "p1", page.fills[dbsPINSelector])
	assert.Equal(t, []string{dbsLoginSelector}, page.clicks)
}

func TestDBSScrapeBadCredential(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{name: "not json", secret: "plain-text"},
		{name: "missing password", secret: `{"username":"u1"}`},
		{name: "missing username", secret: `{"password":"p1"}`},
	}

	dbs := NewDBS()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := newScriptedPage()
			_, err := dbs.Scrape(context.Background(), tt.secret, page)
			require.Error(t, err)
			assert.Empty(t, page.clicks, "login must not be attempted with a bad credential")
		})
	}
}

func TestDBSScrapeLoginNotReached(t *testing.T) {
	page := newScriptedPage()
	page.textErr = errors.New("selector not found")

	dbs := NewDBS()
	_, err := dbs.Scrape(context.Background(), `{"username":"u1","password":"p1"}`, page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account summary")
}

func TestDBSIdentity(t *testing.T) {
	dbs := NewDBS()
	assert.Equal(t, "dbs", dbs.Name())
	assert.NotEmpty(t, dbs.StartURL())
}
