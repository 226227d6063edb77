package covidcases

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fabioo29/covid-cases-prediction/dataset"
	"github.com/fabioo29/covid-cases-prediction/errs"
	"github.com/fabioo29/covid-cases-prediction/source"
)

const apiBody = `[
	{"data": "01-01-2021", "distrito": "Braga", "concelho": "GUIMARÃES", "confirmados_1": 10},
	{"data": "02-01-2021", "distrito": "Braga", "concelho": "GUIMARÃES", "confirmados_1": 12},
	{"data": "03-01-2021", "distrito": "Braga", "concelho": "GUIMARÃES", "confirmados_1": 14},
	{"data": "04-01-2021", "distrito": "Braga", "concelho": "GUIMARÃES", "confirmados_1": 16},
	{"data": "01-01-2021", "distrito": "Braga", "concelho": "BRAGA", "confirmados_1": 20},
	{"data": "01-01-2021", "distrito": "Porto", "concelho": "MAIA", "confirmados_1": 99}
]`

func TestFetchStoreAndForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(apiBody))
	}))
	t.Cleanup(server.Close)

	client, err := source.NewClient(
		source.WithBaseURL(server.URL),
		source.WithHTTPClient(server.Client()),
		source.WithRateLimit(1000),
	)
	require.NoError(t, err)

	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC)

	store, err := FetchStore(context.Background(), client, "Braga", start, end)
	require.NoError(t, err)

	// Only Braga counties survive the district filter.
	require.Equal(t, []string{"BRAGA", "GUIMARÃES"}, store.Entities())

	result, err := ForecastEntity(store, "Guimarães", 1, 2)
	require.NoError(t, err)

	// The series grows by 2 per day; the linear trend carries that forward.
	require.Equal(t, 4, result.SplitIndex)
	require.Len(t, result.YForecast, 2)
	require.InDelta(t, 10+2*33, result.YForecast[0], 1e-6)
}

func TestForecastEntityUnknownCounty(t *testing.T) {
	store := dataset.SeriesStore{}
	_, err := ForecastEntity(store, "Guimarães", DefaultDegree, DefaultPredictions)
	require.ErrorIs(t, err, errs.ErrEmptyResult)
}
