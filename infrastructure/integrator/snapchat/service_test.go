package snapchat

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	snapdomain "github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/domain"
	"github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/mocks"
	"github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/snapclient"
	"github.com/vfg2006/snapchat-ads-report/internal/config"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func entry(day int, impressions, spend *int64) snapdomain.TimeseriesEntry {
	return snapdomain.TimeseriesEntry{
		StartTime: fmt.Sprintf("2021-01-%02dT00:00:00.000+01:00", day),
		EndTime:   fmt.Sprintf("2021-01-%02dT00:00:00.000+01:00", day+1),
		Stats:     &snapdomain.Stats{Impressions: impressions, Spend: spend},
	}
}

func TestSnapchatIntegrator_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(time.UTC, mockClient)

	creds := config.Snapchat{ClientID: "client", ClientSecret: "secret", RefreshToken: "refresh"}

	mockClient.EXPECT().
		ExchangeToken(gomock.Any(), snapclient.TokenRequest{ClientID: "client", ClientSecret: "secret", RefreshToken: "refresh"}).
		Return(&snapdomain.TokenResponse{AccessToken: "abc"}, nil)

	token, err := service.Authenticate(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessToken("abc"), token)

	mockClient.EXPECT().
		ExchangeToken(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: boom", domain.ErrAuthFailed))

	token, err = service.Authenticate(context.Background(), creds)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
	assert.Empty(t, token)
}

func TestSnapchatIntegrator_ListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(time.UTC, mockClient)

	mockClient.EXPECT().
		GetCampaignsByAdAccountID(gomock.Any(), domain.AccessToken("abc"), "acc").
		Return([]snapdomain.Campaign{{ID: "c2", Name: "B"}, {ID: "c1", Name: "A"}}, nil)

	campaigns, err := service.ListCampaigns(context.Background(), "abc", "acc")
	require.NoError(t, err)
	assert.Equal(t, []domain.Campaign{{ID: "c2"}, {ID: "c1"}}, campaigns)
}

func TestSnapchatIntegrator_FetchDailyStats(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	window, err := domain.ParseDateWindow("2021-01-01", "2021-01-11")
	require.NoError(t, err)

	tests := []struct {
		name     string
		setup    func(mockClient *mocks.MockClient)
		validate func(t *testing.T, rows []domain.DailyStat, err error)
	}{
		{
			name: "converte o gasto e preserva a ordem",
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					GetCampaignStatsByID(gomock.Any(), domain.AccessToken("abc"), "c1",
						time.Date(2021, 1, 1, 0, 0, 0, 0, paris),
						time.Date(2021, 1, 11, 0, 0, 0, 0, paris)).
					Return(&snapdomain.TimeseriesStat{Timeseries: []snapdomain.TimeseriesEntry{
						entry(1, int64Ptr(100), int64Ptr(5_000_000)),
						entry(2, int64Ptr(0), int64Ptr(0)),
						entry(3, int64Ptr(7), int64Ptr(1_500_000)),
					}}, nil)
			},
			validate: func(t *testing.T, rows []domain.DailyStat, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 3)
				assert.Equal(t, "c1", rows[0].CampaignID)
				assert.Equal(t, int64(100), rows[0].Impressions)
				assert.Equal(t, 5.0, rows[0].Spend)
				assert.Equal(t, 0.0, rows[1].Spend)
				assert.Equal(t, 1.5, rows[2].Spend)
				assert.Equal(t, "2021-01-03T00:00:00+01:00", rows[2].PeriodStart.Format(time.RFC3339))
				assert.Equal(t, "2021-01-04T00:00:00+01:00", rows[2].PeriodEnd.Format(time.RFC3339))
			},
		},
		{
			name: "série vazia não gera linhas",
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					GetCampaignStatsByID(gomock.Any(), gomock.Any(), "c1", gomock.Any(), gomock.Any()).
					Return(&snapdomain.TimeseriesStat{Timeseries: []snapdomain.TimeseriesEntry{}}, nil)
			},
			validate: func(t *testing.T, rows []domain.DailyStat, err error) {
				require.NoError(t, err)
				assert.Empty(t, rows)
			},
		},
		{
			name: "sem impressions",
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					GetCampaignStatsByID(gomock.Any(), gomock.Any(), "c1", gomock.Any(), gomock.Any()).
					Return(&snapdomain.TimeseriesStat{Timeseries: []snapdomain.TimeseriesEntry{
						entry(1, nil, int64Ptr(10)),
					}}, nil)
			},
			validate: func(t *testing.T, rows []domain.DailyStat, err error) {
				assert.ErrorIs(t, err, domain.ErrUpstreamFormat)
				assert.Nil(t, rows)
			},
		},
		{
			name: "sem spend",
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					GetCampaignStatsByID(gomock.Any(), gomock.Any(), "c1", gomock.Any(), gomock.Any()).
					Return(&snapdomain.TimeseriesStat{Timeseries: []snapdomain.TimeseriesEntry{
						entry(1, int64Ptr(10), nil),
					}}, nil)
			},
			validate: func(t *testing.T, rows []domain.DailyStat, err error) {
				assert.ErrorIs(t, err, domain.ErrUpstreamFormat)
			},
		},
		{
			name: "sem stats",
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					GetCampaignStatsByID(gomock.Any(), gomock.Any(), "c1", gomock.Any(), gomock.Any()).
					Return(&snapdomain.TimeseriesStat{Timeseries: []snapdomain.TimeseriesEntry{
						{StartTime: "2021-01-01T00:00:00+01:00", EndTime: "2021-01-02T00:00:00+01:00"},
					}}, nil)
			},
			validate: func(t *testing.T, rows []domain.DailyStat, err error) {
				assert.ErrorIs(t, err, domain.ErrUpstreamFormat)
			},
		},
		{
			name: "gasto negativo",
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					GetCampaignStatsByID(gomock.Any(), gomock.Any(), "c1", gomock.Any(), gomock.Any()).
					Return(&snapdomain.TimeseriesStat{Timeseries: []snapdomain.TimeseriesEntry{
						entry(1, int64Ptr(10), int64Ptr(-1)),
					}}, nil)
			},
			validate: func(t *testing.T, rows []domain.DailyStat, err error) {
				assert.ErrorIs(t, err, domain.ErrUpstreamFormat)
			},
		},
		{
			name: "start_time inválido",
			setup: func(mockClient *mocks.MockClient) {
				e := entry(1, int64Ptr(10), int64Ptr(10))
				e.StartTime = "ontem"
				mockClient.EXPECT().
					GetCampaignStatsByID(gomock.Any(), gomock.Any(), "c1", gomock.Any(), gomock.Any()).
					Return(&snapdomain.TimeseriesStat{Timeseries: []snapdomain.TimeseriesEntry{e}}, nil)
			},
			validate: func(t *testing.T, rows []domain.DailyStat, err error) {
				assert.ErrorIs(t, err, domain.ErrUpstreamFormat)
			},
		},
		{
			name: "erro do cliente é repassado",
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					GetCampaignStatsByID(gomock.Any(), gomock.Any(), "c1", gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: connection reset", domain.ErrNetwork))
			},
			validate: func(t *testing.T, rows []domain.DailyStat, err error) {
				assert.True(t, errors.Is(err, domain.ErrNetwork))
				assert.Nil(t, rows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockClient(ctrl)
			tt.setup(mockClient)

			service := New(paris, mockClient)
			rows, err := service.FetchDailyStats(context.Background(), "abc", "c1", window)
			tt.validate(t, rows, err)
		})
	}
}
