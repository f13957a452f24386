package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/snapchat-ads-report/internal/config"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
	"github.com/vfg2006/snapchat-ads-report/pkg/log"
)

// ProgressEvent descreve uma transição de estágio. Em StageFetching, Index e
// Total indicam a campanha em andamento.
type ProgressEvent struct {
	RunID      string
	Stage      Stage
	CampaignID string
	Index      int
	Total      int
	Rows       int
}

type ProgressFunc func(event ProgressEvent)

type Option func(s *Service)

func WithProgress(fn ProgressFunc) Option {
	return func(s *Service) {
		s.progress = fn
	}
}

type Service struct {
	snapchat SnapchatService
	progress ProgressFunc
}

func NewService(snapchat SnapchatService, opts ...Option) *Service {
	s := &Service{snapchat: snapchat}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type run struct {
	id     string
	stage  Stage
	notify ProgressFunc
}

func (r *run) advance(event ProgressEvent) {
	r.stage = event.Stage
	if r.notify != nil {
		event.RunID = r.id
		r.notify(event)
	}
}

// Run executa o pipeline completo. As requisições são sequenciais e qualquer
// falha interrompe a execução: nunca há tabela parcial.
func (s *Service) Run(ctx context.Context, creds config.Snapchat, window domain.DateWindow) (*domain.ReportTable, error) {
	ctx, runID := log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)
	started := time.Now()

	r := &run{id: runID, notify: s.progress}
	r.advance(ProgressEvent{Stage: StageInit})

	fail := func(err *ReportError) (*domain.ReportTable, error) {
		logger.WithFields(log.Fields{
			"stage":       err.Stage,
			"op":          err.Op,
			"campaign_id": err.CampaignID,
			"code":        err.Code(),
			"error":       err.Err.Error(),
		}).Error("reporting: run aborted")
		r.advance(ProgressEvent{Stage: StageAborted, CampaignID: err.CampaignID})
		return nil, err
	}

	if err := creds.ValidateCredentials(); err != nil {
		return fail(newReportError(err, r.stage, OpValidateCredentials))
	}

	if err := window.Validate(); err != nil {
		return fail(newReportError(err, r.stage, OpValidateWindow))
	}

	logger.WithFields(log.Fields{
		"ad_account_id": creds.AdAccountID,
		"start_date":    window.StartDate(),
		"end_date":      window.EndDate(),
	}).Info("reporting: run started")

	token, err := s.snapchat.Authenticate(ctx, creds)
	if err != nil {
		return fail(newReportError(err, r.stage, OpExchangeToken))
	}
	r.advance(ProgressEvent{Stage: StageTokenAcquired})

	campaigns, err := s.snapchat.ListCampaigns(ctx, token, creds.AdAccountID)
	if err != nil {
		return fail(newReportError(err, r.stage, OpListCampaigns))
	}
	r.advance(ProgressEvent{Stage: StageCampaignsListed, Total: len(campaigns)})

	logger.WithField("campaigns", len(campaigns)).Info("reporting: campaigns listed")

	table := domain.NewReportTable(window)
	for i, campaign := range campaigns {
		r.advance(ProgressEvent{
			Stage:      StageFetching,
			CampaignID: campaign.ID,
			Index:      i + 1,
			Total:      len(campaigns),
			Rows:       table.Len(),
		})

		rows, err := s.snapchat.FetchDailyStats(ctx, token, campaign.ID, window)
		if err != nil {
			reportErr := newReportError(err, r.stage, OpFetchStats)
			reportErr.CampaignID = campaign.ID
			return fail(reportErr)
		}

		table.Append(rows...)
	}

	table.Freeze()
	r.advance(ProgressEvent{Stage: StageDone, Total: len(campaigns), Rows: table.Len()})

	logger.WithFields(log.Fields{
		"campaigns": len(campaigns),
		"rows":      table.Len(),
		"elapsed":   time.Since(started).Round(time.Millisecond).String(),
	}).Info("reporting: run finished")

	return table, nil
}
