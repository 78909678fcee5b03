package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/qixdigital/ad-intelligence-api/internal/config"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	aggregatingmocks "github.com/qixdigital/ad-intelligence-api/internal/usecases/aggregating/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newIngestionTestConfig(enabled bool) *config.Config {
	return &config.Config{
		SpendIngestion: config.SpendIngestion{
			CronSchedule: "0 5 * * *",
			Enabled:      enabled,
			Provider:     config.ProviderSynthetic,
			Currency:     "BRL",
		},
	}
}

func TestSpendIngestionService_RunIngestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)

	service := NewSpendIngestionService(mockAggregator, newIngestionTestConfig(true))

	mockAggregator.EXPECT().
		IngestDaily(gomock.Any()).
		Return(&domain.IngestResult{Processed: 4}, nil)

	service.runIngestion()

	assert.False(t, service.lastRunStartedAt.IsZero())
	assert.False(t, service.lastRunCompletedAt.IsZero())
}

func TestSpendIngestionService_RunIngestion_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)

	service := NewSpendIngestionService(mockAggregator, newIngestionTestConfig(true))

	mockAggregator.EXPECT().
		IngestDaily(gomock.Any()).
		Return(nil, errors.New("banco indisponível"))

	service.runIngestion()

	// A execução falhou: a conclusão não é registrada
	assert.False(t, service.lastRunStartedAt.IsZero())
	assert.True(t, service.lastRunCompletedAt.IsZero())
}

func TestSpendIngestionService_TriggerManualRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)

	service := NewSpendIngestionService(mockAggregator, newIngestionTestConfig(true))

	done := make(chan struct{})

	mockAggregator.EXPECT().
		IngestDaily(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.IngestResult, error) {
			defer close(done)
			return &domain.IngestResult{Processed: 1}, nil
		})

	service.TriggerManualRun()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ingestão manual não executou dentro do prazo")
	}
}

func TestSpendIngestionService_Start_DisabledByConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)

	service := NewSpendIngestionService(mockAggregator, newIngestionTestConfig(false))

	err := service.Start(context.Background())
	assert.NoError(t, err)
}
