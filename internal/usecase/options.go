package usecase

import (
	"github.com/riskibarqy/skauts-stats/internal/domain/eventcategory"
	"github.com/riskibarqy/skauts-stats/internal/domain/ranking"
	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
)

// ComputeOptions holds the collaborators shared by the statistics services.
type ComputeOptions struct {
	Classifier *eventcategory.Classifier
	Workers    int
	TopN       int
	Passes     *PassRunner
	Logger     *logging.Logger
}

func (o ComputeOptions) normalize() ComputeOptions {
	if o.Classifier == nil {
		o.Classifier = eventcategory.Default()
	}
	if o.Workers < 1 {
		o.Workers = defaultFanoutWorkers
	}
	if o.TopN < 1 {
		o.TopN = ranking.DefaultTopN
	}
	if o.Logger == nil {
		o.Logger = logging.Default()
	}
	return o
}
