package mockrubric

import (
	"github.com/florentbo/umpire_manager/model"
	"github.com/stretchr/testify/mock"
)

type Provider struct {
	mock.Mock
}

func (p *Provider) Get(level string) (*model.AssessmentConfig, error) {
	args := p.Called(level)

	var cfg *model.AssessmentConfig
	if args.Get(0) != nil {
		cfg = args.Get(0).(*model.AssessmentConfig)
	}
	return cfg, args.Error(1)
}

func (p *Provider) Invalidate() {
	p.Called()
}
