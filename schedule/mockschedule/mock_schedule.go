package mockschedule

import (
	"github.com/florentbo/umpire_manager/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadMatches() ([]model.MatchInfo, error) {
	args := c.Called()

	var r []model.MatchInfo
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MatchInfo)
	}
	return r, args.Error(1)
}
