package mocks

import (
	"RambutanTask/models"

	"github.com/stretchr/testify/mock"
)

// RenderServiceMock is a testify/mock for services.RenderService.
type RenderServiceMock struct{ mock.Mock }

func (m *RenderServiceMock) Render(viewerID uint, content string) (*models.RenderResponse, error) {
	args := m.Called(viewerID, content)
	if v := args.Get(0); v != nil {
		return v.(*models.RenderResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
