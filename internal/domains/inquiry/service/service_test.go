package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandhotel/config"
	"grandhotel/infras/otel/mocks"
	inquiryMocks "grandhotel/internal/domains/inquiry/mocks"
	"grandhotel/internal/domains/inquiry/model"
	"grandhotel/internal/domains/inquiry/model/dto"
	"grandhotel/internal/domains/inquiry/service"
	gDto "grandhotel/shared/dto"
	"grandhotel/shared/failure"
)

func newService(t *testing.T) (*inquiryMocks.MockInquiry, service.Inquiry) {
	ctrl := gomock.NewController(t)
	repo := inquiryMocks.NewMockInquiry(ctrl)

	return repo, service.New(repo, &config.Config{}, mocks.NewOtel())
}

func TestInquiryService_Create(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr bool
	}{
		{name: "successful creation"},
		{name: "repository error", repoErr: errors.New("database error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t)

			repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.Inquiry) error {
				assert.Equal(t, "guest", m.CreatedBy)

				return tt.repoErr
			})

			res, err := svc.Create(context.Background(), dto.CreateInquiryRequest{
				Name:    "Meera",
				Email:   "meera@example.com",
				Message: "Late check-in possible?",
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "Meera", res.Name)
		})
	}
}

func TestInquiryService_List(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Inquiry, error) {
			assert.Equal(t, "created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Inquiry{{ID: "i2"}, {ID: "i1"}}, nil
		})

	res, err := svc.List(context.Background(), gDto.QueryParams{})

	assert.NoError(t, err)
	assert.Len(t, res.Inquiries, 2)
	assert.Equal(t, "i2", res.Inquiries[0].ID)
	assert.Equal(t, 1, res.TotalPage)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

	_, err = svc.List(context.Background(), gDto.QueryParams{})
	assert.Error(t, err)
}

func TestInquiryService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		exist    bool
		wantCode int
	}{
		{name: "deleted", exist: true},
		{name: "not found", exist: false, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t)

			repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.exist, nil)
			if tt.exist {
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Delete(context.Background(), "i1")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
