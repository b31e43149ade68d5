package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandhotel/config"
	"grandhotel/infras/otel/mocks"
	s3Mocks "grandhotel/infras/s3/mocks"
	roomMocks "grandhotel/internal/domains/room/mocks"
	"grandhotel/internal/domains/room/model"
	"grandhotel/internal/domains/room/model/dto"
	"grandhotel/internal/domains/room/service"
	cacheMocks "grandhotel/shared/cache/mocks"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
)

const pixel = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

type fixture struct {
	repo  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Room
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:  roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func adminCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")
}

func seedRooms() []model.Room {
	return []model.Room{
		{ID: "r1", Name: "Deluxe King Room", Price: 2500, Amenities: []string{"King Bed"}},
		{ID: "r2", Name: "Executive Suite", Price: 4500, Amenities: []string{"Ocean View"}},
	}
}

func TestRoomService_List(t *testing.T) {
	t.Run("cache miss loads from repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "room:gets", gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(seedRooms(), nil)

		rooms, err := f.svc.List(context.Background(), dto.Filter{MaxPrice: 3000})
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, rooms, 1)
		assert.Equal(t, "r1", rooms[0].ID)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "room:gets", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value any) error {
				*(value.(*[]dto.RoomResponse)) = dto.FromModels(seedRooms())

				return nil
			})

		rooms, err := f.svc.List(context.Background(), dto.Filter{Search: "suite"})

		assert.NoError(t, err)
		assert.Len(t, rooms, 1)
		assert.Equal(t, "r2", rooms[0].ID)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := f.svc.List(context.Background(), dto.Filter{})
		assert.Error(t, err)
	})
}

func TestRoomService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "room:get:r1", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(seedRooms()[0], nil)

	room, err := f.svc.Get(context.Background(), "r1")
	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, "Deluxe King Room", room.Name)

	f.cache.EXPECT().Get(gomock.Any(), "room:get:missing", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

	_, err = f.svc.Get(context.Background(), "missing")

	var fail *failure.Failure
	assert.ErrorAs(t, err, &fail)
	assert.Equal(t, 404, fail.Code)
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(f fixture)
		wantImage string
		wantErr   bool
	}{
		{
			name: "plain image url",
			req:  dto.CreateRoomRequest{Name: "Garden Villa", Price: 12500, Image: "https://example.com/villa.jpg"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.Room) error {
					assert.Equal(t, "12,500", room.PriceDisplay)
					assert.Equal(t, "admin", room.CreatedBy)

					return nil
				})
			},
			wantImage: "https://example.com/villa.jpg",
		},
		{
			name: "data image is resized and uploaded",
			req:  dto.CreateRoomRequest{Name: "Garden Villa", Price: 12500, Image: pixel},
			setupMock: func(f fixture) {
				f.s3.EXPECT().UploadImage(gomock.Any(), model.EntityName, gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room/v.jpg", nil)
				f.s3.EXPECT().GetObjectNameFromURL("https://cdn.example.com/room/v.jpg").Return("room/v.jpg")
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantImage: "https://cdn.example.com/room/v.jpg",
		},
		{
			name: "insert failure removes uploaded image",
			req:  dto.CreateRoomRequest{Name: "Garden Villa", Price: 12500, Image: pixel},
			setupMock: func(f fixture) {
				f.s3.EXPECT().UploadImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room/v.jpg", nil)
				f.s3.EXPECT().GetObjectNameFromURL(gomock.Any()).Return("room/v.jpg")
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
				f.s3.EXPECT().DeleteFile(gomock.Any(), "", "room/v.jpg").Return(nil)
			},
			wantErr: true,
		},
		{
			name: "upload failure",
			req:  dto.CreateRoomRequest{Name: "Garden Villa", Price: 12500, Image: pixel},
			setupMock: func(f fixture) {
				f.s3.EXPECT().UploadImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 down"))
			},
			wantErr: true,
		},
		{
			name:      "non image data url",
			req:       dto.CreateRoomRequest{Name: "Garden Villa", Price: 12500, Image: "data:text/plain;base64,SGVsbG8="},
			setupMock: func(f fixture) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			room, err := f.svc.Create(adminCtx(), tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantImage, room.Image)
			assert.Equal(t, []string{tt.wantImage}, room.Gallery)
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		err := f.svc.Update(adminCtx(), dto.UpdateRoomRequest{ID: "nope", Name: "x", Price: 1})
		assert.Error(t, err)
	})

	t.Run("replacing image removes the old stored object", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "r1", Image: "https://cdn.example.com/room/old.jpg"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "https://example.com/new.jpg", fields[model.FieldImage])
				assert.Equal(t, "admin", fields[constant.FieldModifiedBy])

				return nil
			})
		f.s3.EXPECT().GetObjectNameFromURL("https://cdn.example.com/room/old.jpg").Return("room/old.jpg")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "", "room/old.jpg").Return(nil)

		err := f.svc.Update(adminCtx(), dto.UpdateRoomRequest{ID: "r1", Name: "Deluxe", Price: 3000, Image: "https://example.com/new.jpg"})
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		assert.Error(t, f.svc.Delete(adminCtx(), "nope"))
	})

	t.Run("deletes row and foreign image is kept", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r1", Image: "https://example.com/a.jpg"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.s3.EXPECT().GetObjectNameFromURL("https://example.com/a.jpg").Return("")

		err := f.svc.Delete(adminCtx(), "r1")
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}
