package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/infras/s3"
	"grandhotel/internal/domains/room/model"
	"grandhotel/internal/domains/room/model/dto"
	"grandhotel/internal/domains/room/repository"
	"grandhotel/shared"
	"grandhotel/shared/base64"
	"grandhotel/shared/cache"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	"grandhotel/shared/failure"
	"grandhotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
)

type Room interface {
	List(ctx context.Context, filter dto.Filter) ([]dto.RoomResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// List returns the catalog in insertion order narrowed by filter.
// The whole catalog is cached and filtered in memory.
func (s *serviceImpl) List(ctx context.Context, filter dto.Filter) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var catalog []dto.RoomResponse

	err = s.cache.Get(ctx, cacheGetAllRoom, &catalog)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllRoom).Msg("cache hit for rooms")

		return filter.Apply(catalog), nil
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	catalog = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllRoom, catalog, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return filter.Apply(catalog), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL, uploaded, err := s.storeImage(ctx, req.Image)
	if err != nil {
		return res, err
	}

	room := req.ToModel(user, imageURL)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to insert room")
		s.discardImage(ctx, uploaded)

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	res.FromModel(room)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllRoom)
	}()

	return res, nil
}

// Update replaces the editable fields of a room. Last writer wins.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	imageURL, uploaded, err := s.storeImage(ctx, req.Image)
	if err != nil {
		return err
	}

	fields := req.Fields(imageURL)
	fields[constant.FieldModifiedBy] = user
	fields[constant.FieldModifiedAt] = timezone.Now()

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")
		s.discardImage(ctx, uploaded)

		return fmt.Errorf("failed to update room: %w", err)
	}

	if current.Image != imageURL {
		s.discardImage(ctx, s.s3.GetObjectNameFromURL(current.Image))
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, req.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.discardImage(ctx, s.s3.GetObjectNameFromURL(current.Image))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()

	return nil
}

// storeImage uploads base64 data images and passes plain urls through.
// objectName is empty unless something was uploaded.
func (s *serviceImpl) storeImage(ctx context.Context, image string) (url, objectName string, err error) {
	image = strings.TrimSpace(image)
	if !base64.IsDataURL(image) {
		return image, constant.Empty, nil
	}

	contentType, data, err := base64.Decode(image)
	if err != nil {
		return constant.Empty, constant.Empty, failure.BadRequest(err)
	}

	if !strings.HasPrefix(contentType, "image/") {
		return constant.Empty, constant.Empty, failure.BadRequestFromString("image must be a png or jpeg")
	}

	url, err = s.s3.UploadImage(ctx, model.EntityName, uuid.NewString()+base64.Extension(contentType), data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, s.s3.GetObjectNameFromURL(url), nil
}

func (s *serviceImpl) discardImage(ctx context.Context, objectName string) {
	if objectName == constant.Empty {
		return
	}

	if err := s.s3.DeleteFile(ctx, constant.Empty, objectName); err != nil {
		log.Warn().Err(err).Str("object", objectName).Msg("failed to delete room image")
	}
}
