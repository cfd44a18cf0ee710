package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/repository"
	roomTypeModel "lodge/internal/domains/roomtype/model"
	roomTypeRepo "lodge/internal/domains/roomtype/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/clock"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, req dto.SetRoomStatusRequest) error
}

type serviceImpl struct {
	repo         repository.Room
	roomTypeRepo roomTypeRepo.RoomType
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	txer         postgres.Txer
	clock        clock.Clock
}

func New(repo repository.Room, roomTypeRepo roomTypeRepo.RoomType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, txer postgres.Txer, clock clock.Clock) Room {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		txer:         txer,
		clock:        clock,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	typeExists, err := s.roomTypeRepo.Exist(ctx, shared.FilterByID(req.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room type exists")

		return fmt.Errorf("failed to check if room type exists: %w", err)
	}

	if !typeExists {
		return failure.BadRequestFromString("room type does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(s.clock.Now(), user)); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

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

	if room.ID == 0 {
		return res, failure.NotFoundWithID(model.EntityName, id) // nolint:wrapcheck
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

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRoomRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		log.Error().Int64("roomID", id).Msg("room not found")

		return failure.NotFoundWithID(model.EntityName, id) // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, s.clock.Now(), user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidateRoom(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		log.Error().Int64("roomID", id).Msg("room not found")

		return failure.NotFoundWithID(model.EntityName, id) // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.invalidateRoom(ctx, id)

	return nil
}

// SetStatus updates the room status and records the transition in
// room_status_history within the same transaction.
func (s *serviceImpl) SetStatus(ctx context.Context, id int64, req dto.SetRoomStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	newStatus := model.RoomStatus(req.Status)
	if !newStatus.Valid() {
		return failure.BadRequestFromString("unknown room status: " + req.Status) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return failure.NotFoundWithID(model.EntityName, id) // nolint:wrapcheck
	}

	if room.Status == newStatus {
		return nil
	}

	now := s.clock.Now()

	err = s.txer.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		updatedFields := map[string]any{
			model.FieldStatus:        newStatus,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return err
		}

		history := model.RoomStatusHistory{
			RoomID:     id,
			FromStatus: room.Status,
			ToStatus:   newStatus,
		}
		history.CreatedAt = now
		history.ModifiedAt = now
		history.CreatedBy = user
		history.ModifiedBy = user

		return s.repo.InsertStatusHistoryTx(ctx, tx, history)
	})
	if err != nil {
		log.Error().Err(err).Int64("roomID", id).Msg("failed to set room status")

		return failure.StoreFailure(err) // nolint:wrapcheck
	}

	s.invalidateRoom(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateRoom(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}
