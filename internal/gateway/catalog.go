package gateway

import (
	"context"
	"net/http"
	"slices"

	"grandhotel/infras/sqlite"
	reviewDto "grandhotel/internal/domains/review/model/dto"
	roomDto "grandhotel/internal/domains/room/model/dto"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/validator"
)

const (
	fieldRooms   = "rooms"
	fieldRoom    = "room"
	fieldReviews = "reviews"
	fieldReview  = "review"
)

// defaultRooms is the catalog shown before the api has ever been reached.
var defaultRooms = []roomDto.RoomResponse{
	{
		ID:           "7b0e4c1a-1f0e-4d7a-9a57-0c6f3b2d1a01",
		Name:         "Deluxe King Room",
		Price:        2500,
		PriceDisplay: "2,500",
		Image:        "images/deluxe.jpg",
		Gallery:      []string{"images/deluxe.jpg"},
		Amenities:    []string{"King Bed", "City View", "Free Wifi"},
	},
	{
		ID:           "7b0e4c1a-1f0e-4d7a-9a57-0c6f3b2d1a02",
		Name:         "Executive Suite",
		Price:        4500,
		PriceDisplay: "4,500",
		Image:        "images/executive.jpg",
		Gallery:      []string{"images/executive.jpg"},
		Amenities:    []string{"Living Area", "Ocean View", "Mini Bar"},
	},
	{
		ID:           "7b0e4c1a-1f0e-4d7a-9a57-0c6f3b2d1a03",
		Name:         "Presidential Suite",
		Price:        8000,
		PriceDisplay: "8,000",
		Image:        "images/presidential.jpg",
		Gallery:      []string{"images/presidential.jpg"},
		Amenities:    []string{"Private Pool", "Butler Service", "Jacuzzi"},
	},
}

func (g *gatewayImpl) ListRooms(ctx context.Context) (Result[[]roomDto.RoomResponse], error) {
	return list(ctx, g, ResourceRooms, fieldRooms, sqlite.CollectionRooms, defaultRooms, roomID)
}

func (g *gatewayImpl) CreateRoom(ctx context.Context, req roomDto.CreateRoomRequest) (Result[roomDto.RoomResponse], error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return Result[roomDto.RoomResponse]{}, err
	}

	return write(ctx, g, ResourceRooms, http.MethodPost, nil, req, fieldRoom, func() (roomDto.RoomResponse, error) {
		var room roomDto.RoomResponse

		room.FromModel(req.ToModel(constant.ContextGuest, req.Image))

		err := mutate(ctx, g.mirror, sqlite.CollectionRooms, defaultRooms, func(items []roomDto.RoomResponse) []roomDto.RoomResponse {
			return append(items, room)
		})

		if err == nil {
			err = track(ctx, g.mirror, sqlite.CollectionRooms, room.ID)
		}

		return room, err
	})
}

func (g *gatewayImpl) UpdateRoom(ctx context.Context, req roomDto.UpdateRoomRequest) (Result[Empty], error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return Result[Empty]{}, err
	}

	return write(ctx, g, ResourceRooms, http.MethodPut, nil, req, constant.Empty, func() (Empty, error) {
		return Empty{}, mutate(ctx, g.mirror, sqlite.CollectionRooms, defaultRooms, func(items []roomDto.RoomResponse) []roomDto.RoomResponse {
			for i := range items {
				if items[i].ID == req.ID {
					req.Apply(&items[i])
				}
			}

			return items
		})
	})
}

func (g *gatewayImpl) DeleteRoom(ctx context.Context, id string) (Result[Empty], error) {
	if id == constant.Empty {
		return Result[Empty]{}, failure.BadRequestFromString("Missing id")
	}

	return write(ctx, g, ResourceRooms, http.MethodDelete, byID(id), nil, constant.Empty, func() (Empty, error) {
		return Empty{}, mutate(ctx, g.mirror, sqlite.CollectionRooms, defaultRooms, func(items []roomDto.RoomResponse) []roomDto.RoomResponse {
			return slices.DeleteFunc(items, func(r roomDto.RoomResponse) bool { return r.ID == id })
		})
	})
}

func (g *gatewayImpl) ListReviews(ctx context.Context) (Result[[]reviewDto.ReviewResponse], error) {
	return list[reviewDto.ReviewResponse](ctx, g, ResourceReviews, fieldReviews, sqlite.CollectionReviews, nil, reviewID)
}

func (g *gatewayImpl) CreateReview(ctx context.Context, req reviewDto.CreateReviewRequest) (Result[reviewDto.ReviewResponse], error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return Result[reviewDto.ReviewResponse]{}, err
	}

	return write(ctx, g, ResourceReviews, http.MethodPost, nil, req, fieldReview, func() (reviewDto.ReviewResponse, error) {
		var review reviewDto.ReviewResponse

		review.FromModel(req.ToModel(constant.ContextGuest))

		err := mutate(ctx, g.mirror, sqlite.CollectionReviews, nil, func(items []reviewDto.ReviewResponse) []reviewDto.ReviewResponse {
			return append([]reviewDto.ReviewResponse{review}, items...)
		})

		if err == nil {
			err = track(ctx, g.mirror, sqlite.CollectionReviews, review.ID)
		}

		return review, err
	})
}

func roomID(r roomDto.RoomResponse) string { return r.ID }

func reviewID(r reviewDto.ReviewResponse) string { return r.ID }
