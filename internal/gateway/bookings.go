package gateway

import (
	"context"
	"net/http"
	"slices"

	"grandhotel/infras/sqlite"
	bookingDto "grandhotel/internal/domains/booking/model/dto"
	inquiryDto "grandhotel/internal/domains/inquiry/model/dto"
	"grandhotel/internal/domains/pricing"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/validator"
)

const (
	fieldBookings  = "bookings"
	fieldBooking   = "booking"
	fieldInquiries = "inquiries"
	fieldInquiry   = "inquiry"
)

func (g *gatewayImpl) ListBookings(ctx context.Context) (Result[[]bookingDto.BookingResponse], error) {
	return list[bookingDto.BookingResponse](ctx, g, ResourceBookings, fieldBookings, sqlite.CollectionBookings, nil, bookingID)
}

// CreateBooking stores a confirmed booking. Offline it is kept in the mirror without
// the govt id upload.
func (g *gatewayImpl) CreateBooking(ctx context.Context, req bookingDto.CreateBookingRequest) (Result[bookingDto.BookingResponse], error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return Result[bookingDto.BookingResponse]{}, err
	}

	checkin, checkout, err := req.Dates()
	if err != nil {
		return Result[bookingDto.BookingResponse]{}, failure.BadRequest(err)
	}

	nights, err := pricing.Nights(checkin, checkout)
	if err != nil {
		return Result[bookingDto.BookingResponse]{}, failure.BadRequest(err)
	}

	return write(ctx, g, ResourceBookings, http.MethodPost, nil, req, fieldBooking, func() (bookingDto.BookingResponse, error) {
		var booking bookingDto.BookingResponse

		booking.FromModel(req.ToModel(constant.ContextGuest, checkin, checkout, nights, constant.Empty))

		err := mutate(ctx, g.mirror, sqlite.CollectionBookings, nil, func(items []bookingDto.BookingResponse) []bookingDto.BookingResponse {
			return append([]bookingDto.BookingResponse{booking}, items...)
		})

		if err == nil {
			err = track(ctx, g.mirror, sqlite.CollectionBookings, booking.ID)
		}

		return booking, err
	})
}

func (g *gatewayImpl) UpdateBookingStatus(ctx context.Context, req bookingDto.UpdateStatusRequest) (Result[Empty], error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return Result[Empty]{}, err
	}

	return write(ctx, g, ResourceBookings, http.MethodPut, nil, req, constant.Empty, func() (Empty, error) {
		return Empty{}, mutate(ctx, g.mirror, sqlite.CollectionBookings, nil, func(items []bookingDto.BookingResponse) []bookingDto.BookingResponse {
			for i := range items {
				if items[i].ID == req.ID {
					items[i].Status = req.Status
				}
			}

			return items
		})
	})
}

func (g *gatewayImpl) DeleteBooking(ctx context.Context, id string) (Result[Empty], error) {
	if id == constant.Empty {
		return Result[Empty]{}, failure.BadRequestFromString("Missing id")
	}

	return write(ctx, g, ResourceBookings, http.MethodDelete, byID(id), nil, constant.Empty, func() (Empty, error) {
		return Empty{}, mutate(ctx, g.mirror, sqlite.CollectionBookings, nil, func(items []bookingDto.BookingResponse) []bookingDto.BookingResponse {
			return slices.DeleteFunc(items, func(b bookingDto.BookingResponse) bool { return b.ID == id })
		})
	})
}

func (g *gatewayImpl) ListInquiries(ctx context.Context) (Result[[]inquiryDto.InquiryResponse], error) {
	return list[inquiryDto.InquiryResponse](ctx, g, ResourceInquiries, fieldInquiries, sqlite.CollectionInquiries, nil, inquiryID)
}

func (g *gatewayImpl) CreateInquiry(ctx context.Context, req inquiryDto.CreateInquiryRequest) (Result[inquiryDto.InquiryResponse], error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return Result[inquiryDto.InquiryResponse]{}, err
	}

	return write(ctx, g, ResourceInquiries, http.MethodPost, nil, req, fieldInquiry, func() (inquiryDto.InquiryResponse, error) {
		var inquiry inquiryDto.InquiryResponse

		inquiry.FromModel(req.ToModel(constant.ContextGuest))

		err := mutate(ctx, g.mirror, sqlite.CollectionInquiries, nil, func(items []inquiryDto.InquiryResponse) []inquiryDto.InquiryResponse {
			return append([]inquiryDto.InquiryResponse{inquiry}, items...)
		})

		if err == nil {
			err = track(ctx, g.mirror, sqlite.CollectionInquiries, inquiry.ID)
		}

		return inquiry, err
	})
}

func (g *gatewayImpl) DeleteInquiry(ctx context.Context, id string) (Result[Empty], error) {
	if id == constant.Empty {
		return Result[Empty]{}, failure.BadRequestFromString("Missing id")
	}

	return write(ctx, g, ResourceInquiries, http.MethodDelete, byID(id), nil, constant.Empty, func() (Empty, error) {
		return Empty{}, mutate(ctx, g.mirror, sqlite.CollectionInquiries, nil, func(items []inquiryDto.InquiryResponse) []inquiryDto.InquiryResponse {
			return slices.DeleteFunc(items, func(i inquiryDto.InquiryResponse) bool { return i.ID == id })
		})
	})
}

func bookingID(b bookingDto.BookingResponse) string { return b.ID }

func inquiryID(i inquiryDto.InquiryResponse) string { return i.ID }
