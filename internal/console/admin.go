package console

import (
	"context"
	"fmt"
	"os"

	adminDto "grandhotel/internal/domains/admin/model/dto"
	"grandhotel/internal/domains/booking/model"
	bookingDto "grandhotel/internal/domains/booking/model/dto"
	"grandhotel/internal/domains/pricing"
	"grandhotel/internal/domains/report"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
)

const (
	exportBookings  = "bookings"
	exportInquiries = "inquiries"
	exportFileMode  = 0o600
)

func (c *Console) requireAdmin(ctx context.Context) error {
	session, found, err := c.gateway.Session(ctx)
	if err != nil {
		return err
	}

	if !found || (session.Role != constant.RoleAdmin && session.Role != constant.RoleSuperAdmin) {
		return failure.Unauthorized("admin login required")
	}

	return nil
}

func (c *Console) adminLogin(ctx context.Context, args []string) error {
	var req adminDto.LoginRequest

	fs := c.flags("admin")
	fs.StringVar(&req.PIN, "pin", "", "dashboard pin")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := required(map[string]string{"pin": req.PIN}); err != nil {
		return err
	}

	res, err := c.gateway.LoginAdmin(ctx, req)
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintln(c.out, "admin session opened")

	return nil
}

func (c *Console) bookings(ctx context.Context, _ []string) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.ListBookings(ctx)
	if err != nil {
		return err
	}

	c.offline(res.Err)

	return c.printBookings(res.Value)
}

func (c *Console) status(ctx context.Context, args []string) error {
	var id, status string

	fs := c.flags("status")
	fs.StringVar(&id, "id", "", "booking id")
	fs.StringVar(&status, "status", "", `Confirmed, "Checked In", "Checked Out" or Cancelled`)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := required(map[string]string{"id": id, "status": status}); err != nil {
		return err
	}

	next, ok := model.ParseStatus(status)
	if !ok {
		return failure.BadRequestFromString(fmt.Sprintf("unknown status %q", status))
	}

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.UpdateBookingStatus(ctx, bookingDto.UpdateStatusRequest{ID: id, Status: next})
	if err != nil {
		return err
	}

	c.offline(res.Err)
	fmt.Fprintf(c.out, "booking %s is now %s\n", id, next)

	return nil
}

func (c *Console) stats(ctx context.Context, args []string) error {
	var raw string

	fs := c.flags("stats")
	fs.StringVar(&raw, "range", string(report.RangeAll), "today, week, month or all")

	if err := fs.Parse(args); err != nil {
		return err
	}

	dateRange, err := report.ParseRange(raw)
	if err != nil {
		return err
	}

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	bookings, err := c.gateway.ListBookings(ctx)
	if err != nil {
		return err
	}

	c.offline(bookings.Err)

	users, err := c.gateway.CountUsers(ctx)
	if err != nil {
		return err
	}

	stats := report.ComputeStats(bookings.Value, users.Value, dateRange, c.clock.Now())

	fmt.Fprintf(c.out, "bookings: %d\nrevenue:  ₹%s\nusers:    %d\n", stats.TotalBookings, pricing.FormatAmount(stats.TotalRevenue), stats.TotalUsers)

	w := c.table()
	for _, r := range stats.Revenue {
		fmt.Fprintf(w, "  %s\t₹%s\n", r.Room, pricing.FormatAmount(r.Revenue))
	}

	return w.Flush()
}

func (c *Console) export(ctx context.Context, args []string) error {
	var what, out string

	fs := c.flags("export")
	fs.StringVar(&what, "what", exportBookings, "bookings or inquiries")
	fs.StringVar(&out, "out", "", "file to write, defaults to <what>.csv")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	var (
		content string
		rows    int
	)

	switch what {
	case exportBookings:
		res, err := c.gateway.ListBookings(ctx)
		if err != nil {
			return err
		}

		c.offline(res.Err)
		content, rows = report.BookingsCSV(res.Value), len(res.Value)
	case exportInquiries:
		res, err := c.gateway.ListInquiries(ctx)
		if err != nil {
			return err
		}

		c.offline(res.Err)
		content, rows = report.InquiriesCSV(res.Value), len(res.Value)
	default:
		return failure.BadRequestFromString(fmt.Sprintf("cannot export %q", what))
	}

	if rows == 0 {
		return failure.NotFound(what)
	}

	if out == "" {
		out = what + ".csv"
	}

	if err := os.WriteFile(out, []byte(content), exportFileMode); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Fprintf(c.out, "wrote %d row(s) to %s\n", rows, out)

	return nil
}

func (c *Console) coupons(ctx context.Context, _ []string) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	res, err := c.gateway.ListCoupons(ctx)
	if err != nil {
		return err
	}

	c.offline(res.Err)

	w := c.table()
	fmt.Fprintln(w, "CODE\tDISCOUNT\tTYPE")

	for _, coupon := range res.Value {
		fmt.Fprintf(w, "%s\t%d\t%s\n", coupon.Code, coupon.Discount, coupon.Type)
	}

	return w.Flush()
}
