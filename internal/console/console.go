// Package console is the terminal front end of the hotel: browse rooms, book a stay and
// run the admin dashboard. Everything goes through the gateway, so the console keeps
// working from the local mirror when the api is down.
package console

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"grandhotel/internal/gateway"
	"grandhotel/internal/workflow"
	"grandhotel/shared/failure"
)

var ErrUnknownCommand = errors.New("unknown command")

type command struct {
	usage string
	run   func(c *Console, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"rooms":    {usage: "list rooms [-search -amenity -min -max]", run: (*Console).rooms},
	"book":     {usage: "book a stay -room -checkin -checkout -name -email [-dob -govt-id -coupon]", run: (*Console).book},
	"register": {usage: "create an account -name -phone -password", run: (*Console).register},
	"signin":   {usage: "sign in -phone -password", run: (*Console).signin},
	"logout":   {usage: "forget the signed-in session", run: (*Console).logout},
	"history":  {usage: "bookings made by the signed-in guest", run: (*Console).history},
	"admin":    {usage: "admin login with -pin", run: (*Console).adminLogin},
	"bookings": {usage: "list every booking", run: (*Console).bookings},
	"status":   {usage: "set booking status -id -status", run: (*Console).status},
	"stats":    {usage: "dashboard totals [-range today|week|month|all]", run: (*Console).stats},
	"export":   {usage: "write a csv export -what bookings|inquiries -out file", run: (*Console).export},
	"coupons":  {usage: "list coupons", run: (*Console).coupons},

	"reviews": {usage: "read guest reviews", run: (*Console).reviews},
	"review":  {usage: "post a review -name -text [-rating]", run: (*Console).review},
	"inquire": {usage: "send a message -name -email -message", run: (*Console).inquire},

	"delete-booking":   {usage: "delete a booking -id", run: (*Console).deleteBooking},
	"inquiries":        {usage: "list guest messages", run: (*Console).inquiries},
	"delete-inquiry":   {usage: "delete a message -id", run: (*Console).deleteInquiry},
	"room-add":         {usage: "add a room -name -price [-display -image -amenities]", run: (*Console).addRoom},
	"room-edit":        {usage: "replace a room -id -name -price [-display -image -amenities]", run: (*Console).editRoom},
	"room-delete":      {usage: "delete a room -id", run: (*Console).deleteRoom},
	"coupon-save":      {usage: "create or replace a coupon -code -discount [-type percent|flat]", run: (*Console).saveCoupon},
	"coupon-delete":    {usage: "delete a coupon -code", run: (*Console).deleteCoupon},
	"blacklist":        {usage: "list blacklisted phones", run: (*Console).blacklist},
	"blacklist-add":    {usage: "blacklist a phone -phone [-reason]", run: (*Console).addBlacklist},
	"blacklist-remove": {usage: "remove a phone from the blacklist -phone", run: (*Console).removeBlacklist},
}

type Console struct {
	gateway gateway.Gateway
	engine  *workflow.Engine
	clock   workflow.Clock
	out     io.Writer
}

func New(gw gateway.Gateway, engine *workflow.Engine, clock workflow.Clock, out io.Writer) *Console {
	if clock == nil {
		clock = workflow.SystemClock
	}

	return &Console{
		gateway: gw,
		engine:  engine,
		clock:   clock,
		out:     out,
	}
}

// Run executes one command, args[0] being its name.
func (c *Console) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.Usage()

		return ErrUnknownCommand
	}

	cmd, ok := commands[args[0]]
	if !ok {
		c.Usage()

		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	return cmd.run(c, ctx, args[1:])
}

func (c *Console) Usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	sort.Strings(names)

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "commands:")

	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", name, commands[name].usage)
	}

	w.Flush()
}

func (c *Console) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)

	return fs
}

func (c *Console) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

// offline prints a notice when a result came from the local mirror.
func (c *Console) offline(err *gateway.NetworkError) {
	if err == nil {
		return
	}

	fmt.Fprintf(c.out, "(offline: %s; showing local data)\n", err.Error())
}

func required(fields map[string]string) error {
	var missing []string

	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, "-"+name)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)

	return failure.BadRequestFromString("missing " + strings.Join(missing, ", "))
}
