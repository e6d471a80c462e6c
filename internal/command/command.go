// Package command defines the actions carried by inline keyboard buttons.
//
// Callback data is decoded once at the transport boundary into a Command and
// dispatched by Kind. The wire format is "<name>" or "<name>_<arg>".
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown callback command")

type Kind int

const (
	KindShowPlot Kind = iota + 1
	KindPlotsPage
	KindRefreshPlots
	KindBackToCatalog
	KindBookPlot
	KindShowBooking
	KindBookingsPage
	KindRefreshBookings
	KindBackToBookings
	KindCancelBooking
	KindConfirmYes
	KindConfirmNo
)

type argKind int

const (
	argNone argKind = iota
	argID
	argPage
)

type wireFormat struct {
	name string
	arg  argKind
}

var wireFormats = map[Kind]wireFormat{
	KindShowPlot:        {"plot", argID},
	KindPlotsPage:       {"plots_page", argPage},
	KindRefreshPlots:    {"refresh_plots", argNone},
	KindBackToCatalog:   {"back_to_catalog", argNone},
	KindBookPlot:        {"book", argID},
	KindShowBooking:     {"booking", argID},
	KindBookingsPage:    {"bookings_page", argPage},
	KindRefreshBookings: {"refresh_bookings", argNone},
	KindBackToBookings:  {"back_to_bookings", argNone},
	KindCancelBooking:   {"cancel_booking", argID},
	KindConfirmYes:      {"confirm_yes", argNone},
	KindConfirmNo:       {"confirm_no", argNone},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(wireFormats))
	for k, s := range wireFormats {
		m[s.name] = k
	}
	return m
}()

type Command struct {
	Kind Kind
	ID   int64
	Page int
}

func ShowPlot(id int64) Command      { return Command{Kind: KindShowPlot, ID: id} }
func PlotsPage(page int) Command     { return Command{Kind: KindPlotsPage, Page: page} }
func RefreshPlots() Command          { return Command{Kind: KindRefreshPlots} }
func BackToCatalog() Command         { return Command{Kind: KindBackToCatalog} }
func BookPlot(id int64) Command      { return Command{Kind: KindBookPlot, ID: id} }
func ShowBooking(id int64) Command   { return Command{Kind: KindShowBooking, ID: id} }
func BookingsPage(page int) Command  { return Command{Kind: KindBookingsPage, Page: page} }
func RefreshBookings() Command       { return Command{Kind: KindRefreshBookings} }
func BackToBookings() Command        { return Command{Kind: KindBackToBookings} }
func CancelBooking(id int64) Command { return Command{Kind: KindCancelBooking, ID: id} }
func ConfirmYes() Command            { return Command{Kind: KindConfirmYes} }
func ConfirmNo() Command             { return Command{Kind: KindConfirmNo} }

// Encode renders the callback data sent with a button.
func (c Command) Encode() string {
	s, ok := wireFormats[c.Kind]
	if !ok {
		return ""
	}

	switch s.arg {
	case argID:
		return s.name + "_" + strconv.FormatInt(c.ID, 10)
	case argPage:
		return s.name + "_" + strconv.Itoa(c.Page)
	default:
		return s.name
	}
}

func (c Command) String() string {
	return c.Encode()
}

// Decode parses callback data produced by Encode.
func Decode(data string) (Command, error) {
	if k, ok := byName[data]; ok && wireFormats[k].arg == argNone {
		return Command{Kind: k}, nil
	}

	idx := strings.LastIndexByte(data, '_')
	if idx <= 0 || idx == len(data)-1 {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, data)
	}

	name, raw := data[:idx], data[idx+1:]
	k, ok := byName[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, data)
	}

	switch wireFormats[k].arg {
	case argID:
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 0 {
			return Command{}, fmt.Errorf("%w: bad id in %q", ErrUnknownCommand, data)
		}
		return Command{Kind: k, ID: id}, nil
	case argPage:
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return Command{}, fmt.Errorf("%w: bad page in %q", ErrUnknownCommand, data)
		}
		return Command{Kind: k, Page: page}, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, data)
	}
}
