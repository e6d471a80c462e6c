// Package presentation renders plots, bookings and static screens into views.
// Nothing here performs I/O.
package presentation

import (
	"time"

	"github.com/stpnv0/LandBooker/internal/command"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReplyKeyboard selects the persistent keyboard shown under the input field.
type ReplyKeyboard int

const (
	ReplyKeep ReplyKeyboard = iota
	ReplyMainMenu
	ReplyBackToMenu
	ReplyContactRequest
)

// Control is one inline button.
type Control struct {
	Label   string
	Command command.Command
}

type View struct {
	Text     string
	Controls [][]Control
	Reply    ReplyKeyboard
}

// Commands flattens the controls in display order.
func (v View) Commands() []command.Command {
	var out []command.Command
	for _, row := range v.Controls {
		for _, c := range row {
			out = append(out, c.Command)
		}
	}
	return out
}

// Has reports whether the view offers a control of the given kind.
func (v View) Has(kind command.Kind) bool {
	for _, c := range v.Commands() {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

// Renderer holds the formatting settings shared by all views.
type Renderer struct {
	pageSize int
	location *time.Location
	printer  *message.Printer
}

func NewRenderer(pageSize int, location *time.Location) *Renderer {
	if pageSize <= 0 {
		pageSize = 5
	}
	if location == nil {
		location = time.UTC
	}
	return &Renderer{
		pageSize: pageSize,
		location: location,
		printer:  message.NewPrinter(language.English),
	}
}
