package session

import (
	"errors"
	"fmt"
	"strings"

	"PriceSlider/internal/model"
	"PriceSlider/internal/notifier"
)

const helpText = `Available commands:
  drag <left|right> <value>   drag a handle to a domain value
  start <x> <y>               begin a touch
  move <x> <y>                move the touch
  end                         release the touch
  select <lower> <upper>      set the selection
  dataset <v1,v2,...>         replace the price buckets
  bounds <width> <height>     resize the control
  step <s> | quantize <on|off>
  min-distance <d> | max-distance <d>
  min-value <v> | max-value <v> | ticks <n>
  show                        print the state and tick strip
  help`

// HandleCommand processes a user command and returns a reply.
func (s *Session) HandleCommand(command string) string {
	command = strings.TrimSpace(command)
	switch command {
	case "", "help", "/help":
		return helpText
	case "show", "/show":
		return s.Report()
	}

	snap, err := s.Apply(command)
	switch {
	case errors.Is(err, ErrUnknownAction):
		return fmt.Sprintf("%v\n%s", err, helpText)
	case err != nil:
		return "error: " + err.Error()
	}

	reply := notifier.FormatPriceLabel(snap.Price)
	if snap.Tracking != model.HandleNone {
		reply += fmt.Sprintf(" [dragging %s]", snap.Tracking)
	}
	return reply
}
