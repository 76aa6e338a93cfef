// Package menu is the interactive text front end of the reservation store.
// It only collects answers and forwards them; every rule lives in the store.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"hotel-reservation/models"
	"hotel-reservation/utils"
)

// Store is the set of operations the menu can dispatch to.
type Store interface {
	CreateHotel(hotelID, name, address string, totalRooms int) (bool, error)
	DeleteHotel(hotelID string) (bool, error)
	DisplayHotel(hotelID string) (bool, error)
	ModifyHotel(hotelID string, update models.HotelUpdate) (bool, error)
	ReserveRoom(hotelID string) (bool, error)
	CancelHotelReservation(hotelID string) (bool, error)

	CreateCustomer(customerID, name, email, phone string) (bool, error)
	DeleteCustomer(customerID string) (bool, error)
	DisplayCustomer(customerID string) (bool, error)
	ModifyCustomer(customerID string, update models.CustomerUpdate) (bool, error)

	CreateReservation(in models.ReservationInput) (bool, error)
	CancelReservation(reservationID string) (bool, error)
}

const banner = `
=== Reservation System ===
1. Create Hotel    2. Delete Hotel    3. Display Hotel
4. Modify Hotel    5. Reserve Room    6. Cancel Hotel Res.
7. Create Customer 8. Delete Customer 9. Display Customer
10. Modify Customer
11. Create Reservation  12. Cancel Reservation
0. Exit
`

type session struct {
	store Store
	in    *bufio.Scanner
	out   io.Writer
	eof   bool
}

type handler func(s *session) (bool, error)

// byID asks for one identifier and passes it to op.
func byID(prompt string, op func(Store, string) (bool, error)) handler {
	return func(s *session) (bool, error) {
		id := s.ask(prompt)
		if s.eof {
			return false, nil
		}
		return op(s.store, id)
	}
}

var handlers = map[string]handler{
	"1":  createHotel,
	"2":  byID("Hotel ID: ", Store.DeleteHotel),
	"3":  byID("Hotel ID: ", Store.DisplayHotel),
	"4":  modifyHotel,
	"5":  byID("Hotel ID: ", Store.ReserveRoom),
	"6":  byID("Hotel ID: ", Store.CancelHotelReservation),
	"7":  createCustomer,
	"8":  byID("Customer ID: ", Store.DeleteCustomer),
	"9":  byID("Customer ID: ", Store.DisplayCustomer),
	"10": modifyCustomer,
	"11": createReservation,
	"12": byID("Reservation ID: ", Store.CancelReservation),
}

// Run shows the menu until the user picks 0 or input ends. It returns an
// error only when the store reports a structurally invalid record.
func Run(store Store, in io.Reader, out io.Writer) error {
	s := &session{store: store, in: bufio.NewScanner(in), out: out}
	for {
		fmt.Fprint(s.out, banner)
		choice := strings.TrimSpace(s.ask("Select option: "))
		if s.eof || choice == "0" {
			return nil
		}

		h, ok := handlers[choice]
		if !ok {
			fmt.Fprintln(s.out, "Invalid option.")
			continue
		}
		if _, err := h(s); err != nil {
			log.Printf("❌ %v", err)
			return err
		}
	}
}

func (s *session) ask(prompt string) string {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		s.eof = true
		return ""
	}
	return s.in.Text()
}

func parseRooms(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

func createHotel(s *session) (bool, error) {
	id := s.ask("Hotel ID: ")
	name := s.ask("Name: ")
	address := s.ask("Address: ")
	raw := s.ask("Total rooms: ")
	if s.eof {
		return false, nil
	}
	rooms, err := parseRooms(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Error: Total rooms must be a number.")
		return false, nil
	}
	return s.store.CreateHotel(id, name, address, rooms)
}

func modifyHotel(s *session) (bool, error) {
	id := s.ask("Hotel ID: ")
	update := models.HotelUpdate{
		Name:    utils.StringOrNil(s.ask("New name (Enter to skip): ")),
		Address: utils.StringOrNil(s.ask("New address (Enter to skip): ")),
	}
	raw := s.ask("New total rooms (Enter to skip): ")
	if s.eof {
		return false, nil
	}
	if raw != "" {
		rooms, err := parseRooms(raw)
		if err != nil {
			fmt.Fprintln(s.out, "Error: Total rooms must be a number.")
			return false, nil
		}
		update.TotalRooms = &rooms
	}
	return s.store.ModifyHotel(id, update)
}

func createCustomer(s *session) (bool, error) {
	id := s.ask("Customer ID: ")
	name := s.ask("Name: ")
	email := s.ask("Email: ")
	phone := s.ask("Phone: ")
	if s.eof {
		return false, nil
	}
	return s.store.CreateCustomer(id, name, email, phone)
}

func modifyCustomer(s *session) (bool, error) {
	id := s.ask("Customer ID: ")
	update := models.CustomerUpdate{
		Name:  utils.StringOrNil(s.ask("New name (Enter to skip): ")),
		Email: utils.StringOrNil(s.ask("New email (Enter to skip): ")),
		Phone: utils.StringOrNil(s.ask("New phone (Enter to skip): ")),
	}
	if s.eof {
		return false, nil
	}
	return s.store.ModifyCustomer(id, update)
}

func createReservation(s *session) (bool, error) {
	in := models.ReservationInput{
		ReservationID: s.ask("Reservation ID: "),
		CustomerID:    s.ask("Customer ID: "),
		HotelID:       s.ask("Hotel ID: "),
		RoomNumber:    s.ask("Room number: "),
		CheckIn:       s.ask("Check-in date: "),
		CheckOut:      s.ask("Check-out date: "),
	}
	if s.eof {
		return false, nil
	}
	return s.store.CreateReservation(in)
}
