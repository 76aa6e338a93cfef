package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"sync"

	"hotel-reservation/models"
	"hotel-reservation/storage"
)

// ReservationSystem owns the hotel, customer and reservation collections.
//
// Every operation loads the collections it needs, mutates them in memory and
// writes them back in full. Business failures (duplicate id, unknown id, no
// capacity, already cancelled) are reported as false with a logged message;
// the error return is reserved for stored records that cannot be constructed.
//
// Operations on one ReservationSystem run one at a time. Separate processes
// sharing the same storage are not coordinated, and cross-collection
// operations are two independent writes.
type ReservationSystem struct {
	mu sync.RWMutex

	hotels       *storage.Collection[models.Hotel]
	customers    *storage.Collection[models.Customer]
	reservations *storage.Collection[models.Reservation]

	metrics *Metrics

	// Out receives the DisplayHotel / DisplayCustomer reports.
	Out io.Writer
}

func NewReservationSystem(backend storage.Backend, metrics *Metrics) *ReservationSystem {
	return &ReservationSystem{
		hotels:       storage.NewCollection[models.Hotel](backend, storage.HotelsCollection),
		customers:    storage.NewCollection[models.Customer](backend, storage.CustomersCollection),
		reservations: storage.NewCollection[models.Reservation](backend, storage.ReservationsCollection),
		metrics:      metrics,
		Out:          os.Stdout,
	}
}

// record counts one finished operation. A construction error is counted as
// a fault and always reported as false.
func (s *ReservationSystem) record(operation string, ok bool, err error) (bool, error) {
	if err != nil {
		s.metrics.observe(operation, false)
		s.metrics.fault()
		return false, err
	}
	s.metrics.observe(operation, ok)
	return ok, nil
}

// saveAll writes a collection and maps a write error to a logged false.
func saveAll[T any](s *ReservationSystem, c *storage.Collection[T], items []T) bool {
	if err := c.Save(items); err != nil {
		log.Printf("❌ Error writing %s: %v", c.Name(), err)
		return false
	}
	s.metrics.setSize(c.Name(), len(items))
	return true
}

func hotelIndex(hotels []models.Hotel, hotelID string) int {
	return slices.IndexFunc(hotels, func(h models.Hotel) bool { return h.HotelID == hotelID })
}

func customerIndex(customers []models.Customer, customerID string) int {
	return slices.IndexFunc(customers, func(c models.Customer) bool { return c.CustomerID == customerID })
}

func reservationIndex(reservations []models.Reservation, reservationID string) int {
	return slices.IndexFunc(reservations, func(r models.Reservation) bool { return r.ReservationID == reservationID })
}

// ----------------------------------------------------
// Hotels
// ----------------------------------------------------

func (s *ReservationSystem) CreateHotel(hotelID, name, address string, totalRooms int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.createHotel(hotelID, name, address, totalRooms)
	return s.record("create_hotel", ok, err)
}

func (s *ReservationSystem) createHotel(hotelID, name, address string, totalRooms int) (bool, error) {
	hotels, err := s.hotels.Load()
	if err != nil {
		return false, err
	}
	if hotelIndex(hotels, hotelID) >= 0 {
		log.Printf("❌ Error: Hotel with ID %s already exists.", hotelID)
		return false, nil
	}

	hotels = append(hotels, models.NewHotel(hotelID, name, address, totalRooms))
	return saveAll(s, s.hotels, hotels), nil
}

// DeleteHotel leaves reservations that reference the hotel untouched.
func (s *ReservationSystem) DeleteHotel(hotelID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.deleteHotel(hotelID)
	return s.record("delete_hotel", ok, err)
}

func (s *ReservationSystem) deleteHotel(hotelID string) (bool, error) {
	hotels, err := s.hotels.Load()
	if err != nil {
		return false, err
	}
	i := hotelIndex(hotels, hotelID)
	if i < 0 {
		log.Printf("❌ Error: Hotel %s not found.", hotelID)
		return false, nil
	}

	hotels = slices.Delete(hotels, i, i+1)
	return saveAll(s, s.hotels, hotels), nil
}

func (s *ReservationSystem) GetHotel(hotelID string) (models.Hotel, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findHotel(hotelID)
}

func (s *ReservationSystem) findHotel(hotelID string) (models.Hotel, bool, error) {
	hotels, err := s.hotels.Load()
	if err != nil {
		return models.Hotel{}, false, err
	}
	i := hotelIndex(hotels, hotelID)
	if i < 0 {
		return models.Hotel{}, false, nil
	}
	return hotels[i], true, nil
}

func (s *ReservationSystem) ListHotels() ([]models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotels.Load()
}

// DisplayHotel writes the hotel's attributes and current availability to Out.
func (s *ReservationSystem) DisplayHotel(hotelID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ok, err := s.displayHotel(hotelID)
	return s.record("display_hotel", ok, err)
}

func (s *ReservationSystem) displayHotel(hotelID string) (bool, error) {
	hotel, found, err := s.findHotel(hotelID)
	if err != nil {
		return false, err
	}
	if !found {
		log.Printf("❌ Error: Hotel %s not found.", hotelID)
		return false, nil
	}

	fmt.Fprintf(s.Out, "Hotel ID: %s\n", hotel.HotelID)
	fmt.Fprintf(s.Out, "Name: %s\n", hotel.Name)
	fmt.Fprintf(s.Out, "Address: %s\n", hotel.Address)
	fmt.Fprintf(s.Out, "Total rooms: %d\n", hotel.TotalRooms)
	fmt.Fprintf(s.Out, "Available: %d\n", hotel.AvailableRooms())
	return true, nil
}

func (s *ReservationSystem) ModifyHotel(hotelID string, update models.HotelUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.modifyHotel(hotelID, update)
	return s.record("modify_hotel", ok, err)
}

func (s *ReservationSystem) modifyHotel(hotelID string, update models.HotelUpdate) (bool, error) {
	hotels, err := s.hotels.Load()
	if err != nil {
		return false, err
	}
	i := hotelIndex(hotels, hotelID)
	if i < 0 {
		log.Printf("❌ Error: Hotel %s not found.", hotelID)
		return false, nil
	}

	update.Apply(&hotels[i])
	return saveAll(s, s.hotels, hotels), nil
}

// ReserveRoom takes one room if the hotel has any available.
func (s *ReservationSystem) ReserveRoom(hotelID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.reserveRoom(hotelID)
	return s.record("reserve_room", ok, err)
}

func (s *ReservationSystem) reserveRoom(hotelID string) (bool, error) {
	hotels, err := s.hotels.Load()
	if err != nil {
		return false, err
	}
	i := hotelIndex(hotels, hotelID)
	if i < 0 {
		log.Printf("❌ Error: Hotel %s not found.", hotelID)
		return false, nil
	}
	if hotels[i].AvailableRooms() <= 0 {
		log.Printf("❌ Error: No rooms at hotel %s.", hotelID)
		return false, nil
	}

	hotels[i].ReservedRooms++
	return saveAll(s, s.hotels, hotels), nil
}

// CancelHotelReservation gives one room back to the hotel.
func (s *ReservationSystem) CancelHotelReservation(hotelID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.releaseRoom(hotelID)
	return s.record("cancel_hotel_reservation", ok, err)
}

func (s *ReservationSystem) releaseRoom(hotelID string) (bool, error) {
	hotels, err := s.hotels.Load()
	if err != nil {
		return false, err
	}
	i := hotelIndex(hotels, hotelID)
	if i < 0 {
		log.Printf("❌ Error: Hotel %s not found.", hotelID)
		return false, nil
	}
	if hotels[i].ReservedRooms <= 0 {
		log.Printf("❌ Error: No reservations at hotel %s.", hotelID)
		return false, nil
	}

	hotels[i].ReservedRooms--
	return saveAll(s, s.hotels, hotels), nil
}

// ----------------------------------------------------
// Customers
// ----------------------------------------------------

func (s *ReservationSystem) CreateCustomer(customerID, name, email, phone string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.createCustomer(customerID, name, email, phone)
	return s.record("create_customer", ok, err)
}

func (s *ReservationSystem) createCustomer(customerID, name, email, phone string) (bool, error) {
	customers, err := s.customers.Load()
	if err != nil {
		return false, err
	}
	if customerIndex(customers, customerID) >= 0 {
		log.Printf("❌ Error: Customer ID %s already exists.", customerID)
		return false, nil
	}

	customers = append(customers, models.NewCustomer(customerID, name, email, phone))
	return saveAll(s, s.customers, customers), nil
}

func (s *ReservationSystem) DeleteCustomer(customerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.deleteCustomer(customerID)
	return s.record("delete_customer", ok, err)
}

func (s *ReservationSystem) deleteCustomer(customerID string) (bool, error) {
	customers, err := s.customers.Load()
	if err != nil {
		return false, err
	}
	i := customerIndex(customers, customerID)
	if i < 0 {
		log.Printf("❌ Error: Customer ID %s not found.", customerID)
		return false, nil
	}

	customers = slices.Delete(customers, i, i+1)
	return saveAll(s, s.customers, customers), nil
}

func (s *ReservationSystem) GetCustomer(customerID string) (models.Customer, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findCustomer(customerID)
}

func (s *ReservationSystem) findCustomer(customerID string) (models.Customer, bool, error) {
	customers, err := s.customers.Load()
	if err != nil {
		return models.Customer{}, false, err
	}
	i := customerIndex(customers, customerID)
	if i < 0 {
		return models.Customer{}, false, nil
	}
	return customers[i], true, nil
}

func (s *ReservationSystem) ListCustomers() ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers.Load()
}

func (s *ReservationSystem) DisplayCustomer(customerID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ok, err := s.displayCustomer(customerID)
	return s.record("display_customer", ok, err)
}

func (s *ReservationSystem) displayCustomer(customerID string) (bool, error) {
	customer, found, err := s.findCustomer(customerID)
	if err != nil {
		return false, err
	}
	if !found {
		log.Printf("❌ Error: Customer ID %s not found.", customerID)
		return false, nil
	}

	fmt.Fprintf(s.Out, "Customer ID: %s\n", customer.CustomerID)
	fmt.Fprintf(s.Out, "Name: %s\n", customer.Name)
	fmt.Fprintf(s.Out, "Email: %s\n", customer.Email)
	fmt.Fprintf(s.Out, "Phone: %s\n", customer.Phone)
	return true, nil
}

func (s *ReservationSystem) ModifyCustomer(customerID string, update models.CustomerUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.modifyCustomer(customerID, update)
	return s.record("modify_customer", ok, err)
}

func (s *ReservationSystem) modifyCustomer(customerID string, update models.CustomerUpdate) (bool, error) {
	customers, err := s.customers.Load()
	if err != nil {
		return false, err
	}
	i := customerIndex(customers, customerID)
	if i < 0 {
		log.Printf("❌ Error: Customer ID %s not found.", customerID)
		return false, nil
	}

	update.Apply(&customers[i])
	return saveAll(s, s.customers, customers), nil
}

// ----------------------------------------------------
// Reservations
// ----------------------------------------------------

func (s *ReservationSystem) GetReservation(reservationID string) (models.Reservation, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reservations, err := s.reservations.Load()
	if err != nil {
		return models.Reservation{}, false, err
	}
	i := reservationIndex(reservations, reservationID)
	if i < 0 {
		return models.Reservation{}, false, nil
	}
	return reservations[i], true, nil
}

func (s *ReservationSystem) ListReservations() ([]models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reservations.Load()
}

// CreateReservation books a room for an existing customer at an existing
// hotel. The room is taken before the reservation is appended; the two
// writes are not atomic.
func (s *ReservationSystem) CreateReservation(in models.ReservationInput) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.createReservation(in)
	return s.record("create_reservation", ok, err)
}

func (s *ReservationSystem) createReservation(in models.ReservationInput) (bool, error) {
	reservations, err := s.reservations.Load()
	if err != nil {
		return false, err
	}
	if reservationIndex(reservations, in.ReservationID) >= 0 {
		log.Printf("❌ Error: Reservation ID %s already exists.", in.ReservationID)
		return false, nil
	}

	_, customerFound, err := s.findCustomer(in.CustomerID)
	if err != nil {
		return false, err
	}
	if !customerFound {
		log.Printf("❌ Error: Customer %s not found.", in.CustomerID)
		return false, nil
	}

	_, hotelFound, err := s.findHotel(in.HotelID)
	if err != nil {
		return false, err
	}
	if !hotelFound {
		log.Printf("❌ Error: Hotel %s not found.", in.HotelID)
		return false, nil
	}

	reserved, err := s.reserveRoom(in.HotelID)
	if err != nil || !reserved {
		return false, err
	}

	reservations = append(reservations, models.NewReservation(in))
	return saveAll(s, s.reservations, reservations), nil
}

// CancelReservation marks an active reservation cancelled and releases one
// room at its hotel. The release result does not change the outcome: a hotel
// that has since been deleted or has no reserved rooms is only logged.
func (s *ReservationSystem) CancelReservation(reservationID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.cancelReservation(reservationID)
	return s.record("cancel_reservation", ok, err)
}

func (s *ReservationSystem) cancelReservation(reservationID string) (bool, error) {
	reservations, err := s.reservations.Load()
	if err != nil {
		return false, err
	}
	i := reservationIndex(reservations, reservationID)
	if i < 0 {
		log.Printf("❌ Error: Reservation %s not found.", reservationID)
		return false, nil
	}
	if reservations[i].IsCancelled() {
		log.Printf("❌ Error: Res. %s already cancelled.", reservationID)
		return false, nil
	}

	reservations[i].Status = models.StatusCancelled
	if _, err := s.releaseRoom(reservations[i].HotelID); err != nil {
		return false, err
	}
	return saveAll(s, s.reservations, reservations), nil
}
