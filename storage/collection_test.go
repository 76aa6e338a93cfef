package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"hotel-reservation/models"
)

func newHotels(t *testing.T) (*Collection[models.Hotel], string) {
	t.Helper()
	dir := t.TempDir()
	return NewCollection[models.Hotel](NewFileBackend(dir), HotelsCollection), dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	hotels, _ := newHotels(t)
	got, err := hotels.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil collection, got %#v", got)
	}
}

func TestLoadBlankFileIsEmpty(t *testing.T) {
	hotels, dir := newHotels(t)
	writeFile(t, filepath.Join(dir, "hotels.json"), "  \n\t")

	got, err := hotels.Load()
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty collection, got %v (err %v)", got, err)
	}
}

func TestLoadMalformedJSONIsEmpty(t *testing.T) {
	hotels, dir := newHotels(t)
	writeFile(t, filepath.Join(dir, "hotels.json"), "{invalid json")

	got, err := hotels.Load()
	if err != nil {
		t.Fatalf("malformed JSON must not be an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %v", got)
	}
}

func TestLoadWrongShapeIsEmpty(t *testing.T) {
	hotels, dir := newHotels(t)
	writeFile(t, filepath.Join(dir, "hotels.json"), `{"hotel_id":"H1"}`)

	got, err := hotels.Load()
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty collection, got %v (err %v)", got, err)
	}
}

func TestLoadRecordWithoutIdentifierFails(t *testing.T) {
	hotels, dir := newHotels(t)
	writeFile(t, filepath.Join(dir, "hotels.json"), `[{"name":"A","address":"B","total_rooms":3}]`)

	_, err := hotels.Load()
	if !errors.Is(err, models.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	hotels, dir := newHotels(t)
	want := []models.Hotel{
		models.NewHotel("H1", "Plaza", "Main St 1", 10),
		{HotelID: "H2", Name: "Inn", Address: "Side St", TotalRooms: 2, ReservedRooms: 5},
	}
	if err := hotels.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := hotels.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "hotels.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(raw), "[\n  {\n    \"hotel_id\": \"H1\"") {
		t.Fatalf("expected indented array, got:\n%s", raw)
	}
	if !strings.Contains(string(raw), `"reserved_rooms": 0`) {
		t.Fatalf("expected reserved_rooms to be written, got:\n%s", raw)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	backend := NewFileBackend(dir)
	writeFile(t, filepath.Join(dir, "reservations.json"), `[
  {"reservation_id":"R1","customer_id":"C1","hotel_id":"H1","room_number":"7","check_in":"a","check_out":"b"}
]`)

	got, err := NewCollection[models.Reservation](backend, ReservationsCollection).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Status != models.StatusActive {
		t.Fatalf("expected one active reservation, got %+v", got)
	}
}

func TestSaveEmptyWritesEmptyArray(t *testing.T) {
	hotels, dir := newHotels(t)
	if err := hotels.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := os.ReadFile(filepath.Join(dir, "hotels.json"))
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Fatalf("expected [], got %q", raw)
	}
}

func TestSaveKeepsMarkupCharacters(t *testing.T) {
	hotels, dir := newHotels(t)
	want := []models.Hotel{models.NewHotel("H1", "Bed & Breakfast <Sur>", "Ünter den Linden", 3)}
	if err := hotels.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, _ := os.ReadFile(filepath.Join(dir, "hotels.json"))
	if !strings.Contains(string(raw), `"name": "Bed & Breakfast <Sur>"`) || !strings.Contains(string(raw), "Ünter") {
		t.Fatalf("text should be stored unescaped, got:\n%s", raw)
	}
	if strings.HasSuffix(string(raw), "\n") {
		t.Fatalf("unexpected trailing newline in %q", raw)
	}

	got, err := hotels.Load()
	if err != nil || !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: %+v (err %v)", got, err)
	}
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	backend := &FileBackend{Dir: filepath.Join(t.TempDir(), "does-not-exist")}
	err := NewCollection[models.Customer](backend, CustomersCollection).Save([]models.Customer{
		models.NewCustomer("C1", "Jane", "j@x", "1"),
	})
	if err == nil {
		t.Fatal("expected write error")
	}
}

func TestNewFileBackendCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	NewFileBackend(dir)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory %s, got %v", dir, err)
	}
}
