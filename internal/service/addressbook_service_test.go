package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mmynk/addressbook/internal/calculator"
	"github.com/mmynk/addressbook/internal/models"
	"github.com/mmynk/addressbook/internal/storage/memory"
)

// fixedToday is a Monday.
var fixedToday = time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)

// setupTestService creates a service over an empty in-memory store with a fixed clock.
func setupTestService(t *testing.T, opts ...Option) (*AddressBookService, *memory.AddressBook) {
	t.Helper()

	store := memory.New()
	opts = append([]Option{WithClock(func() time.Time { return fixedToday })}, opts...)
	return NewAddressBookService(store, opts...), store
}

func TestAddContact(t *testing.T) {
	svc, store := setupTestService(t)

	added, err := svc.AddContact("John", "1234567890")
	if err != nil {
		t.Fatalf("AddContact failed: %v", err)
	}
	if !added {
		t.Error("expected phone to be added")
	}

	// second phone goes to the same record
	if _, err := svc.AddContact("John", "5555555555"); err != nil {
		t.Fatalf("AddContact failed: %v", err)
	}

	added, err = svc.AddContact("John", "5555555555")
	if err != nil {
		t.Fatalf("AddContact duplicate failed: %v", err)
	}
	if added {
		t.Error("expected duplicate phone to be ignored")
	}

	record, ok := store.Find("John")
	if !ok {
		t.Fatal("expected John in store")
	}
	if record.JoinedPhones() != "1234567890; 5555555555" {
		t.Errorf("phones = %q", record.JoinedPhones())
	}
}

func TestAddContact_InvalidPhone(t *testing.T) {
	svc, store := setupTestService(t)

	_, err := svc.AddContact("John", "123")
	if !errors.Is(err, models.ErrInvalidPhoneFormat) {
		t.Errorf("expected ErrInvalidPhoneFormat, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected no contact to be stored, got %d", store.Len())
	}
}

func TestChangePhone(t *testing.T) {
	svc, _ := setupTestService(t)
	svc.AddContact("John", "1234567890")
	svc.AddContact("John", "5555555555")

	changed, err := svc.ChangePhone("John", "1112223333")
	if err != nil {
		t.Fatalf("ChangePhone failed: %v", err)
	}
	if !changed {
		t.Error("expected phone to change")
	}

	phone, ok, err := svc.Phone("John")
	if err != nil || !ok {
		t.Fatalf("Phone = (%v, %v, %v)", phone, ok, err)
	}
	if phone.String() != "1112223333" {
		t.Errorf("first phone = %s, want 1112223333", phone)
	}
}

func TestChangePhone_Errors(t *testing.T) {
	svc, store := setupTestService(t)
	svc.AddContact("John", "1234567890")
	store.AddRecord(models.NewRecord("Jane"))

	t.Run("unknown contact", func(t *testing.T) {
		_, err := svc.ChangePhone("Nobody", "1112223333")
		if !errors.Is(err, ErrContactNotFound) {
			t.Errorf("expected ErrContactNotFound, got %v", err)
		}
	})

	t.Run("invalid phone keeps the old one", func(t *testing.T) {
		_, err := svc.ChangePhone("John", "abc")
		if !errors.Is(err, models.ErrInvalidPhoneFormat) {
			t.Errorf("expected ErrInvalidPhoneFormat, got %v", err)
		}
		phone, _, _ := svc.Phone("John")
		if phone.String() != "1234567890" {
			t.Errorf("phone = %s, want 1234567890", phone)
		}
	})

	t.Run("contact without phone", func(t *testing.T) {
		changed, err := svc.ChangePhone("Jane", "1112223333")
		if err != nil {
			t.Fatalf("ChangePhone failed: %v", err)
		}
		if changed {
			t.Error("expected nothing to change")
		}

		_, err = svc.ChangePhone("Jane", "bad")
		if !errors.Is(err, models.ErrInvalidPhoneFormat) {
			t.Errorf("expected ErrInvalidPhoneFormat, got %v", err)
		}
	})
}

func TestPhone_NotFound(t *testing.T) {
	svc, _ := setupTestService(t)

	_, _, err := svc.Phone("John")
	if !errors.Is(err, ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}
}

func TestRemovePhone(t *testing.T) {
	svc, _ := setupTestService(t)
	svc.AddContact("John", "1234567890")

	removed, err := svc.RemovePhone("John", "1234567890")
	if err != nil || !removed {
		t.Fatalf("RemovePhone = (%v, %v), want (true, nil)", removed, err)
	}

	_, ok, err := svc.Phone("John")
	if err != nil {
		t.Fatalf("Phone failed: %v", err)
	}
	if ok {
		t.Error("expected John to have no phone")
	}

	if _, err := svc.RemovePhone("Nobody", "1234567890"); !errors.Is(err, ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}
}

func TestDeleteContact(t *testing.T) {
	svc, _ := setupTestService(t)
	svc.AddContact("John", "1234567890")

	if err := svc.DeleteContact("John"); err != nil {
		t.Fatalf("DeleteContact failed: %v", err)
	}
	if len(svc.Contacts()) != 0 {
		t.Errorf("expected no contacts, got %d", len(svc.Contacts()))
	}
	if err := svc.DeleteContact("John"); !errors.Is(err, ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}
}

func TestAddBirthday(t *testing.T) {
	svc, _ := setupTestService(t)
	svc.AddContact("John", "1234567890")

	set, err := svc.AddBirthday("John", "15.06.1990")
	if err != nil || !set {
		t.Fatalf("AddBirthday = (%v, %v), want (true, nil)", set, err)
	}

	set, err = svc.AddBirthday("John", "01.01.2000")
	if err != nil {
		t.Fatalf("AddBirthday failed: %v", err)
	}
	if set {
		t.Error("expected second birthday to be ignored")
	}

	birthday, ok, err := svc.Birthday("John")
	if err != nil || !ok {
		t.Fatalf("Birthday = (%v, %v, %v)", birthday, ok, err)
	}
	if birthday.String() != "15.06.1990" {
		t.Errorf("birthday = %s, want 15.06.1990", birthday)
	}

	// phones survive
	phone, _, _ := svc.Phone("John")
	if phone.String() != "1234567890" {
		t.Errorf("phone = %s, want 1234567890", phone)
	}
}

func TestAddBirthday_CreatesContact(t *testing.T) {
	svc, store := setupTestService(t)

	if _, err := svc.AddBirthday("Jane", "1.2.2000"); err != nil {
		t.Fatalf("AddBirthday failed: %v", err)
	}
	if _, ok := store.Find("Jane"); !ok {
		t.Error("expected Jane to be created")
	}

	_, err := svc.AddBirthday("Bob", "30.02.2000")
	if !errors.Is(err, models.ErrInvalidBirthdayFormat) {
		t.Errorf("expected ErrInvalidBirthdayFormat, got %v", err)
	}
	if _, ok := store.Find("Bob"); ok {
		t.Error("expected Bob not to be created")
	}
}

func TestBirthday_NotSet(t *testing.T) {
	svc, _ := setupTestService(t)
	svc.AddContact("John", "1234567890")

	_, ok, err := svc.Birthday("John")
	if err != nil {
		t.Fatalf("Birthday failed: %v", err)
	}
	if ok {
		t.Error("expected no birthday")
	}

	if _, _, err := svc.Birthday("Nobody"); !errors.Is(err, ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}
}

func TestBirthdaysPerWeek(t *testing.T) {
	svc, _ := setupTestService(t)
	svc.AddBirthday("John", "15.06.1990")  // rolls to 2025-06-15, Sunday
	svc.AddContact("Jane", "9876543210")   // no birthday
	svc.AddBirthday("Alice", "20.06.1985") // 2024-06-20, Thursday
	svc.AddBirthday("Bob", "23.06.1970")   // 2024-06-23, Sunday

	want := []calculator.WeekdayGroup{
		{Weekday: time.Sunday, Names: []string{"John", "Bob"}},
		{Weekday: time.Thursday, Names: []string{"Alice"}},
	}
	if diff := cmp.Diff(want, svc.BirthdaysPerWeek()); diff != "" {
		t.Errorf("BirthdaysPerWeek() mismatch (-want +got):\n%s", diff)
	}

	wantReport := "[ok] - Sunday: John, Bob\n[ok] - Thursday: Alice"
	if got := svc.BirthdayReport(); got != wantReport {
		t.Errorf("BirthdayReport() = %q, want %q", got, wantReport)
	}
}

func TestBirthdaysPerWeek_WeekendsToMonday(t *testing.T) {
	svc, _ := setupTestService(t, WithWeekendsToMonday(true))
	svc.AddBirthday("John", "15.06.1990")
	svc.AddBirthday("Alice", "20.06.1985")

	want := "[ok] - Monday: John\n[ok] - Thursday: Alice"
	if got := svc.BirthdayReport(); got != want {
		t.Errorf("BirthdayReport() = %q, want %q", got, want)
	}
}

func TestBirthdaysPerWeek_NoBirthdays(t *testing.T) {
	svc, _ := setupTestService(t)
	svc.AddContact("Jane", "9876543210")

	if groups := svc.BirthdaysPerWeek(); len(groups) != 0 {
		t.Errorf("expected no groups, got %v", groups)
	}
	if got := svc.BirthdayReport(); got != "" {
		t.Errorf("BirthdayReport() = %q, want empty", got)
	}
}
