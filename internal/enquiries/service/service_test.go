package service

import (
	"context"
	"testing"
	"time"

	"autohaus_backend/internal/email"
	"autohaus_backend/internal/enquiries/repository"
	"autohaus_backend/internal/enquiries/transport"
	"autohaus_backend/platform/apperr"
	"autohaus_backend/platform/config"
	"autohaus_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	last repository.CreateEnquiryParams
}

func (f *fakeRepo) Create(_ context.Context, params repository.CreateEnquiryParams) (repository.Enquiry, error) {
	f.last = params
	return repository.Enquiry{
		ID:          uuid.New(),
		EnquiryType: params.EnquiryType,
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		Mobile:      params.Mobile,
		Email:       params.Email,
		Status:      "new",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

type fakeVehicles struct {
	snapshot VehicleSnapshot
	err      error
}

func (f *fakeVehicles) Snapshot(context.Context, uuid.UUID) (VehicleSnapshot, error) {
	return f.snapshot, f.err
}

func newTestService(repo *fakeRepo, vehicles *fakeVehicles) *Service {
	cfg := &config.Config{DefaultPhoneRegion: "AU"}
	return New(repo, vehicles, email.NoopSender{}, cfg, logger.New("development"))
}

func strPtr(s string) *string { return &s }

func TestCreateContact_SplitsFreeTextName(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeVehicles{})

	_, err := svc.CreateContact(context.Background(), transport.ContactRequest{
		Name:    "Jane Doe Smith",
		Email:   "jane@example.com",
		Phone:   "0412345678",
		Message: "Please call me",
	}, "203.0.113.9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.last.FirstName != "Jane" {
		t.Fatalf("expected first name Jane, got %q", repo.last.FirstName)
	}
	if repo.last.LastName != "Doe Smith" {
		t.Fatalf("expected last name 'Doe Smith', got %q", repo.last.LastName)
	}
	if repo.last.EnquiryType != EnquiryTypeGeneral {
		t.Fatalf("expected general enquiry type, got %q", repo.last.EnquiryType)
	}
	if repo.last.IPAddress == nil || *repo.last.IPAddress != "203.0.113.9" {
		t.Fatalf("expected IP address stored, got %v", repo.last.IPAddress)
	}
}

func TestCreateContact_NormalizesPhoneToE164(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeVehicles{})

	_, err := svc.CreateContact(context.Background(), transport.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "0412 345 678",
		Message: "hi",
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.last.Mobile == nil || *repo.last.Mobile != "+61412345678" {
		t.Fatalf("expected +61412345678, got %v", repo.last.Mobile)
	}
}

func TestCreateContact_SubjectStoredAndMappedToType(t *testing.T) {
	cases := []struct {
		subject  string
		wantType string
	}{
		{"Finance", "finance"},
		{"Test Drive", "test_drive"},
		{"General question about opening hours", "general"},
	}

	for _, tc := range cases {
		repo := &fakeRepo{}
		svc := newTestService(repo, &fakeVehicles{})

		_, err := svc.CreateContact(context.Background(), transport.ContactRequest{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Phone:   "0412345678",
			Subject: strPtr(tc.subject),
			Message: "hi",
		}, "")
		if err != nil {
			t.Fatalf("subject %q: unexpected error: %v", tc.subject, err)
		}

		if repo.last.Subject == nil || *repo.last.Subject != tc.subject {
			t.Fatalf("subject %q: expected stored verbatim, got %v", tc.subject, repo.last.Subject)
		}
		if repo.last.EnquiryType != tc.wantType {
			t.Fatalf("subject %q: expected type %q, got %q", tc.subject, tc.wantType, repo.last.EnquiryType)
		}
	}
}

func TestCreateContact_MissingSubjectFallsBackToGeneral(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeVehicles{})

	_, err := svc.CreateContact(context.Background(), transport.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "0412345678",
		Subject: strPtr("   "),
		Message: "hi",
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.last.Subject != nil {
		t.Fatalf("expected blank subject dropped, got %v", *repo.last.Subject)
	}
	if repo.last.EnquiryType != EnquiryTypeGeneral {
		t.Fatalf("expected general enquiry type, got %q", repo.last.EnquiryType)
	}
}

func TestNormalizeEnquiryType(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", "general"},
		{"vehicle_interest", "vehicle_interest"},
		{"Test_Drive", "test_drive"},
		{"finance", "finance"},
		{"spam_category", "general"},
		{"  trade_in  ", "trade_in"},
	}

	for _, tc := range cases {
		if got := NormalizeEnquiryType(tc.raw); got != tc.want {
			t.Fatalf("type %q: expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestCreateEnquiry_CapturesVehicleSnapshot(t *testing.T) {
	repo := &fakeRepo{}
	price := 42000.0
	year := 2021
	vehicles := &fakeVehicles{snapshot: VehicleSnapshot{
		Make:  strPtr("Toyota"),
		Model: strPtr("Corolla"),
		Year:  &year,
		Price: &price,
	}}
	svc := newTestService(repo, vehicles)

	vehicleID := uuid.New()
	_, err := svc.CreateEnquiry(context.Background(), transport.EnquiryRequest{
		EnquiryType: "vehicle_interest",
		FirstName:   "Sam",
		LastName:    "Lee",
		Mobile:      "0412345678",
		VehicleID:   &vehicleID,
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.last.SnapshotMake == nil || *repo.last.SnapshotMake != "Toyota" {
		t.Fatalf("expected snapshot make Toyota, got %v", repo.last.SnapshotMake)
	}
	if repo.last.SnapshotPrice == nil || *repo.last.SnapshotPrice != 42000 {
		t.Fatalf("expected snapshot price 42000, got %v", repo.last.SnapshotPrice)
	}
}

func TestCreateEnquiry_UnknownVehicleIsValidationError(t *testing.T) {
	repo := &fakeRepo{}
	vehicles := &fakeVehicles{err: apperr.NotFound("vehicle not found")}
	svc := newTestService(repo, vehicles)

	vehicleID := uuid.New()
	_, err := svc.CreateEnquiry(context.Background(), transport.EnquiryRequest{
		FirstName: "Sam",
		LastName:  "Lee",
		Mobile:    "0412345678",
		VehicleID: &vehicleID,
	}, "")
	if err == nil {
		t.Fatal("expected error for unknown vehicle")
	}
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation kind, got %v", apperr.GetKind(err))
	}
}

func TestCreateEnquiry_ComputesFinanceFromSnapshotPrice(t *testing.T) {
	repo := &fakeRepo{}
	price := 50000.0
	vehicles := &fakeVehicles{snapshot: VehicleSnapshot{Price: &price}}
	svc := newTestService(repo, vehicles)

	vehicleID := uuid.New()
	term := 60
	rate := 5.99
	_, err := svc.CreateEnquiry(context.Background(), transport.EnquiryRequest{
		EnquiryType:  "finance",
		FirstName:    "Sam",
		LastName:     "Lee",
		Mobile:       "0412345678",
		VehicleID:    &vehicleID,
		WantsFinance: true,
		Finance: &transport.FinanceDetails{
			Deposit:           5000,
			TermMonths:        &term,
			AnnualRatePercent: &rate,
		},
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.last.WantsFinance {
		t.Fatal("expected wants_finance set")
	}
	if repo.last.FinanceMonthly == nil || *repo.last.FinanceMonthly < 860 || *repo.last.FinanceMonthly > 880 {
		t.Fatalf("expected monthly near 870, got %v", repo.last.FinanceMonthly)
	}
	if repo.last.FinanceWeekly == nil || *repo.last.FinanceWeekly < 195 || *repo.last.FinanceWeekly > 206 {
		t.Fatalf("expected weekly near 200, got %v", repo.last.FinanceWeekly)
	}
}

func TestCreateEnquiry_FinanceWithoutVehicleKeepsSubmittedFigures(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeVehicles{})

	monthly := 650.0
	weekly := 150.0
	_, err := svc.CreateEnquiry(context.Background(), transport.EnquiryRequest{
		EnquiryType:  "finance",
		FirstName:    "Sam",
		LastName:     "Lee",
		Mobile:       "0412345678",
		WantsFinance: true,
		Finance: &transport.FinanceDetails{
			Deposit: 5000,
			Monthly: &monthly,
			Weekly:  &weekly,
		},
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.last.FinanceMonthly == nil || *repo.last.FinanceMonthly != 650 {
		t.Fatalf("expected submitted monthly kept, got %v", repo.last.FinanceMonthly)
	}
	if repo.last.FinanceWeekly == nil || *repo.last.FinanceWeekly != 150 {
		t.Fatalf("expected submitted weekly kept, got %v", repo.last.FinanceWeekly)
	}
}

func TestCreateEnquiry_ContactMethodNormalized(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeVehicles{})

	_, err := svc.CreateEnquiry(context.Background(), transport.EnquiryRequest{
		FirstName:              "Sam",
		LastName:               "Lee",
		Mobile:                 "0412345678",
		PreferredContactMethod: strPtr("  WhatsApp "),
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.last.PreferredContactMethod == nil || *repo.last.PreferredContactMethod != "whatsapp" {
		t.Fatalf("expected whatsapp, got %v", repo.last.PreferredContactMethod)
	}

	_, err = svc.CreateEnquiry(context.Background(), transport.EnquiryRequest{
		FirstName:              "Sam",
		LastName:               "Lee",
		Mobile:                 "0412345678",
		PreferredContactMethod: strPtr("fax"),
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.last.PreferredContactMethod != nil {
		t.Fatalf("expected unsupported method dropped, got %v", *repo.last.PreferredContactMethod)
	}
}

func TestCreateSell_StoresVehicleDetailsAsTradeIn(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeVehicles{})

	odometer := 88000.0
	_, err := svc.CreateSell(context.Background(), transport.SellRequest{
		FirstName: "Sam",
		LastName:  "Lee",
		Mobile:    "0412345678",
		Year:      2018,
		Make:      "Mazda",
		Model:     "3",
		Odometer:  &odometer,
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.last.EnquiryType != "sell_vehicle" {
		t.Fatalf("expected sell_vehicle type, got %q", repo.last.EnquiryType)
	}
	if !repo.last.HasTradeIn {
		t.Fatal("expected trade-in columns populated")
	}
	if repo.last.TradeInMake == nil || *repo.last.TradeInMake != "Mazda" {
		t.Fatalf("expected trade-in make Mazda, got %v", repo.last.TradeInMake)
	}
	if repo.last.TradeInYear == nil || *repo.last.TradeInYear != 2018 {
		t.Fatalf("expected trade-in year 2018, got %v", repo.last.TradeInYear)
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		name  string
		first string
		last  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane Doe Smith", "Jane", "Doe Smith"},
		{"Jane", "Jane", ""},
		{"  Jane   Doe  ", "Jane", "Doe"},
		{"", "", ""},
	}

	for _, tc := range cases {
		first, last := splitName(tc.name)
		if first != tc.first || last != tc.last {
			t.Fatalf("name %q: expected %q/%q, got %q/%q", tc.name, tc.first, tc.last, first, last)
		}
	}
}
