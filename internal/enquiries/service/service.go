// Package service implements lead intake: validation profiles, field
// normalization, vehicle snapshots and staff notification.
package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"autohaus_backend/internal/email"
	"autohaus_backend/internal/enquiries/repository"
	"autohaus_backend/internal/enquiries/transport"
	"autohaus_backend/internal/finance"
	"autohaus_backend/platform/apperr"
	"autohaus_backend/platform/config"
	"autohaus_backend/platform/logger"
	"autohaus_backend/platform/phone"

	"github.com/google/uuid"
)

// EnquiryTypeGeneral is the fallback for absent or unrecognized types.
const EnquiryTypeGeneral = "general"

const notifyTimeout = 15 * time.Second

var knownEnquiryTypes = map[string]struct{}{
	"vehicle_interest": {},
	"test_drive":       {},
	"finance":          {},
	"trade_in":         {},
	"sell_vehicle":     {},
	EnquiryTypeGeneral: {},
}

var allowedContactMethods = map[string]struct{}{
	"phone":    {},
	"email":    {},
	"whatsapp": {},
}

// VehicleSnapshot holds the listing fields frozen into an enquiry at
// submission time.
type VehicleSnapshot struct {
	Make  *string
	Model *string
	Year  *int
	Price *float64
}

// VehicleSnapshotReader resolves a listing into its snapshot fields.
type VehicleSnapshotReader interface {
	Snapshot(ctx context.Context, id uuid.UUID) (VehicleSnapshot, error)
}

// Service handles enquiry submissions.
type Service struct {
	repo     repository.Repository
	vehicles VehicleSnapshotReader
	sender   email.Sender
	phoneCfg config.PhoneConfig
	log      *logger.Logger
}

// New creates the enquiry service.
func New(repo repository.Repository, vehicles VehicleSnapshotReader, sender email.Sender, phoneCfg config.PhoneConfig, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		vehicles: vehicles,
		sender:   sender,
		phoneCfg: phoneCfg,
		log:      log,
	}
}

// CreateContact persists a general contact form submission. This surface
// requires both phone and email; the struct tags enforce that upstream.
func (s *Service) CreateContact(ctx context.Context, req transport.ContactRequest, ipAddress string) (transport.EnquiryResponse, error) {
	first, last := splitName(req.Name)
	if first == "" {
		return transport.EnquiryResponse{}, apperr.Validation("name is required").
			WithDetails(map[string]string{"name": "This field is required"})
	}

	normalizedPhone := phone.NormalizeE164(req.Phone, s.phoneCfg.GetDefaultPhoneRegion())

	enquiryType := EnquiryTypeGeneral
	var subject *string
	if req.Subject != nil {
		if trimmed := strings.TrimSpace(*req.Subject); trimmed != "" {
			subject = &trimmed
			enquiryType = NormalizeEnquiryType(strings.ReplaceAll(trimmed, " ", "_"))
		}
	}

	params := repository.CreateEnquiryParams{
		EnquiryType:            enquiryType,
		FirstName:              first,
		LastName:               last,
		Mobile:                 &normalizedPhone,
		Email:                  &req.Email,
		Subject:                subject,
		Message:                &req.Message,
		PreferredContactMethod: normalizeContactMethod(req.PreferredContactMethod),
		PreferredContactTime:   req.PreferredContactTime,
	}
	applyTracking(&params, req.Tracking, ipAddress)

	return s.persist(ctx, params)
}

// CreateEnquiry persists a vehicle enquiry. Mobile is required on this
// surface; email is optional. An unrecognized enquiry type falls back to
// general rather than failing the submission.
func (s *Service) CreateEnquiry(ctx context.Context, req transport.EnquiryRequest, ipAddress string) (transport.EnquiryResponse, error) {
	normalizedMobile := phone.NormalizeE164(req.Mobile, s.phoneCfg.GetDefaultPhoneRegion())

	params := repository.CreateEnquiryParams{
		EnquiryType:            NormalizeEnquiryType(req.EnquiryType),
		FirstName:              strings.TrimSpace(req.FirstName),
		LastName:               strings.TrimSpace(req.LastName),
		Mobile:                 &normalizedMobile,
		Email:                  req.Email,
		Message:                req.Message,
		PreferredContactMethod: normalizeContactMethod(req.PreferredContactMethod),
		PreferredContactTime:   req.PreferredContactTime,
		WantsTestDrive:         req.WantsTestDrive,
	}
	applyTracking(&params, req.Tracking, ipAddress)

	if req.VehicleID != nil {
		snapshot, err := s.vehicles.Snapshot(ctx, *req.VehicleID)
		if err != nil {
			if apperr.GetKind(err) == apperr.KindNotFound {
				return transport.EnquiryResponse{}, apperr.Validation("unknown vehicle").
					WithDetails(map[string]string{"vehicleId": "No listing with this id"})
			}
			return transport.EnquiryResponse{}, err
		}
		params.VehicleID = req.VehicleID
		params.SnapshotMake = snapshot.Make
		params.SnapshotModel = snapshot.Model
		params.SnapshotYear = snapshot.Year
		params.SnapshotPrice = snapshot.Price
	}

	if req.HasTradeIn && req.TradeIn != nil {
		params.HasTradeIn = true
		params.TradeInYear = req.TradeIn.Year
		params.TradeInMake = req.TradeIn.Make
		params.TradeInModel = req.TradeIn.Model
		params.TradeInOdometer = req.TradeIn.Odometer
	}

	if req.WantsFinance {
		params.WantsFinance = true
		applyFinance(&params, req.Finance)
	}

	return s.persist(ctx, params)
}

// CreateSell persists a sell-your-vehicle submission. The customer's
// vehicle details are stored in the trade-in columns.
func (s *Service) CreateSell(ctx context.Context, req transport.SellRequest, ipAddress string) (transport.EnquiryResponse, error) {
	normalizedMobile := phone.NormalizeE164(req.Mobile, s.phoneCfg.GetDefaultPhoneRegion())

	params := repository.CreateEnquiryParams{
		EnquiryType:            "sell_vehicle",
		FirstName:              strings.TrimSpace(req.FirstName),
		LastName:               strings.TrimSpace(req.LastName),
		Mobile:                 &normalizedMobile,
		Email:                  req.Email,
		Message:                req.Message,
		PreferredContactMethod: normalizeContactMethod(req.PreferredContactMethod),
		PreferredContactTime:   req.PreferredContactTime,
		HasTradeIn:             true,
		TradeInYear:            &req.Year,
		TradeInMake:            &req.Make,
		TradeInModel:           &req.Model,
		TradeInOdometer:        req.Odometer,
	}
	applyTracking(&params, req.Tracking, ipAddress)

	return s.persist(ctx, params)
}

func (s *Service) persist(ctx context.Context, params repository.CreateEnquiryParams) (transport.EnquiryResponse, error) {
	created, err := s.repo.Create(ctx, params)
	if err != nil {
		s.log.DatabaseError("create enquiry", err)
		return transport.EnquiryResponse{}, apperr.Internal("failed to save enquiry")
	}

	s.log.LeadCreated(created.EnquiryType, created.ID.String())
	s.notify(created)

	return transport.EnquiryResponse{
		ID:          created.ID,
		EnquiryType: created.EnquiryType,
		Status:      created.Status,
	}, nil
}

// notify emails the staff inbox in the background. A delivery failure is
// logged and never surfaces to the submitter.
func (s *Service) notify(e repository.Enquiry) {
	n := email.LeadNotification{
		EnquiryType:  e.EnquiryType,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Mobile:       deref(e.Mobile),
		Email:        deref(e.Email),
		Message:      deref(e.Message),
		VehicleLabel: vehicleLabel(e),
		PageURL:      deref(e.PageURL),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.sender.SendLeadNotification(ctx, n); err != nil {
			s.log.Error("lead_notification_failed",
				"lead_id", e.ID.String(),
				"error", err.Error(),
			)
		}
	}()
}

// NormalizeEnquiryType maps absent or unrecognized types to general.
func NormalizeEnquiryType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := knownEnquiryTypes[t]; !ok {
		return EnquiryTypeGeneral
	}
	return t
}

// splitName splits a single free-text name on whitespace: first token
// becomes the first name, everything after it the last name.
func splitName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func normalizeContactMethod(method *string) *string {
	if method == nil {
		return nil
	}
	lowered := strings.ToLower(strings.TrimSpace(*method))
	if _, ok := allowedContactMethods[lowered]; !ok {
		return nil
	}
	return &lowered
}

func applyTracking(params *repository.CreateEnquiryParams, t transport.Tracking, ipAddress string) {
	params.UTMSource = t.UTMSource
	params.UTMMedium = t.UTMMedium
	params.UTMCampaign = t.UTMCampaign
	params.Referrer = t.Referrer
	params.PageURL = t.PageURL
	if ipAddress != "" {
		params.IPAddress = &ipAddress
	}
}

// applyFinance recomputes the repayment figures server side from the
// submitted inputs and the snapshot price. Without a vehicle there is no
// price to recompute from, so the customer's own figures are kept.
func applyFinance(params *repository.CreateEnquiryParams, details *transport.FinanceDetails) {
	deposit := 0.0
	term := finance.DefaultTermMonths
	rate := finance.DefaultAnnualRatePercent
	if details != nil {
		deposit = details.Deposit
		if details.TermMonths != nil {
			term = *details.TermMonths
		}
		if details.AnnualRatePercent != nil {
			rate = *details.AnnualRatePercent
		}
	}

	params.FinanceDeposit = &deposit
	params.FinanceTermMonths = &term
	params.FinanceAnnualRate = &rate

	if params.SnapshotPrice == nil {
		if details != nil {
			params.FinanceMonthly = details.Monthly
			params.FinanceWeekly = details.Weekly
		}
		return
	}
	est := finance.Calculate(*params.SnapshotPrice, deposit, term, rate)
	params.FinanceMonthly = &est.Monthly
	params.FinanceWeekly = &est.Weekly
}

func vehicleLabel(e repository.Enquiry) string {
	if e.SnapshotMake == nil && e.SnapshotModel == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	if e.SnapshotYear != nil {
		parts = append(parts, strconv.Itoa(*e.SnapshotYear))
	}
	if e.SnapshotMake != nil {
		parts = append(parts, *e.SnapshotMake)
	}
	if e.SnapshotModel != nil {
		parts = append(parts, *e.SnapshotModel)
	}
	return strings.Join(parts, " ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
