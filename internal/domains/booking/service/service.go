package service

import (
	"context"
	"fmt"
	"time"

	"banquet/config"
	"banquet/infras/otel"
	"banquet/internal/domains/booking/model"
	"banquet/internal/domains/booking/model/dto"
	"banquet/internal/domains/booking/repository"
	paymentRepo "banquet/internal/domains/payment/repository"
	pricingService "banquet/internal/domains/pricing/service"
	rulesService "banquet/internal/domains/rules/service"
	shoppinglistService "banquet/internal/domains/shoppinglist/service"
	staffModel "banquet/internal/domains/staff/model"
	staffRepo "banquet/internal/domains/staff/repository"
	staffingService "banquet/internal/domains/staffing/service"
	"banquet/internal/events"
	"banquet/shared"
	"banquet/shared/cache"
	"banquet/shared/constant"
	gDto "banquet/shared/dto"
	"banquet/shared/failure"
	"banquet/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	AssignStaff(ctx context.Context, req dto.AssignStaffRequest, id string) error
	Transition(ctx context.Context, req dto.TransitionRequest, id string) (dto.BookingResponse, error)
	Unlock(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CheckConflicts(ctx context.Context, req dto.ConflictCheckRequest) (dto.ConflictCheckResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	staffRepo staffRepo.Staff
	laborRepo paymentRepo.LaborPayment
	payRepo   paymentRepo.CustomerPayment
	rules     rulesService.Rules
	shopping  shoppinglistService.Syncer
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	staffRepo staffRepo.Staff,
	laborRepo paymentRepo.LaborPayment,
	payRepo paymentRepo.CustomerPayment,
	rules rulesService.Rules,
	shopping shoppinglistService.Syncer,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		staffRepo: staffRepo,
		laborRepo: laborRepo,
		payRepo:   payRepo,
		rules:     rules,
		shopping:  shopping,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	booking, err = s.reprice(ctx, booking)
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.afterChange(ctx, booking, events.TypeBookingCreated)

	res.FromModel(booking, timezone.Now())

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit, timezone.Now())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking, timezone.Now())

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if booking.Locked {
		return failure.Forbidden("booking is locked; unlock it before editing") // nolint:wrapcheck
	}

	booking, err = mergeUpdate(booking, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking update")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	booking, err = s.reprice(ctx, booking)
	if err != nil {
		return err
	}

	if err = s.persist(ctx, booking, user); err != nil {
		return err
	}

	s.afterChange(ctx, booking, events.TypeBookingUpdated)

	return nil
}

func (s *serviceImpl) AssignStaff(ctx context.Context, req dto.AssignStaffRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if booking.Locked {
		return failure.Forbidden("booking is locked; unlock it before editing") // nolint:wrapcheck
	}

	assignments := make(model.Assignments, len(booking.Assignments))
	copy(assignments, booking.Assignments)

	slotByID := make(map[string]int, len(assignments))
	for i, assignment := range assignments {
		slotByID[assignment.SlotID] = i
	}

	for _, input := range req.Assignments {
		idx, ok := slotByID[input.SlotID]
		if !ok {
			return failure.BadRequestFromString(fmt.Sprintf("unknown staffing slot %s", input.SlotID)) // nolint:wrapcheck
		}

		assignments[idx].StaffID = input.StaffID

		switch {
		case input.StaffID == "":
			assignments[idx].Status = model.AssignmentScheduled
		case booking.Status == model.StatusConfirmed:
			assignments[idx].Status = model.AssignmentConfirmed
		default:
			assignments[idx].Status = model.AssignmentScheduled
		}
	}

	if staffID, dup := duplicateStaff(assignments); dup {
		return failure.UnprocessableEntity(fmt.Sprintf("staff %s is assigned more than once", staffID)) // nolint:wrapcheck
	}

	booking.Assignments = assignments

	if err = s.persist(ctx, booking, user); err != nil {
		return err
	}

	s.afterChange(ctx, booking, events.TypeBookingUpdated)

	return nil
}

// Transition drives the booking workflow state machine. All gates for one
// attempt report together; a refused transition leaves the booking unchanged.
func (s *serviceImpl) Transition(ctx context.Context, req dto.TransitionRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	target, ok := model.ParseStatus(req.Status)
	if !ok {
		return res, failure.BadRequestFromString("unknown booking status") // nolint:wrapcheck
	}

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	// Re-running the completion of a locked completed booking is allowed: it
	// recomputes an identical labor snapshot. Every other mutation of a
	// locked booking needs an explicit unlock first.
	if booking.Locked && target != model.StatusCompleted {
		return res, failure.Forbidden("booking is locked; unlock it before changing its status") // nolint:wrapcheck
	}

	now := timezone.Now()

	switch {
	case target == model.StatusConfirmed && booking.Status == model.StatusCompleted:
		// Stepping a completed booking back to confirmed is a demotion: the
		// labor snapshot is released, not re-confirmed.
		booking, err = s.demote(ctx, booking, target)
	case target == model.StatusConfirmed:
		booking, err = s.confirm(ctx, booking, now)
	case target == model.StatusCompleted:
		booking, err = s.complete(ctx, booking, now, user)
	case target == model.StatusPending, target == model.StatusCancelled:
		booking, err = s.demote(ctx, booking, target)
	}

	if err != nil {
		return res, err
	}

	if err = s.persist(ctx, booking, user); err != nil {
		return res, err
	}

	s.afterChange(ctx, booking, transitionEvent(target))

	if booking.Status == model.StatusConfirmed || booking.Status == model.StatusCompleted {
		s.syncShoppingList(ctx, booking)
	}

	res.FromModel(booking, now)

	return res, nil
}

func (s *serviceImpl) confirm(ctx context.Context, booking model.Booking, now time.Time) (model.Booking, error) {
	others, err := s.repo.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking snapshot")

		return booking, fmt.Errorf("failed to load booking snapshot: %w", err)
	}

	terms := depositTerms{
		DefaultPercent: s.cfg.Engine.DefaultDepositPercent,
		DepositDueDays: s.cfg.Engine.DepositDueDays,
		BalanceDueDays: s.cfg.Engine.BalanceDueDays,
	}

	confirmed, transitionErr := applyConfirm(booking, others, terms, now)
	if transitionErr != nil {
		log.Warn().Str("bookingID", booking.ID).Int("violations", len(transitionErr.Violations)).Msg("booking confirmation refused")

		return booking, transitionErr
	}

	return confirmed, nil
}

func (s *serviceImpl) complete(ctx context.Context, booking model.Booking, now time.Time, user string) (model.Booking, error) {
	others, err := s.repo.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking snapshot")

		return booking, fmt.Errorf("failed to load booking snapshot: %w", err)
	}

	staffByID, err := s.staffRegistry(ctx)
	if err != nil {
		return booking, err
	}

	if violations := validateCompletion(booking, staffByID, others); len(violations) > 0 {
		log.Warn().Str("bookingID", booking.ID).Int("violations", len(violations)).Msg("booking completion refused")

		return booking, &model.TransitionError{
			BookingID:  booking.ID,
			From:       booking.Status,
			To:         model.StatusCompleted,
			Violations: violations,
		}
	}

	completed := applyComplete(booking)

	records := buildLaborRecords(completed, now, user)
	if err = s.laborRepo.ReplaceForBooking(ctx, completed.ID, records); err != nil {
		log.Error().Err(err).Msg("failed to snapshot labor payments")

		return booking, fmt.Errorf("failed to snapshot labor payments: %w", err)
	}

	return completed, nil
}

func (s *serviceImpl) demote(ctx context.Context, booking model.Booking, target model.Status) (model.Booking, error) {
	// Leaving completed releases the labor snapshot before the new status
	// takes effect.
	if booking.Status == model.StatusCompleted {
		if err := s.laborRepo.DeleteByBooking(ctx, booking.ID); err != nil {
			log.Error().Err(err).Msg("failed to release labor payments")

			return booking, fmt.Errorf("failed to release labor payments: %w", err)
		}
	}

	return applyDemote(booking, target), nil
}

func (s *serviceImpl) Unlock(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unlock")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if !booking.Locked {
		return nil
	}

	booking.Locked = false

	if err = s.persist(ctx, booking, user); err != nil {
		return err
	}

	s.afterChange(ctx, booking, events.TypeBookingUpdated)

	return nil
}

// Delete removes the booking and everything hanging off it: the customer
// ledger, the labor snapshot and the linked shopping list.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if booking.Locked {
		return failure.Forbidden("booking is locked; unlock it before deleting") // nolint:wrapcheck
	}

	if err = s.laborRepo.DeleteByBooking(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete labor payments")

		return fmt.Errorf("failed to delete labor payments: %w", err)
	}

	if err = s.payRepo.Delete(ctx, filterByBookingRef(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete customer payments")

		return fmt.Errorf("failed to delete customer payments: %w", err)
	}

	if err = s.shopping.RemoveForBooking(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to remove shopping list")

		return fmt.Errorf("failed to remove shopping list: %w", err)
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.afterChange(ctx, booking, events.TypeBookingDeleted)

	return nil
}

// CheckConflicts is the pre-submit availability check. It runs the same scan
// the workflow transitions gate on.
func (s *serviceImpl) CheckConflicts(ctx context.Context, req dto.ConflictCheckRequest) (res dto.ConflictCheckResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckConflicts")
	defer scope.End()
	defer scope.TraceIfError(err)

	eventDate, err := time.Parse(constant.EventDateFormat, req.EventDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid event date: %v", err)) // nolint:wrapcheck
	}

	eventTime, err := time.Parse(constant.EventTimeFormat, req.EventTime)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid event time: %v", err)) // nolint:wrapcheck
	}

	snapshot, err := s.repo.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking snapshot")

		return res, fmt.Errorf("failed to load booking snapshot: %w", err)
	}

	res.Conflicts = FindConflicts(snapshot, eventDate, eventTime, req.StaffIDs, req.ExcludeBookingID)
	if res.Conflicts == nil {
		res.Conflicts = []model.Conflict{}
	}

	return res, nil
}

// reprice reruns pricing, staffing and compensation from the booking's event
// parameters, keeping existing slot assignments where the slot survives.
func (s *serviceImpl) reprice(ctx context.Context, booking model.Booking) (model.Booking, error) {
	doc, err := s.rules.Active(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load business rules for booking")

		return booking, fmt.Errorf("failed to load business rules for booking: %w", err)
	}

	quote := pricingService.Compute(doc, booking.QuoteInput())

	booking.Subtotal = quote.Subtotal
	booking.Discount = quote.Discount
	booking.Gratuity = quote.Gratuity
	booking.DistanceFee = quote.DistanceFee
	booking.Total = quote.Total

	if booking.DepositPercent == 0 {
		booking.DepositPercent = doc.DepositPercent
	}

	plan := staffingService.BuildPlan(doc, booking.EventType, quote.GuestCount)
	comp := staffingService.Compensate(doc, plan, quote.Revenue(), quote.Gratuity, booking.PayOverrides)

	staffBySlot := make(map[string]model.StaffAssignment, len(booking.Assignments))
	for _, assignment := range booking.Assignments {
		staffBySlot[assignment.SlotID] = assignment
	}

	assignments := make(model.Assignments, 0, len(plan.Slots))
	for i, slot := range plan.Slots {
		assignment := model.StaffAssignment{
			SlotID: slot.ID,
			Role:   slot.Role,
			Status: model.AssignmentScheduled,
		}

		if prior, ok := staffBySlot[slot.ID]; ok {
			assignment.StaffID = prior.StaffID
			assignment.Status = prior.Status
		}

		assignment.EstimatedPay = comp.Slots[i].FinalPay

		assignments = append(assignments, assignment)
	}

	booking.Assignments = assignments
	booking.RecalculateBalance()

	return booking, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	booking.Status = model.NormalizeStatus(string(booking.Status), "")

	return booking, nil
}

func (s *serviceImpl) persist(ctx context.Context, booking model.Booking, user string) error {
	fields := bookingFields(booking)
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	if err := s.repo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) staffRegistry(ctx context.Context) (map[string]staffModel.Staff, error) {
	members, err := s.staffRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load staff registry")

		return nil, fmt.Errorf("failed to load staff registry: %w", err)
	}

	byID := make(map[string]staffModel.Staff, len(members))
	for _, member := range members {
		byID[member.ID] = member
	}

	return byID, nil
}

// afterChange invalidates caches and publishes the change event. Both are
// best effort and never affect the committed mutation.
func (s *serviceImpl) afterChange(ctx context.Context, booking model.Booking, eventType events.Type) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		event := events.BookingEvent{
			Type:       eventType,
			BookingID:  booking.ID,
			Status:     string(booking.Status),
			OccurredAt: timezone.Now(),
		}

		if err := s.publisher.BookingChanged(c, event); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking change")
		}
	}()
}

func (s *serviceImpl) syncShoppingList(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.shopping.EnsureForBooking(c, booking.ID, booking.EventType, booking.GuestCount()); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to sync shopping list")
		}
	}()
}

func mergeUpdate(booking model.Booking, req dto.UpdateBookingRequest) (model.Booking, error) {
	if req.CustomerName != "" {
		booking.CustomerName = req.CustomerName
	}

	if req.CustomerEmail != "" {
		booking.CustomerEmail = req.CustomerEmail
	}

	if req.CustomerPhone != "" {
		booking.CustomerPhone = req.CustomerPhone
	}

	if req.EventType != "" {
		booking.EventType = req.EventType
	}

	if req.EventDate != "" {
		eventDate, err := time.Parse(constant.EventDateFormat, req.EventDate)
		if err != nil {
			return booking, err
		}
		booking.EventDate = eventDate
	}

	if req.EventTime != "" {
		eventTime, err := time.Parse(constant.EventTimeFormat, req.EventTime)
		if err != nil {
			return booking, err
		}
		booking.EventTime = eventTime
	}

	if req.Adults != nil {
		booking.Adults = *req.Adults
	}

	if req.Children != nil {
		booking.Children = *req.Children
	}

	if req.Location != "" {
		booking.Location = req.Location
	}

	if req.DistanceMiles != nil {
		booking.DistanceMiles = *req.DistanceMiles
	}

	if req.DiscountType != nil {
		booking.DiscountType = *req.DiscountType
	}

	if req.DiscountValue != nil {
		booking.DiscountValue = *req.DiscountValue
	}

	if req.PremiumPerGuest != nil {
		booking.PremiumPerGuest = *req.PremiumPerGuest
	}

	if req.MenuOverride != nil {
		booking.MenuOverride = model.MenuOverride{
			Subtotal: req.MenuOverride.Subtotal,
			FoodCost: req.MenuOverride.FoodCost,
		}
	}

	if req.PayOverrides != nil {
		booking.PayOverrides = model.PayOverrides(*req.PayOverrides)
	}

	if req.Notes != nil {
		booking.Notes = *req.Notes
	}

	return booking, nil
}

// bookingFields flattens the mutable columns for a full-row update. Partial
// updates are avoided on purpose: the financial snapshot is always written as
// one consistent unit.
func bookingFields(b model.Booking) map[string]any {
	return map[string]any{
		"customer_name":      b.CustomerName,
		"customer_email":     b.CustomerEmail,
		"customer_phone":     b.CustomerPhone,
		"event_type":         b.EventType,
		"event_date":         b.EventDate,
		"event_time":         b.EventTime,
		"adults":             b.Adults,
		"children":           b.Children,
		"location":           b.Location,
		"distance_miles":     b.DistanceMiles,
		"discount_type":      b.DiscountType,
		"discount_value":     b.DiscountValue,
		"premium_per_guest":  b.PremiumPerGuest,
		"subtotal":           b.Subtotal,
		"discount":           b.Discount,
		"gratuity":           b.Gratuity,
		"distance_fee":       b.DistanceFee,
		"total":              b.Total,
		"status":             b.Status,
		"payment_status":     b.PaymentStatus,
		"deposit_percent":    b.DepositPercent,
		"deposit_amount":     b.DepositAmount,
		"deposit_due_date":   b.DepositDueDate,
		"balance_due_date":   b.BalanceDueDate,
		"balance_due_amount": b.BalanceDueAmount,
		"amount_paid":        b.AmountPaid,
		"confirmed_at":       b.ConfirmedAt,
		"locked":             b.Locked,
		"assignments":        b.Assignments,
		"pay_overrides":      b.PayOverrides,
		"menu_override":      b.MenuOverride,
		"reconciliation_ref": b.ReconciliationRef,
		"notes":              b.Notes,
	}
}

func duplicateStaff(assignments model.Assignments) (string, bool) {
	seen := make(map[string]bool, len(assignments))

	for _, assignment := range assignments {
		if assignment.StaffID == "" {
			continue
		}

		if seen[assignment.StaffID] {
			return assignment.StaffID, true
		}

		seen[assignment.StaffID] = true
	}

	return "", false
}

func transitionEvent(target model.Status) events.Type {
	switch target {
	case model.StatusConfirmed:
		return events.TypeBookingConfirmed
	case model.StatusCompleted:
		return events.TypeBookingCompleted
	case model.StatusCancelled:
		return events.TypeBookingCancelled
	default:
		return events.TypeBookingUpdated
	}
}

func filterByBookingRef(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    "booking_id",
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
			},
		},
	}
}
