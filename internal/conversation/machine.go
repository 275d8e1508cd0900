package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"shootbook/internal/domain/reservation"
	"shootbook/internal/domain/schedule"
	"shootbook/internal/pkg/clock"
	"shootbook/internal/pkg/errs"
	"shootbook/internal/transport"
	"shootbook/internal/usecase/commands"
	"shootbook/internal/usecase/queries"
)

// Machine drives the booking conversation: it routes each inbound update by
// the requester's current step, validates the input, and either advances
// the state or re-prompts without advancing. Nothing here touches the
// ledger except through the booking and admin commands.
type Machine struct {
	sessions     *Store
	booking      commands.BookingCommands
	admin        commands.AdminCommands
	availability queries.AvailabilityQueries
	reservations queries.ReservationQueries
	policy       *schedule.Policy
	clock        clock.Clock
	shootTypes   []string
	messenger    transport.Messenger
	notifier     transport.AdminNotifier
	adminID      int64
	logger       *slog.Logger
}

func NewMachine(
	sessions *Store,
	booking commands.BookingCommands,
	admin commands.AdminCommands,
	availability queries.AvailabilityQueries,
	reservations queries.ReservationQueries,
	policy *schedule.Policy,
	clk clock.Clock,
	shootTypes []string,
	messenger transport.Messenger,
	notifier transport.AdminNotifier,
	adminID int64,
	logger *slog.Logger,
) *Machine {
	return &Machine{
		sessions:     sessions,
		booking:      booking,
		admin:        admin,
		availability: availability,
		reservations: reservations,
		policy:       policy,
		clock:        clk,
		shootTypes:   shootTypes,
		messenger:    messenger,
		notifier:     notifier,
		adminID:      adminID,
		logger:       logger,
	}
}

func (m *Machine) Handle(ctx context.Context, u transport.Update) error {
	text := strings.TrimSpace(u.Text)

	if u.RequesterID == m.adminID && strings.HasPrefix(text, "/") && text != cmdStart {
		return m.handleAdmin(ctx, text)
	}

	sess, release := m.sessions.Acquire(u.RequesterID)
	defer release()

	switch {
	case text == cmdStart:
		sess.Clear()
		return m.messenger.SendChoice(ctx, u.RequesterID, msgGreeting, []string{kwBook, kwMyBookings})

	case text == cmdBook || text == kwBook:
		return m.beginBooking(ctx, sess, u)

	case text == cmdMyBookings || text == kwMyBookings:
		return m.listMine(ctx, u.RequesterID)

	case isSelfCancel(text):
		return m.selfCancel(ctx, u.RequesterID, text)

	case strings.EqualFold(text, kwCancel) && sess.State() == nil:
		return m.messenger.SendText(ctx, u.RequesterID, msgIdleHint)
	}

	state := sess.State()
	if state == nil {
		return m.messenger.SendText(ctx, u.RequesterID, msgIdleHint)
	}

	// Global cancel: any step, discard state, no ledger write.
	if strings.EqualFold(text, kwCancel) && state.Step != StepConfirm {
		sess.Clear()
		return m.messenger.SendText(ctx, u.RequesterID, msgCancelled)
	}

	switch state.Step {
	case StepShootType:
		return m.handleShootType(ctx, sess, state, text)
	case StepDate:
		return m.handleDate(ctx, sess, state, text)
	case StepTime:
		return m.handleTime(ctx, sess, state, text)
	case StepPhone:
		return m.handlePhone(ctx, sess, state, u, text)
	case StepConfirm:
		return m.handleConfirm(ctx, sess, state, text)
	default:
		sess.Clear()
		return m.messenger.SendText(ctx, u.RequesterID, msgIdleHint)
	}
}

func (m *Machine) beginBooking(ctx context.Context, sess *Session, u transport.Update) error {
	requester, err := reservation.NewRequester(u.RequesterID, u.Name, u.Handle)
	if err != nil {
		return m.messenger.SendText(ctx, u.RequesterID, msgIdleHint)
	}
	state := sess.Begin(requester)
	m.logger.Info("booking conversation started",
		"session_id", state.SessionID, "requester_id", u.RequesterID)
	return m.messenger.SendChoice(ctx, u.RequesterID, msgAskShootType, m.shootTypes)
}

func (m *Machine) handleShootType(ctx context.Context, _ *Session, state *State, text string) error {
	if !m.recognizedShootType(text) {
		return m.messenger.SendChoice(ctx, state.Requester.ID(), msgUnknownShootType, m.shootTypes)
	}
	shootType, err := reservation.NewShootType(text)
	if err != nil {
		return m.messenger.SendChoice(ctx, state.Requester.ID(), msgUnknownShootType, m.shootTypes)
	}
	state.ShootType = shootType
	state.Step = StepDate
	return m.messenger.SendText(ctx, state.Requester.ID(), msgAskDate)
}

func (m *Machine) handleDate(ctx context.Context, _ *Session, state *State, text string) error {
	date, err := m.policy.ParseDate(text)
	if err != nil {
		return m.messenger.SendText(ctx, state.Requester.ID(), msgBadDate)
	}
	if m.policy.IsTooFar(m.clock.Now(), date) {
		return m.messenger.SendText(ctx, state.Requester.ID(), msgDateTooFar)
	}

	open, err := m.openTimes(ctx, date)
	if err != nil {
		return err
	}
	if len(open) == 0 {
		return m.messenger.SendText(ctx, state.Requester.ID(), msgNoFreeTimes)
	}

	state.Date = date
	state.Step = StepTime
	return m.messenger.SendChoice(ctx, state.Requester.ID(), msgAskTime, open)
}

func (m *Machine) handleTime(ctx context.Context, _ *Session, state *State, text string) error {
	if !m.policy.HasTime(text) {
		return m.messenger.SendText(ctx, state.Requester.ID(), msgTimeUnavailable)
	}

	states, err := m.availability.AvailableTimes(ctx, state.Date)
	if err != nil {
		return m.messenger.SendText(ctx, state.Requester.ID(), msgCommitFailed)
	}
	if states[text] != schedule.StateOpen {
		return m.messenger.SendText(ctx, state.Requester.ID(), msgTimeUnavailable)
	}

	state.TimeLabel = text
	if state.Phone.String() != "" {
		// Rebooking after a lost slot race; the phone is already collected,
		// so go straight back to confirmation.
		state.Step = StepConfirm
		return m.sendConfirm(ctx, state)
	}
	state.Step = StepPhone
	return m.messenger.SendText(ctx, state.Requester.ID(), msgAskPhone)
}

func (m *Machine) handlePhone(ctx context.Context, _ *Session, state *State, u transport.Update, text string) error {
	payload := text
	if u.Kind == transport.KindContact {
		payload = u.Phone
	}
	phone, err := reservation.NewPhone(payload)
	if err != nil {
		return m.messenger.SendText(ctx, state.Requester.ID(), msgBadPhone)
	}

	state.Phone = phone
	state.Step = StepConfirm
	return m.sendConfirm(ctx, state)
}

func (m *Machine) sendConfirm(ctx context.Context, state *State) error {
	summary := fmt.Sprintf("%s\n%s %s, %s, %s",
		msgConfirmPrompt, state.Date, state.TimeLabel, state.ShootType, state.Phone)
	return m.messenger.SendChoice(ctx, state.Requester.ID(), summary, []string{kwConfirm, kwCancel})
}

func (m *Machine) handleConfirm(ctx context.Context, sess *Session, state *State, text string) error {
	switch {
	case strings.EqualFold(text, kwConfirm):
		return m.commit(ctx, sess, state)
	case strings.EqualFold(text, kwCancel):
		sess.Clear()
		return m.messenger.SendText(ctx, state.Requester.ID(), msgCancelled)
	default:
		return m.messenger.SendChoice(ctx, state.Requester.ID(), msgConfirmPrompt, []string{kwConfirm, kwCancel})
	}
}

func (m *Machine) commit(ctx context.Context, sess *Session, state *State) error {
	slot, err := reservation.NewSlot(state.Date, state.TimeLabel)
	if err != nil {
		sess.Clear()
		return m.messenger.SendText(ctx, state.Requester.ID(), msgIdleHint)
	}

	created, err := m.booking.Reserve(ctx, commands.Draft{
		Slot:      slot,
		ShootType: state.ShootType,
		Phone:     state.Phone,
		Requester: state.Requester,
	})
	switch {
	case err == nil:

	case errors.Is(err, errs.ErrSlotUnavailable) || errors.Is(err, errs.ErrSlotConflict):
		// Lost the availability race; fall back to time selection with a
		// fresh grid instead of failing the whole flow.
		state.Step = StepTime
		state.TimeLabel = ""
		open, openErr := m.openTimes(ctx, state.Date)
		if openErr != nil || len(open) == 0 {
			state.Step = StepDate
			return m.messenger.SendText(ctx, state.Requester.ID(), msgNoFreeTimes)
		}
		return m.messenger.SendChoice(ctx, state.Requester.ID(), msgSlotStolen, open)

	case errors.Is(err, errs.ErrDateTooFar):
		state.Step = StepDate
		state.TimeLabel = ""
		return m.messenger.SendText(ctx, state.Requester.ID(), msgDateTooFar)

	default:
		// Transient storage failure: keep the conversation in the confirm
		// step so the user can retry without re-entering anything.
		m.logger.Error("booking commit failed",
			"session_id", state.SessionID, "requester_id", state.Requester.ID(), "error", err)
		return m.messenger.SendText(ctx, state.Requester.ID(), msgCommitFailed)
	}

	notice := fmt.Sprintf("New booking #%d\n%s\n%s %s\n%s (@%s)\n%s",
		created.ID(), created.ShootType(), created.Slot().Date(), created.Slot().TimeLabel(),
		created.Requester().Name(), created.Requester().Handle(), created.Phone())
	if notifyErr := m.notifier.NotifyAdmin(ctx, notice); notifyErr != nil {
		m.logger.Warn("failed to notify admin about new booking",
			"reservation_id", created.ID(), "error", notifyErr)
	}

	sess.Clear()
	return m.messenger.SendText(ctx, state.Requester.ID(), msgBooked)
}

func (m *Machine) listMine(ctx context.Context, requesterID int64) error {
	mine, err := m.reservations.ListByRequester(ctx, requesterID)
	if err != nil {
		return m.messenger.SendText(ctx, requesterID, msgCommitFailed)
	}
	if len(mine) == 0 {
		return m.messenger.SendText(ctx, requesterID, msgNoBookings)
	}

	var b strings.Builder
	for _, r := range mine {
		fmt.Fprintf(&b, "#%d  %s %s  %s\n", r.ID(), r.Slot().Date(), r.Slot().TimeLabel(), r.ShootType())
	}
	b.WriteString("To cancel one, send: cancel <number>")
	return m.messenger.SendText(ctx, requesterID, b.String())
}

func (m *Machine) selfCancel(ctx context.Context, requesterID int64, text string) error {
	id, ok := parseTrailingID(text)
	if !ok {
		return m.messenger.SendText(ctx, requesterID, msgNotFound)
	}

	err := m.admin.SelfCancel(ctx, requesterID, id)
	switch {
	case err == nil:
		return m.messenger.SendText(ctx, requesterID, msgSelfCancelled)
	case errors.Is(err, errs.ErrForbidden):
		return m.messenger.SendText(ctx, requesterID, msgNotYours)
	case errors.Is(err, errs.ErrReservationNotFound), errors.Is(err, errs.ErrInvalidTransition):
		return m.messenger.SendText(ctx, requesterID, msgNotFound)
	default:
		return m.messenger.SendText(ctx, requesterID, msgCommitFailed)
	}
}

func (m *Machine) handleAdmin(ctx context.Context, text string) error {
	fields := strings.Fields(text)
	cmd := fields[0]

	switch cmd {
	case cmdAdminList:
		active, err := m.admin.ListActive(ctx, m.adminID)
		if err != nil {
			return m.messenger.SendText(ctx, m.adminID, "Failed to list bookings.")
		}
		if len(active) == 0 {
			return m.messenger.SendText(ctx, m.adminID, "No active bookings.")
		}
		var b strings.Builder
		for _, r := range active {
			fmt.Fprintf(&b, "#%d  %s %s  %s  %s (@%s)  %s\n",
				r.ID(), r.Slot().Date(), r.Slot().TimeLabel(), r.ShootType(),
				r.Requester().Name(), r.Requester().Handle(), r.Phone())
		}
		return m.messenger.SendText(ctx, m.adminID, b.String())

	case cmdAdminDone, cmdAdminCancel:
		if len(fields) < 2 {
			return m.messenger.SendText(ctx, m.adminID, "Usage: "+cmd+" <number>")
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return m.messenger.SendText(ctx, m.adminID, "Usage: "+cmd+" <number>")
		}

		var opErr error
		if cmd == cmdAdminDone {
			opErr = m.admin.MarkDone(ctx, m.adminID, id)
		} else {
			opErr = m.admin.MarkCancelled(ctx, m.adminID, id)
		}
		switch {
		case opErr == nil:
			return m.messenger.SendText(ctx, m.adminID, fmt.Sprintf("Booking #%d updated.", id))
		case errors.Is(opErr, errs.ErrReservationNotFound):
			return m.messenger.SendText(ctx, m.adminID, msgNotFound)
		case errors.Is(opErr, errs.ErrInvalidTransition):
			return m.messenger.SendText(ctx, m.adminID, fmt.Sprintf("Booking #%d is already closed.", id))
		default:
			return m.messenger.SendText(ctx, m.adminID, "Failed to update booking.")
		}

	default:
		return m.messenger.SendText(ctx, m.adminID, "Commands: /list, /done <n>, /cancel <n>")
	}
}

func (m *Machine) recognizedShootType(text string) bool {
	for _, t := range m.shootTypes {
		if strings.EqualFold(t, text) {
			return true
		}
	}
	return false
}

func (m *Machine) openTimes(ctx context.Context, date string) ([]string, error) {
	states, err := m.availability.AvailableTimes(ctx, date)
	if err != nil {
		return nil, err
	}
	var open []string
	for _, label := range m.policy.DayTimes() {
		if states[label] == schedule.StateOpen {
			open = append(open, label)
		}
	}
	return open, nil
}

func isSelfCancel(text string) bool {
	if !strings.HasPrefix(strings.ToLower(text), strings.ToLower(kwCancel)+" ") {
		return false
	}
	_, ok := parseTrailingID(text)
	return ok
}

func parseTrailingID(text string) (int64, bool) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, false
	}
	raw := strings.TrimPrefix(fields[1], "#")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
