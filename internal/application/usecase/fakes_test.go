package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

// ── Tarifas ─────────────────────────────────────────────────────────────────

type memTariffs struct {
	items map[string]*entity.Tariff
}

func newMemTariffs(ts ...entity.Tariff) *memTariffs {
	m := &memTariffs{items: map[string]*entity.Tariff{}}
	for i := range ts {
		t := ts[i]
		m.items[t.ID] = &t
	}
	return m
}

func (m *memTariffs) Create(_ context.Context, t *entity.Tariff) error {
	if t.Active {
		for _, o := range m.items {
			if o.Active {
				return domain.ErrConflict
			}
		}
	}
	c := *t
	m.items[t.ID] = &c
	return nil
}

func (m *memTariffs) Update(_ context.Context, t *entity.Tariff) error {
	if _, ok := m.items[t.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *t
	m.items[t.ID] = &c
	return nil
}

func (m *memTariffs) GetByID(_ context.Context, id string) (*entity.Tariff, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}

func (m *memTariffs) List(context.Context) ([]*entity.Tariff, error) {
	var out []*entity.Tariff
	for _, t := range m.items {
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

func (m *memTariffs) GetActive(context.Context) (*entity.Tariff, error) {
	for _, t := range m.items {
		if t.Active {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memTariffs) DeactivateAll(_ context.Context, exceptID string) error {
	for id, t := range m.items {
		if id != exceptID {
			t.Active = false
		}
	}
	return nil
}

func (m *memTariffs) SetActive(_ context.Context, id string, active bool) error {
	t, ok := m.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.Active = active
	return nil
}

func (m *memTariffs) activeIDs() []string {
	var ids []string
	for id, t := range m.items {
		if t.Active {
			ids = append(ids, id)
		}
	}
	return ids
}

// ── Tickets ─────────────────────────────────────────────────────────────────

type memTickets struct {
	items map[string]*entity.Ticket
}

func newMemTickets(ts ...entity.Ticket) *memTickets {
	m := &memTickets{items: map[string]*entity.Ticket{}}
	for i := range ts {
		t := ts[i]
		m.items[t.ID] = &t
	}
	return m
}

func (m *memTickets) Create(_ context.Context, t *entity.Ticket) error {
	for _, o := range m.items {
		if o.IsInside() && strings.EqualFold(o.Plate, t.Plate) {
			return domain.ErrVehicleInside
		}
	}
	c := *t
	m.items[t.ID] = &c
	return nil
}

func (m *memTickets) GetByID(_ context.Context, id string) (*entity.Ticket, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}

func (m *memTickets) GetForUpdate(ctx context.Context, id string) (*entity.Ticket, error) {
	return m.GetByID(ctx, id)
}

func (m *memTickets) GetOpenByPlate(_ context.Context, plate string) (*entity.Ticket, error) {
	for _, t := range m.items {
		if t.IsInside() && strings.EqualFold(t.Plate, plate) {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memTickets) Close(_ context.Context, t *entity.Ticket) error {
	cur, ok := m.items[t.ID]
	if !ok || !cur.IsInside() {
		return domain.ErrTicketClosed
	}
	c := *t
	m.items[t.ID] = &c
	return nil
}

func (m *memTickets) sorted() []entity.Ticket {
	out := make([]entity.Ticket, 0, len(m.items))
	for _, t := range m.items {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryTime.After(out[j].EntryTime) })
	return out
}

func (m *memTickets) List(_ context.Context, limit, offset int) ([]*entity.Ticket, error) {
	all := m.sorted()
	var out []*entity.Ticket
	for i := offset; i < len(all) && len(out) < limit; i++ {
		t := all[i]
		out = append(out, &t)
	}
	return out, nil
}

func (m *memTickets) ListAll(context.Context) ([]entity.Ticket, error) { return m.sorted(), nil }

func (m *memTickets) ListClosed(_ context.Context, f repository.TicketFilter) ([]entity.Ticket, error) {
	var out []entity.Ticket
	for _, t := range m.sorted() {
		if t.ExitTime == nil || !t.AmountDue.IsPositive() {
			continue
		}
		if !f.ExitFrom.IsZero() && t.ExitTime.Before(f.ExitFrom) {
			continue
		}
		if !f.ExitTo.IsZero() && !t.ExitTime.Before(f.ExitTo) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memTickets) ListExitedBetween(_ context.Context, from, to time.Time) ([]entity.Ticket, error) {
	var out []entity.Ticket
	for _, t := range m.sorted() {
		if t.ExitTime != nil && !t.ExitTime.Before(from) && t.ExitTime.Before(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTickets) CountInside(context.Context) (int, error) {
	n := 0
	for _, t := range m.items {
		if t.IsInside() {
			n++
		}
	}
	return n, nil
}

func (m *memTickets) CountByKind(context.Context) (map[string]int, error) {
	out := map[string]int{}
	for _, t := range m.items {
		out[strings.ToLower(t.Kind)]++
	}
	return out, nil
}

// ── Mensualidades ───────────────────────────────────────────────────────────

type memSubs struct {
	items  map[string]*entity.Subscription
	locked []string
}

func newMemSubs(ss ...entity.Subscription) *memSubs {
	m := &memSubs{items: map[string]*entity.Subscription{}}
	for i := range ss {
		s := ss[i]
		m.items[s.ID] = &s
	}
	return m
}

func (m *memSubs) Create(_ context.Context, s *entity.Subscription) error {
	c := *s
	m.items[s.ID] = &c
	return nil
}

func (m *memSubs) Update(_ context.Context, s *entity.Subscription) error {
	if _, ok := m.items[s.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *s
	m.items[s.ID] = &c
	return nil
}

func (m *memSubs) GetByID(_ context.Context, id string) (*entity.Subscription, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (m *memSubs) List(_ context.Context, limit, offset int) ([]*entity.Subscription, error) {
	all, _ := m.ListAll(context.Background())
	var out []*entity.Subscription
	for i := offset; i < len(all) && len(out) < limit; i++ {
		s := all[i]
		out = append(out, &s)
	}
	return out, nil
}

func (m *memSubs) ListAll(context.Context) ([]entity.Subscription, error) {
	out := make([]entity.Subscription, 0, len(m.items))
	for _, s := range m.items {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memSubs) LockPlate(_ context.Context, plate string) error {
	m.locked = append(m.locked, plate)
	return nil
}

func (m *memSubs) ExistsCurrentForPlate(_ context.Context, plate string, today time.Time, excludeID string) (bool, error) {
	for _, s := range m.items {
		if s.ID != excludeID && strings.EqualFold(s.Plate, plate) && parking.IsCurrent(*s, today) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSubs) FindCurrentByPlate(_ context.Context, plate string, today time.Time) (*entity.Subscription, error) {
	d := parking.DateOf(today)
	for _, s := range m.items {
		if strings.EqualFold(s.Plate, plate) && parking.IsCurrent(*s, today) && !s.StartDate.After(d) {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memSubs) ListDue(_ context.Context, today, until time.Time) ([]entity.Subscription, error) {
	all, _ := m.ListAll(context.Background())
	var out []entity.Subscription
	for _, s := range all {
		if s.Active && !s.EndDate.Before(today) && !s.EndDate.After(until) {
			out = append(out, s)
		}
	}
	return out, nil
}

// ── Notificaciones ──────────────────────────────────────────────────────────

type memNotifications struct {
	items []*entity.Notification
}

func (m *memNotifications) Create(_ context.Context, n *entity.Notification) error {
	for _, o := range m.items {
		if *o.SubscriptionID == *n.SubscriptionID && o.Kind == n.Kind {
			return domain.ErrAlreadyNotified
		}
	}
	c := *n
	m.items = append(m.items, &c)
	return nil
}

func (m *memNotifications) Exists(_ context.Context, subID, kind string) (bool, error) {
	for _, o := range m.items {
		if *o.SubscriptionID == subID && o.Kind == kind {
			return true, nil
		}
	}
	return false, nil
}

func (m *memNotifications) List(_ context.Context, limit, offset int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for i := offset; i < len(m.items) && len(out) < limit; i++ {
		out = append(out, m.items[i])
	}
	return out, nil
}

// ── Operadores ──────────────────────────────────────────────────────────────

type memOperators struct {
	items map[string]*entity.Operator
}

func newMemOperators(ops ...entity.Operator) *memOperators {
	m := &memOperators{items: map[string]*entity.Operator{}}
	for i := range ops {
		op := ops[i]
		m.items[op.ID] = &op
	}
	return m
}

func (m *memOperators) Create(_ context.Context, op *entity.Operator) error {
	if op.Email != nil {
		for _, o := range m.items {
			if o.Email != nil && *o.Email == *op.Email {
				return domain.ErrDuplicate
			}
		}
	}
	c := *op
	m.items[op.ID] = &c
	return nil
}

func (m *memOperators) Update(_ context.Context, op *entity.Operator) error {
	c := *op
	m.items[op.ID] = &c
	return nil
}

func (m *memOperators) GetByID(_ context.Context, id string) (*entity.Operator, error) {
	op, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	c := *op
	return &c, nil
}

func (m *memOperators) GetByEmail(_ context.Context, email string) (*entity.Operator, error) {
	for _, op := range m.items {
		if op.Email != nil && strings.EqualFold(*op.Email, email) {
			c := *op
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memOperators) List(context.Context) ([]*entity.Operator, error) {
	var out []*entity.Operator
	for _, op := range m.items {
		c := *op
		out = append(out, &c)
	}
	return out, nil
}

func (m *memOperators) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memOperators) CountAdmins(context.Context) (int, error) {
	n := 0
	for _, op := range m.items {
		if op.Role == entity.RoleAdmin && op.Active {
			n++
		}
	}
	return n, nil
}

// ── Pagos ───────────────────────────────────────────────────────────────────

type memPayments struct {
	items []*entity.Payment
}

func (m *memPayments) Create(_ context.Context, p *entity.Payment) error {
	c := *p
	m.items = append(m.items, &c)
	return nil
}

func (m *memPayments) GetByID(_ context.Context, id string) (*entity.Payment, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPayments) List(_ context.Context, limit, offset int) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for i := offset; i < len(m.items) && len(out) < limit; i++ {
		out = append(out, m.items[i])
	}
	return out, nil
}

func (m *memPayments) ListByTicket(_ context.Context, ticketID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range m.items {
		if p.TicketID != nil && *p.TicketID == ticketID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ── Transacciones ───────────────────────────────────────────────────────────

// memTx ejecuta fn sobre los mismos repos en memoria. failAfter simula un fallo al confirmar.
type memTx struct {
	tariffs   *memTariffs
	tickets   *memTickets
	payments  *memPayments
	subs      *memSubs
	failAfter error
	runs      int
}

func (tx *memTx) RunTariff(_ context.Context, fn func(repository.TariffRepository) error) error {
	tx.runs++
	if err := fn(tx.tariffs); err != nil {
		return err
	}
	return tx.failAfter
}

func (tx *memTx) RunSubscription(_ context.Context, fn func(repository.SubscriptionRepository) error) error {
	tx.runs++
	if err := fn(tx.subs); err != nil {
		return err
	}
	return tx.failAfter
}

func (tx *memTx) RunTicket(_ context.Context, fn func(repository.TicketRepository, repository.PaymentRepository, repository.TariffRepository) error) error {
	tx.runs++
	if err := fn(tx.tickets, tx.payments, tx.tariffs); err != nil {
		return err
	}
	return tx.failAfter
}

// ── Correo ──────────────────────────────────────────────────────────────────

type sentMail struct{ to, subject, body string }

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMail
	fail map[string]bool // destinatarios que fallan
}

func (f *fakeSender) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[to] {
		return errors.New("550 buzón no disponible")
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}

// ── Observador ──────────────────────────────────────────────────────────────

type recordingObserver struct {
	entered []string
	exited  []decimal.Decimal
	inside  int
}

func (o *recordingObserver) VehicleEntered(kind string) { o.entered = append(o.entered, kind) }
func (o *recordingObserver) VehicleExited(_ string, amount decimal.Decimal) {
	o.exited = append(o.exited, amount)
}
func (o *recordingObserver) InsideObserved(n int) { o.inside = n }

// ── Recibos ─────────────────────────────────────────────────────────────────

type fakeReceipts struct {
	ticket  dto.TicketResponse
	payment *dto.PaymentResponse
	tariff  *dto.TariffResponse
}

func (f *fakeReceipts) Generate(t dto.TicketResponse, p *dto.PaymentResponse, tr *dto.TariffResponse) ([]byte, error) {
	f.ticket, f.payment, f.tariff = t, p, tr
	return []byte("%PDF-fake"), nil
}

// ── Utilidades ──────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func stdTariff(id string, active bool) entity.Tariff {
	return entity.Tariff{
		ID:             id,
		Description:    "General",
		BaseHourlyRate: decimal.NewFromInt(2000),
		FractionRate:   decimal.NewFromInt(1000),
		DailyCap:       decimal.NewFromInt(15000),
		GraceMinutes:   30,
		Active:         active,
	}
}
